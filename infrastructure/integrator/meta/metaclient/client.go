package metaclient

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	metadomain "github.com/vfg2006/page-audit-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/page-audit-api/internal/config"
	"github.com/vfg2006/page-audit-api/internal/domain"
	"github.com/vfg2006/page-audit-api/pkg/metrics"
	"golang.org/x/time/rate"
)

const breakerName = "meta-graph"

type Client interface {
	GetPage(ctx context.Context, pageID, token string) (*metadomain.Page, error)
	GetPageInsights(ctx context.Context, pageID, token string, window domain.TimeWindow) ([]metadomain.Insight, error)
	GetPosts(ctx context.Context, pageID, token string, window domain.TimeWindow) ([]metadomain.Post, error)
	GetPostInsights(ctx context.Context, postID, token string) ([]metadomain.Insight, error)
	GetPageDemographics(ctx context.Context, pageID, token string) ([]metadomain.Insight, error)
}

type MetaClient struct {
	Cfg        *config.Config
	HTTPClient *http.Client
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker
	metrics    *metrics.Registry
}

func NewClient(cfg *config.Config, registry *metrics.Registry) Client {
	timeout := time.Duration(cfg.Meta.RequestTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &MetaClient{
		Cfg:        cfg,
		HTTPClient: &http.Client{Timeout: timeout},
		limiter:    newLimiter(cfg.Meta.RateLimitRPS, cfg.Meta.RateLimitBurst),
		breaker:    newBreaker(breakerName),
		metrics:    registry,
	}
}

func newLimiter(rps float64, burst int) *rate.Limiter {
	if rps <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	if burst <= 0 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(rps), burst)
}

// newBreaker abre o circuito após falhas consecutivas ou taxa de falha alta.
// Erros 4xx do Graph (permissão, token) não contam como falha do host.
func newBreaker(name string) *gobreaker.CircuitBreaker {
	st := gobreaker.Settings{Name: name}
	st.Interval = 60 * time.Second
	st.Timeout = 30 * time.Second
	st.ReadyToTrip = func(counts gobreaker.Counts) bool {
		if counts.ConsecutiveFailures >= 5 {
			return true
		}
		if counts.Requests < 20 {
			return false
		}
		return float64(counts.TotalFailures)/float64(counts.Requests) > 0.5
	}
	st.IsSuccessful = func(err error) bool {
		if err == nil {
			return true
		}
		graphErr, ok := err.(*metadomain.GraphError)
		return ok && graphErr.StatusCode < http.StatusInternalServerError
	}
	st.OnStateChange = func(name string, from, to gobreaker.State) {
		logrus.WithFields(logrus.Fields{
			"breaker": name,
			"from":    from.String(),
			"to":      to.String(),
		}).Warn("metaclient: circuit breaker mudou de estado")
	}
	return gobreaker.NewCircuitBreaker(st)
}
