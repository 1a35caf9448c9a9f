package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/page-audit-api/internal/api/handler"
	"github.com/vfg2006/page-audit-api/internal/api/handler/router"
	"github.com/vfg2006/page-audit-api/internal/config"
	"github.com/vfg2006/page-audit-api/internal/usecases/auditing"
	"github.com/vfg2006/page-audit-api/internal/usecases/authenticating"
	"github.com/vfg2006/page-audit-api/internal/usecases/reporting"
	"github.com/vfg2006/page-audit-api/pkg/metrics"
	"github.com/vfg2006/page-audit-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

// Dependencies são os serviços expostos pela API
type Dependencies struct {
	Auditor       auditing.Auditor
	Reporter      reporting.Reporter
	Authenticator authenticating.Authenticator
	Database      handler.Pinger
	Metrics       *metrics.Registry
	CronServices  handler.CronJobServices
}

// NewHandler monta o router com a cadeia de middlewares globais
func NewHandler(deps Dependencies) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck(deps.Database)...),
		router.WithRoutes(handler.Metrics(deps.Metrics)...),
		router.WithRoutes(handler.Audits(deps.Auditor, deps.Reporter)...),
		router.WithRoutes(handler.Reports(deps.Reporter)...),
		router.WithRoutes(handler.CronJobs(deps.CronServices)...),
	)

	middlewares := []alice.Constructor{
		// panics recuperados também entram no log e na métrica de status
		middleware.LoggingMiddleware(deps.Metrics),
		middleware.LogPanicMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(deps.Authenticator),
	}

	return alice.New(middlewares...).Then(rt)
}

func New(config *config.Config, deps Dependencies) (*Server, error) {
	if deps.Auditor == nil || deps.Reporter == nil || deps.Authenticator == nil {
		return nil, fmt.Errorf("dependências obrigatórias da API não informadas")
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           NewHandler(deps),
			ReadHeaderTimeout: 2 * time.Second,
			// auditorias consultam o Graph de forma síncrona
			WriteTimeout: 90 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
