package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry concentra as métricas Prometheus da API.
// Os métodos aceitam receptor nil para que os componentes funcionem sem métricas nos testes.
type Registry struct {
	registry *prometheus.Registry

	AuditRuns          *prometheus.CounterVec
	AuditDuration      *prometheus.HistogramVec
	DegradedCategories *prometheus.CounterVec

	GraphRequests        *prometheus.CounterVec
	GraphRequestDuration *prometheus.HistogramVec

	ScheduledAuditRuns *prometheus.CounterVec

	HTTPRequests *prometheus.CounterVec
}

func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),

		AuditRuns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "page_audit_runs_total",
				Help: "Total de execuções do pipeline de auditoria por resultado",
			},
			[]string{"result"},
		),

		AuditDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "page_audit_pipeline_duration_seconds",
				Help:    "Duração do pipeline de auditoria em segundos",
				Buckets: []float64{0.25, 0.5, 1, 2.5, 5, 10, 20, 40},
			},
			[]string{"result"},
		),

		DegradedCategories: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "page_audit_degraded_categories_total",
				Help: "Categorias de dados indisponíveis por motivo",
			},
			[]string{"category", "reason"},
		),

		GraphRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "page_audit_graph_requests_total",
				Help: "Requisições à Graph API por endpoint e resultado",
			},
			[]string{"endpoint", "outcome"},
		),

		GraphRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "page_audit_graph_request_duration_seconds",
				Help:    "Duração das requisições à Graph API",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint"},
		),

		ScheduledAuditRuns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "page_audit_scheduled_runs_total",
				Help: "Auditorias agendadas por resultado",
			},
			[]string{"result"},
		),

		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "page_audit_http_requests_total",
				Help: "Requisições HTTP atendidas por método e status",
			},
			[]string{"method", "status"},
		),
	}

	r.registry.MustRegister(
		r.AuditRuns,
		r.AuditDuration,
		r.DegradedCategories,
		r.GraphRequests,
		r.GraphRequestDuration,
		r.ScheduledAuditRuns,
		r.HTTPRequests,
		collectors.NewGoCollector(),
	)

	return r
}

// Handler expõe as métricas no formato Prometheus
func (r *Registry) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

func (r *Registry) ObserveAudit(result string, started time.Time) {
	if r == nil {
		return
	}
	r.AuditRuns.WithLabelValues(result).Inc()
	r.AuditDuration.WithLabelValues(result).Observe(time.Since(started).Seconds())
}

func (r *Registry) IncDegraded(category, reason string) {
	if r == nil {
		return
	}
	r.DegradedCategories.WithLabelValues(category, reason).Inc()
}

func (r *Registry) ObserveGraphRequest(endpoint, outcome string, started time.Time) {
	if r == nil {
		return
	}
	r.GraphRequests.WithLabelValues(endpoint, outcome).Inc()
	r.GraphRequestDuration.WithLabelValues(endpoint).Observe(time.Since(started).Seconds())
}

func (r *Registry) IncScheduledAudit(result string) {
	if r == nil {
		return
	}
	r.ScheduledAuditRuns.WithLabelValues(result).Inc()
}

func (r *Registry) IncHTTPRequest(method string, status int) {
	if r == nil {
		return
	}
	r.HTTPRequests.WithLabelValues(method, strconv.Itoa(status)).Inc()
}
