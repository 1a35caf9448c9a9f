package handler

import (
	"net/http"

	"github.com/vfg2006/page-audit-api/internal/api/handler/router"
	"github.com/vfg2006/page-audit-api/internal/usecases/auditing"
	"github.com/vfg2006/page-audit-api/internal/usecases/reporting"
	"github.com/vfg2006/page-audit-api/pkg/metrics"
	"github.com/vfg2006/page-audit-api/pkg/middleware"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Metrics(registry *metrics.Registry) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: registry.Handler(),
		},
	}
}

func Audits(auditor auditing.Auditor, reporter reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/audits",
			Method:  http.MethodPost,
			Handler: CreateAudit(auditor),
		},
		{
			Path:    "/v1/audits",
			Method:  http.MethodGet,
			Handler: ListAudits(reporter),
		},
		{
			Path:    "/v1/audits/:id",
			Method:  http.MethodGet,
			Handler: GetAudit(reporter),
		},
		{
			Path:    "/v1/quota",
			Method:  http.MethodGet,
			Handler: GetQuota(reporter),
		},
	}
}

// Reports são as rotas públicas de compartilhamento
func Reports(reporter reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports/:code",
			Method:  http.MethodGet,
			Handler: GetSharedReport(reporter),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.ServiceOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.ServiceOnly()},
		},
	}
}
