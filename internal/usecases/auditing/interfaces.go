package auditing

import (
	"context"

	"github.com/vfg2006/page-audit-api/internal/domain"
)

type MetricFetcher interface {
	FetchPageData(ctx context.Context, req domain.FetchRequest) (*domain.FetchResult, error)
}

type Auditor interface {
	Run(ctx context.Context, identity domain.Identity, req domain.AuditRequest) (*domain.AuditRecord, error)
}
