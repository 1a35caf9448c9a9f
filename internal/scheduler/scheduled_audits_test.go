package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/page-audit-api/infrastructure/repository/mocks"
	"github.com/vfg2006/page-audit-api/internal/config"
	"github.com/vfg2006/page-audit-api/internal/domain"
	"github.com/vfg2006/page-audit-api/internal/usecases/auditing"
	auditmocks "github.com/vfg2006/page-audit-api/internal/usecases/auditing/mocks"
	"github.com/vfg2006/page-audit-api/pkg/apiErrors"
	"github.com/vfg2006/page-audit-api/pkg/metrics"
	"go.uber.org/mock/gomock"
)

func newTestScheduledService(t *testing.T, maxJobs int) (*ScheduledAuditService, *mocks.MockPageConnectionRepository, *auditmocks.MockAuditor, *metrics.Registry) {
	ctrl := gomock.NewController(t)
	connectionRepo := mocks.NewMockPageConnectionRepository(ctrl)
	auditor := auditmocks.NewMockAuditor(ctrl)
	registry := metrics.NewRegistry()

	cfg := &config.Config{ScheduledAudit: config.ScheduledAudit{
		Enabled:           true,
		MaxConcurrentJobs: maxJobs,
		Preset:            domain.Preset7Days,
	}}

	return NewScheduledAuditService(connectionRepo, auditor, registry, cfg), connectionRepo, auditor, registry
}

func TestScheduledAuditService_RunScheduledAudits(t *testing.T) {
	service, connectionRepo, auditor, registry := newTestScheduledService(t, 2)

	connections := []*domain.PageConnection{
		{ID: "conn-1", UserID: "user-1", PageID: "page-1", AccessToken: "t1"},
		{ID: "conn-2", UserID: "user-2", PageID: "page-2", AccessToken: "t2"},
		{ID: "conn-3", UserID: "user-3", PageID: "page-3", AccessToken: "t3"},
		{ID: "conn-4", UserID: "user-4", PageID: "page-4"},
	}
	connectionRepo.EXPECT().ListAutoAuditConnections(gomock.Any()).Return(connections, nil)

	auditor.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any()).Times(3).
		DoAndReturn(func(_ context.Context, identity domain.Identity, req domain.AuditRequest) (*domain.AuditRecord, error) {
			assert.True(t, identity.IsEntitled)
			assert.Equal(t, domain.RoleService, identity.Role)
			assert.Equal(t, domain.Preset7Days, req.Preset)

			switch req.ConnectionID {
			case "conn-1":
				return &domain.AuditRecord{ID: "audit-1", ScoreTotal: 70}, nil
			case "conn-2":
				return nil, auditing.NewAuditError(domain.ErrQuotaExceeded, apiErrors.ErrQuotaExceeded, nil)
			default:
				return nil, auditing.NewAuditError(errors.New("graph fora do ar"), apiErrors.ErrExternalService, nil)
			}
		})

	summary, ok := service.RunScheduledAudits(context.Background())
	require.True(t, ok)
	assert.Equal(t, RunSummary{Connections: 4, Succeeded: 1, Failed: 1, Skipped: 2}, summary)

	assert.Equal(t, 1.0, testutil.ToFloat64(registry.ScheduledAuditRuns.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(registry.ScheduledAuditRuns.WithLabelValues("quota_exceeded")))
	assert.Equal(t, 1.0, testutil.ToFloat64(registry.ScheduledAuditRuns.WithLabelValues("error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(registry.ScheduledAuditRuns.WithLabelValues("skipped")))

	status := service.GetStatus()
	assert.Equal(t, false, status["running"])
	assert.Equal(t, summary, status["last_summary"])
}

func TestScheduledAuditService_BoundedConcurrency(t *testing.T) {
	service, connectionRepo, auditor, _ := newTestScheduledService(t, 2)

	connections := make([]*domain.PageConnection, 0, 6)
	for i := 0; i < 6; i++ {
		connections = append(connections, &domain.PageConnection{ID: fmt.Sprintf("conn-%d", i), AccessToken: "t"})
	}
	connectionRepo.EXPECT().ListAutoAuditConnections(gomock.Any()).Return(connections, nil)

	var running, peak int32
	auditor.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any()).Times(6).
		DoAndReturn(func(_ context.Context, _ domain.Identity, _ domain.AuditRequest) (*domain.AuditRecord, error) {
			current := atomic.AddInt32(&running, 1)
			for {
				old := atomic.LoadInt32(&peak)
				if current <= old || atomic.CompareAndSwapInt32(&peak, old, current) {
					break
				}
			}
			time.Sleep(10 * time.Millisecond)
			atomic.AddInt32(&running, -1)
			return &domain.AuditRecord{ID: "a"}, nil
		})

	summary, ok := service.RunScheduledAudits(context.Background())
	require.True(t, ok)
	assert.Equal(t, 6, summary.Succeeded)
	assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(2))
}

func TestScheduledAuditService_SkipsWhenRunning(t *testing.T) {
	service, _, _, _ := newTestScheduledService(t, 1)

	service.syncRunning = true
	summary, ok := service.RunScheduledAudits(context.Background())
	assert.False(t, ok)
	assert.Equal(t, RunSummary{}, summary)
}

func TestScheduledAuditService_ListError(t *testing.T) {
	service, connectionRepo, _, _ := newTestScheduledService(t, 1)
	connectionRepo.EXPECT().ListAutoAuditConnections(gomock.Any()).Return(nil, errors.New("timeout"))

	summary, ok := service.RunScheduledAudits(context.Background())
	assert.True(t, ok)
	assert.Equal(t, RunSummary{}, summary)
}

func TestNewScheduledAuditService_Defaults(t *testing.T) {
	service := NewScheduledAuditService(nil, nil, nil, &config.Config{})

	assert.Equal(t, defaultScheduledCron, service.config.CronSchedule)
	assert.Equal(t, defaultScheduledConcurrency, service.config.MaxConcurrentJobs)
	assert.NoError(t, service.Start(context.Background()))
}
