package reporting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/page-audit-api/infrastructure/repository/mocks"
	"github.com/vfg2006/page-audit-api/internal/domain"
	"github.com/vfg2006/page-audit-api/internal/usecases/auditing"
	"github.com/vfg2006/page-audit-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*Service, *mocks.MockAuditRepository) {
	ctrl := gomock.NewController(t)
	audits := mocks.NewMockAuditRepository(ctrl)

	service := &Service{
		audits:   audits,
		settings: auditing.DefaultSettings(),
		now:      func() time.Time { return testNow },
	}
	return service, audits
}

func storedRecord() *domain.AuditRecord {
	return &domain.AuditRecord{
		ID:            "audit-1",
		ShareCode:     "AbCdEfGhIj",
		UserID:        "user-1",
		PageID:        "page-1",
		CreatedAt:     testNow,
		ScoreTotal:    63,
		IsProUnlocked: true,
		Recommendations: []domain.Recommendation{
			{Title: "engajamento"},
			{Title: "conteúdo", IsProOnly: true},
		},
		InputSummary: domain.InputSummary{PageName: "Pizzaria"},
		Detail:       &domain.AuditDetail{AuditID: "audit-1"},
		State:        domain.StatePersisted,
	}
}

func TestService_GetAudit(t *testing.T) {
	tests := []struct {
		name       string
		identity   domain.Identity
		repoErr    error
		wantCode   string
		wantDetail bool
		wantRecs   int
	}{
		{
			name:       "dono com plano Pro vê o detalhe",
			identity:   domain.Identity{UserID: "user-1", IsEntitled: true},
			wantDetail: true,
			wantRecs:   2,
		},
		{
			name:     "dono que perdeu o Pro recebe a visão free",
			identity: domain.Identity{UserID: "user-1"},
			wantRecs: 1,
		},
		{
			name:     "outro usuário não enxerga",
			identity: domain.Identity{UserID: "user-2", IsEntitled: true},
			wantCode: apiErrors.ErrAuditNotFound,
		},
		{
			name:     "inexistente",
			identity: domain.Identity{UserID: "user-1"},
			repoErr:  domain.ErrAuditNotFound,
			wantCode: apiErrors.ErrAuditNotFound,
		},
		{
			name:     "erro de banco",
			identity: domain.Identity{UserID: "user-1"},
			repoErr:  errors.New("connection refused"),
			wantCode: apiErrors.ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, audits := newTestService(t)

			if tt.repoErr != nil {
				audits.EXPECT().GetByID(gomock.Any(), "audit-1").Return(nil, tt.repoErr)
			} else {
				audits.EXPECT().GetByID(gomock.Any(), "audit-1").Return(storedRecord(), nil)
			}

			record, err := service.GetAudit(context.Background(), tt.identity, "audit-1")
			if tt.wantCode != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, auditing.CodeOf(err))
				assert.Nil(t, record)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantDetail, record.Detail != nil)
			assert.Len(t, record.Recommendations, tt.wantRecs)
		})
	}
}

func TestService_GetAudit_MissingID(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.GetAudit(context.Background(), domain.Identity{UserID: "user-1"}, "")
	assert.Equal(t, apiErrors.ErrMissingRequiredData, auditing.CodeOf(err))
}

func TestService_ListAudits(t *testing.T) {
	t.Run("aplica paginação padrão e máxima", func(t *testing.T) {
		service, audits := newTestService(t)

		gomock.InOrder(
			audits.EXPECT().ListByUser(gomock.Any(), "user-1", 20, 0).Return([]*domain.AuditRecord{storedRecord()}, nil),
			audits.EXPECT().ListByUser(gomock.Any(), "user-1", 100, 10).Return([]*domain.AuditRecord{}, nil),
		)

		summaries, err := service.ListAudits(context.Background(), domain.Identity{UserID: "user-1"}, 0, -5)
		require.NoError(t, err)
		require.Len(t, summaries, 1)
		assert.Equal(t, "Pizzaria", summaries[0].PageName)
		assert.Equal(t, 63, summaries[0].ScoreTotal)

		summaries, err = service.ListAudits(context.Background(), domain.Identity{UserID: "user-1"}, 500, 10)
		require.NoError(t, err)
		assert.NotNil(t, summaries)
		assert.Empty(t, summaries)
	})

	t.Run("erro de banco", func(t *testing.T) {
		service, audits := newTestService(t)
		audits.EXPECT().ListByUser(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

		_, err := service.ListAudits(context.Background(), domain.Identity{UserID: "user-1"}, 10, 0)
		assert.Equal(t, apiErrors.ErrDatabaseOperation, auditing.CodeOf(err))
	})
}

func TestService_GetSharedSummary(t *testing.T) {
	t.Run("retorna apenas o resumo", func(t *testing.T) {
		service, audits := newTestService(t)
		audits.EXPECT().GetByShareCode(gomock.Any(), "AbCdEfGhIj").Return(storedRecord(), nil)

		summary, err := service.GetSharedSummary(context.Background(), "AbCdEfGhIj")
		require.NoError(t, err)
		assert.Equal(t, domain.AuditSummary{
			ID:            "audit-1",
			ShareCode:     "AbCdEfGhIj",
			PageID:        "page-1",
			PageName:      "Pizzaria",
			CreatedAt:     testNow,
			ScoreTotal:    63,
			IsProUnlocked: true,
		}, *summary)
	})

	t.Run("código desconhecido", func(t *testing.T) {
		service, audits := newTestService(t)
		audits.EXPECT().GetByShareCode(gomock.Any(), "xxx").Return(nil, domain.ErrAuditNotFound)

		_, err := service.GetSharedSummary(context.Background(), "xxx")
		assert.ErrorIs(t, err, domain.ErrAuditNotFound)
		assert.Equal(t, apiErrors.ErrAuditNotFound, auditing.CodeOf(err))
	})
}

func TestService_GetQuota(t *testing.T) {
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		identity domain.Identity
		used     int
		expected domain.QuotaStatus
	}{
		{
			name:     "free com saldo",
			identity: domain.Identity{UserID: "user-1"},
			used:     1,
			expected: domain.QuotaStatus{Used: 1, Limit: 3, Remaining: 2, PeriodStart: start, PeriodEnd: end},
		},
		{
			name:     "free acima do limite não fica negativo",
			identity: domain.Identity{UserID: "user-1"},
			used:     5,
			expected: domain.QuotaStatus{Used: 5, Limit: 3, Remaining: 0, PeriodStart: start, PeriodEnd: end},
		},
		{
			name:     "pro",
			identity: domain.Identity{UserID: "user-1", IsEntitled: true},
			used:     10,
			expected: domain.QuotaStatus{Used: 10, Limit: 50, Remaining: 40, PeriodStart: start, PeriodEnd: end},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, audits := newTestService(t)
			audits.EXPECT().CountInPeriod(gomock.Any(), "user-1", start, end).Return(tt.used, nil)

			status, err := service.GetQuota(context.Background(), tt.identity)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, *status)
		})
	}
}

func TestService_GetQuota_Unlimited(t *testing.T) {
	service, audits := newTestService(t)
	service.settings.ProMonthlyLimit = -1
	audits.EXPECT().CountInPeriod(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(7, nil)

	status, err := service.GetQuota(context.Background(), domain.Identity{UserID: "user-1", IsEntitled: true})
	require.NoError(t, err)
	assert.Equal(t, -1, status.Remaining)
}
