package reporting

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/page-audit-api/infrastructure/repository"
	"github.com/vfg2006/page-audit-api/internal/domain"
	"github.com/vfg2006/page-audit-api/internal/usecases/auditing"
	"github.com/vfg2006/page-audit-api/pkg/apiErrors"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type Reporter interface {
	GetAudit(ctx context.Context, identity domain.Identity, auditID string) (*domain.AuditRecord, error)
	ListAudits(ctx context.Context, identity domain.Identity, limit, offset int) ([]domain.AuditSummary, error)
	GetSharedSummary(ctx context.Context, shareCode string) (*domain.AuditSummary, error)
	GetQuota(ctx context.Context, identity domain.Identity) (*domain.QuotaStatus, error)
}

type Service struct {
	audits   repository.AuditRepository
	settings auditing.Settings
	now      func() time.Time
}

func NewService(audits repository.AuditRepository, settings auditing.Settings) Reporter {
	return &Service{
		audits:   audits,
		settings: settings,
		now:      time.Now,
	}
}

// GetAudit retorna a auditoria do próprio usuário projetada para o plano atual dele.
// Auditorias de outros usuários respondem como inexistentes.
func (s *Service) GetAudit(ctx context.Context, identity domain.Identity, auditID string) (*domain.AuditRecord, error) {
	if auditID == "" {
		return nil, auditing.NewAuditError(errors.New("id da auditoria é obrigatório"), apiErrors.ErrMissingRequiredData, nil)
	}

	record, err := s.audits.GetByID(ctx, auditID)
	if err != nil {
		return nil, s.lookupError(err, "id", auditID)
	}

	if record.UserID != identity.UserID {
		return nil, auditing.NewAuditError(domain.ErrAuditNotFound, apiErrors.ErrAuditNotFound, nil)
	}

	return auditing.Project(record, identity.IsEntitled, s.settings.FreeRecommendationLimit), nil
}

func (s *Service) ListAudits(ctx context.Context, identity domain.Identity, limit, offset int) ([]domain.AuditSummary, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	limit = min(limit, maxPageSize)
	offset = max(offset, 0)

	records, err := s.audits.ListByUser(ctx, identity.UserID, limit, offset)
	if err != nil {
		logrus.WithError(err).WithField("user_id", identity.UserID).Error("erro ao listar auditorias")
		return nil, auditing.NewAuditError(err, apiErrors.ErrDatabaseOperation, nil)
	}

	summaries := make([]domain.AuditSummary, 0, len(records))
	for _, r := range records {
		summaries = append(summaries, r.Summary())
	}

	return summaries, nil
}

// GetSharedSummary é a visão pública pelo código de compartilhamento; nunca inclui o detalhe Pro
func (s *Service) GetSharedSummary(ctx context.Context, shareCode string) (*domain.AuditSummary, error) {
	if shareCode == "" {
		return nil, auditing.NewAuditError(errors.New("código de compartilhamento é obrigatório"), apiErrors.ErrMissingRequiredData, nil)
	}

	record, err := s.audits.GetByShareCode(ctx, shareCode)
	if err != nil {
		return nil, s.lookupError(err, "share_code", shareCode)
	}

	summary := record.Summary()
	return &summary, nil
}

// GetQuota informa o consumo do mês-calendário corrente (UTC)
func (s *Service) GetQuota(ctx context.Context, identity domain.Identity) (*domain.QuotaStatus, error) {
	start, end := domain.MonthPeriod(s.now())

	used, err := s.audits.CountInPeriod(ctx, identity.UserID, start, end)
	if err != nil {
		logrus.WithError(err).WithField("user_id", identity.UserID).Error("erro ao contar auditorias do período")
		return nil, auditing.NewAuditError(err, apiErrors.ErrDatabaseOperation, nil)
	}

	limit := s.settings.MonthlyLimit(identity.IsEntitled)
	remaining := -1
	if limit > 0 {
		remaining = max(limit-used, 0)
	}

	return &domain.QuotaStatus{
		Used:        used,
		Limit:       limit,
		Remaining:   remaining,
		PeriodStart: start,
		PeriodEnd:   end,
	}, nil
}

func (s *Service) lookupError(err error, field, value string) error {
	if errors.Is(err, domain.ErrAuditNotFound) {
		return auditing.NewAuditError(err, apiErrors.ErrAuditNotFound, nil)
	}
	logrus.WithError(err).WithField(field, value).Error("erro ao buscar auditoria")
	return auditing.NewAuditError(err, apiErrors.ErrDatabaseOperation, nil)
}
