package auditing

import (
	"fmt"
	"time"

	"github.com/vfg2006/page-audit-api/internal/domain"
	"github.com/vfg2006/page-audit-api/internal/usecases/scoring"
	"github.com/vfg2006/page-audit-api/pkg/utils"
)

// Builder monta o registro de auditoria percorrendo created → scored → (detailed) → persisted.
// Só ele altera o registro; depois de persisted nenhuma transição é aceita.
type Builder struct {
	record *domain.AuditRecord
}

// NewBuilder cria o registro no estado created. O acesso Pro é fixado aqui e não é recalculado depois.
func NewBuilder(identity domain.Identity, connection *domain.PageConnection, createdAt time.Time) (*Builder, error) {
	shareCode, err := utils.GenerateShareCode()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar código de compartilhamento: %w", err)
	}

	return &Builder{
		record: &domain.AuditRecord{
			ID:              utils.NewAuditID(),
			ShareCode:       shareCode,
			UserID:          identity.UserID,
			PageID:          connection.PageID,
			ConnectionID:    connection.ID,
			CreatedAt:       createdAt.UTC(),
			Recommendations: make([]domain.Recommendation, 0),
			IsProUnlocked:   identity.IsEntitled,
			State:           domain.StateCreated,
		},
	}, nil
}

func (b *Builder) State() domain.RecordState {
	return b.record.State
}

func (b *Builder) transition(from []domain.RecordState, to domain.RecordState) error {
	for _, s := range from {
		if b.record.State == s {
			b.record.State = to
			return nil
		}
	}
	return fmt.Errorf("%w: %s → %s", domain.ErrInvalidStateTransition, b.record.State, to)
}

// Score grava a pontuação, as recomendações já recortadas pelo plano e o resumo das entradas
func (b *Builder) Score(breakdown domain.ScoreBreakdown, recs []domain.Recommendation, summary domain.InputSummary) error {
	if err := b.transition([]domain.RecordState{domain.StateCreated}, domain.StateScored); err != nil {
		return err
	}

	b.record.ScoreBreakdown = breakdown
	b.record.ScoreTotal = breakdown.Overall
	b.record.Recommendations = append(make([]domain.Recommendation, 0, len(recs)), recs...)
	b.record.InputSummary = summary

	return nil
}

// Detail anexa o payload Pro. Registros sem acesso Pro nunca recebem detalhe.
func (b *Builder) Detail(detail *domain.AuditDetail) error {
	if !b.record.IsProUnlocked {
		return fmt.Errorf("%w: detalhe exige acesso Pro", domain.ErrInvalidStateTransition)
	}
	if detail == nil {
		return fmt.Errorf("%w: detalhe nulo", domain.ErrInvalidStateTransition)
	}

	if err := b.transition([]domain.RecordState{domain.StateScored}, domain.StateDetailed); err != nil {
		return err
	}

	detail.AuditID = b.record.ID
	b.record.Detail = detail

	return nil
}

// MarkPersisted fecha o ciclo de vida do registro
func (b *Builder) MarkPersisted() error {
	return b.transition([]domain.RecordState{domain.StateScored, domain.StateDetailed}, domain.StatePersisted)
}

// Record retorna o registro em construção
func (b *Builder) Record() *domain.AuditRecord {
	return b.record
}

// Project devolve a visão do registro para o plano do leitor: sem acesso Pro, remove o detalhe
// e os itens Pro das recomendações. O registro original não é alterado.
func Project(record *domain.AuditRecord, entitled bool, recommendationLimit int) *domain.AuditRecord {
	if record == nil {
		return nil
	}

	projected := *record
	projected.Recommendations = scoring.FilterForTier(record.Recommendations, entitled, recommendationLimit)

	if !entitled {
		projected.Detail = nil
	}

	return &projected
}
