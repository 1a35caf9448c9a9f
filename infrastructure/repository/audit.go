package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"
	"github.com/vfg2006/page-audit-api/infrastructure/database/postgres"
	"github.com/vfg2006/page-audit-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	auditsTable       = "audits"
	auditDetailsTable = "audit_details"
	auditColumns      = "a.id, a.share_code, a.user_id, a.page_id, a.connection_id, a.score_total, " +
		"a.score_breakdown, a.recommendations, a.input_data, a.is_pro_unlocked, a.created_at"
	detailColumns = "ad.raw_metrics, ad.computed_metrics, ad.data_availability, ad.demographics"
)

type AuditRepository interface {
	CountInPeriod(ctx context.Context, userID string, start, end time.Time) (int, error)
	CreateWithinQuota(ctx context.Context, record *domain.AuditRecord, limit int) error
	GetByID(ctx context.Context, auditID string) (*domain.AuditRecord, error)
	GetByShareCode(ctx context.Context, shareCode string) (*domain.AuditRecord, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*domain.AuditRecord, error)
}

type auditRepository struct {
	conn *postgres.Connection
}

func NewAuditRepository(conn *postgres.Connection) AuditRepository {
	return &auditRepository{
		conn: conn,
	}
}

// QuotaLockKey é a chave do advisory lock que serializa a cota de um usuário no mês
func QuotaLockKey(userID string, at time.Time) string {
	return fmt.Sprintf("audit-quota:%s:%s", userID, at.UTC().Format("2006-01"))
}

func countQuery(userID string, start, end time.Time) (string, []interface{}, error) {
	return squirrel.
		Select("COUNT(*)").
		From(auditsTable).
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.GtOrEq{"created_at": start}).
		Where(squirrel.Lt{"created_at": end}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *auditRepository) CountInPeriod(ctx context.Context, userID string, start, end time.Time) (int, error) {
	query, args, err := countQuery(userID, start, end)
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar auditorias: %w", err)
	}

	return count, nil
}

// CreateWithinQuota verifica a cota e grava a auditoria (e o detalhe, quando existe) na mesma transação.
// O advisory lock por usuário+mês impede que duas execuções concorrentes passem pela verificação juntas.
func (r *auditRepository) CreateWithinQuota(ctx context.Context, record *domain.AuditRecord, limit int) error {
	if record == nil {
		return errors.New("registro de auditoria nulo")
	}

	start, end := domain.MonthPeriod(record.CreatedAt)

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", QuotaLockKey(record.UserID, record.CreatedAt)); err != nil {
			return fmt.Errorf("erro ao obter lock da cota: %w", err)
		}

		query, args, err := countQuery(record.UserID, start, end)
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		var used int
		if err := tx.QueryRowContext(ctx, query, args...).Scan(&used); err != nil {
			return fmt.Errorf("erro ao contar auditorias: %w", err)
		}

		if limit > 0 && used >= limit {
			return domain.ErrQuotaExceeded
		}

		if err := r.insertAudit(ctx, tx, record); err != nil {
			return err
		}

		if record.Detail != nil {
			return r.insertDetail(ctx, tx, record.ID, record.Detail)
		}

		return nil
	})
}

func (r *auditRepository) insertAudit(ctx context.Context, tx *sql.Tx, record *domain.AuditRecord) error {
	breakdownJSON, err := json.Marshal(record.ScoreBreakdown)
	if err != nil {
		return fmt.Errorf("erro ao serializar score_breakdown: %w", err)
	}

	recommendationsJSON, err := json.Marshal(record.Recommendations)
	if err != nil {
		return fmt.Errorf("erro ao serializar recommendations: %w", err)
	}

	inputJSON, err := json.Marshal(record.InputSummary)
	if err != nil {
		return fmt.Errorf("erro ao serializar input_data: %w", err)
	}

	query, args, err := squirrel.
		Insert(auditsTable).
		Columns("id", "share_code", "user_id", "page_id", "connection_id", "score_total",
			"score_breakdown", "recommendations", "input_data", "is_pro_unlocked", "created_at").
		Values(record.ID, record.ShareCode, record.UserID, record.PageID, record.ConnectionID, record.ScoreTotal,
			breakdownJSON, recommendationsJSON, inputJSON, record.IsProUnlocked, record.CreatedAt).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao inserir auditoria: %w", err)
	}

	return nil
}

func (r *auditRepository) insertDetail(ctx context.Context, tx *sql.Tx, auditID string, detail *domain.AuditDetail) error {
	rawJSON, err := json.Marshal(detail.RawMetrics)
	if err != nil {
		return fmt.Errorf("erro ao serializar raw_metrics: %w", err)
	}

	computedJSON, err := json.Marshal(detail.ComputedMetrics)
	if err != nil {
		return fmt.Errorf("erro ao serializar computed_metrics: %w", err)
	}

	availabilityJSON, err := json.Marshal(detail.DataAvailability)
	if err != nil {
		return fmt.Errorf("erro ao serializar data_availability: %w", err)
	}

	var demographicsJSON interface{}
	if detail.Demographics != nil {
		encoded, err := json.Marshal(detail.Demographics)
		if err != nil {
			return fmt.Errorf("erro ao serializar demographics: %w", err)
		}
		demographicsJSON = encoded
	}

	query, args, err := squirrel.
		Insert(auditDetailsTable).
		Columns("audit_id", "raw_metrics", "computed_metrics", "data_availability", "demographics").
		Values(auditID, rawJSON, computedJSON, availabilityJSON, demographicsJSON).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao inserir detalhe da auditoria: %w", err)
	}

	return nil
}

// GetByID retorna a auditoria com o detalhe, se existir
func (r *auditRepository) GetByID(ctx context.Context, auditID string) (*domain.AuditRecord, error) {
	query, args, err := squirrel.
		Select(auditColumns + ", ad.audit_id, " + detailColumns).
		From(auditsTable + " a").
		LeftJoin(auditDetailsTable + " ad ON ad.audit_id = a.id").
		Where(squirrel.Eq{"a.id": auditID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var (
		row                                       = &auditRow{}
		detailID                                  sql.NullString
		rawJSON, computedJSON, availJSON, demoJSON []byte
	)

	dest := append(row.dest(), &detailID, &rawJSON, &computedJSON, &availJSON, &demoJSON)
	if err := r.conn.QueryRow(ctx, query, args...).Scan(dest...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAuditNotFound
		}
		return nil, fmt.Errorf("erro ao escanear auditoria: %w", err)
	}

	record, err := row.decode()
	if err != nil {
		return nil, err
	}

	if detailID.Valid {
		detail := &domain.AuditDetail{AuditID: detailID.String}
		if err := unmarshalColumn("raw_metrics", rawJSON, &detail.RawMetrics); err != nil {
			return nil, err
		}
		if err := unmarshalColumn("computed_metrics", computedJSON, &detail.ComputedMetrics); err != nil {
			return nil, err
		}
		if err := unmarshalColumn("data_availability", availJSON, &detail.DataAvailability); err != nil {
			return nil, err
		}
		if err := unmarshalColumn("demographics", demoJSON, &detail.Demographics); err != nil {
			return nil, err
		}
		record.Detail = detail
	}

	return record, nil
}

// GetByShareCode retorna apenas a visão pública, nunca o detalhe
func (r *auditRepository) GetByShareCode(ctx context.Context, shareCode string) (*domain.AuditRecord, error) {
	query, args, err := squirrel.
		Select(auditColumns).
		From(auditsTable + " a").
		Where(squirrel.Eq{"a.share_code": shareCode}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := &auditRow{}
	if err := r.conn.QueryRow(ctx, query, args...).Scan(row.dest()...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAuditNotFound
		}
		return nil, fmt.Errorf("erro ao escanear auditoria: %w", err)
	}

	return row.decode()
}

func (r *auditRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*domain.AuditRecord, error) {
	builder := squirrel.
		Select(auditColumns).
		From(auditsTable + " a").
		Where(squirrel.Eq{"a.user_id": userID}).
		OrderBy("a.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}
	if offset > 0 {
		builder = builder.Offset(uint64(offset))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]*domain.AuditRecord, 0)
	for rows.Next() {
		row := &auditRow{}
		if err := rows.Scan(row.dest()...); err != nil {
			return nil, fmt.Errorf("erro ao escanear auditoria: %w", err)
		}
		record, err := row.decode()
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

// auditRow recebe as colunas de auditColumns; as colunas JSON são decodificadas depois do Scan
type auditRow struct {
	record                            domain.AuditRecord
	breakdown, recommendations, input []byte
}

func (a *auditRow) dest() []interface{} {
	return []interface{}{
		&a.record.ID,
		&a.record.ShareCode,
		&a.record.UserID,
		&a.record.PageID,
		&a.record.ConnectionID,
		&a.record.ScoreTotal,
		&a.breakdown,
		&a.recommendations,
		&a.input,
		&a.record.IsProUnlocked,
		&a.record.CreatedAt,
	}
}

func (a *auditRow) decode() (*domain.AuditRecord, error) {
	record := a.record

	if err := unmarshalColumn("score_breakdown", a.breakdown, &record.ScoreBreakdown); err != nil {
		return nil, err
	}
	if err := unmarshalColumn("recommendations", a.recommendations, &record.Recommendations); err != nil {
		return nil, err
	}
	if err := unmarshalColumn("input_data", a.input, &record.InputSummary); err != nil {
		return nil, err
	}
	if record.Recommendations == nil {
		record.Recommendations = make([]domain.Recommendation, 0)
	}

	record.State = domain.StatePersisted

	return &record, nil
}

func unmarshalColumn(column string, data []byte, target interface{}) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("erro ao desserializar %s: %w", column, err)
	}
	return nil
}
