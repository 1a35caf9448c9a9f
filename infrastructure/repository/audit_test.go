package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/page-audit-api/infrastructure/database/postgres"
	"github.com/vfg2006/page-audit-api/internal/domain"
)

const (
	lockSQL         = "SELECT pg_advisory_xact_lock(hashtext($1))"
	countSQL        = "SELECT COUNT(*) FROM audits WHERE user_id = $1 AND created_at >= $2 AND created_at < $3"
	insertAuditSQL  = "INSERT INTO audits (id,share_code,user_id,page_id,connection_id,score_total,score_breakdown,recommendations,input_data,is_pro_unlocked,created_at)"
	insertDetailSQL = "INSERT INTO audit_details (audit_id,raw_metrics,computed_metrics,data_availability,demographics)"
)

var auditRowColumns = []string{
	"id", "share_code", "user_id", "page_id", "connection_id", "score_total",
	"score_breakdown", "recommendations", "input_data", "is_pro_unlocked", "created_at",
}

func newMockConnection(t *testing.T) (*postgres.Connection, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return postgres.NewFromDB(db), mock
}

func sampleRecord(withDetail bool) *domain.AuditRecord {
	record := &domain.AuditRecord{
		ID:             "6f1c1a9e-8f8b-4c7e-9d55-0c8f3b7a1e11",
		ShareCode:      "Ab12Cd34Ef",
		UserID:         "user-1",
		PageID:         "page-1",
		ConnectionID:   "conn-1",
		CreatedAt:      time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC),
		ScoreTotal:     63,
		ScoreBreakdown: domain.ScoreBreakdown{Engagement: 20, Consistency: 85, Readiness: 100, Overall: 63},
		Recommendations: []domain.Recommendation{
			{Priority: domain.PriorityHigh, Category: "engagement", Title: "Aumente o engajamento"},
		},
		InputSummary: domain.InputSummary{
			AggregatedMetrics: domain.AggregatedMetrics{Followers: 10000, PostsCount: 10},
			PageName:          "Pizzaria",
		},
		IsProUnlocked: withDetail,
	}

	if withDetail {
		record.Detail = &domain.AuditDetail{
			AuditID:          record.ID,
			DataAvailability: domain.NewDataAvailability(),
		}
	}

	return record
}

func TestQuotaLockKey(t *testing.T) {
	at := time.Date(2024, 12, 31, 23, 30, 0, 0, time.FixedZone("BRT", -3*3600))
	assert.Equal(t, "audit-quota:user-1:2025-01", QuotaLockKey("user-1", at))
}

func TestAuditRepository_CreateWithinQuota(t *testing.T) {
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("grava auditoria e detalhe na mesma transação", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := NewAuditRepository(conn)
		record := sampleRecord(true)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(lockSQL)).
			WithArgs("audit-quota:user-1:2024-05").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(regexp.QuoteMeta(countSQL)).
			WithArgs("user-1", start, end).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
		mock.ExpectExec(regexp.QuoteMeta(insertAuditSQL)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta(insertDetailSQL)).
			WithArgs(record.ID, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), nil).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.CreateWithinQuota(context.Background(), record, 3))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("sem detalhe não grava audit_details", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := NewAuditRepository(conn)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(lockSQL)).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(regexp.QuoteMeta(countSQL)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectExec(regexp.QuoteMeta(insertAuditSQL)).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.CreateWithinQuota(context.Background(), sampleRecord(false), 3))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("cota esgotada desfaz a transação", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := NewAuditRepository(conn)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(lockSQL)).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(regexp.QuoteMeta(countSQL)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
		mock.ExpectRollback()

		err := repo.CreateWithinQuota(context.Background(), sampleRecord(false), 3)
		assert.ErrorIs(t, err, domain.ErrQuotaExceeded)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("falha no detalhe não deixa registro parcial", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := NewAuditRepository(conn)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(lockSQL)).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(regexp.QuoteMeta(countSQL)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectExec(regexp.QuoteMeta(insertAuditSQL)).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta(insertDetailSQL)).WillReturnError(errors.New("disk full"))
		mock.ExpectRollback()

		err := repo.CreateWithinQuota(context.Background(), sampleRecord(true), 3)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk full")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("limite zero não restringe", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := NewAuditRepository(conn)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(lockSQL)).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(regexp.QuoteMeta(countSQL)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(500))
		mock.ExpectExec(regexp.QuoteMeta(insertAuditSQL)).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.CreateWithinQuota(context.Background(), sampleRecord(false), 0))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAuditRepository_CountInPeriod(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewAuditRepository(conn)
	start, end := domain.MonthPeriod(time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC))

	mock.ExpectQuery(regexp.QuoteMeta(countSQL)).
		WithArgs("user-1", start, end).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	count, err := repo.CountInPeriod(context.Background(), "user-1", start, end)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func auditRowValues(record *domain.AuditRecord) []driver.Value {
	return []driver.Value{
		record.ID, record.ShareCode, record.UserID, record.PageID, record.ConnectionID, record.ScoreTotal,
		[]byte(`{"engagement":20,"consistency":85,"readiness":100,"overall":63}`),
		[]byte(`[{"priority":"high","category":"engagement","title":"Aumente o engajamento","description":"","isProOnly":false}]`),
		[]byte(`{"followers":10000,"postsCount":10,"pageName":"Pizzaria"}`),
		record.IsProUnlocked, record.CreatedAt,
	}
}

func TestAuditRepository_GetByID(t *testing.T) {
	t.Run("com detalhe", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := NewAuditRepository(conn)
		record := sampleRecord(true)

		columns := append(append([]string{}, auditRowColumns...),
			"audit_id", "raw_metrics", "computed_metrics", "data_availability", "demographics")
		values := append(auditRowValues(record),
			record.ID,
			[]byte(`{"posts":[{"id":"p1","type":"photo","createdAt":"2024-05-10T12:00:00Z","likeCount":3,"commentCount":0,"shareCount":0}],"window":{"since":"2024-04-20T00:00:00Z","until":"2024-05-20T00:00:00Z"}}`),
			[]byte(`{"followers":10000,"paidVsOrganic":{"available":false}}`),
			[]byte(`{"posts":{"status":"ok"}}`),
			nil,
		)

		mock.ExpectQuery(regexp.QuoteMeta("LEFT JOIN audit_details ad ON ad.audit_id = a.id WHERE a.id = $1")).
			WithArgs(record.ID).
			WillReturnRows(sqlmock.NewRows(columns).AddRow(values...))

		got, err := repo.GetByID(context.Background(), record.ID)
		require.NoError(t, err)

		assert.Equal(t, domain.StatePersisted, got.State)
		assert.Equal(t, 63, got.ScoreBreakdown.Overall)
		assert.Equal(t, "Pizzaria", got.InputSummary.PageName)
		require.Len(t, got.Recommendations, 1)
		require.NotNil(t, got.Detail)
		require.Len(t, got.Detail.RawMetrics.Posts, 1)
		assert.Equal(t, 3, got.Detail.RawMetrics.Posts[0].LikeCount)
		assert.Equal(t, 10000, got.Detail.ComputedMetrics.Followers)
		assert.True(t, got.Detail.DataAvailability.IsAvailable(domain.CategoryPosts))
		assert.Nil(t, got.Detail.Demographics)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("sem detalhe", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := NewAuditRepository(conn)
		record := sampleRecord(false)

		columns := append(append([]string{}, auditRowColumns...),
			"audit_id", "raw_metrics", "computed_metrics", "data_availability", "demographics")
		values := append(auditRowValues(record), nil, nil, nil, nil, nil)

		mock.ExpectQuery(regexp.QuoteMeta("FROM audits a")).
			WillReturnRows(sqlmock.NewRows(columns).AddRow(values...))

		got, err := repo.GetByID(context.Background(), record.ID)
		require.NoError(t, err)
		assert.Nil(t, got.Detail)
		assert.False(t, got.IsProUnlocked)
	})

	t.Run("não encontrada", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := NewAuditRepository(conn)

		mock.ExpectQuery(regexp.QuoteMeta("FROM audits a")).
			WillReturnRows(sqlmock.NewRows(auditRowColumns))

		_, err := repo.GetByID(context.Background(), "missing")
		assert.ErrorIs(t, err, domain.ErrAuditNotFound)
	})
}

func TestAuditRepository_GetByShareCode(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewAuditRepository(conn)
	record := sampleRecord(true)

	mock.ExpectQuery(regexp.QuoteMeta("FROM audits a WHERE a.share_code = $1")).
		WithArgs(record.ShareCode).
		WillReturnRows(sqlmock.NewRows(auditRowColumns).AddRow(auditRowValues(record)...))

	got, err := repo.GetByShareCode(context.Background(), record.ShareCode)
	require.NoError(t, err)
	assert.Equal(t, record.ID, got.ID)
	assert.Nil(t, got.Detail)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepository_ListByUser(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewAuditRepository(conn)

	first := sampleRecord(false)
	second := sampleRecord(false)
	second.ID = "second"
	second.CreatedAt = first.CreatedAt.Add(-24 * time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE a.user_id = $1 ORDER BY a.created_at DESC LIMIT 20 OFFSET 20")).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows(auditRowColumns).
			AddRow(auditRowValues(first)...).
			AddRow(auditRowValues(second)...))

	records, err := repo.ListByUser(context.Background(), "user-1", 20, 20)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "second", records[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
