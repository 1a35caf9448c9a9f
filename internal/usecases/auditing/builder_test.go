package auditing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/page-audit-api/internal/domain"
)

var testConnection = &domain.PageConnection{
	ID:          "conn-1",
	UserID:      "user-1",
	PageID:      "page-1",
	PageName:    "Pizzaria",
	AccessToken: "EAAB-token",
}

func TestBuilder_Lifecycle(t *testing.T) {
	createdAt := time.Date(2024, 5, 20, 10, 0, 0, 0, time.FixedZone("BRT", -3*3600))

	t.Run("fluxo Pro completo", func(t *testing.T) {
		b, err := NewBuilder(domain.Identity{UserID: "user-1", IsEntitled: true}, testConnection, createdAt)
		require.NoError(t, err)

		record := b.Record()
		assert.Equal(t, domain.StateCreated, b.State())
		assert.NotEmpty(t, record.ID)
		assert.Len(t, record.ShareCode, 10)
		assert.Equal(t, time.UTC, record.CreatedAt.Location())
		assert.True(t, record.IsProUnlocked)

		breakdown := domain.ScoreBreakdown{Engagement: 20, Consistency: 85, Readiness: 100, Overall: 63}
		require.NoError(t, b.Score(breakdown, []domain.Recommendation{{Title: "a"}}, domain.InputSummary{PageName: "Pizzaria"}))
		assert.Equal(t, domain.StateScored, b.State())
		assert.Equal(t, 63, record.ScoreTotal)

		require.NoError(t, b.Detail(&domain.AuditDetail{}))
		assert.Equal(t, domain.StateDetailed, b.State())
		assert.Equal(t, record.ID, record.Detail.AuditID)

		require.NoError(t, b.MarkPersisted())
		assert.Equal(t, domain.StatePersisted, b.State())

		assert.ErrorIs(t, b.MarkPersisted(), domain.ErrInvalidStateTransition)
		assert.ErrorIs(t, b.Score(breakdown, nil, domain.InputSummary{}), domain.ErrInvalidStateTransition)
	})

	t.Run("free não aceita detalhe", func(t *testing.T) {
		b, err := NewBuilder(domain.Identity{UserID: "user-1"}, testConnection, createdAt)
		require.NoError(t, err)
		require.NoError(t, b.Score(domain.ScoreBreakdown{}, nil, domain.InputSummary{}))

		assert.ErrorIs(t, b.Detail(&domain.AuditDetail{}), domain.ErrInvalidStateTransition)
		assert.Nil(t, b.Record().Detail)
		require.NoError(t, b.MarkPersisted())
	})

	t.Run("não persiste antes de pontuar", func(t *testing.T) {
		b, err := NewBuilder(domain.Identity{UserID: "user-1", IsEntitled: true}, testConnection, createdAt)
		require.NoError(t, err)

		assert.ErrorIs(t, b.MarkPersisted(), domain.ErrInvalidStateTransition)
		assert.ErrorIs(t, b.Detail(&domain.AuditDetail{}), domain.ErrInvalidStateTransition)
	})

	t.Run("cada registro é independente", func(t *testing.T) {
		first, err := NewBuilder(domain.Identity{UserID: "user-1"}, testConnection, createdAt)
		require.NoError(t, err)
		second, err := NewBuilder(domain.Identity{UserID: "user-1"}, testConnection, createdAt)
		require.NoError(t, err)

		assert.NotEqual(t, first.Record().ID, second.Record().ID)
		assert.NotEqual(t, first.Record().ShareCode, second.Record().ShareCode)
	})
}

func TestProject(t *testing.T) {
	record := &domain.AuditRecord{
		ID: "a1",
		Recommendations: []domain.Recommendation{
			{Title: "engajamento"},
			{Title: "frequência"},
			{Title: "conteúdo", IsProOnly: true},
			{Title: "horário", IsProOnly: true},
			{Title: "extra 1"},
			{Title: "extra 2"},
		},
		Detail: &domain.AuditDetail{AuditID: "a1"},
	}

	free := Project(record, false, 3)
	require.Len(t, free.Recommendations, 3)
	for _, r := range free.Recommendations {
		assert.False(t, r.IsProOnly)
	}
	assert.Equal(t, "extra 1", free.Recommendations[2].Title)
	assert.Nil(t, free.Detail)

	pro := Project(record, true, 3)
	assert.Len(t, pro.Recommendations, 6)
	assert.NotNil(t, pro.Detail)

	// o original não é alterado
	assert.Len(t, record.Recommendations, 6)
	assert.NotNil(t, record.Detail)

	assert.Nil(t, Project(nil, true, 3))
}
