package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/page-audit-api/internal/domain"
)

var connectionRowColumns = []string{"id", "user_id", "page_id", "page_name", "access_token", "auto_audit", "created_at", "updated_at"}

func TestPageConnectionRepository_GetConnection(t *testing.T) {
	created := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	t.Run("conexão do usuário", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := NewPageConnectionRepository(conn)

		mock.ExpectQuery(regexp.QuoteMeta("FROM page_connections pc WHERE pc.id = $1 AND pc.user_id = $2")).
			WithArgs("conn-1", "user-1").
			WillReturnRows(sqlmock.NewRows(connectionRowColumns).
				AddRow("conn-1", "user-1", "page-1", nil, "EAAB-token", true, created, created))

		connection, err := repo.GetConnection(context.Background(), "conn-1", "user-1")
		require.NoError(t, err)
		assert.Equal(t, "page-1", connection.PageID)
		assert.Equal(t, "EAAB-token", connection.AccessToken)
		assert.Empty(t, connection.PageName)
		assert.True(t, connection.AutoAudit)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("conexão de outro usuário não é encontrada", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := NewPageConnectionRepository(conn)

		mock.ExpectQuery(regexp.QuoteMeta("FROM page_connections pc")).
			WithArgs("conn-1", "intruder").
			WillReturnRows(sqlmock.NewRows(connectionRowColumns))

		_, err := repo.GetConnection(context.Background(), "conn-1", "intruder")
		assert.ErrorIs(t, err, domain.ErrConnectionNotFound)
	})
}

func TestPageConnectionRepository_ListAutoAuditConnections(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewPageConnectionRepository(conn)
	created := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("JOIN users u ON u.id = pc.user_id")).
		WithArgs(true, true).
		WillReturnRows(sqlmock.NewRows(connectionRowColumns).
			AddRow("conn-1", "user-1", "page-1", "Pizzaria", "t1", true, created, created).
			AddRow("conn-2", "user-2", "page-2", "Padaria", "t2", true, created, created))

	connections, err := repo.ListAutoAuditConnections(context.Background())
	require.NoError(t, err)
	require.Len(t, connections, 2)
	assert.Equal(t, "Padaria", connections[1].PageName)
	assert.NoError(t, mock.ExpectationsWereMet())
}
