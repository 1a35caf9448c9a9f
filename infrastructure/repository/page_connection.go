package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/page-audit-api/infrastructure/database/postgres"
	"github.com/vfg2006/page-audit-api/internal/domain"
)

const (
	pageConnectionsTable = "page_connections pc"
	connectionColumns    = "pc.id, pc.user_id, pc.page_id, pc.page_name, pc.access_token, pc.auto_audit, pc.created_at, pc.updated_at"
)

type PageConnectionRepository interface {
	GetConnection(ctx context.Context, connectionID, userID string) (*domain.PageConnection, error)
	ListAutoAuditConnections(ctx context.Context) ([]*domain.PageConnection, error)
}

type pageConnectionRepository struct {
	conn *postgres.Connection
}

func NewPageConnectionRepository(conn *postgres.Connection) PageConnectionRepository {
	return &pageConnectionRepository{
		conn: conn,
	}
}

// GetConnection só encontra a conexão quando ela pertence ao usuário informado
func (r *pageConnectionRepository) GetConnection(ctx context.Context, connectionID, userID string) (*domain.PageConnection, error) {
	query, args, err := squirrel.
		Select(connectionColumns).
		From(pageConnectionsTable).
		Where(squirrel.Eq{"pc.id": connectionID, "pc.user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	connection, err := scanConnection(r.conn.QueryRow(ctx, query, args...).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrConnectionNotFound
		}
		return nil, fmt.Errorf("erro ao escanear conexão: %w", err)
	}

	return connection, nil
}

// ListAutoAuditConnections lista as conexões com auditoria automática de usuários Pro vigentes
func (r *pageConnectionRepository) ListAutoAuditConnections(ctx context.Context) ([]*domain.PageConnection, error) {
	query, args, err := squirrel.
		Select(connectionColumns).
		From(pageConnectionsTable).
		Join("users u ON u.id = pc.user_id").
		Where(squirrel.Eq{"pc.auto_audit": true, "u.is_pro": true}).
		Where("(u.pro_expires_at IS NULL OR u.pro_expires_at > NOW())").
		OrderBy("pc.created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	connections := make([]*domain.PageConnection, 0)
	for rows.Next() {
		connection, err := scanConnection(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear conexão: %w", err)
		}
		connections = append(connections, connection)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return connections, nil
}

func scanConnection(scan func(dest ...interface{}) error) (*domain.PageConnection, error) {
	var (
		c        domain.PageConnection
		pageName sql.NullString
		token    sql.NullString
	)

	if err := scan(
		&c.ID,
		&c.UserID,
		&c.PageID,
		&pageName,
		&token,
		&c.AutoAudit,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		return nil, err
	}

	c.PageName = pageName.String
	c.AccessToken = token.String

	return &c, nil
}
