package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/page-audit-api/infrastructure/database/postgres"
	"github.com/vfg2006/page-audit-api/internal/domain"
)

const (
	usersTable = "users"
)

type UserRepository interface {
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetEntitlement(ctx context.Context, userID string) (bool, error)
}

type userRepository struct {
	conn *postgres.Connection
	now  func() time.Time
}

func NewUserRepository(conn *postgres.Connection) UserRepository {
	return &userRepository{
		conn: conn,
		now:  time.Now,
	}
}

// GetUserByID retorna nil, nil quando o usuário ainda não tem linha própria
func (r *userRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query, args, err := squirrel.
		Select("id", "email", "is_pro", "pro_expires_at", "created_at", "updated_at").
		From(usersTable).
		Where(squirrel.Eq{"id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var (
		user  domain.User
		email sql.NullString
	)
	err = r.conn.QueryRow(ctx, query, args...).Scan(
		&user.ID,
		&email,
		&user.IsPro,
		&user.ProExpiresAt,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar usuário: %w", err)
	}

	user.Email = email.String

	return &user, nil
}

// GetEntitlement informa se o usuário tem acesso Pro vigente. Usuário sem linha é tratado como free.
func (r *userRepository) GetEntitlement(ctx context.Context, userID string) (bool, error) {
	user, err := r.GetUserByID(ctx, userID)
	if err != nil {
		return false, err
	}

	if user == nil {
		logrus.WithField("user_id", userID).Debug("usuário sem registro, considerando plano free")
		return false, nil
	}

	return user.IsEntitled(r.now()), nil
}
