package authenticating

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/page-audit-api/infrastructure/repository"
	"github.com/vfg2006/page-audit-api/internal/config"
	"github.com/vfg2006/page-audit-api/internal/domain"
	"github.com/vfg2006/page-audit-api/pkg/apiErrors"
)

type Authenticator interface {
	ValidateToken(tokenString string) (*domain.Claims, error)
	ResolveIdentity(ctx context.Context, claims *domain.Claims) (*domain.Identity, error)
}

type Service struct {
	userRepo repository.UserRepository
	secret   []byte
}

func NewService(userRepo repository.UserRepository, cfg *config.Config) Authenticator {
	return &Service{
		userRepo: userRepo,
		secret:   []byte(cfg.Auth.Secret),
	}
}

// ValidateToken valida o JWT (HS256) emitido pelo backend de autenticação
func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	if len(s.secret) == 0 {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "segredo de autenticação não configurado")
	}

	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}

	if claims.Subject == "" {
		return nil, NewAuthError(ErrMissingSubject, apiErrors.ErrInvalidToken, "")
	}

	return claims, nil
}

// ResolveIdentity monta a identidade da requisição. O acesso Pro é lido a cada chamada,
// pois é alterado de forma assíncrona pelos webhooks de pagamento.
func (s *Service) ResolveIdentity(ctx context.Context, claims *domain.Claims) (*domain.Identity, error) {
	if claims == nil || claims.Subject == "" {
		return nil, NewAuthError(ErrMissingSubject, apiErrors.ErrInvalidToken, "")
	}

	identity := &domain.Identity{
		UserID: claims.Subject,
		Email:  claims.Email,
		Role:   claims.Role,
	}

	// service_role não tem usuário próprio
	if claims.Role == domain.RoleService {
		return identity, nil
	}

	entitled, err := s.userRepo.GetEntitlement(ctx, claims.Subject)
	if err != nil {
		logrus.WithError(err).WithField("user_id", claims.Subject).Error("erro ao buscar plano do usuário")
		return nil, NewUserAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, claims.Subject, err.Error())
	}
	identity.IsEntitled = entitled

	return identity, nil
}
