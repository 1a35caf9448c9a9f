package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/page-audit-api/internal/domain"
	"github.com/vfg2006/page-audit-api/internal/usecases/authenticating"
	"github.com/vfg2006/page-audit-api/pkg/apiErrors"
	"github.com/vfg2006/page-audit-api/pkg/log"
)

type contextKey string

const (
	ContextKeyUser     contextKey = "user"
	ContextKeyIdentity contextKey = "identity"
)

// rotas públicas: sem token
var publicPaths = []string{"/healthcheck", "/metrics"}

const publicReportPrefix = "/v1/reports/"

func isPublicPath(path string) bool {
	for _, p := range publicPaths {
		if path == p {
			return true
		}
	}
	return strings.HasPrefix(path, publicReportPrefix)
}

// AuthMiddleware valida o JWT e coloca as claims e a identidade (com o plano atual) no contexto
func AuthMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions || isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Header Authorization é obrigatório", nil)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token Bearer é obrigatório", nil)
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				code := apiErrors.ErrInvalidToken
				var authErr *authenticating.AuthError
				if errors.As(err, &authErr) && authErr.Code != "" {
					code = authErr.Code
				}
				apiErrors.WriteError(w, code, "Token inválido", nil)
				return
			}

			identity, err := authService.ResolveIdentity(r.Context(), claims)
			if err != nil {
				log.ForContext(r.Context()).WithError(err).Error("Erro ao resolver identidade")
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao carregar o plano do usuário", nil)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, claims)
			ctx = context.WithValue(ctx, ContextKeyIdentity, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFrom retorna a identidade autenticada da requisição
func IdentityFrom(ctx context.Context) (*domain.Identity, bool) {
	identity, ok := ctx.Value(ContextKeyIdentity).(*domain.Identity)
	return identity, ok && identity != nil
}

// WithIdentity coloca a identidade no contexto
func WithIdentity(ctx context.Context, identity *domain.Identity) context.Context {
	return context.WithValue(ctx, ContextKeyIdentity, identity)
}
