package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/target-performance-api/internal/domain"
	"github.com/vfg2006/target-performance-api/internal/usecases/authenticating"
	"github.com/vfg2006/target-performance-api/pkg/apiErrors"
	"github.com/vfg2006/target-performance-api/pkg/log"
)

type contextKey string

const (
	ContextKeyUser contextKey = "user"
)

// AuthMiddleware exige um token Bearer válido, exceto no healthcheck, em /metrics e nos caminhos extras informados
func AuthMiddleware(authService authenticating.Authenticator, openPaths ...string) func(http.Handler) http.Handler {
	publicPaths := map[string]bool{
		"/healthcheck": true,
		"/metrics":     true,
	}
	for _, path := range openPaths {
		publicPaths[path] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if publicPaths[r.URL.Path] || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Cabeçalho Authorization é obrigatório", nil)
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

				if authenticating.IsTokenError(err) {
					log.ForContext(r.Context()).WithError(err).Warn("Token rejeitado")
				} else {
					log.ForContext(r.Context()).WithError(err).Error("Erro ao validar token")
				}
				apiErrors.WriteError(w, code, "Token inválido", nil)
				return
			}

			rememberAccount(r.Context(), claims)
			ctx := context.WithValue(r.Context(), ContextKeyUser, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext devolve a identidade autenticada da requisição
func ClaimsFromContext(ctx context.Context) (*domain.Claims, bool) {
	claims, ok := ctx.Value(ContextKeyUser).(*domain.Claims)
	return claims, ok && claims != nil
}

// WithClaims coloca a identidade no contexto, usado fora do AuthMiddleware
func WithClaims(ctx context.Context, claims *domain.Claims) context.Context {
	return context.WithValue(ctx, ContextKeyUser, claims)
}
