package middleware

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/target-performance-api/internal/domain"
	"github.com/vfg2006/target-performance-api/pkg/apiErrors"
)

// RoleMiddleware restringe o acesso aos perfis informados
func RoleMiddleware(allowedRoles []domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userClaims, ok := ClaimsFromContext(r.Context())
			if !ok {
				logrus.Warning("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			isAllowed := false
			for _, role := range allowedRoles {
				if userClaims.Role == role {
					isAllowed = true
					break
				}
			}

			if !isAllowed {
				logrus.Warningf("Acesso negado para conta ID=%s, Perfil=%s", userClaims.AccountID, userClaims.Role)
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func AdminOnly() func(http.Handler) http.Handler {
	return RoleMiddleware([]domain.Role{domain.RoleAdmin})
}

// ManagerOrAdmin permite administradores e gerentes de time
func ManagerOrAdmin() func(http.Handler) http.Handler {
	return RoleMiddleware([]domain.Role{domain.RoleAdmin, domain.RoleTeamManager})
}

func AllRoles() func(http.Handler) http.Handler {
	return RoleMiddleware([]domain.Role{domain.RoleAdmin, domain.RoleTeamManager, domain.RoleEmployee})
}
