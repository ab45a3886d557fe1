package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/target-performance-api/internal/domain"
	"github.com/vfg2006/target-performance-api/internal/usecases/authenticating"
	"github.com/vfg2006/target-performance-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/target-performance-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		header         string
		setupMock      func(m *mocks.MockAuthenticator)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "Healthcheck não exige token",
			path:           "/healthcheck",
			setupMock:      func(m *mocks.MockAuthenticator) {},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "Sem cabeçalho Authorization retorna 401",
			path:           "/v1/targets",
			setupMock:      func(m *mocks.MockAuthenticator) {},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   apiErrors.ErrInvalidToken,
		},
		{
			name:           "Cabeçalho sem Bearer retorna 401",
			path:           "/v1/targets",
			header:         "Basic abc",
			setupMock:      func(m *mocks.MockAuthenticator) {},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   apiErrors.ErrInvalidToken,
		},
		{
			name:   "Token expirado devolve o código do serviço",
			path:   "/v1/targets",
			header: "Bearer expirado",
			setupMock: func(m *mocks.MockAuthenticator) {
				m.EXPECT().ValidateToken("expirado").
					Return(nil, authenticating.NewAuthError(authenticating.ErrExpiredToken, apiErrors.ErrExpiredToken, ""))
			},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   apiErrors.ErrExpiredToken,
		},
		{
			name:   "Token válido segue para o handler",
			path:   "/v1/targets",
			header: "Bearer valido",
			setupMock: func(m *mocks.MockAuthenticator) {
				m.EXPECT().ValidateToken("valido").
					Return(&domain.Claims{AccountID: "A1", Role: domain.RoleAdmin}, nil)
			},
			expectedStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			authMock := mocks.NewMockAuthenticator(ctrl)
			tt.setupMock(authMock)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(authMock)(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedCode != "" {
				var body apiErrors.APIError
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tt.expectedCode, body.Code)
			}
		})
	}
}

func TestAuthMiddleware_GuardaClaimsNoContexto(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	claims := &domain.Claims{AccountID: "A1", Role: domain.RoleEmployee}
	authMock := mocks.NewMockAuthenticator(ctrl)
	authMock.EXPECT().ValidateToken("tok").Return(claims, nil)

	var got *domain.Claims
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = ClaimsFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/targets/mine", nil)
	req.Header.Set("Authorization", "Bearer tok")

	AuthMiddleware(authMock)(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Same(t, claims, got)
}

func TestRoleMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		middleware     func(http.Handler) http.Handler
		claims         *domain.Claims
		expectedStatus int
	}{
		{"Admin acessa rota de admin", AdminOnly(), &domain.Claims{Role: domain.RoleAdmin}, http.StatusNoContent},
		{"Gerente não acessa rota de admin", AdminOnly(), &domain.Claims{Role: domain.RoleTeamManager}, http.StatusForbidden},
		{"Gerente acessa rota de gerente", ManagerOrAdmin(), &domain.Claims{Role: domain.RoleTeamManager}, http.StatusNoContent},
		{"Funcionário não acessa rota de gerente", ManagerOrAdmin(), &domain.Claims{Role: domain.RoleEmployee}, http.StatusForbidden},
		{"Funcionário acessa rota aberta a todos", AllRoles(), &domain.Claims{Role: domain.RoleEmployee}, http.StatusNoContent},
		{"Sem identidade retorna 401", AllRoles(), nil, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/targets", nil)
			if tt.claims != nil {
				req = req.WithContext(WithClaims(req.Context(), tt.claims))
			}
			rec := httptest.NewRecorder()

			tt.middleware(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestCors(t *testing.T) {
	allowed := []string{"http://localhost:3000"}

	t.Run("Origem permitida recebe cabeçalhos", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/targets", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()

		Cors(allowed)(okHandler()).ServeHTTP(rec, req)

		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("Origem desconhecida não recebe cabeçalhos", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/targets", nil)
		req.Header.Set("Origin", "http://evil.example")
		rec := httptest.NewRecorder()

		Cors(allowed)(okHandler()).ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Preflight responde 200 sem chamar o handler", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/v1/targets", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()

		Cors(allowed)(okHandler()).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
