package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/target-performance-api/internal/domain"
	"github.com/vfg2006/target-performance-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/target-performance-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

// accessEntry devolve a linha final do log de acesso (a que carrega o status)
func accessEntry(t *testing.T, hook *logtest.Hook) *logrus.Entry {
	t.Helper()
	for _, entry := range hook.AllEntries() {
		if _, ok := entry.Data["status_code"]; ok {
			return entry
		}
	}
	t.Fatal("log de acesso não encontrado")
	return nil
}

func TestLoggingMiddleware_RegistraContaERota(t *testing.T) {
	hook := logtest.NewGlobal()
	defer hook.Reset()

	ctrl := gomock.NewController(t)
	authMock := mocks.NewMockAuthenticator(ctrl)
	authMock.EXPECT().ValidateToken("tok").Return(&domain.Claims{AccountID: "A1", Role: domain.RoleAdmin}, nil)

	notFound := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	handler := LoggingMiddleware()(AuthMiddleware(authMock)(MetricsMiddleware("/v1/targets/:id")(notFound)))

	req := httptest.NewRequest(http.MethodGet, "/v1/targets/T9", nil)
	req.Header.Set("Authorization", "Bearer tok")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	entry := accessEntry(t, hook)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, domain.AccountID("A1"), entry.Data["account_id"])
	assert.Equal(t, domain.RoleAdmin, entry.Data["account_role"])
	assert.Equal(t, "/v1/targets/:id", entry.Data["route"])
	assert.Equal(t, http.StatusNotFound, entry.Data["status_code"])
	assert.NotEmpty(t, entry.Data["correlation_id"])
}

func TestLoggingMiddleware_SemTokenNaoTemConta(t *testing.T) {
	hook := logtest.NewGlobal()
	defer hook.Reset()

	ctrl := gomock.NewController(t)
	authMock := mocks.NewMockAuthenticator(ctrl)

	handler := LoggingMiddleware()(AuthMiddleware(authMock)(MetricsMiddleware("/v1/targets")(okHandler())))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/targets", nil))

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	entry := accessEntry(t, hook)
	assert.NotContains(t, entry.Data, "account_id")
	assert.NotContains(t, entry.Data, "route")
	assert.Equal(t, "/v1/targets", entry.Data["path"])
	assert.Equal(t, http.StatusUnauthorized, entry.Data["status_code"])
}

func TestLogPanicMiddleware(t *testing.T) {
	hook := logtest.NewGlobal()
	defer hook.Reset()

	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("falhou")
	})

	rec := httptest.NewRecorder()
	LogPanicMiddleware()(panicking).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/ranking", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, apiErrors.ErrInternalServer, body.Code)
	assert.NotEmpty(t, hook.AllEntries())
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "250 µs", formatDuration(250_000))
	assert.Equal(t, "12 ms", formatDuration(12_000_000))
	assert.Equal(t, "1.50 s", formatDuration(1_500_000_000))
}
