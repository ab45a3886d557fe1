package handler

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/vfg2006/target-performance-api/internal/api/handler/router"
	"github.com/vfg2006/target-performance-api/internal/domain"
	"github.com/vfg2006/target-performance-api/pkg/apiErrors"
	"github.com/vfg2006/target-performance-api/pkg/log"
	"github.com/vfg2006/target-performance-api/pkg/middleware"
)

var (
	adminClaims    = &domain.Claims{AccountID: "ADM", Role: domain.RoleAdmin}
	managerClaims  = &domain.Claims{AccountID: "MGR", Role: domain.RoleTeamManager}
	employeeClaims = &domain.Claims{AccountID: "EMP", Role: domain.RoleEmployee}
)

func TestMain(m *testing.M) {
	log.SetupTestLogger()
	os.Exit(m.Run())
}

// serve executa a requisição pelo router real, com a identidade já no contexto
func serve(routes []router.Route, claims *domain.Claims, req *http.Request) *httptest.ResponseRecorder {
	rt := router.New(router.WithRoutes(routes...))

	if claims != nil {
		req = req.WithContext(middleware.WithClaims(req.Context(), claims))
	}

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)
	return rec
}

func decodeAPIError(rec *httptest.ResponseRecorder) apiErrors.APIError {
	var body apiErrors.APIError
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	return body
}

func intPtr(v int) *int {
	return &v
}
