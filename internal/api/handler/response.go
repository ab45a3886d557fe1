package handler

import (
	"context"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/target-performance-api/internal/domain"
	"github.com/vfg2006/target-performance-api/internal/usecases/reporting"
	"github.com/vfg2006/target-performance-api/internal/usecases/targeting"
	"github.com/vfg2006/target-performance-api/pkg/apiErrors"
	"github.com/vfg2006/target-performance-api/pkg/log"
	"github.com/vfg2006/target-performance-api/pkg/middleware"
	"github.com/vfg2006/target-performance-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao codificar resposta")
	}
}

// parsePeriodFilter lê startMonth, startYear, endMonth, endYear, month e year.
// Valores fora de faixa passam adiante; só valores não inteiros são rejeitados.
func parsePeriodFilter(r *http.Request) (domain.PeriodFilter, bool, error) {
	query := r.URL.Query()

	var filter domain.PeriodFilter
	fields := []struct {
		key  string
		dest **int
	}{
		{"startMonth", &filter.StartMonth},
		{"startYear", &filter.StartYear},
		{"endMonth", &filter.EndMonth},
		{"endYear", &filter.EndYear},
		{"month", &filter.Month},
		{"year", &filter.Year},
	}

	present := false
	for _, field := range fields {
		value, err := utils.ParseOptionalInt(query, field.key)
		if err != nil {
			return domain.PeriodFilter{}, false, err
		}
		if value != nil {
			present = true
		}
		*field.dest = value
	}

	return filter, present, nil
}

func requireClaims(w http.ResponseWriter, r *http.Request) (*domain.Claims, bool) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok || claims.AccountID == "" {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return nil, false
	}
	return claims, true
}

func writeTargetError(w http.ResponseWriter, r *http.Request, err error, message string) {
	// rejeições de negócio não são falhas do servidor
	if targeting.IsEligibilityError(err) || targeting.IsNotFoundError(err) {
		log.ForContext(r.Context()).WithError(err).Warn(message)
	} else {
		log.ForContext(r.Context()).WithError(err).Error(message)
	}

	var targetErr *targeting.TargetError
	if errors.As(err, &targetErr) {
		details := map[string]any{}
		if targetErr.AccountID != "" {
			details["account_id"] = targetErr.AccountID
		}
		if len(details) == 0 {
			details = nil
		}
		apiErrors.WriteError(w, targetErr.Code, targetErr.Error(), details)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, message, nil)
}

func writeReportError(w http.ResponseWriter, r *http.Request, err error, message string) {
	log.ForContext(r.Context()).WithError(err).Error(message)

	var reportErr *reporting.ReportError
	if errors.As(err, &reportErr) {
		var details map[string]any
		if reportErr.AccountID != "" {
			details = map[string]any{"account_id": reportErr.AccountID}
		}
		apiErrors.WriteError(w, reportErr.Code, reportErr.Error(), details)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, message, nil)
}

func writeRankingError(w http.ResponseWriter, r *http.Request, err error) {
	log.ForContext(r.Context()).WithError(err).Error("Erro ao buscar ranking de desempenho")

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		apiErrors.WriteError(w, apiErrors.ErrRequestCanceled, "Requisição cancelada", nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar ranking de desempenho", nil)
}
