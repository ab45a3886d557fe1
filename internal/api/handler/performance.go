package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/target-performance-api/internal/domain"
	"github.com/vfg2006/target-performance-api/internal/usecases/ranking"
	"github.com/vfg2006/target-performance-api/internal/usecases/reporting"
	"github.com/vfg2006/target-performance-api/pkg/apiErrors"
	"github.com/vfg2006/target-performance-api/pkg/utils"
)

// reportParams lê o tipo da rota e o filtro de período da query.
// Em caso de erro a resposta já foi escrita.
func reportParams(w http.ResponseWriter, r *http.Request) (domain.TransactionKind, domain.PeriodFilter, bool) {
	kind, err := domain.ParseTransactionKind(httprouter.ParamsFromContext(r.Context()).ByName("kind"))
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
		return "", domain.PeriodFilter{}, false
	}

	filter, _, err := parsePeriodFilter(r)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
		return "", domain.PeriodFilter{}, false
	}

	return kind, filter, true
}

// GetAccountsPerformance devolve uma linha por conta elegível
func GetAccountsPerformance(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		kind, filter, ok := reportParams(w, r)
		if !ok {
			return
		}

		report, err := service.AccountsPerformance(r.Context(), kind, filter)
		if err != nil {
			writeReportError(w, r, err, "Erro ao gerar desempenho das contas")
			return
		}

		writeJSON(w, r, http.StatusOK, report)
	})
}

func GetMyPerformance(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		kind, filter, ok := reportParams(w, r)
		if !ok {
			return
		}

		report, err := service.AccountPerformance(r.Context(), kind, claims.AccountID, filter)
		if err != nil {
			writeReportError(w, r, err, "Erro ao gerar desempenho da conta")
			return
		}

		writeJSON(w, r, http.StatusOK, report)
	})
}

func GetMyMonthlyPerformance(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		kind, filter, ok := reportParams(w, r)
		if !ok {
			return
		}

		report, err := service.AccountMonthlyPerformance(r.Context(), kind, claims.AccountID, filter)
		if err != nil {
			writeReportError(w, r, err, "Erro ao gerar desempenho mensal da conta")
			return
		}

		writeJSON(w, r, http.StatusOK, report)
	})
}

// GetTeamPerformance usa a conta autenticada como gestora dos times
func GetTeamPerformance(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		kind, filter, ok := reportParams(w, r)
		if !ok {
			return
		}

		report, err := service.TeamPerformance(r.Context(), kind, claims.AccountID, filter)
		if err != nil {
			writeReportError(w, r, err, "Erro ao gerar desempenho do time")
			return
		}

		writeJSON(w, r, http.StatusOK, report)
	})
}

func GetMonthlyPerformance(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		kind, filter, ok := reportParams(w, r)
		if !ok {
			return
		}

		report, err := service.MonthlyPerformance(r.Context(), kind, filter)
		if err != nil {
			writeReportError(w, r, err, "Erro ao gerar desempenho mensal")
			return
		}

		writeJSON(w, r, http.StatusOK, report)
	})
}

// GetPerformanceRanking devolve o ranking salvo; sem month e year usa o mês de ontem
func GetPerformanceRanking(service ranking.RankingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		kind, err := domain.ParseTransactionKind(httprouter.ParamsFromContext(r.Context()).ByName("kind"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		query := r.URL.Query()
		month, err := utils.ParseOptionalInt(query, "month")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}
		year, err := utils.ParseOptionalInt(query, "year")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		var period *domain.Period
		switch {
		case month != nil && year != nil:
			period = &domain.Period{Month: *month, Year: *year}
		case month != nil || year != nil:
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Informe month e year juntos", nil)
			return
		}

		result, err := service.GetPerformanceRanking(r.Context(), kind, period)
		if err != nil {
			writeRankingError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	})
}
