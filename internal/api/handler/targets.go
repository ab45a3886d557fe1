package handler

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/target-performance-api/internal/domain"
	"github.com/vfg2006/target-performance-api/internal/usecases/targeting"
	"github.com/vfg2006/target-performance-api/pkg/apiErrors"
	"github.com/vfg2006/target-performance-api/pkg/log"
)

// CreateTarget aloca uma meta para uma conta ou para os membros elegíveis de um time
func CreateTarget(service targeting.Targeter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		var req targeting.AllocationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		req.CreatedBy = claims.AccountID

		targets, err := service.AllocateTarget(r.Context(), req)
		if err != nil {
			writeTargetError(w, r, err, "Erro ao alocar meta")
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"created_by":    claims.AccountID,
			"targets_count": len(targets),
		}).Info("Metas alocadas")

		writeJSON(w, r, http.StatusCreated, targets)
	})
}

// ListTargets lista todas as metas, com filtro opcional de período e tipo
func ListTargets(service targeting.Targeter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter, present, err := parsePeriodFilter(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		var targetType *domain.TransactionKind
		if raw := strings.TrimSpace(r.URL.Query().Get("targetType")); raw != "" {
			kind, err := domain.ParseTransactionKind(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
				return
			}
			targetType = &kind
		}

		targets, err := service.ListTargets(r.Context(), optionalFilter(filter, present), targetType)
		if err != nil {
			writeTargetError(w, r, err, "Erro ao listar metas")
			return
		}

		writeJSON(w, r, http.StatusOK, targets)
	})
}

// ListMyTargets lista as metas da conta autenticada
func ListMyTargets(service targeting.Targeter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		filter, present, err := parsePeriodFilter(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		targets, err := service.ListAccountTargets(r.Context(), claims.AccountID, optionalFilter(filter, present))
		if err != nil {
			writeTargetError(w, r, err, "Erro ao listar metas da conta")
			return
		}

		writeJSON(w, r, http.StatusOK, targets)
	})
}

// ListTeamMembersTargets lista as metas dos membros dos times geridos pela conta autenticada
func ListTeamMembersTargets(service targeting.Targeter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		filter, present, err := parsePeriodFilter(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		targets, err := service.ListTeamMembersTargets(r.Context(), claims.AccountID, optionalFilter(filter, present))
		if err != nil {
			writeTargetError(w, r, err, "Erro ao listar metas dos membros do time")
			return
		}

		writeJSON(w, r, http.StatusOK, targets)
	})
}

func UpdateTarget(service targeting.Targeter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da meta é obrigatório", nil)
			return
		}

		var patch domain.TargetPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		target, err := service.UpdateTarget(r.Context(), id, patch)
		if err != nil {
			writeTargetError(w, r, err, "Erro ao atualizar meta")
			return
		}

		writeJSON(w, r, http.StatusOK, target)
	})
}

func DeleteTarget(service targeting.Targeter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da meta é obrigatório", nil)
			return
		}

		if err := service.DeleteTarget(r.Context(), id); err != nil {
			writeTargetError(w, r, err, "Erro ao remover meta")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// optionalFilter devolve nil quando nenhum parâmetro de período foi enviado
func optionalFilter(filter domain.PeriodFilter, present bool) *domain.PeriodFilter {
	if !present {
		return nil
	}
	return &filter
}
