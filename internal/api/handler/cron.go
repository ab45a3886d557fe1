package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/target-performance-api/pkg/apiErrors"
	"github.com/vfg2006/target-performance-api/pkg/log"
)

const (
	CronJobTypePerformanceRanking = "performance-ranking"
)

// CronJob é um agendador que aceita disparo manual
type CronJob interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// CronJobServices contém os agendadores que podem ser disparados pela API
type CronJobServices struct {
	PerformanceRankingSyncService CronJob
}

func (s CronJobServices) byType(cronType string) (CronJob, bool) {
	switch cronType {
	case CronJobTypePerformanceRanking:
		return s.PerformanceRankingSyncService, s.PerformanceRankingSyncService != nil
	}
	return nil, false
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		job, ok := services.byType(cronType)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: "+CronJobTypePerformanceRanking, nil)
			return
		}

		job.TriggerManualSync()

		log.ForContext(r.Context()).WithField("cron_type", cronType).Info("Cron job disparada manualmente")

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	})
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.PerformanceRankingSyncService != nil {
			status[CronJobTypePerformanceRanking] = services.PerformanceRankingSyncService.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	})
}
