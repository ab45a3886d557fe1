package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCronJob struct {
	triggered int
}

func (f *fakeCronJob) TriggerManualSync() {
	f.triggered++
}

func (f *fakeCronJob) GetStatus() map[string]any {
	return map[string]any{"sync_running": false}
}

func TestRunCronJob(t *testing.T) {
	t.Run("Dispara a atualização do ranking", func(t *testing.T) {
		job := &fakeCronJob{}
		services := CronJobServices{PerformanceRankingSyncService: job}

		rec := serve(CronJobs(services), adminClaims, httptest.NewRequest(http.MethodPost, "/v1/cron/performance-ranking/run", nil))

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Equal(t, 1, job.triggered)
	})

	t.Run("Tipo desconhecido retorna 400", func(t *testing.T) {
		job := &fakeCronJob{}
		services := CronJobServices{PerformanceRankingSyncService: job}

		rec := serve(CronJobs(services), adminClaims, httptest.NewRequest(http.MethodPost, "/v1/cron/meta/run", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Zero(t, job.triggered)
	})

	t.Run("Gerente não dispara cron", func(t *testing.T) {
		job := &fakeCronJob{}

		rec := serve(CronJobs(CronJobServices{PerformanceRankingSyncService: job}), managerClaims,
			httptest.NewRequest(http.MethodPost, "/v1/cron/performance-ranking/run", nil))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Zero(t, job.triggered)
	})
}

func TestGetCronStatus(t *testing.T) {
	services := CronJobServices{PerformanceRankingSyncService: &fakeCronJob{}}

	rec := serve(CronJobs(services), adminClaims, httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body, CronJobTypePerformanceRanking)
}
