// Package metrics concentra os coletores Prometheus da API
package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "target_performance"

var (
	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total de requisições HTTP por rota, método e status.",
		},
		[]string{"route", "method", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duração das requisições HTTP.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	targetsAllocated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "targets_allocated_total",
			Help:      "Metas gravadas por tipo e modo de alocação.",
		},
		[]string{"target_type", "mode"},
	)

	allocationFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "target_allocation_failures_total",
			Help:      "Solicitações de alocação rejeitadas ou com falha, por motivo.",
		},
		[]string{"reason"},
	)

	reportsGenerated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "performance_reports_total",
			Help:      "Relatórios de desempenho gerados por tipo de relatório e transação.",
		},
		[]string{"report", "kind"},
	)

	rankingRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "performance_ranking_runs_total",
			Help:      "Execuções da atualização do ranking por resultado.",
		},
		[]string{"result"},
	)

	registerOnce sync.Once
)

// Register registra os coletores uma única vez
func Register(reg prometheus.Registerer) {
	registerOnce.Do(func() {
		reg.MustRegister(
			httpRequests,
			httpDuration,
			targetsAllocated,
			allocationFailures,
			reportsGenerated,
			rankingRuns,
		)
	})
}

func Handler() http.Handler {
	return promhttp.Handler()
}

func ObserveHTTPRequest(route, method string, status int, elapsed time.Duration) {
	httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

func TargetsAllocated(targetType, mode string, count int) {
	targetsAllocated.WithLabelValues(targetType, mode).Add(float64(count))
}

func AllocationFailed(reason string) {
	allocationFailures.WithLabelValues(reason).Inc()
}

func ReportGenerated(report, kind string) {
	reportsGenerated.WithLabelValues(report, kind).Inc()
}

func RankingRun(result string) {
	rankingRuns.WithLabelValues(result).Inc()
}
