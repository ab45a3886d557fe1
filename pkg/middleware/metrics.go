package middleware

import (
	"net/http"
	"time"

	"github.com/vfg2006/target-performance-api/pkg/metrics"
)

// MetricsMiddleware registra contagem e duração das requisições de uma rota.
// O rótulo é o padrão da rota (/v1/targets/:id) e não o caminho concreto;
// o mesmo padrão vai para o log de acesso.
func MetricsMiddleware(route string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rememberRoute(r.Context(), route)
			startTime := time.Now()
			lrw := newLoggingResponseWriter(w)

			next.ServeHTTP(lrw, r)

			metrics.ObserveHTTPRequest(route, r.Method, lrw.statusCode, time.Since(startTime))
		})
	}
}
