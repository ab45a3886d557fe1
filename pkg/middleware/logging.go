package middleware

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/vfg2006/target-performance-api/internal/domain"
	"github.com/vfg2006/target-performance-api/pkg/apiErrors"
	"github.com/vfg2006/target-performance-api/pkg/log"
)

const slowRequestThreshold = 500 * time.Millisecond

// requestInfo é preenchido pelas camadas internas (auth e router) e lido pelo log de acesso.
// Toda a cadeia roda na mesma goroutine da requisição.
type requestInfo struct {
	route     string
	accountID domain.AccountID
	role      domain.Role
}

type requestInfoKey struct{}

func withRequestInfo(ctx context.Context) (context.Context, *requestInfo) {
	info := &requestInfo{}
	return context.WithValue(ctx, requestInfoKey{}, info), info
}

func requestInfoFrom(ctx context.Context) *requestInfo {
	info, _ := ctx.Value(requestInfoKey{}).(*requestInfo)
	return info
}

// rememberAccount registra quem fez a requisição, quando há log de acesso ativo
func rememberAccount(ctx context.Context, claims *domain.Claims) {
	if info := requestInfoFrom(ctx); info != nil && claims != nil {
		info.accountID = claims.AccountID
		info.role = claims.Role
	}
}

func rememberRoute(ctx context.Context, route string) {
	if info := requestInfoFrom(ctx); info != nil {
		info.route = route
	}
}

// fields monta os campos de log da requisição; rota e conta só aparecem depois de resolvidas
func (i *requestInfo) fields(r *http.Request) log.Fields {
	fields := log.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
	}
	if i.route != "" {
		fields["route"] = i.route
	}
	if i.accountID != "" {
		fields["account_id"] = i.accountID
		fields["account_role"] = i.role
	}
	return fields
}

// LoggingMiddleware registra cada requisição com correlation id, rota, conta autenticada e status
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, _ := log.WithCorrelationID(r.Context())
			ctx, info := withRequestInfo(ctx)
			r = r.WithContext(ctx)

			lrw := newLoggingResponseWriter(w)
			startTime := time.Now()

			log.ForContext(ctx).WithFields(log.Fields{
				"method": r.Method,
				"path":   r.URL.Path,
				"query":  r.URL.RawQuery,
			}).Debug("→ Iniciando requisição")

			next.ServeHTTP(lrw, r)

			elapsed := time.Since(startTime)

			fields := info.fields(r)
			fields["status_code"] = lrw.statusCode
			fields["duration_ms"] = elapsed.Milliseconds()

			logger := log.ForContext(ctx).WithFields(fields)
			msg := fmt.Sprintf("%s %s concluída em %s", r.Method, routeOrPath(info, r), formatDuration(elapsed))

			switch {
			case lrw.statusCode >= 500:
				logger.Error(msg)
			case lrw.statusCode >= 400:
				logger.Warn(msg)
			default:
				logger.Info(msg)
			}

			if elapsed > slowRequestThreshold {
				logger.Warnf("Requisição lenta: %dms", elapsed.Milliseconds())
			}
		})
	}
}

func routeOrPath(info *requestInfo, r *http.Request) string {
	if info.route != "" {
		return info.route
	}
	return r.URL.Path
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%d µs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%d ms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2f s", d.Seconds())
	}
}

// loggingResponseWriter guarda o status code para o log de acesso e as métricas
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newLoggingResponseWriter(w http.ResponseWriter) *loggingResponseWriter {
	return &loggingResponseWriter{w, http.StatusOK}
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

// LogPanicMiddleware transforma um panic em 500 padronizado e registra a pilha
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}

				stack := make([]byte, 4096)
				stackTrace := string(stack[:runtime.Stack(stack, false)])

				log.ForContext(r.Context()).WithFields(log.Fields{
					"error":  recovered,
					"method": r.Method,
					"path":   r.URL.Path,
				}).Error("Panic ao processar requisição")

				if log.IsDevelopment() {
					fmt.Fprintf(os.Stderr, "\n=== STACK TRACE ===\n%s\n", stackTrace)
				} else {
					log.ForContext(r.Context()).WithField("stack_trace", stackTrace).Error("Stack trace do panic")
				}

				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
