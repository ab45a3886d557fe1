package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/target-performance-api/internal/api/handler"
	"github.com/vfg2006/target-performance-api/internal/api/handler/router"
	"github.com/vfg2006/target-performance-api/internal/config"
	"github.com/vfg2006/target-performance-api/internal/usecases/authenticating"
	"github.com/vfg2006/target-performance-api/internal/usecases/ranking"
	"github.com/vfg2006/target-performance-api/internal/usecases/reporting"
	"github.com/vfg2006/target-performance-api/internal/usecases/targeting"
	"github.com/vfg2006/target-performance-api/pkg/metrics"
	"github.com/vfg2006/target-performance-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

// Services reúne os casos de uso expostos pela API
type Services struct {
	Targeter      targeting.Targeter
	Reporter      reporting.Reporter
	Ranking       ranking.RankingService
	Authenticator authenticating.Authenticator
	CronJobs      handler.CronJobServices
}

func New(config *config.Config, services Services) (*Server, error) {
	configs := []router.ConfigRouter{
		router.WithInstrumentation(middleware.MetricsMiddleware),
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Targets(services.Targeter)...),
		router.WithRoutes(handler.Performance(services.Reporter, services.Ranking)...),
		router.WithRoutes(handler.CronJobs(services.CronJobs)...),
	}

	if config.Metrics.Enabled {
		configs = append(configs, router.WithRoutes(handler.Metrics(config.Metrics.Path, metrics.Handler())...))
	}

	rt := router.New(configs...)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.App.AllowedOrigins),
		middleware.AuthMiddleware(services.Authenticator, config.Metrics.Path),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	// Define timeout para desligamento
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Log de início do desligamento
	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	logrus.Info("Executando operações de limpeza antes do desligamento")

	// Aqui você pode adicionar operações de limpeza adicionais
	// como fechar conexões com bancos de dados, limpar recursos, etc.

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
