package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/target-performance-api/infrastructure/database/postgres"
	"github.com/vfg2006/target-performance-api/infrastructure/repository"
	"github.com/vfg2006/target-performance-api/internal/api"
	"github.com/vfg2006/target-performance-api/internal/api/handler"
	"github.com/vfg2006/target-performance-api/internal/config"
	"github.com/vfg2006/target-performance-api/internal/scheduler"
	"github.com/vfg2006/target-performance-api/internal/usecases/authenticating"
	"github.com/vfg2006/target-performance-api/internal/usecases/ranking"
	"github.com/vfg2006/target-performance-api/internal/usecases/reporting"
	"github.com/vfg2006/target-performance-api/internal/usecases/targeting"
	"github.com/vfg2006/target-performance-api/pkg/metrics"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	metrics.Register(prometheus.DefaultRegisterer)

	accountRepo := repository.NewAccountRepository(pgConn)
	teamRepo := repository.NewTeamRepository(pgConn)
	transactionRepo := repository.NewTransactionRepository(pgConn)
	targetRepo := repository.NewTargetRepository(pgConn)
	rankingRepo := repository.NewPerformanceRankingRepository(pgConn)

	authenticator := authenticating.NewService(cfg)
	targetService := targeting.NewService(accountRepo, teamRepo, targetRepo)
	reportService := reporting.NewService(accountRepo, teamRepo, transactionRepo, targetRepo, cfg)
	rankingService := ranking.NewPerformanceRankingService(rankingRepo)

	performanceRankingSyncService := scheduler.NewPerformanceRankingService(reportService, rankingRepo, cfg)

	if err := performanceRankingSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do ranking de desempenho")
	} else {
		logrus.Info("Agendador do ranking de desempenho iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Targeter:      targetService,
		Reporter:      reportService,
		Ranking:       rankingService,
		Authenticator: authenticator,
		CronJobs: handler.CronJobServices{
			PerformanceRankingSyncService: performanceRankingSyncService,
		},
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
