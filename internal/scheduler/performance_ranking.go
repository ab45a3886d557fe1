// Package scheduler contém os serviços de agendamento da API
package scheduler

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/target-performance-api/infrastructure/repository"
	"github.com/vfg2006/target-performance-api/internal/config"
	"github.com/vfg2006/target-performance-api/internal/domain"
	"github.com/vfg2006/target-performance-api/internal/usecases/reporting"
	"github.com/vfg2006/target-performance-api/pkg/metrics"
	"github.com/vfg2006/target-performance-api/pkg/utils"
	"golang.org/x/sync/errgroup"
)

type PerformanceRankingConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// PerformanceRankingService atualiza o ranking mensal de desempenho de vendas e pedidos
type PerformanceRankingService struct {
	scheduler           *gocron.Scheduler
	reporter            reporting.Reporter
	rankingRepo         repository.PerformanceRankingRepository
	config              PerformanceRankingConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
}

func NewPerformanceRankingService(
	reporter reporting.Reporter,
	rankingRepo repository.PerformanceRankingRepository,
	cfg *config.Config,
) *PerformanceRankingService {
	rankingConfig := PerformanceRankingConfig{
		CronSchedule: cfg.PerformanceRanking.CronSchedule, // Default: 6h da manhã todos os dias
		SyncEnabled:  cfg.PerformanceRanking.SyncEnabled,  // Default: desabilitado
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": rankingConfig.CronSchedule,
	}).Info("Configuração do agendador do ranking de desempenho carregada")

	return &PerformanceRankingService{
		scheduler:   gocron.NewScheduler(time.Local),
		reporter:    reporter,
		rankingRepo: rankingRepo,
		config:      rankingConfig,
	}
}

func (s *PerformanceRankingService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de atualização do ranking de desempenho desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de atualização do ranking de desempenho")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.UpdatePerformanceRanking(ctx); err != nil {
			logrus.WithError(err).Error("Erro na atualização do ranking de desempenho")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização do ranking de desempenho: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron do ranking de desempenho")
		s.scheduler.Stop()
	}()

	return nil
}

// UpdatePerformanceRanking recalcula o ranking de vendas e de pedidos do mês de ontem
func (s *PerformanceRankingService) UpdatePerformanceRanking(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Atualização do ranking de desempenho já está em execução")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	var syncErr error
	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.lastSyncError = ""
		if syncErr != nil {
			s.lastSyncError = syncErr.Error()
		}
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando atualização do ranking de desempenho")

	for _, kind := range domain.TransactionKinds {
		if _, err := s.processRankingWithDate(ctx, kind, time.Now()); err != nil {
			metrics.RankingRun("error")
			syncErr = fmt.Errorf("ranking de %s: %w", kind, err)
			return syncErr
		}
	}

	metrics.RankingRun("success")
	logrus.Info("Atualização do ranking de desempenho concluída")

	return nil
}

// processRankingWithDate calcula o ranking do mês de ontem em relação à data informada
func (s *PerformanceRankingService) processRankingWithDate(
	ctx context.Context,
	kind domain.TransactionKind,
	processingDate time.Time,
) ([]*domain.PerformanceRankingItem, error) {
	period := domain.PeriodOf(utils.Yesterday(processingDate))

	var (
		previous []*domain.PerformanceRankingItem
		report   *domain.AccountsPerformanceReport
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		items, err := s.rankingRepo.GetRanking(gctx, kind, period)
		if err != nil {
			return fmt.Errorf("erro ao buscar ranking anterior: %w", err)
		}
		previous = items
		return nil
	})
	g.Go(func() error {
		result, err := s.reporter.AccountsPerformance(gctx, kind, domain.PeriodFilter{Month: &period.Month, Year: &period.Year})
		if err != nil {
			return fmt.Errorf("erro ao gerar relatório de desempenho: %w", err)
		}
		report = result
		return nil
	})

	if err := g.Wait(); err != nil {
		logrus.WithError(err).WithField("kind", kind).Error("PerformanceRankingService: erro ao buscar dados do ranking")
		return nil, err
	}

	previousByAccount := make(map[domain.AccountID]*domain.PerformanceRankingItem, len(previous))
	for _, item := range previous {
		if item == nil || item.AccountID == "" {
			continue
		}
		previousByAccount[item.AccountID] = item
	}

	updatedRankings := make([]*domain.PerformanceRankingItem, 0, len(report.Rows))
	for _, row := range report.Rows {
		updatedRankings = append(updatedRankings, &domain.PerformanceRankingItem{
			AccountID:    row.AccountID,
			AccountName:  row.AccountName,
			Kind:         kind,
			Month:        period.Month,
			Year:         period.Year,
			ActualAmount: row.ActualAmount,
			TargetAmount: row.TargetAmount,
			Performance:  utils.Percentage(row.ActualAmount, row.TargetAmount).InexactFloat64(),
		})
	}

	s.updatePositions(updatedRankings, previousByAccount)

	if err := s.rankingRepo.SaveOrUpdateRanking(ctx, updatedRankings); err != nil {
		logrus.WithError(err).WithField("kind", kind).Error("Erro ao salvar ranking de desempenho atualizado")
		return updatedRankings, err
	}

	logrus.WithFields(logrus.Fields{
		"kind":     kind,
		"period":   period.String(),
		"accounts": len(updatedRankings),
	}).Info("Ranking de desempenho atualizado")

	return updatedRankings, nil
}

// updatePositions ordena por desempenho, depois realizado, depois conta, e compara com a posição anterior
func (*PerformanceRankingService) updatePositions(
	updatedRankings []*domain.PerformanceRankingItem,
	rankingsBeforeUpdate map[domain.AccountID]*domain.PerformanceRankingItem,
) {
	sort.SliceStable(updatedRankings, func(i, j int) bool {
		a, b := updatedRankings[i], updatedRankings[j]
		if a.Performance != b.Performance {
			return a.Performance > b.Performance
		}
		if a.ActualAmount != b.ActualAmount {
			return a.ActualAmount > b.ActualAmount
		}
		return a.AccountID < b.AccountID
	})

	for i, ranking := range updatedRankings {
		ranking.Position = i + 1
		ranking.PositionChange = 0
		ranking.PreviousPosition = 0

		rankingBefore, exists := rankingsBeforeUpdate[ranking.AccountID]
		if exists {
			ranking.PositionChange = rankingBefore.Position - ranking.Position
			ranking.PreviousPosition = rankingBefore.Position
		}
	}
}

// TriggerManualSync inicia manualmente a atualização do ranking
func (s *PerformanceRankingService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Atualização do ranking de desempenho já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando atualização manual do ranking de desempenho")
	go func() {
		if err := s.UpdatePerformanceRanking(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na atualização manual do ranking de desempenho")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *PerformanceRankingService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
	}
}
