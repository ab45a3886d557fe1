package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/target-performance-api/infrastructure/repository/mocks"
	"github.com/vfg2006/target-performance-api/internal/domain"
	reportingmocks "github.com/vfg2006/target-performance-api/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
)

func row(id string, actual, target float64) domain.PerformanceRow {
	return domain.PerformanceRow{AccountID: domain.AccountID(id), AccountName: "Conta " + id, ActualAmount: actual, TargetAmount: target}
}

func TestPerformanceRankingService_processRankingWithDate(t *testing.T) {
	tests := []struct {
		name          string
		executionDate time.Time
		setup         func(reporter *reportingmocks.MockReporter, rankingRepo *mocks.MockPerformanceRankingRepository)
		wantErr       bool
		validate      func(t *testing.T, result []*domain.PerformanceRankingItem)
	}{
		{
			name:          "Conta nova sem ranking anterior - posição calculada sem variação",
			executionDate: time.Date(2024, 1, 16, 6, 0, 0, 0, time.UTC),
			setup: func(reporter *reportingmocks.MockReporter, rankingRepo *mocks.MockPerformanceRankingRepository) {
				rankingRepo.EXPECT().
					GetRanking(gomock.Any(), domain.KindSales, domain.Period{Month: 1, Year: 2024}).
					Return(nil, nil)

				reporter.EXPECT().
					AccountsPerformance(gomock.Any(), domain.KindSales, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ domain.TransactionKind, filter domain.PeriodFilter) (*domain.AccountsPerformanceReport, error) {
						require.NotNil(t, filter.Month)
						require.NotNil(t, filter.Year)
						assert.Equal(t, 1, *filter.Month)
						assert.Equal(t, 2024, *filter.Year)
						return &domain.AccountsPerformanceReport{Rows: []domain.PerformanceRow{row("ACC001", 2500, 5000)}}, nil
					})

				rankingRepo.EXPECT().SaveOrUpdateRanking(gomock.Any(), gomock.Len(1)).Return(nil)
			},
			validate: func(t *testing.T, result []*domain.PerformanceRankingItem) {
				require.Len(t, result, 1)
				assert.Equal(t, domain.AccountID("ACC001"), result[0].AccountID)
				assert.Equal(t, 50.0, result[0].Performance)
				assert.Equal(t, 1, result[0].Position)
				assert.Equal(t, 0, result[0].PositionChange)
				assert.Equal(t, 0, result[0].PreviousPosition)
				assert.Equal(t, domain.KindSales, result[0].Kind)
			},
		},
		{
			name:          "Execução no primeiro dia do mês - deve atualizar ranking do mês anterior",
			executionDate: time.Date(2024, 2, 1, 6, 0, 0, 0, time.UTC),
			setup: func(reporter *reportingmocks.MockReporter, rankingRepo *mocks.MockPerformanceRankingRepository) {
				rankingRepo.EXPECT().
					GetRanking(gomock.Any(), domain.KindSales, domain.Period{Month: 1, Year: 2024}).
					Return([]*domain.PerformanceRankingItem{}, nil)
				reporter.EXPECT().
					AccountsPerformance(gomock.Any(), domain.KindSales, gomock.Any()).
					Return(&domain.AccountsPerformanceReport{Rows: []domain.PerformanceRow{row("ACC001", 100, 100)}}, nil)
				rankingRepo.EXPECT().SaveOrUpdateRanking(gomock.Any(), gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, result []*domain.PerformanceRankingItem) {
				require.Len(t, result, 1)
				assert.Equal(t, 1, result[0].Month)
				assert.Equal(t, 2024, result[0].Year)
			},
		},
		{
			name:          "Ultrapassagem - posições e variação em relação ao ranking anterior",
			executionDate: time.Date(2024, 3, 10, 6, 0, 0, 0, time.UTC),
			setup: func(reporter *reportingmocks.MockReporter, rankingRepo *mocks.MockPerformanceRankingRepository) {
				rankingRepo.EXPECT().
					GetRanking(gomock.Any(), domain.KindSales, domain.Period{Month: 3, Year: 2024}).
					Return([]*domain.PerformanceRankingItem{
						{AccountID: "ACC001", Position: 1},
						{AccountID: "ACC002", Position: 2},
					}, nil)
				reporter.EXPECT().
					AccountsPerformance(gomock.Any(), domain.KindSales, gomock.Any()).
					Return(&domain.AccountsPerformanceReport{Rows: []domain.PerformanceRow{
						row("ACC001", 400, 1000),
						row("ACC002", 900, 1000),
						row("ACC003", 100, 0),
					}}, nil)
				rankingRepo.EXPECT().SaveOrUpdateRanking(gomock.Any(), gomock.Len(3)).Return(nil)
			},
			validate: func(t *testing.T, result []*domain.PerformanceRankingItem) {
				require.Len(t, result, 3)

				assert.Equal(t, domain.AccountID("ACC002"), result[0].AccountID)
				assert.Equal(t, 1, result[0].Position)
				assert.Equal(t, 1, result[0].PositionChange) // Subiu do 2º para o 1º lugar
				assert.Equal(t, 2, result[0].PreviousPosition)

				assert.Equal(t, domain.AccountID("ACC001"), result[1].AccountID)
				assert.Equal(t, 2, result[1].Position)
				assert.Equal(t, -1, result[1].PositionChange)

				// Sem meta o desempenho é zero
				assert.Equal(t, domain.AccountID("ACC003"), result[2].AccountID)
				assert.Equal(t, 0.0, result[2].Performance)
				assert.Equal(t, 0, result[2].PreviousPosition)
			},
		},
		{
			name:          "Erro no relatório - nada é salvo",
			executionDate: time.Date(2024, 3, 10, 6, 0, 0, 0, time.UTC),
			setup: func(reporter *reportingmocks.MockReporter, rankingRepo *mocks.MockPerformanceRankingRepository) {
				rankingRepo.EXPECT().GetRanking(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
				reporter.EXPECT().
					AccountsPerformance(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("banco indisponível"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			reporter := reportingmocks.NewMockReporter(ctrl)
			rankingRepo := mocks.NewMockPerformanceRankingRepository(ctrl)
			tt.setup(reporter, rankingRepo)

			service := &PerformanceRankingService{
				reporter:    reporter,
				rankingRepo: rankingRepo,
			}

			result, err := service.processRankingWithDate(context.Background(), domain.KindSales, tt.executionDate)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			tt.validate(t, result)
		})
	}
}

func TestPerformanceRankingService_updatePositions(t *testing.T) {
	service := &PerformanceRankingService{}

	rankings := []*domain.PerformanceRankingItem{
		{AccountID: "C", Performance: 50, ActualAmount: 100},
		{AccountID: "B", Performance: 50, ActualAmount: 300},
		{AccountID: "A", Performance: 50, ActualAmount: 100},
		{AccountID: "D", Performance: 80, ActualAmount: 10},
	}

	service.updatePositions(rankings, map[domain.AccountID]*domain.PerformanceRankingItem{
		"A": {AccountID: "A", Position: 4},
	})

	ids := make([]domain.AccountID, 0, len(rankings))
	for i, ranking := range rankings {
		assert.Equal(t, i+1, ranking.Position)
		ids = append(ids, ranking.AccountID)
	}

	// Empate no desempenho é decidido pelo realizado e depois pela conta
	assert.Equal(t, []domain.AccountID{"D", "B", "A", "C"}, ids)
	assert.Equal(t, 1, rankings[2].PositionChange)
	assert.Equal(t, 4, rankings[2].PreviousPosition)
}

func TestPerformanceRankingService_UpdatePerformanceRanking(t *testing.T) {
	ctrl := gomock.NewController(t)
	reporter := reportingmocks.NewMockReporter(ctrl)
	rankingRepo := mocks.NewMockPerformanceRankingRepository(ctrl)

	rankingRepo.EXPECT().GetRanking(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
	reporter.EXPECT().
		AccountsPerformance(gomock.Any(), domain.KindSales, gomock.Any()).
		Return(&domain.AccountsPerformanceReport{Rows: []domain.PerformanceRow{row("A", 1, 1)}}, nil)
	reporter.EXPECT().
		AccountsPerformance(gomock.Any(), domain.KindOrder, gomock.Any()).
		Return(&domain.AccountsPerformanceReport{Rows: []domain.PerformanceRow{}}, nil)
	rankingRepo.EXPECT().SaveOrUpdateRanking(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	service := &PerformanceRankingService{
		reporter:    reporter,
		rankingRepo: rankingRepo,
		config:      PerformanceRankingConfig{CronSchedule: "0 6 * * *", SyncEnabled: true},
	}

	err := service.UpdatePerformanceRanking(context.Background())
	require.NoError(t, err)

	status := service.GetStatus()
	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, "", status["last_sync_error"])
	assert.Equal(t, "0 6 * * *", status["sync_cron"])
	assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
}
