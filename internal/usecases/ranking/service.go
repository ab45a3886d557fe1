package ranking

import (
	"context"
	"fmt"
	"time"

	"github.com/vfg2006/target-performance-api/infrastructure/repository"
	"github.com/vfg2006/target-performance-api/internal/domain"
	"github.com/vfg2006/target-performance-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

type RankingService interface {
	// GetPerformanceRanking com period nil usa o mês de ontem, o mesmo que o agendador atualiza
	GetPerformanceRanking(ctx context.Context, kind domain.TransactionKind, period *domain.Period) (*domain.PerformanceRankingResponse, error)
}

type PerformanceRankingService struct {
	RankingRepository repository.PerformanceRankingRepository
	now               func() time.Time
}

func NewPerformanceRankingService(rankingRepository repository.PerformanceRankingRepository) RankingService {
	return &PerformanceRankingService{
		RankingRepository: rankingRepository,
		now:               time.Now,
	}
}

func (s *PerformanceRankingService) GetPerformanceRanking(
	ctx context.Context,
	kind domain.TransactionKind,
	period *domain.Period,
) (*domain.PerformanceRankingResponse, error) {
	target := domain.PeriodOf(utils.Yesterday(s.now()))
	if period != nil {
		target = *period
	}

	items, err := s.RankingRepository.GetRanking(ctx, kind, target)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar ranking de %s: %w", kind, err)
	}

	response := &domain.PerformanceRankingResponse{
		Kind:    kind,
		Period:  target,
		Ranking: make([]domain.PerformanceRankingItem, 0, len(items)),
	}

	for _, item := range items {
		if item.UpdatedAt.After(response.LastUpdate) {
			response.LastUpdate = item.UpdatedAt
		}
		response.Ranking = append(response.Ranking, *item)
	}

	return response, nil
}
