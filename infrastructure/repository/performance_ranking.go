package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/target-performance-api/infrastructure/database/postgres"
	"github.com/vfg2006/target-performance-api/internal/domain"
)

const (
	performanceRankingTable = "performance_ranking pr"
)

//go:generate mockgen -source=performance_ranking.go -destination=mocks/performance_ranking.go -package=mocks

type PerformanceRankingRepository interface {
	GetRanking(ctx context.Context, kind domain.TransactionKind, period domain.Period) ([]*domain.PerformanceRankingItem, error)
	SaveOrUpdateRanking(ctx context.Context, rankings []*domain.PerformanceRankingItem) error
}

type performanceRankingRepository struct {
	conn *postgres.Connection
}

func NewPerformanceRankingRepository(conn *postgres.Connection) PerformanceRankingRepository {
	return &performanceRankingRepository{
		conn: conn,
	}
}

func (r *performanceRankingRepository) GetRanking(
	ctx context.Context,
	kind domain.TransactionKind,
	period domain.Period,
) ([]*domain.PerformanceRankingItem, error) {
	query, args, err := squirrel.
		Select(
			"pr.id",
			"pr.account_id",
			"pr.account_name",
			"pr.kind",
			"pr.month",
			"pr.year",
			"pr.actual_amount",
			"pr.target_amount",
			"pr.performance",
			"pr.position",
			"pr.position_change",
			"pr.previous_position",
			"pr.created_at",
			"pr.updated_at",
		).
		From(performanceRankingTable).
		Where(squirrel.Eq{"pr.kind": string(kind), "pr.month": period.Month, "pr.year": period.Year}).
		OrderBy("pr.position ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	rankings := make([]*domain.PerformanceRankingItem, 0)
	for rows.Next() {
		item := &domain.PerformanceRankingItem{}
		var accountID, itemKind string

		if err := rows.Scan(
			&item.ID,
			&accountID,
			&item.AccountName,
			&itemKind,
			&item.Month,
			&item.Year,
			&item.ActualAmount,
			&item.TargetAmount,
			&item.Performance,
			&item.Position,
			&item.PositionChange,
			&item.PreviousPosition,
			&item.CreatedAt,
			&item.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear item do ranking: %w", err)
		}

		item.AccountID = domain.NormalizeAccountID(accountID)
		item.Kind = domain.TransactionKind(itemKind)
		rankings = append(rankings, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return rankings, nil
}

func (r *performanceRankingRepository) SaveOrUpdateRanking(ctx context.Context, rankings []*domain.PerformanceRankingItem) error {
	if len(rankings) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert("performance_ranking").
		Columns(
			"account_id",
			"account_name",
			"kind",
			"month",
			"year",
			"actual_amount",
			"target_amount",
			"performance",
			"position",
			"position_change",
			"previous_position",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, ranking := range rankings {
		query = query.Values(
			ranking.AccountID.String(),
			ranking.AccountName,
			string(ranking.Kind),
			ranking.Month,
			ranking.Year,
			ranking.ActualAmount,
			ranking.TargetAmount,
			ranking.Performance,
			ranking.Position,
			ranking.PositionChange,
			ranking.PreviousPosition,
		)
	}

	query = query.Suffix(`
		ON CONFLICT (account_id, kind, month, year) DO UPDATE SET
			account_name = EXCLUDED.account_name,
			actual_amount = EXCLUDED.actual_amount,
			target_amount = EXCLUDED.target_amount,
			performance = EXCLUDED.performance,
			position = EXCLUDED.position,
			position_change = EXCLUDED.position_change,
			previous_position = EXCLUDED.previous_position,
			updated_at = CURRENT_TIMESTAMP
	`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, sqlQuery, args...); err != nil {
		return wrapPQError(err)
	}

	return nil
}
