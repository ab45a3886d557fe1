package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/target-performance-api/infrastructure/database/postgres"
	"github.com/vfg2006/target-performance-api/internal/domain"
)

const (
	targetsTable = "targets tg"
)

var targetColumns = []string{
	"tg.id",
	"tg.assigned_to",
	"tg.assigned_to_model",
	"tg.target_type",
	"tg.amount",
	"tg.quantity",
	"tg.month",
	"tg.year",
	"tg.original_total",
	"tg.member_count",
	"tg.created_by",
	"tg.created_for",
	"tg.created_at",
	"tg.updated_at",
}

//go:generate mockgen -source=target.go -destination=mocks/target.go -package=mocks

type TargetRepository interface {
	// InsertTargets grava o lote inteiro em uma única transação
	InsertTargets(ctx context.Context, targets []*domain.Target) ([]*domain.Target, error)
	// ListTargets com filter.Periods nil não restringe período; vazio e não nil não retorna nada
	ListTargets(ctx context.Context, filter domain.TargetFilter) ([]*domain.Target, error)
	GetTargetByID(ctx context.Context, id string) (*domain.Target, error)
	UpdateTarget(ctx context.Context, target *domain.Target) error
	DeleteTarget(ctx context.Context, id string) (bool, error)
	DeleteTargets(ctx context.Context, ids []string) error
}

type targetRepository struct {
	conn *postgres.Connection
}

func NewTargetRepository(conn *postgres.Connection) TargetRepository {
	return &targetRepository{
		conn: conn,
	}
}

func (r *targetRepository) InsertTargets(ctx context.Context, targets []*domain.Target) ([]*domain.Target, error) {
	if len(targets) == 0 {
		return []*domain.Target{}, nil
	}

	query := squirrel.StatementBuilder.
		Insert("targets").
		Columns(
			"id",
			"assigned_to",
			"assigned_to_model",
			"target_type",
			"amount",
			"quantity",
			"month",
			"year",
			"original_total",
			"member_count",
			"created_by",
			"created_for",
		).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	byID := make(map[string]*domain.Target, len(targets))
	for _, target := range targets {
		query = query.Values(
			target.ID,
			target.AssignedTo.String(),
			string(target.AssignedToModel),
			string(target.TargetType),
			target.Amount,
			target.Quantity,
			target.Month,
			target.Year,
			target.OriginalTotal,
			target.MemberCount,
			target.CreatedBy.String(),
			target.CreatedFor.String(),
		)
		byID[target.ID] = target
	}

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	inserted := make([]*domain.Target, 0, len(targets))
	err = r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, sqlQuery, args...)
		if err != nil {
			return wrapPQError(err)
		}
		defer rows.Close()

		for rows.Next() {
			var (
				id                   string
				createdAt, updatedAt time.Time
			)
			if err := rows.Scan(&id, &createdAt, &updatedAt); err != nil {
				return fmt.Errorf("erro ao escanear meta inserida: %w", err)
			}

			target, ok := byID[id]
			if !ok {
				return fmt.Errorf("meta inserida com ID inesperado: %s", id)
			}
			target.CreatedAt = createdAt
			target.UpdatedAt = updatedAt
			inserted = append(inserted, target)
		}

		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao inserir metas: %w", err)
	}

	return inserted, nil
}

func (r *targetRepository) ListTargets(ctx context.Context, filter domain.TargetFilter) ([]*domain.Target, error) {
	if filter.Periods != nil && len(filter.Periods) == 0 {
		return []*domain.Target{}, nil
	}

	queryBuilder := squirrel.
		Select(targetColumns...).
		From(targetsTable).
		OrderBy("tg.year ASC", "tg.month ASC", "tg.created_at ASC", "tg.id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(filter.Periods) > 0 {
		keys := make([]int64, 0, len(filter.Periods))
		for _, period := range filter.Periods {
			keys = append(keys, int64(period.Year*100+period.Month))
		}
		queryBuilder = queryBuilder.Where(squirrel.Expr("(tg.year * 100 + tg.month) = ANY(?)", pq.Array(keys)))
	}

	if filter.TargetType != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"tg.target_type": string(*filter.TargetType)})
	}

	if filter.AssignedToModel != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"tg.assigned_to_model": string(*filter.AssignedToModel)})
	}

	if len(filter.AssignedTo) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Expr("TRIM(tg.assigned_to) = ANY(?)", pq.Array(accountIDStrings(filter.AssignedTo))))
	}

	if len(filter.CreatedFor) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Expr("TRIM(tg.created_for) = ANY(?)", pq.Array(accountIDStrings(filter.CreatedFor))))
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	targets := make([]*domain.Target, 0)
	for rows.Next() {
		target, err := scanTarget(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear meta: %w", err)
		}
		targets = append(targets, target)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return targets, nil
}

// GetTargetByID retorna nil, nil quando a meta não existe
func (r *targetRepository) GetTargetByID(ctx context.Context, id string) (*domain.Target, error) {
	query, args, err := squirrel.
		Select(targetColumns...).
		From(targetsTable).
		Where(squirrel.Eq{"tg.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	target, err := scanTarget(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear meta: %w", err)
	}

	return target, nil
}

func (r *targetRepository) UpdateTarget(ctx context.Context, target *domain.Target) error {
	query, args, err := squirrel.
		Update("targets").
		Set("target_type", string(target.TargetType)).
		Set("amount", target.Amount).
		Set("quantity", target.Quantity).
		Set("month", target.Month).
		Set("year", target.Year).
		Set("original_total", target.OriginalTotal).
		Set("member_count", target.MemberCount).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": target.ID}).
		Suffix("RETURNING updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&target.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return wrapPQError(err)
	}

	return nil
}

func (r *targetRepository) DeleteTarget(ctx context.Context, id string) (bool, error) {
	query, args, err := squirrel.
		Delete("targets").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected > 0, nil
}

func (r *targetRepository) DeleteTargets(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	query, args, err := squirrel.
		Delete("targets").
		Where(squirrel.Expr("id = ANY(?)", pq.Array(ids))).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func scanTarget(row rowScanner) (*domain.Target, error) {
	var (
		target          = &domain.Target{}
		assignedTo      string
		assignedToModel string
		targetType      string
		originalTotal   sql.NullFloat64
		memberCount     sql.NullInt64
		createdBy       sql.NullString
		createdFor      sql.NullString
	)

	if err := row.Scan(
		&target.ID,
		&assignedTo,
		&assignedToModel,
		&targetType,
		&target.Amount,
		&target.Quantity,
		&target.Month,
		&target.Year,
		&originalTotal,
		&memberCount,
		&createdBy,
		&createdFor,
		&target.CreatedAt,
		&target.UpdatedAt,
	); err != nil {
		return nil, err
	}

	target.AssignedTo = domain.NormalizeAccountID(assignedTo)
	target.AssignedToModel = domain.RecipientKind(assignedToModel)
	target.TargetType = domain.TransactionKind(targetType)
	target.CreatedBy = domain.NormalizeAccountID(createdBy.String)
	target.CreatedFor = domain.NormalizeAccountID(createdFor.String)

	if originalTotal.Valid {
		total := originalTotal.Float64
		target.OriginalTotal = &total
	}
	if memberCount.Valid {
		count := int(memberCount.Int64)
		target.MemberCount = &count
	}

	return target, nil
}

func accountIDStrings(ids []domain.AccountID) []string {
	values := make([]string, 0, len(ids))
	for _, id := range ids {
		values = append(values, id.String())
	}
	return values
}
