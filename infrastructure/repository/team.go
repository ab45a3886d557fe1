package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/target-performance-api/infrastructure/database/postgres"
	"github.com/vfg2006/target-performance-api/internal/domain"
)

const (
	teamsTable       = "teams t"
	teamMembersTable = "team_members tm"
)

//go:generate mockgen -source=team.go -destination=mocks/team.go -package=mocks

type TeamRepository interface {
	GetTeamByID(ctx context.Context, teamID domain.TeamID) (*domain.Team, error)
	ListTeamsByManager(ctx context.Context, managerID domain.AccountID) ([]*domain.Team, error)
	ListTeamMembers(ctx context.Context, teamID domain.TeamID) ([]*domain.Account, error)
}

type teamRepository struct {
	conn *postgres.Connection
}

func NewTeamRepository(conn *postgres.Connection) TeamRepository {
	return &teamRepository{
		conn: conn,
	}
}

func (r *teamRepository) GetTeamByID(ctx context.Context, teamID domain.TeamID) (*domain.Team, error) {
	query, args, err := squirrel.
		Select("t.id", "t.name", "t.manager_id", "t.created_at", "t.updated_at").
		From(teamsTable).
		Where(squirrel.Eq{"t.id": string(teamID)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	team, err := scanTeam(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear time: %w", err)
	}

	return team, nil
}

func (r *teamRepository) ListTeamsByManager(ctx context.Context, managerID domain.AccountID) ([]*domain.Team, error) {
	query, args, err := squirrel.
		Select("t.id", "t.name", "t.manager_id", "t.created_at", "t.updated_at").
		From(teamsTable).
		Where(squirrel.Eq{"t.manager_id": managerID.String()}).
		OrderBy("t.name ASC").
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

	teams := make([]*domain.Team, 0)
	for rows.Next() {
		team, err := scanTeam(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear time: %w", err)
		}
		teams = append(teams, team)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return teams, nil
}

// ListTeamMembers mantém a ordem de inclusão dos membros no time
func (r *teamRepository) ListTeamMembers(ctx context.Context, teamID domain.TeamID) ([]*domain.Account, error) {
	query, args, err := squirrel.
		Select(accountColumns...).
		From(teamMembersTable).
		Join("accounts a ON a.id = tm.account_id").
		Where(squirrel.Eq{"tm.team_id": string(teamID)}).
		OrderBy("tm.position ASC", "tm.account_id ASC").
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

	members := make([]*domain.Account, 0)
	for rows.Next() {
		member, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear membro do time: %w", err)
		}
		members = append(members, member)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return members, nil
}

func scanTeam(row rowScanner) (*domain.Team, error) {
	team := &domain.Team{}

	var (
		id        string
		managerID sql.NullString
	)

	if err := row.Scan(&id, &team.Name, &managerID, &team.CreatedAt, &team.UpdatedAt); err != nil {
		return nil, err
	}

	team.ID = domain.TeamID(id)
	if managerID.Valid {
		team.ManagerID = domain.NormalizeAccountID(managerID.String)
	}

	return team, nil
}
