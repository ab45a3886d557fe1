// Package repository contém as implementações dos repositórios para acesso aos dados
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
	accountsTable = "accounts a"
)

var accountColumns = []string{
	"a.id",
	"a.name",
	"a.email",
	"a.permissions",
	"a.role",
	"a.team_id",
	"a.created_at",
	"a.updated_at",
}

//go:generate mockgen -source=account.go -destination=mocks/account.go -package=mocks

type AccountRepository interface {
	GetAccountByID(ctx context.Context, accountID domain.AccountID) (*domain.Account, error)
	ListAccountsByIDs(ctx context.Context, accountIDs []domain.AccountID) ([]*domain.Account, error)
	ListAccountsByPermission(ctx context.Context, levels []domain.PermissionLevel) ([]*domain.Account, error)
}

type accountRepository struct {
	conn *postgres.Connection
}

func NewAccountRepository(conn *postgres.Connection) AccountRepository {
	return &accountRepository{
		conn: conn,
	}
}

// GetAccountByID retorna nil, nil quando a conta não existe
func (r *accountRepository) GetAccountByID(ctx context.Context, accountID domain.AccountID) (*domain.Account, error) {
	query, args, err := squirrel.
		Select(accountColumns...).
		From(accountsTable).
		Where(squirrel.Eq{"a.id": accountID.String()}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	account, err := scanAccount(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear conta: %w", err)
	}

	return account, nil
}

func (r *accountRepository) ListAccountsByIDs(ctx context.Context, accountIDs []domain.AccountID) ([]*domain.Account, error) {
	if len(accountIDs) == 0 {
		return []*domain.Account{}, nil
	}

	ids := make([]string, 0, len(accountIDs))
	for _, id := range accountIDs {
		ids = append(ids, id.String())
	}

	return r.listAccounts(ctx, squirrel.Eq{"a.id": ids})
}

func (r *accountRepository) ListAccountsByPermission(ctx context.Context, levels []domain.PermissionLevel) ([]*domain.Account, error) {
	if len(levels) == 0 {
		return []*domain.Account{}, nil
	}

	values := make([]string, 0, len(levels))
	for _, level := range levels {
		values = append(values, string(level))
	}

	return r.listAccounts(ctx, squirrel.Eq{"a.permissions": values})
}

func (r *accountRepository) listAccounts(ctx context.Context, where squirrel.Sqlizer) ([]*domain.Account, error) {
	query, args, err := squirrel.
		Select(accountColumns...).
		From(accountsTable).
		Where(where).
		OrderBy("a.name ASC", "a.id ASC").
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

	accounts := make([]*domain.Account, 0)
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear conta: %w", err)
		}
		accounts = append(accounts, account)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return accounts, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (*domain.Account, error) {
	account := &domain.Account{}

	var (
		id         string
		permission string
		role       string
		teamID     sql.NullString
	)

	if err := row.Scan(
		&id,
		&account.Name,
		&account.Email,
		&permission,
		&role,
		&teamID,
		&account.CreatedAt,
		&account.UpdatedAt,
	); err != nil {
		return nil, err
	}

	account.ID = domain.NormalizeAccountID(id)
	account.Permission = domain.PermissionLevel(permission)
	account.Role = domain.Role(role)
	if teamID.Valid {
		team := domain.TeamID(teamID.String)
		account.TeamID = &team
	}

	return account, nil
}
