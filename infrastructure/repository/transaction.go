package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/target-performance-api/infrastructure/database/postgres"
	"github.com/vfg2006/target-performance-api/internal/domain"
)

// vendas e pedidos têm a mesma estrutura, apenas em tabelas diferentes
var transactionTables = map[domain.TransactionKind]string{
	domain.KindSales: "sales",
	domain.KindOrder: "orders",
}

//go:generate mockgen -source=transaction.go -destination=mocks/transaction.go -package=mocks

type TransactionRepository interface {
	// ListTransactions busca as transações da janela. accountIDs vazio significa todas as contas.
	ListTransactions(ctx context.Context, kind domain.TransactionKind, window domain.ResolvedPeriod, accountIDs []domain.AccountID) ([]*domain.Transaction, error)
}

type transactionRepository struct {
	conn *postgres.Connection
}

func NewTransactionRepository(conn *postgres.Connection) TransactionRepository {
	return &transactionRepository{
		conn: conn,
	}
}

func (r *transactionRepository) ListTransactions(
	ctx context.Context,
	kind domain.TransactionKind,
	window domain.ResolvedPeriod,
	accountIDs []domain.AccountID,
) ([]*domain.Transaction, error) {
	table, ok := transactionTables[kind]
	if !ok {
		return nil, fmt.Errorf("tipo de transação sem tabela: %s", kind)
	}

	if window.IsEmpty() {
		return []*domain.Transaction{}, nil
	}

	queryBuilder := squirrel.
		Select(
			"tx.id",
			"tx.employee_id",
			"tx.client_id",
			"tx.client_name",
			"tx.amount",
			"tx.quantity",
			"tx.sourcing_cost",
			"tx.occurred_at",
			"tx.status",
		).
		From(table + " tx").
		Where(squirrel.GtOrEq{"tx.occurred_at": window.Start}).
		Where(squirrel.Lt{"tx.occurred_at": window.EndExclusive()}).
		OrderBy("tx.occurred_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(accountIDs) > 0 {
		ids := make([]string, 0, len(accountIDs))
		for _, id := range accountIDs {
			ids = append(ids, id.String())
		}
		queryBuilder = queryBuilder.Where(squirrel.Eq{"TRIM(tx.employee_id)": ids})
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

	transactions := make([]*domain.Transaction, 0)
	for rows.Next() {
		transaction, err := scanTransaction(rows, kind)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear transação: %w", err)
		}
		transactions = append(transactions, transaction)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return transactions, nil
}

func scanTransaction(row rowScanner, kind domain.TransactionKind) (*domain.Transaction, error) {
	var (
		transaction  = &domain.Transaction{Kind: kind}
		employeeID   string
		clientID     sql.NullString
		clientName   sql.NullString
		sourcingCost sql.NullFloat64
		status       sql.NullString
		occurredAt   time.Time
	)

	if err := row.Scan(
		&transaction.ID,
		&employeeID,
		&clientID,
		&clientName,
		&transaction.Amount,
		&transaction.Quantity,
		&sourcingCost,
		&occurredAt,
		&status,
	); err != nil {
		return nil, err
	}

	transaction.AccountID = domain.NormalizeAccountID(employeeID)
	transaction.ClientID = domain.NormalizeAccountID(clientID.String)
	transaction.ClientName = clientName.String
	transaction.SourcingCost = sourcingCost.Float64
	transaction.Status = status.String
	transaction.OccurredAt = occurredAt.UTC()

	return transaction, nil
}
