package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"math/rand"
	"time"

	_ "github.com/lib/pq"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/target-performance-api/internal/config"
	"github.com/vfg2006/target-performance-api/internal/domain"
	"github.com/vfg2006/target-performance-api/internal/usecases/authenticating"
)

const (
	idLength   = 10
	characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS teams (
		id VARCHAR(64) PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		manager_id VARCHAR(64),
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS accounts (
		id VARCHAR(64) PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL DEFAULT '',
		permissions VARCHAR(32) NOT NULL,
		role VARCHAR(32) NOT NULL,
		team_id VARCHAR(64) REFERENCES teams(id) ON DELETE SET NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS team_members (
		team_id VARCHAR(64) NOT NULL REFERENCES teams(id) ON DELETE CASCADE,
		account_id VARCHAR(64) NOT NULL REFERENCES accounts(id) ON DELETE CASCADE,
		position INT NOT NULL DEFAULT 0,
		PRIMARY KEY (team_id, account_id)
	)`,
	`CREATE TABLE IF NOT EXISTS sales (
		id VARCHAR(64) PRIMARY KEY,
		employee_id VARCHAR(64) NOT NULL,
		client_id VARCHAR(64) NOT NULL DEFAULT '',
		client_name VARCHAR(255) NOT NULL DEFAULT '',
		amount NUMERIC(14,2) NOT NULL DEFAULT 0,
		quantity INT NOT NULL DEFAULT 0,
		sourcing_cost NUMERIC(14,2) NOT NULL DEFAULT 0,
		occurred_at TIMESTAMP NOT NULL,
		status VARCHAR(32) NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_employee_occurred ON sales (employee_id, occurred_at)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id VARCHAR(64) PRIMARY KEY,
		employee_id VARCHAR(64) NOT NULL,
		client_id VARCHAR(64) NOT NULL DEFAULT '',
		client_name VARCHAR(255) NOT NULL DEFAULT '',
		amount NUMERIC(14,2) NOT NULL DEFAULT 0,
		quantity INT NOT NULL DEFAULT 0,
		sourcing_cost NUMERIC(14,2) NOT NULL DEFAULT 0,
		occurred_at TIMESTAMP NOT NULL,
		status VARCHAR(32) NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_employee_occurred ON orders (employee_id, occurred_at)`,
	`CREATE TABLE IF NOT EXISTS targets (
		id VARCHAR(64) PRIMARY KEY,
		assigned_to VARCHAR(64) NOT NULL,
		assigned_to_model VARCHAR(16) NOT NULL DEFAULT 'Account',
		target_type VARCHAR(16) NOT NULL,
		amount NUMERIC(14,2) NOT NULL DEFAULT 0,
		quantity INT NOT NULL DEFAULT 0,
		month INT NOT NULL,
		year INT NOT NULL,
		original_total NUMERIC(14,2),
		member_count INT,
		created_by VARCHAR(64) NOT NULL DEFAULT '',
		created_for VARCHAR(64) NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_targets_period ON targets (year, month, target_type)`,
	`CREATE TABLE IF NOT EXISTS performance_ranking (
		id BIGSERIAL PRIMARY KEY,
		account_id VARCHAR(64) NOT NULL,
		account_name VARCHAR(255) NOT NULL DEFAULT '',
		kind VARCHAR(16) NOT NULL,
		month INT NOT NULL,
		year INT NOT NULL,
		actual_amount NUMERIC(14,2) NOT NULL DEFAULT 0,
		target_amount NUMERIC(14,2) NOT NULL DEFAULT 0,
		performance DOUBLE PRECISION NOT NULL DEFAULT 0,
		position INT NOT NULL,
		position_change INT NOT NULL DEFAULT 0,
		previous_position INT NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
}

type seedAccount struct {
	Name       string
	Permission domain.PermissionLevel
	Role       domain.Role
}

var seedAccounts = []seedAccount{
	{"Administrador", domain.PermissionAll, domain.RoleAdmin},
	{"Gerente Loja Centro", domain.PermissionSalesAndOrders, domain.RoleTeamManager},
	{"Ana Vendas", domain.PermissionSales, domain.RoleEmployee},
	{"Bruno Pedidos", domain.PermissionOrders, domain.RoleEmployee},
	{"Carla Vendas e Pedidos", domain.PermissionSalesAndOrders, domain.RoleEmployee},
	{"Diego Pedidos", domain.PermissionOrders, domain.RoleEmployee},
}

func generateID() string {
	id, err := gonanoid.Generate(characters, idLength)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao gerar identificador")
	}
	return id
}

func createSchema(ctx context.Context, db *sql.DB) {
	logrus.Infof("Criando %d objetos do schema...", len(schema))
	startTime := time.Now()

	for _, statement := range schema {
		if _, err := db.ExecContext(ctx, statement); err != nil {
			logrus.WithError(err).Fatal("Erro ao criar schema")
		}
	}

	addUniqueConstraintToPerformanceRanking(ctx, db)

	logrus.Infof("Schema criado em %v", time.Since(startTime))
}

func addUniqueConstraintToPerformanceRanking(ctx context.Context, db *sql.DB) {
	var exists bool
	err := db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM pg_constraint WHERE conname = 'performance_ranking_account_kind_period_key'
		)`).Scan(&exists)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao verificar constraint do ranking")
	}

	if exists {
		logrus.Info("Constraint única do ranking já existe")
		return
	}

	_, err = db.ExecContext(ctx, `
		ALTER TABLE performance_ranking
		ADD CONSTRAINT performance_ranking_account_kind_period_key UNIQUE (account_id, kind, month, year)`)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao adicionar constraint única ao ranking")
	}

	logrus.Info("Constraint única (account_id, kind, month, year) adicionada ao ranking")
}

// seed cria um time com gerente e membros de permissões variadas e transações do ano corrente
func seed(ctx context.Context, db *sql.DB, now time.Time) []*domain.Account {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao iniciar transação de seed")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	teamID := generateID()
	accounts := make([]*domain.Account, 0, len(seedAccounts))
	for _, s := range seedAccounts {
		accounts = append(accounts, &domain.Account{
			ID:         domain.AccountID(generateID()),
			Name:       s.Name,
			Email:      fmt.Sprintf("%s@example.com", generateID()),
			Permission: s.Permission,
			Role:       s.Role,
		})
	}
	manager := accounts[1]

	if _, err := tx.ExecContext(ctx, `INSERT INTO teams (id, name, manager_id) VALUES ($1, $2, $3)`,
		teamID, "Loja Centro", manager.ID.String()); err != nil {
		logrus.WithError(err).Fatal("Erro ao inserir time")
	}

	for _, account := range accounts {
		var accountTeam any
		if account.Role != domain.RoleAdmin {
			accountTeam = teamID
		}

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO accounts (id, name, email, permissions, role, team_id) VALUES ($1, $2, $3, $4, $5, $6)`,
			account.ID.String(), account.Name, account.Email, string(account.Permission), string(account.Role), accountTeam,
		); err != nil {
			logrus.WithError(err).WithField("account_name", account.Name).Fatal("Erro ao inserir conta")
		}
	}

	for position, member := range accounts[2:] {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO team_members (team_id, account_id, position) VALUES ($1, $2, $3)`,
			teamID, member.ID.String(), position,
		); err != nil {
			logrus.WithError(err).Fatal("Erro ao inserir membro do time")
		}
	}

	salesCount, ordersCount := seedTransactions(ctx, tx, accounts, now)

	if err := tx.Commit(); err != nil {
		logrus.WithError(err).Fatal("Erro ao confirmar seed")
	}

	logrus.WithFields(logrus.Fields{
		"team_id":  teamID,
		"accounts": len(accounts),
		"sales":    salesCount,
		"orders":   ordersCount,
	}).Info("Dados de demonstração inseridos")

	return accounts
}

func seedTransactions(ctx context.Context, tx *sql.Tx, accounts []*domain.Account, now time.Time) (int, int) {
	rnd := rand.New(rand.NewSource(now.UnixNano()))
	tables := map[domain.TransactionKind]string{
		domain.KindSales: "sales",
		domain.KindOrder: "orders",
	}
	counts := map[domain.TransactionKind]int{}

	for month := time.January; month <= now.Month(); month++ {
		for _, account := range accounts {
			for _, kind := range domain.TransactionKinds {
				if !account.IsEligible(kind) || account.Role == domain.RoleAdmin {
					continue
				}

				for i := 0; i < 3; i++ {
					occurredAt := time.Date(now.Year(), month, 1+rnd.Intn(27), 9+rnd.Intn(9), 0, 0, 0, time.UTC)
					amount := float64(rnd.Intn(200000)) / 100

					statement := fmt.Sprintf(`INSERT INTO %s (id, employee_id, client_id, client_name, amount, quantity, sourcing_cost, occurred_at, status)
						VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`, tables[kind])

					if _, err := tx.ExecContext(ctx, statement,
						generateID(), account.ID.String(), generateID(), "Cliente Demo",
						amount, 1+rnd.Intn(5), amount*0.4, occurredAt, "completed",
					); err != nil {
						logrus.WithError(err).Fatalf("Erro ao inserir transação em %s", tables[kind])
					}
					counts[kind]++
				}
			}
		}
	}

	return counts[domain.KindSales], counts[domain.KindOrder]
}

func main() {
	withSeed := flag.Bool("seed", false, "insere dados de demonstração e imprime tokens de desenvolvimento")
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339})
	logrus.Info("Iniciando script de migração...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar configuração")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := sql.Open(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao abrir conexão")
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	createSchema(ctx, db)

	if !*withSeed {
		logrus.Info("Migração concluída sem seed")
		return
	}

	accounts := seed(ctx, db, time.Now().UTC())

	authenticator := authenticating.NewService(cfg)
	for _, account := range accounts {
		token, err := authenticator.IssueToken(account)
		if err != nil {
			logrus.WithError(err).WithField("account_id", account.ID).Error("Erro ao emitir token de desenvolvimento")
			continue
		}

		logrus.WithFields(logrus.Fields{
			"account_id": account.ID,
			"role":       account.Role,
		}).Infof("Token: %s", token)
	}

	logrus.Info("Migração concluída")
}
