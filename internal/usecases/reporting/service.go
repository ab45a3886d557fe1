package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/vfg2006/target-performance-api/infrastructure/repository"
	"github.com/vfg2006/target-performance-api/internal/config"
	"github.com/vfg2006/target-performance-api/internal/domain"
	"github.com/vfg2006/target-performance-api/pkg/apiErrors"
	"github.com/vfg2006/target-performance-api/pkg/log"
	"github.com/vfg2006/target-performance-api/pkg/metrics"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

// Reporter gera os relatórios de desempenho; vendas e pedidos seguem o mesmo caminho
type Reporter interface {
	AccountsPerformance(ctx context.Context, kind domain.TransactionKind, filter domain.PeriodFilter) (*domain.AccountsPerformanceReport, error)
	AccountPerformance(ctx context.Context, kind domain.TransactionKind, accountID domain.AccountID, filter domain.PeriodFilter) (*domain.AccountPerformanceReport, error)
	AccountMonthlyPerformance(ctx context.Context, kind domain.TransactionKind, accountID domain.AccountID, filter domain.PeriodFilter) (*domain.AccountMonthlyReport, error)
	TeamPerformance(ctx context.Context, kind domain.TransactionKind, managerID domain.AccountID, filter domain.PeriodFilter) (*domain.TeamPerformanceReport, error)
	MonthlyPerformance(ctx context.Context, kind domain.TransactionKind, filter domain.PeriodFilter) (*domain.MonthlyPerformanceReport, error)
}

type Service struct {
	accountRepository     repository.AccountRepository
	teamRepository        repository.TeamRepository
	transactionRepository repository.TransactionRepository
	targetRepository      repository.TargetRepository
	queryTimeout          time.Duration
	now                   func() time.Time
}

func NewService(
	accountRepository repository.AccountRepository,
	teamRepository repository.TeamRepository,
	transactionRepository repository.TransactionRepository,
	targetRepository repository.TargetRepository,
	cfg *config.Config,
) Reporter {
	return &Service{
		accountRepository:     accountRepository,
		teamRepository:        teamRepository,
		transactionRepository: transactionRepository,
		targetRepository:      targetRepository,
		queryTimeout:          cfg.Report.QueryTimeout,
		now:                   time.Now,
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.queryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.queryTimeout)
}

func validKind(kind domain.TransactionKind) error {
	if _, err := domain.ParseTransactionKind(kind.String()); err != nil {
		return NewReportError(ErrInvalidKind, apiErrors.ErrInvalidFormat, err.Error())
	}
	return nil
}

// reportData é o resultado das leituras concorrentes de um relatório
type reportData struct {
	transactions []*domain.Transaction
	targets      []*domain.Target
}

// fetch busca transações e metas das contas em paralelo. ids vazio significa todas as contas.
// As metas vêm pelos dois caminhos (atribuídas e criadas para) e já saem deduplicadas.
func (s *Service) fetch(ctx context.Context, kind domain.TransactionKind, window domain.ResolvedPeriod, ids []domain.AccountID) (*reportData, error) {
	var (
		transactions []*domain.Transaction
		assigned     []*domain.Target
		createdFor   []*domain.Target
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		result, err := s.transactionRepository.ListTransactions(gctx, kind, window, ids)
		if err != nil {
			return fmt.Errorf("transações: %w", err)
		}
		transactions = result
		return nil
	})

	if len(ids) == 0 {
		g.Go(func() error {
			result, err := s.targetRepository.ListTargets(gctx, domain.TargetFilter{Periods: window.Periods, TargetType: &kind})
			if err != nil {
				return fmt.Errorf("metas: %w", err)
			}
			assigned = result
			return nil
		})
	} else {
		g.Go(func() error {
			result, err := s.targetRepository.ListTargets(gctx, domain.TargetFilter{Periods: window.Periods, TargetType: &kind, AssignedTo: ids})
			if err != nil {
				return fmt.Errorf("metas atribuídas: %w", err)
			}
			assigned = result
			return nil
		})

		g.Go(func() error {
			result, err := s.targetRepository.ListTargets(gctx, domain.TargetFilter{Periods: window.Periods, TargetType: &kind, CreatedFor: ids})
			if err != nil {
				return fmt.Errorf("metas criadas para as contas: %w", err)
			}
			createdFor = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &reportData{
		transactions: transactions,
		targets:      domain.DedupTargets(append(assigned, createdFor...)),
	}, nil
}

func (s *Service) AccountsPerformance(ctx context.Context, kind domain.TransactionKind, filter domain.PeriodFilter) (*domain.AccountsPerformanceReport, error) {
	if err := validKind(kind); err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	window := domain.ResolvePeriod(filter, domain.DefaultYear, s.now())

	var (
		accounts []*domain.Account
		data     *reportData
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		result, err := s.accountRepository.ListAccountsByPermission(gctx, domain.EligiblePermissions(kind))
		if err != nil {
			return fmt.Errorf("contas: %w", err)
		}
		accounts = result
		return nil
	})
	g.Go(func() error {
		result, err := s.fetch(gctx, kind, window, nil)
		if err != nil {
			return err
		}
		data = result
		return nil
	})

	if err := g.Wait(); err != nil {
		log.ForContext(ctx).WithError(err).WithField("kind", kind).Error("Erro ao gerar relatório de contas")
		return nil, fetchError(ctx, err)
	}

	ids := accountIDs(accounts)
	actuals := AggregateTotals(data.transactions, kind, window, ids)

	metrics.ReportGenerated("accounts", kind.String())

	return &domain.AccountsPerformanceReport{
		Kind:   kind,
		Window: window,
		Rows:   MergeByAccount(accounts, data.targets, actuals, true),
	}, nil
}

func (s *Service) loadAccount(ctx context.Context, accountID domain.AccountID) (*domain.Account, error) {
	account, err := s.accountRepository.GetAccountByID(ctx, accountID)
	if err != nil {
		return nil, fetchError(ctx, err)
	}
	if account == nil {
		return nil, NewReportErrorWithAccount(ErrAccountNotFound, apiErrors.ErrAccountNotFound, accountID, "")
	}
	return account, nil
}

func (s *Service) AccountPerformance(ctx context.Context, kind domain.TransactionKind, accountID domain.AccountID, filter domain.PeriodFilter) (*domain.AccountPerformanceReport, error) {
	if err := validKind(kind); err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	account, err := s.loadAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	window := domain.ResolvePeriod(filter, domain.DefaultMonth, s.now())
	ids := []domain.AccountID{account.ID}

	data, err := s.fetch(ctx, kind, window, ids)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("account_id", account.ID).Error("Erro ao gerar relatório da conta")
		return nil, fetchError(ctx, err)
	}

	actuals := AggregateTotals(data.transactions, kind, window, ids)
	rows := MergeByAccount([]*domain.Account{account}, data.targets, actuals, false)

	metrics.ReportGenerated("account", kind.String())

	return &domain.AccountPerformanceReport{
		Kind:    kind,
		Window:  window,
		Account: rows[0],
	}, nil
}

func (s *Service) AccountMonthlyPerformance(ctx context.Context, kind domain.TransactionKind, accountID domain.AccountID, filter domain.PeriodFilter) (*domain.AccountMonthlyReport, error) {
	if err := validKind(kind); err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	account, err := s.loadAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	window := domain.ResolvePeriod(filter, domain.DefaultMonth, s.now())
	ids := []domain.AccountID{account.ID}

	data, err := s.fetch(ctx, kind, window, ids)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("account_id", account.ID).Error("Erro ao gerar relatório mensal da conta")
		return nil, fetchError(ctx, err)
	}

	roster := []*domain.Account{account}
	actuals := AggregateTotals(data.transactions, kind, window, ids)
	monthly := AggregateMonthly(data.transactions, kind, window, ids, true)

	metrics.ReportGenerated("account_monthly", kind.String())

	return &domain.AccountMonthlyReport{
		Kind:    kind,
		Account: MergeByAccount(roster, data.targets, actuals, false)[0],
		Window:  window,
		Monthly: MergeByAccountMonth(roster, window.Periods, data.targets, monthly),
	}, nil
}

func (s *Service) TeamPerformance(ctx context.Context, kind domain.TransactionKind, managerID domain.AccountID, filter domain.PeriodFilter) (*domain.TeamPerformanceReport, error) {
	if err := validKind(kind); err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	logger := log.ForContext(ctx).WithFields(log.Fields{"account_id": managerID, "kind": kind})

	teams, err := s.teamRepository.ListTeamsByManager(ctx, managerID)
	if err != nil {
		logger.WithError(err).Error("Erro ao buscar times do gestor")
		return nil, fetchError(ctx, err)
	}
	if len(teams) == 0 {
		return nil, NewReportErrorWithAccount(ErrTeamNotFound, apiErrors.ErrTeamNotFound, managerID, "")
	}

	members, err := s.teamMembers(ctx, teams)
	if err != nil {
		logger.WithError(err).Error("Erro ao buscar membros dos times")
		return nil, fetchError(ctx, err)
	}

	eligible := make([]*domain.Account, 0, len(members))
	for _, member := range members {
		if member.IsEligible(kind) {
			eligible = append(eligible, member)
		}
	}

	window := domain.ResolvePeriod(filter, domain.DefaultYear, s.now())
	report := &domain.TeamPerformanceReport{
		Kind:    kind,
		Window:  window,
		Teams:   teams,
		Members: []domain.PerformanceRow{},
		Monthly: MergeByMonth(window.Periods, nil, nil),
	}

	if len(eligible) == 0 {
		logger.Warn("Nenhum membro elegível para o tipo de transação")
		return report, nil
	}

	ids := accountIDs(eligible)
	data, err := s.fetch(ctx, kind, window, ids)
	if err != nil {
		logger.WithError(err).Error("Erro ao gerar relatório do time")
		return nil, fetchError(ctx, err)
	}

	actuals := AggregateTotals(data.transactions, kind, window, ids)
	monthly := AggregateMonthly(data.transactions, kind, window, ids, false)

	report.Members = MergeByAccount(eligible, data.targets, actuals, true)
	report.Monthly = MergeByMonth(window.Periods, data.targets, monthly)

	metrics.ReportGenerated("team", kind.String())

	return report, nil
}

// teamMembers busca os membros de todos os times em paralelo, sem repetição e na ordem dos times
func (s *Service) teamMembers(ctx context.Context, teams []*domain.Team) ([]*domain.Account, error) {
	byTeam := make([][]*domain.Account, len(teams))

	g, gctx := errgroup.WithContext(ctx)
	for i, team := range teams {
		i, team := i, team
		g.Go(func() error {
			members, err := s.teamRepository.ListTeamMembers(gctx, team.ID)
			if err != nil {
				return fmt.Errorf("membros do time %s: %w", team.ID, err)
			}
			byTeam[i] = members
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	all := make([]*domain.Account, 0)
	for _, members := range byTeam {
		all = append(all, members...)
	}

	return domain.UniqueAccounts(all), nil
}

func (s *Service) MonthlyPerformance(ctx context.Context, kind domain.TransactionKind, filter domain.PeriodFilter) (*domain.MonthlyPerformanceReport, error) {
	if err := validKind(kind); err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	window := domain.ResolvePeriod(filter, domain.DefaultYear, s.now())

	data, err := s.fetch(ctx, kind, window, nil)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("kind", kind).Error("Erro ao gerar relatório mensal")
		return nil, fetchError(ctx, err)
	}

	monthly := AggregateMonthly(data.transactions, kind, window, nil, false)

	metrics.ReportGenerated("monthly", kind.String())

	return &domain.MonthlyPerformanceReport{
		Kind:    kind,
		Window:  window,
		Monthly: MergeByMonth(window.Periods, data.targets, monthly),
	}, nil
}

func accountIDs(accounts []*domain.Account) []domain.AccountID {
	ids := make([]domain.AccountID, 0, len(accounts))
	for _, account := range accounts {
		if account == nil {
			continue
		}
		ids = append(ids, account.ID)
	}
	return ids
}
