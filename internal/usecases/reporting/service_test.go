package reporting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/target-performance-api/infrastructure/repository/mocks"
	"github.com/vfg2006/target-performance-api/internal/domain"
	"go.uber.org/mock/gomock"
)

type serviceMocks struct {
	accounts     *mocks.MockAccountRepository
	teams        *mocks.MockTeamRepository
	transactions *mocks.MockTransactionRepository
	targets      *mocks.MockTargetRepository
}

func newTestService(t *testing.T) (*Service, serviceMocks) {
	ctrl := gomock.NewController(t)

	m := serviceMocks{
		accounts:     mocks.NewMockAccountRepository(ctrl),
		teams:        mocks.NewMockTeamRepository(ctrl),
		transactions: mocks.NewMockTransactionRepository(ctrl),
		targets:      mocks.NewMockTargetRepository(ctrl),
	}

	service := &Service{
		accountRepository:     m.accounts,
		teamRepository:        m.teams,
		transactionRepository: m.transactions,
		targetRepository:      m.targets,
		queryTimeout:          time.Second,
		now:                   func() time.Time { return time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC) },
	}

	return service, m
}

func TestService_AccountsPerformance(t *testing.T) {
	service, m := newTestService(t)

	a := &domain.Account{ID: "A", Name: "Ana", Permission: domain.PermissionSales}
	b := &domain.Account{ID: "B", Name: "Bruno", Permission: domain.PermissionAll}
	c := &domain.Account{ID: "C", Name: "Carla", Permission: domain.PermissionSalesAndOrders}

	m.accounts.EXPECT().
		ListAccountsByPermission(gomock.Any(), domain.EligiblePermissions(domain.KindSales)).
		Return([]*domain.Account{a, b, c}, nil)
	m.transactions.EXPECT().
		ListTransactions(gomock.Any(), domain.KindSales, gomock.Any(), gomock.Nil()).
		Return([]*domain.Transaction{
			{AccountID: "A", Kind: domain.KindSales, Amount: 500, Quantity: 5, OccurredAt: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)},
		}, nil)
	m.targets.EXPECT().
		ListTargets(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter domain.TargetFilter) ([]*domain.Target, error) {
			assert.Len(t, filter.Periods, 12, "padrão é o ano corrente")
			require.NotNil(t, filter.TargetType)
			assert.Equal(t, domain.KindSales, *filter.TargetType)
			return []*domain.Target{
				{ID: "T1", CreatedFor: "B", Amount: 1000, Month: 3, Year: 2024},
			}, nil
		})

	report, err := service.AccountsPerformance(context.Background(), domain.KindSales, domain.PeriodFilter{})

	require.NoError(t, err)
	assert.Equal(t, domain.KindSales, report.Kind)
	require.Len(t, report.Rows, 2, "Carla não tem meta nem realizado")
	assert.Equal(t, domain.AccountID("A"), report.Rows[0].AccountID)
	assert.Equal(t, "0%", report.Rows[0].PerformanceAmount)
	assert.Equal(t, domain.AccountID("B"), report.Rows[1].AccountID)
	assert.Equal(t, 1000.0, report.Rows[1].TargetAmount)
}

func TestService_AccountsPerformance_ErroNoBanco(t *testing.T) {
	service, m := newTestService(t)

	m.accounts.EXPECT().ListAccountsByPermission(gomock.Any(), gomock.Any()).Return(nil, errors.New("conexão recusada"))
	m.transactions.EXPECT().ListTransactions(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	m.targets.EXPECT().ListTargets(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	report, err := service.AccountsPerformance(context.Background(), domain.KindOrder, domain.PeriodFilter{})

	assert.Nil(t, report)
	assert.ErrorIs(t, err, ErrFetchData)
}

func TestService_AccountPerformance(t *testing.T) {
	t.Run("Conta inexistente", func(t *testing.T) {
		service, m := newTestService(t)
		m.accounts.EXPECT().GetAccountByID(gomock.Any(), domain.AccountID("X")).Return(nil, nil)

		_, err := service.AccountPerformance(context.Background(), domain.KindSales, "X", domain.PeriodFilter{})

		assert.ErrorIs(t, err, ErrAccountNotFound)
	})

	t.Run("Metas pelos dois caminhos contam uma vez", func(t *testing.T) {
		service, m := newTestService(t)
		a := &domain.Account{ID: "A", Name: "Ana", Permission: domain.PermissionSales}
		direct := &domain.Target{ID: "T1", AssignedTo: "A", CreatedFor: "A", Amount: 400, Month: 3, Year: 2024}

		m.accounts.EXPECT().GetAccountByID(gomock.Any(), domain.AccountID("A")).Return(a, nil)
		m.transactions.EXPECT().
			ListTransactions(gomock.Any(), domain.KindSales, gomock.Any(), []domain.AccountID{"A"}).
			Return([]*domain.Transaction{
				{AccountID: "A", Kind: domain.KindSales, Amount: 100, OccurredAt: time.Date(2024, 3, 31, 22, 0, 0, 0, time.UTC)},
			}, nil)
		m.targets.EXPECT().
			ListTargets(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter domain.TargetFilter) ([]*domain.Target, error) {
				assert.Equal(t, []domain.Period{{Month: 3, Year: 2024}}, filter.Periods, "padrão é o mês corrente")
				return []*domain.Target{direct}, nil
			}).
			Times(2)

		report, err := service.AccountPerformance(context.Background(), domain.KindSales, "A", domain.PeriodFilter{})

		require.NoError(t, err)
		assert.Equal(t, 400.0, report.Account.TargetAmount)
		assert.Equal(t, 100.0, report.Account.ActualAmount)
		assert.Equal(t, "25.00%", report.Account.PerformanceAmount)
	})
}

func TestService_AccountMonthlyPerformance(t *testing.T) {
	service, m := newTestService(t)
	a := &domain.Account{ID: "A", Name: "Ana", Permission: domain.PermissionOrders}
	filter := domain.PeriodFilter{StartMonth: intPtr(1), StartYear: intPtr(2024), EndMonth: intPtr(2), EndYear: intPtr(2024)}

	m.accounts.EXPECT().GetAccountByID(gomock.Any(), domain.AccountID("A")).Return(a, nil)
	m.transactions.EXPECT().
		ListTransactions(gomock.Any(), domain.KindOrder, gomock.Any(), gomock.Any()).
		Return([]*domain.Transaction{
			{AccountID: "A", Kind: domain.KindOrder, Amount: 50, Quantity: 1, OccurredAt: time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC)},
		}, nil)
	m.targets.EXPECT().
		ListTargets(gomock.Any(), gomock.Any()).
		Return([]*domain.Target{{ID: "T1", CreatedFor: "A", Amount: 100, Quantity: 2, Month: 2, Year: 2024}}, nil).
		Times(2)

	report, err := service.AccountMonthlyPerformance(context.Background(), domain.KindOrder, "A", filter)

	require.NoError(t, err)
	require.Len(t, report.Monthly, 2)
	assert.Equal(t, "January", report.Monthly[0].Name)
	assert.Equal(t, 0, report.Monthly[0].Performance)
	assert.Equal(t, 50, report.Monthly[1].Performance)
	assert.Equal(t, "50.00%", report.Account.PerformanceAmount)
}

func TestService_TeamPerformance(t *testing.T) {
	t.Run("Gestor sem times", func(t *testing.T) {
		service, m := newTestService(t)
		m.teams.EXPECT().ListTeamsByManager(gomock.Any(), domain.AccountID("MGR")).Return(nil, nil)

		_, err := service.TeamPerformance(context.Background(), domain.KindSales, "MGR", domain.PeriodFilter{})

		assert.ErrorIs(t, err, ErrTeamNotFound)
	})

	t.Run("Apenas membros elegíveis entram no relatório", func(t *testing.T) {
		service, m := newTestService(t)
		a := &domain.Account{ID: "A", Name: "Ana", Permission: domain.PermissionSales}
		b := &domain.Account{ID: "B", Name: "Bruno", Permission: domain.PermissionOrders}
		c := &domain.Account{ID: "C", Name: "Carla", Permission: domain.PermissionAll}
		total := 1000.0
		members := 2

		m.teams.EXPECT().ListTeamsByManager(gomock.Any(), domain.AccountID("MGR")).Return([]*domain.Team{{ID: "T1"}}, nil)
		m.teams.EXPECT().ListTeamMembers(gomock.Any(), domain.TeamID("T1")).Return([]*domain.Account{a, b, c}, nil)
		m.transactions.EXPECT().
			ListTransactions(gomock.Any(), domain.KindSales, gomock.Any(), []domain.AccountID{"A", "C"}).
			Return([]*domain.Transaction{
				{AccountID: "A", Kind: domain.KindSales, Amount: 300, OccurredAt: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
			}, nil)
		m.targets.EXPECT().
			ListTargets(gomock.Any(), gomock.Any()).
			Return([]*domain.Target{
				{ID: "X1", CreatedFor: "A", Amount: 500, Month: 3, Year: 2024, OriginalTotal: &total, MemberCount: &members},
				{ID: "X2", CreatedFor: "C", Amount: 500, Month: 3, Year: 2024, OriginalTotal: &total, MemberCount: &members},
			}, nil).
			Times(2)

		report, err := service.TeamPerformance(context.Background(), domain.KindSales, "MGR", domain.PeriodFilter{})

		require.NoError(t, err)
		require.Len(t, report.Members, 2)
		assert.Equal(t, "60.00%", report.Members[0].PerformanceAmount)
		assert.Equal(t, "0.00%", report.Members[1].PerformanceAmount)
		require.Len(t, report.Monthly, 12)
		assert.Equal(t, 1000.0, report.Monthly[2].Target)
		assert.Equal(t, 30, report.Monthly[2].Performance)
	})
}

func TestService_MonthlyPerformance_IntervaloInvertido(t *testing.T) {
	service, m := newTestService(t)
	filter := domain.PeriodFilter{StartMonth: intPtr(5), StartYear: intPtr(2024), EndMonth: intPtr(2), EndYear: intPtr(2024)}

	m.transactions.EXPECT().ListTransactions(gomock.Any(), domain.KindSales, gomock.Any(), gomock.Nil()).Return([]*domain.Transaction{}, nil)
	m.targets.EXPECT().
		ListTargets(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter domain.TargetFilter) ([]*domain.Target, error) {
			assert.NotNil(t, filter.Periods)
			assert.Empty(t, filter.Periods)
			return []*domain.Target{}, nil
		})

	report, err := service.MonthlyPerformance(context.Background(), domain.KindSales, filter)

	require.NoError(t, err)
	assert.Empty(t, report.Monthly)
}

func TestService_TipoInvalido(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.MonthlyPerformance(context.Background(), domain.TransactionKind("refund"), domain.PeriodFilter{})

	assert.ErrorIs(t, err, ErrInvalidKind)
}
