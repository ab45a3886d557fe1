package targeting

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/target-performance-api/infrastructure/repository"
	"github.com/vfg2006/target-performance-api/infrastructure/repository/mocks"
	"github.com/vfg2006/target-performance-api/internal/domain"
	"go.uber.org/mock/gomock"
)

type serviceMocks struct {
	accounts *mocks.MockAccountRepository
	teams    *mocks.MockTeamRepository
	targets  *mocks.MockTargetRepository
}

func newTestService(t *testing.T) (*Service, serviceMocks) {
	ctrl := gomock.NewController(t)

	m := serviceMocks{
		accounts: mocks.NewMockAccountRepository(ctrl),
		teams:    mocks.NewMockTeamRepository(ctrl),
		targets:  mocks.NewMockTargetRepository(ctrl),
	}

	sequence := 0
	service := &Service{
		accountRepository: m.accounts,
		teamRepository:    m.teams,
		targetRepository:  m.targets,
		validate:          validator.New(),
		generateID: func() (string, error) {
			sequence++
			return fmt.Sprintf("T%d", sequence), nil
		},
		now: func() time.Time { return time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC) },
	}

	return service, m
}

// insertAll simula o banco devolvendo o lote completo
func insertAll(_ context.Context, targets []*domain.Target) ([]*domain.Target, error) {
	return targets, nil
}

func teamRequest(divide bool) AllocationRequest {
	return AllocationRequest{
		RecipientKind:      domain.RecipientTeam,
		Recipient:          domain.Ref{ID: "TEAM1"},
		TargetType:         domain.KindSales,
		Amount:             1000,
		Quantity:           10,
		Month:              3,
		Year:               2024,
		DivideAmongMembers: divide,
		CreatedBy:          "ADMIN",
	}
}

func TestService_AllocateTarget(t *testing.T) {
	team := &domain.Team{ID: "TEAM1", Name: "Time 1", ManagerID: "MGR"}
	members := []*domain.Account{
		{ID: "A", Permission: domain.PermissionSales},
		{ID: "B", Permission: domain.PermissionOrders},
		{ID: "C", Permission: domain.PermissionSalesAndOrders},
		{ID: "D", Permission: domain.PermissionOrders},
	}

	tests := []struct {
		name        string
		req         AllocationRequest
		setup       func(m serviceMocks)
		expectedErr error
		validate    func(t *testing.T, targets []*domain.Target)
	}{
		{
			name: "Time com dois membros elegíveis sem divisão grava duas metas de 1000",
			req:  teamRequest(false),
			setup: func(m serviceMocks) {
				m.teams.EXPECT().GetTeamByID(gomock.Any(), domain.TeamID("TEAM1")).Return(team, nil)
				m.teams.EXPECT().ListTeamMembers(gomock.Any(), domain.TeamID("TEAM1")).Return(members, nil)
				m.targets.EXPECT().InsertTargets(gomock.Any(), gomock.Len(2)).DoAndReturn(insertAll)
			},
			validate: func(t *testing.T, targets []*domain.Target) {
				require.Len(t, targets, 2)
				assert.Equal(t, domain.AccountID("A"), targets[0].AssignedTo)
				assert.Equal(t, domain.AccountID("C"), targets[1].AssignedTo)
				for _, target := range targets {
					assert.Equal(t, 1000.0, target.Amount)
					assert.Nil(t, target.OriginalTotal)
					assert.NotEmpty(t, target.ID)
				}
			},
		},
		{
			name: "Time com dois membros elegíveis com divisão grava duas metas de 500",
			req:  teamRequest(true),
			setup: func(m serviceMocks) {
				m.teams.EXPECT().GetTeamByID(gomock.Any(), domain.TeamID("TEAM1")).Return(team, nil)
				m.teams.EXPECT().ListTeamMembers(gomock.Any(), domain.TeamID("TEAM1")).Return(members, nil)
				m.targets.EXPECT().InsertTargets(gomock.Any(), gomock.Len(2)).DoAndReturn(insertAll)
			},
			validate: func(t *testing.T, targets []*domain.Target) {
				require.Len(t, targets, 2)
				for _, target := range targets {
					assert.Equal(t, 500.0, target.Amount)
					assert.Equal(t, 10, target.Quantity)
					require.NotNil(t, target.OriginalTotal)
					assert.Equal(t, 1000.0, *target.OriginalTotal)
					require.NotNil(t, target.MemberCount)
					assert.Equal(t, 2, *target.MemberCount)
				}
			},
		},
		{
			name: "Time sem membros elegíveis não grava nada",
			req: func() AllocationRequest {
				req := teamRequest(false)
				req.TargetType = domain.KindSales
				return req
			}(),
			setup: func(m serviceMocks) {
				m.teams.EXPECT().GetTeamByID(gomock.Any(), domain.TeamID("TEAM1")).Return(team, nil)
				m.teams.EXPECT().ListTeamMembers(gomock.Any(), domain.TeamID("TEAM1")).
					Return([]*domain.Account{members[1], members[3]}, nil)
			},
			expectedErr: ErrNoEligibleMembers,
		},
		{
			name: "Time vazio não grava nada",
			req:  teamRequest(true),
			setup: func(m serviceMocks) {
				m.teams.EXPECT().GetTeamByID(gomock.Any(), domain.TeamID("TEAM1")).Return(team, nil)
				m.teams.EXPECT().ListTeamMembers(gomock.Any(), domain.TeamID("TEAM1")).Return([]*domain.Account{}, nil)
			},
			expectedErr: ErrEmptyTeam,
		},
		{
			name: "Time inexistente",
			req:  teamRequest(false),
			setup: func(m serviceMocks) {
				m.teams.EXPECT().GetTeamByID(gomock.Any(), domain.TeamID("TEAM1")).Return(nil, nil)
			},
			expectedErr: ErrTeamNotFound,
		},
		{
			name: "Conta sem permissão para o tipo é rejeitada",
			req: AllocationRequest{
				RecipientKind: domain.RecipientAccount,
				Recipient:     domain.Ref{ID: "B"},
				TargetType:    domain.KindSales,
				Amount:        100,
				Month:         3,
				Year:          2024,
			},
			setup: func(m serviceMocks) {
				m.accounts.EXPECT().GetAccountByID(gomock.Any(), domain.AccountID("B")).Return(members[1], nil)
			},
			expectedErr: ErrIneligibleRecipient,
		},
		{
			name: "Conta inexistente",
			req: AllocationRequest{
				RecipientKind: domain.RecipientAccount,
				Recipient:     domain.Ref{ID: "X"},
				TargetType:    domain.KindSales,
				Month:         3,
				Year:          2024,
			},
			setup: func(m serviceMocks) {
				m.accounts.EXPECT().GetAccountByID(gomock.Any(), domain.AccountID("X")).Return(nil, nil)
			},
			expectedErr: ErrAccountNotFound,
		},
		{
			name: "Conta única com divisão registra total original e um membro",
			req: AllocationRequest{
				RecipientKind:      domain.RecipientAccount,
				Recipient:          domain.Ref{ID: "C"},
				TargetType:         domain.KindOrder,
				Amount:             300,
				Quantity:           3,
				Month:              5,
				Year:               2024,
				DivideAmongMembers: true,
			},
			setup: func(m serviceMocks) {
				m.accounts.EXPECT().GetAccountByID(gomock.Any(), domain.AccountID("C")).Return(members[2], nil)
				m.targets.EXPECT().InsertTargets(gomock.Any(), gomock.Len(1)).DoAndReturn(insertAll)
			},
			validate: func(t *testing.T, targets []*domain.Target) {
				require.Len(t, targets, 1)
				assert.Equal(t, 300.0, targets[0].Amount)
				assert.Equal(t, domain.TransactionKind("order"), targets[0].TargetType)
				require.True(t, targets[0].IsDivided())
				assert.Equal(t, 300.0, *targets[0].OriginalTotal)
				assert.Equal(t, 1, *targets[0].MemberCount)
			},
		},
		{
			name: "Mês inválido é rejeitado antes de consultar o banco",
			req: func() AllocationRequest {
				req := teamRequest(false)
				req.Month = 13
				return req
			}(),
			setup:       func(m serviceMocks) {},
			expectedErr: ErrInvalidRequest,
		},
		{
			name: "Destinatário vazio é rejeitado",
			req: func() AllocationRequest {
				req := teamRequest(false)
				req.Recipient = domain.Ref{}
				return req
			}(),
			setup:       func(m serviceMocks) {},
			expectedErr: ErrInvalidRequest,
		},
		{
			name: "Lote incompleto é removido e a alocação falha",
			req:  teamRequest(false),
			setup: func(m serviceMocks) {
				m.teams.EXPECT().GetTeamByID(gomock.Any(), domain.TeamID("TEAM1")).Return(team, nil)
				m.teams.EXPECT().ListTeamMembers(gomock.Any(), domain.TeamID("TEAM1")).Return(members, nil)
				m.targets.EXPECT().InsertTargets(gomock.Any(), gomock.Len(2)).
					DoAndReturn(func(_ context.Context, targets []*domain.Target) ([]*domain.Target, error) {
						return targets[:1], nil
					})
				m.targets.EXPECT().DeleteTargets(gomock.Any(), []string{"T1"}).Return(nil)
			},
			expectedErr: ErrAllocationFailed,
		},
		{
			name: "Erro ao gravar o lote",
			req:  teamRequest(false),
			setup: func(m serviceMocks) {
				m.teams.EXPECT().GetTeamByID(gomock.Any(), domain.TeamID("TEAM1")).Return(team, nil)
				m.teams.EXPECT().ListTeamMembers(gomock.Any(), domain.TeamID("TEAM1")).Return(members, nil)
				m.targets.EXPECT().InsertTargets(gomock.Any(), gomock.Any()).Return(nil, errors.New("conexão perdida"))
			},
			expectedErr: ErrAllocationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newTestService(t)
			tt.setup(m)

			targets, err := service.AllocateTarget(context.Background(), tt.req)

			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, targets)
				return
			}

			require.NoError(t, err)
			tt.validate(t, targets)
		})
	}
}

func TestService_ListAccountTargets(t *testing.T) {
	service, m := newTestService(t)

	direct := &domain.Target{ID: "T1", AssignedTo: "A", CreatedFor: "A"}
	createdFor := &domain.Target{ID: "T2", AssignedTo: "TEAM1", CreatedFor: "A"}

	m.targets.EXPECT().
		ListTargets(gomock.Any(), domain.TargetFilter{AssignedTo: []domain.AccountID{"A"}}).
		Return([]*domain.Target{direct}, nil)
	m.targets.EXPECT().
		ListTargets(gomock.Any(), domain.TargetFilter{CreatedFor: []domain.AccountID{"A"}}).
		Return([]*domain.Target{direct, createdFor}, nil)

	targets, err := service.ListAccountTargets(context.Background(), "A", nil)

	require.NoError(t, err)
	require.Len(t, targets, 2)
	assert.Equal(t, "T1", targets[0].ID)
	assert.Equal(t, "T2", targets[1].ID)
}

func TestService_ListTargets_ComFiltroDeMes(t *testing.T) {
	service, m := newTestService(t)
	month, year := 3, 2024
	kind := domain.KindSales

	m.targets.EXPECT().
		ListTargets(gomock.Any(), domain.TargetFilter{
			Periods:    []domain.Period{{Month: 3, Year: 2024}},
			TargetType: &kind,
		}).
		Return([]*domain.Target{}, nil)

	targets, err := service.ListTargets(context.Background(), &domain.PeriodFilter{Month: &month, Year: &year}, &kind)

	require.NoError(t, err)
	assert.Empty(t, targets)
}

func TestService_ListTeamMembersTargets(t *testing.T) {
	t.Run("Gestor sem times", func(t *testing.T) {
		service, m := newTestService(t)
		m.teams.EXPECT().ListTeamsByManager(gomock.Any(), domain.AccountID("MGR")).Return([]*domain.Team{}, nil)

		_, err := service.ListTeamMembersTargets(context.Background(), "MGR", nil)

		assert.ErrorIs(t, err, ErrTeamNotFound)
	})

	t.Run("Membros em dois times são consultados uma vez", func(t *testing.T) {
		service, m := newTestService(t)
		a := &domain.Account{ID: "A"}
		b := &domain.Account{ID: "B"}

		m.teams.EXPECT().ListTeamsByManager(gomock.Any(), domain.AccountID("MGR")).
			Return([]*domain.Team{{ID: "T1"}, {ID: "T2"}}, nil)
		m.teams.EXPECT().ListTeamMembers(gomock.Any(), domain.TeamID("T1")).Return([]*domain.Account{a, b}, nil)
		m.teams.EXPECT().ListTeamMembers(gomock.Any(), domain.TeamID("T2")).Return([]*domain.Account{b}, nil)
		m.targets.EXPECT().
			ListTargets(gomock.Any(), domain.TargetFilter{AssignedTo: []domain.AccountID{"A", "B"}}).
			Return([]*domain.Target{{ID: "X"}}, nil)
		m.targets.EXPECT().
			ListTargets(gomock.Any(), domain.TargetFilter{CreatedFor: []domain.AccountID{"A", "B"}}).
			Return([]*domain.Target{{ID: "X"}, {ID: "Y"}}, nil)

		targets, err := service.ListTeamMembersTargets(context.Background(), "MGR", nil)

		require.NoError(t, err)
		assert.Len(t, targets, 2)
	})
}

func TestService_UpdateTarget(t *testing.T) {
	amount := 700.0
	total := 1000.0
	count := 2

	tests := []struct {
		name        string
		patch       domain.TargetPatch
		setup       func(m serviceMocks)
		expectedErr error
	}{
		{
			name:  "Atualiza valor e desfaz divisão",
			patch: domain.TargetPatch{Amount: &amount},
			setup: func(m serviceMocks) {
				m.targets.EXPECT().GetTargetByID(gomock.Any(), "T1").
					Return(&domain.Target{ID: "T1", Amount: 500, OriginalTotal: &total, MemberCount: &count}, nil)
				m.targets.EXPECT().UpdateTarget(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, target *domain.Target) error {
						assert.Equal(t, 700.0, target.Amount)
						assert.Nil(t, target.OriginalTotal)
						return nil
					})
			},
		},
		{
			name:        "Alteração vazia é inválida",
			patch:       domain.TargetPatch{},
			setup:       func(m serviceMocks) {},
			expectedErr: ErrInvalidRequest,
		},
		{
			name:  "Meta inexistente",
			patch: domain.TargetPatch{Amount: &amount},
			setup: func(m serviceMocks) {
				m.targets.EXPECT().GetTargetByID(gomock.Any(), "T1").Return(nil, nil)
			},
			expectedErr: ErrTargetNotFound,
		},
		{
			name:  "Meta removida durante a edição",
			patch: domain.TargetPatch{Amount: &amount},
			setup: func(m serviceMocks) {
				m.targets.EXPECT().GetTargetByID(gomock.Any(), "T1").Return(&domain.Target{ID: "T1"}, nil)
				m.targets.EXPECT().UpdateTarget(gomock.Any(), gomock.Any()).Return(repository.ErrNotFound)
			},
			expectedErr: ErrTargetNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newTestService(t)
			tt.setup(m)

			target, err := service.UpdateTarget(context.Background(), "T1", tt.patch)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 700.0, target.Amount)
		})
	}
}

func TestService_UpdateTarget_RegistraDesvinculoDaDivisao(t *testing.T) {
	total := 1000.0
	count := 2
	amount := 700.0
	quantity := 3

	tests := []struct {
		name         string
		patch        domain.TargetPatch
		expectLogged bool
	}{
		{
			name:         "Novo valor desvincula e registra",
			patch:        domain.TargetPatch{Amount: &amount},
			expectLogged: true,
		},
		{
			name:         "Nova quantidade mantém a divisão",
			patch:        domain.TargetPatch{Quantity: &quantity},
			expectLogged: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hook := logtest.NewGlobal()
			defer hook.Reset()

			service, m := newTestService(t)
			m.targets.EXPECT().GetTargetByID(gomock.Any(), "T1").
				Return(&domain.Target{ID: "T1", AssignedTo: "A", Amount: 500, OriginalTotal: &total, MemberCount: &count}, nil)
			m.targets.EXPECT().UpdateTarget(gomock.Any(), gomock.Any()).Return(nil)

			target, err := service.UpdateTarget(context.Background(), "T1", tt.patch)
			require.NoError(t, err)
			assert.Equal(t, !tt.expectLogged, target.IsDivided())

			var logged bool
			for _, entry := range hook.AllEntries() {
				if entry.Message == "Meta desvinculada da divisão do time" {
					logged = true
					assert.Equal(t, "T1", entry.Data["target_id"])
					assert.Equal(t, domain.AccountID("A"), entry.Data["account_id"])
				}
			}
			assert.Equal(t, tt.expectLogged, logged)
		})
	}
}

func TestService_DeleteTarget(t *testing.T) {
	service, m := newTestService(t)

	m.targets.EXPECT().DeleteTarget(gomock.Any(), "T1").Return(true, nil)
	m.targets.EXPECT().DeleteTarget(gomock.Any(), "T2").Return(false, nil)

	assert.NoError(t, service.DeleteTarget(context.Background(), "T1"))
	assert.ErrorIs(t, service.DeleteTarget(context.Background(), "T2"), ErrTargetNotFound)
}
