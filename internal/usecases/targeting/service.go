package targeting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/vfg2006/target-performance-api/infrastructure/repository"
	"github.com/vfg2006/target-performance-api/internal/domain"
	"github.com/vfg2006/target-performance-api/pkg/log"
	"github.com/vfg2006/target-performance-api/pkg/metrics"
	"github.com/vfg2006/target-performance-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

type Targeter interface {
	AllocateTarget(ctx context.Context, req AllocationRequest) ([]*domain.Target, error)
	// ListTargets com filtro nil devolve as metas de todos os períodos
	ListTargets(ctx context.Context, filter *domain.PeriodFilter, targetType *domain.TransactionKind) ([]*domain.Target, error)
	ListAccountTargets(ctx context.Context, accountID domain.AccountID, filter *domain.PeriodFilter) ([]*domain.Target, error)
	ListTeamMembersTargets(ctx context.Context, managerID domain.AccountID, filter *domain.PeriodFilter) ([]*domain.Target, error)
	UpdateTarget(ctx context.Context, id string, patch domain.TargetPatch) (*domain.Target, error)
	DeleteTarget(ctx context.Context, id string) error
}

type Service struct {
	accountRepository repository.AccountRepository
	teamRepository    repository.TeamRepository
	targetRepository  repository.TargetRepository
	validate          *validator.Validate
	generateID        func() (string, error)
	now               func() time.Time
}

func NewService(
	accountRepository repository.AccountRepository,
	teamRepository repository.TeamRepository,
	targetRepository repository.TargetRepository,
) Targeter {
	return &Service{
		accountRepository: accountRepository,
		teamRepository:    teamRepository,
		targetRepository:  targetRepository,
		validate:          validator.New(),
		generateID:        utils.GenerateID,
		now:               time.Now,
	}
}

func (s *Service) AllocateTarget(ctx context.Context, req AllocationRequest) ([]*domain.Target, error) {
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"target_type":      req.TargetType,
		"target_recipient": req.Recipient.ID,
		"target_mode":      req.mode(),
	})

	if err := s.validate.Struct(req); err != nil {
		metrics.AllocationFailed("invalid_request")
		return nil, NewTargetError(ErrInvalidRequest, codeFor(ErrInvalidRequest), err.Error())
	}
	if req.Recipient.IsEmpty() {
		metrics.AllocationFailed("invalid_request")
		return nil, NewTargetError(ErrInvalidRequest, codeFor(ErrInvalidRequest), "assignedTo é obrigatório")
	}

	recipient, err := s.loadRecipient(ctx, req.RecipientKind, req.Recipient)
	if err != nil {
		metrics.AllocationFailed(failureReason(err))
		return nil, err
	}

	eligible, err := ResolveEligible(req.TargetType, recipient)
	if err != nil {
		logger.WithError(err).Warn("Solicitação de meta rejeitada")
		metrics.AllocationFailed(failureReason(err))
		return nil, err
	}

	if _, narrowed := narrowToCreatedFor(eligible, req.CreatedFor); req.CreatedFor != nil && !req.CreatedFor.IsEmpty() && !narrowed {
		logger.WithField("account_created_for", req.CreatedFor.ID).
			Warn("createdFor não está entre as contas elegíveis e foi ignorado")
	}

	targets := Allocate(req, eligible)

	for _, target := range targets {
		id, err := s.generateID()
		if err != nil {
			return nil, NewTargetError(ErrAllocationFailed, codeFor(ErrAllocationFailed), "falha ao gerar identificador da meta")
		}
		target.ID = id
	}

	inserted, err := s.targetRepository.InsertTargets(ctx, targets)
	if err != nil {
		logger.WithError(err).Error("Erro ao gravar metas")
		metrics.AllocationFailed("insert_failed")
		return nil, NewTargetError(ErrAllocationFailed, codeFor(ErrAllocationFailed), err.Error())
	}

	if len(inserted) != len(targets) {
		s.compensate(ctx, inserted)
		metrics.AllocationFailed("partial_insert")
		return nil, NewTargetError(
			ErrAllocationFailed,
			codeFor(ErrAllocationFailed),
			fmt.Sprintf("%d de %d metas gravadas", len(inserted), len(targets)),
		)
	}

	metrics.TargetsAllocated(req.TargetType.String(), req.mode(), len(inserted))
	logger.Infof("%d metas gravadas", len(inserted))

	return inserted, nil
}

// compensate remove o que foi gravado de um lote incompleto
func (s *Service) compensate(ctx context.Context, inserted []*domain.Target) {
	if len(inserted) == 0 {
		return
	}

	ids := make([]string, 0, len(inserted))
	for _, target := range inserted {
		ids = append(ids, target.ID)
	}

	if err := s.targetRepository.DeleteTargets(ctx, ids); err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao remover lote de metas incompleto")
	}
}

func (s *Service) loadRecipient(ctx context.Context, kind domain.RecipientKind, ref domain.Ref) (Recipient, error) {
	switch kind {
	case domain.RecipientAccount:
		account, err := s.accountRepository.GetAccountByID(ctx, ref.AccountID())
		if err != nil {
			return Recipient{}, NewTargetError(ErrDatabaseOperation, codeFor(ErrDatabaseOperation), err.Error())
		}
		if account == nil {
			return Recipient{}, NewTargetErrorWithAccount(ErrAccountNotFound, codeFor(ErrAccountNotFound), ref.AccountID(), "")
		}
		return Recipient{Kind: kind, Account: account}, nil

	case domain.RecipientTeam:
		teamID := domain.TeamID(ref.AccountID())
		team, err := s.teamRepository.GetTeamByID(ctx, teamID)
		if err != nil {
			return Recipient{}, NewTargetError(ErrDatabaseOperation, codeFor(ErrDatabaseOperation), err.Error())
		}
		if team == nil {
			return Recipient{}, NewTargetError(ErrTeamNotFound, codeFor(ErrTeamNotFound), fmt.Sprintf("time %s", teamID))
		}

		members, err := s.teamRepository.ListTeamMembers(ctx, team.ID)
		if err != nil {
			return Recipient{}, NewTargetError(ErrDatabaseOperation, codeFor(ErrDatabaseOperation), err.Error())
		}
		return Recipient{Kind: kind, Team: team, Members: members}, nil
	}

	return Recipient{}, NewTargetError(ErrInvalidRequest, codeFor(ErrInvalidRequest), fmt.Sprintf("tipo de destinatário desconhecido: %q", kind))
}

func (s *Service) ListTargets(ctx context.Context, filter *domain.PeriodFilter, targetType *domain.TransactionKind) ([]*domain.Target, error) {
	targets, err := s.targetRepository.ListTargets(ctx, domain.TargetFilter{
		Periods:    s.periodsFor(filter),
		TargetType: targetType,
	})
	if err != nil {
		return nil, NewTargetError(ErrDatabaseOperation, codeFor(ErrDatabaseOperation), err.Error())
	}

	return targets, nil
}

// ListAccountTargets junta as metas atribuídas à conta e as criadas para ela, sem repetição
func (s *Service) ListAccountTargets(ctx context.Context, accountID domain.AccountID, filter *domain.PeriodFilter) ([]*domain.Target, error) {
	if accountID == "" {
		return nil, NewTargetError(ErrInvalidRequest, codeFor(ErrInvalidRequest), "conta não informada")
	}

	return s.listOwnedBy(ctx, []domain.AccountID{accountID}, s.periodsFor(filter))
}

func (s *Service) ListTeamMembersTargets(ctx context.Context, managerID domain.AccountID, filter *domain.PeriodFilter) ([]*domain.Target, error) {
	teams, err := s.teamRepository.ListTeamsByManager(ctx, managerID)
	if err != nil {
		return nil, NewTargetError(ErrDatabaseOperation, codeFor(ErrDatabaseOperation), err.Error())
	}
	if len(teams) == 0 {
		return nil, NewTargetErrorWithAccount(ErrTeamNotFound, codeFor(ErrTeamNotFound), managerID, "gestor sem times")
	}

	members := make([]*domain.Account, 0)
	for _, team := range teams {
		teamMembers, err := s.teamRepository.ListTeamMembers(ctx, team.ID)
		if err != nil {
			return nil, NewTargetError(ErrDatabaseOperation, codeFor(ErrDatabaseOperation), err.Error())
		}
		members = append(members, teamMembers...)
	}

	members = domain.UniqueAccounts(members)
	if len(members) == 0 {
		return []*domain.Target{}, nil
	}

	ids := make([]domain.AccountID, 0, len(members))
	for _, member := range members {
		ids = append(ids, member.ID)
	}

	return s.listOwnedBy(ctx, ids, s.periodsFor(filter))
}

func (s *Service) listOwnedBy(ctx context.Context, ids []domain.AccountID, periods []domain.Period) ([]*domain.Target, error) {
	assigned, err := s.targetRepository.ListTargets(ctx, domain.TargetFilter{Periods: periods, AssignedTo: ids})
	if err != nil {
		return nil, NewTargetError(ErrDatabaseOperation, codeFor(ErrDatabaseOperation), err.Error())
	}

	createdFor, err := s.targetRepository.ListTargets(ctx, domain.TargetFilter{Periods: periods, CreatedFor: ids})
	if err != nil {
		return nil, NewTargetError(ErrDatabaseOperation, codeFor(ErrDatabaseOperation), err.Error())
	}

	return domain.DedupTargets(append(assigned, createdFor...)), nil
}

func (s *Service) UpdateTarget(ctx context.Context, id string, patch domain.TargetPatch) (*domain.Target, error) {
	if id == "" || patch.IsEmpty() {
		return nil, NewTargetError(ErrInvalidRequest, codeFor(ErrInvalidRequest), "nada para alterar")
	}
	if err := s.validate.Struct(patch); err != nil {
		return nil, NewTargetError(ErrInvalidRequest, codeFor(ErrInvalidRequest), err.Error())
	}

	target, err := s.targetRepository.GetTargetByID(ctx, id)
	if err != nil {
		return nil, NewTargetError(ErrDatabaseOperation, codeFor(ErrDatabaseOperation), err.Error())
	}
	if target == nil {
		return nil, NewTargetError(ErrTargetNotFound, codeFor(ErrTargetNotFound), fmt.Sprintf("meta %s", id))
	}

	wasDivided := target.IsDivided()
	patch.Apply(target)

	if err := s.targetRepository.UpdateTarget(ctx, target); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewTargetError(ErrTargetNotFound, codeFor(ErrTargetNotFound), fmt.Sprintf("meta %s", id))
		}
		return nil, NewTargetError(ErrDatabaseOperation, codeFor(ErrDatabaseOperation), err.Error())
	}

	if wasDivided && !target.IsDivided() {
		log.ForContext(ctx).WithFields(log.Fields{
			"target_id":  target.ID,
			"account_id": target.AssignedTo,
		}).Info("Meta desvinculada da divisão do time")
	}

	return target, nil
}

func (s *Service) DeleteTarget(ctx context.Context, id string) error {
	if id == "" {
		return NewTargetError(ErrInvalidRequest, codeFor(ErrInvalidRequest), "meta não informada")
	}

	deleted, err := s.targetRepository.DeleteTarget(ctx, id)
	if err != nil {
		return NewTargetError(ErrDatabaseOperation, codeFor(ErrDatabaseOperation), err.Error())
	}
	if !deleted {
		return NewTargetError(ErrTargetNotFound, codeFor(ErrTargetNotFound), fmt.Sprintf("meta %s", id))
	}

	log.ForContext(ctx).WithField("target_id", id).Info("Meta removida")
	return nil
}

// periodsFor resolve o filtro pelo ano corrente; nil não restringe período
func (s *Service) periodsFor(filter *domain.PeriodFilter) []domain.Period {
	if filter == nil || filter.IsEmpty() {
		return nil
	}
	return domain.ResolvePeriod(*filter, domain.DefaultYear, s.now()).Periods
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, ErrIneligibleRecipient):
		return "ineligible_recipient"
	case errors.Is(err, ErrEmptyTeam):
		return "empty_team"
	case errors.Is(err, ErrNoEligibleMembers):
		return "no_eligible_members"
	case IsNotFoundError(err):
		return "not_found"
	case errors.Is(err, ErrInvalidRequest):
		return "invalid_request"
	}
	return "internal"
}
