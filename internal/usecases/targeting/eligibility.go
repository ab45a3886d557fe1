package targeting

import (
	"fmt"

	"github.com/vfg2006/target-performance-api/internal/domain"
)

// Recipient é o destinatário já carregado: uma conta ou um time com seus membros
type Recipient struct {
	Kind    domain.RecipientKind
	Account *domain.Account
	Team    *domain.Team
	Members []*domain.Account
}

// ResolveEligible devolve as contas elegíveis para o tipo de meta, na ordem de origem e sem repetição
func ResolveEligible(targetType domain.TransactionKind, recipient Recipient) ([]*domain.Account, error) {
	switch recipient.Kind {
	case domain.RecipientAccount:
		if recipient.Account == nil {
			return nil, NewTargetError(ErrAccountNotFound, codeFor(ErrAccountNotFound), "destinatário sem conta")
		}
		if !recipient.Account.IsEligible(targetType) {
			return nil, NewTargetErrorWithAccount(
				ErrIneligibleRecipient,
				codeFor(ErrIneligibleRecipient),
				recipient.Account.ID,
				ineligibleDetails(recipient.Account.Permission, targetType),
			)
		}
		return []*domain.Account{recipient.Account}, nil

	case domain.RecipientTeam:
		members := domain.UniqueAccounts(recipient.Members)
		if len(members) == 0 {
			return nil, NewTargetError(ErrEmptyTeam, codeFor(ErrEmptyTeam), teamDetails(recipient.Team))
		}

		eligible := make([]*domain.Account, 0, len(members))
		for _, member := range members {
			if member.IsEligible(targetType) {
				eligible = append(eligible, member)
			}
		}

		if len(eligible) == 0 {
			return nil, NewTargetError(
				ErrNoEligibleMembers,
				codeFor(ErrNoEligibleMembers),
				fmt.Sprintf("%s, tipo %s", teamDetails(recipient.Team), targetType),
			)
		}
		return eligible, nil
	}

	return nil, NewTargetError(ErrInvalidRequest, codeFor(ErrInvalidRequest), fmt.Sprintf("tipo de destinatário desconhecido: %q", recipient.Kind))
}

func ineligibleDetails(permission domain.PermissionLevel, targetType domain.TransactionKind) string {
	if !permission.Valid() {
		return fmt.Sprintf("permissão desconhecida %q", permission)
	}
	return fmt.Sprintf("permissão %q não aceita metas de %s", permission, targetType)
}

func teamDetails(team *domain.Team) string {
	if team == nil {
		return "time"
	}
	return fmt.Sprintf("time %s", team.ID)
}
