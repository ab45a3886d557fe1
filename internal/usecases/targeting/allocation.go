package targeting

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/target-performance-api/internal/domain"
)

const (
	allocationModeDivided    = "divided"
	allocationModeReplicated = "replicated"
)

// AllocationRequest é a solicitação de meta para uma conta ou para um time
type AllocationRequest struct {
	RecipientKind      domain.RecipientKind   `json:"assignedToModel" validate:"required,oneof=Account Team"`
	Recipient          domain.Ref             `json:"assignedTo"`
	TargetType         domain.TransactionKind `json:"targetType" validate:"required,oneof=sales order"`
	Amount             float64                `json:"targetAmount" validate:"gte=0"`
	Quantity           int                    `json:"targetQty" validate:"gte=0"`
	Month              int                    `json:"month" validate:"required,min=1,max=12"`
	Year               int                    `json:"year" validate:"required,min=2000,max=2100"`
	DivideAmongMembers bool                   `json:"divideAmongMembers"`
	CreatedFor         *domain.Ref            `json:"createdFor,omitempty"`
	CreatedBy          domain.AccountID       `json:"-"`
}

func (r AllocationRequest) mode() string {
	if r.DivideAmongMembers {
		return allocationModeDivided
	}
	return allocationModeReplicated
}

// narrowToCreatedFor restringe à conta indicada em createdFor quando ela está entre as elegíveis.
// O segundo retorno indica se a restrição foi aplicada.
func narrowToCreatedFor(eligible []*domain.Account, createdFor *domain.Ref) ([]*domain.Account, bool) {
	if createdFor == nil || createdFor.IsEmpty() {
		return eligible, false
	}

	wanted := createdFor.AccountID()
	for _, account := range eligible {
		if account.ID == wanted {
			return []*domain.Account{account}, true
		}
	}

	return eligible, false
}

// Allocate gera um registro de meta por conta elegível.
// Na divisão, cada conta recebe round(valor/N, 2) e a quantidade é copiada sem dividir.
func Allocate(req AllocationRequest, eligible []*domain.Account) []*domain.Target {
	recipients, _ := narrowToCreatedFor(eligible, req.CreatedFor)
	if len(recipients) == 0 {
		return []*domain.Target{}
	}

	amount := req.Amount
	if req.DivideAmongMembers {
		amount = splitAmount(req.Amount, len(recipients))
	}

	targets := make([]*domain.Target, 0, len(recipients))
	for _, account := range recipients {
		target := &domain.Target{
			AssignedTo:      account.ID,
			AssignedToModel: domain.RecipientAccount,
			TargetType:      req.TargetType,
			Amount:          amount,
			Quantity:        req.Quantity,
			Month:           req.Month,
			Year:            req.Year,
			CreatedBy:       req.CreatedBy,
			CreatedFor:      account.ID,
		}

		if req.DivideAmongMembers {
			total := req.Amount
			count := len(recipients)
			target.OriginalTotal = &total
			target.MemberCount = &count
		}

		targets = append(targets, target)
	}

	return targets
}

func splitAmount(amount float64, members int) float64 {
	return decimal.NewFromFloat(amount).
		Div(decimal.NewFromInt(int64(members))).
		Round(2).
		InexactFloat64()
}
