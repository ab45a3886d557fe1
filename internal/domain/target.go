package domain

import "time"

// RecipientKind indica se a solicitação de meta foi feita para uma conta ou um time.
// Metas persistidas sempre apontam para uma conta.
type RecipientKind string

const (
	RecipientAccount RecipientKind = "Account"
	RecipientTeam    RecipientKind = "Team"
)

type Target struct {
	ID              string          `json:"id"`
	AssignedTo      AccountID       `json:"assignedTo"`
	AssignedToModel RecipientKind   `json:"assignedToModel"`
	TargetType      TransactionKind `json:"targetType"`
	Amount          float64         `json:"targetAmount"`
	Quantity        int             `json:"targetQty"`
	Month           int             `json:"month"`
	Year            int             `json:"year"`
	OriginalTotal   *float64        `json:"originalTotal,omitempty"`
	MemberCount     *int            `json:"membersCount,omitempty"`
	CreatedBy       AccountID       `json:"createdBy"`
	CreatedFor      AccountID       `json:"createdFor"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// Owner é a conta à qual a meta é contabilizada nos relatórios
func (t *Target) Owner() AccountID {
	if t.CreatedFor != "" {
		return t.CreatedFor
	}
	return t.AssignedTo
}

func (t *Target) Period() Period {
	return Period{Month: t.Month, Year: t.Year}
}

func (t *Target) IsDivided() bool {
	return t.OriginalTotal != nil && t.MemberCount != nil
}

// TargetFilter é combinado com AND; listas vazias não restringem
type TargetFilter struct {
	Periods         []Period
	TargetType      *TransactionKind
	AssignedTo      []AccountID
	CreatedFor      []AccountID
	AssignedToModel *RecipientKind
}

// TargetPatch representa a edição de uma meta; campos nil não são alterados
type TargetPatch struct {
	TargetType *TransactionKind `json:"targetType" validate:"omitempty,oneof=sales order"`
	Amount     *float64         `json:"targetAmount" validate:"omitempty,gte=0"`
	Quantity   *int             `json:"targetQty" validate:"omitempty,gte=0"`
	Month      *int             `json:"month" validate:"omitempty,min=1,max=12"`
	Year       *int             `json:"year" validate:"omitempty,min=2000,max=2100"`
}

func (p TargetPatch) IsEmpty() bool {
	return p.TargetType == nil && p.Amount == nil && p.Quantity == nil && p.Month == nil && p.Year == nil
}

// Apply altera a meta. Mudar o valor desfaz o vínculo com a divisão original.
func (p TargetPatch) Apply(t *Target) {
	if p.TargetType != nil {
		t.TargetType = *p.TargetType
	}
	if p.Amount != nil && *p.Amount != t.Amount {
		t.Amount = *p.Amount
		t.OriginalTotal = nil
		t.MemberCount = nil
	}
	if p.Quantity != nil {
		t.Quantity = *p.Quantity
	}
	if p.Month != nil {
		t.Month = *p.Month
	}
	if p.Year != nil {
		t.Year = *p.Year
	}
}

// DedupTargets mantém a primeira ocorrência de cada ID, na ordem de entrada
func DedupTargets(targets []*Target) []*Target {
	seen := make(map[string]struct{}, len(targets))
	unique := make([]*Target, 0, len(targets))

	for _, target := range targets {
		if target == nil {
			continue
		}
		if _, exists := seen[target.ID]; exists {
			continue
		}
		seen[target.ID] = struct{}{}
		unique = append(unique, target)
	}

	return unique
}
