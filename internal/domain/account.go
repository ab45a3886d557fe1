package domain

import (
	"strings"
	"time"
)

// AccountID é o identificador canônico de uma conta (funcionário)
type AccountID string

func (id AccountID) String() string {
	return string(id)
}

// NormalizeAccountID remove espaços e devolve o identificador no formato comparável
func NormalizeAccountID(raw string) AccountID {
	return AccountID(strings.TrimSpace(raw))
}

type PermissionLevel string

const (
	PermissionSales          PermissionLevel = "Sales"
	PermissionOrders         PermissionLevel = "Orders"
	PermissionSalesAndOrders PermissionLevel = "Sales & Orders"
	PermissionAll            PermissionLevel = "All Permissions"
)

// eligibilityTable define quais níveis de permissão podem receber metas de cada tipo
var eligibilityTable = map[TransactionKind]map[PermissionLevel]bool{
	KindSales: {
		PermissionSales:          true,
		PermissionSalesAndOrders: true,
		PermissionAll:            true,
	},
	KindOrder: {
		PermissionOrders:         true,
		PermissionSalesAndOrders: true,
		PermissionAll:            true,
	},
}

// CanHandle indica se o nível de permissão é elegível para o tipo de transação
func (p PermissionLevel) CanHandle(kind TransactionKind) bool {
	levels, ok := eligibilityTable[kind]
	if !ok {
		return false
	}
	return levels[p]
}

func (p PermissionLevel) Valid() bool {
	switch p {
	case PermissionSales, PermissionOrders, PermissionSalesAndOrders, PermissionAll:
		return true
	}
	return false
}

// EligiblePermissions retorna os níveis aceitos para o tipo, em ordem fixa
func EligiblePermissions(kind TransactionKind) []PermissionLevel {
	ordered := []PermissionLevel{PermissionSales, PermissionOrders, PermissionSalesAndOrders, PermissionAll}

	levels := make([]PermissionLevel, 0, len(ordered))
	for _, level := range ordered {
		if level.CanHandle(kind) {
			levels = append(levels, level)
		}
	}
	return levels
}

type Role string

const (
	RoleAdmin       Role = "Admin"
	RoleEmployee    Role = "Employee"
	RoleTeamManager Role = "Team Manager"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleEmployee, RoleTeamManager:
		return true
	}
	return false
}

type Account struct {
	ID         AccountID       `json:"id"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Permission PermissionLevel `json:"permissions"`
	Role       Role            `json:"role"`
	TeamID     *TeamID         `json:"teamId,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// IsEligible indica se a conta pode receber metas do tipo informado
func (a *Account) IsEligible(kind TransactionKind) bool {
	if a == nil {
		return false
	}
	return a.Permission.CanHandle(kind)
}
