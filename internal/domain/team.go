package domain

import "time"

type TeamID string

type Team struct {
	ID        TeamID    `json:"id"`
	Name      string    `json:"name"`
	ManagerID AccountID `json:"teamManager"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UniqueAccounts remove contas repetidas mantendo a ordem de origem
func UniqueAccounts(accounts []*Account) []*Account {
	seen := make(map[AccountID]struct{}, len(accounts))
	unique := make([]*Account, 0, len(accounts))

	for _, account := range accounts {
		if account == nil {
			continue
		}
		if _, exists := seen[account.ID]; exists {
			continue
		}
		seen[account.ID] = struct{}{}
		unique = append(unique, account)
	}

	return unique
}
