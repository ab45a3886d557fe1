package domain

import "time"

type PerformanceRankingItem struct {
	ID               int64           `json:"id"`
	AccountID        AccountID       `json:"accountId"`
	AccountName      string          `json:"accountName"`
	Kind             TransactionKind `json:"kind"`
	Month            int             `json:"month"`
	Year             int             `json:"year"`
	ActualAmount     float64         `json:"actualAmount"`
	TargetAmount     float64         `json:"targetAmount"`
	Performance      float64         `json:"performance"`
	Position         int             `json:"position"`
	PositionChange   int             `json:"positionChange"`
	PreviousPosition int             `json:"previousPosition"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

type PerformanceRankingResponse struct {
	Kind       TransactionKind          `json:"kind"`
	Period     Period                   `json:"period"`
	Ranking    []PerformanceRankingItem `json:"ranking"`
	LastUpdate time.Time                `json:"lastUpdate"`
}
