package domain

import (
	"fmt"
	"time"
)

// TransactionKind identifica vendas e pedidos. O mesmo valor é usado como tipo de meta.
type TransactionKind string

const (
	KindSales TransactionKind = "sales"
	KindOrder TransactionKind = "order"
)

var TransactionKinds = []TransactionKind{KindSales, KindOrder}

func ParseTransactionKind(raw string) (TransactionKind, error) {
	switch TransactionKind(raw) {
	case KindSales:
		return KindSales, nil
	case KindOrder:
		return KindOrder, nil
	}
	return "", fmt.Errorf("tipo de transação inválido: %q", raw)
}

func (k TransactionKind) String() string {
	return string(k)
}

type Transaction struct {
	ID           string          `json:"id"`
	Kind         TransactionKind `json:"kind"`
	AccountID    AccountID       `json:"employeeId"`
	ClientID     AccountID       `json:"clientId"`
	ClientName   string          `json:"clientName"`
	Amount       float64         `json:"amount"`
	Quantity     int             `json:"quantity"`
	SourcingCost float64         `json:"sourcingCost"`
	OccurredAt   time.Time       `json:"date"`
	Status       string          `json:"status,omitempty"`
}
