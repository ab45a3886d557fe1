package domain

// Totals é a soma de valor e quantidade
type Totals struct {
	Amount   float64 `json:"amount"`
	Quantity int     `json:"quantity"`
}

func (t Totals) Add(amount float64, quantity int) Totals {
	return Totals{Amount: t.Amount + amount, Quantity: t.Quantity + quantity}
}

// MonthKey agrupa por (conta, mês, ano). AccountID vazio significa todas as contas.
type MonthKey struct {
	AccountID AccountID
	Period
}

func (k MonthKey) Before(other MonthKey) bool {
	if k.Period != other.Period {
		return k.Period.Before(other.Period)
	}
	return k.AccountID < other.AccountID
}

type MonthlyTotals struct {
	Key    MonthKey
	Totals Totals
}

type PerformanceRow struct {
	AccountID         AccountID `json:"accountId"`
	AccountName       string    `json:"accountName"`
	ActualAmount      float64   `json:"actualAmount"`
	ActualQty         int       `json:"actualQty"`
	TargetAmount      float64   `json:"targetAmount"`
	TargetQty         int       `json:"targetQty"`
	PerformanceAmount string    `json:"performanceAmount"`
	PerformanceQty    string    `json:"performanceQty"`
}

type MonthlyPerformanceRow struct {
	AccountID      AccountID `json:"accountId,omitempty"`
	AccountName    string    `json:"accountName,omitempty"`
	Month          int       `json:"month"`
	Year           int       `json:"year"`
	Name           string    `json:"name"`
	Actual         float64   `json:"actual"`
	Target         float64   `json:"target"`
	ActualQty      int       `json:"actualQty"`
	TargetQty      int       `json:"targetQty"`
	Performance    int       `json:"performance"`
	PerformanceQty int       `json:"performanceQty"`
}

type AccountsPerformanceReport struct {
	Kind   TransactionKind  `json:"kind"`
	Window ResolvedPeriod   `json:"window"`
	Rows   []PerformanceRow `json:"rows"`
}

type AccountPerformanceReport struct {
	Kind    TransactionKind `json:"kind"`
	Window  ResolvedPeriod  `json:"window"`
	Account PerformanceRow  `json:"account"`
}

type AccountMonthlyReport struct {
	Kind    TransactionKind         `json:"kind"`
	Account PerformanceRow          `json:"account"`
	Window  ResolvedPeriod          `json:"window"`
	Monthly []MonthlyPerformanceRow `json:"monthly"`
}

type TeamPerformanceReport struct {
	Kind    TransactionKind         `json:"kind"`
	Window  ResolvedPeriod          `json:"window"`
	Teams   []*Team                 `json:"teams"`
	Members []PerformanceRow        `json:"members"`
	Monthly []MonthlyPerformanceRow `json:"monthly"`
}

type MonthlyPerformanceReport struct {
	Kind    TransactionKind         `json:"kind"`
	Window  ResolvedPeriod          `json:"window"`
	Monthly []MonthlyPerformanceRow `json:"monthly"`
}
