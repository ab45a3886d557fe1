package reporting

import (
	"sort"

	"github.com/vfg2006/target-performance-api/internal/domain"
)

// accountSet é o filtro de contas já normalizado; vazio aceita todas
type accountSet map[domain.AccountID]struct{}

func newAccountSet(ids []domain.AccountID) accountSet {
	set := make(accountSet, len(ids))
	for _, id := range ids {
		normalized := domain.NormalizeAccountID(id.String())
		if normalized == "" {
			continue
		}
		set[normalized] = struct{}{}
	}
	return set
}

func (s accountSet) accepts(id domain.AccountID) bool {
	if len(s) == 0 {
		return true
	}
	_, ok := s[id]
	return ok
}

type matcher struct {
	kind     domain.TransactionKind
	window   domain.ResolvedPeriod
	accounts accountSet
}

// match devolve a conta normalizada da transação quando ela entra na agregação
func (m matcher) match(tx *domain.Transaction) (domain.AccountID, bool) {
	if tx == nil {
		return "", false
	}
	if tx.Kind != "" && tx.Kind != m.kind {
		return "", false
	}
	if !m.window.Contains(tx.OccurredAt) {
		return "", false
	}

	accountID := domain.NormalizeAccountID(tx.AccountID.String())
	if !m.accounts.accepts(accountID) {
		return "", false
	}
	return accountID, true
}

// AggregateTotals soma valor e quantidade por conta dentro da janela.
// Contas sem transações não aparecem no mapa.
func AggregateTotals(
	transactions []*domain.Transaction,
	kind domain.TransactionKind,
	window domain.ResolvedPeriod,
	accountIDs []domain.AccountID,
) map[domain.AccountID]domain.Totals {
	m := matcher{kind: kind, window: window, accounts: newAccountSet(accountIDs)}

	totals := make(map[domain.AccountID]domain.Totals)
	for _, tx := range transactions {
		accountID, ok := m.match(tx)
		if !ok {
			continue
		}
		totals[accountID] = totals[accountID].Add(tx.Amount, tx.Quantity)
	}

	return totals
}

// AggregateMonthly soma por (conta, mês, ano) em ordem crescente de período.
// Com byAccount falso todas as contas caem na mesma chave de cada mês.
func AggregateMonthly(
	transactions []*domain.Transaction,
	kind domain.TransactionKind,
	window domain.ResolvedPeriod,
	accountIDs []domain.AccountID,
	byAccount bool,
) []domain.MonthlyTotals {
	m := matcher{kind: kind, window: window, accounts: newAccountSet(accountIDs)}

	grouped := make(map[domain.MonthKey]domain.Totals)
	for _, tx := range transactions {
		accountID, ok := m.match(tx)
		if !ok {
			continue
		}

		key := domain.MonthKey{Period: domain.PeriodOf(tx.OccurredAt.UTC())}
		if byAccount {
			key.AccountID = accountID
		}
		grouped[key] = grouped[key].Add(tx.Amount, tx.Quantity)
	}

	result := make([]domain.MonthlyTotals, 0, len(grouped))
	for key, totals := range grouped {
		result = append(result, domain.MonthlyTotals{Key: key, Totals: totals})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Key.Before(result[j].Key)
	})

	return result
}
