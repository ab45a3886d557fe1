package reporting

import (
	"github.com/vfg2006/target-performance-api/internal/domain"
	"github.com/vfg2006/target-performance-api/pkg/utils"
)

// sumTargetsByAccount soma todas as metas de cada conta dona
func sumTargetsByAccount(targets []*domain.Target) map[domain.AccountID]domain.Totals {
	sums := make(map[domain.AccountID]domain.Totals)
	for _, target := range targets {
		if target == nil {
			continue
		}
		owner := domain.NormalizeAccountID(target.Owner().String())
		sums[owner] = sums[owner].Add(target.Amount, target.Quantity)
	}
	return sums
}

func performanceRow(account *domain.Account, actual, target domain.Totals) domain.PerformanceRow {
	return domain.PerformanceRow{
		AccountID:         account.ID,
		AccountName:       account.Name,
		ActualAmount:      utils.RoundWithTwoDecimalPlace(actual.Amount),
		ActualQty:         actual.Quantity,
		TargetAmount:      utils.RoundWithTwoDecimalPlace(target.Amount),
		TargetQty:         target.Quantity,
		PerformanceAmount: utils.FormatPercentage(actual.Amount, target.Amount),
		PerformanceQty:    utils.FormatPercentage(float64(actual.Quantity), float64(target.Quantity)),
	}
}

// MergeByAccount gera uma linha por conta do roster, na ordem do roster.
// Com onlyActive, contas sem meta e sem realizado ficam de fora.
func MergeByAccount(
	roster []*domain.Account,
	targets []*domain.Target,
	actuals map[domain.AccountID]domain.Totals,
	onlyActive bool,
) []domain.PerformanceRow {
	targetSums := sumTargetsByAccount(domain.DedupTargets(targets))

	rows := make([]domain.PerformanceRow, 0, len(roster))
	for _, account := range domain.UniqueAccounts(roster) {
		target := targetSums[account.ID]
		actual := actuals[account.ID]

		if onlyActive && target.Amount <= 0 && actual.Amount <= 0 {
			continue
		}

		rows = append(rows, performanceRow(account, actual, target))
	}

	return rows
}

func monthlyRow(key domain.MonthKey, accountName string, actual, target domain.Totals) domain.MonthlyPerformanceRow {
	return domain.MonthlyPerformanceRow{
		AccountID:      key.AccountID,
		AccountName:    accountName,
		Month:          key.Month,
		Year:           key.Year,
		Name:           domain.MonthName(key.Month),
		Actual:         utils.RoundWithTwoDecimalPlace(actual.Amount),
		Target:         utils.RoundWithTwoDecimalPlace(target.Amount),
		ActualQty:      actual.Quantity,
		TargetQty:      target.Quantity,
		Performance:    utils.RoundedPercentage(actual.Amount, target.Amount),
		PerformanceQty: utils.RoundedPercentage(float64(actual.Quantity), float64(target.Quantity)),
	}
}

func indexMonthly(actuals []domain.MonthlyTotals) map[domain.MonthKey]domain.Totals {
	index := make(map[domain.MonthKey]domain.Totals, len(actuals))
	for _, monthly := range actuals {
		index[monthly.Key] = index[monthly.Key].Add(monthly.Totals.Amount, monthly.Totals.Quantity)
	}
	return index
}

// MergeByAccountMonth gera uma linha por conta e período, ordenada por período e depois pela ordem do roster.
// actuals deve vir agregado por conta.
func MergeByAccountMonth(
	roster []*domain.Account,
	periods []domain.Period,
	targets []*domain.Target,
	actuals []domain.MonthlyTotals,
) []domain.MonthlyPerformanceRow {
	targetSums := make(map[domain.MonthKey]domain.Totals)
	for _, target := range domain.DedupTargets(targets) {
		key := domain.MonthKey{
			AccountID: domain.NormalizeAccountID(target.Owner().String()),
			Period:    target.Period(),
		}
		targetSums[key] = targetSums[key].Add(target.Amount, target.Quantity)
	}

	actualSums := indexMonthly(actuals)
	accounts := domain.UniqueAccounts(roster)

	rows := make([]domain.MonthlyPerformanceRow, 0, len(periods)*len(accounts))
	for _, period := range periods {
		for _, account := range accounts {
			key := domain.MonthKey{AccountID: account.ID, Period: period}
			rows = append(rows, monthlyRow(key, account.Name, actualSums[key], targetSums[key]))
		}
	}

	return rows
}

// MergeByMonth soma metas e realizado de todas as contas em cada período.
// As metas divididas de um time voltam a compor o total do time aqui.
func MergeByMonth(
	periods []domain.Period,
	targets []*domain.Target,
	actuals []domain.MonthlyTotals,
) []domain.MonthlyPerformanceRow {
	targetSums := make(map[domain.Period]domain.Totals)
	for _, target := range domain.DedupTargets(targets) {
		targetSums[target.Period()] = targetSums[target.Period()].Add(target.Amount, target.Quantity)
	}

	actualSums := make(map[domain.Period]domain.Totals)
	for _, monthly := range actuals {
		actualSums[monthly.Key.Period] = actualSums[monthly.Key.Period].Add(monthly.Totals.Amount, monthly.Totals.Quantity)
	}

	rows := make([]domain.MonthlyPerformanceRow, 0, len(periods))
	for _, period := range periods {
		key := domain.MonthKey{Period: period}
		rows = append(rows, monthlyRow(key, "", actualSums[period], targetSums[period]))
	}

	return rows
}
