package usecase

import (
	"revenue-dashboard/internal/reporting/core/domain"
)

// DeriveMetrics full-outer-merges earned and unearned revenue on the group
// key and computes the unearned percentage per key.
//
// Keys missing on one side get 0 for that side's revenue. Output order is
// first appearance, earned keys first. Rows without a key are skipped and
// repeated keys within one side are summed.
func DeriveMetrics(earned, unearned domain.QueryResult) (domain.MetricsTable, error) {
	if earned.Err != nil {
		return nil, &domain.DerivationFailure{Cause: earned.Err}
	}
	if unearned.Err != nil {
		return nil, &domain.DerivationFailure{Cause: unearned.Err}
	}

	index := make(map[string]int)
	table := make(domain.MetricsTable, 0, len(earned.Rows)+len(unearned.Rows))

	rowFor := func(key string) *domain.MetricsRow {
		i, ok := index[key]
		if !ok {
			i = len(table)
			index[key] = i
			table = append(table, domain.MetricsRow{GroupKey: key})
		}
		return &table[i]
	}

	for _, raw := range earned.Rows {
		key, ok := raw.Text(earned.Query.KeyColumn)
		if !ok {
			continue
		}
		row := rowFor(key)
		row.EarnedRevenue += revenue(raw, earned.Query.ValueColumn)
	}

	for _, raw := range unearned.Rows {
		key, ok := raw.Text(unearned.Query.KeyColumn)
		if !ok {
			continue
		}
		row := rowFor(key)
		row.UnearnedRevenue += revenue(raw, unearned.Query.ValueColumn)
	}

	for i := range table {
		table[i].UnearnedPercentage = UnearnedPercentage(table[i].EarnedRevenue, table[i].UnearnedRevenue)
	}

	return table, nil
}

// UnearnedPercentage returns unearned / (earned + unearned) * 100 clamped to
// [0, 100]. A non-positive denominator yields 0.
func UnearnedPercentage(earned, unearned float64) float64 {
	total := earned + unearned
	if total <= 0 {
		return 0
	}

	pct := unearned / total * 100
	switch {
	case pct != pct: // NaN
		return 0
	case pct < 0:
		return 0
	case pct > 100:
		return 100
	}
	return pct
}

// revenue reads a revenue cell; absent or non-numeric cells count as 0.
func revenue(raw domain.RawRow, col string) float64 {
	v, ok := raw.Number(col)
	if !ok {
		return 0
	}
	return v
}
