package usecase_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"revenue-dashboard/internal/reporting/core/domain"
	"revenue-dashboard/internal/reporting/core/usecase"
)

var (
	earnedByCity   = domain.QuerySpec{ID: domain.EarnedRevenueByCity, KeyColumn: "city", ValueColumn: "revenue"}
	unearnedByCity = domain.QuerySpec{ID: domain.UnearnedRevenueByCity, KeyColumn: "city", ValueColumn: "revenue"}
)

func cityRows(pairs ...any) []domain.RawRow {
	rows := make([]domain.RawRow, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		rows = append(rows, domain.RawRow{"city": pairs[i], "revenue": pairs[i+1]})
	}
	return rows
}

// ------------------------------------------------------------
// SCENARIO: NYC / Boston
// ------------------------------------------------------------

func TestDeriveMetrics_NYCBostonScenario(t *testing.T) {
	earned := domain.ResultOf(earnedByCity, cityRows("NYC", float64(1000)), nil)
	unearned := domain.ResultOf(unearnedByCity, cityRows("NYC", float64(0), "Boston", float64(500)), nil)

	table, err := usecase.DeriveMetrics(earned, unearned)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := domain.MetricsTable{
		{GroupKey: "NYC", EarnedRevenue: 1000, UnearnedRevenue: 0, UnearnedPercentage: 0},
		{GroupKey: "Boston", EarnedRevenue: 0, UnearnedRevenue: 500, UnearnedPercentage: 100},
	}
	if len(table) != len(want) {
		t.Fatalf("expected %d rows, got %d: %+v", len(want), len(table), table)
	}
	for i := range want {
		if table[i] != want[i] {
			t.Fatalf("row %d: expected %+v, got %+v", i, want[i], table[i])
		}
	}
}

// ------------------------------------------------------------
// FULL OUTER MERGE CARDINALITY
// ------------------------------------------------------------

func TestDeriveMetrics_DisjointKeysKeepUnion(t *testing.T) {
	for n := 0; n < 5; n++ {
		for m := 0; m < 5; m++ {
			var e, u []any
			for i := 0; i < n; i++ {
				e = append(e, fmt.Sprintf("e%d", i), int64(i+1))
			}
			for j := 0; j < m; j++ {
				u = append(u, fmt.Sprintf("u%d", j), int64(j+1))
			}

			table, err := usecase.DeriveMetrics(
				domain.ResultOf(earnedByCity, cityRows(e...), nil),
				domain.ResultOf(unearnedByCity, cityRows(u...), nil),
			)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(table) != n+m {
				t.Fatalf("n=%d m=%d: expected %d rows, got %d", n, m, n+m, len(table))
			}

			seen := map[string]bool{}
			for _, r := range table {
				if seen[r.GroupKey] {
					t.Fatalf("duplicate key %s", r.GroupKey)
				}
				seen[r.GroupKey] = true
			}
		}
	}
}

func TestDeriveMetrics_OrderEarnedFirstThenUnearnedOnly(t *testing.T) {
	table, err := usecase.DeriveMetrics(
		domain.ResultOf(earnedByCity, cityRows("Paris", 10.0, "Tokyo", 20.0), nil),
		domain.ResultOf(unearnedByCity, cityRows("Sydney", 5.0, "Paris", 10.0, "London", 1.0), nil),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := table.Keys()
	want := []string{"Paris", "Tokyo", "Sydney", "London"}
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Fatalf("expected order %v, got %v", want, got)
	}
	if table[0].UnearnedPercentage != 50 {
		t.Fatalf("expected Paris pct=50, got %v", table[0].UnearnedPercentage)
	}
}

// ------------------------------------------------------------
// ZERO FILL & PERCENTAGE BOUNDS
// ------------------------------------------------------------

func TestDeriveMetrics_AbsentValuesDefaultToZero(t *testing.T) {
	earned := domain.ResultOf(earnedByCity, []domain.RawRow{
		{"city": "NYC", "revenue": nil},
		{"city": "Boston"},
		{"city": "Paris", "revenue": "not-a-number"},
	}, nil)
	unearned := domain.ResultOf(unearnedByCity, []domain.RawRow{
		{"city": "NYC", "revenue": nil},
	}, nil)

	table, err := usecase.DeriveMetrics(earned, unearned)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(table) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(table))
	}
	for _, r := range table {
		if r.EarnedRevenue != 0 || r.UnearnedRevenue != 0 || r.UnearnedPercentage != 0 {
			t.Fatalf("expected zero-filled row, got %+v", r)
		}
	}
}

func TestDeriveMetrics_PercentageAlwaysWithinBounds(t *testing.T) {
	values := []any{
		int64(0), float64(0), float64(0.5), int64(7), "1234.56", []byte("99.9"), float64(-5), float64(1e12),
	}

	for _, ev := range values {
		for _, uv := range values {
			table, err := usecase.DeriveMetrics(
				domain.ResultOf(earnedByCity, cityRows("K", ev), nil),
				domain.ResultOf(unearnedByCity, cityRows("K", uv), nil),
			)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			r := table[0]
			if r.UnearnedPercentage < 0 || r.UnearnedPercentage > 100 {
				t.Fatalf("pct out of range for earned=%v unearned=%v: %v", ev, uv, r.UnearnedPercentage)
			}
			if r.EarnedRevenue == 0 && r.UnearnedRevenue == 0 && r.UnearnedPercentage != 0 {
				t.Fatalf("expected pct=0 for zero revenue, got %v", r.UnearnedPercentage)
			}
		}
	}
}

func TestDeriveMetrics_NumericTextIsParsed(t *testing.T) {
	table, err := usecase.DeriveMetrics(
		domain.ResultOf(earnedByCity, cityRows("NYC", []byte("750.25")), nil),
		domain.ResultOf(unearnedByCity, cityRows("NYC", "249.75"), nil),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if table[0].EarnedRevenue != 750.25 || table[0].UnearnedRevenue != 249.75 {
		t.Fatalf("unexpected revenue: %+v", table[0])
	}
	if math.Abs(table[0].UnearnedPercentage-24.975) > 1e-9 {
		t.Fatalf("expected pct=24.975, got %v", table[0].UnearnedPercentage)
	}
}

func TestDeriveMetrics_SkipsRowsWithoutKeyAndSumsDuplicates(t *testing.T) {
	earned := domain.ResultOf(earnedByCity, []domain.RawRow{
		{"city": nil, "revenue": 100.0},
		{"city": "  ", "revenue": 100.0},
		{"city": "NYC", "revenue": 100.0},
		{"city": "NYC", "revenue": 50.0},
	}, nil)

	table, err := usecase.DeriveMetrics(earned, domain.ResultOf(unearnedByCity, nil, nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(table) != 1 || table[0].EarnedRevenue != 150 {
		t.Fatalf("expected single NYC row with 150, got %+v", table)
	}
}

// ------------------------------------------------------------
// FAILED INPUTS
// ------------------------------------------------------------

func TestDeriveMetrics_FailedInputPropagates(t *testing.T) {
	qf := &domain.QueryFailure{Query: domain.UnearnedRevenueByCity, Message: "connection refused"}

	tests := []struct {
		name     string
		earned   domain.QueryResult
		unearned domain.QueryResult
	}{
		{"earned_failed", domain.ResultOf(earnedByCity, nil, qf), domain.ResultOf(unearnedByCity, cityRows("NYC", 1.0), nil)},
		{"unearned_failed", domain.ResultOf(earnedByCity, cityRows("NYC", 1.0), nil), domain.ResultOf(unearnedByCity, nil, qf)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := usecase.DeriveMetrics(tt.earned, tt.unearned)
			if table != nil {
				t.Fatalf("expected no table on failure, got %+v", table)
			}

			var df *domain.DerivationFailure
			if !errors.As(err, &df) {
				t.Fatalf("expected DerivationFailure, got %v", err)
			}
			var got *domain.QueryFailure
			if !errors.As(err, &got) || got != qf {
				t.Fatalf("expected cause to be the query failure, got %v", err)
			}
		})
	}
}

func TestUnearnedPercentage(t *testing.T) {
	tests := []struct {
		earned, unearned, want float64
	}{
		{0, 0, 0},
		{1000, 0, 0},
		{0, 500, 100},
		{300, 100, 25},
		{-10, 20, 100},
		{10, -20, 0},
	}

	for _, tt := range tests {
		if got := usecase.UnearnedPercentage(tt.earned, tt.unearned); got != tt.want {
			t.Fatalf("UnearnedPercentage(%v, %v) = %v, want %v", tt.earned, tt.unearned, got, tt.want)
		}
	}
}
