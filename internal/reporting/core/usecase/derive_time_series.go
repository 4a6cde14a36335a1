package usecase

import (
	"revenue-dashboard/internal/reporting/core/domain"
)

// DeriveTimeSeries validates the shape of time series rows. Rows missing the
// date or the group key are dropped; a missing value counts as 0. Nothing is
// aggregated here.
func DeriveTimeSeries(in domain.QueryResult) ([]domain.TimeSeriesRow, error) {
	if in.Err != nil {
		return nil, &domain.DerivationFailure{Cause: in.Err}
	}

	out := make([]domain.TimeSeriesRow, 0, len(in.Rows))
	for _, raw := range in.Rows {
		date, ok := raw.Date(in.Query.DateColumn)
		if !ok {
			continue
		}
		key, ok := raw.Text(in.Query.KeyColumn)
		if !ok {
			continue
		}

		out = append(out, domain.TimeSeriesRow{
			Date:     date,
			GroupKey: key,
			Value:    revenue(raw, in.Query.ValueColumn),
		})
	}

	return out, nil
}
