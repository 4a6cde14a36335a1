package domain

import "time"

// Measure names addressable by chart encodings.
const (
	MeasureEarnedRevenue      = "earned_revenue"
	MeasureUnearnedRevenue    = "unearned_revenue"
	MeasureUnearnedPercentage = "unearned_percentage"
	MeasureValue              = "value"
)

// Table names a view may declare as dependencies.
const (
	TableMetrics    = "metrics"
	TableTimeSeries = "timeseries"
)

type MetricsRow struct {
	GroupKey           string  `json:"group_key"`
	EarnedRevenue      float64 `json:"earned_revenue"`
	UnearnedRevenue    float64 `json:"unearned_revenue"`
	UnearnedPercentage float64 `json:"unearned_percentage"`
}

// Measure returns the named numeric field of the row.
func (r MetricsRow) Measure(name string) (float64, bool) {
	switch name {
	case MeasureEarnedRevenue:
		return r.EarnedRevenue, true
	case MeasureUnearnedRevenue:
		return r.UnearnedRevenue, true
	case MeasureUnearnedPercentage:
		return r.UnearnedPercentage, true
	default:
		return 0, false
	}
}

// MetricsTable holds one row per GroupKey in first-appearance order.
type MetricsTable []MetricsRow

func (t MetricsTable) Keys() []string {
	keys := make([]string, 0, len(t))
	for _, r := range t {
		keys = append(keys, r.GroupKey)
	}
	return keys
}

type TimeSeriesRow struct {
	Date     time.Time `json:"date"`
	GroupKey string    `json:"group_key"`
	Value    float64   `json:"value"`
}

// Dataset is the immutable result of the startup load. It is shared by every
// dashboard session and must not be modified after construction.
type Dataset struct {
	Dimension  string
	Metrics    MetricsTable
	TimeSeries []TimeSeriesRow
	LoadedAt   time.Time
}

// HasTable reports whether the dataset can serve a view dependency.
func (d *Dataset) HasTable(name string) bool {
	switch name {
	case TableMetrics:
		return true
	case TableTimeSeries:
		return d.TimeSeries != nil
	default:
		return false
	}
}
