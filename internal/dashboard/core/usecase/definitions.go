package usecase

import (
	"time"

	"revenue-dashboard/internal/dashboard/core/chart"
	"revenue-dashboard/internal/dashboard/core/domain"
	"revenue-dashboard/internal/dashboard/core/graph"
	reporting "revenue-dashboard/internal/reporting/core/domain"
	reportingUsecase "revenue-dashboard/internal/reporting/core/usecase"
)

const (
	DashboardGeography   = "geography"
	DashboardProductLine = "productline"

	// ControlSelection is the multi-select control every dashboard exposes.
	ControlSelection = "selection"
)

// ViewDefinition describes one chart of a dashboard.
type ViewDefinition struct {
	Encoding chart.Encoding
	Tables   []string
	// FilterBy names a control whose selection restricts the rows the
	// view sees. Empty means the view reads the whole table.
	FilterBy string
}

func (v ViewDefinition) Name() string {
	return v.Encoding.ID
}

type Definition struct {
	Name    string
	Title   string
	Dataset reportingUsecase.DatasetSpec
	Views   []ViewDefinition
}

// Geography is revenue by office city.
func Geography() Definition {
	return Definition{
		Name:  DashboardGeography,
		Title: "Revenue by City",
		Dataset: reportingUsecase.DatasetSpec{
			Dimension: "city",
			Earned:    reporting.EarnedRevenueByCity,
			Unearned:  reporting.UnearnedRevenueByCity,
		},
		Views: []ViewDefinition{
			{
				Encoding: chart.Encoding{
					ID:          "revenue-bar",
					Kind:        domain.KindBar,
					Title:       "Total Revenue and Unearned Revenue by City",
					XAxis:       "city",
					YAxis:       "value",
					Y:           []string{reporting.MeasureEarnedRevenue, reporting.MeasureUnearnedRevenue},
					SeriesNames: []string{"TotalRevenue", "TotalUnEarnRevenue"},
				},
				Tables: []string{reporting.TableMetrics},
			},
			percentView("Unearned Revenue Percentage by City", "city"),
			{
				Encoding: chart.Encoding{
					ID:         "bubble-map",
					Kind:       domain.KindScatterGeo,
					Title:      "Bubble Map",
					Size:       reporting.MeasureUnearnedRevenue,
					SizeScale:  1000,
					Color:      reporting.MeasureUnearnedRevenue,
					ColorScale: "RdYlBu",
				},
				Tables: []string{reporting.TableMetrics},
			},
		},
	}
}

// ProductLine is revenue by product line, with a time series filtered by
// the selection control.
func ProductLine() Definition {
	return Definition{
		Name:  DashboardProductLine,
		Title: "Revenue by Product Line",
		Dataset: reportingUsecase.DatasetSpec{
			Dimension:  "productline",
			Earned:     reporting.EarnedRevenueByProductLine,
			Unearned:   reporting.UnearnedRevenueByProductLine,
			TimeSeries: reporting.RevenueTimeSeriesByProductLine,
		},
		Views: []ViewDefinition{
			{
				Encoding: chart.Encoding{
					ID:          "revenue-bar",
					Kind:        domain.KindBar,
					Title:       "Total Revenue and Unearned Revenue by Productline",
					XAxis:       "productline",
					YAxis:       "value",
					Y:           []string{reporting.MeasureEarnedRevenue, reporting.MeasureUnearnedRevenue},
					SeriesNames: []string{"TotalRevenue", "TotalUnEarnRevenue"},
				},
				Tables: []string{reporting.TableMetrics},
			},
			percentView("Unearned Revenue Percentage by Productline", "productline"),
			{
				Encoding: chart.Encoding{
					ID:    "line-chart",
					Kind:  domain.KindLine,
					Title: "Revenue Over Time by Product Line",
					XAxis: "orderDate",
					YAxis: "TotalRevenue",
				},
				Tables:   []string{reporting.TableTimeSeries},
				FilterBy: ControlSelection,
			},
		},
	}
}

func percentView(title, dimension string) ViewDefinition {
	return ViewDefinition{
		Encoding: chart.Encoding{
			ID:         "revenue-percent",
			Kind:       domain.KindBar,
			Title:      title,
			XAxis:      dimension,
			YAxis:      "UnEarnedPercentage",
			Y:          []string{reporting.MeasureUnearnedPercentage},
			Color:      reporting.MeasureUnearnedPercentage,
			ColorScale: "Viridis",
		},
		Tables: []string{reporting.TableMetrics},
	}
}

// Definitions returns every known dashboard in display order.
func Definitions() []Definition {
	return []Definition{Geography(), ProductLine()}
}

func LookupDefinition(name string) (Definition, bool) {
	for _, d := range Definitions() {
		if d.Name == name {
			return d, true
		}
	}
	return Definition{}, false
}

// viewSpec binds a definition to the graph. The returned function only
// reads its inputs, so equal inputs give equal descriptions.
func (v ViewDefinition) viewSpec(adapter *chart.Adapter) graph.ViewSpec {
	spec := graph.ViewSpec{Name: v.Name(), Tables: v.Tables}
	if v.FilterBy != "" {
		spec.Controls = []string{v.FilterBy}
	}

	spec.Compute = func(in graph.Inputs) domain.ChartDescription {
		data := chart.Data{Metrics: in.Data.Metrics, TimeSeries: in.Data.TimeSeries}
		if v.FilterBy != "" {
			sel := in.Control(v.FilterBy)
			data.Metrics = filterMetrics(data.Metrics, sel)
			data.TimeSeries = filterTimeSeries(data.TimeSeries, sel)
		}
		return adapter.Adapt(data, v.Encoding)
	}
	return spec
}

func filterMetrics(rows reporting.MetricsTable, sel graph.Selection) reporting.MetricsTable {
	out := make(reporting.MetricsTable, 0, len(rows))
	for _, r := range rows {
		if sel.Contains(r.GroupKey) {
			out = append(out, r)
		}
	}
	return out
}

// filterTimeSeries keeps selected keys and sums rows sharing (date, key).
func filterTimeSeries(rows []reporting.TimeSeriesRow, sel graph.Selection) []reporting.TimeSeriesRow {
	type point struct {
		date time.Time
		key  string
	}

	out := make([]reporting.TimeSeriesRow, 0, len(rows))
	index := make(map[point]int)
	for _, r := range rows {
		if !sel.Contains(r.GroupKey) {
			continue
		}
		p := point{date: r.Date.UTC(), key: r.GroupKey}
		if i, ok := index[p]; ok {
			out[i].Value += r.Value
			continue
		}
		index[p] = len(out)
		out = append(out, r)
	}
	return out
}
