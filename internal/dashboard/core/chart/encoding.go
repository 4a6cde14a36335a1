package chart

import "revenue-dashboard/internal/dashboard/core/domain"

// Encoding maps table columns onto chart channels.
type Encoding struct {
	ID    string
	Kind  domain.ChartKind
	Title string

	XAxis string // axis titles
	YAxis string

	// Y lists the measures drawn as bars, one series per measure.
	Y []string
	// SeriesNames optionally renames the series built from Y (same order).
	SeriesNames []string

	// Color is a measure attached to every point for a continuous color scale.
	Color      string
	ColorScale string

	// Size is the measure driving geographic marker size, divided by SizeScale.
	Size      string
	SizeScale float64
}

func (e Encoding) seriesName(i int) string {
	if i < len(e.SeriesNames) && e.SeriesNames[i] != "" {
		return e.SeriesNames[i]
	}
	return e.Y[i]
}

func (e Encoding) describe() domain.ChartDescription {
	return domain.ChartDescription{
		ID:         e.ID,
		Kind:       e.Kind,
		Title:      e.Title,
		XAxis:      e.XAxis,
		YAxis:      e.YAxis,
		ColorAxis:  e.Color,
		ColorScale: e.ColorScale,
		Series:     []domain.Series{},
	}
}
