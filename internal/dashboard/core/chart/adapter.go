package chart

import (
	"time"

	"revenue-dashboard/internal/dashboard/core/domain"
	reporting "revenue-dashboard/internal/reporting/core/domain"
)

// Data is the input of an adaptation. Views pass whichever table they read;
// the other may be nil.
type Data struct {
	Metrics    reporting.MetricsTable
	TimeSeries []reporting.TimeSeriesRow
}

// Adapter turns tables into chart descriptions. It is pure and total: any
// input, including an empty one, yields a well-formed description.
type Adapter struct {
	geo GeoLookup
}

func NewAdapter(geo GeoLookup) *Adapter {
	if geo == nil {
		geo = StaticLookup{}
	}
	return &Adapter{geo: geo}
}

func (a *Adapter) Adapt(data Data, enc Encoding) domain.ChartDescription {
	switch enc.Kind {
	case domain.KindLine:
		return line(data.TimeSeries, enc)
	case domain.KindScatterGeo:
		return a.scatterGeo(data.Metrics, enc)
	default:
		enc.Kind = domain.KindBar
		return bar(data.Metrics, enc)
	}
}

// bar builds one series per measure in enc.Y with one point per group key.
func bar(table reporting.MetricsTable, enc Encoding) domain.ChartDescription {
	out := enc.describe()
	if len(table) == 0 {
		return out
	}

	for i, measure := range enc.Y {
		s := domain.Series{Name: enc.seriesName(i), Points: make([]domain.Point, 0, len(table))}
		for _, row := range table {
			y, _ := row.Measure(measure)
			p := domain.Point{X: row.GroupKey, Y: y}
			if enc.Color != "" {
				if c, ok := row.Measure(enc.Color); ok {
					p.Color = &c
				}
			}
			s.Points = append(s.Points, p)
		}
		out.Series = append(out.Series, s)
	}

	return out
}

// line builds one series per group key in order of first appearance.
func line(rows []reporting.TimeSeriesRow, enc Encoding) domain.ChartDescription {
	out := enc.describe()
	if len(rows) == 0 {
		return out
	}

	index := make(map[string]int)
	for _, r := range rows {
		i, ok := index[r.GroupKey]
		if !ok {
			i = len(out.Series)
			index[r.GroupKey] = i
			out.Series = append(out.Series, domain.Series{Name: r.GroupKey, Points: []domain.Point{}})
		}
		out.Series[i].Points = append(out.Series[i].Points, domain.Point{
			X: r.Date.UTC().Format(time.RFC3339),
			Y: r.Value,
		})
	}

	return out
}

// scatterGeo places one marker per locatable group key. Keys without
// coordinates are listed in Omitted and never drawn at a default position.
func (a *Adapter) scatterGeo(table reporting.MetricsTable, enc Encoding) domain.ChartDescription {
	out := enc.describe()
	if len(table) == 0 {
		return out
	}

	scale := enc.SizeScale
	if scale <= 0 {
		scale = 1
	}

	markers := domain.Series{Name: "markers", Points: []domain.Point{}}
	for _, row := range table {
		c, ok := a.geo.Locate(row.GroupKey)
		if !ok {
			out.Omitted = append(out.Omitted, row.GroupKey)
			continue
		}

		lon, lat := c.Lon, c.Lat
		p := domain.Point{X: row.GroupKey, Label: row.GroupKey, Lon: &lon, Lat: &lat}
		if enc.Size != "" {
			if v, ok := row.Measure(enc.Size); ok {
				size := v / scale
				p.Size = &size
				p.Y = v
			}
		}
		if enc.Color != "" {
			if v, ok := row.Measure(enc.Color); ok {
				p.Color = &v
			}
		}
		markers.Points = append(markers.Points, p)
	}

	if len(markers.Points) > 0 {
		out.Series = append(out.Series, markers)
	}
	return out
}
