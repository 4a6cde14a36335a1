package render

import (
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"revenue-dashboard/internal/dashboard/core/domain"
	"revenue-dashboard/internal/dashboard/core/ports"
)

var ErrUnsupportedFormat = errors.New("unsupported image format")

const (
	defaultWidth  = 1024
	defaultHeight = 480
)

// Renderer draws chart descriptions with go-chart.
type Renderer struct {
	Width  int
	Height int
}

func NewRenderer(width, height int) *Renderer {
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	return &Renderer{Width: width, Height: height}
}

var _ ports.ChartRendererPort = (*Renderer)(nil)

func ParseFormat(s string) (ports.ImageFormat, error) {
	switch ports.ImageFormat(s) {
	case ports.FormatPNG, "":
		return ports.FormatPNG, nil
	case ports.FormatSVG:
		return ports.FormatSVG, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// ContentType is the HTTP media type of a format.
func ContentType(f ports.ImageFormat) string {
	if f == ports.FormatSVG {
		return "image/svg+xml"
	}
	return "image/png"
}

func (r *Renderer) Render(w io.Writer, desc domain.ChartDescription, format ports.ImageFormat) error {
	var provider chart.RendererProvider
	switch format {
	case ports.FormatPNG:
		provider = chart.PNG
	case ports.FormatSVG:
		provider = chart.SVG
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	// go-chart refuses charts without series
	if desc.Empty() {
		return r.blank(w, desc.Title, format)
	}

	var err error
	switch desc.Kind {
	case domain.KindLine:
		err = r.line(desc).Render(provider, w)
	case domain.KindScatterGeo:
		err = r.scatterGeo(desc).Render(provider, w)
	default:
		err = r.bar(desc).Render(provider, w)
	}
	if err != nil {
		return fmt.Errorf("render %s: %w", desc.ID, err)
	}
	return nil
}

// bar lays out grouped bars: for each x, one bar per series.
func (r *Renderer) bar(desc domain.ChartDescription) chart.BarChart {
	lo, hi := colorDomain(desc)

	var bars []chart.Value
	maxY := 0.0
	for i, x := range xOrder(desc) {
		for si, s := range desc.Series {
			p, ok := pointAt(s, i, x)
			if !ok {
				continue
			}

			col := chart.GetDefaultColor(si)
			if p.Color != nil {
				col = scaleColor(*p.Color, lo, hi)
			}

			label := x
			if len(desc.Series) > 1 {
				label = x + " / " + s.Name
			}
			bars = append(bars, chart.Value{
				Label: label,
				Value: p.Y,
				Style: chart.Style{FillColor: col, StrokeColor: col, StrokeWidth: 1},
			})
			maxY = math.Max(maxY, p.Y)
		}
	}

	barWidth := 40
	width := r.Width
	if need := len(bars)*(barWidth+10) + 120; need > width {
		width = need
	}

	return chart.BarChart{
		Title:      desc.Title,
		Width:      width,
		Height:     r.Height,
		BarWidth:   barWidth,
		BarSpacing: 10,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 12, Bottom: 16}},
		YAxis: chart.YAxis{
			Name:  desc.YAxis,
			Range: &chart.ContinuousRange{Min: 0, Max: upperBound(maxY)},
		},
		Bars: bars,
	}
}

// line draws one time series per description series.
func (r *Renderer) line(desc domain.ChartDescription) chart.Chart {
	var (
		series     []chart.Series
		minT, maxT time.Time
		maxY       float64
		seen       bool
	)

	for si, s := range desc.Series {
		var xs []time.Time
		var ys []float64
		for _, p := range s.Points {
			t, err := time.Parse(time.RFC3339, p.X)
			if err != nil {
				continue
			}
			xs = append(xs, t)
			ys = append(ys, p.Y)
			maxY = math.Max(maxY, p.Y)
			if !seen || t.Before(minT) {
				minT = t
			}
			if !seen || t.After(maxT) {
				maxT = t
			}
			seen = true
		}
		if len(xs) == 0 {
			continue
		}
		// pad to at least two X values for go-chart
		if len(xs) == 1 {
			xs = append(xs, xs[0].Add(24*time.Hour))
			ys = append(ys, ys[0])
			if xs[1].After(maxT) {
				maxT = xs[1]
			}
		}

		col := chart.GetDefaultColor(si)
		series = append(series, chart.TimeSeries{
			Name:    s.Name,
			XValues: xs,
			YValues: ys,
			Style:   chart.Style{StrokeColor: col, StrokeWidth: 2, DotWidth: 3, DotColor: col},
		})
	}

	if !maxT.After(minT) {
		maxT = minT.Add(24 * time.Hour)
	}

	ch := chart.Chart{
		Title:      desc.Title,
		Width:      r.Width,
		Height:     r.Height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 12, Bottom: 48}},
		XAxis: chart.XAxis{
			Name:  desc.XAxis,
			Range: &chart.ContinuousRange{Min: chart.TimeToFloat64(minT), Max: chart.TimeToFloat64(maxT)},
			Ticks: dateTicks(minT, maxT, 6),
		},
		YAxis: chart.YAxis{
			Name:  desc.YAxis,
			Range: &chart.ContinuousRange{Min: 0, Max: upperBound(maxY)},
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	return ch
}

// scatterGeo plots markers on a plain lon/lat plane.
func (r *Renderer) scatterGeo(desc domain.ChartDescription) chart.Chart {
	lo, hi := colorDomain(desc)

	var (
		series []chart.Series
		labels []chart.Value2
	)
	for _, s := range desc.Series {
		for _, p := range s.Points {
			if p.Lon == nil || p.Lat == nil {
				continue
			}

			col := chart.ColorBlue
			if p.Color != nil {
				col = scaleColor(*p.Color, lo, hi)
			}
			dot := 4.0
			if p.Size != nil {
				dot = math.Min(40, 4+*p.Size*4)
			}

			col.A = 160
			series = append(series, chart.ContinuousSeries{
				Name:    p.X,
				XValues: []float64{*p.Lon, *p.Lon},
				YValues: []float64{*p.Lat, *p.Lat},
				Style:   chart.Style{StrokeWidth: 0, DotWidth: dot, DotColor: col},
			})
			labels = append(labels, chart.Value2{XValue: *p.Lon, YValue: *p.Lat, Label: p.Label})
		}
	}
	series = append(series, chart.AnnotationSeries{Annotations: labels})

	return chart.Chart{
		Title:      desc.Title,
		Width:      r.Width,
		Height:     r.Height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 12, Bottom: 16}},
		XAxis: chart.XAxis{
			Name:  "lon",
			Range: &chart.ContinuousRange{Min: -180, Max: 180},
			Ticks: degreeTicks(-180, 180, 60),
		},
		YAxis: chart.YAxis{
			Name:  "lat",
			Range: &chart.ContinuousRange{Min: -90, Max: 90},
			Ticks: degreeTicks(-90, 90, 30),
		},
		Series: series,
	}
}

// xOrder returns the distinct X values in first-appearance order.
func xOrder(desc domain.ChartDescription) []string {
	var out []string
	seen := make(map[string]bool)
	for _, s := range desc.Series {
		for _, p := range s.Points {
			if !seen[p.X] {
				seen[p.X] = true
				out = append(out, p.X)
			}
		}
	}
	return out
}

// pointAt finds the point of s at x, trying index i first.
func pointAt(s domain.Series, i int, x string) (domain.Point, bool) {
	if i < len(s.Points) && s.Points[i].X == x {
		return s.Points[i], true
	}
	for _, p := range s.Points {
		if p.X == x {
			return p, true
		}
	}
	return domain.Point{}, false
}

func colorDomain(desc domain.ChartDescription) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, s := range desc.Series {
		for _, p := range s.Points {
			if p.Color == nil {
				continue
			}
			lo = math.Min(lo, *p.Color)
			hi = math.Max(hi, *p.Color)
		}
	}
	return lo, hi
}

var (
	scaleLow  = drawing.Color{R: 68, G: 1, B: 84, A: 255}
	scaleHigh = drawing.Color{R: 253, G: 231, B: 37, A: 255}
)

// scaleColor interpolates v linearly between the low and high scale colors.
func scaleColor(v, lo, hi float64) drawing.Color {
	t := 0.5
	if hi > lo {
		t = (v - lo) / (hi - lo)
	}
	t = math.Max(0, math.Min(1, t))

	mix := func(a, b uint8) uint8 {
		return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
	}
	return drawing.Color{
		R: mix(scaleLow.R, scaleHigh.R),
		G: mix(scaleLow.G, scaleHigh.G),
		B: mix(scaleLow.B, scaleHigh.B),
		A: 255,
	}
}

// upperBound pads the maximum so the tallest value is not clipped and an
// all-zero chart still has a non-empty range.
func upperBound(maxY float64) float64 {
	if maxY <= 0 {
		return 1
	}
	return maxY * 1.1
}

func dateTicks(from, to time.Time, n int) []chart.Tick {
	if n < 2 {
		n = 2
	}
	step := to.Sub(from) / time.Duration(n-1)
	ticks := make([]chart.Tick, 0, n)
	for i := 0; i < n; i++ {
		t := from.Add(step * time.Duration(i))
		ticks = append(ticks, chart.Tick{Value: chart.TimeToFloat64(t), Label: t.Format("2006-01-02")})
	}
	return ticks
}

func degreeTicks(from, to, step int) []chart.Tick {
	var ticks []chart.Tick
	for v := from; v <= to; v += step {
		ticks = append(ticks, chart.Tick{Value: float64(v), Label: fmt.Sprintf("%d", v)})
	}
	return ticks
}
