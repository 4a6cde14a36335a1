package domain

type ChartKind string

const (
	KindBar        ChartKind = "bar"
	KindLine       ChartKind = "line"
	KindScatterGeo ChartKind = "scattergeo"
)

// ChartDescription is a renderer-independent description of one chart.
// An empty Series list is a valid, renderable chart.
type ChartDescription struct {
	ID         string    `json:"id"`
	Kind       ChartKind `json:"kind"`
	Title      string    `json:"title"`
	XAxis      string    `json:"x_axis,omitempty"`
	YAxis      string    `json:"y_axis,omitempty"`
	ColorAxis  string    `json:"color_axis,omitempty"`
	ColorScale string    `json:"color_scale,omitempty"`
	Series     []Series  `json:"series"`

	// Omitted lists group keys present in the data but not drawable
	// (e.g. no coordinates for a geographic marker).
	Omitted []string `json:"omitted,omitempty"`
}

// Empty reports whether the chart has nothing to draw.
func (c ChartDescription) Empty() bool {
	for _, s := range c.Series {
		if len(s.Points) > 0 {
			return false
		}
	}
	return true
}

type Series struct {
	Name   string  `json:"name"`
	Points []Point `json:"points"`
}

type Point struct {
	X     string   `json:"x"`
	Y     float64  `json:"y"`
	Label string   `json:"label,omitempty"`
	Color *float64 `json:"color,omitempty"`
	Size  *float64 `json:"size,omitempty"`
	Lon   *float64 `json:"lon,omitempty"`
	Lat   *float64 `json:"lat,omitempty"`
}
