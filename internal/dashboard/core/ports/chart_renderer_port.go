package ports

import (
	"io"

	"revenue-dashboard/internal/dashboard/core/domain"
)

type ImageFormat string

const (
	FormatPNG ImageFormat = "png"
	FormatSVG ImageFormat = "svg"
)

// ChartRendererPort draws a chart description as an image.
type ChartRendererPort interface {
	Render(w io.Writer, desc domain.ChartDescription, format ImageFormat) error
}
