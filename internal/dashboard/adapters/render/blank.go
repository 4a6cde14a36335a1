package render

import (
	"fmt"
	"html"
	"image"
	"image/color"
	"image/png"
	"io"

	"revenue-dashboard/internal/dashboard/core/ports"
)

// blank writes an empty canvas carrying only the title.
func (r *Renderer) blank(w io.Writer, title string, format ports.ImageFormat) error {
	if format == ports.FormatSVG {
		_, err := fmt.Fprintf(w,
			`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d"><rect width="100%%" height="100%%" fill="#ffffff"/><text x="%d" y="28" text-anchor="middle" font-family="sans-serif" font-size="16">%s</text></svg>`,
			r.Width, r.Height, r.Width/2, html.EscapeString(title))
		return err
	}

	img := image.NewRGBA(image.Rect(0, 0, r.Width, r.Height))
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}
	return png.Encode(w, img)
}
