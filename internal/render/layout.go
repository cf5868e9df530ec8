// Package render draws a grid of stones as a raster frame or an SVG
// document. Both share the same Layout transform so a frame and its vector
// export line up exactly.
package render

import (
	"github.com/fogleman/gg"
	"github.com/san-kum/gravel/internal/gravel"
)

const (
	DefaultPitch     = 30.0
	DefaultMargin    = 10.0
	DefaultLineWidth = 0.06
)

// Layout fixes the geometry of a frame. Pitch and Margin are in pixels,
// LineWidth is relative to one stone.
type Layout struct {
	Rows, Cols int
	Pitch      float64
	Margin     float64
	LineWidth  float64
}

func DefaultLayout() Layout {
	return Layout{
		Rows:      gravel.DefaultRows,
		Cols:      gravel.DefaultCols,
		Pitch:     DefaultPitch,
		Margin:    DefaultMargin,
		LineWidth: DefaultLineWidth,
	}
}

// Width is the frame width in pixels.
func (l Layout) Width() int {
	return int(float64(l.Cols)*l.Pitch + 2*l.Margin)
}

// Height is the frame height in pixels.
func (l Layout) Height() int {
	return int(float64(l.Rows)*l.Pitch + 2*l.Margin)
}

// StrokeWidth is the outline width in pixels.
func (l Layout) StrokeWidth() float64 {
	return l.LineWidth * l.Pitch
}

// Transform maps grid coordinates to raster pixels: centered on the image,
// scaled by Pitch, then shifted so stone centers sit symmetrically around the
// origin. Raster y already grows downward, so row indices need no flip to
// run top to bottom.
func (l Layout) Transform() gg.Matrix {
	return gg.Identity().
		Translate(float64(l.Width())/2, float64(l.Height())/2).
		Scale(l.Pitch, l.Pitch).
		Translate(float64(l.Cols)/-2+0.5, float64(l.Rows)/-2+0.5)
}

// apply pushes Transform onto a drawing context, step for step.
func (l Layout) apply(dc *gg.Context) {
	dc.Translate(float64(l.Width())/2, float64(l.Height())/2)
	dc.Scale(l.Pitch, l.Pitch)
	dc.Translate(float64(l.Cols)/-2+0.5, float64(l.Rows)/-2+0.5)
}

// Project returns the pixel position of grid point (x, y).
func (l Layout) Project(x, y float64) (float64, float64) {
	return l.Transform().TransformPoint(x, y)
}
