package render

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/san-kum/gravel/internal/gravel"
)

// Frame rasterizes stones onto a fresh image filled with bg. Stones are drawn
// in slice order as unit square outlines, each shifted by its offset and
// rotated about its own center.
func Frame(stones []gravel.Stone, l Layout, bg color.Color) image.Image {
	dc := gg.NewContext(l.Width(), l.Height())
	dc.SetColor(bg)
	dc.Clear()

	dc.SetColor(gravel.StrokeColor)
	dc.SetLineWidth(l.StrokeWidth())

	l.apply(dc)
	for _, s := range stones {
		dc.Push()
		dc.Translate(s.X+s.XOffset, s.Y+s.YOffset)
		dc.Rotate(s.Rotation)
		dc.DrawRectangle(-0.5, -0.5, 1, 1)
		dc.Stroke()
		dc.Pop()
	}
	return dc.Image()
}

// Corners returns the four raster corners of a stone's outline in drawing
// order.
func Corners(s gravel.Stone, l Layout) [4][2]float64 {
	m := l.Transform().
		Translate(s.X+s.XOffset, s.Y+s.YOffset).
		Rotate(s.Rotation)
	local := [4][2]float64{{-0.5, -0.5}, {0.5, -0.5}, {0.5, 0.5}, {-0.5, 0.5}}
	var out [4][2]float64
	for i, p := range local {
		out[i][0], out[i][1] = m.TransformPoint(p[0], p[1])
	}
	return out
}
