package render

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/san-kum/gravel/internal/gravel"
)

// SVG renders the same picture as Frame as a standalone SVG document.
func SVG(stones []gravel.Stone, l Layout, bg color.Color) string {
	w, h := l.Width(), l.Height()
	side := l.Pitch

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
<g fill="none" stroke="%s" stroke-width="%.2f">
`, w, h, w, h, Hex(bg), Hex(gravel.StrokeColor), l.StrokeWidth()))

	for _, s := range stones {
		cx, cy := l.Project(s.X+s.XOffset, s.Y+s.YOffset)
		deg := s.Rotation * 180 / math.Pi
		sb.WriteString(fmt.Sprintf(`<rect x="%.3f" y="%.3f" width="%.3f" height="%.3f" transform="translate(%.3f %.3f) rotate(%.4f)"/>
`, -side/2, -side/2, side, side, cx, cy, deg))
	}

	sb.WriteString("</g>\n</svg>\n")
	return sb.String()
}

// Hex formats c as #rrggbb.
func Hex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}
