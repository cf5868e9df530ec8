package analysis

import (
	"math"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/gravel/internal/gravel"
)

// Profile holds one entry per grid row.
type Profile struct {
	MeanShift []float64 // mean of |XOffset| and |YOffset|
	PeakShift []float64
	MeanTurn  []float64 // mean |Rotation|
	PeakTurn  []float64
	MaxShift  []float64 // theoretical bound for the row
	MaxTurn   []float64
}

// RowProfile aggregates stones by row. Stones outside [0, rows) are ignored.
func RowProfile(stones []gravel.Stone, rows int, disp, rot float64) Profile {
	if rows <= 0 {
		return Profile{}
	}
	p := Profile{
		MeanShift: make([]float64, rows),
		PeakShift: make([]float64, rows),
		MeanTurn:  make([]float64, rows),
		PeakTurn:  make([]float64, rows),
		MaxShift:  make([]float64, rows),
		MaxTurn:   make([]float64, rows),
	}
	counts := make([]int, rows)

	for _, s := range stones {
		y := int(s.Y)
		if y < 0 || y >= rows {
			continue
		}
		counts[y]++
		ax, ay, ar := math.Abs(s.XOffset), math.Abs(s.YOffset), math.Abs(s.Rotation)
		p.MeanShift[y] += (ax + ay) / 2
		p.MeanTurn[y] += ar
		p.PeakShift[y] = math.Max(p.PeakShift[y], math.Max(ax, ay))
		p.PeakTurn[y] = math.Max(p.PeakTurn[y], ar)
	}

	for y := 0; y < rows; y++ {
		if counts[y] > 0 {
			p.MeanShift[y] /= float64(counts[y])
			p.MeanTurn[y] /= float64(counts[y])
		}
		p.MaxShift[y], p.MaxTurn[y] = gravel.Bounds(float64(y), rows, disp, rot)
	}
	return p
}

// Monotone reports whether the per-row bounds never shrink toward the bottom.
func (p Profile) Monotone() bool {
	for y := 1; y < len(p.MaxShift); y++ {
		if p.MaxShift[y] < p.MaxShift[y-1] || p.MaxTurn[y] < p.MaxTurn[y-1] {
			return false
		}
	}
	return true
}

// Within reports whether every observed peak respects its row bound.
func (p Profile) Within() bool {
	for y := range p.PeakShift {
		if p.PeakShift[y] > p.MaxShift[y] || p.PeakTurn[y] > p.MaxTurn[y] {
			return false
		}
	}
	return true
}

// PlotProfile charts mean shift and mean turn against row index.
func PlotProfile(p Profile, width, height int) string {
	if len(p.MeanShift) < 2 {
		return ""
	}
	return asciigraph.PlotMany(
		[][]float64{p.MeanShift, p.MeanTurn},
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.Caption("mean |shift| (green) and |turn| (yellow) by row"),
		asciigraph.SeriesColors(asciigraph.Green, asciigraph.Yellow),
	)
}
