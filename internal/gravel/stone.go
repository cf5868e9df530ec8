package gravel

const (
	DefaultRows = 20
	DefaultCols = 20
)

// Stone is one square of the grid. X and Y are the column and row it was
// created at and never change; the offsets and rotation are overwritten by
// every Recompute.
type Stone struct {
	X, Y     float64
	XOffset  float64
	YOffset  float64
	Rotation float64 // radians
}

// NewGrid returns rows*cols stones ordered row by row, column inside row.
func NewGrid(rows, cols int) []Stone {
	if rows <= 0 || cols <= 0 {
		return []Stone{}
	}
	stones := make([]Stone, 0, rows*cols)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			stones = append(stones, Stone{X: float64(x), Y: float64(y)})
		}
	}
	return stones
}
