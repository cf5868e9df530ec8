package gravel

import (
	"image/color"
	"math"
	"math/rand/v2"
	"time"
)

const (
	// SeedSpace bounds every seed handed out by Reseed.
	SeedSpace = 1_000_000
	// Step is the amount each adjustment key moves a factor.
	Step = 0.1

	DefaultDisplacement = 1.0
	DefaultRotation     = 1.0
)

// Chooser picks uniform integers for interactive choices. *rand.Rand
// satisfies it.
type Chooser interface {
	IntN(n int) int
}

// State is everything a running sketch needs to draw a frame.
type State struct {
	Rows, Cols   int
	Stones       []Stone
	Seed         uint64
	Displacement float64
	Rotation     float64
	Background   int

	ui Chooser
}

// NewClockChooser returns a Chooser seeded from the wall clock. It is kept
// apart from the perturbation seed on purpose.
func NewClockChooser() *rand.Rand {
	now := uint64(time.Now().UnixNano())
	return rand.New(rand.NewPCG(now, now>>1|1))
}

// NewState builds the grid with default adjustments, a random seed and a
// random background picked from ui. A nil ui uses NewClockChooser.
func NewState(rows, cols int, ui Chooser) *State {
	if ui == nil {
		ui = NewClockChooser()
	}
	s := &State{
		Rows:         rows,
		Cols:         cols,
		Stones:       NewGrid(rows, cols),
		Displacement: DefaultDisplacement,
		Rotation:     DefaultRotation,
		ui:           ui,
	}
	s.Seed = uint64(ui.IntN(SeedSpace))
	s.Background = ui.IntN(len(Palette))
	return s
}

// Recompute regenerates every stone from the current parameters.
func (s *State) Recompute() {
	Recompute(s.Stones, s.Rows, s.Seed, s.Displacement, s.Rotation)
}

// BackgroundColor returns the current palette color.
func (s *State) BackgroundColor() color.RGBA {
	return s.Swatch().Color
}

// Swatch returns the current palette entry.
func (s *State) Swatch() Swatch {
	if s.Background < 0 || s.Background >= len(Palette) {
		return Palette[0]
	}
	return Palette[s.Background]
}

// Reseed picks a new seed in [0, SeedSpace).
func (s *State) Reseed() {
	s.Seed = uint64(s.chooser().IntN(SeedSpace))
}

// ChangeColor picks a new background. The draw does not depend on Seed.
func (s *State) ChangeColor() {
	s.Background = s.chooser().IntN(len(Palette))
}

func (s *State) chooser() Chooser {
	if s.ui == nil {
		s.ui = NewClockChooser()
	}
	return s.ui
}

func (s *State) IncreaseDisplacement() { s.Displacement += Step }
func (s *State) IncreaseRotation()     { s.Rotation += Step }

// DecreaseDisplacement lowers the displacement factor, never below zero.
func (s *State) DecreaseDisplacement() bool {
	return decrease(&s.Displacement)
}

// DecreaseRotation lowers the rotation factor, never below zero.
func (s *State) DecreaseRotation() bool {
	return decrease(&s.Rotation)
}

func decrease(v *float64) bool {
	if *v <= 0 {
		return false
	}
	*v = math.Max(0, *v-Step)
	return true
}
