// Package gravel provides the model behind the gravel garden sketch.
//
// The package defines the grid of stones and the procedure that perturbs
// them:
//
//   - [Stone]: one square of the grid with its jitter and rotation
//   - [NewGrid]: builds the stones in row-major order
//   - [Recompute]: regenerates every perturbation from a seed
//   - [State]: the seed, adjustments and background of a running sketch
//   - [Action]: input events that mutate a [State]
//
// # Example
//
//	st := gravel.NewState(gravel.DefaultRows, gravel.DefaultCols, src)
//	st.Apply(gravel.IncreaseDisplacement)
//	st.Recompute()
//
// # Determinism
//
// Recompute seeds a fresh generator on every call, so the pattern is a pure
// function of (seed, displacement, rotation). State is NOT safe for
// concurrent use.
package gravel
