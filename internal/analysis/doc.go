// Package analysis summarizes how perturbation is spread over a grid.
//
//   - [RowProfile]: per-row mean and peak displacement and rotation
//   - [Profile.Monotone]: checks the ramp toward the bottom row
//   - [PlotProfile]: ascii chart of a profile
//
// # Example
//
//	p := analysis.RowProfile(st.Stones, st.Rows, st.Displacement, st.Rotation)
//	fmt.Println(analysis.PlotProfile(p, 60, 12))
package analysis
