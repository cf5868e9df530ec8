// Package viz draws a gravel sketch in the terminal.
//
// Stones are outlined on a braille [Canvas] (2x4 dots per character) using
// the same grid transform as the raster renderer, scaled down to fit the
// terminal. [Model] is a bubbletea model that maps keys to sketch actions
// and redraws only when the state changes.
package viz
