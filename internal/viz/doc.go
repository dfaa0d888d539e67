// Package viz renders engine frames to the terminal.
//
// [Canvas] is a braille pixel grid (2x4 dots per character cell) with a
// character overlay for node glyphs and labels. [Renderer] projects a
// [view.Frame] onto the canvas and colors it with a [Theme].
//
// The package draws strings; it never touches engine state.
package viz
