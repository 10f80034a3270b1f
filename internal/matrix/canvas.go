// Package matrix renders frames onto a 64x32 RGB LED panel. The Canvas
// interface separates drawing from the output device so the same render path
// serves the HUB75 hardware, the PNG debug endpoint, and tests.
package matrix

import "matrix-scoreboard/internal/board"

// Panel dimensions and font metrics.
const (
	Width  = 64
	Height = 32

	FontWidth   = 5
	FontHeight  = 7
	CharSpacing = 1
	// CharAdvance is the cell width per character position. Glyphs are 5px
	// wide; the extra pixel keeps columns aligned with the layout engine.
	CharAdvance = FontWidth + CharSpacing
)

// Canvas is a drawable pixel surface. SetPixel calls outside the bounds are
// ignored so text can clip at the panel edge.
type Canvas interface {
	Size() (width, height int)
	SetPixel(x, y int, c board.Color)
	Clear()
	Show() error
	Close() error
}
