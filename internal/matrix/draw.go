package matrix

import (
	"strings"

	"matrix-scoreboard/internal/board"
)

// Diamond overlay palette. Occupied bases light up; empty bases stay dim.
const (
	diamondOccupiedColor = board.BrightYellow
	diamondEmptyColor    = board.DimGray
)

// DrawText draws a string with its vertical center at y, advancing one cell
// per character. Pixels outside the canvas clip silently.
func DrawText(c Canvas, text string, x, y int, color board.Color) {
	top := y - FontHeight/2
	for _, r := range text {
		cols := glyph(r)
		for cx, colBits := range cols {
			for cy := 0; cy < FontHeight; cy++ {
				if colBits&(1<<uint(cy)) != 0 {
					c.SetPixel(x+cx, top+cy, color)
				}
			}
		}
		x += CharAdvance
	}
}

// RenderFrame draws a complete game frame onto the canvas. The three text
// rows sit at the fixed baselines; decorations draw between them.
func RenderFrame(c Canvas, f board.Frame) {
	c.Clear()

	drawRow(c, f.TopRow, board.RowYTop)
	drawRow(c, f.MiddleRow, board.RowYMiddle)
	drawRow(c, f.BottomRow, board.RowYBottom)

	if u := f.Underline; u != nil {
		for dx := 0; dx < u.Width; dx++ {
			c.SetPixel(u.X+dx, u.Y, u.Color)
		}
	}
	if d := f.Diamond; d != nil {
		drawDiamond(c, *d)
	}
	for _, s := range f.Separators {
		for dy := 0; dy < board.SeparatorHeight; dy++ {
			c.SetPixel(s.X, s.Y+dy, board.DimGray)
		}
	}
}

func drawRow(c Canvas, row []board.Fragment, y int) {
	for _, frag := range row {
		if frag.Text == "" {
			continue
		}
		DrawText(c, frag.Text, frag.X, y, frag.Color)
	}
}

func drawDiamond(c Canvas, d board.Diamond) {
	for y, row := range d.Pixels() {
		for x, idx := range row {
			switch idx {
			case board.DiamondOccupied:
				c.SetPixel(d.X+x, d.Y+y, diamondOccupiedColor)
			case board.DiamondEmpty:
				c.SetPixel(d.X+x, d.Y+y, diamondEmptyColor)
			}
		}
	}
}

// RenderStatic draws centered multi-line text, used for mode switches and
// empty-board messages like "No NFL\nGames".
func RenderStatic(c Canvas, text string, color board.Color) {
	c.Clear()

	width, height := c.Size()
	lines := strings.Split(text, "\n")

	var ys []int
	if len(lines) == 1 {
		ys = []int{height / 2}
	} else {
		lineHeight := height / len(lines)
		if lineHeight > 10 {
			lineHeight = 10
		}
		startY := (height - lineHeight*(len(lines)-1)) / 2
		for i := range lines {
			ys = append(ys, startY+i*lineHeight)
		}
	}

	for i, line := range lines {
		x := width/2 - len(line)*CharAdvance/2
		DrawText(c, line, x, ys[i], color)
	}
}
