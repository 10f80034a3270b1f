package matrix

import (
	"bytes"
	"image/png"
	"testing"

	"matrix-scoreboard/internal/board"
	"matrix-scoreboard/internal/domain"
)

func diamondBases() domain.Bases {
	return domain.Bases{Second: true, Present: true}
}

func isLit(c *ImageCanvas, x, y int) bool {
	px := c.At(x, y)
	return px.R != 0 || px.G != 0 || px.B != 0
}

func TestDrawTextCentersOnBaseline(t *testing.T) {
	c := NewImageCanvas()
	// '-' is a single row of pixels on the glyph's middle line.
	DrawText(c, "-", 0, board.RowYTop, board.White)

	for x := 0; x < FontWidth; x++ {
		if !isLit(c, x, board.RowYTop) {
			t.Fatalf("expected lit pixel at (%d,%d)", x, board.RowYTop)
		}
	}
	if isLit(c, 0, board.RowYTop-1) || isLit(c, 0, board.RowYTop+1) {
		t.Error("dash should only light the center row")
	}
}

func TestDrawTextAdvancesPerCell(t *testing.T) {
	c := NewImageCanvas()
	DrawText(c, "--", 0, 16, board.White)

	if !isLit(c, CharAdvance, 16) {
		t.Error("second character should start one cell over")
	}
	if isLit(c, FontWidth, 16) {
		t.Error("spacing column should stay dark")
	}
}

func TestDrawTextClipsAtEdge(t *testing.T) {
	c := NewImageCanvas()
	DrawText(c, "WWWW", 60, 16, board.White) // runs off the right edge
	DrawText(c, "W", -3, 16, board.White)    // runs off the left edge
	// No panic and nothing outside bounds is all that matters.
}

func TestRenderFrameDrawsDecorations(t *testing.T) {
	c := NewImageCanvas()
	frame := board.Frame{
		TopRow: []board.Fragment{{Text: "KC", Color: board.Red, X: 2}},
		Underline: &board.Underline{X: 2, Y: board.UnderlineY, Width: 5, Color: board.Red},
		Separators: []board.Separator{{X: 30, Y: board.SeparatorY}},
	}
	RenderFrame(c, frame)

	for dx := 0; dx < 5; dx++ {
		if !isLit(c, 2+dx, board.UnderlineY) {
			t.Fatalf("underline pixel (%d,%d) not lit", 2+dx, board.UnderlineY)
		}
	}
	for dy := 0; dy < board.SeparatorHeight; dy++ {
		if !isLit(c, 30, board.SeparatorY+dy) {
			t.Fatalf("separator pixel (30,%d) not lit", board.SeparatorY+dy)
		}
	}
}

func TestRenderFrameDrawsDiamond(t *testing.T) {
	c := NewImageCanvas()
	frame := board.Frame{
		Diamond: &board.Diamond{X: 24, Y: board.DiamondY, Bases: diamondBases()},
	}
	RenderFrame(c, frame)

	// Second base top point is occupied: bright yellow.
	px := c.At(24+7, board.DiamondY)
	wr, wg, _ := board.BrightYellow.RGB()
	if px.R != wr || px.G != wg {
		t.Errorf("occupied base = %+v, want bright yellow", px)
	}
	// Third base top point is empty: dim gray.
	px = c.At(24+3, board.DiamondY+4)
	dr, _, _ := board.DimGray.RGB()
	if px.R != dr {
		t.Errorf("empty base = %+v, want dim gray", px)
	}
}

func TestRenderFrameClearsPrevious(t *testing.T) {
	c := NewImageCanvas()
	RenderFrame(c, board.Frame{
		TopRow: []board.Fragment{{Text: "8", Color: board.White, X: 10}},
	})
	RenderFrame(c, board.Frame{})

	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if isLit(c, x, y) {
				t.Fatalf("pixel (%d,%d) survived the clear", x, y)
			}
		}
	}
}

func TestRenderStaticTwoLines(t *testing.T) {
	c := NewImageCanvas()
	RenderStatic(c, "No NFL\nGames", board.White)

	lit := 0
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if isLit(c, x, y) {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Fatal("static text rendered nothing")
	}
}

func TestEncodePNG(t *testing.T) {
	c := NewImageCanvas()
	RenderStatic(c, "ERR", board.White)

	var buf bytes.Buffer
	if err := c.EncodePNG(&buf, 1); err != nil {
		t.Fatalf("encode: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != Width || img.Bounds().Dy() != Height {
		t.Errorf("bounds = %v, want %dx%d", img.Bounds(), Width, Height)
	}

	buf.Reset()
	if err := c.EncodePNG(&buf, 4); err != nil {
		t.Fatalf("encode scaled: %v", err)
	}
	img, err = png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode scaled: %v", err)
	}
	if img.Bounds().Dx() != Width*4 || img.Bounds().Dy() != Height*4 {
		t.Errorf("scaled bounds = %v, want %dx%d", img.Bounds(), Width*4, Height*4)
	}
}

func TestGlyphFallback(t *testing.T) {
	if got := glyph('~'); &got[0] != &font5x7['?'][0] {
		t.Error("unknown rune should fall back to the ? glyph")
	}
	if got := glyph('A'); &got[0] != &font5x7['A'][0] {
		t.Error("known rune should return its glyph")
	}
}
