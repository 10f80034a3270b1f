package board

import "matrix-scoreboard/internal/domain"

// Row baseline y-coordinates on the 32px-tall panel.
const (
	RowYTop    = 5
	RowYMiddle = 16
	RowYBottom = 27

	// UnderlineY sits just below the top-row team abbreviations.
	UnderlineY = 9

	// Diamond bitmap geometry: 15x10 indexed bitmap centered on center_x,
	// overlaid slightly above the middle row.
	DiamondWidth      = 15
	DiamondHeight     = 10
	DiamondHalfOffset = 8
	DiamondY          = 11

	// SeparatorY is the vertical position of the 1x4 W-L record rules.
	SeparatorY      = 25
	SeparatorHeight = 4
)

// Fragment is one positioned run of text on a row.
type Fragment struct {
	Text  string
	Color Color
	X     int
}

// Underline is a 1px-tall rule under a team abbreviation, marking NFL
// possession or the MLB batting team.
type Underline struct {
	X     int
	Y     int
	Width int
	Color Color
}

// Separator is a thin vertical rule between the wins and losses of a W-L
// record readout.
type Separator struct {
	X int
	Y int
}

// Diamond is the base-runner overlay. Occupancy is carried as state; the
// indexed bitmap is generated fresh per frame via Pixels.
type Diamond struct {
	X     int
	Y     int
	Bases domain.Bases
}

// Palette indices used by Diamond.Pixels.
const (
	DiamondBackground = 0
	DiamondOccupied   = 1
	DiamondEmpty      = 2
)

// Pixels renders the three-base diamond into a fresh DiamondHeight x
// DiamondWidth indexed bitmap: 0 background, 1 occupied, 2 empty.
func (d Diamond) Pixels() [][]uint8 {
	grid := make([][]uint8, DiamondHeight)
	for y := range grid {
		grid[y] = make([]uint8, DiamondWidth)
	}

	draw := func(startX, startY int, occupied bool) {
		idx := uint8(DiamondEmpty)
		if occupied {
			idx = DiamondOccupied
		}
		// 5x5 diamond: single-pixel points top and bottom, 5px middle row.
		offsets := [][2]int{
			{2, 0},
			{1, 1}, {2, 1}, {3, 1},
			{0, 2}, {1, 2}, {2, 2}, {3, 2}, {4, 2},
			{1, 3}, {2, 3}, {3, 3},
			{2, 4},
		}
		for _, o := range offsets {
			x, y := startX+o[0], startY+o[1]
			if y >= 0 && y < DiamondHeight && x >= 0 && x < DiamondWidth {
				grid[y][x] = idx
			}
		}
	}

	centerX := DiamondWidth / 2
	centerY := DiamondHeight / 2
	draw(centerX-2, 0, d.Bases.Second)          // second base, top
	draw(1, centerY-1, d.Bases.Third)           // third base, left
	draw(DiamondWidth-6, centerY-1, d.Bases.First) // first base, right
	return grid
}

// Frame is the complete positioned output for one game: three text rows at
// fixed baselines plus optional decorations. It is cheap to build and is
// recomputed for every display tick rather than cached.
type Frame struct {
	TopRow     []Fragment
	MiddleRow  []Fragment
	BottomRow  []Fragment
	Underline  *Underline
	Diamond    *Diamond
	Separators []Separator
}
