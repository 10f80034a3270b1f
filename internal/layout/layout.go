// Package layout computes pixel positions for the two-column scoreboard
// layout on a fixed-width canvas. All measurement uses a uniform cell width
// per character; the same model is used for measuring and positioning so the
// columns line up by construction.
package layout

const (
	// DefaultCharWidth is the font advance per character cell in pixels.
	DefaultCharWidth = 6
	// DefaultPadding is the margin between the canvas edge and a column.
	DefaultPadding = 2
	// DefaultCanvasWidth matches the 64x32 matrix panel.
	DefaultCanvasWidth = 64
	// teamCells is the minimum column width in character cells; team
	// abbreviations are at most 3 characters on the board.
	teamCells = 3
)

// Engine measures text and lays out the team/score columns.
type Engine struct {
	CharWidth   int
	Padding     int
	CanvasWidth int
}

// NewEngine returns an Engine with the 64x32 panel defaults.
func NewEngine() Engine {
	return Engine{
		CharWidth:   DefaultCharWidth,
		Padding:     DefaultPadding,
		CanvasWidth: DefaultCanvasWidth,
	}
}

// Measure returns the pixel width of a rendered string. Empty strings
// measure zero; there is no upper bound (the renderer clips).
func (e Engine) Measure(text string) int {
	return len(text) * e.CharWidth
}

// Center returns the x that centers text around the given midpoint.
func (e Engine) Center(text string, mid int) int {
	return mid - e.Measure(text)/2
}

// Positions holds the computed x-coordinates for one game's layout.
type Positions struct {
	AwayX      int
	HomeX      int
	AwayScoreX int
	HomeScoreX int
	CenterX    int
	// ColumnWidth is the reserved span per side, symmetric between columns.
	ColumnWidth int
}

// Layout computes x-positions for the two-column team/score layout. Both
// sides reserve the same column width: the max of the 3-cell minimum and all
// four measured strings, so a wide score on one side widens both columns.
// Team name and score center independently within the column.
func (e Engine) Layout(homeTeam, awayTeam, homeScore, awayScore string) Positions {
	col := teamCells * e.CharWidth
	for _, s := range []string{homeTeam, awayTeam, homeScore, awayScore} {
		if w := e.Measure(s); w > col {
			col = w
		}
	}

	awayLeft := e.Padding
	homeLeft := e.CanvasWidth - e.Padding - col

	centerIn := func(left int, text string) int {
		return left + (col-e.Measure(text))/2
	}

	awayRight := awayLeft + col
	return Positions{
		AwayX:       centerIn(awayLeft, awayTeam),
		HomeX:       centerIn(homeLeft, homeTeam),
		AwayScoreX:  centerIn(awayLeft, awayScore),
		HomeScoreX:  centerIn(homeLeft, homeScore),
		CenterX:     awayRight + (homeLeft-awayRight)/2,
		ColumnWidth: col,
	}
}
