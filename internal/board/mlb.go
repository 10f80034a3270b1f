package board

import (
	"fmt"
	"strconv"
	"strings"

	"matrix-scoreboard/internal/domain"
	"matrix-scoreboard/internal/layout"
)

type mlbRenderer struct{}

func (mlbRenderer) augment(game domain.Game, pos layout.Positions, frame *Frame, e layout.Engine) (string, bool) {
	markBattingTeam(game, pos, frame, e)

	if game.Bases.Present {
		frame.Diamond = &Diamond{
			X:     pos.CenterX - DiamondHalfOffset,
			Y:     DiamondY,
			Bases: game.Bases,
		}
	}

	if game.Count.Present {
		addCountReadout(game, pos, frame, e)
		// The count owns the bottom row; never show a clock next to it.
		return "", true
	}
	return "", false
}

// markBattingTeam underlines the batting side: a T-prefixed period means the
// away team is up, B-prefixed means home.
func markBattingTeam(game domain.Game, pos layout.Positions, frame *Frame, e layout.Engine) {
	if game.Period == "" {
		return
	}
	switch strings.ToUpper(game.Period[:1]) {
	case "T":
		away := strings.ToUpper(game.AwayTeam)
		frame.Underline = &Underline{
			X:     pos.AwayX,
			Y:     UnderlineY,
			Width: e.Measure(displayCode(away, "AWY")) - 1,
			Color: TeamColor(away, domain.SportMLB),
		}
	case "B":
		home := strings.ToUpper(game.HomeTeam)
		frame.Underline = &Underline{
			X:     pos.HomeX,
			Y:     UnderlineY,
			Width: e.Measure(displayCode(home, "HOM")) - 1,
			Color: TeamColor(home, domain.SportMLB),
		}
	}
}

// addCountReadout puts B/S/O tokens under the away score, the center, and
// the home score respectively.
func addCountReadout(game domain.Game, pos layout.Positions, frame *Frame, e layout.Engine) {
	awayScoreW := e.Measure(strconv.Itoa(game.AwayScore))
	homeScoreW := e.Measure(strconv.Itoa(game.HomeScore))

	balls := fmt.Sprintf("B%d", game.Count.Balls)
	strikes := fmt.Sprintf("S%d", game.Count.Strikes)
	outs := fmt.Sprintf("O%d", game.Count.Outs)

	frame.BottomRow = append(frame.BottomRow,
		Fragment{Text: balls, Color: DimGray, X: pos.AwayScoreX + awayScoreW/2 - e.Measure(balls)/2},
		Fragment{Text: strikes, Color: DimGray, X: e.Center(strikes, pos.CenterX)},
		Fragment{Text: outs, Color: DimGray, X: pos.HomeScoreX + homeScoreW/2 - e.Measure(outs)/2},
	)
}
