package board

import (
	"strings"

	"matrix-scoreboard/internal/domain"
	"matrix-scoreboard/internal/layout"
)

const nflClockMax = 10

type nflRenderer struct{}

func (nflRenderer) augment(game domain.Game, pos layout.Positions, frame *Frame, e layout.Engine) (string, bool) {
	markPossession(game, pos, frame, e)

	if game.DownDistance != "" {
		return capLen(compressDownDistance(game.DownDistance), nflClockMax), true
	}
	if strings.Contains(strings.ToLower(game.LastPlay), "timeout") && game.Clock != "" {
		return capLen("TO - "+game.Clock, nflClockMax), true
	}
	return "", false
}

// markPossession underlines the abbreviation of the team holding the ball.
func markPossession(game domain.Game, pos layout.Positions, frame *Frame, e layout.Engine) {
	if game.Possession == "" {
		return
	}
	home := strings.ToUpper(game.HomeTeam)
	away := strings.ToUpper(game.AwayTeam)
	switch game.Possession {
	case home:
		frame.Underline = &Underline{
			X:     pos.HomeX,
			Y:     UnderlineY,
			Width: e.Measure(displayCode(home, "HOM")) - 1,
			Color: TeamColor(home, domain.SportNFL),
		}
	case away:
		frame.Underline = &Underline{
			X:     pos.AwayX,
			Y:     UnderlineY,
			Width: e.Measure(displayCode(away, "AWY")) - 1,
			Color: TeamColor(away, domain.SportNFL),
		}
	}
}

// compressDownDistance squeezes down-and-distance text into the 10-char
// clock slot: "2nd & 7 on KC 35" becomes "2nd&7 on K".
func compressDownDistance(dd string) string {
	s := strings.ReplaceAll(dd, " & ", "&")
	s = strings.ReplaceAll(s, "on", " on ")
	for strings.Contains(s, "  ") {
		s = strings.ReplaceAll(s, "  ", " ")
	}
	return strings.TrimSpace(s)
}

func capLen(s string, max int) string {
	runes := []rune(s)
	if len(runes) > max {
		return string(runes[:max])
	}
	return s
}
