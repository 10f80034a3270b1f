package board

import (
	"matrix-scoreboard/internal/domain"
	"matrix-scoreboard/internal/layout"
)

// sportRenderer augments an in-progress frame with sport-specific
// decorations. The returned override replaces the clock line when ok is
// true; an empty override with ok true suppresses the clock entirely.
type sportRenderer interface {
	augment(game domain.Game, pos layout.Positions, frame *Frame, e layout.Engine) (clockOverride string, ok bool)
}

func rendererFor(sport domain.Sport) sportRenderer {
	switch sport {
	case domain.SportNFL:
		return nflRenderer{}
	case domain.SportMLB:
		return mlbRenderer{}
	}
	return genericRenderer{}
}

// genericRenderer covers NBA and NHL: the shared period+clock path needs no
// extra decoration.
type genericRenderer struct{}

func (genericRenderer) augment(domain.Game, layout.Positions, *Frame, layout.Engine) (string, bool) {
	return "", false
}
