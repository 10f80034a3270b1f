package games

import (
	"strings"

	"matrix-scoreboard/internal/domain"
)

// statusTable maps exact (lowercased) API status strings to canonical values.
var statusTable = map[string]domain.Status{
	"final":           domain.StatusFinal,
	"f":               domain.StatusFinal,
	"scheduled":       domain.StatusScheduled,
	"pre-game":        domain.StatusScheduled,
	"in progress":     domain.StatusInProgress,
	"i":               domain.StatusInProgress,
	"halftime":        domain.StatusInProgress,
	"half time":       domain.StatusInProgress,
	"end of period":   domain.StatusInProgress,
	"end period":      domain.StatusInProgress,
	"between periods": domain.StatusInProgress,
	"postponed":       domain.StatusPostponed,
	"ppd":             domain.StatusPostponed,
	"suspended":       domain.StatusSuspended,
	"cancelled":       domain.StatusCancelled,
	"canceled":        domain.StatusCancelled,
}

var delayKeywords = []string{"delay", "rain", "weather", "lightning"}
var cancelKeywords = []string{"void", "forfeit", "abandon"}

// Normalize maps an arbitrary raw status string to a canonical Status,
// falling back to inference from scores and period counters when the string
// is unrecognized. It is total: any input yields a canonical value.
func Normalize(rawStatus string, g domain.RawGame, sport domain.Sport) domain.Status {
	trimmed := strings.TrimSpace(rawStatus)
	if trimmed == "" {
		return inferStatus(g, sport)
	}
	lower := strings.ToLower(trimmed)
	if status, ok := statusTable[lower]; ok {
		return status
	}
	for _, kw := range delayKeywords {
		if strings.Contains(lower, kw) {
			return domain.StatusDelayed
		}
	}
	for _, kw := range cancelKeywords {
		if strings.Contains(lower, kw) {
			return domain.StatusCancelled
		}
	}
	return inferStatus(g, sport)
}

// inferStatus derives a status from game data when the raw string tells us
// nothing. Zero-zero means the game has not started; scores at or past the
// final segment mean it ended with a status we failed to recognize; anything
// else is treated as a delay rather than silently unknown.
func inferStatus(g domain.RawGame, sport domain.Sport) domain.Status {
	homeScore, homeOK := rawInt(g, "home_score", 0)
	awayScore, awayOK := rawInt(g, "away_score", 0)
	if !homeOK || !awayOK {
		return domain.StatusDelayed
	}
	if homeScore == 0 && awayScore == 0 {
		return domain.StatusScheduled
	}
	if reachedFinalSegment(g, sport) {
		return domain.StatusFinal
	}
	return domain.StatusDelayed
}

func reachedFinalSegment(g domain.RawGame, sport domain.Sport) bool {
	switch sport {
	case domain.SportNFL, domain.SportNBA:
		if q, ok := rawInt(g, "quarter", 0); ok && hasKey(g, "quarter") {
			return q >= 4
		}
	case domain.SportNHL:
		if p, ok := rawInt(g, "game_period", 0); ok && hasKey(g, "game_period") {
			return p >= 3
		}
	case domain.SportMLB:
		if in, ok := rawInt(g, "inning", 0); ok && hasKey(g, "inning") {
			return in >= 9
		}
	}
	return false
}
