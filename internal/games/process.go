package games

import (
	"strings"
	"time"

	"matrix-scoreboard/internal/domain"
	"matrix-scoreboard/internal/timeutil"
)

const finalGameMaxAge = 24 * time.Hour

// Process turns raw API records into canonical games: parse-with-defaults,
// status normalization, and the stale-finals filter. Malformed records are
// skipped one at a time; the rest of the batch still goes through.
//
// haveClock reports whether now came from a working time source. Without a
// clock the stale-finals filter is skipped entirely (fail open) so a clock
// fault never blanks the board.
func Process(raws []domain.RawGame, sport domain.Sport, now time.Time, haveClock bool) []domain.Game {
	processed := make([]domain.Game, 0, len(raws))
	for _, raw := range raws {
		if raw == nil {
			continue
		}
		game := parseGame(raw, sport)
		if haveClock && game.Status == domain.StatusFinal {
			if stale, ok := finalIsStale(game.Date, now); stale || !ok {
				// Unknown time context: drop rather than show a game that
				// might be days old.
				continue
			}
		}
		processed = append(processed, game)
	}
	return processed
}

func parseGame(raw domain.RawGame, sport domain.Sport) domain.Game {
	homeScore, _ := rawInt(raw, "home_score", 0)
	awayScore, _ := rawInt(raw, "away_score", 0)
	if homeScore < 0 {
		homeScore = 0
	}
	if awayScore < 0 {
		awayScore = 0
	}

	game := domain.Game{
		HomeTeam:     strings.ToUpper(rawString(raw, "home_abbreviation", "UNK")),
		AwayTeam:     strings.ToUpper(rawString(raw, "away_abbreviation", "UNK")),
		HomeScore:    homeScore,
		AwayScore:    awayScore,
		Status:       Normalize(rawString(raw, "status", ""), raw, sport),
		RawStatus:    strings.TrimSpace(rawString(raw, "status", "")),
		Period:       parsePeriod(raw),
		Clock:        parseClock(raw),
		Date:         rawString(raw, "date", ""),
		Venue:        rawString(raw, "venue", ""),
		HomeRecord:   rawString(raw, "home_record", ""),
		AwayRecord:   rawString(raw, "away_record", ""),
		LastPlay:     rawString(raw, "last_play", ""),
		DownDistance: rawString(raw, "down_distance", ""),
		Possession:   strings.ToUpper(rawString(raw, "possession", "")),
		Sport:        sport,
	}

	if count, ok := rawMap(raw, "count"); ok {
		game.Count = domain.Count{
			Balls:   mapInt(count, "balls"),
			Strikes: mapInt(count, "strikes"),
			Outs:    mapInt(count, "outs"),
			Present: true,
		}
	}
	if bases, ok := rawMap(raw, "bases"); ok {
		game.Bases = domain.Bases{
			First:   mapBool(bases, "first"),
			Second:  mapBool(bases, "second"),
			Third:   mapBool(bases, "third"),
			Present: true,
		}
	}
	return game
}

// parsePeriod synthesizes the display period string. MLB innings combine the
// half ("top"/"bottom") and number into codes like "T1" or "B9"; other sports
// carry a quarter or period value through as-is.
func parsePeriod(raw domain.RawGame) string {
	if hasKey(raw, "inning") && hasKey(raw, "inning_half") {
		inning := rawString(raw, "inning", "")
		half := rawString(raw, "inning_half", "")
		if inning != "" && half != "" {
			return strings.ToUpper(half[:1]) + inning
		}
	}
	if hasKey(raw, "quarter") {
		return rawString(raw, "quarter", "")
	}
	if hasKey(raw, "game_period") {
		return rawString(raw, "game_period", "")
	}
	return ""
}

func parseClock(raw domain.RawGame) string {
	if hasKey(raw, "time_remaining") {
		return rawString(raw, "time_remaining", "")
	}
	if hasKey(raw, "game_clock") {
		return rawString(raw, "game_clock", "")
	}
	return ""
}

// finalIsStale reports whether a final game's date is more than 24h before
// now. The second return is false when the date cannot be parsed. A missing
// date is not a parse failure: the filter only applies to dated games.
func finalIsStale(date string, now time.Time) (stale bool, ok bool) {
	if date == "" {
		return false, true
	}
	ts, err := timeutil.ParseGameTime(date)
	if err != nil {
		return false, false
	}
	return ts.Before(now.Add(-finalGameMaxAge)), true
}
