package games

import (
	"testing"

	"matrix-scoreboard/internal/domain"
)

func TestNormalizeTableLookup(t *testing.T) {
	cases := []struct {
		raw  string
		want domain.Status
	}{
		{"Final", domain.StatusFinal},
		{"F", domain.StatusFinal},
		{"final", domain.StatusFinal},
		{"Scheduled", domain.StatusScheduled},
		{"Pre-Game", domain.StatusScheduled},
		{"In Progress", domain.StatusInProgress},
		{"i", domain.StatusInProgress},
		{"Halftime", domain.StatusInProgress},
		{"End of Period", domain.StatusInProgress},
		{"Between Periods", domain.StatusInProgress},
		{"Postponed", domain.StatusPostponed},
		{"PPD", domain.StatusPostponed},
		{"Suspended", domain.StatusSuspended},
		{"Cancelled", domain.StatusCancelled},
		{"Canceled", domain.StatusCancelled},
		{"  final  ", domain.StatusFinal},
	}
	for _, tc := range cases {
		if got := Normalize(tc.raw, domain.RawGame{}, domain.SportNBA); got != tc.want {
			t.Fatalf("Normalize(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestNormalizeKeywordFallback(t *testing.T) {
	scored := domain.RawGame{"home_score": 3.0, "away_score": 2.0}
	cases := []struct {
		raw  string
		want domain.Status
	}{
		{"Rain Delay", domain.StatusDelayed},
		{"Weather Delay", domain.StatusDelayed},
		{"Lightning hold", domain.StatusDelayed},
		{"Delayed Start", domain.StatusDelayed},
		{"Forfeit", domain.StatusCancelled},
		{"Game Abandoned", domain.StatusCancelled},
		{"Voided", domain.StatusCancelled},
	}
	for _, tc := range cases {
		if got := Normalize(tc.raw, scored, domain.SportMLB); got != tc.want {
			t.Fatalf("Normalize(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestNormalizeInference(t *testing.T) {
	cases := []struct {
		name  string
		raw   string
		game  domain.RawGame
		sport domain.Sport
		want  domain.Status
	}{
		{
			name: "zero scores means scheduled",
			raw:  "???", game: domain.RawGame{"home_score": 0.0, "away_score": 0.0},
			sport: domain.SportNFL, want: domain.StatusScheduled,
		},
		{
			name: "empty status zero scores",
			raw:  "", game: domain.RawGame{},
			sport: domain.SportNBA, want: domain.StatusScheduled,
		},
		{
			name: "nfl fourth quarter with scores is final",
			raw:  "wat", game: domain.RawGame{"home_score": 21.0, "away_score": 17.0, "quarter": 4.0},
			sport: domain.SportNFL, want: domain.StatusFinal,
		},
		{
			name: "nba second quarter with scores is delayed",
			raw:  "wat", game: domain.RawGame{"home_score": 50.0, "away_score": 48.0, "quarter": 2.0},
			sport: domain.SportNBA, want: domain.StatusDelayed,
		},
		{
			name: "nhl third period with scores is final",
			raw:  "??", game: domain.RawGame{"home_score": 3.0, "away_score": 1.0, "game_period": 3.0},
			sport: domain.SportNHL, want: domain.StatusFinal,
		},
		{
			name: "mlb ninth inning with scores is final",
			raw:  "??", game: domain.RawGame{"home_score": 5.0, "away_score": 4.0, "inning": 9.0},
			sport: domain.SportMLB, want: domain.StatusFinal,
		},
		{
			name: "mlb fifth inning with scores is delayed",
			raw:  "??", game: domain.RawGame{"home_score": 2.0, "away_score": 1.0, "inning": 5.0},
			sport: domain.SportMLB, want: domain.StatusDelayed,
		},
		{
			name: "score coercion failure is delayed",
			raw:  "??", game: domain.RawGame{"home_score": "abc", "away_score": 2.0},
			sport: domain.SportNBA, want: domain.StatusDelayed,
		},
		{
			name: "garbage period with scores is delayed",
			raw:  "??", game: domain.RawGame{"home_score": 10.0, "away_score": 7.0, "quarter": "OT"},
			sport: domain.SportNFL, want: domain.StatusDelayed,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.raw, tc.game, tc.sport); got != tc.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}

// Normalize must return a canonical member for any input whatsoever.
func TestNormalizeTotality(t *testing.T) {
	inputs := []string{"", " ", "garbage", "FINAL!!!", "🎉", "0", "delaydelay", "rainrainrain", "x"}
	games := []domain.RawGame{nil, {}, {"home_score": "x"}, {"home_score": 99.0, "away_score": 1.0}}
	for _, in := range inputs {
		for _, g := range games {
			for _, sport := range domain.Sports() {
				got := Normalize(in, g, sport)
				if !got.Valid() {
					t.Fatalf("Normalize(%q, %v, %s) = %q, not canonical", in, g, sport, got)
				}
			}
		}
	}
}
