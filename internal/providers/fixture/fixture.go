// Package fixture serves a static raw scoreboard useful for local testing and
// running the board without an API key. Game dates are derived from the
// current day so finals never age out of the 24h window.
package fixture

import (
	"context"
	"time"

	"matrix-scoreboard/internal/domain"
	"matrix-scoreboard/internal/timeutil"
)

// Provider returns a deterministic set of raw games per sport.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

// FetchGames returns the example scoreboard for one sport.
func (p *Provider) FetchGames(ctx context.Context, sport domain.Sport) ([]domain.RawGame, error) {
	_ = ctx

	day := p.now()
	at := func(hour, min int) string {
		return time.Date(day.Year(), day.Month(), day.Day(), hour, min, 0, 0, day.Location()).
			Format(timeutil.DateTimeLayout)
	}

	switch sport {
	case domain.SportMLB:
		return []domain.RawGame{
			{
				"home_abbreviation": "NYY", "away_abbreviation": "BOS",
				"home_score": 3, "away_score": 2,
				"status": "In Progress", "inning": "5", "inning_half": "bottom",
				"home_record": "45-35", "away_record": "42-38",
				"date":  at(20, 5),
				"count": map[string]any{"balls": 2, "strikes": 1, "outs": 1},
				"bases": map[string]any{"first": true, "second": false, "third": true},
			},
			{
				"home_abbreviation": "LAD", "away_abbreviation": "SF",
				"home_score": 0, "away_score": 0,
				"status": "Scheduled",
				"home_record": "50-30", "away_record": "38-42",
				"date": at(22, 10),
			},
			{
				"home_abbreviation": "CHC", "away_abbreviation": "STL",
				"home_score": 5, "away_score": 3,
				"status": "Final", "game_clock": "0:00",
				"home_record": "40-40", "away_record": "35-45",
				"date": at(19, 5),
			},
			{
				"home_abbreviation": "PHI", "away_abbreviation": "NYM",
				"home_score": 1, "away_score": 1,
				"status": "Rain Delay", "inning": "3", "inning_half": "top",
				"home_record": "42-38", "away_record": "45-35",
				"date": at(19, 10),
			},
			{
				"home_abbreviation": "ATL", "away_abbreviation": "MIA",
				"home_score": 0, "away_score": 0,
				"status": "Postponed",
				"home_record": "46-34", "away_record": "39-41",
				"date": at(19, 5),
			},
			{
				"home_abbreviation": "CLE", "away_abbreviation": "DET",
				"home_score": 6, "away_score": 5,
				"status": "In Progress", "inning": "8", "inning_half": "bottom",
				"home_record": "42-38", "away_record": "40-40",
				"date":  at(19, 20),
				"count": map[string]any{"balls": 3, "strikes": 2, "outs": 2},
				"bases": map[string]any{"first": true, "second": true, "third": false},
			},
		}, nil
	case domain.SportNFL:
		return []domain.RawGame{
			{
				"home_abbreviation": "KC", "away_abbreviation": "BUF",
				"home_score": 17, "away_score": 14,
				"status": "In Progress", "quarter": "2Q", "time_remaining": "8:45",
				"home_record": "8-2", "away_record": "7-3",
				"date":          at(20, 0),
				"down_distance": "2nd & 7", "possession": "KC",
			},
			{
				"home_abbreviation": "DAL", "away_abbreviation": "PHI",
				"home_score": 0, "away_score": 0,
				"status": "Scheduled",
				"home_record": "6-4", "away_record": "5-5",
				"date": at(22, 0),
			},
			{
				"home_abbreviation": "NE", "away_abbreviation": "NYJ",
				"home_score": 24, "away_score": 17,
				"status": "Final", "time_remaining": "0:00",
				"home_record": "4-6", "away_record": "3-7",
				"date": at(19, 0),
			},
			{
				"home_abbreviation": "BAL", "away_abbreviation": "CIN",
				"home_score": 28, "away_score": 28,
				"status": "In Progress", "quarter": "OT", "time_remaining": "12:30",
				"home_record": "7-3", "away_record": "6-4",
				"date": at(20, 30),
			},
		}, nil
	case domain.SportNBA:
		return []domain.RawGame{
			{
				"home_abbreviation": "LAL", "away_abbreviation": "BOS",
				"home_score": 98, "away_score": 95,
				"status": "In Progress", "quarter": "4Q", "time_remaining": "2:15",
				"home_record": "35-15", "away_record": "40-10",
				"date": at(20, 30),
			},
			{
				"home_abbreviation": "GS", "away_abbreviation": "PHX",
				"home_score": 0, "away_score": 0,
				"status": "Scheduled",
				"home_record": "30-20", "away_record": "25-25",
				"date": at(22, 0),
			},
			{
				"home_abbreviation": "MIA", "away_abbreviation": "ORL",
				"home_score": 112, "away_score": 108,
				"status": "Final", "time_remaining": "0:00",
				"home_record": "28-22", "away_record": "26-24",
				"date": at(19, 0),
			},
		}, nil
	case domain.SportNHL:
		return []domain.RawGame{
			{
				"home_abbreviation": "TOR", "away_abbreviation": "MTL",
				"home_score": 2, "away_score": 1,
				"status": "In Progress", "game_period": "2P", "game_clock": "8:45",
				"home_record": "15-8", "away_record": "12-11",
				"date": at(19, 0),
			},
			{
				"home_abbreviation": "BOS", "away_abbreviation": "NYR",
				"home_score": 0, "away_score": 0,
				"status": "Scheduled",
				"home_record": "14-9", "away_record": "13-10",
				"date": at(21, 0),
			},
			{
				"home_abbreviation": "COL", "away_abbreviation": "VGK",
				"home_score": 4, "away_score": 3,
				"status": "Final", "game_clock": "0:00",
				"home_record": "16-7", "away_record": "15-8",
				"date": at(18, 30),
			},
		}, nil
	}
	return []domain.RawGame{}, nil
}
