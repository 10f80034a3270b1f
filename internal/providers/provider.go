package providers

import (
	"context"

	"matrix-scoreboard/internal/domain"
)

// ScoreProvider defines how upstream scoreboard data is fetched. Records come
// back raw; normalization and filtering happen downstream in the games
// pipeline so a provider swap never changes display semantics.
type ScoreProvider interface {
	FetchGames(ctx context.Context, sport domain.Sport) ([]domain.RawGame, error)
}
