package providers

import (
	"context"
	"log/slog"
	"sync"

	"matrix-scoreboard/internal/domain"
)

// cachingProvider keeps the last successful batch per sport and serves it
// when the wrapped provider fails, so a flaky upstream degrades to stale
// scores instead of a blank board.
type cachingProvider struct {
	inner  ScoreProvider
	logger *slog.Logger

	mu   sync.Mutex
	last map[domain.Sport][]domain.RawGame
}

// NewCachingProvider wraps the given provider with a last-good cache.
func NewCachingProvider(inner ScoreProvider, logger *slog.Logger) ScoreProvider {
	return &cachingProvider{
		inner:  inner,
		logger: logger,
		last:   make(map[domain.Sport][]domain.RawGame),
	}
}

func (c *cachingProvider) FetchGames(ctx context.Context, sport domain.Sport) ([]domain.RawGame, error) {
	games, err := c.inner.FetchGames(ctx, sport)
	if err == nil {
		if len(games) > 0 {
			c.store(sport, games)
		}
		return games, nil
	}

	if cached, ok := c.load(sport); ok {
		logWithProvider(ctx, c.logger, slog.LevelWarn, "cache", "serving cached games after fetch failure",
			slog.String("sport", string(sport)),
			slog.Int("count", len(cached)),
			slog.Any("err", err),
		)
		return cached, nil
	}
	return nil, err
}

func (c *cachingProvider) store(sport domain.Sport, games []domain.RawGame) {
	copied := make([]domain.RawGame, len(games))
	copy(copied, games)
	c.mu.Lock()
	c.last[sport] = copied
	c.mu.Unlock()
}

func (c *cachingProvider) load(sport domain.Sport) ([]domain.RawGame, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	cached, ok := c.last[sport]
	if !ok {
		return nil, false
	}
	out := make([]domain.RawGame, len(cached))
	copy(out, cached)
	return out, true
}
