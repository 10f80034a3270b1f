package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"matrix-scoreboard/internal/domain"
)

const (
	defaultRetryAttempts   = 3
	defaultInitialInterval = 2 * time.Second
)

// retryingProvider wraps a ScoreProvider with exponential backoff retries.
type retryingProvider struct {
	inner           ScoreProvider
	logger          *slog.Logger
	maxAttempts     int
	initialInterval time.Duration
	name            string
}

// NewRetryingProvider wraps the given provider with retries. If maxAttempts or
// initialInterval are <= 0, defaults are used.
func NewRetryingProvider(inner ScoreProvider, logger *slog.Logger, maxAttempts int, initialInterval time.Duration) ScoreProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if initialInterval <= 0 {
		initialInterval = defaultInitialInterval
	}
	return &retryingProvider{
		inner:           inner,
		logger:          logger,
		maxAttempts:     maxAttempts,
		initialInterval: initialInterval,
		name:            "retry",
	}
}

func (r *retryingProvider) FetchGames(ctx context.Context, sport domain.Sport) ([]domain.RawGame, error) {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = r.initialInterval

	attempt := 0
	operation := func() ([]domain.RawGame, error) {
		attempt++
		return r.inner.FetchGames(ctx, sport)
	}
	notify := func(err error, next time.Duration) {
		logWithProvider(ctx, r.logger, slog.LevelWarn, r.name, "provider fetch retry",
			slog.String("sport", string(sport)),
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", r.maxAttempts),
			slog.Duration("backoff", next),
			slog.Any("err", err),
		)
	}

	wrapped := backoff.WithContext(backoff.WithMaxRetries(policy, uint64(r.maxAttempts-1)), ctx)
	games, err := backoff.RetryNotifyWithData(operation, wrapped, notify)
	if err != nil {
		logWithProvider(ctx, r.logger, slog.LevelWarn, r.name, "provider fetch failed",
			slog.String("sport", string(sport)),
			slog.Int("attempts", attempt),
			slog.Any("err", err),
		)
		return nil, err
	}
	return games, nil
}
