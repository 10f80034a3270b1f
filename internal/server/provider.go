package server

import (
	"log/slog"

	"matrix-scoreboard/internal/config"
	"matrix-scoreboard/internal/providers"
	"matrix-scoreboard/internal/providers/fixture"
	"matrix-scoreboard/internal/providers/slimapi"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.ScoreProvider {
	switch cfg.Provider {
	case "slimapi", "":
		return slimapi.NewClient(slimapi.Config{
			BaseURL: cfg.SlimAPI.BaseURL,
			APIKey:  cfg.SlimAPI.APIKey,
		})
	case "fixture":
		return fixture.New()
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New()
	}
}
