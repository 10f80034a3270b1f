package server

import (
	"log/slog"

	"matrix-scoreboard/internal/config"
	"matrix-scoreboard/internal/matrix"
)

// buildCanvas selects the panel driver. A failed GPIO setup falls back to the
// in-memory canvas so the HTTP preview keeps working on dev machines.
func buildCanvas(cfg config.Config, logger *slog.Logger) matrix.Canvas {
	if cfg.Matrix.Driver != "hub75" {
		return matrix.NewImageCanvas()
	}

	hwCfg := matrix.DefaultHUB75Config()
	if cfg.Matrix.Chip != "" {
		hwCfg.Chip = cfg.Matrix.Chip
	}
	canvas, err := matrix.NewHUB75Canvas(hwCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("hub75 setup failed, falling back to image canvas", "error", err)
		}
		return matrix.NewImageCanvas()
	}
	return canvas
}
