package server

import (
	"log/slog"

	"matrix-scoreboard/internal/config"
	"matrix-scoreboard/internal/domain"
	"matrix-scoreboard/internal/poller"
	"matrix-scoreboard/internal/snapshots"
	"matrix-scoreboard/internal/store"
)

type snapshotComponents struct {
	store  snapshots.Store
	writer *snapshots.Writer
}

// writerOrNil avoids handing the poller a typed-nil interface value.
func (c snapshotComponents) writerOrNil() poller.SnapshotWriter {
	if c.writer == nil {
		return nil
	}
	return c.writer
}

// buildSnapshots wires the on-disk snapshot layer and seeds the store from
// the last run so the panel has scores before the first fetch completes.
func buildSnapshots(cfg config.Config, memoryStore *store.MemoryStore, logger *slog.Logger) snapshotComponents {
	if !cfg.Snapshots.Enabled {
		return snapshotComponents{}
	}

	writer := snapshots.NewWriter(cfg.Snapshots.Dir)
	fsStore := snapshots.NewFSStore(cfg.Snapshots.Dir)
	seedStore(fsStore, memoryStore, logger)

	return snapshotComponents{
		store:  fsStore,
		writer: writer,
	}
}

func seedStore(fsStore snapshots.Store, memoryStore *store.MemoryStore, logger *slog.Logger) {
	for _, sport := range domain.Sports() {
		snap, err := fsStore.LoadGames(sport)
		if err != nil || len(snap.Games) == 0 {
			continue
		}
		memoryStore.SetGames(sport, snap.Games)
		if logger != nil {
			logger.Info("seeded games from snapshot",
				slog.String("sport", string(sport)),
				slog.Int("count", len(snap.Games)),
			)
		}
	}
}
