// Package snapshots persists the last processed scoreboard per sport so a
// restart can show scores before the first fetch completes.
package snapshots

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"matrix-scoreboard/internal/domain"
)

// SportSnapshot is the on-disk payload for one sport.
type SportSnapshot struct {
	Sport     domain.Sport  `json:"sport"`
	UpdatedAt time.Time     `json:"updated_at"`
	Games     []domain.Game `json:"games"`
}

// Writer persists per-sport snapshots. Each sport has exactly one file that
// is overwritten in place, so there is no retention to manage.
type Writer struct {
	basePath string
	now      func() time.Time
}

// NewWriter constructs a writer rooted at basePath.
func NewWriter(basePath string) *Writer {
	return &Writer{
		basePath: basePath,
		now:      time.Now,
	}
}

// BasePath exposes the writer root path (primarily for testing).
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// WriteGamesSnapshot writes the snapshot for one sport atomically. Writing an
// identical payload is skipped to spare flash-backed filesystems.
func (w *Writer) WriteGamesSnapshot(sport domain.Sport, games []domain.Game) error {
	if w == nil {
		return fmt.Errorf("snapshot writer not configured")
	}
	if !sport.Valid() {
		return fmt.Errorf("invalid sport %q", sport)
	}

	payload := SportSnapshot{
		Sport:     sport,
		UpdatedAt: w.now().UTC(),
		Games:     games,
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}

	target := GameSnapshotPath(w.basePath, sport)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	if existing, err := os.ReadFile(target); err == nil && snapshotGamesEqual(existing, data) {
		return nil
	}

	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, target)
}

// snapshotGamesEqual compares two snapshot payloads ignoring the updated_at
// timestamp, so an unchanged scoreboard never rewrites the file.
func snapshotGamesEqual(a, b []byte) bool {
	var sa, sb SportSnapshot
	if err := json.Unmarshal(a, &sa); err != nil {
		return false
	}
	if err := json.Unmarshal(b, &sb); err != nil {
		return false
	}
	ga, err := json.Marshal(sa.Games)
	if err != nil {
		return false
	}
	gb, err := json.Marshal(sb.Games)
	if err != nil {
		return false
	}
	return sa.Sport == sb.Sport && bytes.Equal(ga, gb)
}
