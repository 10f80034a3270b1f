package snapshots

import (
	"fmt"
	"path/filepath"
	"strings"

	"matrix-scoreboard/internal/domain"
)

// GameSnapshotPath builds the path to the last-good snapshot for a sport.
func GameSnapshotPath(basePath string, sport domain.Sport) string {
	return filepath.Join(basePath, "games", fmt.Sprintf("%s.json", strings.ToLower(string(sport))))
}
