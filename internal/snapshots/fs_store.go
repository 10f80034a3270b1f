package snapshots

import (
	"encoding/json"
	"errors"
	"os"

	"matrix-scoreboard/internal/domain"
)

// Store defines how snapshots are loaded.
type Store interface {
	LoadGames(sport domain.Sport) (SportSnapshot, error)
}

// FSStore loads snapshots from the filesystem.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed snapshot store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// LoadGames reads the last-good snapshot for a sport from disk.
func (s *FSStore) LoadGames(sport domain.Sport) (SportSnapshot, error) {
	if s == nil {
		return SportSnapshot{}, errors.New("snapshot store not configured")
	}
	if !sport.Valid() {
		return SportSnapshot{}, errors.New("invalid sport")
	}

	f, err := os.Open(GameSnapshotPath(s.basePath, sport))
	if err != nil {
		return SportSnapshot{}, err
	}
	defer f.Close()

	var payload SportSnapshot
	if err := json.NewDecoder(f).Decode(&payload); err != nil {
		return SportSnapshot{}, err
	}
	if payload.Sport == "" {
		payload.Sport = sport
	}
	return payload, nil
}
