// Package store keeps the latest processed scoreboard in memory and decides
// which game the panel shows next.
package store

import (
	"sync"

	"matrix-scoreboard/internal/domain"
)

// MemoryStore keeps a thread-safe snapshot of processed games per sport.
type MemoryStore struct {
	mu    sync.RWMutex
	games map[domain.Sport][]domain.Game
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		games: make(map[domain.Sport][]domain.Game),
	}
}

// SetGames replaces the snapshot for one sport. An empty batch is a valid
// snapshot (no games today); callers decide whether to keep stale data.
func (s *MemoryStore) SetGames(sport domain.Sport, games []domain.Game) {
	copied := make([]domain.Game, len(games))
	copy(copied, games)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[sport] = copied
}

// Games returns a copy of the current snapshot for one sport, preserving
// upstream order.
func (s *MemoryStore) Games(sport domain.Sport) []domain.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()

	current := s.games[sport]
	result := make([]domain.Game, len(current))
	copy(result, current)
	return result
}

// AllGames returns every stored game across sports in the fixed sport
// rotation order.
func (s *MemoryStore) AllGames() []domain.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Game, 0)
	for _, sport := range domain.Sports() {
		result = append(result, s.games[sport]...)
	}
	return result
}

// Len reports the total number of stored games.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, games := range s.games {
		total += len(games)
	}
	return total
}
