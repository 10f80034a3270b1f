// Package teststubs holds shared test doubles used across packages.
package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	"matrix-scoreboard/internal/board"
	"matrix-scoreboard/internal/domain"
)

// StubProvider is a test double for providers.ScoreProvider.
type StubProvider struct {
	Games map[domain.Sport][]domain.RawGame
	Err   error
	Calls atomic.Int32
}

// FetchGames returns configured raw games and error while tracking calls.
func (s *StubProvider) FetchGames(ctx context.Context, sport domain.Sport) ([]domain.RawGame, error) {
	_ = ctx
	s.Calls.Add(1)
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Games[sport], nil
}

// StubCanvas is a test double for matrix.Canvas that records draw calls.
type StubCanvas struct {
	mu       sync.Mutex
	pixels   map[[2]int]board.Color
	clears   int
	shows    int
	ShowErr  error
	closed   bool
	CloseErr error
}

func NewStubCanvas() *StubCanvas {
	return &StubCanvas{pixels: make(map[[2]int]board.Color)}
}

func (c *StubCanvas) Size() (int, int) { return 64, 32 }

func (c *StubCanvas) SetPixel(x, y int, col board.Color) {
	c.mu.Lock()
	c.pixels[[2]int{x, y}] = col
	c.mu.Unlock()
}

func (c *StubCanvas) Clear() {
	c.mu.Lock()
	c.pixels = make(map[[2]int]board.Color)
	c.clears++
	c.mu.Unlock()
}

func (c *StubCanvas) Show() error {
	c.mu.Lock()
	c.shows++
	c.mu.Unlock()
	return c.ShowErr
}

func (c *StubCanvas) Close() error {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
	return c.CloseErr
}

// LitPixels reports how many pixels are currently set.
func (c *StubCanvas) LitPixels() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pixels)
}

// Shows reports how many times Show was called.
func (c *StubCanvas) Shows() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.shows
}

// Clears reports how many times Clear was called.
func (c *StubCanvas) Clears() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.clears
}

// Closed reports whether Close was called.
func (c *StubCanvas) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// StubSnapshotWriter records snapshot writes per sport.
type StubSnapshotWriter struct {
	mu     sync.Mutex
	Writes map[domain.Sport][]domain.Game
	Err    error
}

func NewStubSnapshotWriter() *StubSnapshotWriter {
	return &StubSnapshotWriter{Writes: make(map[domain.Sport][]domain.Game)}
}

func (w *StubSnapshotWriter) WriteGamesSnapshot(sport domain.Sport, games []domain.Game) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.Err != nil {
		return w.Err
	}
	w.Writes[sport] = games
	return nil
}
