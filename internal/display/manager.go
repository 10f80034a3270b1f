// Package display runs the render loop: it pulls the current game from the
// selector, builds a frame, and draws it onto the panel, advancing the
// rotation on a fixed cadence.
package display

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"matrix-scoreboard/internal/board"
	"matrix-scoreboard/internal/domain"
	"matrix-scoreboard/internal/matrix"
	"matrix-scoreboard/internal/metrics"
	"matrix-scoreboard/internal/store"
)

const (
	defaultRotateInterval = 7 * time.Second
	// refreshPeriod is how often the framebuffer is scanned out. HUB75
	// panels hold no state, so Show must run continuously.
	refreshPeriod = 10 * time.Millisecond
)

// Manager owns the panel: it is the only writer to the canvas.
type Manager struct {
	selector *store.Selector
	builder  *board.Builder
	canvas   matrix.Canvas
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration

	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool
}

// New constructs a Manager rotating at the given interval.
func New(selector *store.Selector, canvas matrix.Canvas, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Manager {
	if interval <= 0 {
		interval = defaultRotateInterval
	}
	return &Manager{
		selector: selector,
		builder:  board.NewBuilder(),
		canvas:   canvas,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		done:     make(chan struct{}),
	}
}

// Start runs the render and refresh loops until the context is cancelled or
// Stop is called.
func (m *Manager) Start(ctx context.Context) {
	m.startMu.Lock()
	if m.started {
		m.startMu.Unlock()
		return
	}
	m.started = true
	m.startMu.Unlock()

	go m.renderLoop(ctx)
	go m.refreshLoop(ctx)
}

// Stop halts both loops.
func (m *Manager) Stop() {
	m.stopOnce.Do(func() {
		close(m.done)
	})
}

func (m *Manager) renderLoop(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.renderCurrent()
	for {
		select {
		case <-ctx.Done():
			return
		case <-m.done:
			return
		case <-ticker.C:
			m.selector.Advance()
			m.renderCurrent()
		}
	}
}

func (m *Manager) refreshLoop(ctx context.Context) {
	ticker := time.NewTicker(refreshPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-m.done:
			return
		case <-ticker.C:
			if err := m.canvas.Show(); err != nil {
				m.logError("panel refresh failed", err)
			}
		}
	}
}

// renderCurrent draws the game under the cursor, or the empty-board message.
func (m *Manager) renderCurrent() {
	start := time.Now()

	game, ok := m.selector.Current()
	if !ok {
		matrix.RenderStatic(m.canvas, m.emptyMessage(), board.White)
		return
	}

	frame := m.builder.Build(game, domain.Sport(m.selector.Selection()))
	matrix.RenderFrame(m.canvas, frame)
	m.metrics.RecordFrame(time.Since(start), isErrorFrame(frame))

	m.logDebug("rendered game",
		slog.String("home", game.HomeTeam),
		slog.String("away", game.AwayTeam),
		slog.String("status", string(game.Status)),
	)
}

// NextSport flips to the next sport selection and confirms it on the panel.
func (m *Manager) NextSport() store.Selection {
	sel := m.selector.NextSport()
	m.showModeBanner()
	return sel
}

// ToggleMode flips between ALL and LIVE and confirms it on the panel.
func (m *Manager) ToggleMode() store.Mode {
	mode := m.selector.ToggleMode()
	m.showModeBanner()
	return mode
}

// Redraw re-renders the current game immediately, without advancing.
func (m *Manager) Redraw() {
	m.renderCurrent()
}

func (m *Manager) showModeBanner() {
	banner := fmt.Sprintf("%s\n%s", m.selector.Mode(), m.selector.Selection())
	matrix.RenderStatic(m.canvas, banner, board.White)
}

func (m *Manager) emptyMessage() string {
	sel := m.selector.Selection()
	if m.selector.Mode() == store.ModeLive {
		return fmt.Sprintf("No Live\n%s", sel)
	}
	return fmt.Sprintf("No %s\nGames", sel)
}

func isErrorFrame(f board.Frame) bool {
	return len(f.TopRow) == 2 &&
		f.TopRow[0].Text == "ERR" && f.TopRow[1].Text == "ERR"
}

func (m *Manager) logDebug(msg string, args ...any) {
	if m.logger != nil {
		m.logger.Debug(msg, args...)
	}
}

func (m *Manager) logError(msg string, err error) {
	if m.logger != nil {
		m.logger.Error(msg, "error", err)
	}
}
