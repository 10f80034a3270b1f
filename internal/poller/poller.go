// Package poller refreshes the scoreboard on an interval, fetching every
// sport from the configured provider and writing processed games into the
// store. The refresh cadence tightens while any game is live.
package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"matrix-scoreboard/internal/domain"
	"matrix-scoreboard/internal/games"
	"matrix-scoreboard/internal/logging"
	"matrix-scoreboard/internal/metrics"
	"matrix-scoreboard/internal/providers"
	"matrix-scoreboard/internal/store"
)

const (
	defaultLiveInterval = 30 * time.Second
	defaultIdleInterval = 5 * time.Minute
)

// SnapshotWriter persists the latest processed games per sport.
type SnapshotWriter interface {
	WriteGamesSnapshot(sport domain.Sport, gamesList []domain.Game) error
}

// Poller fetches all sports on an interval and keeps the store current.
type Poller struct {
	provider     providers.ScoreProvider
	store        *store.MemoryStore
	writer       SnapshotWriter
	logger       *slog.Logger
	metrics      *metrics.Recorder
	liveInterval time.Duration
	idleInterval time.Duration
	now          func() time.Time

	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the poller loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the poller has had a recent success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Poller with sane defaults.
func New(provider providers.ScoreProvider, st *store.MemoryStore, writer SnapshotWriter, logger *slog.Logger, recorder *metrics.Recorder, liveInterval, idleInterval time.Duration) *Poller {
	if liveInterval <= 0 {
		liveInterval = defaultLiveInterval
	}
	if idleInterval <= 0 {
		idleInterval = defaultIdleInterval
	}
	return &Poller{
		provider:     provider,
		store:        st,
		writer:       writer,
		logger:       logger,
		metrics:      recorder,
		liveInterval: liveInterval,
		idleInterval: idleInterval,
		now:          time.Now,
		done:         make(chan struct{}),
	}
}

// Start begins polling until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	go func() {
		p.logInfo("poller started",
			slog.Int64("live_interval_ms", p.liveInterval.Milliseconds()),
			slog.Int64("idle_interval_ms", p.idleInterval.Milliseconds()),
		)
		// Initial fetch to warm the board on boot.
		anyLive := p.fetchAll(ctx)

		timer := time.NewTimer(p.nextInterval(anyLive))
		defer timer.Stop()

		for {
			select {
			case <-ctx.Done():
				p.logInfo("poller stopped")
				return
			case <-p.done:
				p.logInfo("poller stopped")
				return
			case <-timer.C:
				anyLive = p.fetchAll(ctx)
				timer.Reset(p.nextInterval(anyLive))
			}
		}
	}()
}

// Stop halts the polling loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
	})
	return nil
}

// RefreshNow runs one fetch cycle synchronously, outside the timer loop. The
// control endpoint uses it after a sport or mode switch.
func (p *Poller) RefreshNow(ctx context.Context) {
	p.fetchAll(ctx)
}

func (p *Poller) nextInterval(anyLive bool) time.Duration {
	if anyLive {
		return p.liveInterval
	}
	return p.idleInterval
}

// fetchAll refreshes every sport and reports whether any stored game is live.
func (p *Poller) fetchAll(ctx context.Context) bool {
	start := p.now()
	p.recordAttempt(start)

	anyLive := false
	succeeded := 0
	var lastErr error

	for _, sport := range domain.Sports() {
		live, err := p.fetchSport(ctx, sport)
		if err != nil {
			lastErr = err
			continue
		}
		succeeded++
		if live {
			anyLive = true
		}
	}

	if succeeded == 0 {
		p.recordFailure(lastErr, start)
		return anyLive
	}
	p.recordSuccess(start)
	return anyLive
}

func (p *Poller) fetchSport(ctx context.Context, sport domain.Sport) (anyLive bool, err error) {
	start := time.Now()
	raws, err := p.provider.FetchGames(ctx, sport)
	if err != nil {
		p.metrics.RecordFetch(sport, time.Since(start), 0, err)
		if rl, ok := providers.AsRateLimitError(err); ok {
			p.metrics.RecordRateLimit(sport, rl.RetryAfter)
		}
		p.logError("poller fetch failed", err,
			slog.String(logging.FieldSport, string(sport)),
			slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
		)
		return false, err
	}

	processed := games.Process(raws, sport, p.now(), true)
	p.metrics.RecordFetch(sport, time.Since(start), len(processed), nil)
	p.store.SetGames(sport, processed)

	if p.writer != nil {
		if writeErr := p.writer.WriteGamesSnapshot(sport, processed); writeErr != nil {
			p.logError("poller snapshot write failed", writeErr,
				slog.String(logging.FieldSport, string(sport)),
			)
		}
	}

	for _, g := range processed {
		if g.Status.Live() {
			anyLive = true
			break
		}
	}
	p.logInfo("poller refreshed games",
		slog.String(logging.FieldSport, string(sport)),
		slog.Int(logging.FieldCount, len(processed)),
		slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
	)
	return anyLive, nil
}

func (p *Poller) logInfo(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}

func (p *Poller) logError(msg string, err error, attrs ...any) {
	if p.logger != nil {
		p.logger.Error(msg, append(attrs, "error", err)...)
	}
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}
