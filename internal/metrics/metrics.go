package metrics

import (
	"sync"
	"time"

	"matrix-scoreboard/internal/domain"
)

type fetchStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
	lastGameCount   int
}

type renderStats struct {
	frames      int
	buildErrors int
	lastLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about provider fetches and
// frame rendering. It is intentionally simple so it can be swapped for a real
// backend later; when OTel is configured the same events also flow there.
type Recorder struct {
	mu     sync.Mutex
	fetch  map[domain.Sport]*fetchStats
	render renderStats
	otel   *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		fetch: make(map[domain.Sport]*fetchStats),
		otel:  otel,
	}
}

// RecordFetch increments counters for one provider fetch and stores the last
// observed latency and game count.
func (r *Recorder) RecordFetch(sport domain.Sport, duration time.Duration, count int, err error) {
	if r == nil {
		return
	}

	stats := r.ensureFetch(sport)
	r.mu.Lock()
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	} else {
		stats.lastGameCount = count
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordFetch(sport, duration, err)
	}
}

// RecordRateLimit tracks that a fetch hit a rate limit and stores the last Retry-After.
func (r *Recorder) RecordRateLimit(sport domain.Sport, retryAfter time.Duration) {
	if r == nil {
		return
	}

	stats := r.ensureFetch(sport)
	r.mu.Lock()
	stats.rateLimitHits++
	if retryAfter > 0 {
		stats.lastRetryAfter = retryAfter
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRateLimit(sport, retryAfter)
	}
}

// RecordFrame tracks one rendered frame, or a build failure that degraded to
// the error frame.
func (r *Recorder) RecordFrame(duration time.Duration, buildErr bool) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.render.frames++
	r.render.lastLatency = duration
	if buildErr {
		r.render.buildErrors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordFrame(duration, buildErr)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics for the debug server.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// FetchSnapshot is a copy of the current fetch stats for one sport.
type FetchSnapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
	LastGameCount   int
}

func (r *Recorder) FetchStats(sport domain.Sport) FetchSnapshot {
	if r == nil {
		return FetchSnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stats, ok := r.fetch[sport]
	if !ok {
		return FetchSnapshot{}
	}
	return FetchSnapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		RateLimitHits:   stats.rateLimitHits,
		LastRetryAfter:  stats.lastRetryAfter,
		LastCallLatency: stats.lastCallLatency,
		LastGameCount:   stats.lastGameCount,
	}
}

// RenderSnapshot is a copy of the current frame rendering stats.
type RenderSnapshot struct {
	Frames      int
	BuildErrors int
	LastLatency time.Duration
}

func (r *Recorder) RenderStats() RenderSnapshot {
	if r == nil {
		return RenderSnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return RenderSnapshot{
		Frames:      r.render.frames,
		BuildErrors: r.render.buildErrors,
		LastLatency: r.render.lastLatency,
	}
}

func (r *Recorder) ensureFetch(sport domain.Sport) *fetchStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.fetch[sport]
	if !ok {
		stats = &fetchStats{}
		r.fetch[sport] = stats
	}
	return stats
}
