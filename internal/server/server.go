// Package server wires the provider chain, the poller, the display manager,
// and the HTTP surface into one runnable unit.
package server

import (
	"context"
	"log/slog"
	"net/http"

	"matrix-scoreboard/internal/config"
	"matrix-scoreboard/internal/display"
	httpapi "matrix-scoreboard/internal/http"
	"matrix-scoreboard/internal/logging"
	"matrix-scoreboard/internal/matrix"
	"matrix-scoreboard/internal/metrics"
	"matrix-scoreboard/internal/poller"
	"matrix-scoreboard/internal/providers"
	"matrix-scoreboard/internal/store"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	store         *store.MemoryStore
	selector      *store.Selector
	canvas        matrix.Canvas
	display       *display.Manager
	poller        *poller.Poller
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New constructs a server with default provider and canvas wiring.
func New(cfg config.Config, logger *slog.Logger) *Server {
	provider := buildProvider(cfg, logger)
	canvas := buildCanvas(cfg, logger)
	return newServerWith(cfg, logger, provider, canvas)
}

func newServerWith(cfg config.Config, logger *slog.Logger, provider providers.ScoreProvider, canvas matrix.Canvas) *Server {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)

	memoryStore := store.NewMemoryStore()
	selector := store.NewSelector(memoryStore)
	snaps := buildSnapshots(cfg, memoryStore, logger)

	plr := poller.New(provider, memoryStore, snaps.writerOrNil(), logger, recorder, cfg.LivePollInterval, cfg.IdlePollInterval)
	disp := display.New(selector, canvas, logger, recorder, cfg.RotateInterval)
	httpSrv := buildHTTPServer(cfg, memoryStore, selector, disp, plr, logger, recorder)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		store:         memoryStore,
		selector:      selector,
		canvas:        canvas,
		display:       disp,
		poller:        plr,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}
}

func buildProvider(cfg config.Config, logger *slog.Logger) providers.ScoreProvider {
	base := selectProvider(cfg, logger)
	retried := providers.NewRetryingProvider(base, logger, 0, 0)
	return providers.NewCachingProvider(retried, logger)
}

func buildHTTPServer(cfg config.Config, memoryStore *store.MemoryStore, selector *store.Selector, disp *display.Manager, plr *poller.Poller, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	handler := httpapi.NewHandler(memoryStore, selector, disp, plr, logger)
	router := httpapi.NewRouter(handler)
	wrapped := httpapi.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		mux := http.NewServeMux()
		mux.Handle("/metrics", handler)
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + cfg.Metrics.Port,
				Handler: mux,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

// Run starts the poller, the display loops, and the HTTP server, then waits
// for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.display.Start(ctx)
	s.poller.Start(ctx)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.poller.Stop(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("failed to stop poller", "error", err)
	}

	s.display.Stop()

	if s.canvas != nil {
		if err := s.canvas.Close(); err != nil && s.logger != nil {
			s.logger.Warn("canvas close failed", "error", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
