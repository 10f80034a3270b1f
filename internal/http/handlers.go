// Package http exposes the debug and control surface: health probes, the
// current scoreboard as JSON, a PNG preview of the panel, and the same
// sport/mode controls the hardware buttons drive.
package http

import (
	"encoding/json"
	"log/slog"
	nethttp "net/http"
	"strconv"
	"strings"

	"matrix-scoreboard/internal/board"
	"matrix-scoreboard/internal/domain"
	"matrix-scoreboard/internal/matrix"
	"matrix-scoreboard/internal/poller"
	"matrix-scoreboard/internal/store"
)

const (
	defaultFrameScale = 4
	maxFrameScale     = 16
)

// ControlSurface is the subset of the display manager the control endpoint
// drives.
type ControlSurface interface {
	NextSport() store.Selection
	ToggleMode() store.Mode
	Redraw()
}

// StatusSource reports poller health for the readiness probe.
type StatusSource interface {
	Status() poller.Status
}

// Handler wires HTTP routes to the scoreboard internals.
type Handler struct {
	store    *store.MemoryStore
	selector *store.Selector
	controls ControlSurface
	status   StatusSource
	logger   *slog.Logger
	builder  *board.Builder
}

// NewHandler constructs a Handler.
func NewHandler(st *store.MemoryStore, selector *store.Selector, controls ControlSurface, status StatusSource, logger *slog.Logger) *Handler {
	return &Handler{
		store:    st,
		selector: selector,
		controls: controls,
		status:   status,
		logger:   logger,
		builder:  board.NewBuilder(),
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"})
}

// Ready reports whether the poller has fetched recently.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	status := h.status.Status()
	if !status.IsReady() {
		h.writeJSON(w, nethttp.StatusServiceUnavailable, map[string]any{
			"ready":                false,
			"consecutive_failures": status.ConsecutiveFailures,
			"last_error":           status.LastError,
		})
		return
	}
	h.writeJSON(w, nethttp.StatusOK, map[string]any{"ready": true})
}

type gamesResponse struct {
	Sport domain.Sport  `json:"sport,omitempty"`
	Games []domain.Game `json:"games"`
}

// Games returns the stored scoreboard, optionally filtered by ?sport=.
func (h *Handler) Games(w nethttp.ResponseWriter, r *nethttp.Request) {
	raw := strings.ToUpper(r.URL.Query().Get("sport"))
	if raw == "" {
		h.writeJSON(w, nethttp.StatusOK, gamesResponse{Games: h.store.AllGames()})
		return
	}

	sport := domain.Sport(raw)
	if !sport.Valid() {
		h.writeError(w, nethttp.StatusBadRequest, "unknown sport "+raw)
		return
	}
	h.writeJSON(w, nethttp.StatusOK, gamesResponse{Sport: sport, Games: h.store.Games(sport)})
}

// FramePNG renders the game under the rotation cursor as a PNG preview.
func (h *Handler) FramePNG(w nethttp.ResponseWriter, r *nethttp.Request) {
	scale := defaultFrameScale
	if raw := r.URL.Query().Get("scale"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxFrameScale {
			h.writeError(w, nethttp.StatusBadRequest, "scale must be 1-16")
			return
		}
		scale = parsed
	}

	canvas := matrix.NewImageCanvas()
	if game, ok := h.selector.Current(); ok {
		frame := h.builder.Build(game, domain.Sport(h.selector.Selection()))
		matrix.RenderFrame(canvas, frame)
	} else {
		matrix.RenderStatic(canvas, "No Games", board.White)
	}

	w.Header().Set("Content-Type", "image/png")
	if err := canvas.EncodePNG(w, scale); err != nil && h.logger != nil {
		h.logger.Error("failed to encode frame", "error", err)
	}
}

type controlsRequest struct {
	Action string `json:"action"`
}

type controlsResponse struct {
	Selection store.Selection `json:"selection"`
	Mode      store.Mode      `json:"mode"`
}

// Controls drives the sport and mode toggles, mirroring the hardware
// buttons.
func (h *Handler) Controls(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodPost {
		h.writeError(w, nethttp.StatusMethodNotAllowed, "POST required")
		return
	}

	var req controlsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, nethttp.StatusBadRequest, "invalid JSON body")
		return
	}

	switch req.Action {
	case "next_sport":
		h.controls.NextSport()
	case "toggle_mode":
		h.controls.ToggleMode()
	case "redraw":
		h.controls.Redraw()
	default:
		h.writeError(w, nethttp.StatusBadRequest, "unknown action "+req.Action)
		return
	}

	h.writeJSON(w, nethttp.StatusOK, controlsResponse{
		Selection: h.selector.Selection(),
		Mode:      h.selector.Mode(),
	})
}

func (h *Handler) writeJSON(w nethttp.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && h.logger != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(w nethttp.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
