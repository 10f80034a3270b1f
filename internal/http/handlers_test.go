package http

import (
	"encoding/json"
	"image/png"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"matrix-scoreboard/internal/domain"
	"matrix-scoreboard/internal/poller"
	"matrix-scoreboard/internal/store"
)

type stubControls struct {
	selector *store.Selector
	redraws  int
}

func (s *stubControls) NextSport() store.Selection { return s.selector.NextSport() }
func (s *stubControls) ToggleMode() store.Mode     { return s.selector.ToggleMode() }
func (s *stubControls) Redraw()                    { s.redraws++ }

type stubStatus struct {
	status poller.Status
}

func (s *stubStatus) Status() poller.Status { return s.status }

func newTestHandler(t *testing.T, ready bool) (*Handler, *store.MemoryStore, *stubControls) {
	t.Helper()
	st := store.NewMemoryStore()
	st.SetGames(domain.SportNFL, []domain.Game{
		{HomeTeam: "KC", AwayTeam: "BUF", HomeScore: 17, AwayScore: 14,
			Status: domain.StatusInProgress, Period: "2", Clock: "8:45",
			Sport: domain.SportNFL},
	})
	selector := store.NewSelector(st)
	controls := &stubControls{selector: selector}

	status := poller.Status{}
	if ready {
		status.LastSuccess = time.Now()
	}
	h := NewHandler(st, selector, controls, &stubStatus{status: status}, nil)
	return h, st, controls
}

func TestHealth(t *testing.T) {
	h, _, _ := newTestHandler(t, true)
	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(nethttp.MethodGet, "/healthz", nil))

	if rec.Code != nethttp.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestReady(t *testing.T) {
	h, _, _ := newTestHandler(t, true)
	rec := httptest.NewRecorder()
	h.Ready(rec, httptest.NewRequest(nethttp.MethodGet, "/readyz", nil))
	if rec.Code != nethttp.StatusOK {
		t.Fatalf("ready status = %d, want 200", rec.Code)
	}

	h, _, _ = newTestHandler(t, false)
	rec = httptest.NewRecorder()
	h.Ready(rec, httptest.NewRequest(nethttp.MethodGet, "/readyz", nil))
	if rec.Code != nethttp.StatusServiceUnavailable {
		t.Fatalf("not-ready status = %d, want 503", rec.Code)
	}
}

func TestGamesAllSports(t *testing.T) {
	h, _, _ := newTestHandler(t, true)
	rec := httptest.NewRecorder()
	h.Games(rec, httptest.NewRequest(nethttp.MethodGet, "/games", nil))

	var resp gamesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Games) != 1 || resp.Games[0].HomeTeam != "KC" {
		t.Fatalf("games = %+v", resp.Games)
	}
}

func TestGamesFilteredBySport(t *testing.T) {
	h, _, _ := newTestHandler(t, true)

	rec := httptest.NewRecorder()
	h.Games(rec, httptest.NewRequest(nethttp.MethodGet, "/games?sport=nfl", nil))
	var resp gamesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Sport != domain.SportNFL || len(resp.Games) != 1 {
		t.Fatalf("resp = %+v", resp)
	}

	rec = httptest.NewRecorder()
	h.Games(rec, httptest.NewRequest(nethttp.MethodGet, "/games?sport=XFL", nil))
	if rec.Code != nethttp.StatusBadRequest {
		t.Fatalf("unknown sport status = %d, want 400", rec.Code)
	}
}

func TestFramePNG(t *testing.T) {
	h, _, _ := newTestHandler(t, true)
	rec := httptest.NewRecorder()
	h.FramePNG(rec, httptest.NewRequest(nethttp.MethodGet, "/frame.png?scale=2", nil))

	if rec.Code != nethttp.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("content type = %q", ct)
	}
	img, err := png.Decode(rec.Body)
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	if img.Bounds().Dx() != 128 || img.Bounds().Dy() != 64 {
		t.Errorf("bounds = %v, want 128x64", img.Bounds())
	}
}

func TestFramePNGBadScale(t *testing.T) {
	h, _, _ := newTestHandler(t, true)
	rec := httptest.NewRecorder()
	h.FramePNG(rec, httptest.NewRequest(nethttp.MethodGet, "/frame.png?scale=99", nil))
	if rec.Code != nethttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestControlsNextSport(t *testing.T) {
	h, _, _ := newTestHandler(t, true)
	body := strings.NewReader(`{"action":"next_sport"}`)
	rec := httptest.NewRecorder()
	h.Controls(rec, httptest.NewRequest(nethttp.MethodPost, "/controls", body))

	var resp controlsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Selection != store.Selection(domain.SportNFL) {
		t.Errorf("selection = %s, want NFL", resp.Selection)
	}
}

func TestControlsToggleMode(t *testing.T) {
	h, _, _ := newTestHandler(t, true)
	body := strings.NewReader(`{"action":"toggle_mode"}`)
	rec := httptest.NewRecorder()
	h.Controls(rec, httptest.NewRequest(nethttp.MethodPost, "/controls", body))

	var resp controlsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Mode != store.ModeLive {
		t.Errorf("mode = %s, want LIVE", resp.Mode)
	}
}

func TestControlsRejectsGet(t *testing.T) {
	h, _, _ := newTestHandler(t, true)
	rec := httptest.NewRecorder()
	h.Controls(rec, httptest.NewRequest(nethttp.MethodGet, "/controls", nil))
	if rec.Code != nethttp.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}

func TestControlsUnknownAction(t *testing.T) {
	h, _, _ := newTestHandler(t, true)
	body := strings.NewReader(`{"action":"reboot"}`)
	rec := httptest.NewRecorder()
	h.Controls(rec, httptest.NewRequest(nethttp.MethodPost, "/controls", body))
	if rec.Code != nethttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestRouterRoutes(t *testing.T) {
	h, _, _ := newTestHandler(t, true)
	router := NewRouter(h)

	for _, path := range []string{"/healthz", "/readyz", "/games", "/frame.png"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(nethttp.MethodGet, path, nil))
		if rec.Code == nethttp.StatusNotFound {
			t.Errorf("%s not routed", path)
		}
	}
}
