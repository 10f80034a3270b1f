package slimapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"matrix-scoreboard/internal/domain"
	"matrix-scoreboard/internal/providers"
)

func TestFetchGamesDecodesPayload(t *testing.T) {
	var gotPath, gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("api_key")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"games":[{"home_abbreviation":"KC","home_score":17}]}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, APIKey: "secret"})
	games, err := c.FetchGames(context.Background(), domain.SportNFL)
	if err != nil {
		t.Fatalf("FetchGames: %v", err)
	}
	if gotPath != "/nfl/scores" {
		t.Errorf("path = %q, want /nfl/scores", gotPath)
	}
	if gotKey != "secret" {
		t.Errorf("api_key = %q, want secret", gotKey)
	}
	if len(games) != 1 || games[0]["home_abbreviation"] != "KC" {
		t.Fatalf("unexpected games %+v", games)
	}
	if score, ok := games[0]["home_score"].(float64); !ok || score != 17 {
		t.Errorf("home_score = %v, want float64 17", games[0]["home_score"])
	}
}

func TestFetchGamesRateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "30")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	_, err := c.FetchGames(context.Background(), domain.SportMLB)
	rl, ok := providers.AsRateLimitError(err)
	if !ok {
		t.Fatalf("expected RateLimitError, got %v", err)
	}
	if rl.StatusCode != http.StatusTooManyRequests {
		t.Errorf("status = %d, want 429", rl.StatusCode)
	}
	if rl.RetryAfter.Seconds() != 30 {
		t.Errorf("retry after = %v, want 30s", rl.RetryAfter)
	}
}

func TestFetchGamesUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream broke", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	if _, err := c.FetchGames(context.Background(), domain.SportNBA); err == nil {
		t.Fatal("expected error for 502 response")
	}
}

func TestFetchGamesNoKeyOmitsQuery(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"games":[]}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	if _, err := c.FetchGames(context.Background(), domain.SportNHL); err != nil {
		t.Fatalf("FetchGames: %v", err)
	}
	if gotQuery != "" {
		t.Errorf("query = %q, want empty", gotQuery)
	}
}

func TestNormalizeBaseURL(t *testing.T) {
	if got := normalizeBaseURL(""); got != defaultBaseURL {
		t.Errorf("empty base = %q, want default", got)
	}
	if got := normalizeBaseURL("http://x/api/"); got != "http://x/api" {
		t.Errorf("trailing slash not trimmed: %q", got)
	}
}
