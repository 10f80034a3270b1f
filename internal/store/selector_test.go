package store

import (
	"testing"

	"matrix-scoreboard/internal/domain"
)

func seededStore() *MemoryStore {
	s := NewMemoryStore()
	s.SetGames(domain.SportNFL, []domain.Game{
		game("KC", "BUF", domain.StatusInProgress, domain.SportNFL),
		game("DAL", "PHI", domain.StatusScheduled, domain.SportNFL),
		game("NE", "NYJ", domain.StatusFinal, domain.SportNFL),
	})
	s.SetGames(domain.SportNHL, []domain.Game{
		game("TOR", "MTL", domain.StatusSuspended, domain.SportNHL),
	})
	return s
}

func TestSelectorStartsOnAllSports(t *testing.T) {
	sel := NewSelector(seededStore())
	if sel.Selection() != SelectionSports {
		t.Errorf("selection = %s, want SPORTS", sel.Selection())
	}
	if sel.Mode() != ModeAll {
		t.Errorf("mode = %s, want ALL", sel.Mode())
	}
	if sel.VisibleCount() != 4 {
		t.Errorf("visible = %d, want 4", sel.VisibleCount())
	}
}

func TestSelectorAdvanceWraps(t *testing.T) {
	sel := NewSelector(seededStore())
	sel.SetSelection(Selection(domain.SportNFL))

	var seen []string
	for i := 0; i < 4; i++ {
		g, ok := sel.Current()
		if !ok {
			t.Fatal("expected a game")
		}
		seen = append(seen, g.HomeTeam)
		sel.Advance()
	}
	want := []string{"KC", "DAL", "NE", "KC"}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("rotation = %v, want %v", seen, want)
		}
	}
}

func TestSelectorLiveModeFilters(t *testing.T) {
	sel := NewSelector(seededStore())
	sel.SetSelection(Selection(domain.SportNFL))
	sel.SetMode(ModeLive)

	if sel.VisibleCount() != 1 {
		t.Fatalf("live visible = %d, want 1", sel.VisibleCount())
	}
	g, ok := sel.Current()
	if !ok || g.HomeTeam != "KC" {
		t.Errorf("current = %+v, want live KC game", g)
	}
}

func TestSelectorLiveModeFallsBackWhenNothingLive(t *testing.T) {
	s := NewMemoryStore()
	s.SetGames(domain.SportNBA, []domain.Game{
		game("LAL", "BOS", domain.StatusFinal, domain.SportNBA),
		game("GS", "PHX", domain.StatusScheduled, domain.SportNBA),
	})
	sel := NewSelector(s)
	sel.SetSelection(Selection(domain.SportNBA))
	sel.SetMode(ModeLive)

	if sel.VisibleCount() != 2 {
		t.Errorf("visible = %d, want fallback to all 2", sel.VisibleCount())
	}
}

func TestSelectorNextSportCycles(t *testing.T) {
	sel := NewSelector(seededStore())

	order := []Selection{
		Selection(domain.SportNFL),
		Selection(domain.SportNBA),
		Selection(domain.SportNHL),
		Selection(domain.SportMLB),
		SelectionSports,
	}
	for _, want := range order {
		if got := sel.NextSport(); got != want {
			t.Fatalf("NextSport = %s, want %s", got, want)
		}
	}
}

func TestSelectorNextSportResetsRotation(t *testing.T) {
	sel := NewSelector(seededStore())
	sel.SetSelection(Selection(domain.SportNFL))
	sel.Advance()
	sel.NextSport()
	sel.SetSelection(Selection(domain.SportNFL))

	g, ok := sel.Current()
	if !ok || g.HomeTeam != "KC" {
		t.Errorf("rotation should restart at first game, got %+v", g)
	}
}

func TestSelectorEmptyStore(t *testing.T) {
	sel := NewSelector(NewMemoryStore())
	if _, ok := sel.Current(); ok {
		t.Error("empty store should yield no current game")
	}
	sel.Advance()
	if _, ok := sel.Current(); ok {
		t.Error("advance on empty store should stay empty")
	}
}

func TestSelectorIndexClampsAfterShrink(t *testing.T) {
	s := seededStore()
	sel := NewSelector(s)
	sel.SetSelection(Selection(domain.SportNFL))
	sel.Advance()
	sel.Advance()

	s.SetGames(domain.SportNFL, []domain.Game{
		game("KC", "BUF", domain.StatusInProgress, domain.SportNFL),
	})
	g, ok := sel.Current()
	if !ok || g.HomeTeam != "KC" {
		t.Errorf("cursor should clamp into the new snapshot, got %+v ok=%v", g, ok)
	}
}
