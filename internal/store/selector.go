package store

import (
	"sync"

	"matrix-scoreboard/internal/domain"
)

// Mode controls which games rotate on the panel.
type Mode string

const (
	// ModeAll rotates through every game of the current selection.
	ModeAll Mode = "ALL"
	// ModeLive rotates through live games only, falling back to all games
	// when nothing is live so the panel never sits empty.
	ModeLive Mode = "LIVE"
)

// Selection is the sport the panel is pinned to. The aggregate selection
// rotates through every sport's games.
type Selection string

// SelectionSports shows games from all sports in rotation order.
const SelectionSports Selection = "SPORTS"

func selections() []Selection {
	out := make([]Selection, 0, len(domain.Sports())+1)
	for _, sport := range domain.Sports() {
		out = append(out, Selection(sport))
	}
	return append(out, SelectionSports)
}

// Selector tracks the current sport selection, display mode, and rotation
// index over the stored games. All methods are safe for concurrent use; the
// poller writes the store while the display loop advances the selector.
type Selector struct {
	mu        sync.Mutex
	store     *MemoryStore
	selection Selection
	mode      Mode
	index     int
}

// NewSelector starts on the all-sports selection showing every game.
func NewSelector(store *MemoryStore) *Selector {
	return &Selector{
		store:     store,
		selection: SelectionSports,
		mode:      ModeAll,
	}
}

// Current returns the game under the rotation cursor without advancing. The
// bool is false when the current selection has no games at all.
func (s *Selector) Current() (domain.Game, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	games := s.visibleLocked()
	if len(games) == 0 {
		return domain.Game{}, false
	}
	if s.index >= len(games) {
		s.index = 0
	}
	return games[s.index], true
}

// Advance moves the rotation cursor to the next visible game.
func (s *Selector) Advance() {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := len(s.visibleLocked())
	if total == 0 {
		s.index = 0
		return
	}
	s.index = (s.index + 1) % total
}

// NextSport cycles to the next sport selection and resets the rotation.
func (s *Selector) NextSport() Selection {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := selections()
	for i, sel := range all {
		if sel == s.selection {
			s.selection = all[(i+1)%len(all)]
			break
		}
	}
	s.index = 0
	return s.selection
}

// ToggleMode flips between showing all games and live games only.
func (s *Selector) ToggleMode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode == ModeAll {
		s.mode = ModeLive
	} else {
		s.mode = ModeAll
	}
	s.index = 0
	return s.mode
}

// SetSelection pins the selector to a specific selection.
func (s *Selector) SetSelection(sel Selection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection = sel
	s.index = 0
}

// SetMode pins the selector to a specific mode.
func (s *Selector) SetMode(mode Mode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = mode
	s.index = 0
}

// Selection reports the current sport selection.
func (s *Selector) Selection() Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection
}

// Mode reports the current display mode.
func (s *Selector) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// VisibleCount reports how many games the rotation currently covers.
func (s *Selector) VisibleCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.visibleLocked())
}

func (s *Selector) visibleLocked() []domain.Game {
	var games []domain.Game
	if s.selection == SelectionSports {
		games = s.store.AllGames()
	} else {
		games = s.store.Games(domain.Sport(s.selection))
	}
	if s.mode != ModeLive {
		return games
	}

	live := make([]domain.Game, 0, len(games))
	for _, g := range games {
		if g.Status.Live() {
			live = append(live, g)
		}
	}
	// Nothing live: fall back to everything so the panel has content.
	if len(live) == 0 {
		return games
	}
	return live
}
