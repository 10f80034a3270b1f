package board

import (
	"reflect"
	"testing"
	"time"

	"matrix-scoreboard/internal/domain"
)

func fixedNow(t *testing.T, value string) func() time.Time {
	t.Helper()
	ts, err := time.Parse("2006-01-02 15:04:05", value)
	if err != nil {
		t.Fatalf("parse now %q: %v", value, err)
	}
	return func() time.Time { return ts }
}

func newTestBuilder(t *testing.T, now string) *Builder {
	t.Helper()
	b := NewBuilder()
	b.now = fixedNow(t, now)
	return b
}

func findText(row []Fragment, text string) (Fragment, bool) {
	for _, f := range row {
		if f.Text == text {
			return f, true
		}
	}
	return Fragment{}, false
}

func TestBuildInProgressMLB(t *testing.T) {
	b := newTestBuilder(t, "2024-06-10 19:30:00")
	game := domain.Game{
		HomeTeam:  "BOS",
		AwayTeam:  "NYY",
		HomeScore: 5,
		AwayScore: 3,
		Status:    domain.StatusInProgress,
		Period:    "B5",
		Clock:     "2:10",
		Count:     domain.Count{Balls: 2, Strikes: 1, Outs: 0, Present: true},
		Bases:     domain.Bases{First: true, Third: true, Present: true},
		Sport:     domain.SportMLB,
	}

	frame := b.Build(game, domain.SportMLB)

	if _, ok := findText(frame.TopRow, "B5"); !ok {
		t.Fatalf("top row missing inning %v", frame.TopRow)
	}
	if _, ok := findText(frame.MiddleRow, "MLB"); ok {
		t.Errorf("live MLB frame should not carry the sport label")
	}

	if frame.Underline == nil {
		t.Fatal("bottom-half inning should underline the home team")
	}
	if frame.Underline.X != 44 || frame.Underline.Y != UnderlineY {
		t.Errorf("underline at (%d,%d), want (44,%d)", frame.Underline.X, frame.Underline.Y, UnderlineY)
	}
	if frame.Underline.Width != 17 {
		t.Errorf("underline width = %d, want 17", frame.Underline.Width)
	}
	if frame.Underline.Color != TeamColor("BOS", domain.SportMLB) {
		t.Errorf("underline color = %#x, want BOS team color", frame.Underline.Color)
	}

	if frame.Diamond == nil {
		t.Fatal("bases present should produce a diamond overlay")
	}
	if frame.Diamond.X != 24 || frame.Diamond.Y != DiamondY {
		t.Errorf("diamond at (%d,%d), want (24,%d)", frame.Diamond.X, frame.Diamond.Y, DiamondY)
	}
	if !frame.Diamond.Bases.First || frame.Diamond.Bases.Second || !frame.Diamond.Bases.Third {
		t.Errorf("diamond bases = %+v, want first and third", frame.Diamond.Bases)
	}

	for _, want := range []struct {
		text string
		x    int
	}{
		{"B2", 5},
		{"S1", 26},
		{"O0", 47},
	} {
		frag, ok := findText(frame.BottomRow, want.text)
		if !ok {
			t.Fatalf("bottom row missing %q: %v", want.text, frame.BottomRow)
		}
		if frag.X != want.x {
			t.Errorf("%s at x=%d, want %d", want.text, frag.X, want.x)
		}
		if frag.Color != DimGray {
			t.Errorf("%s color = %#x, want DimGray", want.text, frag.Color)
		}
	}

	if frag, ok := findText(frame.BottomRow, "2:10"); ok {
		t.Errorf("count readout should suppress the clock, found %+v", frag)
	}
}

func TestBuildInProgressNFLPossession(t *testing.T) {
	b := newTestBuilder(t, "2024-09-15 16:25:00")
	game := domain.Game{
		HomeTeam:     "KC",
		AwayTeam:     "DET",
		HomeScore:    14,
		AwayScore:    10,
		Status:       domain.StatusInProgress,
		Period:       "2",
		Clock:        "8:42",
		DownDistance: "2nd & 7",
		Possession:   "KC",
		Sport:        domain.SportNFL,
	}

	frame := b.Build(game, domain.SportNFL)

	if frame.Underline == nil {
		t.Fatal("possession should underline the home team")
	}
	if frame.Underline.X != 47 {
		t.Errorf("underline x = %d, want 47", frame.Underline.X)
	}
	if frame.Underline.Width != 11 {
		t.Errorf("underline width = %d, want 11", frame.Underline.Width)
	}

	frag, ok := findText(frame.BottomRow, "2nd&7")
	if !ok {
		t.Fatalf("bottom row missing compressed down-distance: %v", frame.BottomRow)
	}
	if frag.Color != White {
		t.Errorf("down-distance color = %#x, want White", frag.Color)
	}
	if _, ok := findText(frame.BottomRow, "8:42"); ok {
		t.Error("down-distance should replace the clock")
	}
}

func TestBuildNFLTimeout(t *testing.T) {
	b := newTestBuilder(t, "2024-09-15 16:25:00")
	game := domain.Game{
		HomeTeam: "KC",
		AwayTeam: "DET",
		Status:   domain.StatusInProgress,
		Period:   "3",
		Clock:    "4:18",
		LastPlay: "Timeout #2 by DET at 04:18.",
		Sport:    domain.SportNFL,
	}

	frame := b.Build(game, domain.SportNFL)

	if _, ok := findText(frame.BottomRow, "TO - 4:18"); !ok {
		t.Fatalf("bottom row missing timeout readout: %v", frame.BottomRow)
	}
}

func TestBuildRainDelayKeepsScores(t *testing.T) {
	b := newTestBuilder(t, "2024-06-10 19:30:00")
	game := domain.Game{
		HomeTeam:  "CHC",
		AwayTeam:  "STL",
		HomeScore: 2,
		AwayScore: 3,
		Status:    domain.StatusDelayed,
		RawStatus: "Rain Delay",
		Sport:     domain.SportMLB,
	}

	frame := b.Build(game, domain.SportMLB)

	away, okA := findText(frame.MiddleRow, "3")
	home, okB := findText(frame.MiddleRow, "2")
	if !okA || !okB {
		t.Fatalf("rain delay with scores should keep them in the middle row: %v", frame.MiddleRow)
	}
	if away.Color != White || home.Color != White {
		t.Error("held scores should render white")
	}
	if len(frame.MiddleRow) != 2 {
		t.Errorf("middle row should hold only the scores, got %v", frame.MiddleRow)
	}

	label, ok := findText(frame.BottomRow, "RAIN DELAY")
	if !ok {
		t.Fatalf("bottom row missing status label: %v", frame.BottomRow)
	}
	if label.Color != DimGray {
		t.Errorf("label color = %#x, want DimGray", label.Color)
	}
	if len(frame.BottomRow) != 1 {
		t.Errorf("bottom row should hold only the label, got %v", frame.BottomRow)
	}
}

func TestBuildPostponedShowsRecords(t *testing.T) {
	b := newTestBuilder(t, "2024-06-10 19:30:00")
	game := domain.Game{
		HomeTeam:   "SEA",
		AwayTeam:   "TEX",
		Status:     domain.StatusPostponed,
		RawStatus:  "Postponed",
		HomeRecord: "33-30",
		AwayRecord: "35-28",
		Sport:      domain.SportMLB,
	}

	frame := b.Build(game, domain.SportMLB)

	if _, ok := findText(frame.MiddleRow, "POSTPONED"); !ok {
		t.Fatalf("middle row missing label: %v", frame.MiddleRow)
	}
	if _, ok := findText(frame.BottomRow, "35"); !ok {
		t.Errorf("postponed game without scores should show records: %v", frame.BottomRow)
	}
	if len(frame.Separators) != 2 {
		t.Errorf("records readout should carry two separators, got %d", len(frame.Separators))
	}
}

func TestBuildScheduledFutureGame(t *testing.T) {
	b := newTestBuilder(t, "2024-09-18 12:00:00")
	game := domain.Game{
		HomeTeam: "GB",
		AwayTeam: "MIN",
		Status:   domain.StatusScheduled,
		Date:     "2024-09-21 20:05:00",
		Sport:    domain.SportNFL,
	}

	frame := b.Build(game, domain.SportNFL)

	if _, ok := findText(frame.TopRow, "NFL"); !ok {
		t.Fatalf("scheduled top row missing league label: %v", frame.TopRow)
	}
	for _, f := range frame.MiddleRow {
		if f.Text == "0" {
			t.Error("scheduled game must not show zero scores")
		}
	}
	if _, ok := findText(frame.MiddleRow, "9/21"); !ok {
		t.Errorf("non-today scheduled game should carry the date: %v", frame.MiddleRow)
	}
	start, ok := findText(frame.BottomRow, "8:05PM")
	if !ok {
		t.Fatalf("bottom row missing start time: %v", frame.BottomRow)
	}
	if start.Color != DimGray {
		t.Errorf("start time color = %#x, want DimGray", start.Color)
	}
}

func TestBuildScheduledTodayOmitsDate(t *testing.T) {
	b := newTestBuilder(t, "2024-09-21 09:00:00")
	game := domain.Game{
		HomeTeam: "GB",
		AwayTeam: "MIN",
		Status:   domain.StatusScheduled,
		Date:     "2024-09-21 20:05:00",
		Sport:    domain.SportNFL,
	}

	frame := b.Build(game, domain.SportNFL)
	if _, ok := findText(frame.MiddleRow, "9/21"); ok {
		t.Errorf("same-day game should not repeat the date: %v", frame.MiddleRow)
	}
}

func TestBuildFinalWinnerHighlight(t *testing.T) {
	b := newTestBuilder(t, "2024-03-02 23:00:00")
	game := domain.Game{
		HomeTeam:   "LAL",
		AwayTeam:   "BOS",
		HomeScore:  98,
		AwayScore:  110,
		Status:     domain.StatusFinal,
		HomeRecord: "30-50",
		AwayRecord: "45-35",
		Sport:      domain.SportNBA,
	}

	frame := b.Build(game, domain.SportNBA)

	if _, ok := findText(frame.TopRow, "F"); !ok {
		t.Fatalf("final frame missing F marker: %v", frame.TopRow)
	}
	away, _ := findText(frame.MiddleRow, "110")
	home, _ := findText(frame.MiddleRow, "98")
	if away.Color != White {
		t.Errorf("winner score color = %#x, want White", away.Color)
	}
	if home.Color != DimGray {
		t.Errorf("loser score color = %#x, want DimGray", home.Color)
	}

	wantBottom := []struct {
		text string
		x    int
	}{
		{"45", 0},
		{"35", 14},
		{"30", 38},
		{"50", 52},
	}
	for _, want := range wantBottom {
		frag, ok := findText(frame.BottomRow, want.text)
		if !ok {
			t.Fatalf("bottom row missing %q: %v", want.text, frame.BottomRow)
		}
		if frag.X != want.x {
			t.Errorf("%s at x=%d, want %d", want.text, frag.X, want.x)
		}
	}
	wantSeps := []Separator{{X: 12, Y: SeparatorY}, {X: 50, Y: SeparatorY}}
	if !reflect.DeepEqual(frame.Separators, wantSeps) {
		t.Errorf("separators = %v, want %v", frame.Separators, wantSeps)
	}
}

func TestBuildFinalTieDimsBoth(t *testing.T) {
	b := newTestBuilder(t, "2024-09-15 23:00:00")
	game := domain.Game{
		HomeTeam:  "NYG",
		AwayTeam:  "WSH",
		HomeScore: 20,
		AwayScore: 20,
		Status:    domain.StatusFinal,
		Sport:     domain.SportNFL,
	}

	frame := b.Build(game, domain.SportNFL)
	for _, text := range []string{"20"} {
		frag, ok := findText(frame.MiddleRow, text)
		if !ok {
			t.Fatalf("middle row missing score: %v", frame.MiddleRow)
		}
		if frag.Color != DimGray {
			t.Errorf("tied score color = %#x, want DimGray", frag.Color)
		}
	}
}

func TestBuildZeroClockMapsToEnd(t *testing.T) {
	b := newTestBuilder(t, "2024-01-20 21:00:00")
	game := domain.Game{
		HomeTeam:  "COL",
		AwayTeam:  "VGK",
		HomeScore: 2,
		AwayScore: 2,
		Status:    domain.StatusInProgress,
		Period:    "2",
		Clock:     "0:00",
		Sport:     domain.SportNHL,
	}

	frame := b.Build(game, domain.SportNHL)
	if _, ok := findText(frame.BottomRow, "END"); !ok {
		t.Fatalf("zero clock should read END: %v", frame.BottomRow)
	}
}

func TestBuildSportLabelBetweenScores(t *testing.T) {
	b := newTestBuilder(t, "2024-01-20 21:00:00")
	game := domain.Game{
		HomeTeam:  "COL",
		AwayTeam:  "VGK",
		HomeScore: 2,
		AwayScore: 1,
		Status:    domain.StatusInProgress,
		Period:    "3",
		Clock:     "12:30",
		Sport:     domain.SportNHL,
	}

	frame := b.Build(game, domain.SportNHL)
	label, ok := findText(frame.MiddleRow, "NHL")
	if !ok {
		t.Fatalf("middle row missing sport label: %v", frame.MiddleRow)
	}
	if label.Color != DimGray {
		t.Errorf("sport label color = %#x, want DimGray", label.Color)
	}
}

func TestBuildMissingTeamsFallBack(t *testing.T) {
	b := newTestBuilder(t, "2024-01-20 21:00:00")
	frame := b.Build(domain.Game{Status: domain.StatusInProgress}, domain.SportNBA)

	if _, ok := findText(frame.TopRow, "AWY"); !ok {
		t.Errorf("missing away team should render AWY: %v", frame.TopRow)
	}
	if _, ok := findText(frame.TopRow, "HOM"); !ok {
		t.Errorf("missing home team should render HOM: %v", frame.TopRow)
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	b := newTestBuilder(t, "2024-06-10 19:30:00")
	game := domain.Game{
		HomeTeam:  "BOS",
		AwayTeam:  "NYY",
		HomeScore: 5,
		AwayScore: 3,
		Status:    domain.StatusInProgress,
		Period:    "T7",
		Clock:     "1:00",
		Bases:     domain.Bases{Second: true, Present: true},
		Sport:     domain.SportMLB,
	}

	first := b.Build(game, domain.SportMLB)
	second := b.Build(game, domain.SportMLB)
	if !reflect.DeepEqual(first, second) {
		t.Error("same game should build identical frames")
	}
}

func TestErrorFrame(t *testing.T) {
	frame := ErrorFrame()
	if len(frame.TopRow) != 2 || frame.TopRow[0].Text != "ERR" || frame.TopRow[1].Text != "ERR" {
		t.Errorf("top row = %v, want ERR ERR", frame.TopRow)
	}
	if _, ok := findText(frame.MiddleRow, "Game Error"); !ok {
		t.Errorf("middle row = %v, want Game Error", frame.MiddleRow)
	}
}

func TestCompressDownDistance(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2nd & 7", "2nd&7"},
		{"1st & 10", "1st&10"},
		{"3rd & 2 on KC 35", "3rd&2 on K"},
		{"4th & Goal", "4th&Goal"},
	}
	for _, tt := range tests {
		got := capLen(compressDownDistance(tt.in), nflClockMax)
		if got != tt.want {
			t.Errorf("compress(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCapLenCountsRunes(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"2nd&7 on K", 10, "2nd&7 on K"},
		{"2nd&7 on KC", 10, "2nd&7 on K"},
		{"1ère & 10 à", 10, "1ère & 10 "},
		{"short", 10, "short"},
	}
	for _, tt := range tests {
		if got := capLen(tt.in, tt.max); got != tt.want {
			t.Errorf("capLen(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}
