package board

import (
	"strconv"
	"strings"
	"time"

	"matrix-scoreboard/internal/domain"
	"matrix-scoreboard/internal/layout"
	"matrix-scoreboard/internal/timeutil"
)

// Builder assembles a Frame for one game. Build is pure apart from the
// injected clock (used only for the scheduled-game "is it today" check), so
// the same game always yields an identical frame.
type Builder struct {
	engine layout.Engine
	now    func() time.Time
}

// NewBuilder returns a Builder for the standard 64x32 layout.
func NewBuilder() *Builder {
	return &Builder{
		engine: layout.NewEngine(),
		now:    time.Now,
	}
}

// Build assembles the display frame for one game. It never panics outward:
// any internal failure degrades to a visibly-marked error frame.
func (b *Builder) Build(game domain.Game, current domain.Sport) (frame Frame) {
	defer func() {
		if recover() != nil {
			frame = ErrorFrame()
		}
	}()

	sport := game.Sport
	if !sport.Valid() {
		sport = current
	}

	homeAbbr := strings.ToUpper(game.HomeTeam)
	awayAbbr := strings.ToUpper(game.AwayTeam)
	homeColor := TeamColor(homeAbbr, sport)
	awayColor := TeamColor(awayAbbr, sport)
	home := displayCode(homeAbbr, "HOM")
	away := displayCode(awayAbbr, "AWY")
	homeScore := strconv.Itoa(game.HomeScore)
	awayScore := strconv.Itoa(game.AwayScore)

	pos := b.engine.Layout(home, away, homeScore, awayScore)

	frame.TopRow = []Fragment{
		{Text: away, Color: awayColor, X: pos.AwayX},
		{Text: home, Color: homeColor, X: pos.HomeX},
	}
	frame.MiddleRow = []Fragment{
		{Text: awayScore, Color: White, X: pos.AwayScoreX},
		{Text: homeScore, Color: White, X: pos.HomeScoreX},
	}

	if b.showSportLabel(game.Status, sport) {
		label := string(sport)
		frame.MiddleRow = insertAt(frame.MiddleRow, 1, Fragment{
			Text: label, Color: DimGray, X: b.engine.Center(label, pos.CenterX),
		})
	}

	switch game.Status {
	case domain.StatusFinal:
		b.finalFrame(game, &frame, pos)
	case domain.StatusScheduled:
		b.scheduledFrame(game, &frame, pos, sport)
	case domain.StatusPostponed, domain.StatusDelayed, domain.StatusSuspended,
		domain.StatusCancelled, domain.StatusUnknown:
		b.heldFrame(game, &frame, pos)
	default:
		b.inProgressFrame(game, &frame, pos, sport)
	}

	return frame
}

// showSportLabel decides whether the sport code appears between the scores.
// Live MLB games reserve that space for the diamond overlay, scheduled games
// carry the league in the top row instead, and held games replace the whole
// middle row with a status label.
func (b *Builder) showSportLabel(status domain.Status, sport domain.Sport) bool {
	switch status {
	case domain.StatusPostponed, domain.StatusDelayed, domain.StatusSuspended,
		domain.StatusCancelled, domain.StatusUnknown, domain.StatusScheduled:
		return false
	}
	if sport == domain.SportMLB && status == domain.StatusInProgress {
		return false
	}
	return true
}

func (b *Builder) finalFrame(game domain.Game, frame *Frame, pos layout.Positions) {
	final := "F"
	frame.TopRow = insertAt(frame.TopRow, 1, Fragment{
		Text: final, Color: DimGray, X: b.engine.Center(final, pos.CenterX),
	})

	awayIdx := 0
	homeIdx := len(frame.MiddleRow) - 1
	frame.MiddleRow[awayIdx].Color = DimGray
	frame.MiddleRow[homeIdx].Color = DimGray
	if game.AwayScore > game.HomeScore {
		frame.MiddleRow[awayIdx].Color = White
	}
	if game.HomeScore > game.AwayScore {
		frame.MiddleRow[homeIdx].Color = White
	}

	b.addRecords(game, frame)
}

func (b *Builder) scheduledFrame(game domain.Game, frame *Frame, pos layout.Positions, sport domain.Sport) {
	league := "LEA"
	if sport.Valid() {
		league = string(sport)
	}
	frame.TopRow = insertAt(frame.TopRow, 1, Fragment{
		Text: league, Color: Gray, X: b.engine.Center(league, pos.CenterX),
	})

	// Blank the score slots; a scheduled game showing "0" reads as live.
	frame.MiddleRow[0].Text = ""
	frame.MiddleRow[len(frame.MiddleRow)-1].Text = ""

	if b.now != nil && !timeutil.SameMonthDay(game.Date, b.now()) {
		if md := timeutil.MonthDay(game.Date); md != "" {
			frame.MiddleRow = insertAt(frame.MiddleRow, 1, Fragment{
				Text: md, Color: DimGray, X: b.engine.Center(md, pos.CenterX),
			})
		}
	}

	start := timeutil.FormatGameTime(game.Date)
	frame.BottomRow = append(frame.BottomRow, Fragment{
		Text: start, Color: DimGray, X: b.engine.Center(start, pos.CenterX),
	})
}

func (b *Builder) heldFrame(game domain.Game, frame *Frame, pos layout.Positions) {
	status := statusString(game)
	label := StatusLabel(status)

	hasScores := game.HomeScore > 0 || game.AwayScore > 0
	if hasScores && weatherHold(status) {
		// Rain-delayed games with a score in them: keep the scores in the
		// middle row and push the label down a row.
		frame.MiddleRow = []Fragment{
			{Text: strconv.Itoa(game.AwayScore), Color: White, X: pos.AwayScoreX},
			{Text: strconv.Itoa(game.HomeScore), Color: White, X: pos.HomeScoreX},
		}
		frame.BottomRow = []Fragment{
			{Text: label, Color: DimGray, X: b.engine.Center(label, pos.CenterX)},
		}
		return
	}

	frame.MiddleRow = []Fragment{
		{Text: label, Color: DimGray, X: b.engine.Center(label, pos.CenterX)},
	}
	b.addRecords(game, frame)
}

func (b *Builder) inProgressFrame(game domain.Game, frame *Frame, pos layout.Positions, sport domain.Sport) {
	if game.Period != "" {
		frame.TopRow = insertAt(frame.TopRow, 1, Fragment{
			Text: game.Period, Color: White, X: b.engine.Center(game.Period, pos.CenterX),
		})
	}

	clock := mapZeroClock(game.Clock)
	if override, ok := rendererFor(sport).augment(game, pos, frame, b.engine); ok {
		clock = override
	}
	if clock != "" {
		frame.BottomRow = append(frame.BottomRow, Fragment{
			Text: clock, Color: White, X: b.engine.Center(clock, pos.CenterX),
		})
	}
}

// addRecords lays out the W-L readout across the bottom row: wins, a thin
// separator, losses, per side. Skipped unless both records parse and the two
// halves leave a non-negative gap between them.
func (b *Builder) addRecords(game domain.Game, frame *Frame) {
	awayWins, awayLosses := ParseRecord(game.AwayRecord)
	homeWins, homeLosses := ParseRecord(game.HomeRecord)
	if awayWins == "" || awayLosses == "" || homeWins == "" || homeLosses == "" {
		return
	}

	awayWinsW := b.engine.Measure(awayWins)
	awayLossesW := b.engine.Measure(awayLosses)
	homeWinsW := b.engine.Measure(homeWins)
	homeLossesW := b.engine.Measure(homeLosses)

	awayX := 0
	homeX := b.engine.CanvasWidth - homeWinsW - homeLossesW - b.engine.Padding
	if homeX-(awayX+awayWinsW+awayLossesW) < 0 {
		return
	}

	frame.BottomRow = append(frame.BottomRow,
		Fragment{Text: awayWins, Color: DimGray, X: awayX},
		Fragment{Text: awayLosses, Color: DimGray, X: awayX + awayWinsW + b.engine.Padding},
		Fragment{Text: homeWins, Color: DimGray, X: homeX},
		Fragment{Text: homeLosses, Color: DimGray, X: homeX + homeWinsW + b.engine.Padding},
	)
	frame.Separators = append(frame.Separators,
		Separator{X: awayX + awayWinsW, Y: SeparatorY},
		Separator{X: homeX + homeWinsW, Y: SeparatorY},
	)
}

// ErrorFrame is the minimal safe frame shown when building a game fails.
func ErrorFrame() Frame {
	return Frame{
		TopRow: []Fragment{
			{Text: "ERR", Color: White, X: 5},
			{Text: "ERR", Color: White, X: 45},
		},
		MiddleRow: []Fragment{{Text: "Game Error", Color: White, X: 8}},
	}
}

func statusString(game domain.Game) string {
	if game.RawStatus != "" {
		return game.RawStatus
	}
	return string(game.Status)
}

func displayCode(abbr, fallback string) string {
	if abbr == "" {
		return fallback
	}
	if len(abbr) > 3 {
		return abbr[:3]
	}
	return abbr
}

func mapZeroClock(clock string) string {
	switch clock {
	case "0.0", "0:00", "00:00", "0":
		return "END"
	}
	return clock
}

func insertAt(row []Fragment, i int, f Fragment) []Fragment {
	row = append(row, Fragment{})
	copy(row[i+1:], row[i:])
	row[i] = f
	return row
}
