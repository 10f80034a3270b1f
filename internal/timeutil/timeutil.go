package timeutil

import (
	"fmt"
	"strings"
	"time"
)

// DateTimeLayout is the canonical game timestamp format from the scores API.
const DateTimeLayout = "2006-01-02 15:04:05"

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ParseGameTime parses an API game timestamp. It accepts either a space or a
// "T" between date and time and tolerates a missing seconds component.
func ParseGameTime(value string) (time.Time, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	v = strings.Replace(v, "T", " ", 1)
	for _, layout := range []string{DateTimeLayout, "2006-01-02 15:04"} {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", value)
}

// FormatGameTime renders the time portion of an API timestamp as a 12-hour
// clock string like "7:05PM". Anything unparseable comes back as "TBD" so the
// board always has something to show for a scheduled game.
func FormatGameTime(value string) string {
	t, err := ParseGameTime(value)
	if err != nil {
		return "TBD"
	}
	hour := t.Hour()
	suffix := "AM"
	switch {
	case hour == 0:
		hour = 12
	case hour == 12:
		suffix = "PM"
	case hour > 12:
		hour -= 12
		suffix = "PM"
	}
	return fmt.Sprintf("%d:%02d%s", hour, t.Minute(), suffix)
}

// MonthDay renders an API timestamp as a compact "M/D" date label.
// Returns empty for unparseable input.
func MonthDay(value string) string {
	t, err := ParseGameTime(value)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%d/%d", int(t.Month()), t.Day())
}

// SameMonthDay reports whether the timestamp falls on the same calendar
// month and day as now. Unparseable input is treated as "today" so a bad
// date never forces a spurious date label onto the board.
func SameMonthDay(value string, now time.Time) bool {
	t, err := ParseGameTime(value)
	if err != nil {
		return true
	}
	return t.Month() == now.Month() && t.Day() == now.Day()
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
