package board

import "strings"

const statusLabelMax = 10

// StatusLabel maps a status string (raw when available, canonical otherwise)
// to the short label shown on the board. Rain/weather keywords win over the
// generic delay keyword so "Rain Delay" never degrades to "DELAY".
func StatusLabel(status string) string {
	lower := strings.ToLower(status)
	switch {
	case strings.Contains(lower, "rain"), strings.Contains(lower, "weather"):
		return "RAIN DELAY"
	case strings.Contains(lower, "delay"):
		return "DELAY"
	case strings.Contains(lower, "suspend"):
		return "SUSPENDED"
	case strings.Contains(lower, "cancel"):
		return "CANCELLED"
	case strings.Contains(lower, "postpone"):
		return "POSTPONED"
	}
	upper := strings.ToUpper(status)
	if len(upper) > statusLabelMax {
		upper = upper[:statusLabelMax]
	}
	return upper
}

// weatherHold reports whether the status text names a rain or weather delay.
func weatherHold(status string) bool {
	lower := strings.ToLower(status)
	return strings.Contains(lower, "rain") || strings.Contains(lower, "weather")
}
