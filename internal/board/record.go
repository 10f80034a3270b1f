package board

import "strings"

// ParseRecord splits a "W-L" record string into wins and losses. Anything
// without a dash yields an empty losses part; empty input yields two empty
// strings. It never fails.
func ParseRecord(record string) (wins, losses string) {
	if record == "" {
		return "", ""
	}
	parts := strings.SplitN(record, "-", 2)
	wins = parts[0]
	if len(parts) > 1 {
		losses = parts[1]
	}
	return wins, losses
}
