package games

import (
	"strconv"
	"strings"

	"matrix-scoreboard/internal/domain"
)

// Raw records arrive as loosely-typed JSON maps; these helpers coerce fields
// with defaults so the rest of the pipeline never re-checks presence.

func rawString(g domain.RawGame, key, fallback string) string {
	v, ok := g[key]
	if !ok || v == nil {
		return fallback
	}
	switch s := v.(type) {
	case string:
		return s
	case float64:
		if s == float64(int64(s)) {
			return strconv.FormatInt(int64(s), 10)
		}
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int:
		return strconv.Itoa(s)
	case bool:
		if s {
			return "true"
		}
		return "false"
	}
	return fallback
}

// rawInt coerces a numeric or numeric-string field. The bool reports whether
// a value was present and coercible; absent fields return (fallback, true)
// since a missing score is an honest zero, not a malformed one.
func rawInt(g domain.RawGame, key string, fallback int) (int, bool) {
	v, ok := g[key]
	if !ok || v == nil {
		return fallback, true
	}
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	case string:
		trimmed := strings.TrimSpace(n)
		if trimmed == "" {
			return fallback, true
		}
		parsed, err := strconv.Atoi(trimmed)
		if err != nil {
			return fallback, false
		}
		return parsed, true
	}
	return fallback, false
}

func rawMap(g domain.RawGame, key string) (map[string]any, bool) {
	v, ok := g[key]
	if !ok || v == nil {
		return nil, false
	}
	m, ok := v.(map[string]any)
	if !ok || len(m) == 0 {
		return nil, false
	}
	return m, true
}

func mapInt(m map[string]any, key string) int {
	n, _ := rawInt(domain.RawGame(m), key, 0)
	return n
}

func mapBool(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok || v == nil {
		return false
	}
	switch b := v.(type) {
	case bool:
		return b
	case string:
		return strings.EqualFold(b, "true")
	case float64:
		return b != 0
	}
	return false
}

func hasKey(g domain.RawGame, key string) bool {
	_, ok := g[key]
	return ok
}
