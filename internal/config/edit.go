package config

import "strings"

func lineKey(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", false
	}
	key, _, ok := strings.Cut(trimmed, "=")
	if !ok {
		return "", false
	}
	return strings.TrimSpace(key), true
}

// SetLine replaces the value of key in place, keeping any inline comment,
// or appends key=value. It reports whether an existing line was updated.
func SetLine(lines []string, key, value string) ([]string, bool) {
	out := append([]string(nil), lines...)
	entry := key + "=" + quote(value)

	for i, line := range out {
		k, ok := lineKey(line)
		if !ok || k != key {
			continue
		}
		_, old, _ := strings.Cut(line, "=")
		if idx := strings.Index(old, " #"); idx >= 0 && !strings.HasPrefix(strings.TrimSpace(old), "\"") {
			entry += " " + strings.TrimSpace(old[idx:])
		}
		out[i] = entry
		return out, true
	}

	return append(out, entry), false
}

// UnsetLine removes every line assigning key. It reports whether any
// line was removed.
func UnsetLine(lines []string, key string) ([]string, bool) {
	out := make([]string, 0, len(lines))
	removed := false

	for _, line := range lines {
		if k, ok := lineKey(line); ok && k == key {
			removed = true
			continue
		}
		out = append(out, line)
	}
	return out, removed
}
