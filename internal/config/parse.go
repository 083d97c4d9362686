// Package config reads and writes the faceswap rc file: one key=value
// per line, '#' comments, values optionally double-quoted.
package config

import (
	"fmt"
	"strings"
)

// Parse turns rc file lines into a key/value map. Later duplicates win.
// A " #" sequence starts an inline comment.
func Parse(lines []string) (map[string]string, error) {
	cfg := make(map[string]string)

	for i, line := range lines {
		if i == 0 {
			line = strings.TrimPrefix(line, "\ufeff")
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		key, value, ok := strings.Cut(trimmed, "=")
		if !ok {
			return nil, fmt.Errorf("config: line %d: expected key=value", i+1)
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("config: line %d: empty key", i+1)
		}

		cfg[key] = unquote(stripComment(strings.TrimSpace(value)))
	}

	return cfg, nil
}

func stripComment(value string) string {
	if strings.HasPrefix(value, "\"") {
		if end := strings.Index(value[1:], "\""); end >= 0 {
			return value[:end+2]
		}
		return value
	}
	if idx := strings.Index(value, " #"); idx >= 0 {
		return strings.TrimSpace(value[:idx])
	}
	return value
}

func unquote(value string) string {
	if len(value) >= 2 && strings.HasPrefix(value, "\"") && strings.HasSuffix(value, "\"") {
		return value[1 : len(value)-1]
	}
	return value
}

// quote wraps values that would not survive Parse unquoted.
func quote(value string) string {
	if strings.ContainsAny(value, " \t#\"") {
		return "\"" + value + "\""
	}
	return value
}
