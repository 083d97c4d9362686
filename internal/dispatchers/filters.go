package dispatchers

import "strings"

// FileFilter is the file-picker metadata of a file-typed flag: a label plus
// glob patterns such as "*.png".
type FileFilter struct {
	Label    string
	Patterns []string
}

// NewFileFilter builds a filter with normalized patterns. Extensions may be
// declared as "png", ".png", "*.png" or "*.png;" and all end up as "*.png".
func NewFileFilter(label string, extensions ...string) FileFilter {
	ff := FileFilter{Label: label}
	seen := make(map[string]bool)
	for _, ext := range extensions {
		p := NormalizePattern(ext)
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		ff.Patterns = append(ff.Patterns, p)
	}
	return ff
}

// NormalizePattern strips a leading "*." or "." and a trailing ";" from an
// extension entry and re-prefixes it with "*.". Returns "" for empty input.
func NormalizePattern(ext string) string {
	p := strings.TrimSpace(ext)
	p = strings.TrimRight(p, ";")
	p = strings.TrimPrefix(p, "*")
	p = strings.TrimPrefix(p, ".")
	p = strings.ToLower(strings.TrimSpace(p))
	if p == "" {
		return ""
	}
	return "*." + p
}

// Equal reports whether two filters carry the same label and patterns.
func (f FileFilter) Equal(other FileFilter) bool {
	if f.Label != other.Label || len(f.Patterns) != len(other.Patterns) {
		return false
	}
	for i := range f.Patterns {
		if NormalizePattern(f.Patterns[i]) != NormalizePattern(other.Patterns[i]) {
			return false
		}
	}
	return true
}

// String renders the filter the way file dialogs expect: "Label (*.a *.b)".
func (f FileFilter) String() string {
	return f.Label + " (" + strings.Join(f.Patterns, " ") + ")"
}
