package dispatchers

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/faceswap-tools/faceswap/internal/usage"
)

// Parse applies argv to a flag set. Tokens that are not flags or flag values
// are returned as positional arguments. Errors are *usage.Error values;
// attaching help text is left to the caller.
func Parse(flags []FlagDescriptor, argv []string) (*ParsedArgs, []string, error) {
	parsed := NewParsedArgs()
	var positional []string

	for i := 0; i < len(argv); i++ {
		tok := argv[i]

		if tok == "--" {
			positional = append(positional, argv[i+1:]...)
			break
		}

		if !isFlagToken(tok) {
			positional = append(positional, tok)
			continue
		}

		name, inline, hasInline := strings.Cut(tok, "=")
		f, ok := LookupFlag(flags, name)
		if !ok {
			return nil, nil, usage.InvalidFlag(name)
		}

		switch f.Type {
		case TypeBool:
			value := true
			if hasInline {
				b, err := strconv.ParseBool(inline)
				if err != nil {
					return nil, nil, usage.InvalidValue(name, f.Type.String(), inline)
				}
				value = b
			}
			parsed.put(f.Key(), value, true)

		case TypeStrings:
			var values []string
			if hasInline {
				values = append(values, inline)
			}
			for i+1 < len(argv) && !isFlagToken(argv[i+1]) && argv[i+1] != "--" {
				i++
				values = append(values, argv[i])
			}
			if len(values) == 0 {
				return nil, nil, usage.MissingValue(name, f.Hint())
			}
			for _, v := range values {
				if err := checkChoice(f, name, v); err != nil {
					return nil, nil, err
				}
			}
			parsed.put(f.Key(), values, true)

		default:
			raw := inline
			if !hasInline {
				if i+1 >= len(argv) || isKnownFlag(flags, argv[i+1]) || argv[i+1] == "--" {
					return nil, nil, usage.MissingValue(name, f.Hint())
				}
				i++
				raw = argv[i]
			}
			value, err := convert(f, name, raw)
			if err != nil {
				return nil, nil, err
			}
			parsed.put(f.Key(), value, true)
		}
	}

	for _, f := range flags {
		key := f.Key()
		if _, ok := parsed.values[key]; ok {
			continue
		}
		parsed.put(key, zeroOrDefault(f), false)
	}

	if err := normalizePaths(flags, parsed); err != nil {
		return nil, nil, err
	}

	return parsed, positional, nil
}

func convert(f FlagDescriptor, name, raw string) (any, error) {
	if err := checkChoice(f, name, raw); err != nil {
		return nil, err
	}
	switch f.Type {
	case TypeInt:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, usage.InvalidValue(name, f.Type.String(), raw)
		}
		return n, nil
	case TypeFloat:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, usage.InvalidValue(name, f.Type.String(), raw)
		}
		return v, nil
	default:
		return raw, nil
	}
}

func checkChoice(f FlagDescriptor, name, value string) error {
	if len(f.Choices) == 0 {
		return nil
	}
	for _, c := range f.Choices {
		if c == value {
			return nil
		}
	}
	return usage.InvalidChoice(name, value, f.Choices, FindSimilar(value, f.Choices, defaultSuggestionsCount)...)
}

func zeroOrDefault(f FlagDescriptor) any {
	if f.Default != nil {
		if list, ok := f.Default.([]string); ok {
			return append([]string(nil), list...)
		}
		return f.Default
	}
	switch f.Type {
	case TypeBool:
		return false
	case TypeInt:
		return 0
	case TypeFloat:
		return 0.0
	case TypeStrings:
		return []string(nil)
	default:
		return ""
	}
}

func normalizePaths(flags []FlagDescriptor, parsed *ParsedArgs) error {
	for _, f := range flags {
		if f.Path == PathNone {
			continue
		}
		key := f.Key()
		s, ok := parsed.values[key].(string)
		if !ok || s == "" {
			continue
		}
		abs, err := ExpandPath(s)
		if err != nil {
			return usage.InvalidPath(s, err.Error())
		}
		parsed.values[key] = abs
	}
	return nil
}

// ExpandPath expands a leading "~" to the user's home directory and returns
// the absolute, cleaned form of path.
func ExpandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, path[1:])
	}
	return filepath.Abs(path)
}

func isFlagToken(tok string) bool {
	if len(tok) < 2 || tok[0] != '-' {
		return false
	}
	// Negative numbers are values, not flags.
	if _, err := strconv.ParseFloat(tok, 64); err == nil {
		return false
	}
	return true
}

func isKnownFlag(flags []FlagDescriptor, tok string) bool {
	if !isFlagToken(tok) {
		return false
	}
	name, _, _ := strings.Cut(tok, "=")
	_, ok := LookupFlag(flags, name)
	return ok || strings.HasPrefix(tok, "--")
}
