package dispatchers

import (
	"fmt"
	"strings"
)

type FlagScope int

const (
	FlagScopeGlobal FlagScope = iota
	FlagScopeLocal
)

// ValueType is the type a flag value is converted to at parse time.
type ValueType int

const (
	TypeBool ValueType = iota
	TypeString
	TypeInt
	TypeFloat
	TypeStrings
)

func (t ValueType) String() string {
	switch t {
	case TypeBool:
		return "boolean"
	case TypeString:
		return "string"
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeStrings:
		return "list"
	default:
		return "unknown"
	}
}

// PathKind marks flags whose values are filesystem paths. Path values are
// expanded and made absolute at parse time.
type PathKind int

const (
	PathNone PathKind = iota
	PathFile
	PathDir
)

// FlagDescriptor declares one command-line flag.
//
// Dest is the key the parsed value is stored under; when empty it is derived
// from the first long spelling ("--input-dir" becomes "input_dir").
type FlagDescriptor struct {
	Names       []string
	Dest        string
	Type        ValueType
	Default     any
	Choices     []string
	ValueHint   string
	Description string
	Path        PathKind
	Filters     []FileFilter
	Hidden      bool
	Scope       FlagScope
}

// Key returns the destination key of the flag.
func (f FlagDescriptor) Key() string {
	if f.Dest != "" {
		return f.Dest
	}
	return DestFor(f.Names)
}

// TakesValue reports whether the flag consumes a value.
func (f FlagDescriptor) TakesValue() bool {
	return f.Type != TypeBool
}

// Hint returns the placeholder shown in help output.
func (f FlagDescriptor) Hint() string {
	if f.ValueHint != "" {
		return f.ValueHint
	}
	if len(f.Choices) > 0 {
		return "{" + strings.Join(f.Choices, ",") + "}"
	}
	switch f.Type {
	case TypeBool:
		return ""
	case TypeStrings:
		return "<" + f.Key() + "...>"
	case TypeInt, TypeFloat:
		return "<" + f.Type.String() + ">"
	}
	switch f.Path {
	case PathDir:
		return "<dir>"
	case PathFile:
		return "<file>"
	}
	return "<" + f.Key() + ">"
}

// HasName reports whether name is one of the flag's spellings.
func (f FlagDescriptor) HasName(name string) bool {
	for _, n := range f.Names {
		if n == name {
			return true
		}
	}
	return false
}

func (f FlagDescriptor) clone() FlagDescriptor {
	c := f
	c.Names = append([]string(nil), f.Names...)
	c.Choices = append([]string(nil), f.Choices...)
	if len(f.Filters) > 0 {
		c.Filters = make([]FileFilter, len(f.Filters))
		for i, ff := range f.Filters {
			c.Filters[i] = FileFilter{Label: ff.Label, Patterns: append([]string(nil), ff.Patterns...)}
		}
	}
	if def, ok := f.Default.([]string); ok {
		c.Default = append([]string(nil), def...)
	}
	return c
}

// DestFor derives a destination key from flag spellings the way argparse
// does: the first long name wins, leading dashes are stripped and inner
// dashes become underscores. Without a long name the first short name is used.
func DestFor(names []string) string {
	pick := ""
	for _, n := range names {
		if strings.HasPrefix(n, "--") {
			pick = n
			break
		}
	}
	if pick == "" && len(names) > 0 {
		pick = names[0]
	}
	pick = strings.TrimLeft(pick, "-")
	return strings.ReplaceAll(pick, "-", "_")
}

// FormatDefault renders a default value for help output. Empty defaults
// render as "".
func FormatDefault(v any) string {
	switch d := v.(type) {
	case nil:
		return ""
	case string:
		return d
	case bool:
		if !d {
			return ""
		}
		return "true"
	case []string:
		return strings.Join(d, " ")
	default:
		return fmt.Sprint(d)
	}
}
