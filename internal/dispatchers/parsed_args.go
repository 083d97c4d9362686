package dispatchers

import "sort"

// ParsedArgs provides typed, read-only access to parsed flag values keyed by
// destination. Every destination of the parsed flag set is present, either
// from the command line or from its default.
type ParsedArgs struct {
	values map[string]any
	set    map[string]bool
}

// NewParsedArgs creates an empty ParsedArgs.
func NewParsedArgs() *ParsedArgs {
	return &ParsedArgs{
		values: make(map[string]any),
		set:    make(map[string]bool),
	}
}

// ParsedArgsFrom builds a ParsedArgs from explicit values, mostly for tests
// and for actions invoked outside the parser.
func ParsedArgsFrom(values map[string]any) *ParsedArgs {
	p := NewParsedArgs()
	for k, v := range values {
		p.values[k] = v
		p.set[k] = true
	}
	return p
}

func (p *ParsedArgs) put(dest string, v any, explicit bool) {
	p.values[dest] = v
	if explicit {
		p.set[dest] = true
	}
}

// Has returns true if the destination was given on the command line.
func (p *ParsedArgs) Has(dest string) bool {
	if p == nil {
		return false
	}
	return p.set[dest]
}

// Value returns the raw value stored for dest.
func (p *ParsedArgs) Value(dest string) (any, bool) {
	if p == nil {
		return nil, false
	}
	v, ok := p.values[dest]
	return v, ok
}

// String returns the string value of dest, or defaultVal if absent or empty.
func (p *ParsedArgs) String(dest, defaultVal string) string {
	v, ok := p.Value(dest)
	if !ok {
		return defaultVal
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return defaultVal
	}
	return s
}

// Int returns the integer value of dest, or defaultVal if absent.
func (p *ParsedArgs) Int(dest string, defaultVal int) int {
	v, ok := p.Value(dest)
	if !ok {
		return defaultVal
	}
	n, ok := v.(int)
	if !ok {
		return defaultVal
	}
	return n
}

// Float returns the float value of dest, or defaultVal if absent.
func (p *ParsedArgs) Float(dest string, defaultVal float64) float64 {
	v, ok := p.Value(dest)
	if !ok {
		return defaultVal
	}
	switch f := v.(type) {
	case float64:
		return f
	case int:
		return float64(f)
	default:
		return defaultVal
	}
}

// Bool returns the boolean value of dest; absent destinations are false.
func (p *ParsedArgs) Bool(dest string) bool {
	v, ok := p.Value(dest)
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}

// Strings returns the list value of dest. The returned slice is a copy.
func (p *ParsedArgs) Strings(dest string) []string {
	v, ok := p.Value(dest)
	if !ok {
		return nil
	}
	list, _ := v.([]string)
	return append([]string(nil), list...)
}

// Keys returns every destination key in sorted order.
func (p *ParsedArgs) Keys() []string {
	if p == nil {
		return nil
	}
	keys := make([]string, 0, len(p.values))
	for k := range p.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Map returns a copy of all values, suitable for serialization.
func (p *ParsedArgs) Map() map[string]any {
	out := make(map[string]any)
	if p == nil {
		return out
	}
	for k, v := range p.values {
		if list, ok := v.([]string); ok {
			v = append([]string(nil), list...)
		}
		out[k] = v
	}
	return out
}
