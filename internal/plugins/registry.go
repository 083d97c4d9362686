package plugins

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/faceswap-tools/faceswap/internal/domain"
	"github.com/faceswap-tools/faceswap/internal/log"
)

// Factory builds a fresh plugin value.
type Factory func() any

// Module is a named set of exported plugin factories.
type Module struct {
	Name    string
	Exports map[string]Factory
}

// Registry maps module names to modules.
type Registry struct {
	modules map[string]Module
	diag    io.Writer
	logger  domain.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithDiagnostics sets where "Loading ..." lines are written.
func WithDiagnostics(w io.Writer) Option {
	return func(r *Registry) {
		r.diag = w
	}
}

// WithLogger sets the logger used for resolution events.
func WithLogger(l domain.Logger) Option {
	return func(r *Registry) {
		r.logger = l
	}
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		modules: make(map[string]Module),
		diag:    io.Discard,
		logger:  log.NopLogger{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a module. Registering a name twice is an error.
func (r *Registry) Register(m Module) error {
	if m.Name == "" {
		return fmt.Errorf("plugins: module without a name")
	}
	if _, exists := r.modules[m.Name]; exists {
		return fmt.Errorf("plugins: module %s already registered", m.Name)
	}
	exports := make(map[string]Factory, len(m.Exports))
	for sym, f := range m.Exports {
		exports[sym] = f
	}
	r.modules[m.Name] = Module{Name: m.Name, Exports: exports}
	r.logger.Debug("plugins: registered module %s", m.Name)
	return nil
}

// Has reports whether a module with the given name is registered.
func (r *Registry) Has(module string) bool {
	_, ok := r.modules[module]
	return ok
}

// Resolve returns a new instance of the plugin of category c named name.
func (r *Registry) Resolve(c Category, name string) (any, error) {
	if err := c.valid(); err != nil {
		return nil, err
	}

	module := ModuleName(c, name)
	symbol := Symbol(c)

	m, ok := r.modules[module]
	if !ok {
		r.logger.Warn("plugins: %s %q not found", c, name)
		return nil, &NotFoundError{Category: c, Name: name, Module: module}
	}

	factory, ok := m.Exports[symbol]
	if !ok || factory == nil {
		r.logger.Warn("plugins: module %s has no %s", module, symbol)
		return nil, &LoadError{Category: c, Name: name, Module: module, Symbol: symbol, Reason: "is not exported"}
	}

	_, _ = fmt.Fprintf(r.diag, "Loading %s from %s plugin...\n", symbol, module)
	r.logger.Info("plugins: loading %s from %s", symbol, module)

	return factory(), nil
}

// Names returns the plugin names available for a category, sorted.
func (r *Registry) Names(c Category) []string {
	if c.valid() != nil {
		return nil
	}
	prefix := strings.ToLower(conventions[c].prefix + "_")
	symbol := Symbol(c)

	names := []string{}
	for moduleName, m := range r.modules {
		if !strings.HasPrefix(strings.ToLower(moduleName), prefix) {
			continue
		}
		if _, ok := m.Exports[symbol]; !ok {
			continue
		}
		names = append(names, moduleName[len(prefix):])
	}
	sort.Strings(names)
	return names
}

// Extractor resolves an extractor plugin.
func (r *Registry) Extractor(name string) (Extractor, error) {
	v, err := r.Resolve(CategoryExtractor, name)
	if err != nil {
		return nil, err
	}
	e, ok := v.(Extractor)
	if !ok {
		return nil, wrongType(CategoryExtractor, name)
	}
	return e, nil
}

// Converter resolves a converter plugin.
func (r *Registry) Converter(name string) (Converter, error) {
	v, err := r.Resolve(CategoryConverter, name)
	if err != nil {
		return nil, err
	}
	c, ok := v.(Converter)
	if !ok {
		return nil, wrongType(CategoryConverter, name)
	}
	return c, nil
}

// Model resolves a model plugin.
func (r *Registry) Model(name string) (Model, error) {
	v, err := r.Resolve(CategoryModel, name)
	if err != nil {
		return nil, err
	}
	m, ok := v.(Model)
	if !ok {
		return nil, wrongType(CategoryModel, name)
	}
	return m, nil
}

// Trainer resolves a trainer plugin.
func (r *Registry) Trainer(name string) (Trainer, error) {
	v, err := r.Resolve(CategoryTrainer, name)
	if err != nil {
		return nil, err
	}
	t, ok := v.(Trainer)
	if !ok {
		return nil, wrongType(CategoryTrainer, name)
	}
	return t, nil
}

func wrongType(c Category, name string) error {
	return &LoadError{
		Category: c,
		Name:     name,
		Module:   ModuleName(c, name),
		Symbol:   Symbol(c),
		Reason:   "has an unexpected type",
	}
}
