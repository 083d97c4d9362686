package plugins

import (
	"errors"
	"fmt"
)

// Exit code used for plugin and script resolution failures.
const ResolutionExitCode = 3

// ErrNoModels is returned when a default model is requested but none exist.
var ErrNoModels = errors.New("plugins: no models available")

// NotFoundError is returned when no module matches the naming convention.
type NotFoundError struct {
	Category Category
	Name     string
	Module   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s plugin %q not found (no module %s)", e.Category, e.Name, e.Module)
}

// GetExitCode implements usage.ExitCoder.
func (e *NotFoundError) GetExitCode() int { return ResolutionExitCode }

// LoadError is returned when the module exists but does not export the
// expected symbol, or exports it with the wrong type.
type LoadError struct {
	Category Category
	Name     string
	Module   string
	Symbol   string
	Reason   string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s plugin %q: module %s: %s %s", e.Category, e.Name, e.Module, e.Symbol, e.Reason)
}

// GetExitCode implements usage.ExitCoder.
func (e *LoadError) GetExitCode() int { return ResolutionExitCode }
