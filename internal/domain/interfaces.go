package domain

import (
	"io"
	"time"
)

// RunStatus is the outcome of a recorded run.
type RunStatus string

const (
	RunRunning RunStatus = "running"
	RunSuccess RunStatus = "success"
	RunFailed  RunStatus = "failed"
)

// Run is one dispatched pipeline command as kept in the history.
type Run struct {
	ID         string
	Command    string
	Args       map[string]any
	StartedAt  time.Time
	FinishedAt *time.Time
	Status     RunStatus
	Error      string
}

// Duration returns how long the run took, or zero while it is running.
func (r Run) Duration() time.Duration {
	if r.FinishedAt == nil {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}

// RunFilter narrows a history query. Zero fields match everything.
type RunFilter struct {
	Command string
	Status  RunStatus
	Since   time.Time
	Limit   int
}

// RunStore persists run history.
type RunStore interface {
	// Begin records a new running run.
	Begin(run Run) error

	// Finish marks the run as finished with the given status and error text.
	Finish(id string, status RunStatus, errText string, at time.Time) error

	// Recent returns up to limit runs, newest first.
	Recent(limit int) ([]Run, error)

	// Find returns the runs matching filter, newest first.
	Find(filter RunFilter) ([]Run, error)

	// Close closes the store connection.
	Close() error
}

// ConfigProvider reads and writes configuration.
type ConfigProvider interface {
	// Get returns the value for a key.
	Get(key string) (string, bool)

	// GetAll returns every explicitly set value.
	GetAll() (map[string]string, error)

	// Set sets a value.
	Set(key, value string) error

	// Unset removes a value.
	Unset(key string) error
}

// Logger defines logging operations.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
	Close() error
}

// OutputWriter defines output operations.
type OutputWriter interface {
	io.Writer

	// Printf formats and prints to the output.
	Printf(format string, args ...any) (int, error)

	// Println prints a line to the output.
	Println(args ...any) (int, error)

	// Pager displays content through a pager if appropriate.
	Pager(content string)
}

// Styler defines text styling operations.
type Styler interface {
	Enabled() bool
	Success(text string) string
	Warning(text string) string
	Error(text string) string
	Info(text string) string
	Muted(text string) string
	Header(text string) string
}

// Application bundles the process-wide dependencies.
type Application struct {
	Config ConfigProvider
	Logger Logger
	Output OutputWriter
	Styler Styler
	Runs   RunStore
}
