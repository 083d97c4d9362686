// Package ui holds terminal output helpers: the process-wide writer with
// pager support, and the style subpackage.
//
// The pager runs whatever command the user configured via --pager, the
// `pager` config key or $PAGER, the same way git and man do.
package ui

import (
	"sync"
)

var (
	defaultWriter   *Writer
	defaultWriterMu sync.RWMutex
)

// Configure replaces the process-wide writer. It is called once from
// main after the global flags and config are known.
func Configure(w *Writer) {
	defaultWriterMu.Lock()
	defaultWriter = w
	defaultWriterMu.Unlock()
}

// Default returns the process-wide writer, a plain stdout Writer if
// Configure was never called.
func Default() *Writer {
	defaultWriterMu.RLock()
	w := defaultWriter
	defaultWriterMu.RUnlock()
	if w == nil {
		return NewWriter()
	}
	return w
}

// Pager pages content through the process-wide writer.
func Pager(content string) {
	Default().Pager(content)
}

// Printf prints through the process-wide writer.
func Printf(format string, args ...any) (int, error) {
	return Default().Printf(format, args...)
}

// Println prints through the process-wide writer.
func Println(args ...any) (int, error) {
	return Default().Println(args...)
}
