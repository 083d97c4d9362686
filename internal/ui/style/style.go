// Package style provides semantic terminal styling using lipgloss.
//
// All styling is semantic (Success, Warning, Error, ...) rather than
// visual. When disabled every helper returns its input unchanged.
package style

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

type styles struct {
	success lipgloss.Style
	warning lipgloss.Style
	err     lipgloss.Style
	info    lipgloss.Style
	muted   lipgloss.Style
	header  lipgloss.Style
}

var (
	mu      sync.RWMutex
	enabled bool
	palette Palette
	current styles
)

// Init enables or disables styling for the process. NO_COLOR and
// FACESWAP_NO_COLOR (any non-empty value) always disable it. cfg supplies
// color_* overrides and may be nil.
func Init(enable bool, cfg map[string]string) {
	mu.Lock()
	defer mu.Unlock()

	if os.Getenv("NO_COLOR") != "" || os.Getenv("FACESWAP_NO_COLOR") != "" {
		enable = false
	}
	enabled = enable
	if !enabled {
		return
	}

	lipgloss.SetColorProfile(termenv.ANSI256)
	palette = LoadPalette(cfg, IsDarkBackground())
	current = styles{
		success: makeStyle(palette.Success),
		warning: makeStyle(palette.Warning),
		err:     makeStyle(palette.Error),
		info:    makeStyle(palette.Info),
		muted:   makeStyle(palette.Muted),
		header:  makeStyle(palette.Header),
	}
}

func makeStyle(value string) lipgloss.Style {
	if value == "bold" {
		return lipgloss.NewStyle().Bold(true)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(value))
}

// Enabled reports whether styling is on.
func Enabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// Colors returns the active palette, zero when styling is disabled.
func Colors() Palette {
	mu.RLock()
	defer mu.RUnlock()
	if !enabled {
		return Palette{}
	}
	return palette
}

func render(pick func(styles) lipgloss.Style, text string) string {
	mu.RLock()
	defer mu.RUnlock()
	if !enabled {
		return text
	}
	return pick(current).Render(text)
}

func Success(text string) string {
	return render(func(s styles) lipgloss.Style { return s.success }, text)
}

func Warning(text string) string {
	return render(func(s styles) lipgloss.Style { return s.warning }, text)
}

func Error(text string) string {
	return render(func(s styles) lipgloss.Style { return s.err }, text)
}

func Info(text string) string {
	return render(func(s styles) lipgloss.Style { return s.info }, text)
}

// Muted styles secondary information such as defaults and file filters.
func Muted(text string) string {
	return render(func(s styles) lipgloss.Style { return s.muted }, text)
}

// Header styles section titles in help and listings.
func Header(text string) string {
	return render(func(s styles) lipgloss.Style { return s.header }, text)
}
