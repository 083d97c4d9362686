// Package display decides whether a graphical session is available
// before anything GUI-related is started.
package display

import (
	"fmt"
	"os"
	"runtime"
)

// ExitCode is returned by the process when the GUI cannot be shown.
const ExitCode = 4

// UnavailableError reports a missing display.
type UnavailableError struct {
	GOOS   string
	Reason string
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("no display available on %s: %s", e.GOOS, e.Reason)
}

// Remediation returns a hint the user can act on.
func (e *UnavailableError) Remediation() string {
	return "Run faceswap from a desktop session, enable X11 forwarding (ssh -X), " +
		"or use the extract/train/convert commands directly."
}

// GetExitCode implements usage.ExitCoder.
func (e *UnavailableError) GetExitCode() int { return ExitCode }

// Env looks up an environment variable.
type Env func(key string) (string, bool)

// Check reports whether a display is available to the current process.
func Check() error {
	return CheckFor(runtime.GOOS, os.LookupEnv)
}

// CheckFor is Check for an explicit platform and environment.
// Windows and macOS always have a display; elsewhere DISPLAY or
// WAYLAND_DISPLAY must be set to a non-empty value.
func CheckFor(goos string, env Env) error {
	switch goos {
	case "windows", "darwin":
		return nil
	}

	for _, key := range []string{"DISPLAY", "WAYLAND_DISPLAY"} {
		if v, ok := env(key); ok && v != "" {
			return nil
		}
	}

	return &UnavailableError{
		GOOS:   goos,
		Reason: "neither DISPLAY nor WAYLAND_DISPLAY is set",
	}
}
