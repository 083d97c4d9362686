package completions

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type Shell string

const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// Shells lists the supported shells.
func Shells() []string {
	return []string{string(ShellBash), string(ShellZsh), string(ShellFish)}
}

// RunningShell guesses the user's shell from $SHELL. Returns "" when it is
// unset or unsupported.
func RunningShell() Shell {
	name := filepath.Base(os.Getenv("SHELL"))
	for _, s := range Shells() {
		if name == s {
			return Shell(s)
		}
	}
	return ""
}

// BinaryName is the name the completion scripts register for.
func BinaryName() string {
	exe, err := os.Executable()
	if err != nil {
		return "faceswap"
	}
	name := strings.TrimSuffix(filepath.Base(exe), ".exe")
	if name == "" || strings.HasSuffix(name, ".test") {
		return "faceswap"
	}
	return name
}

// SourceInstructions returns the line that loads completions in the shell's rc file.
func SourceInstructions(shell Shell, bin string) string {
	switch shell {
	case ShellBash, ShellZsh:
		return fmt.Sprintf(`eval "$(%s completions %s --script)"`, bin, shell)
	case ShellFish:
		return fmt.Sprintf(`%s completions fish --script | source`, bin)
	default:
		return ""
	}
}

// RcFile returns the rc file for the given shell.
func RcFile(shell Shell) string {
	switch shell {
	case ShellBash:
		return "~/.bashrc"
	case ShellZsh:
		return "~/.zshrc"
	case ShellFish:
		return "~/.config/fish/config.fish"
	default:
		return ""
	}
}

// AutoInstallPath returns a file the shell loads completions from on its
// own, or "" when there is none.
func AutoInstallPath(shell Shell, bin, home string) string {
	if home == "" {
		return ""
	}
	switch shell {
	case ShellFish:
		return filepath.Join(home, ".config", "fish", "completions", bin+".fish")
	case ShellBash:
		if IsBashCompletionInstalled() {
			return filepath.Join(home, ".local", "share", "bash-completion", "completions", bin)
		}
	}
	return ""
}

// IsBashCompletionInstalled reports whether the bash-completion package,
// which loads per-user completion files, is present.
func IsBashCompletionInstalled() bool {
	for _, p := range []string{
		"/usr/share/bash-completion/bash_completion",
		"/usr/local/share/bash-completion/bash_completion",
		"/opt/homebrew/share/bash-completion/bash_completion",
		"/etc/bash_completion",
	} {
		if _, err := os.Stat(p); err == nil {
			return true
		}
	}
	return false
}
