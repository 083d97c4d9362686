package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

const appDirName = "faceswap"

// ConfigEnv overrides the config file location when set.
const ConfigEnv = "FACESWAP_CONFIG"

// AppDataDir returns the directory holding the log file, created 0700.
// Uses os.UserConfigDir():
//   - macOS: ~/Library/Application Support/faceswap
//   - Linux: $XDG_CONFIG_HOME/faceswap or ~/.config/faceswap
//   - Windows: %AppData%\faceswap
func AppDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	path := filepath.Join(dir, appDirName)
	_ = os.MkdirAll(path, 0700)
	return path
}

// StateDir returns where run history lives.
//   - macOS: ~/Library/Application Support/faceswap
//   - Linux: $XDG_STATE_HOME/faceswap or ~/.local/state/faceswap
//   - Windows: %LOCALAPPDATA%\faceswap
func StateDir() string {
	var base string

	switch runtime.GOOS {
	case "darwin":
		return AppDataDir()
	case "windows":
		base = os.Getenv("LOCALAPPDATA")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "."
			}
			base = filepath.Join(home, "AppData", "Local")
		}
	default:
		base = os.Getenv("XDG_STATE_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "."
			}
			base = filepath.Join(home, ".local", "state")
		}
	}

	return filepath.Join(base, appDirName)
}

// ConfigFilePath returns $FACESWAP_CONFIG, or ~/.faceswaprc.
func ConfigFilePath() (string, error) {
	if p := os.Getenv(ConfigEnv); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".faceswaprc"), nil
}

// LogFilePath returns the path of the application log.
func LogFilePath() string {
	return filepath.Join(AppDataDir(), "faceswap.log")
}

// HistoryDBPath returns the path of the run history database.
func HistoryDBPath() string {
	return filepath.Join(StateDir(), "history.db")
}
