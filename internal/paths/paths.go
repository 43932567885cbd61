package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

const appDirName = "clik"

// HomeEnv overrides every directory below when set. Tests and portable
// installs point it at a scratch directory.
const HomeEnv = "CLIK_HOME"

// AppDataDir returns the application data directory for config and logs.
// Uses os.UserConfigDir() which returns:
//   - macOS: ~/Library/Application Support
//   - Linux: $XDG_CONFIG_HOME or ~/.config
//   - Windows: %AppData% (roaming)
func AppDataDir() string {
	if home := os.Getenv(HomeEnv); home != "" {
		_ = os.MkdirAll(home, 0700)
		return home
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}

	path := filepath.Join(dir, appDirName)
	_ = os.MkdirAll(path, 0700)

	return path
}

// AppLocalDataDir returns the OS-appropriate local data directory where
// the database lives.
//   - macOS: ~/Library/Application Support/clik
//   - Linux: $XDG_DATA_HOME/clik or ~/.local/share/clik
//   - Windows: %LOCALAPPDATA%\clik
func AppLocalDataDir() string {
	if home := os.Getenv(HomeEnv); home != "" {
		return home
	}

	var base string

	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "."
		}
		base = filepath.Join(home, "Library", "Application Support")

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
		base = os.Getenv("XDG_DATA_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "."
			}
			base = filepath.Join(home, ".local", "share")
		}
	}

	return filepath.Join(base, appDirName)
}

// ConfigFilePath returns the YAML configuration file path.
func ConfigFilePath() string {
	return filepath.Join(AppDataDir(), "config.yaml")
}

// DBPath returns the default SQLite database path.
func DBPath() string {
	return filepath.Join(AppLocalDataDir(), "clik.db")
}

// LogFilePath returns the path to the application log file.
func LogFilePath() string {
	return filepath.Join(AppDataDir(), "clik.log")
}
