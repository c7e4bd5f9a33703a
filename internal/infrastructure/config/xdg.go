package config

import (
	"os"
	"path/filepath"
)

const (
	appName = "deskutil"

	dirPerm  = 0o755
	filePerm = 0o644
)

// XDGDirs holds the XDG Base Directory paths used by deskutil.
type XDGDirs struct {
	// ConfigRoot is $XDG_CONFIG_HOME itself, shared with other programs.
	ConfigRoot string
	ConfigHome string
	StateHome  string
}

// GetXDGDirs resolves the XDG Base Directory paths:
//   - $XDG_CONFIG_HOME/deskutil (default: ~/.config/deskutil)
//   - $XDG_STATE_HOME/deskutil (default: ~/.local/state/deskutil)
//
// With ENV=dev everything lives under ./.dev/deskutil.
func GetXDGDirs() (*XDGDirs, error) {
	if os.Getenv("ENV") == "dev" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		devRoot := filepath.Join(cwd, ".dev")
		devDir := filepath.Join(devRoot, appName)
		return &XDGDirs{
			ConfigRoot: devRoot,
			ConfigHome: devDir,
			StateHome:  devDir,
		}, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	configRoot := os.Getenv("XDG_CONFIG_HOME")
	if configRoot == "" {
		configRoot = filepath.Join(homeDir, ".config")
	}

	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		stateHome = filepath.Join(homeDir, ".local", "state")
	}

	return &XDGDirs{
		ConfigRoot: configRoot,
		ConfigHome: filepath.Join(configRoot, appName),
		StateHome:  filepath.Join(stateHome, appName),
	}, nil
}

// GetConfigDir returns the XDG config directory for deskutil.
func GetConfigDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.ConfigHome, nil
}

// GetConfigFile returns the path to the main configuration file.
func GetConfigFile() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// GetLogDir returns the log directory. Logs are state, so they live under XDG_STATE_HOME.
func GetLogDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return filepath.Join(dirs.StateHome, "logs"), nil
}

// GetFetchDir returns the default destination directory of the fetcher,
// $XDG_CONFIG_HOME/clash.
func GetFetchDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return filepath.Join(dirs.ConfigRoot, "clash"), nil
}
