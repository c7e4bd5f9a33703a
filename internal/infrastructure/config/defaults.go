package config

import (
	"time"

	"github.com/bnema/deskutil/internal/domain/nowplaying"
)

const (
	defaultFetchFilename = "config.yaml"
	defaultFetchInterval = time.Hour

	defaultLogLevel      = "info"
	defaultLogFormat     = "console"
	defaultLogMaxSizeMB  = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAgeDays = 7
)

// getDefaultLogDir returns the default log directory, falls back to empty string on error
func getDefaultLogDir() string {
	logDir, err := GetLogDir()
	if err != nil {
		return ""
	}
	return logDir
}

func getDefaultFetchDir() string {
	dir, err := GetFetchDir()
	if err != nil {
		return ""
	}
	return dir
}

// DefaultConfig returns the default configuration values for deskutil.
func DefaultConfig() *Config {
	return &Config{
		Fetch: FetchConfig{
			Directory: getDefaultFetchDir(),
			Filename:  defaultFetchFilename,
			Interval:  defaultFetchInterval,
		},
		NowPlaying: NowPlayingConfig{
			MaxLength:   nowplaying.DefaultMaxLength,
			Placeholder: nowplaying.DefaultPlaceholder,
			DefaultIcon: nowplaying.DefaultIcon,
			Icons:       nowplaying.DefaultIcons(),
		},
		Logging: LoggingConfig{
			Level:      defaultLogLevel,
			Format:     defaultLogFormat,
			LogDir:     getDefaultLogDir(),
			MaxSizeMB:  defaultLogMaxSizeMB,
			MaxBackups: defaultLogMaxBackups,
			MaxAge:     defaultLogMaxAgeDays,
		},
	}
}
