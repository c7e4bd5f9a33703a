// Package config loads, validates and watches the deskutil configuration file.
package config

import (
	"time"

	"github.com/bnema/deskutil/internal/domain/entity"
	"github.com/bnema/deskutil/internal/domain/nowplaying"
)

// Config represents the complete configuration for deskutil.
type Config struct {
	Fetch      FetchConfig      `mapstructure:"fetch" yaml:"fetch" toml:"fetch" json:"fetch"`
	NowPlaying NowPlayingConfig `mapstructure:"nowplaying" yaml:"nowplaying" toml:"nowplaying" json:"nowplaying"`
	Logging    LoggingConfig    `mapstructure:"logging" yaml:"logging" toml:"logging" json:"logging"`
}

// FetchConfig configures the scheduled file fetcher.
type FetchConfig struct {
	// URL is the remote resource to download. Required to run the fetcher.
	URL string `mapstructure:"url" yaml:"url" toml:"url" json:"url" jsonschema:"format=uri"`
	// Directory receives the downloaded file (created if missing).
	Directory string `mapstructure:"directory" yaml:"directory" toml:"directory" json:"directory"`
	// Filename of the local copy. Empty derives it from the URL path.
	Filename string `mapstructure:"filename" yaml:"filename" toml:"filename" json:"filename"`
	// Interval between attempts, measured from the start of one attempt to the next.
	Interval time.Duration `mapstructure:"interval" yaml:"interval" toml:"interval" json:"interval" jsonschema:"type=string,example=1h"`
	// Timeout bounds one HTTP attempt. Zero disables the bound.
	Timeout      time.Duration `mapstructure:"timeout" yaml:"timeout" toml:"timeout" json:"timeout" jsonschema:"type=string,example=30s"`
	UserAgent    string        `mapstructure:"user_agent" yaml:"user_agent" toml:"user_agent" json:"user_agent"`
	ValidateYAML bool          `mapstructure:"validate_yaml" yaml:"validate_yaml" toml:"validate_yaml" json:"validate_yaml"`
}

// NowPlayingConfig configures the status bar reporter.
type NowPlayingConfig struct {
	// MaxLength is the maximum display text length in characters, ellipsis included.
	MaxLength   int    `mapstructure:"max_length" yaml:"max_length" toml:"max_length" json:"max_length" jsonschema:"minimum=1"`
	Placeholder string `mapstructure:"placeholder" yaml:"placeholder" toml:"placeholder" json:"placeholder"`
	DefaultIcon string `mapstructure:"default_icon" yaml:"default_icon" toml:"default_icon" json:"default_icon"`
	// Icons maps lowercased player names to glyphs.
	Icons map[string]string `mapstructure:"icons" yaml:"icons" toml:"icons" json:"icons"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" yaml:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`

	// File output configuration
	LogDir        string `mapstructure:"log_dir" yaml:"log_dir" toml:"log_dir" json:"log_dir"`
	EnableFileLog bool   `mapstructure:"enable_file_log" yaml:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" yaml:"max_size_mb" toml:"max_size_mb" json:"max_size_mb"`
	MaxBackups    int    `mapstructure:"max_backups" yaml:"max_backups" toml:"max_backups" json:"max_backups"`
	// MaxAge is the retention of rotated log files, in days.
	MaxAge int `mapstructure:"max_age" yaml:"max_age" toml:"max_age" json:"max_age"`
}

// DownloadTask builds the fetch task described by the configuration.
func (c *Config) DownloadTask() entity.DownloadTask {
	return entity.DownloadTask{
		SourceURL:            c.Fetch.URL,
		DestinationDirectory: c.Fetch.Directory,
		DestinationFilename:  c.Fetch.Filename,
	}
}

// NowPlayingOptions returns the formatting options of the status bar reporter.
func (c *Config) NowPlayingOptions() nowplaying.Options {
	return nowplaying.Options{
		MaxLength:   c.NowPlaying.MaxLength,
		Placeholder: c.NowPlaying.Placeholder,
		DefaultIcon: c.NowPlaying.DefaultIcon,
		Icons:       c.NowPlaying.Icons,
	}
}
