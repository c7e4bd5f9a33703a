package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateFetch(config)...)
	validationErrors = append(validationErrors, validateNowPlaying(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	// If there are validation errors, return them
	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateFetch(config *Config) []string {
	var validationErrors []string

	// An empty URL is allowed here; only the fetch command requires one.
	if config.Fetch.URL != "" {
		u, err := url.Parse(config.Fetch.URL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			validationErrors = append(validationErrors, fmt.Sprintf(
				"fetch.url must be an absolute http or https URL (got: %s)",
				config.Fetch.URL,
			))
		}
	}
	if config.Fetch.Interval <= 0 {
		validationErrors = append(validationErrors, "fetch.interval must be positive")
	}
	if config.Fetch.Timeout < 0 {
		validationErrors = append(validationErrors, "fetch.timeout must be non-negative")
	}
	if strings.ContainsRune(config.Fetch.Filename, '/') {
		validationErrors = append(validationErrors, "fetch.filename must not contain a path separator")
	}
	return validationErrors
}

func validateNowPlaying(config *Config) []string {
	if config.NowPlaying.MaxLength < 1 {
		return []string{"nowplaying.max_length must be at least 1"}
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	if config.Logging.MaxAge < 0 {
		validationErrors = append(validationErrors, "logging.max_age must be non-negative")
	}
	if config.Logging.MaxSizeMB < 0 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be non-negative")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error", "":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.level must be one of: trace, debug, info, warn, error (got: %s)",
			config.Logging.Level,
		))
	}
	switch config.Logging.Format {
	case "json", "console", "":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.format must be one of: json, console (got: %s)",
			config.Logging.Format,
		))
	}
	return validationErrors
}
