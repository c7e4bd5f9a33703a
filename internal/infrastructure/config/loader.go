package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/bnema/deskutil/internal/logging"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
	// explicitFile is the --config override, empty when the XDG location is used.
	explicitFile string
}

// NewManager creates a new configuration manager. A non-empty configFile
// replaces the XDG lookup.
func NewManager(configFile string) (*Manager, error) {
	v := viper.New()

	v.SetConfigType("toml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		configDir, err := GetConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
		}
		v.AddConfigPath(configDir)
		v.AddConfigPath(".") // Current directory for development
	}

	// DESKUTIL_FETCH_URL, DESKUTIL_NOWPLAYING_MAX_LENGTH, ...
	v.SetEnvPrefix("DESKUTIL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Same names the logger reads before any config exists.
	if err := v.BindEnv("logging.level", "DESKUTIL_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind DESKUTIL_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "DESKUTIL_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind DESKUTIL_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:        v,
		callbacks:    make([]func(*Config), 0),
		explicitFile: configFile,
	}, nil
}

// Load loads the configuration from file and environment variables.
// A missing file is created with the defaults.
func (m *Manager) Load(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(ctx); err != nil {
		return err
	}

	config, err := m.decode()
	if err != nil {
		return err
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile(ctx context.Context) error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var configFileNotFoundError viper.ConfigFileNotFoundError
	if !errors.As(err, &configFileNotFoundError) && !errors.Is(err, fs.ErrNotExist) {
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configFile, _ = m.targetFile()
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}

	configFile, createErr := m.createDefaultConfig(ctx)
	if createErr != nil {
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			configFile,
			createErr,
		)
	}
	m.viper.SetConfigFile(configFile)
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf(
			"failed to read newly created config file: %w\nThe config file was created but couldn't be read. Please check the file format",
			rereadErr,
		)
	}
	return nil
}

// decode unmarshals, normalizes and validates the current viper state.
func (m *Manager) decode() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}

	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

func normalizeConfig(config *Config) {
	config.Fetch.URL = strings.TrimSpace(config.Fetch.URL)
	config.Fetch.Directory = expandHome(strings.TrimSpace(config.Fetch.Directory))
	config.Fetch.Filename = strings.TrimSpace(config.Fetch.Filename)
	config.Fetch.UserAgent = strings.TrimSpace(config.Fetch.UserAgent)

	icons := make(map[string]string, len(config.NowPlaying.Icons))
	for name, glyph := range config.NowPlaying.Icons {
		icons[strings.ToLower(strings.TrimSpace(name))] = glyph
	}
	config.NowPlaying.Icons = icons

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.Format == "text" {
		config.Logging.Format = "console"
	}
	config.Logging.LogDir = expandHome(config.Logging.LogDir)
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}

	// Return a copy to prevent external modification
	configCopy := *m.config
	configCopy.NowPlaying.Icons = make(map[string]string, len(m.config.NowPlaying.Icons))
	for name, glyph := range m.config.NowPlaying.Icons {
		configCopy.NowPlaying.Icons[name] = glyph
	}
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	path, _ := m.targetFile()
	return path
}

func (m *Manager) targetFile() (string, error) {
	if m.explicitFile != "" {
		return m.explicitFile, nil
	}
	return GetConfigFile()
}

// createDefaultConfig writes the defaults to the target file and returns its path.
func (m *Manager) createDefaultConfig(ctx context.Context) (string, error) {
	configFile, err := m.targetFile()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return configFile, err
	}

	if err := m.viper.SafeWriteConfigAs(configFile); err != nil {
		return configFile, fmt.Errorf("failed to write config file: %w", err)
	}

	// Stdout may be a status bar, so this only goes to the log.
	logging.FromContext(ctx).Info().Str("path", configFile).Msg("created default configuration file")

	return configFile, nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.setFetchDefaults(defaults)
	m.setNowPlayingDefaults(defaults)
	m.setLoggingDefaults(defaults)
}

func (m *Manager) setFetchDefaults(defaults *Config) {
	m.viper.SetDefault("fetch.url", defaults.Fetch.URL)
	m.viper.SetDefault("fetch.directory", defaults.Fetch.Directory)
	m.viper.SetDefault("fetch.filename", defaults.Fetch.Filename)
	// Durations as strings so the generated TOML stays readable.
	m.viper.SetDefault("fetch.interval", defaults.Fetch.Interval.String())
	m.viper.SetDefault("fetch.timeout", defaults.Fetch.Timeout.String())
	m.viper.SetDefault("fetch.user_agent", defaults.Fetch.UserAgent)
	m.viper.SetDefault("fetch.validate_yaml", defaults.Fetch.ValidateYAML)
}

func (m *Manager) setNowPlayingDefaults(defaults *Config) {
	m.viper.SetDefault("nowplaying.max_length", defaults.NowPlaying.MaxLength)
	m.viper.SetDefault("nowplaying.placeholder", defaults.NowPlaying.Placeholder)
	m.viper.SetDefault("nowplaying.default_icon", defaults.NowPlaying.DefaultIcon)
	m.viper.SetDefault("nowplaying.icons", defaults.NowPlaying.Icons)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age", defaults.Logging.MaxAge)
}
