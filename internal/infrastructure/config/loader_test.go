package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/deskutil/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func TestSetDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-config")
	t.Setenv("ENV", "")

	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, "/tmp/xdg-config/clash", mgr.viper.GetString("fetch.directory"))
	assert.Equal(t, "config.yaml", mgr.viper.GetString("fetch.filename"))
	assert.Equal(t, time.Hour, mgr.viper.GetDuration("fetch.interval"))
	assert.Equal(t, time.Duration(0), mgr.viper.GetDuration("fetch.timeout"))
	assert.Equal(t, 40, mgr.viper.GetInt("nowplaying.max_length"))
	assert.Equal(t, "Unknown Track", mgr.viper.GetString("nowplaying.placeholder"))
	assert.Equal(t, "info", mgr.viper.GetString("logging.level"))
}

func TestLoad_CreatesDefaultConfig(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "nested", "config.toml")

	mgr, err := NewManager(configFile)
	require.NoError(t, err)
	require.NoError(t, mgr.Load(testContext()))

	_, statErr := os.Stat(configFile)
	require.NoError(t, statErr)

	cfg := mgr.Get()
	assert.Equal(t, time.Hour, cfg.Fetch.Interval)
	assert.Equal(t, "config.yaml", cfg.Fetch.Filename)
	assert.Equal(t, 40, cfg.NowPlaying.MaxLength)
	assert.Equal(t, configFile, mgr.GetConfigFile())
}

func TestLoad_ReadsFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.toml")
	content := `
[fetch]
url = " https://example.com/sub/clash.yaml "
directory = "` + dir + `"
interval = "30m"
timeout = "15s"

[nowplaying]
max_length = 25

[nowplaying.icons]
Spotify = "S"
`
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0o644))
	t.Setenv("DESKUTIL_NOWPLAYING_PLACEHOLDER", "Nothing")
	t.Setenv("DESKUTIL_LOG_LEVEL", "DEBUG")

	mgr, err := NewManager(configFile)
	require.NoError(t, err)
	require.NoError(t, mgr.Load(testContext()))

	cfg := mgr.Get()
	assert.Equal(t, "https://example.com/sub/clash.yaml", cfg.Fetch.URL)
	assert.Equal(t, dir, cfg.Fetch.Directory)
	assert.Equal(t, 30*time.Minute, cfg.Fetch.Interval)
	assert.Equal(t, 15*time.Second, cfg.Fetch.Timeout)
	assert.Equal(t, 25, cfg.NowPlaying.MaxLength)
	assert.Equal(t, "Nothing", cfg.NowPlaying.Placeholder)
	assert.Equal(t, "S", cfg.NowPlaying.Icons["spotify"])
	assert.Equal(t, "debug", cfg.Logging.Level)

	task := cfg.DownloadTask()
	assert.Equal(t, "https://example.com/sub/clash.yaml", task.SourceURL)
	assert.Equal(t, "config.yaml", task.DestinationFilename)
	assert.Equal(t, 25, cfg.NowPlayingOptions().MaxLength)
}

func TestLoad_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.toml")
	content := `
[fetch]
url = "ftp://example.com/file"
interval = "0s"
`
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0o644))

	mgr, err := NewManager(configFile)
	require.NoError(t, err)

	err = mgr.Load(testContext())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch.url")
	assert.Contains(t, err.Error(), "fetch.interval")
}

func TestGet_ReturnsCopy(t *testing.T) {
	mgr := &Manager{config: DefaultConfig()}

	cfg := mgr.Get()
	cfg.NowPlaying.Icons["spotify"] = "changed"
	cfg.Fetch.URL = "https://changed.example"

	fresh := mgr.Get()
	assert.NotEqual(t, "changed", fresh.NowPlaying.Icons["spotify"])
	assert.Empty(t, fresh.Fetch.URL)
}

func TestNormalizeConfig(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	cfg := DefaultConfig()
	cfg.Fetch.URL = "  https://example.com/x  "
	cfg.Fetch.Directory = "~/clash"
	cfg.NowPlaying.Icons = map[string]string{" VLC ": "v"}
	cfg.Logging.Format = "TEXT"
	cfg.Logging.Level = "Warn"

	normalizeConfig(cfg)

	assert.Equal(t, "https://example.com/x", cfg.Fetch.URL)
	assert.Equal(t, "/home/tester/clash", cfg.Fetch.Directory)
	assert.Equal(t, map[string]string{"vlc": "v"}, cfg.NowPlaying.Icons)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestGetXDGDirs_DevMode(t *testing.T) {
	t.Setenv("ENV", "dev")

	dirs, err := GetXDGDirs()
	require.NoError(t, err)

	cwd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cwd, ".dev", "deskutil"), dirs.ConfigHome)
	assert.Equal(t, filepath.Join(cwd, ".dev"), dirs.ConfigRoot)
}

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)

	assert.Contains(t, string(data), `"max_length"`)
	assert.Contains(t, string(data), `"validate_yaml"`)
	assert.Contains(t, string(data), "deskutil configuration")
}
