// Package cli wires configuration, logging and styling for the cobra commands.
package cli

import (
	"context"
	"os"

	"github.com/bnema/deskutil/internal/cli/styles"
	"github.com/bnema/deskutil/internal/domain/build"
	"github.com/bnema/deskutil/internal/infrastructure/config"
	"github.com/bnema/deskutil/internal/logging"
)

const (
	fetchLogBaseName = "fetch.log"
	logTimeFormat    = "15:04:05"
)

// AppOptions selects how the App is built.
type AppOptions struct {
	// ConfigFile overrides the XDG config location when non-empty.
	ConfigFile string
	// FileLog enables the rotated log file when the config allows it.
	FileLog bool
}

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Theme     *styles.Theme
	BuildInfo build.Info

	// Manager is nil when the configuration could not be loaded.
	Manager *config.Manager
	// ConfigErr records why the defaults are in use.
	ConfigErr  error
	ConfigFile string

	// Context with logger
	ctx        context.Context
	logCleanup func()
}

// NewApp loads configuration and builds the logger. It never fails: a broken
// config is logged and replaced by the defaults so that the status bar
// reporter still answers.
func NewApp(opts AppOptions) *App {
	bootstrap := logging.NewFromEnv()
	ctx := logging.WithContext(context.Background(), bootstrap)

	app := &App{
		Theme:      styles.NewTheme(),
		logCleanup: func() {},
	}

	mgr, err := config.NewManager(opts.ConfigFile)
	if err == nil {
		app.ConfigFile = mgr.GetConfigFile()
		err = mgr.Load(ctx)
	}
	if err != nil {
		bootstrap.Warn().Err(err).Msg("using default configuration")
		app.Config = config.DefaultConfig()
		app.ConfigErr = err
		if app.ConfigFile == "" {
			app.ConfigFile, _ = config.GetConfigFile()
		}
	} else {
		app.Manager = mgr
		app.Config = mgr.Get()
		app.ConfigFile = mgr.GetConfigFile()
	}

	logger, cleanup, err := logging.NewWithFile(
		logging.Config{
			Level:      logging.ParseLevel(app.Config.Logging.Level),
			Format:     app.Config.Logging.Format,
			TimeFormat: logTimeFormat,
			Output:     os.Stderr,
		},
		logging.FileConfig{
			Enabled:       opts.FileLog && app.Config.Logging.EnableFileLog,
			LogDir:        app.Config.Logging.LogDir,
			BaseName:      fetchLogBaseName,
			MaxSizeMB:     app.Config.Logging.MaxSizeMB,
			MaxBackups:    app.Config.Logging.MaxBackups,
			MaxAgeDays:    app.Config.Logging.MaxAge,
			Compress:      true,
			WriteToStderr: true,
		},
	)
	if err != nil {
		logger.Warn().Err(err).Str("log_dir", app.Config.Logging.LogDir).Msg("file logging disabled")
	}

	app.ctx = logging.WithContext(context.Background(), logger)
	app.logCleanup = cleanup
	return app
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}
