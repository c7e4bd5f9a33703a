// Package cmd provides Cobra CLI commands for deskutil.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/deskutil/internal/cli"
	"github.com/bnema/deskutil/internal/domain/build"
)

var (
	app        *cli.App
	buildInfo  build.Info
	configFile string
	rootCmd    = &cobra.Command{
		Use:   "deskutil",
		Short: "Small desktop helpers: a scheduled file fetcher and a now-playing reporter",
		Long: `deskutil bundles two independent desktop helpers.

  fetch       download a remote file now and then every interval,
              overwriting a fixed local path (e.g. a proxy subscription)
  nowplaying  print the current MPRIS track as one JSON line for a
              waybar custom module

Configuration lives in $XDG_CONFIG_HOME/deskutil/config.toml and can be
overridden with DESKUTIL_* environment variables.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion":
				return nil
			}

			app = cli.NewApp(cli.AppOptions{
				ConfigFile: configFile,
				FileLog:    cmd.Name() == fetchCmd.Name(),
			})
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (default $XDG_CONFIG_HOME/deskutil/config.toml)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
