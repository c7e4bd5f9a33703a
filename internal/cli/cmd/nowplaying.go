package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bnema/deskutil/internal/application/usecase"
	"github.com/bnema/deskutil/internal/domain/entity"
	"github.com/bnema/deskutil/internal/infrastructure/mpris"
	"github.com/bnema/deskutil/internal/infrastructure/statusbar"
	"github.com/bnema/deskutil/internal/logging"
)

var nowPlayingCmd = &cobra.Command{
	Use:   "nowplaying",
	Short: "Print the current MPRIS track as a waybar JSON line",
	Long: `Query the session bus for MPRIS media players, pick the first playing one
(else the first paused one) and print exactly one JSON object on stdout.

Nothing to show, or any failure, prints {}. The command always exits 0;
diagnostics go to stderr.

Waybar example:
  "custom/media": {
    "exec": "deskutil nowplaying",
    "return-type": "json",
    "interval": 2
  }`,
	Args: cobra.NoArgs,
	RunE: runNowPlaying,
}

func init() {
	rootCmd.AddCommand(nowPlayingCmd)
}

func runNowPlaying(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	log := logging.FromContext(ctx)

	writer := statusbar.NewWriter(os.Stdout)
	uc := usecase.NewReportNowPlayingUseCase(mpris.NewFactory(), app.Config.NowPlayingOptions())

	out := uc.Execute(ctx)
	if ctx.Err() != nil {
		log.Info().Msg("interrupted")
		out = entity.StatusBarOutput{}
	}

	if err := writer.Emit(ctx, out); err != nil {
		log.Error().Err(err).Msg("failed to write status bar output")
	}
	return nil
}
