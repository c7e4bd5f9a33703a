package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/bnema/deskutil/internal/application/port"
	"github.com/bnema/deskutil/internal/application/usecase"
	"github.com/bnema/deskutil/internal/cli/styles"
	"github.com/bnema/deskutil/internal/domain/entity"
	"github.com/bnema/deskutil/internal/infrastructure/config"
	"github.com/bnema/deskutil/internal/infrastructure/fetcher"
	"github.com/bnema/deskutil/internal/infrastructure/scheduler"
	"github.com/bnema/deskutil/internal/logging"
)

var (
	fetchOnce bool
	fetchURL  string
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download the configured file now and then every interval",
	Long: `Download fetch.url into fetch.directory/fetch.filename immediately, then
again every fetch.interval, overwriting the previous copy.

Failed attempts are logged and never stop the schedule. The daemon runs
until interrupted. Send SIGHUP to trigger an immediate download; edits to
the config file are picked up without a restart.

Examples:
  deskutil fetch
  deskutil fetch --once
  deskutil fetch --url https://example.com/sub.yaml`,
	Args: cobra.NoArgs,
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)
	fetchCmd.Flags().BoolVar(&fetchOnce, "once", false, "download a single time and exit")
	fetchCmd.Flags().StringVar(&fetchURL, "url", "", "override the configured source URL")
}

func runFetch(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	if app.ConfigErr != nil {
		return fmt.Errorf("refusing to fetch with an invalid configuration: %w", app.ConfigErr)
	}

	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	task := fetchTaskFor(app.Config)
	if err := task.Validate(); err != nil {
		return fmt.Errorf("invalid fetch configuration: %w", err)
	}

	httpFetcher := fetcher.New(&http.Client{}, fetchOptionsFor(app.Config))

	if fetchOnce {
		return runFetchOnce(ctx, httpFetcher, task)
	}
	return runFetchDaemon(ctx, httpFetcher, task)
}

func fetchTaskFor(cfg *config.Config) entity.DownloadTask {
	task := cfg.DownloadTask()
	if fetchURL != "" {
		task.SourceURL = fetchURL
	}
	return task
}

func fetchOptionsFor(cfg *config.Config) fetcher.Options {
	userAgent := cfg.Fetch.UserAgent
	if userAgent == "" {
		userAgent = GetApp().BuildInfo.UserAgent()
	}
	return fetcher.Options{
		Timeout:      cfg.Fetch.Timeout,
		UserAgent:    userAgent,
		ValidateYAML: cfg.Fetch.ValidateYAML,
	}
}

func runFetchOnce(ctx context.Context, httpFetcher *fetcher.HTTPFetcher, task entity.DownloadTask) error {
	app := GetApp()
	uc := usecase.NewFetchFileUseCase(httpFetcher, nil)
	renderer := styles.NewFetchRenderer(app.Theme)

	var outcome entity.FetchOutcome
	if term.IsTerminal(int(os.Stdout.Fd())) {
		var err error
		outcome, err = runFetchWithSpinner(ctx, app.Theme, uc, task)
		if err != nil {
			return err
		}
	} else {
		outcome = uc.Execute(ctx, usecase.FetchFileInput{Task: task})
		fmt.Println(renderer.RenderOutcome(outcome))
	}

	if !outcome.OK() {
		return errors.New("download failed")
	}
	return nil
}

// runFetchDaemon loops until ctx is cancelled. Attempt failures are logged by
// the use case and never end the loop.
func runFetchDaemon(ctx context.Context, httpFetcher *fetcher.HTTPFetcher, initial entity.DownloadTask) error {
	app := GetApp()
	log := logging.FromContext(ctx)
	enableCrashForensics(ctx)

	ticker := scheduler.NewTicker(app.Config.Fetch.Interval)

	var mu sync.Mutex
	task := initial
	currentTask := func() entity.DownloadTask {
		mu.Lock()
		defer mu.Unlock()
		return task
	}

	events := port.DownloadEventFunc(func(ctx context.Context, event port.DownloadEvent) {
		if event.Type == port.DownloadEventStarted {
			return
		}
		logging.FromContext(ctx).Debug().
			Time("next_attempt", time.Now().Add(ticker.Interval())).
			Msg("next download scheduled")
	})
	uc := usecase.NewFetchFileUseCase(httpFetcher, events)

	if app.Manager != nil {
		app.Manager.OnConfigChange(func(cfg *config.Config) {
			next := fetchTaskFor(cfg)
			if err := next.Validate(); err != nil {
				log.Warn().Err(err).Msg("ignoring reloaded fetch settings")
				return
			}
			mu.Lock()
			task = next
			mu.Unlock()
			httpFetcher.Configure(fetchOptionsFor(cfg))
			ticker.SetInterval(cfg.Fetch.Interval)
			log.Info().
				Str("url", next.SourceURL).
				Dur("interval", cfg.Fetch.Interval).
				Msg("fetch settings updated")
		})
		if err := app.Manager.Watch(ctx); err != nil {
			log.Warn().Err(err).Msg("config hot reload unavailable")
		}
	}

	log.Info().
		Str("url", initial.SourceURL).
		Str("destination", initial.DestinationPath(time.Now())).
		Dur("interval", ticker.Interval()).
		Msg("fetch daemon started")

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return ticker.Run(gctx, func(ctx context.Context) {
			uc.Execute(ctx, usecase.FetchFileInput{Task: currentTask()})
		})
	})
	g.Go(func() error {
		return forwardHangups(gctx, ticker)
	})

	err := g.Wait()
	log.Info().Msg("fetch daemon stopped")
	return err
}

// forwardHangups turns SIGHUP into an immediate download.
func forwardHangups(ctx context.Context, ticker *scheduler.Ticker) error {
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-hup:
			logging.FromContext(ctx).Info().Msg("SIGHUP received, downloading now")
			ticker.Trigger()
		}
	}
}
