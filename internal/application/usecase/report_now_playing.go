package usecase

import (
	"context"
	"errors"
	"slices"

	"github.com/bnema/deskutil/internal/application/port"
	"github.com/bnema/deskutil/internal/domain/entity"
	"github.com/bnema/deskutil/internal/domain/nowplaying"
	"github.com/bnema/deskutil/internal/logging"
)

// ReportNowPlayingUseCase builds the status bar record for the most relevant player.
type ReportNowPlayingUseCase struct {
	buses port.PlayerBusFactory
	opts  nowplaying.Options
}

// NewReportNowPlayingUseCase creates a new ReportNowPlayingUseCase.
func NewReportNowPlayingUseCase(buses port.PlayerBusFactory, opts nowplaying.Options) *ReportNowPlayingUseCase {
	return &ReportNowPlayingUseCase{
		buses: buses,
		opts:  opts,
	}
}

// Execute never fails: every problem ends up as the empty record.
func (uc *ReportNowPlayingUseCase) Execute(ctx context.Context) (out entity.StatusBarOutput) {
	ctx = logging.WithFields(ctx, logging.FieldComponent, "nowplaying")
	log := logging.FromContext(ctx)

	defer logging.RecoverPanic(ctx, "nowplaying", func(error) {
		out = entity.StatusBarOutput{}
	})

	bus, err := uc.buses.Connect(ctx)
	if err != nil {
		log.Error().Err(err).Msg("cannot connect to session bus")
		return entity.StatusBarOutput{}
	}
	defer func() {
		if closeErr := bus.Close(); closeErr != nil {
			log.Debug().Err(closeErr).Msg("failed to close session bus")
		}
	}()

	candidates := slices.Collect(bus.Players(ctx))
	if len(candidates) == 0 {
		log.Info().Msg("no media players found")
		return entity.StatusBarOutput{}
	}

	player, ok := nowplaying.SelectCandidate(candidates)
	if !ok {
		log.Info().Int("players", len(candidates)).Msg("no playing or paused player")
		return entity.StatusBarOutput{}
	}

	ctx = logging.WithFields(ctx, logging.FieldPlayer, player.ShortName)
	log = logging.FromContext(ctx)

	track, err := bus.Track(ctx, player)
	switch {
	case errors.Is(err, port.ErrNoMetadata):
		log.Info().Msg("player has no track to show")
		return entity.StatusBarOutput{}
	case err != nil:
		log.Debug().Err(err).Msg("failed to read player metadata")
		return entity.StatusBarOutput{}
	}

	return nowplaying.BuildOutput(player, *track, uc.opts)
}
