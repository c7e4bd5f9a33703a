package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/bnema/deskutil/internal/application/port"
	"github.com/bnema/deskutil/internal/domain/entity"
	"github.com/bnema/deskutil/internal/logging"
)

// statusCoder is implemented by fetch errors that carry an HTTP status.
type statusCoder interface {
	error
	HTTPStatus() int
}

// FetchFileUseCase performs one scheduled download attempt.
// Failures are logged and returned as values, never as panics or errors.
type FetchFileUseCase struct {
	fetcher port.FileFetcher
	events  port.DownloadEventHandler
	newID   func() string
}

// NewFetchFileUseCase creates a new FetchFileUseCase. events may be nil.
func NewFetchFileUseCase(fetcher port.FileFetcher, events port.DownloadEventHandler) *FetchFileUseCase {
	return &FetchFileUseCase{
		fetcher: fetcher,
		events:  events,
		newID:   uuid.NewString,
	}
}

// FetchFileInput describes one attempt.
type FetchFileInput struct {
	Task entity.DownloadTask
}

// Execute downloads input.Task once and reports the outcome.
func (uc *FetchFileUseCase) Execute(ctx context.Context, input FetchFileInput) (outcome entity.FetchOutcome) {
	outcome.AttemptID = uc.newID()
	ctx = logging.WithFields(ctx,
		logging.FieldAttemptID, outcome.AttemptID,
		logging.FieldURL, input.Task.SourceURL,
	)
	log := logging.FromContext(ctx)

	task := input.Task.Resolved(time.Now())
	destination := task.DestinationPath(time.Now())

	defer logging.RecoverPanic(ctx, "fetch", func(err error) {
		outcome.Result = nil
		outcome.Err = err
		outcome.Reason = "unexpected error: " + err.Error()
		uc.emit(ctx, port.DownloadEvent{
			Type:        port.DownloadEventFailed,
			AttemptID:   outcome.AttemptID,
			URL:         input.Task.SourceURL,
			Destination: destination,
			Error:       err,
		})
	})

	log.Info().Str("destination", destination).Msg("starting download")
	uc.emit(ctx, port.DownloadEvent{
		Type:        port.DownloadEventStarted,
		AttemptID:   outcome.AttemptID,
		URL:         input.Task.SourceURL,
		Destination: destination,
	})

	result, err := uc.fetcher.Fetch(ctx, task)
	if err != nil {
		outcome.Err = err
		outcome.Reason = failureReason(err)
		log.Error().Err(err).Msgf("download failed: %s", outcome.Reason)
		uc.emit(ctx, port.DownloadEvent{
			Type:        port.DownloadEventFailed,
			AttemptID:   outcome.AttemptID,
			URL:         input.Task.SourceURL,
			Destination: destination,
			Error:       err,
		})
		return outcome
	}

	outcome.Result = result
	log.Info().
		Str("path", result.Path).
		Str("size", humanize.Bytes(uint64(max(result.Bytes, 0)))).
		Dur("took", result.Duration).
		Msgf("downloaded to %s", result.Path)
	uc.emit(ctx, port.DownloadEvent{
		Type:        port.DownloadEventFinished,
		AttemptID:   outcome.AttemptID,
		URL:         input.Task.SourceURL,
		Destination: result.Path,
		Bytes:       result.Bytes,
	})
	return outcome
}

func (uc *FetchFileUseCase) emit(ctx context.Context, event port.DownloadEvent) {
	if uc.events == nil {
		return
	}
	uc.events.OnDownloadEvent(ctx, event)
}

// failureReason turns a fetch error into a short human-readable reason.
func failureReason(err error) string {
	var sc statusCoder
	switch {
	case errors.As(err, &sc):
		return fmt.Sprintf("server answered HTTP %d", sc.HTTPStatus())
	case errors.Is(err, context.DeadlineExceeded):
		return "timed out"
	case errors.Is(err, context.Canceled):
		return "cancelled"
	case errors.Is(err, entity.ErrInvalidDownloadTask):
		return "invalid configuration: " + err.Error()
	default:
		return err.Error()
	}
}
