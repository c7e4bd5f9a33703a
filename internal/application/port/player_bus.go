package port

import (
	"context"
	"errors"
	"iter"

	"github.com/bnema/deskutil/internal/domain/entity"
)

var (
	// ErrBusUnavailable is returned when the session bus cannot be reached.
	ErrBusUnavailable = errors.New("session bus unavailable")
	// ErrNoMetadata is returned when a player exposes no usable track metadata
	// or reports itself as stopped.
	ErrNoMetadata = errors.New("no track metadata")
)

// PlayerBus queries media players registered on the desktop session bus.
type PlayerBus interface {
	// Players yields every reachable player in bus enumeration order.
	// Endpoints whose status cannot be read are skipped.
	Players(ctx context.Context) iter.Seq[entity.PlayerCandidate]

	// Track reads the current metadata of a player.
	// Returns ErrNoMetadata when there is nothing to display.
	Track(ctx context.Context, player entity.PlayerCandidate) (*entity.TrackInfo, error)

	// Close releases the bus connection.
	Close() error
}

// PlayerBusFactory opens a PlayerBus connection.
type PlayerBusFactory interface {
	Connect(ctx context.Context) (PlayerBus, error)
}
