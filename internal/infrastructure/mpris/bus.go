// Package mpris reads media player state from MPRIS endpoints on the D-Bus session bus.
package mpris

import (
	"context"
	"fmt"
	"iter"
	"strings"

	"github.com/godbus/dbus/v5"

	"github.com/bnema/deskutil/internal/application/port"
	"github.com/bnema/deskutil/internal/domain/entity"
	"github.com/bnema/deskutil/internal/domain/nowplaying"
	"github.com/bnema/deskutil/internal/logging"
)

const (
	objectPath      = "/org/mpris/MediaPlayer2"
	playerInterface = "org.mpris.MediaPlayer2.Player"

	propPlaybackStatus = "PlaybackStatus"
	propMetadata       = "Metadata"

	keyArtist = "xesam:artist"
	keyTitle  = "xesam:title"
	keyAlbum  = "xesam:album"
)

// Compile-time interface checks.
var (
	_ port.PlayerBus        = (*Bus)(nil)
	_ port.PlayerBusFactory = (*Factory)(nil)
)

// conn is the slice of the session bus the reporter needs.
type conn interface {
	ListNames(ctx context.Context) ([]string, error)
	GetProperty(ctx context.Context, dest, iface, prop string) (dbus.Variant, error)
	Close() error
}

// Bus implements port.PlayerBus on top of a session bus connection.
type Bus struct {
	conn conn
}

// Factory connects to the user's session bus.
type Factory struct{}

// NewFactory returns a factory for session bus connections.
func NewFactory() *Factory {
	return &Factory{}
}

// Connect opens a private session bus connection.
func (f *Factory) Connect(ctx context.Context) (port.PlayerBus, error) {
	c, err := dbus.ConnectSessionBus(dbus.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", port.ErrBusUnavailable, err)
	}
	return newBus(&sessionConn{conn: c}), nil
}

func newBus(c conn) *Bus {
	return &Bus{conn: c}
}

// Players yields MPRIS players in bus enumeration order. A player whose
// status cannot be read is logged at debug level and skipped.
func (b *Bus) Players(ctx context.Context) iter.Seq[entity.PlayerCandidate] {
	return func(yield func(entity.PlayerCandidate) bool) {
		log := logging.FromContext(ctx)

		names, err := b.conn.ListNames(ctx)
		if err != nil {
			log.Error().Err(err).Msg("failed to list bus names")
			return
		}

		for _, name := range names {
			if !strings.HasPrefix(name, entity.MPRISPrefix) {
				continue
			}
			if ctx.Err() != nil {
				return
			}

			status, err := b.playbackStatus(ctx, name)
			if err != nil {
				log.Debug().Err(err).Str("bus_name", name).Msg("skipping player")
				continue
			}

			if !yield(entity.NewPlayerCandidate(name, status)) {
				return
			}
		}
	}
}

func (b *Bus) playbackStatus(ctx context.Context, busName string) (entity.PlaybackStatus, error) {
	v, err := b.conn.GetProperty(ctx, busName, playerInterface, propPlaybackStatus)
	if err != nil {
		return entity.PlaybackUnknown, fmt.Errorf("read %s: %w", propPlaybackStatus, err)
	}
	raw, ok := v.Value().(string)
	if !ok {
		return entity.PlaybackUnknown, nil
	}
	return entity.ParsePlaybackStatus(raw), nil
}

// Track reads the current metadata and status of a player.
func (b *Bus) Track(ctx context.Context, player entity.PlayerCandidate) (*entity.TrackInfo, error) {
	busName := entity.FullBusName(player.BusName)

	v, err := b.conn.GetProperty(ctx, busName, playerInterface, propMetadata)
	if err != nil {
		return nil, fmt.Errorf("read %s of %s: %w", propMetadata, busName, err)
	}

	metadata, ok := v.Value().(map[string]dbus.Variant)
	if !ok || len(metadata) == 0 {
		return nil, port.ErrNoMetadata
	}

	// Status may have changed since enumeration.
	status, err := b.playbackStatus(ctx, busName)
	if err != nil {
		return nil, fmt.Errorf("player %s: %w", busName, err)
	}
	if status == entity.PlaybackStopped {
		return nil, port.ErrNoMetadata
	}

	return &entity.TrackInfo{
		Artist: nowplaying.NormalizeArtist(variantValue(metadata, keyArtist)),
		Title:  stringValue(metadata, keyTitle),
		Album:  stringValue(metadata, keyAlbum),
		Status: status,
	}, nil
}

// Close releases the bus connection.
func (b *Bus) Close() error {
	return b.conn.Close()
}

func variantValue(metadata map[string]dbus.Variant, key string) any {
	v, ok := metadata[key]
	if !ok {
		return nil
	}
	return v.Value()
}

func stringValue(metadata map[string]dbus.Variant, key string) string {
	s, _ := variantValue(metadata, key).(string)
	return s
}
