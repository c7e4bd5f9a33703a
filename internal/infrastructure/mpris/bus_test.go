package mpris

import (
	"bytes"
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/godbus/dbus/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/deskutil/internal/application/port"
	"github.com/bnema/deskutil/internal/domain/entity"
	"github.com/bnema/deskutil/internal/logging"
)

var errStatusUnreadable = errors.New("player went away")

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

type fakeConn struct {
	names    []string
	listErr  error
	props    map[string]dbus.Variant // "<dest>/<prop>"
	propErrs map[string]error
	closed   bool
}

func (f *fakeConn) ListNames(context.Context) ([]string, error) {
	return f.names, f.listErr
}

func (f *fakeConn) GetProperty(_ context.Context, dest, _ string, prop string) (dbus.Variant, error) {
	key := dest + "/" + prop
	if err, ok := f.propErrs[key]; ok {
		return dbus.Variant{}, err
	}
	v, ok := f.props[key]
	if !ok {
		return dbus.Variant{}, errors.New("no such property")
	}
	return v, nil
}

func (f *fakeConn) Close() error {
	f.closed = true
	return nil
}

func status(s string) dbus.Variant {
	return dbus.MakeVariant(s)
}

func metadata(m map[string]any) dbus.Variant {
	out := make(map[string]dbus.Variant, len(m))
	for k, v := range m {
		out[k] = dbus.MakeVariant(v)
	}
	return dbus.MakeVariant(out)
}

func TestBus_Players_FiltersAndSkipsFailures(t *testing.T) {
	fc := &fakeConn{
		names: []string{
			"org.freedesktop.DBus",
			"org.mpris.MediaPlayer2.vlc",
			":1.42",
			"org.mpris.MediaPlayer2.broken",
			"org.mpris.MediaPlayer2.spotify",
		},
		props: map[string]dbus.Variant{
			"org.mpris.MediaPlayer2.vlc/PlaybackStatus":     status("Paused"),
			"org.mpris.MediaPlayer2.spotify/PlaybackStatus": status("Playing"),
		},
		propErrs: map[string]error{
			"org.mpris.MediaPlayer2.broken/PlaybackStatus": errors.New("timeout"),
		},
	}
	bus := newBus(fc)

	players := slices.Collect(bus.Players(testContext()))

	require.Len(t, players, 2)
	assert.Equal(t, entity.PlayerCandidate{
		BusName:   "org.mpris.MediaPlayer2.vlc",
		ShortName: "vlc",
		Status:    entity.PlaybackPaused,
	}, players[0])
	assert.Equal(t, "spotify", players[1].ShortName)
	assert.Equal(t, entity.PlaybackPlaying, players[1].Status)
}

func TestBus_Players_ListFailureYieldsNothing(t *testing.T) {
	var buf bytes.Buffer
	ctx := logging.WithContext(context.Background(), logging.New(logging.Config{
		Level:  zerolog.DebugLevel,
		Format: "json",
		Output: &buf,
	}))
	bus := newBus(&fakeConn{listErr: errors.New("bus gone")})

	assert.Empty(t, slices.Collect(bus.Players(ctx)))
	assert.Contains(t, buf.String(), `"level":"error"`)
	assert.Contains(t, buf.String(), "bus gone")
}

func TestBus_Players_StopsWhenConsumerBreaks(t *testing.T) {
	fc := &fakeConn{
		names: []string{"org.mpris.MediaPlayer2.a", "org.mpris.MediaPlayer2.b"},
		props: map[string]dbus.Variant{
			"org.mpris.MediaPlayer2.a/PlaybackStatus": status("Playing"),
			"org.mpris.MediaPlayer2.b/PlaybackStatus": status("Playing"),
		},
	}
	bus := newBus(fc)

	var seen []string
	for p := range bus.Players(testContext()) {
		seen = append(seen, p.ShortName)
		break
	}
	assert.Equal(t, []string{"a"}, seen)
}

func TestBus_Players_NonStringStatusIsUnknown(t *testing.T) {
	fc := &fakeConn{
		names: []string{"org.mpris.MediaPlayer2.odd"},
		props: map[string]dbus.Variant{
			"org.mpris.MediaPlayer2.odd/PlaybackStatus": dbus.MakeVariant(int32(1)),
		},
	}

	players := slices.Collect(newBus(fc).Players(testContext()))
	require.Len(t, players, 1)
	assert.Equal(t, entity.PlaybackUnknown, players[0].Status)
}

func TestBus_Track(t *testing.T) {
	const name = "org.mpris.MediaPlayer2.spotify"
	player := entity.NewPlayerCandidate(name, entity.PlaybackPlaying)

	tests := []struct {
		name     string
		props    map[string]dbus.Variant
		propErrs map[string]error
		want     *entity.TrackInfo
		wantErr  error
	}{
		{
			name: "list artist",
			props: map[string]dbus.Variant{
				name + "/Metadata": metadata(map[string]any{
					"xesam:artist": []string{"A", "B"},
					"xesam:title":  "T",
					"xesam:album":  "Al",
				}),
				name + "/PlaybackStatus": status("Playing"),
			},
			want: &entity.TrackInfo{Artist: "A", Title: "T", Album: "Al", Status: entity.PlaybackPlaying},
		},
		{
			name: "scalar artist and missing fields",
			props: map[string]dbus.Variant{
				name + "/Metadata":       metadata(map[string]any{"xesam:artist": "Solo"}),
				name + "/PlaybackStatus": status("Paused"),
			},
			want: &entity.TrackInfo{Artist: "Solo", Status: entity.PlaybackPaused},
		},
		{
			name: "empty metadata",
			props: map[string]dbus.Variant{
				name + "/Metadata":       metadata(map[string]any{}),
				name + "/PlaybackStatus": status("Playing"),
			},
			wantErr: port.ErrNoMetadata,
		},
		{
			name: "stopped",
			props: map[string]dbus.Variant{
				name + "/Metadata":       metadata(map[string]any{"xesam:title": "T"}),
				name + "/PlaybackStatus": status("Stopped"),
			},
			wantErr: port.ErrNoMetadata,
		},
		{
			name: "status unreadable",
			props: map[string]dbus.Variant{
				name + "/Metadata": metadata(map[string]any{"xesam:title": "T"}),
			},
			propErrs: map[string]error{
				name + "/PlaybackStatus": errStatusUnreadable,
			},
			wantErr: errStatusUnreadable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bus := newBus(&fakeConn{props: tt.props, propErrs: tt.propErrs})

			got, err := bus.Track(testContext(), player)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBus_Track_MetadataReadError(t *testing.T) {
	bus := newBus(&fakeConn{})

	_, err := bus.Track(testContext(), entity.NewPlayerCandidate("vlc", entity.PlaybackPlaying))
	require.Error(t, err)
	assert.NotErrorIs(t, err, port.ErrNoMetadata)
	assert.Contains(t, err.Error(), "org.mpris.MediaPlayer2.vlc")
}

func TestBus_Close(t *testing.T) {
	fc := &fakeConn{}
	require.NoError(t, newBus(fc).Close())
	assert.True(t, fc.closed)
}
