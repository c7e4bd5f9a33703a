package nowplaying_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/bnema/deskutil/internal/domain/entity"
	"github.com/bnema/deskutil/internal/domain/nowplaying"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidate(name string, status entity.PlaybackStatus) entity.PlayerCandidate {
	return entity.NewPlayerCandidate(name, status)
}

func TestSelectCandidate(t *testing.T) {
	tests := []struct {
		name       string
		candidates []entity.PlayerCandidate
		want       string
		wantOK     bool
	}{
		{name: "empty", candidates: nil, wantOK: false},
		{
			name:       "playing beats earlier paused",
			candidates: []entity.PlayerCandidate{candidate("vlc", entity.PlaybackPaused), candidate("spotify", entity.PlaybackPlaying)},
			want:       "spotify",
			wantOK:     true,
		},
		{
			name:       "playing beats later paused",
			candidates: []entity.PlayerCandidate{candidate("spotify", entity.PlaybackPlaying), candidate("vlc", entity.PlaybackPaused)},
			want:       "spotify",
			wantOK:     true,
		},
		{
			name:       "first playing wins",
			candidates: []entity.PlayerCandidate{candidate("mpv", entity.PlaybackPlaying), candidate("spotify", entity.PlaybackPlaying)},
			want:       "mpv",
			wantOK:     true,
		},
		{
			name:       "first paused when nothing plays",
			candidates: []entity.PlayerCandidate{candidate("a", entity.PlaybackStopped), candidate("b", entity.PlaybackPaused), candidate("c", entity.PlaybackPaused)},
			want:       "b",
			wantOK:     true,
		},
		{
			name:       "stopped and unknown only",
			candidates: []entity.PlayerCandidate{candidate("a", entity.PlaybackStopped), candidate("b", entity.PlaybackUnknown)},
			wantOK:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := nowplaying.SelectCandidate(tt.candidates)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.want, got.ShortName)
			}
		})
	}
}

func TestNormalizeArtist(t *testing.T) {
	assert.Equal(t, "A", nowplaying.NormalizeArtist([]string{"A", "B"}))
	assert.Equal(t, "A", nowplaying.NormalizeArtist([]any{"A", "B"}))
	assert.Equal(t, "Solo", nowplaying.NormalizeArtist("Solo"))
	assert.Equal(t, "", nowplaying.NormalizeArtist([]string{}))
	assert.Equal(t, "", nowplaying.NormalizeArtist([]any{42}))
	assert.Equal(t, "", nowplaying.NormalizeArtist(nil))
	assert.Equal(t, "", nowplaying.NormalizeArtist(7))
}

func TestFormatDisplayText(t *testing.T) {
	opts := nowplaying.Options{}
	assert.Equal(t, "A - T", nowplaying.FormatDisplayText(entity.TrackInfo{Artist: "A", Title: "T"}, opts))
	assert.Equal(t, "T", nowplaying.FormatDisplayText(entity.TrackInfo{Title: "T"}, opts))
	assert.Equal(t, "A", nowplaying.FormatDisplayText(entity.TrackInfo{Artist: "A"}, opts))
	assert.Equal(t, "Unknown Track", nowplaying.FormatDisplayText(entity.TrackInfo{}, opts))
	assert.Equal(t, "nothing", nowplaying.FormatDisplayText(entity.TrackInfo{}, nowplaying.Options{Placeholder: "nothing"}))
}

func TestFormatDisplayText_Truncates(t *testing.T) {
	track := entity.TrackInfo{
		Artist: "An Artist With A Very Long Name",
		Title:  "And An Even Longer Track Title",
	}

	text := nowplaying.FormatDisplayText(track, nowplaying.Options{})

	assert.Equal(t, nowplaying.DefaultMaxLength, utf8.RuneCountInString(text))
	assert.True(t, strings.HasSuffix(text, nowplaying.Ellipsis))
	full := track.Artist + " - " + track.Title
	assert.Equal(t, full[:nowplaying.DefaultMaxLength-1]+nowplaying.Ellipsis, text)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", nowplaying.Truncate("abc", 3))
	assert.Equal(t, "ab…", nowplaying.Truncate("abcd", 3))
	// Multi-byte characters count as one.
	assert.Equal(t, "日本…", nowplaying.Truncate("日本語です", 3))
	assert.Equal(t, "abcd", nowplaying.Truncate("abcd", 0))
}

func TestFormatTooltip(t *testing.T) {
	withAlbum := nowplaying.FormatTooltip(entity.TrackInfo{
		Artist: "A", Title: "T", Album: "L", Status: entity.PlaybackPlaying,
	}, "spotify")
	assert.Equal(t, "A - T\nAlbum: L\nStatus: Playing\nPlayer: spotify", withAlbum)

	noAlbum := nowplaying.FormatTooltip(entity.TrackInfo{Title: "T", Status: entity.PlaybackPaused}, "vlc")
	assert.Equal(t, " - T\nStatus: Paused\nPlayer: vlc", noAlbum)
}

func TestIcon(t *testing.T) {
	icon, custom := nowplaying.Icon("Spotify", nowplaying.Options{})
	assert.True(t, custom)
	assert.Equal(t, "\uf1bc", icon)

	icon, custom = nowplaying.Icon("mpv", nowplaying.Options{})
	assert.False(t, custom)
	assert.Equal(t, nowplaying.DefaultIcon, icon)

	icon, custom = nowplaying.Icon("mpv", nowplaying.Options{Icons: map[string]string{"mpv": "M"}})
	assert.True(t, custom)
	assert.Equal(t, "M", icon)
}

func TestBuildOutput(t *testing.T) {
	player := entity.NewPlayerCandidate("org.mpris.MediaPlayer2.Spotify", entity.PlaybackPlaying)
	track := entity.TrackInfo{Artist: "A", Title: "T", Status: entity.PlaybackPlaying}

	out := nowplaying.BuildOutput(player, track, nowplaying.Options{})

	assert.Equal(t, "A - T", out.Text)
	assert.Equal(t, "player-spotify", out.Class)
	assert.Equal(t, "Spotify", out.Alt)
	assert.Equal(t, 0, out.Percentage)
	assert.Equal(t, "\uf1bc", out.Icon)
	assert.Contains(t, out.Tooltip, "Player: Spotify")
}

func TestBuildOutput_DefaultIconOmitted(t *testing.T) {
	player := entity.NewPlayerCandidate("mpv", entity.PlaybackPaused)
	out := nowplaying.BuildOutput(player, entity.TrackInfo{Title: "T", Status: entity.PlaybackPaused}, nowplaying.Options{})

	assert.Empty(t, out.Icon)
	assert.Equal(t, "player-mpv", out.Class)
}
