// Package nowplaying holds the pure selection and formatting rules of the
// now-playing status bar module.
package nowplaying

import (
	"strings"
	"unicode/utf8"

	"github.com/bnema/deskutil/internal/domain/entity"
)

const (
	// DefaultMaxLength is the maximum number of characters of the bar text.
	DefaultMaxLength = 40
	// DefaultPlaceholder is shown when neither artist nor title is known.
	DefaultPlaceholder = "Unknown Track"
	// DefaultIcon is used for players missing from the icon table.
	DefaultIcon = "🎵"
	// Ellipsis replaces the last character of truncated text.
	Ellipsis = "…"
	// ClassPrefix is prepended to the lowercased player name to build the CSS class.
	ClassPrefix = "player-"
)

// DefaultIcons returns the built-in player icon table, keyed by lowercased short name.
func DefaultIcons() map[string]string {
	return map[string]string{
		"spotify": "\uf1bc",
		"firefox": "\uf269",
		"chrome":  "\uf268",
		"vlc":     "\U000f057c",
	}
}

// Options controls formatting. Zero fields fall back to the defaults above.
type Options struct {
	MaxLength   int
	Placeholder string
	DefaultIcon string
	Icons       map[string]string
}

func (o Options) withDefaults() Options {
	if o.MaxLength <= 0 {
		o.MaxLength = DefaultMaxLength
	}
	if o.Placeholder == "" {
		o.Placeholder = DefaultPlaceholder
	}
	if o.DefaultIcon == "" {
		o.DefaultIcon = DefaultIcon
	}
	if o.Icons == nil {
		o.Icons = DefaultIcons()
	}
	return o
}

// SelectCandidate picks the first Playing candidate, else the first Paused one.
// Enumeration order is the only tie-break.
func SelectCandidate(candidates []entity.PlayerCandidate) (entity.PlayerCandidate, bool) {
	for _, c := range candidates {
		if c.Status == entity.PlaybackPlaying {
			return c, true
		}
	}
	for _, c := range candidates {
		if c.Status == entity.PlaybackPaused {
			return c, true
		}
	}
	return entity.PlayerCandidate{}, false
}

// NormalizeArtist flattens the xesam:artist value, which players send either as
// a list or as a single string.
func NormalizeArtist(v any) string {
	switch a := v.(type) {
	case string:
		return a
	case []string:
		if len(a) > 0 {
			return a[0]
		}
	case []any:
		if len(a) > 0 {
			if s, ok := a[0].(string); ok {
				return s
			}
		}
	}
	return ""
}

// FormatDisplayText builds the bar text and truncates it to maxLength characters.
func FormatDisplayText(track entity.TrackInfo, opts Options) string {
	opts = opts.withDefaults()

	var text string
	switch {
	case track.Artist != "" && track.Title != "":
		text = track.Artist + " - " + track.Title
	case track.Title != "":
		text = track.Title
	case track.Artist != "":
		text = track.Artist
	default:
		text = opts.Placeholder
	}
	return Truncate(text, opts.MaxLength)
}

// Truncate shortens s to maxLength runes, the last one being an ellipsis.
func Truncate(s string, maxLength int) string {
	if maxLength <= 0 || utf8.RuneCountInString(s) <= maxLength {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxLength-1]) + Ellipsis
}

// FormatTooltip builds the multi-line hover text.
func FormatTooltip(track entity.TrackInfo, playerName string) string {
	var b strings.Builder
	b.WriteString(track.Artist)
	b.WriteString(" - ")
	b.WriteString(track.Title)
	if track.Album != "" {
		b.WriteString("\nAlbum: ")
		b.WriteString(track.Album)
	}
	b.WriteString("\nStatus: ")
	b.WriteString(track.Status.String())
	b.WriteString("\nPlayer: ")
	b.WriteString(playerName)
	return b.String()
}

// Icon resolves the icon for a player and reports whether it came from the table.
func Icon(playerName string, opts Options) (string, bool) {
	opts = opts.withDefaults()
	if icon, ok := opts.Icons[strings.ToLower(playerName)]; ok && icon != "" {
		return icon, icon != opts.DefaultIcon
	}
	return opts.DefaultIcon, false
}

// BuildOutput assembles the status bar record for the selected player.
// The icon is only set when it differs from the default icon.
func BuildOutput(player entity.PlayerCandidate, track entity.TrackInfo, opts Options) entity.StatusBarOutput {
	out := entity.StatusBarOutput{
		Text:       FormatDisplayText(track, opts),
		Tooltip:    FormatTooltip(track, player.ShortName),
		Class:      ClassPrefix + strings.ToLower(player.ShortName),
		Alt:        player.ShortName,
		Percentage: 0,
	}
	if icon, custom := Icon(player.ShortName, opts); custom {
		out.Icon = icon
	}
	return out
}
