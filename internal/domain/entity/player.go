package entity

import "strings"

// MPRISPrefix is the well-known bus name prefix of MPRIS media players.
const MPRISPrefix = "org.mpris.MediaPlayer2."

// PlaybackStatus mirrors the MPRIS PlaybackStatus property.
type PlaybackStatus string

const (
	PlaybackPlaying PlaybackStatus = "Playing"
	PlaybackPaused  PlaybackStatus = "Paused"
	PlaybackStopped PlaybackStatus = "Stopped"
	PlaybackUnknown PlaybackStatus = "Unknown"
)

// ParsePlaybackStatus maps a raw property value to a PlaybackStatus.
// Anything outside the three MPRIS values becomes PlaybackUnknown.
func ParsePlaybackStatus(raw string) PlaybackStatus {
	switch PlaybackStatus(raw) {
	case PlaybackPlaying, PlaybackPaused, PlaybackStopped:
		return PlaybackStatus(raw)
	default:
		return PlaybackUnknown
	}
}

func (s PlaybackStatus) String() string {
	return string(s)
}

// PlayerCandidate is a media player endpoint discovered on the session bus.
type PlayerCandidate struct {
	BusName   string
	ShortName string
	Status    PlaybackStatus
}

// NewPlayerCandidate builds a candidate from a full or short bus name.
func NewPlayerCandidate(busName string, status PlaybackStatus) PlayerCandidate {
	return PlayerCandidate{
		BusName:   FullBusName(busName),
		ShortName: ShortPlayerName(busName),
		Status:    status,
	}
}

// FullBusName prefixes a short player name with the MPRIS namespace.
func FullBusName(name string) string {
	if strings.HasPrefix(name, MPRISPrefix) {
		return name
	}
	return MPRISPrefix + name
}

// ShortPlayerName returns the last dot-separated segment of a bus name,
// e.g. "org.mpris.MediaPlayer2.spotify" -> "spotify".
func ShortPlayerName(busName string) string {
	if i := strings.LastIndex(busName, "."); i >= 0 {
		return busName[i+1:]
	}
	return busName
}

// TrackInfo is the display-relevant subset of a player's metadata.
type TrackInfo struct {
	Artist string
	Title  string
	Album  string
	Status PlaybackStatus
}
