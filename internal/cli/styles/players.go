package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/deskutil/internal/domain/entity"
)

// PlayersRenderer renders the MPRIS player list.
type PlayersRenderer struct {
	theme *Theme
}

// NewPlayersRenderer creates a new players renderer with the given theme.
func NewPlayersRenderer(theme *Theme) *PlayersRenderer {
	return &PlayersRenderer{theme: theme}
}

// Render lists players in bus order and marks the selected index.
func (r *PlayersRenderer) Render(players []entity.PlayerCandidate, selected int) string {
	if len(players) == 0 {
		return r.RenderEmpty()
	}

	header := r.theme.BoxHeader.Render(fmt.Sprintf("%s Media players (%d)", IconMusic, len(players)))

	lines := make([]string, 0, len(players))
	for i, p := range players {
		lines = append(lines, r.renderPlayer(p, i == selected))
	}

	return r.theme.Box.Render(lipgloss.JoinVertical(lipgloss.Left, header, strings.Join(lines, "\n")))
}

func (r *PlayersRenderer) renderPlayer(p entity.PlayerCandidate, selected bool) string {
	style := r.theme.ListItem
	cursor := " "
	if selected {
		style = r.theme.ListItemSelected
		cursor = IconCursor
	}

	return style.Render(fmt.Sprintf("%s %s %s %s",
		cursor,
		r.statusBadge(p.Status),
		p.ShortName,
		r.theme.Subtle.Render(p.BusName),
	))
}

func (r *PlayersRenderer) statusBadge(status entity.PlaybackStatus) string {
	switch status {
	case entity.PlaybackPlaying:
		return r.theme.Badge.Render(IconPlay + " playing")
	case entity.PlaybackPaused:
		return r.theme.BadgeMuted.Render(IconPause + " paused ")
	case entity.PlaybackStopped:
		return r.theme.BadgeMuted.Render(IconStop + " stopped")
	default:
		return r.theme.BadgeMuted.Render("? unknown")
	}
}

// RenderEmpty renders the no-player message.
func (r *PlayersRenderer) RenderEmpty() string {
	return fmt.Sprintf("  %s %s", r.theme.WarningStyle.Render(IconWarning), r.theme.Subtle.Render("No MPRIS players on the session bus"))
}
