package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderPath renders the config file location.
func (r *ConfigRenderer) RenderPath(path string, exists bool) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	status := r.theme.SuccessStyle.Render("exists")
	if !exists {
		status = r.theme.WarningStyle.Render("not created yet")
	}

	return fmt.Sprintf("  %s Config %s %s",
		iconStyle.Render(IconConfig),
		r.theme.Subtle.Render(path),
		status,
	)
}

// RenderSettings renders the resolved settings document under a header.
func (r *ConfigRenderer) RenderSettings(path, document string) string {
	var sb strings.Builder
	sb.WriteString(r.theme.Title.Render("# " + path))
	sb.WriteString("\n")
	sb.WriteString(strings.TrimRight(document, "\n"))
	return sb.String()
}

// RenderSchemaWritten renders a confirmation after writing the schema file.
func (r *ConfigRenderer) RenderSchemaWritten(path string) string {
	return fmt.Sprintf("  %s Schema written to %s",
		r.theme.SuccessStyle.Render(IconCheck),
		r.theme.Highlight.Render(path),
	)
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	return fmt.Sprintf("  %s %s",
		r.theme.ErrorStyle.Render(IconX),
		r.theme.ErrorStyle.Render(err.Error()),
	)
}
