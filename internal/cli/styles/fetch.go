package styles

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/bnema/deskutil/internal/domain/entity"
)

// FetchRenderer renders one-shot fetch results.
type FetchRenderer struct {
	theme *Theme
}

// NewFetchRenderer creates a new fetch renderer with the given theme.
func NewFetchRenderer(theme *Theme) *FetchRenderer {
	return &FetchRenderer{theme: theme}
}

// RenderOutcome renders a success or failure line.
func (r *FetchRenderer) RenderOutcome(outcome entity.FetchOutcome) string {
	if !outcome.OK() {
		return fmt.Sprintf("  %s %s %s",
			r.theme.ErrorStyle.Render(IconX),
			r.theme.Normal.Render("Download failed:"),
			r.theme.ErrorStyle.Render(outcome.Reason),
		)
	}

	res := outcome.Result
	return fmt.Sprintf("  %s %s %s %s",
		r.theme.SuccessStyle.Render(IconCheck),
		r.theme.Normal.Render("Saved"),
		r.theme.Highlight.Render(res.Path),
		r.theme.Subtle.Render(fmt.Sprintf("(%s in %s)",
			humanize.Bytes(uint64(max(res.Bytes, 0))),
			res.Duration.Round(time.Millisecond),
		)),
	)
}

// RenderProgress renders the spinner line while downloading.
func (*FetchRenderer) RenderProgress(spinner, url string) string {
	return fmt.Sprintf("  %s Downloading %s", spinner, url)
}
