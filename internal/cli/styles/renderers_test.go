package styles_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/deskutil/internal/cli/styles"
	"github.com/bnema/deskutil/internal/domain/build"
	"github.com/bnema/deskutil/internal/domain/entity"
)

func testTheme() *styles.Theme {
	return styles.NewTheme()
}

func TestPlayersRenderer_Render(t *testing.T) {
	r := styles.NewPlayersRenderer(testTheme())

	out := r.Render([]entity.PlayerCandidate{
		entity.NewPlayerCandidate("vlc", entity.PlaybackPaused),
		entity.NewPlayerCandidate("spotify", entity.PlaybackPlaying),
	}, 1)

	require.Contains(t, out, "Media players (2)")
	assert.Contains(t, out, "org.mpris.MediaPlayer2.vlc")
	assert.Contains(t, out, "spotify")
	assert.Contains(t, out, "playing")
	assert.Contains(t, out, "paused")
	assert.Contains(t, out, styles.IconCursor)
}

func TestPlayersRenderer_Empty(t *testing.T) {
	r := styles.NewPlayersRenderer(testTheme())

	assert.Contains(t, r.Render(nil, -1), "No MPRIS players")
}

func TestFetchRenderer_RenderOutcome(t *testing.T) {
	r := styles.NewFetchRenderer(testTheme())

	ok := r.RenderOutcome(entity.FetchOutcome{Result: &entity.FetchResult{
		Path:     "/tmp/clash/config.yaml",
		Bytes:    1500,
		Duration: 250 * time.Millisecond,
	}})
	assert.Contains(t, ok, "/tmp/clash/config.yaml")
	assert.Contains(t, ok, "1.5 kB")
	assert.Contains(t, ok, "250ms")

	failed := r.RenderOutcome(entity.FetchOutcome{Reason: "server answered HTTP 500", Err: errors.New("x")})
	assert.Contains(t, failed, "Download failed")
	assert.Contains(t, failed, "HTTP 500")
}

func TestConfigRenderer(t *testing.T) {
	r := styles.NewConfigRenderer(testTheme())

	assert.Contains(t, r.RenderPath("/tmp/deskutil/config.toml", false), "not created yet")
	assert.Contains(t, r.RenderPath("/tmp/deskutil/config.toml", true), "exists")
	assert.Contains(t, r.RenderSchemaWritten("/tmp/x.json"), "/tmp/x.json")
	assert.Contains(t, r.RenderError(errors.New("bad toml")), "bad toml")
	assert.Contains(t, r.RenderSettings("/p", "fetch:\n  url: x\n"), "url: x")
}

func TestAboutRenderer_Render(t *testing.T) {
	r := styles.NewAboutRenderer(testTheme())

	out := r.Render(build.Info{Version: "1.2.3", Commit: "abc123"})
	assert.Contains(t, out, "1.2.3")
	assert.Contains(t, out, "abc123")
	assert.Contains(t, out, "unknown")
	assert.Contains(t, out, build.RepoURL())
}
