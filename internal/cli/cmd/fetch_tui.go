package cmd

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/bnema/deskutil/internal/application/usecase"
	"github.com/bnema/deskutil/internal/cli/styles"
	"github.com/bnema/deskutil/internal/domain/entity"
	"github.com/bnema/deskutil/internal/logging"
)

type fetchDoneMsg struct {
	outcome entity.FetchOutcome
}

// fetchModel shows a spinner while a single download runs.
type fetchModel struct {
	spinner  spinner.Model
	renderer *styles.FetchRenderer
	url      string
	run      tea.Cmd
	cancel   context.CancelFunc

	done    bool
	outcome entity.FetchOutcome
}

func (m fetchModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.run)
}

func (m fetchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case fetchDoneMsg:
		m.done = true
		m.outcome = msg.outcome
		return m, tea.Quit
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			// The download returns promptly once its context is cancelled.
			m.cancel()
		}
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m fetchModel) View() string {
	if m.done {
		return m.renderer.RenderOutcome(m.outcome) + "\n"
	}
	return m.renderer.RenderProgress(m.spinner.View(), m.url) + "\n"
}

func runFetchWithSpinner(
	ctx context.Context,
	theme *styles.Theme,
	uc *usecase.FetchFileUseCase,
	task entity.DownloadTask,
) (entity.FetchOutcome, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Keep routine log lines from tearing through the spinner.
	quiet := logging.FromContext(ctx).Level(max(logging.FromContext(ctx).GetLevel(), zerolog.WarnLevel))
	ctx = logging.WithContext(ctx, quiet)

	model := fetchModel{
		spinner:  styles.NewDefaultSpinner(theme),
		renderer: styles.NewFetchRenderer(theme),
		url:      task.SourceURL,
		cancel:   cancel,
		run: func() tea.Msg {
			return fetchDoneMsg{outcome: uc.Execute(ctx, usecase.FetchFileInput{Task: task})}
		},
	}

	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return entity.FetchOutcome{}, fmt.Errorf("run progress display: %w", err)
	}
	result, ok := final.(fetchModel)
	if !ok || !result.done {
		return entity.FetchOutcome{}, fmt.Errorf("download interrupted")
	}
	return result.outcome, nil
}
