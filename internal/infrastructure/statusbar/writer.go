// Package statusbar writes status bar records as single JSON lines.
package statusbar

import (
	"context"
	"fmt"
	"io"
	"sync"

	jsoniter "github.com/json-iterator/go"

	"github.com/bnema/deskutil/internal/domain/entity"
	"github.com/bnema/deskutil/internal/logging"
)

// emptyLine is what the bar receives when there is nothing to show.
var emptyLine = []byte("{}\n")

// Track titles are shown verbatim, so &, < and > stay unescaped.
var api = jsoniter.Config{
	EscapeHTML:             false,
	ValidateJsonRawMessage: true,
}.Froze()

type flusher interface {
	Flush() error
}

type syncer interface {
	Sync() error
}

// Writer emits exactly one JSON object per line.
type Writer struct {
	mu  sync.Mutex
	out io.Writer
}

// NewWriter creates a writer on out, usually os.Stdout.
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

// Emit writes o as one line. An empty record, or one that fails to encode,
// is written as {}.
func (w *Writer) Emit(ctx context.Context, o entity.StatusBarOutput) error {
	if o.IsEmpty() {
		return w.EmitEmpty(ctx)
	}

	data, err := api.Marshal(o)
	if err != nil {
		logging.FromContext(ctx).Error().Err(err).Msg("failed to encode status bar output")
		return w.EmitEmpty(ctx)
	}
	return w.writeLine(append(data, '\n'))
}

// EmitEmpty writes {}.
func (w *Writer) EmitEmpty(_ context.Context) error {
	return w.writeLine(emptyLine)
}

func (w *Writer) writeLine(line []byte) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, err := w.out.Write(line); err != nil {
		return fmt.Errorf("failed to write status bar output: %w", err)
	}

	switch out := w.out.(type) {
	case flusher:
		if err := out.Flush(); err != nil {
			return fmt.Errorf("failed to flush status bar output: %w", err)
		}
	case syncer:
		// Sync fails on pipes and terminals; the bytes are already written.
		_ = out.Sync()
	}
	return nil
}
