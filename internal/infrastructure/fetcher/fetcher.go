// Package fetcher downloads remote files over HTTP into a local path.
package fetcher

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/bnema/deskutil/internal/application/port"
	"github.com/bnema/deskutil/internal/domain/entity"
	"github.com/bnema/deskutil/internal/logging"
)

const (
	// chunkSize is the write granularity of the response body.
	chunkSize = 8 * 1024

	dirPerm  = 0o755
	filePerm = 0o644

	// maxValidatedBodySize bounds the in-memory copy used for YAML validation.
	maxValidatedBodySize = 32 * 1024 * 1024
)

// ErrInvalidYAML is returned when validation is enabled and the body does not parse.
var ErrInvalidYAML = errors.New("response body is not valid YAML")

// StatusError reports a non-2xx HTTP response.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected HTTP status: %s", e.Status)
}

// HTTPStatus returns the response status code.
func (e *StatusError) HTTPStatus() int {
	return e.StatusCode
}

// Options tune every request of an HTTPFetcher.
type Options struct {
	// Timeout bounds one attempt, zero means no bound beyond the context.
	Timeout   time.Duration
	UserAgent string
	// ValidateYAML buffers the body and refuses to write it unless it parses as YAML.
	ValidateYAML bool
}

// Compile-time interface check.
var _ port.FileFetcher = (*HTTPFetcher)(nil)

// HTTPFetcher implements port.FileFetcher with net/http.
//
// The destination is truncated and written in place once a 2xx response
// arrives, so a transfer that fails midway leaves a partial file behind.
type HTTPFetcher struct {
	client *http.Client
	mu     sync.RWMutex
	opts   Options
	now    func() time.Time
}

// New creates a fetcher. A nil client uses http.DefaultClient.
func New(client *http.Client, opts Options) *HTTPFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPFetcher{
		client: client,
		opts:   opts,
		now:    time.Now,
	}
}

// Configure replaces the options used by subsequent fetches.
func (f *HTTPFetcher) Configure(opts Options) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.opts = opts
}

func (f *HTTPFetcher) options() Options {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.opts
}

// Fetch downloads task.SourceURL and overwrites the destination file.
func (f *HTTPFetcher) Fetch(ctx context.Context, task entity.DownloadTask) (*entity.FetchResult, error) {
	log := logging.FromContext(ctx)
	opts := f.options()

	if err := task.Validate(); err != nil {
		return nil, err
	}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	start := f.now()
	dest := task.DestinationPath(start)

	if err := os.MkdirAll(filepath.Dir(dest), dirPerm); err != nil {
		return nil, fmt.Errorf("failed to create destination directory: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, task.SourceURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if opts.UserAgent != "" {
		req.Header.Set("User-Agent", opts.UserAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	var body io.Reader = resp.Body
	if opts.ValidateYAML {
		buffered, err := readValidYAML(resp.Body)
		if err != nil {
			return nil, err
		}
		body = buffered
	}

	n, err := writeFile(dest, body)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("path", dest).
		Int64("bytes", n).
		Int("status", resp.StatusCode).
		Msg("download written")

	return &entity.FetchResult{
		Task:       task,
		Path:       dest,
		Bytes:      n,
		StatusCode: resp.StatusCode,
		Duration:   f.now().Sub(start),
	}, nil
}

func readValidYAML(r io.Reader) (*bytes.Reader, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxValidatedBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if len(data) > maxValidatedBodySize {
		return nil, fmt.Errorf("%w: body exceeds %d bytes", ErrInvalidYAML, maxValidatedBodySize)
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidYAML, err)
	}
	return bytes.NewReader(data), nil
}

// writeFile truncates dest and copies r into it in chunkSize writes.
func writeFile(dest string, r io.Reader) (n int64, err error) {
	file, err := os.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePerm)
	if err != nil {
		return 0, fmt.Errorf("failed to open destination: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close destination: %w", closeErr)
		}
	}()

	buf := make([]byte, chunkSize)
	n, err = io.CopyBuffer(onlyWriter{file}, onlyReader{r}, buf)
	if err != nil {
		return n, fmt.Errorf("failed to write destination: %w", err)
	}
	return n, nil
}

// onlyWriter and onlyReader hide ReadFrom and WriteTo so io.CopyBuffer
// goes through the chunk buffer.
type onlyWriter struct {
	io.Writer
}

type onlyReader struct {
	io.Reader
}
