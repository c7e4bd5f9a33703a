package entity

import (
	"errors"
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// DownloadTask describes one file to fetch and where it lands on disk.
// It is built from configuration at the start of every attempt and never mutated.
type DownloadTask struct {
	SourceURL            string
	DestinationDirectory string
	// DestinationFilename may be empty; the name is then derived from the URL.
	DestinationFilename string
}

var ErrInvalidDownloadTask = errors.New("invalid download task")

// Validate checks that the task can be attempted.
func (t DownloadTask) Validate() error {
	if strings.TrimSpace(t.SourceURL) == "" {
		return fmt.Errorf("%w: source url is empty", ErrInvalidDownloadTask)
	}
	u, err := url.Parse(t.SourceURL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDownloadTask, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: unsupported scheme %q", ErrInvalidDownloadTask, u.Scheme)
	}
	if strings.TrimSpace(t.DestinationDirectory) == "" {
		return fmt.Errorf("%w: destination directory is empty", ErrInvalidDownloadTask)
	}
	return nil
}

// Filename returns the configured filename, or one derived from the URL path.
// When the URL has no usable last segment a timestamped name is used.
func (t DownloadTask) Filename(now time.Time) string {
	if name := strings.TrimSpace(t.DestinationFilename); name != "" {
		return name
	}
	if u, err := url.Parse(t.SourceURL); err == nil {
		base := path.Base(u.Path)
		if base != "" && base != "/" && base != "." {
			return base
		}
	}
	return fmt.Sprintf("download_%d.tmp", now.Unix())
}

// Resolved returns a copy whose DestinationFilename is fixed to Filename(now),
// so every later DestinationPath call names the same file.
func (t DownloadTask) Resolved(now time.Time) DownloadTask {
	t.DestinationFilename = t.Filename(now)
	return t
}

// DestinationPath joins the destination directory and filename.
func (t DownloadTask) DestinationPath(now time.Time) string {
	return filepath.Join(t.DestinationDirectory, t.Filename(now))
}

// FetchResult describes a completed download.
type FetchResult struct {
	Task       DownloadTask
	Path       string
	Bytes      int64
	StatusCode int
	Duration   time.Duration
}

// FetchOutcome is the result of one scheduled attempt: either a Result or a
// failure Reason with the underlying error.
type FetchOutcome struct {
	AttemptID string
	Result    *FetchResult
	Reason    string
	Err       error
}

// OK reports whether the attempt succeeded.
func (o FetchOutcome) OK() bool {
	return o.Err == nil && o.Result != nil
}
