package port

import "context"

// DownloadEventType represents the type of download event.
type DownloadEventType int

const (
	// DownloadEventStarted indicates a download has begun.
	DownloadEventStarted DownloadEventType = iota
	// DownloadEventFinished indicates a download completed successfully.
	DownloadEventFinished
	// DownloadEventFailed indicates a download failed.
	DownloadEventFailed
)

func (t DownloadEventType) String() string {
	switch t {
	case DownloadEventStarted:
		return "started"
	case DownloadEventFinished:
		return "finished"
	case DownloadEventFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// DownloadEvent contains information about a download event.
type DownloadEvent struct {
	Type        DownloadEventType
	AttemptID   string
	URL         string
	Destination string
	Bytes       int64 // Set when Type is DownloadEventFinished
	Error       error // Set when Type is DownloadEventFailed
}

// DownloadEventHandler receives download event notifications.
type DownloadEventHandler interface {
	OnDownloadEvent(ctx context.Context, event DownloadEvent)
}

// DownloadEventFunc adapts a function to DownloadEventHandler.
type DownloadEventFunc func(ctx context.Context, event DownloadEvent)

// OnDownloadEvent calls f(ctx, event).
func (f DownloadEventFunc) OnDownloadEvent(ctx context.Context, event DownloadEvent) {
	f(ctx, event)
}
