package ports

import (
	"context"
	"time"
)

// ActivityEvent records that a user authenticated successfully.
type ActivityEvent struct {
	UserID string
	Seen   time.Time
}

// ActivityRecorder persists last-seen markers. Recording is best-effort:
// login success never depends on it.
type ActivityRecorder interface {
	Record(ctx context.Context, event ActivityEvent) error
}

// ActivitySink accepts activity events for asynchronous processing.
type ActivitySink interface {
	Enqueue(event ActivityEvent)
}
