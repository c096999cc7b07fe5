package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/sparkmeet/identity-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

// ActivityDispatcher fans login-activity events out to a fixed set of
// workers, sharded by user id so each user's events are applied in order.
// Recording is best-effort: a full shard drops the event rather than stall
// the login path.
type ActivityDispatcher struct {
	workers  []chan ports.ActivityEvent
	recorder ports.ActivityRecorder
	log      zerolog.Logger
}

// NewActivityDispatcher creates a dispatcher with numWorkers sharded
// workers. If numWorkers <= 0, defaultWorkers is used.
func NewActivityDispatcher(numWorkers int, recorder ports.ActivityRecorder, log zerolog.Logger) *ActivityDispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &ActivityDispatcher{
		workers:  make([]chan ports.ActivityEvent, numWorkers),
		recorder: recorder,
		log:      log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.ActivityEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *ActivityDispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands an event to the worker responsible for its user id without
// blocking the caller.
func (d *ActivityDispatcher) Enqueue(event ports.ActivityEvent) {
	select {
	case d.workers[d.shardIndex(event.UserID)] <- event:
	default:
		d.log.Warn().Str("user_id", event.UserID).Msg("activity queue full, event dropped")
	}
}

// shardIndex maps a user id deterministically to a worker index.
func (d *ActivityDispatcher) shardIndex(userID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(userID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *ActivityDispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.ActivityEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			if err := d.recorder.Record(ctx, event); err != nil {
				d.log.Error().Err(err).
					Str("user_id", event.UserID).
					Int("worker_id", id).
					Msg("recording login activity failed")
			}
		}
	}
}
