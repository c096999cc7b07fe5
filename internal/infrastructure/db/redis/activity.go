package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sparkmeet/identity-api/internal/core/ports"
)

const lastSeenTTL = 30 * 24 * time.Hour

// ActivityRecorder keeps per-user last-seen markers in Redis.
// Key format: last_seen:<user_id>
type ActivityRecorder struct {
	client *redis.Client
}

// NewActivityRecorder creates an ActivityRecorder wrapping the given client.
func NewActivityRecorder(client *redis.Client) *ActivityRecorder {
	return &ActivityRecorder{client: client}
}

// Record stores the event's timestamp under the user's last-seen key.
// Entries expire after lastSeenTTL of inactivity.
func (a *ActivityRecorder) Record(ctx context.Context, event ports.ActivityEvent) error {
	key := fmt.Sprintf("last_seen:%s", event.UserID)
	if err := a.client.Set(ctx, key, event.Seen.Unix(), lastSeenTTL).Err(); err != nil {
		return fmt.Errorf("record activity: %w", err)
	}
	return nil
}
