package bus

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Redis publishes events as JSON messages on a redis pub/sub channel.
type Redis struct {
	client  *redis.Client
	channel string
}

// NewRedis creates a redis-backed event bus. An empty channel defaults to
// "folio.events".
func NewRedis(client *redis.Client, channel string) *Redis {
	if channel == "" {
		channel = "folio.events"
	}
	return &Redis{client: client, channel: channel}
}

// Publish marshals the event and publishes it on the configured channel.
func (r *Redis) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	if err := r.client.Publish(ctx, r.channel, payload).Err(); err != nil {
		return fmt.Errorf("publish event to %s: %w", r.channel, err)
	}
	return nil
}
