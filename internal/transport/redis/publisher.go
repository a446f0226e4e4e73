package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-server/internal/entity"
)

// Publisher sends game events to a Redis pub/sub channel. Nothing is stored.
type Publisher struct {
	client  *redis.Client
	channel string
}

func NewPublisher(client *redis.Client, channel string) *Publisher {
	return &Publisher{
		client:  client,
		channel: channel,
	}
}

// Publish - marshals the event and publishes it to the channel.
func (that *Publisher) Publish(ctx context.Context, event *entity.GameEvent) error {
	eventJSON, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal game event: %w", err)
	}

	if err = that.client.Publish(ctx, that.channel, eventJSON).Err(); err != nil {
		return fmt.Errorf("failed to publish game event: %w", err)
	}

	return nil
}

// NopPublisher is used when the event feed is disabled.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, *entity.GameEvent) error {
	return nil
}
