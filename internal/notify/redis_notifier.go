package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/streamhive/streamhive/internal/models"
	"github.com/streamhive/streamhive/pkg/logger"
)

type RedisNotifier struct {
	redisClient *redis.Client
	logger      logger.Logger
}

func NewRedisNotifier(redisClient *redis.Client, logger logger.Logger) *RedisNotifier {
	return &RedisNotifier{
		redisClient: redisClient,
		logger:      logger,
	}
}

// UserChannel returns the pub/sub channel name for a user's events.
func UserChannel(userID uuid.UUID) string {
	return fmt.Sprintf("user:%s", userID.String())
}

func (n *RedisNotifier) Notify(ctx context.Context, userID uuid.UUID, event string, data interface{}) error {
	envelope := &models.EventEnvelope{
		Event: event,
		Data:  data,
	}
	payload, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("failed to marshal event %s: %w", event, err)
	}
	if err = n.redisClient.Publish(ctx, UserChannel(userID), payload).Err(); err != nil {
		return fmt.Errorf("failed to publish event %s: %w", event, err)
	}
	return nil
}

func (n *RedisNotifier) Subscribe(ctx context.Context, userID uuid.UUID) (<-chan *models.EventEnvelope, func(), error) {
	pubsub := n.redisClient.Subscribe(ctx, UserChannel(userID))
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, nil, fmt.Errorf("failed to subscribe to user channel: %w", err)
	}

	out := make(chan *models.EventEnvelope)
	go func() {
		defer close(out)
		for msg := range pubsub.Channel() {
			envelope := &models.EventEnvelope{}
			if err := json.Unmarshal([]byte(msg.Payload), envelope); err != nil {
				n.logger.Errorf("failed to unmarshal event payload: %v", err)
				continue
			}
			select {
			case out <- envelope:
			case <-ctx.Done():
				return
			}
		}
	}()

	cancel := func() {
		_ = pubsub.Close()
	}
	return out, cancel, nil
}
