package dispatch

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const alertChannel = "panic:alerts"

// EventPublisher - интерфейс публикации событий мутаций тревог.
type EventPublisher interface {
	Publish(ctx context.Context, event AlertEvent) error
}

// RedisEventPublisher публикует события в Redis Pub/Sub.
type RedisEventPublisher struct {
	redisClient *redis.Client
}

func NewRedisEventPublisher(client *redis.Client) *RedisEventPublisher {
	return &RedisEventPublisher{redisClient: client}
}

// Publish сериализует событие и отправляет его в канал тревог.
func (p *RedisEventPublisher) Publish(ctx context.Context, event AlertEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal alert event: %w", err)
	}

	if err := p.redisClient.Publish(ctx, alertChannel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish alert event to Redis: %w", err)
	}
	return nil
}
