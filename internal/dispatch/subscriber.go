package dispatch

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Subscriber - интерфейс подписки на события мутаций тревог.
// SubscribeAll используется консолями операторов, SubscribeAlert - сессией
// заявителя, которой интересна только собственная тревога.
// Возвращаемая функция отмены обязана вызываться при завершении сессии:
// она освобождает подписку и закрывает канал событий.
type Subscriber interface {
	SubscribeAll(ctx context.Context) (<-chan AlertEvent, func(), error)
	SubscribeAlert(ctx context.Context, alertID uuid.UUID) (<-chan AlertEvent, func(), error)
}

// RedisSubscriber читает события из Redis Pub/Sub канала тревог.
type RedisSubscriber struct {
	redisClient *redis.Client
	logger      *logrus.Logger
}

func NewRedisSubscriber(client *redis.Client, logger *logrus.Logger) *RedisSubscriber {
	return &RedisSubscriber{redisClient: client, logger: logger}
}

// SubscribeAll доставляет все события мутаций тревог.
func (s *RedisSubscriber) SubscribeAll(ctx context.Context) (<-chan AlertEvent, func(), error) {
	return s.subscribe(ctx, func(AlertEvent) bool { return true })
}

// SubscribeAlert доставляет события только для одной тревоги.
func (s *RedisSubscriber) SubscribeAlert(ctx context.Context, alertID uuid.UUID) (<-chan AlertEvent, func(), error) {
	return s.subscribe(ctx, func(ev AlertEvent) bool {
		return ev.Alert != nil && ev.Alert.ID == alertID
	})
}

func (s *RedisSubscriber) subscribe(ctx context.Context, keep func(AlertEvent) bool) (<-chan AlertEvent, func(), error) {
	pubsub := s.redisClient.Subscribe(ctx, alertChannel)

	// Подтверждаем подписку до возврата, чтобы события после вызова
	// Subscribe* не терялись молча.
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, nil, err
	}

	out := make(chan AlertEvent, 16)
	done := make(chan struct{})

	go func() {
		defer close(out)
		src := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case <-done:
				return
			case msg, ok := <-src:
				if !ok {
					return
				}
				var event AlertEvent
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					s.logger.WithError(err).Error("Failed to unmarshal alert event from Redis")
					continue
				}
				if !keep(event) {
					continue
				}
				select {
				case out <- event:
				case <-ctx.Done():
					return
				case <-done:
					return
				}
			}
		}
	}()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			close(done)
			pubsub.Close()
		})
	}
	return out, cancel, nil
}
