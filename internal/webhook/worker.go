package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/campus_panic_system/internal/config"
	"github.com/sirupsen/logrus"
)

// WebhookWorker доставляет события жизненного цикла тревог внешним
// потребителям (дежурные чаты, системы учета смен). Доставка асинхронная:
// сбой получателя не влияет на сам жизненный цикл тревоги.
type WebhookWorker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
}

// NewWebhookWorker создает новый WebhookWorker
func NewWebhookWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config) *WebhookWorker {
	return &WebhookWorker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
	}
}

// Start запускает горутину для обработки очереди вебхуков
func (w *WebhookWorker) Start(ctx context.Context) {
	w.logger.Info("Starting webhook worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping webhook worker.")
				return
			default:
				// BRPOP с нулевым таймаутом: блокируемся до появления события.
				result, err := w.redisClient.BRPop(ctx, 0, webhookQueueKey).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) {
						continue
					}
					w.logger.WithError(err).Error("Failed to pop webhook event from Redis")
					time.Sleep(w.cfg.WebhookTimeout)
					continue
				}

				// result[0] - ключ, result[1] - значение
				payload := result[1]
				var event WebhookEvent
				if err := json.Unmarshal([]byte(payload), &event); err != nil {
					w.logger.WithError(err).Error("Failed to unmarshal webhook event from Redis")
					continue
				}

				w.deliver(ctx, event, payload)
			}
		}
	}()
}

// deliver отправляет событие получателю с экспоненциальным backoff.
// Payload подписывается HMAC-SHA256, тип события и id тревоги дублируются
// в заголовках, чтобы получатель мог маршрутизировать без разбора тела.
func (w *WebhookWorker) deliver(ctx context.Context, event WebhookEvent, rawPayload string) {
	log := w.logger.WithField("event_type", event.Type)
	if event.Alert != nil {
		log = log.WithFields(logrus.Fields{
			"alert_id":   event.Alert.ID,
			"department": event.Alert.TargetDepartment,
		})
	}
	log.Debug("Delivering alert webhook...")

	if w.cfg.WebhookURL == "" {
		log.Warn("Webhook URL is not configured. Skipping webhook delivery.")
		return
	}

	delay := w.cfg.WebhookBaseDelay
	for attempt := 0; attempt < w.cfg.WebhookMaxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(delay)
			delay *= 2
		}

		if err := w.send(ctx, event, rawPayload); err != nil {
			log.WithError(err).Warnf("Webhook delivery attempt %d failed", attempt+1)
			continue
		}

		log.Info("Webhook delivered successfully.")
		return
	}

	log.Errorf("Failed to deliver webhook after %d attempts.", w.cfg.WebhookMaxRetries)
}

func (w *WebhookWorker) send(ctx context.Context, event WebhookEvent, rawPayload string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.WebhookURL, bytes.NewBufferString(rawPayload))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Alert-Event", event.Type)
	if event.Alert != nil {
		req.Header.Set("X-Alert-ID", event.Alert.ID.String())
	}
	if w.cfg.WebhookSecret != "" {
		req.Header.Set("X-Webhook-Signature", generateHMACSHA256(rawPayload, w.cfg.WebhookSecret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return err
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.New("unexpected status " + resp.Status)
	}
	return nil
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
