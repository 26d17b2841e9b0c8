package dispatch

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shenikar/campus_panic_system/internal/models"
)

func setupTestRedis(t *testing.T) (*RedisEventPublisher, *RedisSubscriber) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { _ = client.Close() })

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	return NewRedisEventPublisher(client), NewRedisSubscriber(client, logger)
}

func waitForEvent(t *testing.T, events <-chan AlertEvent) AlertEvent {
	t.Helper()
	select {
	case event := <-events:
		return event
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for alert event")
		return AlertEvent{}
	}
}

func TestPublishSubscribe_RoundTrip(t *testing.T) {
	publisher, subscriber := setupTestRedis(t)
	ctx := context.Background()
	alertID := uuid.New()

	events, cancel, err := subscriber.SubscribeAll(ctx)
	require.NoError(t, err)
	defer cancel()

	published := AlertEvent{
		Type: EventCreated,
		Alert: &models.Alert{
			ID:               alertID,
			Status:           models.StatusActive,
			TargetDepartment: models.DepartmentWellbeing,
		},
	}
	require.NoError(t, publisher.Publish(ctx, published))

	got := waitForEvent(t, events)
	assert.Equal(t, EventCreated, got.Type)
	require.NotNil(t, got.Alert)
	assert.Equal(t, alertID, got.Alert.ID)
	assert.Equal(t, models.StatusActive, got.Alert.Status)
}

func TestSubscribeAll_DeliversAllMutations(t *testing.T) {
	publisher, subscriber := setupTestRedis(t)
	ctx := context.Background()

	events, cancel, err := subscriber.SubscribeAll(ctx)
	require.NoError(t, err)
	defer cancel()

	first := uuid.New()
	second := uuid.New()
	require.NoError(t, publisher.Publish(ctx, AlertEvent{
		Type:  EventCreated,
		Alert: &models.Alert{ID: first, Status: models.StatusActive},
	}))
	require.NoError(t, publisher.Publish(ctx, AlertEvent{
		Type:  EventClaimed,
		Alert: &models.Alert{ID: second, Status: models.StatusAttending},
	}))

	got1 := waitForEvent(t, events)
	got2 := waitForEvent(t, events)
	assert.Equal(t, first, got1.Alert.ID)
	assert.Equal(t, second, got2.Alert.ID)
}

func TestSubscribeAlert_FiltersForeignAlerts(t *testing.T) {
	publisher, subscriber := setupTestRedis(t)
	ctx := context.Background()
	mine := uuid.New()
	foreign := uuid.New()

	events, cancel, err := subscriber.SubscribeAlert(ctx, mine)
	require.NoError(t, err)
	defer cancel()

	// Чужое событие публикуется первым: если бы фильтр пропускал его,
	// оно пришло бы раньше собственного.
	require.NoError(t, publisher.Publish(ctx, AlertEvent{
		Type:  EventCreated,
		Alert: &models.Alert{ID: foreign, Status: models.StatusActive},
	}))
	require.NoError(t, publisher.Publish(ctx, AlertEvent{
		Type:  EventClaimed,
		Alert: &models.Alert{ID: mine, Status: models.StatusAttending},
	}))

	got := waitForEvent(t, events)
	assert.Equal(t, mine, got.Alert.ID)
	assert.Equal(t, EventClaimed, got.Type)
}

func TestSubscribe_CancelClosesChannel(t *testing.T) {
	_, subscriber := setupTestRedis(t)
	ctx := context.Background()

	events, cancel, err := subscriber.SubscribeAll(ctx)
	require.NoError(t, err)

	cancel()
	// Повторный вызов отмены безопасен.
	cancel()

	select {
	case _, ok := <-events:
		assert.False(t, ok, "channel should be closed after cancel")
	case <-time.After(2 * time.Second):
		t.Fatal("channel was not closed after cancel")
	}
}
