// Package session - клиентские контроллеры сессий: машина состояний заявителя
// и консоль оператора. Каждая сессия - независимый потребитель событий;
// сессии не разделяют память между собой, вся координация идет через
// хранилище тревог (источник истины) и канал диспетчеризации (уведомления).
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/campus_panic_system/internal/dispatch"
	"github.com/shenikar/campus_panic_system/internal/models"
	"github.com/shenikar/campus_panic_system/internal/service"
	"github.com/shenikar/campus_panic_system/pkg/geo"
)

// Состояния сессии заявителя.
const (
	StateIdle      = "IDLE"
	StateSending   = "SENDING"
	StateSent      = "SENT"
	StateAttending = "ATTENDING"
)

// LocationProvider - внешний источник текущих координат устройства.
// Вызов блокирующий, сессия ограничивает его таймаутом: по таймауту или
// отказу отправка тревоги завершается видимой ошибкой, без тихих повторов.
type LocationProvider interface {
	Current(ctx context.Context) (geo.Point, *float64, error)
}

// RequesterSession - машина состояний одной сессии заявителя:
// IDLE -> SENDING -> SENT -> ATTENDING -> (IDLE после закрытия).
type RequesterSession struct {
	alerts     service.AlertService
	subscriber dispatch.Subscriber
	locations  LocationProvider
	logger     *logrus.Logger

	requesterID     uuid.UUID
	role            string
	locationTimeout time.Duration

	mu          sync.Mutex
	state       string
	alertID     *uuid.UUID
	falseAlerts int
	cancelSub   func()
}

func NewRequesterSession(
	alerts service.AlertService,
	subscriber dispatch.Subscriber,
	locations LocationProvider,
	logger *logrus.Logger,
	requesterID uuid.UUID,
	role string,
	locationTimeout time.Duration,
) *RequesterSession {
	return &RequesterSession{
		alerts:          alerts,
		subscriber:      subscriber,
		locations:       locations,
		logger:          logger,
		requesterID:     requesterID,
		role:            role,
		locationTimeout: locationTimeout,
		state:           StateIdle,
	}
}

// Start восстанавливает состояние после перезагрузки/переподключения:
// сначала запрашивает собственную тревогу у хранилища и только потом
// доверяет потоку событий.
func (s *RequesterSession) Start(ctx context.Context) error {
	log := s.logger.WithFields(logrus.Fields{
		"session":   "requester",
		"requester": s.requesterID,
	})

	if profile, err := s.alerts.GetProfile(ctx, s.requesterID); err == nil {
		s.mu.Lock()
		s.falseAlerts = profile.FalseAlertCount
		s.mu.Unlock()
	} else {
		log.WithError(err).Warn("Failed to load own profile")
	}

	alert, err := s.alerts.GetOwnAlert(ctx, s.requesterID)
	if err != nil {
		if errors.Is(err, models.ErrAlertNotFound) {
			return nil
		}
		return fmt.Errorf("session: could not recover own alert: %w", err)
	}

	s.mu.Lock()
	s.alertID = &alert.ID
	if alert.Status == models.StatusAttending {
		s.state = StateAttending
	} else {
		s.state = StateSent
	}
	s.mu.Unlock()

	log.WithField("alert_id", alert.ID).WithField("status", alert.Status).
		Info("Recovered mid-flight alert")
	return s.subscribe(ctx, alert.ID)
}

// Send отправляет новую тревогу. Любой сбой (геолокация, валидация, конфликт,
// недоступность хранилища) возвращает сессию в IDLE и отдает ошибку вызывающему.
func (s *RequesterSession) Send(ctx context.Context, equipment []string, photoPath *string) (*models.Alert, error) {
	s.mu.Lock()
	if s.state != StateIdle {
		state := s.state
		s.mu.Unlock()
		return nil, fmt.Errorf("session: cannot send in state %s", state)
	}
	s.state = StateSending
	s.mu.Unlock()

	log := s.logger.WithFields(logrus.Fields{
		"session":   "requester",
		"requester": s.requesterID,
	})

	locCtx, cancel := context.WithTimeout(ctx, s.locationTimeout)
	defer cancel()
	point, accuracy, err := s.locations.Current(locCtx)
	if err != nil {
		s.toIdle()
		log.WithError(err).Warn("Failed to acquire location")
		return nil, fmt.Errorf("session: could not acquire location: %w", err)
	}

	alert, err := s.alerts.CreateAlert(ctx, s.requesterID, s.role, service.CreateAlertInput{
		Latitude:  point.Lat,
		Longitude: point.Lon,
		AccuracyM: accuracy,
		Equipment: equipment,
		PhotoPath: photoPath,
	})
	if err != nil {
		s.toIdle()
		log.WithError(err).Warn("Failed to create alert")
		return nil, err
	}

	s.mu.Lock()
	s.state = StateSent
	s.alertID = &alert.ID
	s.mu.Unlock()

	if err := s.subscribe(ctx, alert.ID); err != nil {
		// Подписка не удалась: тревога создана, поток событий недоступен.
		// Состояние остается SENT, следующий Start переподпишется.
		log.WithError(err).Error("Failed to subscribe to alert events")
	}
	return alert, nil
}

func (s *RequesterSession) subscribe(ctx context.Context, alertID uuid.UUID) error {
	events, cancel, err := s.subscriber.SubscribeAlert(ctx, alertID)
	if err != nil {
		return fmt.Errorf("session: could not subscribe: %w", err)
	}

	s.mu.Lock()
	if s.cancelSub != nil {
		s.cancelSub()
	}
	s.cancelSub = cancel
	s.mu.Unlock()

	go func() {
		for event := range events {
			s.apply(event)
		}
	}()
	return nil
}

// apply - идемпотентное применение события: локальное представление просто
// перезаписывается входящим статусом, повторная доставка уже примененного
// состояния - no-op.
func (s *RequesterSession) apply(event dispatch.AlertEvent) {
	if event.Alert == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.alertID == nil || event.Alert.ID != *s.alertID {
		return
	}

	switch event.Alert.Status {
	case models.StatusAttending:
		s.state = StateAttending
	case models.StatusClosed:
		s.state = StateIdle
		s.alertID = nil
		if event.Type == dispatch.EventFalseAlert {
			s.falseAlerts++
		}
		if s.cancelSub != nil {
			s.cancelSub()
			s.cancelSub = nil
		}
	case models.StatusActive:
		s.state = StateSent
	}
}

func (s *RequesterSession) toIdle() {
	s.mu.Lock()
	s.state = StateIdle
	s.mu.Unlock()
}

// State возвращает текущее состояние сессии.
func (s *RequesterSession) State() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// AlertID возвращает id текущей тревоги, если она есть.
func (s *RequesterSession) AlertID() *uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.alertID
}

// FalseAlerts возвращает известный сессии счетчик ложных тревог заявителя.
func (s *RequesterSession) FalseAlerts() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.falseAlerts
}

// Stop освобождает подписку при завершении сессии.
func (s *RequesterSession) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancelSub != nil {
		s.cancelSub()
		s.cancelSub = nil
	}
}
