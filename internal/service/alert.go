package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/campus_panic_system/internal/config"
	"github.com/shenikar/campus_panic_system/internal/dispatch"
	"github.com/shenikar/campus_panic_system/internal/models"
	"github.com/shenikar/campus_panic_system/internal/routing"
	"github.com/shenikar/campus_panic_system/internal/webhook"
	"github.com/shenikar/campus_panic_system/pkg/geo"
)

// AlertRepository определяет контракт хранилища тревог. Все переходы статусов
// выполняются в хранилище как атомарные условные обновления, а не как
// read-then-write на уровне приложения.
type AlertRepository interface {
	Create(ctx context.Context, input models.NewAlertInput) (*models.Alert, error)
	Claim(ctx context.Context, alertID, operatorID uuid.UUID) (*models.Alert, error)
	Close(ctx context.Context, alertID, operatorID uuid.UUID, notes *string) (*models.Alert, error)
	ReportFalse(ctx context.Context, alertID, operatorID uuid.UUID) (*models.Alert, error)
	ListOpen(ctx context.Context) ([]*models.Alert, error)
	GetOwn(ctx context.Context, requesterID uuid.UUID) (*models.Alert, error)
	ListByRequester(ctx context.Context, requesterID uuid.UUID, limit int) ([]*models.Alert, error)
	GetAlertStats(ctx context.Context, minutes int) (int, error)
}

// ProfileRepository определяет контракт чтения профилей пользователей.
type ProfileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	GetByCedula(ctx context.Context, cedula string) (*models.Profile, error)
}

// CreateAlertInput - входные данные запроса на создание тревоги.
type CreateAlertInput struct {
	Latitude  float64
	Longitude float64
	AccuracyM *float64
	Equipment []string
	PhotoPath *string
}

// AlertService определяет контракт бизнес-логики жизненного цикла тревог.
type AlertService interface {
	CreateAlert(ctx context.Context, requesterID uuid.UUID, role string, input CreateAlertInput) (*models.Alert, error)
	ClaimAlert(ctx context.Context, alertID, operatorID uuid.UUID) (*models.Alert, error)
	CloseAlert(ctx context.Context, alertID, operatorID uuid.UUID, notes *string) (*models.Alert, error)
	ReportFalseAlert(ctx context.Context, alertID, operatorID uuid.UUID) (*models.Alert, error)
	ListOpenAlerts(ctx context.Context) ([]*models.Alert, error)
	GetOwnAlert(ctx context.Context, requesterID uuid.UUID) (*models.Alert, error)
	AlertHistory(ctx context.Context, cedula string, limit int) (*models.Profile, []*models.Alert, error)
	GetProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	GetStats(ctx context.Context) (int, error)
}

type alertService struct {
	repo             AlertRepository
	profiles         ProfileRepository
	geofences        GeofenceRepository
	logger           *logrus.Logger
	cfg              *config.Config
	events           dispatch.EventPublisher
	webhookPublisher webhook.WebhookPublisher
}

func NewAlertService(
	repo AlertRepository,
	profiles ProfileRepository,
	geofences GeofenceRepository,
	logger *logrus.Logger,
	cfg *config.Config,
	events dispatch.EventPublisher,
	webhookPublisher webhook.WebhookPublisher,
) AlertService {
	return &alertService{
		repo:             repo,
		profiles:         profiles,
		geofences:        geofences,
		logger:           logger,
		cfg:              cfg,
		events:           events,
		webhookPublisher: webhookPublisher,
	}
}

// CreateAlert создает тревогу: резолвит целевой департамент по роли заявителя
// и геопривязке точки, вставляет запись (атомарно с проверкой "одна открытая
// тревога на заявителя") и рассылает событие создания.
func (s *alertService) CreateAlert(ctx context.Context, requesterID uuid.UUID, role string, input CreateAlertInput) (*models.Alert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "alert",
		"method":    "CreateAlert",
		"requester": requesterID,
		"role":      role,
	})
	log.Info("Attempting to create a new alert")

	for _, tag := range input.Equipment {
		if !models.KnownEquipment(tag) {
			return nil, fmt.Errorf("service: unknown equipment tag %q", tag)
		}
	}

	point := geo.Point{Lon: input.Longitude, Lat: input.Latitude}
	department := routing.ResolveAt(role, &point, s.routingOverrides(ctx, log))

	alert, err := s.repo.Create(ctx, models.NewAlertInput{
		CreatedBy:        requesterID,
		TargetDepartment: department,
		Latitude:         input.Latitude,
		Longitude:        input.Longitude,
		AccuracyM:        input.AccuracyM,
		Equipment:        input.Equipment,
		PhotoPath:        input.PhotoPath,
	})
	if err != nil {
		if models.Conflict(err) {
			log.Warn("Requester already has an open alert")
			return nil, err
		}
		log.WithError(err).Error("Failed to create alert in repository")
		return nil, fmt.Errorf("service: could not create alert: %w", err)
	}

	log.WithField("alert_id", alert.ID).WithField("department", alert.TargetDepartment).
		Info("Alert created successfully")
	s.broadcast(ctx, log, dispatch.EventCreated, alert)
	return alert, nil
}

// routingOverrides собирает активные геозоны площадок с выделенным
// департаментом. Сбой чтения геозон не блокирует создание тревоги:
// маршрутизация деградирует до ролевого сопоставления.
func (s *alertService) routingOverrides(ctx context.Context, log *logrus.Entry) []routing.Override {
	fences, err := s.geofences.ListActive(ctx)
	if err != nil {
		log.WithError(err).Warn("Failed to load geofences, falling back to role-based routing")
		return nil
	}
	sites, err := s.geofences.ListSites(ctx)
	if err != nil {
		log.WithError(err).Warn("Failed to load sites, falling back to role-based routing")
		return nil
	}

	departments := make(map[uuid.UUID]string, len(sites))
	for _, site := range sites {
		if site.Department != nil {
			departments[site.ID] = *site.Department
		}
	}

	overrides := make([]routing.Override, 0, len(fences))
	for _, fence := range fences {
		dept, ok := departments[fence.SiteID]
		if !ok {
			continue
		}
		overrides = append(overrides, routing.Override{Polygon: fence.Polygon, Department: dept})
	}
	return overrides
}

// ClaimAlert - переход ACTIVE -> ATTENDING. Конфликт (тревога уже взята или
// закрыта) возвращается вызывающему как есть: правильная реакция - обновить
// представление, а не повторять попытку.
func (s *alertService) ClaimAlert(ctx context.Context, alertID, operatorID uuid.UUID) (*models.Alert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "ClaimAlert",
		"alert_id": alertID,
		"operator": operatorID,
	})
	log.Info("Attempting to claim alert")

	alert, err := s.repo.Claim(ctx, alertID, operatorID)
	if err != nil {
		if models.Conflict(err) {
			log.WithError(err).Warn("Claim rejected")
			return nil, err
		}
		log.WithError(err).Error("Failed to claim alert in repository")
		return nil, fmt.Errorf("service: could not claim alert: %w", err)
	}

	log.Info("Alert claimed successfully")
	s.broadcast(ctx, log, dispatch.EventClaimed, alert)
	return alert, nil
}

// CloseAlert - переход из ACTIVE или ATTENDING в CLOSED.
func (s *alertService) CloseAlert(ctx context.Context, alertID, operatorID uuid.UUID, notes *string) (*models.Alert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "CloseAlert",
		"alert_id": alertID,
		"operator": operatorID,
	})
	log.Info("Attempting to close alert")

	alert, err := s.repo.Close(ctx, alertID, operatorID, notes)
	if err != nil {
		if models.Conflict(err) {
			log.WithError(err).Warn("Close rejected")
			return nil, err
		}
		log.WithError(err).Error("Failed to close alert in repository")
		return nil, fmt.Errorf("service: could not close alert: %w", err)
	}

	log.Info("Alert closed successfully")
	s.broadcast(ctx, log, dispatch.EventClosed, alert)
	return alert, nil
}

// ReportFalseAlert закрывает тревогу как ложную и инкрементирует счетчик
// злоупотреблений заявителя. Обе стороны фиксируются одной транзакцией
// хранилища, поэтому здесь нет компенсирующих действий.
func (s *alertService) ReportFalseAlert(ctx context.Context, alertID, operatorID uuid.UUID) (*models.Alert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "ReportFalseAlert",
		"alert_id": alertID,
		"operator": operatorID,
	})
	log.Info("Attempting to report false alert")

	alert, err := s.repo.ReportFalse(ctx, alertID, operatorID)
	if err != nil {
		if models.Conflict(err) {
			log.WithError(err).Warn("False alert report rejected")
			return nil, err
		}
		log.WithError(err).Error("Failed to report false alert in repository")
		return nil, fmt.Errorf("service: could not report false alert: %w", err)
	}

	log.WithField("requester", alert.CreatedBy).Info("False alert reported")
	s.broadcast(ctx, log, dispatch.EventFalseAlert, alert)
	return alert, nil
}

// ListOpenAlerts возвращает открытые тревоги, новые первыми.
func (s *alertService) ListOpenAlerts(ctx context.Context) ([]*models.Alert, error) {
	alerts, err := s.repo.ListOpen(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list open alerts")
		return nil, fmt.Errorf("service: could not list open alerts: %w", err)
	}
	return alerts, nil
}

// GetOwnAlert возвращает текущую незакрытую тревогу заявителя.
func (s *alertService) GetOwnAlert(ctx context.Context, requesterID uuid.UUID) (*models.Alert, error) {
	alert, err := s.repo.GetOwn(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	return alert, nil
}

// AlertHistory возвращает профиль по номеру документа и историю его тревог.
func (s *alertService) AlertHistory(ctx context.Context, cedula string, limit int) (*models.Profile, []*models.Alert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "alert",
		"method":  "AlertHistory",
	})

	if limit < 1 || limit > 200 {
		limit = 200
	}

	profile, err := s.profiles.GetByCedula(ctx, cedula)
	if err != nil {
		log.WithError(err).Warn("Failed to find profile by cedula")
		return nil, nil, err
	}

	alerts, err := s.repo.ListByRequester(ctx, profile.ID, limit)
	if err != nil {
		log.WithError(err).Error("Failed to list alert history")
		return nil, nil, fmt.Errorf("service: could not list alert history: %w", err)
	}
	return profile, alerts, nil
}

// GetProfile возвращает профиль пользователя (включая счетчик ложных тревог).
func (s *alertService) GetProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	profile, err := s.profiles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// GetStats возвращает количество уникальных заявителей за окно статистики.
func (s *alertService) GetStats(ctx context.Context) (int, error) {
	count, err := s.repo.GetAlertStats(ctx, s.cfg.StatsTimeWindowMinutes)
	if err != nil {
		s.logger.WithError(err).Error("Failed to get alert stats")
		return 0, fmt.Errorf("service: could not get alert stats: %w", err)
	}
	return count, nil
}

// broadcast рассылает зафиксированную мутацию: событие в канал диспетчеризации
// и в очередь вебхуков. Сбой доставки не откатывает мутацию - подписчики
// обязаны сверяться с хранилищем после разрыва, поэтому ошибки только логируются.
func (s *alertService) broadcast(ctx context.Context, log *logrus.Entry, eventType string, alert *models.Alert) {
	if err := s.events.Publish(ctx, dispatch.AlertEvent{Type: eventType, Alert: alert}); err != nil {
		log.WithError(err).Error("Failed to publish alert event")
	}
	if err := s.webhookPublisher.Publish(ctx, webhook.WebhookEvent{
		Type:      eventType,
		Alert:     alert,
		Timestamp: time.Now().UTC(),
	}); err != nil {
		log.WithError(err).Error("Failed to enqueue webhook event")
	}
}
