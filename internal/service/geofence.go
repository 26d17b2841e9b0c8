package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/campus_panic_system/internal/models"
	"github.com/shenikar/campus_panic_system/pkg/geo"
)

// GeofenceRepository определяет контракт хранилища геозон и площадок.
type GeofenceRepository interface {
	UpsertForSite(ctx context.Context, siteID uuid.UUID, polygon geo.Polygon) (*models.Geofence, error)
	ListActive(ctx context.Context) ([]*models.Geofence, error)
	CreateSite(ctx context.Context, site *models.Site) error
	ListSites(ctx context.Context) ([]*models.Site, error)
	GetSite(ctx context.Context, id uuid.UUID) (*models.Site, error)
}

// GeofenceService определяет контракт бизнес-логики геозон.
type GeofenceService interface {
	UpsertForSite(ctx context.Context, siteID uuid.UUID, polygon geo.Polygon) (*models.Geofence, error)
	ListActive(ctx context.Context) ([]*models.Geofence, error)
	CreateSite(ctx context.Context, site *models.Site) error
	ListSites(ctx context.Context) ([]*models.Site, error)
	CheckLocation(ctx context.Context, point geo.Point) ([]*models.Geofence, error)
}

type geofenceService struct {
	repo   GeofenceRepository
	logger *logrus.Logger
}

func NewGeofenceService(repo GeofenceRepository, logger *logrus.Logger) GeofenceService {
	return &geofenceService{repo: repo, logger: logger}
}

// UpsertForSite валидирует кольцо и заменяет активный полигон площадки целиком.
// Дегенеративные кольца отклоняются здесь, при сохранении: запросы contains
// их уже не видят.
func (s *geofenceService) UpsertForSite(ctx context.Context, siteID uuid.UUID, polygon geo.Polygon) (*models.Geofence, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "geofence",
		"method":  "UpsertForSite",
		"site_id": siteID,
	})
	log.Info("Attempting to replace site geofence")

	if err := polygon.Validate(); err != nil {
		log.WithError(err).Warn("Polygon validation failed")
		return nil, err
	}

	fence, err := s.repo.UpsertForSite(ctx, siteID, polygon)
	if err != nil {
		log.WithError(err).Error("Failed to upsert geofence in repository")
		return nil, fmt.Errorf("service: could not upsert geofence: %w", err)
	}

	log.WithField("geofence_id", fence.ID).Info("Geofence replaced successfully")
	return fence, nil
}

// ListActive возвращает все активные геозоны.
func (s *geofenceService) ListActive(ctx context.Context) ([]*models.Geofence, error) {
	fences, err := s.repo.ListActive(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list active geofences")
		return nil, fmt.Errorf("service: could not list geofences: %w", err)
	}
	return fences, nil
}

// CreateSite создает организационную площадку.
func (s *geofenceService) CreateSite(ctx context.Context, site *models.Site) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "geofence",
		"method":  "CreateSite",
		"name":    site.Name,
	})
	log.Info("Attempting to create site")

	if err := s.repo.CreateSite(ctx, site); err != nil {
		log.WithError(err).Error("Failed to create site in repository")
		return fmt.Errorf("service: could not create site: %w", err)
	}

	log.WithField("site_id", site.ID).Info("Site created successfully")
	return nil
}

// ListSites возвращает активные площадки.
func (s *geofenceService) ListSites(ctx context.Context) ([]*models.Site, error) {
	sites, err := s.repo.ListSites(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list sites")
		return nil, fmt.Errorf("service: could not list sites: %w", err)
	}
	return sites, nil
}

// CheckLocation возвращает активные геозоны, содержащие точку
// (пустой срез - точка вне кампуса).
func (s *geofenceService) CheckLocation(ctx context.Context, point geo.Point) ([]*models.Geofence, error) {
	fences, err := s.repo.ListActive(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list geofences for location check")
		return nil, fmt.Errorf("service: could not check location: %w", err)
	}

	containing := make([]*models.Geofence, 0)
	for _, fence := range fences {
		if fence.Polygon.Contains(point) {
			containing = append(containing, fence)
		}
	}
	return containing, nil
}
