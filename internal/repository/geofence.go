package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shenikar/campus_panic_system/internal/models"
	"github.com/shenikar/campus_panic_system/internal/service"
	"github.com/shenikar/campus_panic_system/pkg/geo"
)

type GeofenceRepository struct {
	db *pgxpool.Pool
}

func NewGeofenceRepository(db *pgxpool.Pool) service.GeofenceRepository {
	return &GeofenceRepository{db: db}
}

// UpsertForSite заменяет активный полигон площадки целиком в одной транзакции:
// старый полигон деактивируется, новый вставляется. Наблюдатель никогда не
// видит смесь старых и новых вершин. Конкурентная перерисовка одной площадки
// разрешается как last-write-wins на уровне целого полигона.
func (r *GeofenceRepository) UpsertForSite(ctx context.Context, siteID uuid.UUID, polygon geo.Polygon) (*models.Geofence, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin geofence upsert: %w", err)
	}
	defer tx.Rollback(ctx)

	var exists bool
	err = tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM sites WHERE id = $1);`, siteID).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("failed to check site existence: %w", err)
	}
	if !exists {
		return nil, models.ErrSiteNotFound
	}

	_, err = tx.Exec(ctx, `UPDATE campus_geofences SET active = FALSE WHERE site_id = $1 AND active;`, siteID)
	if err != nil {
		return nil, fmt.Errorf("failed to deactivate previous geofence: %w", err)
	}

	polygonJSON, err := polygon.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to encode polygon: %w", err)
	}

	fence := &models.Geofence{SiteID: siteID, Active: true, Polygon: polygon}
	query := `
		INSERT INTO campus_geofences (site_id, active, polygon)
		VALUES ($1, TRUE, ST_SetSRID(ST_GeomFromGeoJSON($2), 4326))
		RETURNING id, created_at;
	`
	err = tx.QueryRow(ctx, query, siteID, string(polygonJSON)).Scan(&fence.ID, &fence.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert geofence: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit geofence upsert: %w", err)
	}
	return fence, nil
}

// ListActive возвращает все активные геозоны с полигонами в GeoJSON.
func (r *GeofenceRepository) ListActive(ctx context.Context) ([]*models.Geofence, error) {
	query := `
		SELECT id, site_id, active, ST_AsGeoJSON(polygon), created_at
		FROM campus_geofences
		WHERE active
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active geofences: %w", err)
	}
	defer rows.Close()

	fences := make([]*models.Geofence, 0)
	for rows.Next() {
		fence := &models.Geofence{}
		var polygonJSON string
		if err := rows.Scan(&fence.ID, &fence.SiteID, &fence.Active, &polygonJSON, &fence.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan geofence row: %w", err)
		}
		if err := fence.Polygon.UnmarshalJSON([]byte(polygonJSON)); err != nil {
			return nil, fmt.Errorf("failed to decode geofence polygon: %w", err)
		}
		fences = append(fences, fence)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error geofence rows iteration: %w", err)
	}
	return fences, nil
}

// CreateSite создает организационную площадку.
func (r *GeofenceRepository) CreateSite(ctx context.Context, site *models.Site) error {
	query := `
		INSERT INTO sites (name, city, address, department, active)
		VALUES ($1, $2, $3, $4, TRUE)
		RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query, site.Name, site.City, site.Address, site.Department).
		Scan(&site.ID, &site.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create site: %w", err)
	}
	site.Active = true
	return nil
}

// ListSites возвращает активные площадки.
func (r *GeofenceRepository) ListSites(ctx context.Context) ([]*models.Site, error) {
	query := `
		SELECT id, name, city, address, department, active, created_at
		FROM sites
		WHERE active
		ORDER BY name;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list sites: %w", err)
	}
	defer rows.Close()

	sites := make([]*models.Site, 0)
	for rows.Next() {
		site := &models.Site{}
		if err := rows.Scan(&site.ID, &site.Name, &site.City, &site.Address, &site.Department, &site.Active, &site.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan site row: %w", err)
		}
		sites = append(sites, site)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error site rows iteration: %w", err)
	}
	return sites, nil
}

// GetSite возвращает площадку по id.
func (r *GeofenceRepository) GetSite(ctx context.Context, id uuid.UUID) (*models.Site, error) {
	query := `
		SELECT id, name, city, address, department, active, created_at
		FROM sites
		WHERE id = $1;
	`
	site := &models.Site{}
	err := r.db.QueryRow(ctx, query, id).
		Scan(&site.ID, &site.Name, &site.City, &site.Address, &site.Department, &site.Active, &site.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrSiteNotFound
		}
		return nil, fmt.Errorf("failed to get site: %w", err)
	}
	return site, nil
}
