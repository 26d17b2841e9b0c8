package v1

import (
	"time"

	"github.com/google/uuid"

	"github.com/shenikar/campus_panic_system/pkg/geo"
)

// CreateAlertRequest DTO для создания тревоги
// @Description DTO для создания тревоги
type CreateAlertRequest struct {
	// Координаты задаются указателями: нулевая широта или долгота
	// (экватор, нулевой меридиан) допустима и отличается от отсутствия поля.
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
	AccuracyM *float64 `json:"accuracy_m,omitempty" validate:"omitempty,gte=0"`
	Equipment []string `json:"equipment,omitempty" validate:"omitempty,dive,oneof=BOTIQUIN CAMILLA SILLA_RUEDAS"`
	PhotoPath *string  `json:"photo_path,omitempty"`
}

// CloseAlertRequest DTO для закрытия тревоги
// @Description DTO для закрытия тревоги
type CloseAlertRequest struct {
	Notes *string `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

// AlertResponse DTO для ответа с информацией о тревоге
// @Description DTO для ответа с информацией о тревоге
type AlertResponse struct {
	ID               uuid.UUID  `json:"id"`
	CreatedBy        uuid.UUID  `json:"created_by"`
	Status           string     `json:"status"`
	TargetDepartment string     `json:"target_department"`
	Location         geo.Point  `json:"location"`
	AccuracyM        *float64   `json:"accuracy_m,omitempty"`
	Equipment        []string   `json:"equipment,omitempty"`
	PhotoPath        *string    `json:"photo_path,omitempty"`
	ClaimedBy        *uuid.UUID `json:"claimed_by,omitempty"`
	ClaimedAt        *time.Time `json:"claimed_at,omitempty"`
	ClosedBy         *uuid.UUID `json:"closed_by,omitempty"`
	ClosedAt         *time.Time `json:"closed_at,omitempty"`
	Notes            *string    `json:"notes,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

// CreateSiteRequest DTO для создания площадки
// @Description DTO для создания площадки
type CreateSiteRequest struct {
	Name       string  `json:"name" validate:"required,min=2,max=255"`
	City       string  `json:"city" validate:"required,min=2,max=255"`
	Address    string  `json:"address" validate:"required,min=2,max=255"`
	Department *string `json:"department,omitempty" validate:"omitempty,oneof=BIENESTAR SALUD_OCUPACIONAL SEGURIDAD"`
}

// SiteResponse DTO для ответа с информацией о площадке
// @Description DTO для ответа с информацией о площадке
type SiteResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	City       string    `json:"city"`
	Address    string    `json:"address"`
	Department *string   `json:"department,omitempty"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
}

// UpsertGeofenceRequest DTO для замены геозоны площадки
// @Description DTO для замены геозоны площадки (GeoJSON Polygon)
type UpsertGeofenceRequest struct {
	Polygon geo.Polygon `json:"polygon"`
}

// GeofenceResponse DTO для ответа с геозоной
// @Description DTO для ответа с геозоной
type GeofenceResponse struct {
	ID        uuid.UUID   `json:"id"`
	SiteID    uuid.UUID   `json:"site_id"`
	Active    bool        `json:"active"`
	Polygon   geo.Polygon `json:"polygon"`
	CreatedAt time.Time   `json:"created_at"`
}

// LocationCheckRequest DTO для проверки точки на принадлежность кампусу
// @Description DTO для проверки точки на принадлежность кампусу
type LocationCheckRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
}

// LocationCheckResponse DTO ответа проверки точки
// @Description DTO ответа проверки точки
type LocationCheckResponse struct {
	OnCampus  bool               `json:"on_campus"`
	Geofences []GeofenceResponse `json:"geofences"`
}

// ProfileResponse DTO для ответа с профилем
// @Description DTO для ответа с профилем
type ProfileResponse struct {
	ID              uuid.UUID `json:"id"`
	FullName        string    `json:"full_name"`
	Cedula          string    `json:"cedula"`
	Phone           string    `json:"phone,omitempty"`
	Role            string    `json:"role"`
	Department      *string   `json:"department,omitempty"`
	FalseAlertCount int       `json:"false_alert_count"`
}

// HistoryResponse DTO для ответа с историей тревог заявителя
// @Description DTO для ответа с историей тревог заявителя
type HistoryResponse struct {
	Profile ProfileResponse `json:"profile"`
	Alerts  []AlertResponse `json:"alerts"`
}

// StatsResponse DTO для ответа со статистикой
// @Description DTO для ответа со статистикой
type StatsResponse struct {
	RequesterCount int `json:"requester_count"`
}
