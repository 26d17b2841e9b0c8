package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/shenikar/campus_panic_system/pkg/geo"
)

// Site - организационная площадка (кампус), к которой привязывается геозона.
// Department, если задан, переопределяет ролевую маршрутизацию для тревог,
// чья точка попадает в активную геозону площадки.
type Site struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	City       string    `json:"city"`
	Address    string    `json:"address"`
	Department *string   `json:"department,omitempty"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
}

// Geofence - именованный полигон границы площадки.
// Полигон заменяется целиком при перерисовке, а не редактируется повершинно.
type Geofence struct {
	ID        uuid.UUID   `json:"id"`
	SiteID    uuid.UUID   `json:"site_id"`
	Active    bool        `json:"active"`
	Polygon   geo.Polygon `json:"polygon"`
	CreatedAt time.Time   `json:"created_at"`
}
