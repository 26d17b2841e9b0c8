package models

import (
	"time"

	"github.com/google/uuid"
)

// Статусы тревоги. CLOSED — терминальный, из него переходов нет.
const (
	StatusActive    = "ACTIVE"
	StatusAttending = "ATTENDING"
	StatusClosed    = "CLOSED"
)

// Целевые департаменты реагирования.
const (
	DepartmentWellbeing = "BIENESTAR"
	DepartmentOccHealth = "SALUD_OCUPACIONAL"
	DepartmentSecurity  = "SEGURIDAD"
)

// Роли пользователей, которые выдает провайдер идентификации.
const (
	RoleStudent  = "STUDENT"
	RoleStaff    = "STAFF"
	RoleOperator = "OPERATOR"
	RoleAdmin    = "ADMIN"
)

// Известные теги запрашиваемого оборудования.
const (
	EquipmentFirstAidKit = "BOTIQUIN"
	EquipmentStretcher   = "CAMILLA"
	EquipmentWheelchair  = "SILLA_RUEDAS"
)

// KnownEquipment возвращает true, если тег оборудования известен системе.
func KnownEquipment(tag string) bool {
	switch tag {
	case EquipmentFirstAidKit, EquipmentStretcher, EquipmentWheelchair:
		return true
	}
	return false
}

// Alert представляет одну тревогу с фиксированным жизненным циклом:
// ACTIVE -> ATTENDING -> CLOSED (или сразу ACTIVE -> CLOSED).
// Все поля, кроме статуса и полей claim/close, неизменяемы после создания.
type Alert struct {
	ID               uuid.UUID  `json:"id"`
	CreatedBy        uuid.UUID  `json:"created_by"`
	Status           string     `json:"status"`
	TargetDepartment string     `json:"target_department"`
	Latitude         float64    `json:"latitude"`
	Longitude        float64    `json:"longitude"`
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

// Open возвращает true, пока тревога не закрыта.
func (a *Alert) Open() bool {
	return a.Status != StatusClosed
}

// NewAlertInput - входные данные для создания тревоги.
type NewAlertInput struct {
	CreatedBy        uuid.UUID
	TargetDepartment string
	Latitude         float64
	Longitude        float64
	AccuracyM        *float64
	Equipment        []string
	PhotoPath        *string
}
