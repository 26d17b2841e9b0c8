package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile - зеркало записи пользователя из провайдера идентификации.
// FalseAlertCount - счетчик злоупотреблений: инкрементируется ровно один раз
// на каждую тревогу, закрытую как ложная, и никогда не уменьшается.
type Profile struct {
	ID              uuid.UUID `json:"id"`
	FullName        string    `json:"full_name"`
	Cedula          string    `json:"cedula"`
	Phone           string    `json:"phone,omitempty"`
	Role            string    `json:"role"`
	Department      *string   `json:"department,omitempty"`
	FalseAlertCount int       `json:"false_alert_count"`
	CreatedAt       time.Time `json:"created_at"`
}
