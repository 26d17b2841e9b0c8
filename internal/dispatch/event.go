// Package dispatch - канал доставки мутаций тревог в реальном времени.
// Каждая зафиксированная операция create/claim/close/report-false публикует
// ровно одно событие с полной записью тревоги после мутации. Тревоги никогда
// не удаляются, только закрываются, поэтому tombstone-событий не бывает.
//
// Доставка at-least-once: подписчик обязан применять событие идемпотентно
// (перезапись локального представления входящим статусом). Гарантии порядка
// действуют только внутри одного id тревоги; после разрыва подписки состояние
// восстанавливается повторным чтением ListOpen/GetOwn, а не по потоку.
package dispatch

import (
	"github.com/shenikar/campus_panic_system/internal/models"
)

// Тип события соответствует операции хранилища тревог.
const (
	EventCreated    = "created"
	EventClaimed    = "claimed"
	EventClosed     = "closed"
	EventFalseAlert = "false_alert"
)

// AlertEvent - одно событие мутации тревоги.
type AlertEvent struct {
	Type  string        `json:"type"`
	Alert *models.Alert `json:"alert"`
}
