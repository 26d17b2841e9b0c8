package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/campus_panic_system/internal/dispatch"
	"github.com/shenikar/campus_panic_system/internal/models"
	"github.com/shenikar/campus_panic_system/internal/service"
)

// OperatorConsole - локальное представление консоли оператора: кэш открытых
// тревог, зеркалирующий ListOpen, и один выбранный id для детального показа.
// Кэш обновляется целиком на любое событие канала: порядок между разными
// тревогами потоком не гарантируется, поэтому после пачки событий истиной
// считается только ListOpen.
type OperatorConsole struct {
	alerts     service.AlertService
	subscriber dispatch.Subscriber
	logger     *logrus.Logger
	operatorID uuid.UUID

	mu        sync.Mutex
	open      []*models.Alert
	selected  *uuid.UUID
	cancelSub func()
}

func NewOperatorConsole(
	alerts service.AlertService,
	subscriber dispatch.Subscriber,
	logger *logrus.Logger,
	operatorID uuid.UUID,
) *OperatorConsole {
	return &OperatorConsole{
		alerts:     alerts,
		subscriber: subscriber,
		logger:     logger,
		operatorID: operatorID,
	}
}

// Start загружает открытые тревоги и подписывается на все мутации.
// После переподключения сначала выполняется Refresh, потом доверие потоку.
func (c *OperatorConsole) Start(ctx context.Context) error {
	if err := c.Refresh(ctx); err != nil {
		return err
	}

	events, cancel, err := c.subscriber.SubscribeAll(ctx)
	if err != nil {
		return fmt.Errorf("console: could not subscribe: %w", err)
	}

	c.mu.Lock()
	if c.cancelSub != nil {
		c.cancelSub()
	}
	c.cancelSub = cancel
	c.mu.Unlock()

	go func() {
		for range events {
			// Содержимое события не применяется инкрементально: любое
			// событие - сигнал перечитать открытый набор целиком.
			if err := c.Refresh(ctx); err != nil {
				c.logger.WithError(err).Error("Failed to refresh operator console")
			}
		}
	}()
	return nil
}

// Refresh перечитывает открытые тревоги. Выбор переживает обновление, только
// если выбранный id все еще в открытом наборе, иначе выбор сбрасывается.
func (c *OperatorConsole) Refresh(ctx context.Context) error {
	open, err := c.alerts.ListOpenAlerts(ctx)
	if err != nil {
		return fmt.Errorf("console: could not refresh open alerts: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.open = open
	if c.selected != nil && c.find(*c.selected) == nil {
		c.selected = nil
	}
	return nil
}

// Select выбирает тревогу из открытого набора.
func (c *OperatorConsole) Select(alertID uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.find(alertID) == nil {
		return models.ErrAlertNotFound
	}
	c.selected = &alertID
	return nil
}

// Claim берет выбранную тревогу в работу. Конфликт означает, что другой
// оператор успел раньше: вызывающему следует обновить представление.
func (c *OperatorConsole) Claim(ctx context.Context) (*models.Alert, error) {
	selected, err := c.requireSelected()
	if err != nil {
		return nil, err
	}

	alert, err := c.alerts.ClaimAlert(ctx, selected, c.operatorID)
	if err != nil {
		return nil, err
	}
	c.applyOptimistic(alert)
	return alert, nil
}

// CloseSelected закрывает выбранную тревогу с заметками.
func (c *OperatorConsole) CloseSelected(ctx context.Context, notes *string) (*models.Alert, error) {
	selected, err := c.requireSelected()
	if err != nil {
		return nil, err
	}

	alert, err := c.alerts.CloseAlert(ctx, selected, c.operatorID, notes)
	if err != nil {
		return nil, err
	}
	c.applyOptimistic(alert)
	return alert, nil
}

// ReportFalse закрывает выбранную тревогу как ложную.
func (c *OperatorConsole) ReportFalse(ctx context.Context) (*models.Alert, error) {
	selected, err := c.requireSelected()
	if err != nil {
		return nil, err
	}

	alert, err := c.alerts.ReportFalseAlert(ctx, selected, c.operatorID)
	if err != nil {
		return nil, err
	}
	c.applyOptimistic(alert)
	return alert, nil
}

// applyOptimistic отражает возвращенную мутацией тревогу до прихода
// следующего обновления по каналу: перезапись по id, закрытая тревога
// исключается из открытого набора.
func (c *OperatorConsole) applyOptimistic(alert *models.Alert) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if alert.Status == models.StatusClosed {
		filtered := c.open[:0]
		for _, a := range c.open {
			if a.ID != alert.ID {
				filtered = append(filtered, a)
			}
		}
		c.open = filtered
		if c.selected != nil && *c.selected == alert.ID {
			c.selected = nil
		}
		return
	}

	for i, a := range c.open {
		if a.ID == alert.ID {
			c.open[i] = alert
			return
		}
	}
}

func (c *OperatorConsole) requireSelected() (uuid.UUID, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selected == nil {
		return uuid.Nil, fmt.Errorf("console: no alert selected")
	}
	return *c.selected, nil
}

func (c *OperatorConsole) find(alertID uuid.UUID) *models.Alert {
	for _, a := range c.open {
		if a.ID == alertID {
			return a
		}
	}
	return nil
}

// Open возвращает копию открытого набора, новые первыми.
func (c *OperatorConsole) Open() []*models.Alert {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*models.Alert, len(c.open))
	copy(out, c.open)
	return out
}

// Selected возвращает выбранную тревогу или nil.
func (c *OperatorConsole) Selected() *models.Alert {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selected == nil {
		return nil
	}
	return c.find(*c.selected)
}

// Stop освобождает подписку при завершении сессии.
func (c *OperatorConsole) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancelSub != nil {
		c.cancelSub()
		c.cancelSub = nil
	}
}
