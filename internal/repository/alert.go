package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shenikar/campus_panic_system/internal/models"
	"github.com/shenikar/campus_panic_system/internal/service"
)

// alertColumns - общий список колонок для чтения тревоги.
const alertColumns = `
	id,
	created_by,
	status,
	target_department,
	ST_Y(location::geometry) AS latitude,
	ST_X(location::geometry) AS longitude,
	accuracy_m,
	equipment,
	photo_path,
	claimed_by,
	claimed_at,
	closed_by,
	closed_at,
	notes,
	created_at
`

type AlertRepository struct {
	db *pgxpool.Pool
}

func NewAlertRepository(db *pgxpool.Pool) service.AlertRepository {
	return &AlertRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAlert(row rowScanner) (*models.Alert, error) {
	alert := &models.Alert{}
	err := row.Scan(
		&alert.ID,
		&alert.CreatedBy,
		&alert.Status,
		&alert.TargetDepartment,
		&alert.Latitude,
		&alert.Longitude,
		&alert.AccuracyM,
		&alert.Equipment,
		&alert.PhotoPath,
		&alert.ClaimedBy,
		&alert.ClaimedAt,
		&alert.ClosedBy,
		&alert.ClosedAt,
		&alert.Notes,
		&alert.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return alert, nil
}

// Create вставляет новую тревогу в статусе ACTIVE. Бизнес-правило "не более
// одной открытой тревоги на заявителя" проверяется атомарно с самой вставкой
// через частичный уникальный индекс, поэтому гонка двойной отправки невозможна.
func (r *AlertRepository) Create(ctx context.Context, input models.NewAlertInput) (*models.Alert, error) {
	query := `
		INSERT INTO panic_alerts (created_by, status, target_department, location, accuracy_m, equipment, photo_path)
		VALUES ($1, 'ACTIVE', $2, ST_SetSRID(ST_MakePoint($3, $4), 4326), $5, $6, $7)
		ON CONFLICT (created_by) WHERE status <> 'CLOSED' DO NOTHING
		RETURNING ` + alertColumns + `;
	`
	row := r.db.QueryRow(ctx, query,
		input.CreatedBy,
		input.TargetDepartment,
		input.Longitude,
		input.Latitude,
		input.AccuracyM,
		input.Equipment,
		input.PhotoPath,
	)
	alert, err := scanAlert(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// ON CONFLICT DO NOTHING не вернул строку: открытая тревога уже есть.
			return nil, models.ErrOpenAlertExists
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, models.ErrOpenAlertExists
		}
		return nil, fmt.Errorf("failed to create alert: %w", err)
	}
	return alert, nil
}

// Claim переводит тревогу ACTIVE -> ATTENDING одним условным UPDATE
// (compare-and-set по статусу). Из двух одновременно претендующих операторов
// выигрывает ровно один, проигравший получает конфликт.
func (r *AlertRepository) Claim(ctx context.Context, alertID, operatorID uuid.UUID) (*models.Alert, error) {
	query := `
		UPDATE panic_alerts SET
			status = 'ATTENDING',
			claimed_by = $2,
			claimed_at = NOW()
		WHERE id = $1 AND status = 'ACTIVE'
		RETURNING ` + alertColumns + `;
	`
	alert, err := scanAlert(r.db.QueryRow(ctx, query, alertID, operatorID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.transitionConflict(ctx, alertID, models.ErrAlreadyClaimed)
		}
		return nil, fmt.Errorf("failed to claim alert: %w", err)
	}
	return alert, nil
}

// Close переводит тревогу из ACTIVE или ATTENDING в CLOSED. Повторное закрытие
// отклоняется без изменения состояния.
func (r *AlertRepository) Close(ctx context.Context, alertID, operatorID uuid.UUID, notes *string) (*models.Alert, error) {
	query := `
		UPDATE panic_alerts SET
			status = 'CLOSED',
			closed_by = $2,
			closed_at = NOW(),
			notes = $3
		WHERE id = $1 AND status <> 'CLOSED'
		RETURNING ` + alertColumns + `;
	`
	alert, err := scanAlert(r.db.QueryRow(ctx, query, alertID, operatorID, notes))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.transitionConflict(ctx, alertID, models.ErrAlreadyClosed)
		}
		return nil, fmt.Errorf("failed to close alert: %w", err)
	}
	return alert, nil
}

// ReportFalse атомарно закрывает тревогу и инкрементирует счетчик ложных
// тревог заявителя. Обе стороны выполняются в одной транзакции: либо обе
// фиксируются, либо ни одна (расщепленный исход невозможен).
func (r *AlertRepository) ReportFalse(ctx context.Context, alertID, operatorID uuid.UUID) (*models.Alert, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin report-false transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	closeQuery := `
		UPDATE panic_alerts SET
			status = 'CLOSED',
			closed_by = $2,
			closed_at = NOW(),
			notes = 'FALSE_ALERT'
		WHERE id = $1 AND status <> 'CLOSED'
		RETURNING ` + alertColumns + `;
	`
	alert, err := scanAlert(tx.QueryRow(ctx, closeQuery, alertID, operatorID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.transitionConflict(ctx, alertID, models.ErrAlreadyClosed)
		}
		return nil, fmt.Errorf("failed to close alert as false: %w", err)
	}

	counterQuery := `
		UPDATE profiles SET false_alert_count = false_alert_count + 1
		WHERE id = $1;
	`
	cmdTag, err := tx.Exec(ctx, counterQuery, alert.CreatedBy)
	if err != nil {
		return nil, fmt.Errorf("failed to increment false alert counter: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return nil, fmt.Errorf("failed to increment false alert counter: %w", models.ErrProfileNotFound)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit report-false transaction: %w", err)
	}
	return alert, nil
}

// transitionConflict различает "тревога не существует" и "guard не прошел".
func (r *AlertRepository) transitionConflict(ctx context.Context, alertID uuid.UUID, conflict error) error {
	var status string
	err := r.db.QueryRow(ctx, `SELECT status FROM panic_alerts WHERE id = $1;`, alertID).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.ErrAlertNotFound
		}
		return fmt.Errorf("failed to probe alert status: %w", err)
	}
	if status == models.StatusClosed {
		return models.ErrAlreadyClosed
	}
	return conflict
}

// ListOpen возвращает открытые тревоги (ACTIVE и ATTENDING), новые первыми.
func (r *AlertRepository) ListOpen(ctx context.Context) ([]*models.Alert, error) {
	query := `
		SELECT ` + alertColumns + `
		FROM panic_alerts
		WHERE status <> 'CLOSED'
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list open alerts: %w", err)
	}
	defer rows.Close()

	return collectAlerts(rows)
}

// GetOwn возвращает текущую незакрытую тревогу заявителя, если она есть.
func (r *AlertRepository) GetOwn(ctx context.Context, requesterID uuid.UUID) (*models.Alert, error) {
	query := `
		SELECT ` + alertColumns + `
		FROM panic_alerts
		WHERE created_by = $1 AND status <> 'CLOSED'
		ORDER BY created_at DESC
		LIMIT 1;
	`
	alert, err := scanAlert(r.db.QueryRow(ctx, query, requesterID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrAlertNotFound
		}
		return nil, fmt.Errorf("failed to get own alert: %w", err)
	}
	return alert, nil
}

// ListByRequester возвращает историю тревог заявителя, новые первыми.
func (r *AlertRepository) ListByRequester(ctx context.Context, requesterID uuid.UUID, limit int) ([]*models.Alert, error) {
	query := `
		SELECT ` + alertColumns + `
		FROM panic_alerts
		WHERE created_by = $1
		ORDER BY created_at DESC
		LIMIT $2;
	`
	rows, err := r.db.Query(ctx, query, requesterID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts by requester: %w", err)
	}
	defer rows.Close()

	return collectAlerts(rows)
}

// GetAlertStats возвращает количество уникальных заявителей с тревогами
// за последние minutes минут.
func (r *AlertRepository) GetAlertStats(ctx context.Context, minutes int) (int, error) {
	query := `
		SELECT COUNT(DISTINCT created_by)
		FROM panic_alerts
		WHERE created_at >= NOW() - ($1 * INTERVAL '1 minute');
	`
	var count int
	err := r.db.QueryRow(ctx, query, minutes).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get alert stats: %w", err)
	}
	return count, nil
}

func collectAlerts(rows pgx.Rows) ([]*models.Alert, error) {
	alerts := make([]*models.Alert, 0)
	for rows.Next() {
		alert, err := scanAlert(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan alert row: %w", err)
		}
		alerts = append(alerts, alert)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error alert rows iteration: %w", err)
	}
	return alerts, nil
}
