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
)

const profileColumns = `
	id,
	full_name,
	cedula,
	COALESCE(phone, ''),
	role,
	department,
	false_alert_count,
	created_at
`

type ProfileRepository struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) service.ProfileRepository {
	return &ProfileRepository{db: db}
}

func scanProfile(row rowScanner) (*models.Profile, error) {
	profile := &models.Profile{}
	err := row.Scan(
		&profile.ID,
		&profile.FullName,
		&profile.Cedula,
		&profile.Phone,
		&profile.Role,
		&profile.Department,
		&profile.FalseAlertCount,
		&profile.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// GetByID возвращает профиль по id, включая счетчик ложных тревог.
func (r *ProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1;`
	profile, err := scanProfile(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile by id: %w", err)
	}
	return profile, nil
}

// GetByCedula возвращает профиль по номеру документа (поиск истории оператором).
func (r *ProfileRepository) GetByCedula(ctx context.Context, cedula string) (*models.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE cedula = $1;`
	profile, err := scanProfile(r.db.QueryRow(ctx, query, cedula))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile by cedula: %w", err)
	}
	return profile, nil
}
