package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/shift"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/database"
)

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepositoryImpl{db: db}
}

// uniqueViolation is the PostgreSQL error code for a unique constraint hit.
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// GetByID implements shift.ShiftRepository.
func (s *shiftRepositoryImpl) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	q := GetQuerier(ctx, s.db)

	query := `SELECT id, name, created_at, updated_at FROM shifts WHERE id = $1`

	var found shift.Shift
	err := q.QueryRow(ctx, query, id).Scan(&found.ID, &found.Name, &found.CreatedAt, &found.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, fmt.Errorf("failed to get shift %s: %w", id, err)
	}

	return found, nil
}

// GetByName implements shift.ShiftRepository.
func (s *shiftRepositoryImpl) GetByName(ctx context.Context, name string) (shift.Shift, error) {
	q := GetQuerier(ctx, s.db)

	query := `SELECT id, name, created_at, updated_at FROM shifts WHERE name = $1`

	var found shift.Shift
	err := q.QueryRow(ctx, query, name).Scan(&found.ID, &found.Name, &found.CreatedAt, &found.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, fmt.Errorf("failed to get shift by name %q: %w", name, err)
	}

	return found, nil
}

// List implements shift.ShiftRepository.
func (s *shiftRepositoryImpl) List(ctx context.Context) ([]shift.Shift, error) {
	q := GetQuerier(ctx, s.db)

	rows, err := q.Query(ctx, `SELECT id, name, created_at, updated_at FROM shifts ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		var sh shift.Shift
		if err := rows.Scan(&sh.ID, &sh.Name, &sh.CreatedAt, &sh.UpdatedAt); err != nil {
			return nil, err
		}
		shifts = append(shifts, sh)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shifts, nil
}

// Create implements shift.ShiftRepository.
func (s *shiftRepositoryImpl) Create(ctx context.Context, newShift shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, s.db)

	if newShift.ID == "" {
		newShift.ID = uuid.NewString()
	}

	query := `
		INSERT INTO shifts (id, name)
		VALUES ($1, $2)
		RETURNING id, name, created_at, updated_at
	`

	var created shift.Shift
	err := q.QueryRow(ctx, query, newShift.ID, newShift.Name).
		Scan(&created.ID, &created.Name, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return shift.Shift{}, shift.ErrShiftNameExists
		}
		return shift.Shift{}, err
	}

	return created, nil
}

// Update implements shift.ShiftRepository.
func (s *shiftRepositoryImpl) Update(ctx context.Context, id string, name string) (shift.Shift, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		UPDATE shifts
		SET name = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id, name, created_at, updated_at
	`

	var updated shift.Shift
	err := q.QueryRow(ctx, query, name, id).
		Scan(&updated.ID, &updated.Name, &updated.CreatedAt, &updated.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		if isUniqueViolation(err) {
			return shift.Shift{}, shift.ErrShiftNameExists
		}
		return shift.Shift{}, fmt.Errorf("failed to update shift %s: %w", id, err)
	}

	return updated, nil
}

// Delete implements shift.ShiftRepository.
func (s *shiftRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, s.db)

	tag, err := q.Exec(ctx, `DELETE FROM shifts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete shift %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}
