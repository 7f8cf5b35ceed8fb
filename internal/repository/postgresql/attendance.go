package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/attendance"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) Create(ctx context.Context, event attendance.Event) (attendance.Event, error) {
	q := GetQuerier(ctx, a.db)

	if event.ID == "" {
		event.ID = uuid.NewString()
	}

	query := `
		INSERT INTO attendance_events (id, employee_id, type, timestamp)
		VALUES ($1, $2, $3, $4)
		RETURNING id, employee_id, type, timestamp, created_at
	`

	var created attendance.Event
	err := q.QueryRow(ctx, query, event.ID, event.EmployeeID, event.Type, event.Timestamp).
		Scan(&created.ID, &created.EmployeeID, &created.Type, &created.Timestamp, &created.CreatedAt)
	if err != nil {
		return attendance.Event{}, err
	}

	return created, nil
}

// ListByEmployeeAndRange implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Event, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, employee_id, type, timestamp, created_at
		FROM attendance_events
		WHERE employee_id = $1 AND timestamp >= $2 AND timestamp < $3
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []attendance.Event
	for rows.Next() {
		var ev attendance.Event
		if err := rows.Scan(&ev.ID, &ev.EmployeeID, &ev.Type, &ev.Timestamp, &ev.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, ev)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

// DeleteByEmployeeID implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) DeleteByEmployeeID(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, a.db)

	// Zero rows affected is fine: an employee with no events is a valid state.
	_, err := q.Exec(ctx, `DELETE FROM attendance_events WHERE employee_id = $1`, employeeID)
	if err != nil {
		return fmt.Errorf("failed to delete attendance events for employee %s: %w", employeeID, err)
	}

	return nil
}
