package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	Create(ctx context.Context, event Event) (Event, error)

	// ListByEmployeeAndRange returns the employee's events with
	// from <= timestamp < to, in no guaranteed order.
	ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]Event, error)

	// DeleteByEmployeeID removes every event referencing the employee.
	// Runs before the employee row itself is deleted so no event is ever
	// orphaned.
	DeleteByEmployeeID(ctx context.Context, employeeID string) error
}
