package shift

import "context"

// ShiftService defines business logic for shift operations
type ShiftService interface {
	ListShifts(ctx context.Context) ([]ShiftResponse, error)

	GetShift(ctx context.Context, id string) (ShiftResponse, error)

	// CreateShift creates a new shift; names are unique per deployment
	CreateShift(ctx context.Context, req CreateShiftRequest) (ShiftResponse, error)

	UpdateShift(ctx context.Context, id string, req UpdateShiftRequest) (ShiftResponse, error)

	// DeleteShift removes a shift. Deletion is rejected with ErrShiftInUse
	// while any employee still references the shift.
	DeleteShift(ctx context.Context, id string) error
}
