package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)

	// Update replaces every mutable field of the employee row with the
	// values carried by emp. Missing rows report ErrEmployeeNotFound.
	Update(ctx context.Context, id string, emp Employee) (Employee, error)

	Delete(ctx context.Context, id string) error
	ExistsByID(ctx context.Context, id string) (bool, error)

	// ExistsByShiftID reports whether any employee references the shift.
	// The shift delete guard relies on it.
	ExistsByShiftID(ctx context.Context, shiftID string) (bool, error)
}
