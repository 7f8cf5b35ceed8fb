package shift

import "context"

type ShiftRepository interface {
	GetByID(ctx context.Context, id string) (Shift, error)

	// GetByName looks up a shift by its unique display name.
	// Write paths use this to turn a submitted shift name into an id.
	GetByName(ctx context.Context, name string) (Shift, error)

	List(ctx context.Context) ([]Shift, error)
	Create(ctx context.Context, newShift Shift) (Shift, error)
	Update(ctx context.Context, id string, name string) (Shift, error)
	Delete(ctx context.Context, id string) error
}
