package employee

import "context"

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	// ListEmployees returns every employee with the shift reference resolved
	// to its display name
	ListEmployees(ctx context.Context) ([]EmployeeResponse, error)

	// GetEmployee retrieves a single employee by ID
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	// CreateEmployee persists a new employee after resolving the submitted
	// shift name to an existing shift id
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// UpdateEmployee fully replaces an employee's fields; same shift
	// resolution precondition as CreateEmployee
	UpdateEmployee(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// DeleteEmployee removes the employee's attendance events first, then
	// the employee itself
	DeleteEmployee(ctx context.Context, id string) error
}
