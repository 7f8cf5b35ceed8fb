package employee

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/attendance"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/employee"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/shift"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// ===== In-memory fakes =====

type opRecorder struct {
	ops []string
}

type fakeShiftRepo struct {
	shifts  []shift.Shift
	listErr error
}

func (f *fakeShiftRepo) GetByID(_ context.Context, id string) (shift.Shift, error) {
	for _, sh := range f.shifts {
		if sh.ID == id {
			return sh, nil
		}
	}
	return shift.Shift{}, shift.ErrShiftNotFound
}

func (f *fakeShiftRepo) GetByName(_ context.Context, name string) (shift.Shift, error) {
	for _, sh := range f.shifts {
		if sh.Name == name {
			return sh, nil
		}
	}
	return shift.Shift{}, shift.ErrShiftNotFound
}

func (f *fakeShiftRepo) List(_ context.Context) ([]shift.Shift, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.shifts, nil
}

func (f *fakeShiftRepo) Create(_ context.Context, newShift shift.Shift) (shift.Shift, error) {
	f.shifts = append(f.shifts, newShift)
	return newShift, nil
}

func (f *fakeShiftRepo) Update(_ context.Context, id string, name string) (shift.Shift, error) {
	for i, sh := range f.shifts {
		if sh.ID == id {
			f.shifts[i].Name = name
			return f.shifts[i], nil
		}
	}
	return shift.Shift{}, shift.ErrShiftNotFound
}

func (f *fakeShiftRepo) Delete(_ context.Context, id string) error {
	for i, sh := range f.shifts {
		if sh.ID == id {
			f.shifts = append(f.shifts[:i], f.shifts[i+1:]...)
			return nil
		}
	}
	return shift.ErrShiftNotFound
}

type fakeEmployeeRepo struct {
	employees []employee.Employee
	listErr   error
	rec       *opRecorder
	nextID    int
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.ID == id {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(_ context.Context) ([]employee.Employee, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.employees, nil
}

func (f *fakeEmployeeRepo) Create(_ context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	f.nextID++
	newEmployee.ID = "emp-" + strconv.Itoa(f.nextID)
	newEmployee.CreatedAt = time.Now()
	newEmployee.UpdatedAt = newEmployee.CreatedAt
	f.employees = append(f.employees, newEmployee)
	return newEmployee, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, id string, emp employee.Employee) (employee.Employee, error) {
	for i, existing := range f.employees {
		if existing.ID == id {
			emp.ID = id
			emp.CreatedAt = existing.CreatedAt
			emp.UpdatedAt = time.Now()
			f.employees[i] = emp
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) Delete(_ context.Context, id string) error {
	for i, emp := range f.employees {
		if emp.ID == id {
			f.employees = append(f.employees[:i], f.employees[i+1:]...)
			if f.rec != nil {
				f.rec.ops = append(f.rec.ops, "delete employee")
			}
			return nil
		}
	}
	return employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) ExistsByID(_ context.Context, id string) (bool, error) {
	for _, emp := range f.employees {
		if emp.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeEmployeeRepo) ExistsByShiftID(_ context.Context, shiftID string) (bool, error) {
	for _, emp := range f.employees {
		if emp.ShiftID == shiftID {
			return true, nil
		}
	}
	return false, nil
}

type fakeAttendanceRepo struct {
	events []attendance.Event
	rec    *opRecorder
}

func (f *fakeAttendanceRepo) Create(_ context.Context, event attendance.Event) (attendance.Event, error) {
	f.events = append(f.events, event)
	return event, nil
}

func (f *fakeAttendanceRepo) ListByEmployeeAndRange(_ context.Context, employeeID string, from, to time.Time) ([]attendance.Event, error) {
	var out []attendance.Event
	for _, ev := range f.events {
		if ev.EmployeeID == employeeID && !ev.Timestamp.Before(from) && ev.Timestamp.Before(to) {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) DeleteByEmployeeID(_ context.Context, employeeID string) error {
	var kept []attendance.Event
	for _, ev := range f.events {
		if ev.EmployeeID != employeeID {
			kept = append(kept, ev)
		}
	}
	f.events = kept
	if f.rec != nil {
		f.rec.ops = append(f.rec.ops, "delete events")
	}
	return nil
}

type fakeTransactor struct{}

func (fakeTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func validCreateRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		Name:        "Alice Smith",
		Password:    "sup3rsecret",
		ContactInfo: "alice@example.com",
		Role:        "Cashier",
		Sex:         "Female",
		Salary:      decimal.NewFromInt(2500),
		Shift:       "Day",
	}
}

func newTestService(shiftRepo *fakeShiftRepo, employeeRepo *fakeEmployeeRepo, attendanceRepo *fakeAttendanceRepo) employee.EmployeeService {
	return NewEmployeeService(fakeTransactor{}, employeeRepo, shiftRepo, attendanceRepo)
}

// ===== Tests =====

func TestListEmployees_ResolvesShiftNames(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	shiftRepo := &fakeShiftRepo{shifts: []shift.Shift{
		{ID: "1", Name: "Day"},
		{ID: "2", Name: "Night"},
	}}
	employeeRepo := &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: "e1", Name: "Alice", ShiftID: "1", Sex: employee.SexFemale, Salary: decimal.NewFromInt(2500)},
		{ID: "e2", Name: "Bob", ShiftID: "2", Sex: employee.SexMale, Salary: decimal.NewFromInt(2000)},
	}}

	svc := newTestService(shiftRepo, employeeRepo, &fakeAttendanceRepo{})

	results, err := svc.ListEmployees(ctx)

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Day", results[0].Shift)
	assert.Equal(t, "Night", results[1].Shift)
	assert.Equal(t, "2500", results[0].Salary)
}

func TestListEmployees_KeepsRawIDForDanglingShift(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	shiftRepo := &fakeShiftRepo{shifts: []shift.Shift{{ID: "1", Name: "Day"}}}
	employeeRepo := &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: "e1", Name: "Alice", ShiftID: "ghost-shift"},
	}}

	svc := newTestService(shiftRepo, employeeRepo, &fakeAttendanceRepo{})

	results, err := svc.ListEmployees(ctx)

	require.NoError(t, err)
	require.Len(t, results, 1)
	// Tolerant read: the record survives with the unresolved id.
	assert.Equal(t, "ghost-shift", results[0].Shift)
}

func TestListEmployees_Idempotent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	shiftRepo := &fakeShiftRepo{shifts: []shift.Shift{{ID: "1", Name: "Day"}}}
	employeeRepo := &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: "e1", Name: "Alice", ShiftID: "1"},
	}}

	svc := newTestService(shiftRepo, employeeRepo, &fakeAttendanceRepo{})

	first, err := svc.ListEmployees(ctx)
	require.NoError(t, err)
	second, err := svc.ListEmployees(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestListEmployees_FailsWhollyWhenShiftFetchFails(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	shiftRepo := &fakeShiftRepo{listErr: errors.New("connection refused")}
	employeeRepo := &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: "e1", Name: "Alice", ShiftID: "1"},
	}}

	svc := newTestService(shiftRepo, employeeRepo, &fakeAttendanceRepo{})

	results, err := svc.ListEmployees(ctx)

	assert.Error(t, err)
	assert.Nil(t, results)
}

func TestCreateEmployee_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	shiftRepo := &fakeShiftRepo{shifts: []shift.Shift{{ID: "1", Name: "Day"}}}
	employeeRepo := &fakeEmployeeRepo{}

	svc := newTestService(shiftRepo, employeeRepo, &fakeAttendanceRepo{})

	created, err := svc.CreateEmployee(ctx, validCreateRequest())

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Day", created.Shift)

	require.Len(t, employeeRepo.employees, 1)
	persisted := employeeRepo.employees[0]
	// The persisted row references the shift by id, not by name.
	assert.Equal(t, "1", persisted.ShiftID)
	assert.NotEqual(t, "sup3rsecret", persisted.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(persisted.PasswordHash), []byte("sup3rsecret")))
}

func TestCreateEmployee_UnknownShiftRejected(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	shiftRepo := &fakeShiftRepo{shifts: []shift.Shift{{ID: "1", Name: "Day"}}}
	employeeRepo := &fakeEmployeeRepo{}

	svc := newTestService(shiftRepo, employeeRepo, &fakeAttendanceRepo{})

	req := validCreateRequest()
	req.Shift = "Night"

	_, err := svc.CreateEmployee(ctx, req)

	assert.ErrorIs(t, err, shift.ErrShiftNotFound)
	// Nothing may be persisted when the reference does not resolve.
	assert.Empty(t, employeeRepo.employees)
}

func TestCreateEmployee_ValidationFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newTestService(&fakeShiftRepo{}, &fakeEmployeeRepo{}, &fakeAttendanceRepo{})

	req := validCreateRequest()
	req.Name = "  "
	req.Sex = "other"
	req.Salary = decimal.NewFromInt(-1)

	_, err := svc.CreateEmployee(ctx, req)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	details := verrs.ToMap()
	assert.Contains(t, details, "name")
	assert.Contains(t, details, "sex")
	assert.Contains(t, details, "salary")
}

func TestUpdateEmployee_ReplacesAllFields(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	shiftRepo := &fakeShiftRepo{shifts: []shift.Shift{
		{ID: "1", Name: "Day"},
		{ID: "2", Name: "Night"},
	}}
	employeeRepo := &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: "e1", Name: "Alice", Role: "Cashier", ShiftID: "1", Salary: decimal.NewFromInt(2500)},
	}}

	svc := newTestService(shiftRepo, employeeRepo, &fakeAttendanceRepo{})

	updated, err := svc.UpdateEmployee(ctx, "e1", employee.UpdateEmployeeRequest{
		Name:        "Alice Cooper",
		Password:    "newpassword",
		ContactInfo: "alice@new.example.com",
		Role:        "Manager",
		Sex:         "Female",
		Salary:      decimal.NewFromInt(3200),
		Shift:       "Night",
	})

	require.NoError(t, err)
	assert.Equal(t, "Alice Cooper", updated.Name)
	assert.Equal(t, "Manager", updated.Role)
	assert.Equal(t, "Night", updated.Shift)
	assert.Equal(t, "3200", updated.Salary)
	assert.Equal(t, "2", employeeRepo.employees[0].ShiftID)
}

func TestUpdateEmployee_UnknownShiftRejected(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	shiftRepo := &fakeShiftRepo{shifts: []shift.Shift{{ID: "1", Name: "Day"}}}
	employeeRepo := &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: "e1", Name: "Alice", Role: "Cashier", ShiftID: "1"},
	}}

	svc := newTestService(shiftRepo, employeeRepo, &fakeAttendanceRepo{})

	req := employee.UpdateEmployeeRequest(validCreateRequest())
	req.Shift = "Graveyard"

	_, err := svc.UpdateEmployee(ctx, "e1", req)

	assert.ErrorIs(t, err, shift.ErrShiftNotFound)
	assert.Equal(t, "Alice", employeeRepo.employees[0].Name)
}

func TestUpdateEmployee_NotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	shiftRepo := &fakeShiftRepo{shifts: []shift.Shift{{ID: "1", Name: "Day"}}}
	svc := newTestService(shiftRepo, &fakeEmployeeRepo{}, &fakeAttendanceRepo{})

	_, err := svc.UpdateEmployee(ctx, "nope", employee.UpdateEmployeeRequest(validCreateRequest()))

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestDeleteEmployee_CascadesEventsFirst(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	rec := &opRecorder{}
	employeeRepo := &fakeEmployeeRepo{
		employees: []employee.Employee{{ID: "e1", Name: "Alice", ShiftID: "1"}},
		rec:       rec,
	}
	attendanceRepo := &fakeAttendanceRepo{
		events: []attendance.Event{
			{ID: "a1", EmployeeID: "e1", Type: attendance.EventCheckIn},
			{ID: "a2", EmployeeID: "e1", Type: attendance.EventCheckIn},
			{ID: "a3", EmployeeID: "e1", Type: attendance.EventCheckIn},
			{ID: "b1", EmployeeID: "e2", Type: attendance.EventCheckIn},
		},
		rec: rec,
	}

	svc := newTestService(&fakeShiftRepo{}, employeeRepo, attendanceRepo)

	err := svc.DeleteEmployee(ctx, "e1")

	require.NoError(t, err)
	assert.Equal(t, []string{"delete events", "delete employee"}, rec.ops)
	assert.Empty(t, employeeRepo.employees)

	// Other employees' events survive the cascade.
	require.Len(t, attendanceRepo.events, 1)
	assert.Equal(t, "e2", attendanceRepo.events[0].EmployeeID)
}

func TestDeleteEmployee_NotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newTestService(&fakeShiftRepo{}, &fakeEmployeeRepo{}, &fakeAttendanceRepo{})

	err := svc.DeleteEmployee(ctx, "missing")

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
