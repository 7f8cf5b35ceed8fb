package employee

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/attendance"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/employee"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/shift"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/database"
	"golang.org/x/crypto/bcrypt"
)

// EmployeeServiceImpl holds no per-request state; every call works purely
// off its arguments and the external store.
type EmployeeServiceImpl struct {
	tx             database.Transactor
	employeeRepo   employee.EmployeeRepository
	shiftRepo      shift.ShiftRepository
	attendanceRepo attendance.AttendanceRepository
}

func NewEmployeeService(
	tx database.Transactor,
	employeeRepo employee.EmployeeRepository,
	shiftRepo shift.ShiftRepository,
	attendanceRepo attendance.AttendanceRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		tx:             tx,
		employeeRepo:   employeeRepo,
		shiftRepo:      shiftRepo,
		attendanceRepo: attendanceRepo,
	}
}

func mapEmployeeToResponse(emp employee.Employee, shiftName string) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:          emp.ID,
		Name:        emp.Name,
		ContactInfo: emp.ContactInfo,
		Role:        emp.Role,
		Shift:       shiftName,
		Sex:         string(emp.Sex),
		Salary:      emp.Salary.String(),
		Picture:     emp.Picture,
	}
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	shifts, err := s.shiftRepo.List(ctx)
	if err != nil {
		// Never partially resolve: without the shifts the whole read fails.
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}

	idx := shift.BuildNameIndex(shifts)

	results := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		name, ok := idx.ResolveName(emp.ShiftID)
		if !ok {
			// Tolerant read: keep the raw id but make the dangling
			// reference observable as a data-quality signal.
			slog.Warn("employee references unknown shift",
				"employee_id", emp.ID,
				"shift_id", emp.ShiftID,
			)
		}
		results = append(results, mapEmployeeToResponse(emp, name))
	}

	return results, nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	shiftName := emp.ShiftID
	sh, err := s.shiftRepo.GetByID(ctx, emp.ShiftID)
	if err == nil {
		shiftName = sh.Name
	} else {
		slog.Warn("employee references unknown shift",
			"employee_id", emp.ID,
			"shift_id", emp.ShiftID,
		)
	}

	return mapEmployeeToResponse(emp, shiftName), nil
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	// The shift name must resolve before anything is persisted.
	sh, err := s.shiftRepo.GetByName(ctx, req.Shift)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	newEmployee := employee.Employee{
		Name:         req.Name,
		PasswordHash: string(hash),
		ContactInfo:  req.ContactInfo,
		Role:         req.Role,
		Sex:          employee.Sex(req.Sex),
		Salary:       req.Salary,
		Picture:      req.Picture,
		ShiftID:      sh.ID,
	}

	created, err := s.employeeRepo.Create(ctx, newEmployee)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return mapEmployeeToResponse(created, sh.Name), nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	sh, err := s.shiftRepo.GetByName(ctx, req.Shift)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	emp := employee.Employee{
		Name:         req.Name,
		PasswordHash: string(hash),
		ContactInfo:  req.ContactInfo,
		Role:         req.Role,
		Sex:          employee.Sex(req.Sex),
		Salary:       req.Salary,
		Picture:      req.Picture,
		ShiftID:      sh.ID,
	}

	updated, err := s.employeeRepo.Update(ctx, id, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapEmployeeToResponse(updated, sh.Name), nil
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	exists, err := s.employeeRepo.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check employee existence: %w", err)
	}
	if !exists {
		return employee.ErrEmployeeNotFound
	}

	// Events go first so a failure between the two deletes can never leave
	// attendance events pointing at a missing employee.
	err = s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		if err := s.attendanceRepo.DeleteByEmployeeID(txCtx, id); err != nil {
			return err
		}
		return s.employeeRepo.Delete(txCtx, id)
	})
	if err != nil {
		slog.Error("failed to delete employee", "employee_id", id, "error", err)
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	return nil
}
