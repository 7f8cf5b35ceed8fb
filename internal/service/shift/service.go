package shift

import (
	"context"
	"fmt"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/employee"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/shift"
)

type ShiftServiceImpl struct {
	shiftRepo    shift.ShiftRepository
	employeeRepo employee.EmployeeRepository
}

func NewShiftService(shiftRepo shift.ShiftRepository, employeeRepo employee.EmployeeRepository) shift.ShiftService {
	return &ShiftServiceImpl{
		shiftRepo:    shiftRepo,
		employeeRepo: employeeRepo,
	}
}

func mapShiftToResponse(sh shift.Shift) shift.ShiftResponse {
	return shift.ShiftResponse{
		ID:        sh.ID,
		Name:      sh.Name,
		CreatedAt: sh.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt: sh.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

// ListShifts implements shift.ShiftService.
func (s *ShiftServiceImpl) ListShifts(ctx context.Context) ([]shift.ShiftResponse, error) {
	shifts, err := s.shiftRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}

	results := make([]shift.ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		results = append(results, mapShiftToResponse(sh))
	}

	return results, nil
}

// GetShift implements shift.ShiftService.
func (s *ShiftServiceImpl) GetShift(ctx context.Context, id string) (shift.ShiftResponse, error) {
	sh, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	return mapShiftToResponse(sh), nil
}

// CreateShift implements shift.ShiftService.
func (s *ShiftServiceImpl) CreateShift(ctx context.Context, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	created, err := s.shiftRepo.Create(ctx, shift.Shift{Name: req.Name})
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	return mapShiftToResponse(created), nil
}

// UpdateShift implements shift.ShiftService.
func (s *ShiftServiceImpl) UpdateShift(ctx context.Context, id string, req shift.UpdateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	updated, err := s.shiftRepo.Update(ctx, id, req.Name)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	return mapShiftToResponse(updated), nil
}

// DeleteShift implements shift.ShiftService.
func (s *ShiftServiceImpl) DeleteShift(ctx context.Context, id string) error {
	inUse, err := s.employeeRepo.ExistsByShiftID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check shift references: %w", err)
	}
	if inUse {
		// Removing a referenced shift would leave dangling employee rows.
		return shift.ErrShiftInUse
	}

	return s.shiftRepo.Delete(ctx, id)
}
