package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/attendance"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/employee"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository

	// now is swappable so tests can pin the default check-in timestamp.
	now func() time.Time
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		now:            time.Now,
	}
}

func mapRecordToResponse(rec attendance.DayRecord) attendance.DayRecordResponse {
	resp := attendance.DayRecordResponse{
		Date:   rec.Date.Format("2006-01-02"),
		Status: string(rec.Status),
	}
	if rec.CheckIn != nil {
		t := rec.CheckIn.Format("15:04:05")
		resp.CheckInTime = &t
	}
	return resp
}

// GetMonthlyAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetMonthlyAttendance(ctx context.Context, employeeID, monthStr, yearStr string) ([]attendance.DayRecordResponse, error) {
	month, err := attendance.ParseMonth(monthStr)
	if err != nil {
		return nil, err
	}
	year, err := attendance.ParseYear(yearStr)
	if err != nil {
		return nil, err
	}

	// A missing employee is an error; an employee with no events is not.
	exists, err := a.employeeRepo.ExistsByID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to check employee existence: %w", err)
	}
	if !exists {
		return nil, employee.ErrEmployeeNotFound
	}

	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	events, err := a.attendanceRepo.ListByEmployeeAndRange(ctx, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch attendance events: %w", err)
	}

	records := attendance.BuildMonthlyCalendar(events, month, year)

	// Most recent day first, matching what consumers of the calendar
	// already expect by default.
	results := make([]attendance.DayRecordResponse, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		results = append(results, mapRecordToResponse(records[i]))
	}

	return results, nil
}

// RecordCheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) RecordCheckIn(ctx context.Context, req attendance.RecordCheckInRequest) (attendance.EventResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.EventResponse{}, err
	}

	exists, err := a.employeeRepo.ExistsByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.EventResponse{}, fmt.Errorf("failed to check employee existence: %w", err)
	}
	if !exists {
		return attendance.EventResponse{}, employee.ErrEmployeeNotFound
	}

	timestamp := a.now().UTC()
	if req.Timestamp != nil {
		parsed, ok := validator.IsValidDateTime(*req.Timestamp)
		if !ok {
			return attendance.EventResponse{}, attendance.ErrInvalidTimestamp
		}
		timestamp = parsed
	}

	eventType := attendance.EventType(req.Type)
	if req.Type == "" {
		eventType = attendance.EventCheckIn
	}

	created, err := a.attendanceRepo.Create(ctx, attendance.Event{
		EmployeeID: req.EmployeeID,
		Type:       eventType,
		Timestamp:  timestamp,
	})
	if err != nil {
		return attendance.EventResponse{}, fmt.Errorf("failed to record check-in: %w", err)
	}

	return attendance.EventResponse{
		ID:         created.ID,
		EmployeeID: created.EmployeeID,
		Type:       string(created.Type),
		Timestamp:  created.Timestamp.Format(time.RFC3339),
	}, nil
}
