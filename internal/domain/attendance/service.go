package attendance

import "context"

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// GetMonthlyAttendance returns one record per calendar day of the
	// queried month, most recent day first. The month accepts an English
	// month name or a 1-based index; the year is four digits. An employee
	// with no events in the month gets an all-absent calendar, while a
	// non-existent employee is an error.
	GetMonthlyAttendance(ctx context.Context, employeeID, month, year string) ([]DayRecordResponse, error)

	// RecordCheckIn appends a check-in event for an existing employee
	RecordCheckIn(ctx context.Context, req RecordCheckInRequest) (EventResponse, error)
}
