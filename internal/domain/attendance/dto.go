package attendance

import (
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/validator"
)

type RecordCheckInRequest struct {
	EmployeeID string `json:"employee_id"`

	// Timestamp is optional ISO8601; the current time is used when omitted.
	Timestamp *string `json:"timestamp,omitempty"`

	// Type defaults to "check-in" when omitted.
	Type string `json:"type,omitempty"`
}

func (r *RecordCheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.Timestamp != nil {
		if _, ok := validator.IsValidDateTime(*r.Timestamp); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "timestamp",
				Message: "timestamp must be a valid ISO8601 timestamp",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EventResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Type       string `json:"type"`
	Timestamp  string `json:"timestamp"`
}

type DayRecordResponse struct {
	Date        string  `json:"date"`
	Status      string  `json:"status"`
	CheckInTime *string `json:"check_in_time,omitempty"`
}
