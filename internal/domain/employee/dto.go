package employee

import (
	"github.com/shopspring/decimal"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name        string          `json:"name"`
	Password    string          `json:"password"`
	ContactInfo string          `json:"contact_info"`
	Role        string          `json:"role"`
	Sex         string          `json:"sex"`
	Salary      decimal.Decimal `json:"salary"`
	Picture     *string         `json:"picture,omitempty"`

	// Shift carries the shift display name, not an id. The service resolves
	// it to an id and rejects the write when no such shift exists.
	Shift string `json:"shift"`
}

func (r *CreateEmployeeRequest) Validate() error {
	return validateEmployeeFields(r.Name, r.Password, r.ContactInfo, r.Role, r.Sex, r.Shift, r.Salary)
}

// UpdateEmployeeRequest carries the full replacement state of an employee.
// Updates are not merged field-by-field; every field is overwritten.
type UpdateEmployeeRequest struct {
	Name        string          `json:"name"`
	Password    string          `json:"password"`
	ContactInfo string          `json:"contact_info"`
	Role        string          `json:"role"`
	Sex         string          `json:"sex"`
	Salary      decimal.Decimal `json:"salary"`
	Picture     *string         `json:"picture,omitempty"`
	Shift       string          `json:"shift"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	return validateEmployeeFields(r.Name, r.Password, r.ContactInfo, r.Role, r.Sex, r.Shift, r.Salary)
}

func validateEmployeeFields(name, password, contactInfo, role, sex, shift string, salary decimal.Decimal) error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	} else if len(password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if validator.IsEmpty(contactInfo) {
		errs = append(errs, validator.ValidationError{
			Field:   "contact_info",
			Message: "contact_info is required",
		})
	}

	if validator.IsEmpty(role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role is required",
		})
	}

	if !validator.IsInSlice(sex, []string{string(SexMale), string(SexFemale)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "sex",
			Message: "sex must be Male or Female",
		})
	}

	if salary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "salary",
			Message: "salary must not be negative",
		})
	}

	if validator.IsEmpty(shift) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift",
			Message: "shift is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// EmployeeResponse is the externally consumed projection: the shift field
// holds the resolved display name, never the raw foreign key, except when
// the reference is dangling and the raw id is kept as a fallback.
type EmployeeResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	ContactInfo string  `json:"contact_info"`
	Role        string  `json:"role"`
	Shift       string  `json:"shift"`
	Sex         string  `json:"sex"`
	Salary      string  `json:"salary"`
	Picture     *string `json:"picture,omitempty"`
}
