package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID           string
	Name         string
	PasswordHash string
	ContactInfo  string
	Role         string
	Sex          Sex
	Salary       decimal.Decimal
	Picture      *string
	ShiftID      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Sex string

const (
	SexMale   Sex = "Male"
	SexFemale Sex = "Female"
)
