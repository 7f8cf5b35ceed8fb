package shift

import "errors"

var (
	ErrShiftNotFound   = errors.New("shift not found")
	ErrShiftNameExists = errors.New("shift name already exists")
	ErrShiftInUse      = errors.New("shift is still assigned to one or more employees")
)
