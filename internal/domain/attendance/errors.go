package attendance

import "errors"

var (
	ErrInvalidMonth     = errors.New("month must be a month name or a number between 1 and 12")
	ErrInvalidYear      = errors.New("year must be a four-digit year")
	ErrInvalidTimestamp = errors.New("timestamp must be a valid ISO8601 timestamp")
)
