package attendance

import (
	"strconv"
	"strings"
	"time"
)

var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// ParseMonth normalizes a month given either as an English month name
// (case-insensitive) or as a 1-based numeric string.
func ParseMonth(s string) (time.Month, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > 12 {
			return 0, ErrInvalidMonth
		}
		return time.Month(n), nil
	}
	for i, name := range monthNames {
		if strings.EqualFold(name, s) {
			return time.Month(i + 1), nil
		}
	}
	return 0, ErrInvalidMonth
}

// ParseYear parses a four-digit year.
func ParseYear(s string) (int, error) {
	s = strings.TrimSpace(s)
	if len(s) != 4 {
		return 0, ErrInvalidYear
	}
	year, err := strconv.Atoi(s)
	if err != nil || year < 1000 {
		return 0, ErrInvalidYear
	}
	return year, nil
}
