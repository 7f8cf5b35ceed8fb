package shift

import "time"

type Shift struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
