package attendance

import (
	"sort"
	"time"
)

type DayStatus string

const (
	StatusPresent DayStatus = "present"
	StatusAbsent  DayStatus = "absent"
)

// DayRecord is the derived per-day attendance status for one calendar day.
// Records are computed fresh per query and never persisted.
type DayRecord struct {
	Date    time.Time
	Status  DayStatus
	CheckIn *time.Time
}

// DaysInMonth returns the number of days in the given month of the given
// year, accounting for leap-year Februaries.
func DaysInMonth(month time.Month, year int) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// BuildMonthlyCalendar folds check-in events into exactly one DayRecord per
// calendar day of the month, in ascending day order.
//
// Events of any other type are silently excluded. When several check-ins
// land on the same calendar day, the one with the latest timestamp wins;
// the input is sorted before folding so the outcome does not depend on
// fetch order. An empty input yields an all-absent month.
func BuildMonthlyCalendar(events []Event, month time.Month, year int) []DayRecord {
	checkins := make([]Event, 0, len(events))
	for _, ev := range events {
		if ev.Type == EventCheckIn {
			checkins = append(checkins, ev)
		}
	}

	sort.SliceStable(checkins, func(i, j int) bool {
		return checkins[i].Timestamp.Before(checkins[j].Timestamp)
	})

	byDay := make(map[int]Event, len(checkins))
	for _, ev := range checkins {
		byDay[ev.Timestamp.Day()] = ev
	}

	n := DaysInMonth(month, year)
	records := make([]DayRecord, 0, n)
	for day := 1; day <= n; day++ {
		rec := DayRecord{
			Date:   time.Date(year, month, day, 0, 0, 0, 0, time.UTC),
			Status: StatusAbsent,
		}
		if ev, ok := byDay[day]; ok {
			ts := ev.Timestamp
			rec.Status = StatusPresent
			rec.CheckIn = &ts
		}
		records = append(records, rec)
	}

	return records
}
