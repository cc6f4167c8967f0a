package calendar

import (
	"time"

	calendarerrors "astramaie-backoffice/internal/calendar/errors"
)

// NormalizeDate strips the time-of-day component in UTC. Every date-only
// comparison in the engine goes through this so a timestamp near midnight in
// some local zone can never land on the wrong calendar day.
func NormalizeDate(t time.Time) time.Time {
	u := t.In(time.UTC)
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

func isWeekend(d time.Time) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// CountWorkingDays counts the working days in the inclusive range
// [start, end] against the given holiday set. An inverted range is an error,
// a valid range with no working days legitimately returns 0.
func CountWorkingDays(start, end time.Time, holidays map[time.Time]struct{}) (int, error) {
	start = NormalizeDate(start)
	end = NormalizeDate(end)
	if end.Before(start) {
		return 0, calendarerrors.ErrInvalidRange
	}

	count := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if isWeekend(d) {
			continue
		}
		if _, ok := holidays[d]; ok {
			continue
		}
		count++
	}
	return count, nil
}

func holidaySet(holidays []Holiday) map[time.Time]struct{} {
	set := make(map[time.Time]struct{}, len(holidays))
	for _, h := range holidays {
		set[NormalizeDate(h.Date)] = struct{}{}
	}
	return set
}
