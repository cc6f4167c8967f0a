package attendance

import (
	"fmt"
	"math"
	"time"
)

// FormatHours renders an elapsed duration as "H:MM:SS". Hours are not
// zero-padded and may exceed 24.
func FormatHours(d time.Duration) string {
	total := int(d.Seconds())
	return fmt.Sprintf("%d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}

// Rate aggregates records into an attendance percentage over the tenure
// from joiningDate through asOf, a HALF_DAY counting as half a presence.
// Returned with one decimal place of precision.
func Rate(records []Attendance, joiningDate, asOf time.Time) float64 {
	totalDays := int(math.Floor(asOf.Sub(joiningDate).Hours()/24)) + 1
	if totalDays <= 0 {
		return 0
	}

	var effective float64
	for _, r := range records {
		switch r.Status {
		case StatusPresent:
			effective++
		case StatusHalfDay:
			effective += 0.5
		}
	}

	return math.Round(effective/float64(totalDays)*1000) / 10
}
