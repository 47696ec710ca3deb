// Package stay holds the date arithmetic every booking path agrees on:
// how many nights a date range covers, what it costs, and when two
// ranges collide.
package stay

import (
	"errors"
	"time"

	"lodge/shared/constant"
	"lodge/shared/failure"
)

// ErrOverlap is the sentinel returned by store layers when a booking write
// loses the overlap check. Services translate it into a CONFLICT failure.
var ErrOverlap = errors.New("room already booked for an overlapping period")

// ParseDate parses a calendar date in YYYY-MM-DD form. The time component
// is always midnight UTC so that date comparisons stay exact.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(constant.DateOnlyFormat, value)
	if err != nil {
		return time.Time{}, failure.BadRequestFromString("invalid date, expected YYYY-MM-DD: " + value) //nolint:wrapcheck
	}

	return t, nil
}

// ValidateRange rejects zero-night and inverted stays.
func ValidateRange(start, end time.Time) error {
	if !start.Before(end) {
		return failure.BadRequestFromString("end date must be after start date") //nolint:wrapcheck
	}

	return nil
}

// Nights returns the number of nights between two calendar dates,
// rounding partial days up.
func Nights(start, end time.Time) int {
	hours := end.Sub(start).Hours()
	nights := int(hours / 24)

	if float64(nights*24) < hours {
		nights++
	}

	return nights
}

// TotalPrice is the price law: nightly price times nights.
func TotalPrice(nightly float64, start, end time.Time) float64 {
	return nightly * float64(Nights(start, end))
}

// Overlaps reports whether two date ranges collide under the
// inclusive-inclusive rule: a.start <= b.end AND a.end >= b.start.
// Back-to-back stays sharing a boundary date count as a collision.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !aEnd.Before(bStart)
}
