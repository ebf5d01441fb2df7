package domain

import (
	"fmt"
	"time"
)

// DateLayout is the on-disk and on-wire representation of a calendar day.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string as local midnight. Parsing in UTC
// would shift the day for users west of Greenwich.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}

// FormatDate renders t as YYYY-MM-DD in its own location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// StartOfDay truncates t to local midnight of the same calendar day.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.In(time.Local).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// Today returns local midnight of the current day.
func Today() time.Time {
	return StartOfDay(time.Now())
}

// DaysBetween returns the number of calendar days from `from` to `to`.
// Negative when `to` is earlier. Time of day and DST transitions are ignored.
func DaysBetween(to, from time.Time) int {
	ty, tm, td := to.Date()
	fy, fm, fd := from.Date()
	a := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	b := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	return int(a.Sub(b).Hours() / 24)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return DaysBetween(a, b) == 0
}
