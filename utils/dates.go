package utils

import (
	"math"
	"time"
)

const dateLayout = "2006-01-02"

// ParseDate parses a date stored as "YYYY-MM-DD" (or a full RFC 3339
// timestamp). The boolean reports whether the value was parseable; callers
// skip the record or display a placeholder instead of failing.
func ParseDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// AddDays returns a copy of t moved n calendar days forward.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// DiffInDays returns the whole-day difference between future and past,
// positive when future is later. Partial days round up.
func DiffInDays(future, past time.Time) int {
	return int(math.Ceil(future.Sub(past).Hours() / 24))
}

// FormatDate renders t as "YYYY-MM-DD".
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}
