// file: internals/helpers/datetime.go
package helper

import (
	"strings"
	"time"
)

// ParseFlexibleTime normalizes a date-like input to a timestamp.
// Accepts a full RFC3339 timestamp or a date-only string (treated as midnight
// UTC of that day). Anything unparseable is treated as "not provided" and
// returns nil, so callers fall back to their defaults instead of rejecting.
func ParseFlexibleTime(raw string) *time.Time {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		t = t.UTC()
		return &t
	}
	return nil
}

// FirstOr returns t when non-nil, otherwise def.
func FirstOr(t *time.Time, def time.Time) time.Time {
	if t != nil {
		return *t
	}
	return def
}

// MonthDueDate returns the 15th of the given month at midnight UTC.
func MonthDueDate(year int, month time.Month) time.Time {
	return time.Date(year, month, 15, 0, 0, 0, 0, time.UTC)
}
