package utils

import "time"

// ParseDate accepts RFC3339 timestamps and bare yyyy-mm-dd dates.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
