package models

import (
	"fmt"
	"time"
)

// MonthKeyLayout is the wire format of a month key
const MonthKeyLayout = "2006-01"

// MonthBucket is a calendar month grouping key
type MonthBucket struct {
	Year  int
	Month time.Month
}

// MonthOf returns the bucket containing t, in t's own location
func MonthOf(t time.Time) MonthBucket {
	return MonthBucket{Year: t.Year(), Month: t.Month()}
}

// ParseMonthKey parses a "YYYY-MM" key
func ParseMonthKey(key string) (MonthBucket, error) {
	t, err := time.Parse(MonthKeyLayout, key)
	if err != nil {
		return MonthBucket{}, fmt.Errorf("invalid month key %q: %w", key, err)
	}
	return MonthOf(t), nil
}

// AddMonths moves the bucket by n months, n may be negative
func (m MonthBucket) AddMonths(n int) MonthBucket {
	return MonthOf(m.Start().AddDate(0, n, 0))
}

// Start returns the first instant of the month in UTC
func (m MonthBucket) Start() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// Key returns the "YYYY-MM" representation
func (m MonthBucket) Key() string {
	return m.Start().Format(MonthKeyLayout)
}

// Label returns the short month name, e.g. "Jan"
func (m MonthBucket) Label() string {
	return m.Start().Format("Jan")
}

// Contains reports whether the calendar date of t falls in this month
func (m MonthBucket) Contains(t time.Time) bool {
	return t.Year() == m.Year && t.Month() == m.Month
}

// Before reports whether m is strictly earlier than other
func (m MonthBucket) Before(other MonthBucket) bool {
	if m.Year != other.Year {
		return m.Year < other.Year
	}
	return m.Month < other.Month
}

func (m MonthBucket) String() string {
	return m.Key()
}
