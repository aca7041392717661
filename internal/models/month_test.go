package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthBucket_AddMonths(t *testing.T) {
	m := MonthBucket{Year: 2024, Month: time.March}

	assert.Equal(t, MonthBucket{Year: 2024, Month: time.February}, m.AddMonths(-1))
	assert.Equal(t, MonthBucket{Year: 2023, Month: time.October}, m.AddMonths(-5))
	assert.Equal(t, MonthBucket{Year: 2025, Month: time.January}, m.AddMonths(10))
}

func TestMonthBucket_KeyAndLabel(t *testing.T) {
	m := MonthBucket{Year: 2024, Month: time.January}
	assert.Equal(t, "2024-01", m.Key())
	assert.Equal(t, "Jan", m.Label())
	assert.Equal(t, "2024-01", m.String())
}

func TestMonthOf_UsesCalendarDateOfInstant(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	instant := time.Date(2024, time.March, 1, 1, 0, 0, 0, ist)

	assert.Equal(t, MonthBucket{Year: 2024, Month: time.March}, MonthOf(instant))
	assert.Equal(t, MonthBucket{Year: 2024, Month: time.February}, MonthOf(instant.UTC()))
}

func TestMonthBucket_ContainsAndBefore(t *testing.T) {
	m := MonthBucket{Year: 2024, Month: time.February}

	assert.True(t, m.Contains(time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)))
	assert.False(t, m.Contains(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, m.Before(MonthBucket{Year: 2024, Month: time.March}))
	assert.True(t, MonthBucket{Year: 2023, Month: time.December}.Before(m))
	assert.False(t, m.Before(m))
}

func TestParseMonthKey(t *testing.T) {
	m, err := ParseMonthKey("2024-02")
	require.NoError(t, err)
	assert.Equal(t, MonthBucket{Year: 2024, Month: time.February}, m)

	_, err = ParseMonthKey("2024-13")
	assert.Error(t, err)
	_, err = ParseMonthKey("February")
	assert.Error(t, err)
}
