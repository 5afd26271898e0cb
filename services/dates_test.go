package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(year int, month time.Month, day, hour int) time.Time {
	return time.Date(year, month, day, hour, 30, 0, 0, time.UTC)
}

func TestIsSameDay(t *testing.T) {
	reference := date(2024, time.May, 16, 21)

	assert.True(t, IsSameDay(reference, date(2024, time.May, 16, 0)))
	assert.True(t, IsSameDay(reference, date(2024, time.May, 16, 23)))
	assert.False(t, IsSameDay(reference, date(2024, time.May, 15, 23)))
	assert.False(t, IsSameDay(reference, date(2024, time.May, 17, 0)))
}

func TestIsYesterday(t *testing.T) {
	reference := date(2024, time.May, 16, 8)

	assert.True(t, IsYesterday(reference, date(2024, time.May, 15, 23)))
	assert.True(t, IsYesterday(reference, date(2024, time.May, 15, 0)))
	assert.False(t, IsYesterday(reference, date(2024, time.May, 16, 0)))
	assert.False(t, IsYesterday(reference, date(2024, time.May, 14, 23)))

	// Month boundary
	assert.True(t, IsYesterday(date(2024, time.June, 1, 4), date(2024, time.May, 31, 22)))
}

func TestIsBeforeYesterday(t *testing.T) {
	reference := date(2024, time.May, 16, 12)

	assert.True(t, IsBeforeYesterday(reference, date(2024, time.May, 14, 23)))
	assert.True(t, IsBeforeYesterday(reference, date(2024, time.April, 30, 10)))
	assert.False(t, IsBeforeYesterday(reference, date(2024, time.May, 15, 0)))
	assert.False(t, IsBeforeYesterday(reference, date(2024, time.May, 16, 1)))
}
