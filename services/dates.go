package services

import "time"

// Calendar-day comparisons for streak continuity. All day math happens in a
// single reference location so a session logged at 23:59 and one at 00:01 land
// in adjacent buckets regardless of the server's local zone.
var referenceLocation = time.UTC

func startOfDay(t time.Time) time.Time {
	t = t.In(referenceLocation)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, referenceLocation)
}

// IsSameDay reports whether both times fall in the same calendar day.
func IsSameDay(reference, candidate time.Time) bool {
	return startOfDay(reference).Equal(startOfDay(candidate))
}

// IsYesterday reports whether candidate falls on the calendar day before reference.
func IsYesterday(reference, candidate time.Time) bool {
	return startOfDay(candidate).Equal(startOfDay(reference).AddDate(0, 0, -1))
}

// IsBeforeYesterday reports whether candidate's calendar day is strictly earlier
// than the day before reference.
func IsBeforeYesterday(reference, candidate time.Time) bool {
	return startOfDay(candidate).Before(startOfDay(reference).AddDate(0, 0, -1))
}
