// Package mocks provides mock implementations for testing.
package mocks

import "time"

// Clock is a mock implementation of ports.Clock.
// YearsBetween returns Years when set.
type Clock struct {
	Today time.Time
	Years *int

	// Calls records the arguments YearsBetween was called with.
	Calls [][2]time.Time
}

// Now returns the configured Today.
func (m *Clock) Now() time.Time {
	return m.Today
}

// StartOfDay truncates t to midnight in t's location.
func (m *Clock) StartOfDay(t time.Time) time.Time {
	y, mo, d := t.Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, t.Location())
}

// YearsBetween returns the configured Years, or the difference in calendar
// years ignoring month and day when Years is nil.
func (m *Clock) YearsBetween(earlier, later time.Time) int {
	m.Calls = append(m.Calls, [2]time.Time{earlier, later})
	if m.Years != nil {
		return *m.Years
	}
	return later.Year() - earlier.Year()
}
