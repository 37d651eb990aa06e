// Package ports defines the interfaces the domain layer depends on.
package ports

import "time"

// Clock is the time source the presenter derives ages from. It is always
// injected so output is deterministic for a given clock.
type Clock interface {
	// Now returns the current instant.
	Now() time.Time

	// StartOfDay returns midnight of the day containing t, in the clock's calendar.
	StartOfDay(t time.Time) time.Time

	// YearsBetween returns the number of whole calendar years from earlier to later.
	// The result is negative when earlier is after later.
	YearsBetween(earlier, later time.Time) int
}
