// Package clock provides calendar-aware time sources for the presenter.
package clock

import (
	"fmt"
	"strings"
	"time"

	"github.com/ersonp/adopt-card/internal/domain/entities"
)

// Calendar implements ports.Clock on the Gregorian calendar.
//
// Birth dates are zone-naive days, so StartOfDay and YearsBetween work on the
// year, month and day each time carries in its own location. Only Now is
// anchored to the calendar's location.
type Calendar struct {
	loc *time.Location
	now func() time.Time
}

// NewCalendar creates a Calendar that reads the current instant from now and
// reports it in loc. A nil loc means UTC.
func NewCalendar(loc *time.Location, now func() time.Time) *Calendar {
	if loc == nil {
		loc = time.UTC
	}
	return &Calendar{
		loc: loc,
		now: now,
	}
}

// System returns a Calendar backed by the system clock.
func System(loc *time.Location) *Calendar {
	return NewCalendar(loc, time.Now)
}

// Fixed returns a Calendar whose current instant is always t.
func Fixed(t time.Time, loc *time.Location) *Calendar {
	return NewCalendar(loc, func() time.Time { return t })
}

// Location returns the calendar's location.
func (c *Calendar) Location() *time.Location {
	return c.loc
}

// Now returns the current instant in the calendar's location.
func (c *Calendar) Now() time.Time {
	return c.now().In(c.loc)
}

// StartOfDay returns midnight of t's day in t's location.
func (c *Calendar) StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// YearsBetween returns the number of whole years from earlier to later.
// A year completes on the anniversary of earlier's month and day; a 29
// February start completes on 1 March in common years.
func (c *Calendar) YearsBetween(earlier, later time.Time) int {
	ey, em, ed := earlier.Date()
	ly, lm, ld := later.Date()

	if ey > ly || (ey == ly && (em > lm || (em == lm && ed > ld))) {
		return -c.YearsBetween(later, earlier)
	}

	years := ly - ey
	if lm < em || (lm == em && ld < ed) {
		years--
	}
	return years
}

// ParseLocation resolves a timezone name. Empty and "Local" mean the system
// zone; "UTC" means UTC; anything else is an IANA name.
func ParseLocation(name string) (*time.Location, error) {
	switch strings.TrimSpace(name) {
	case "", "Local", "local":
		return time.Local, nil
	}
	loc, err := time.LoadLocation(strings.TrimSpace(name))
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", name, err)
	}
	return loc, nil
}

// ParseDate parses a YYYY-MM-DD date as midnight in loc. A nil loc means UTC.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(entities.DateLayout, strings.TrimSpace(value), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", value, err)
	}
	return t, nil
}
