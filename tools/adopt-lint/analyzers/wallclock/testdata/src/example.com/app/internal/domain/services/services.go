package services

import (
	"time"
	stdtime "time"
)

type clock interface {
	Now() time.Time
}

func badNow() time.Time {
	return time.Now() // want "time.Now called in domain package"
}

func badAlias(start time.Time) time.Duration {
	return stdtime.Since(start) // want "time.Since called in domain package"
}

func badUntil(end time.Time) time.Duration {
	return time.Until(end) // want "time.Until called in domain package"
}

// A function value is allowed so tests can replace it.
var timeNow = time.Now

func goodInjected(c clock) time.Time {
	return c.Now()
}

func goodDate() time.Time {
	return time.Date(2024, 10, 17, 0, 0, 0, 0, time.UTC)
}
