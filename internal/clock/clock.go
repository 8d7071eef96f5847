// AngelaMos | 2026
// clock.go

// Package clock pins every "calendar day" decision in the tracking engine
// to a single reference timezone. Two instants on the same local calendar
// day are equal for all day-level comparisons, no matter what zone they
// arrived in.
package clock

import (
	"fmt"
	"time"
)

type Clock interface {
	// Now returns the current instant in the reference timezone.
	Now() time.Time
	// Today returns midnight of the current calendar day in the
	// reference timezone.
	Today() time.Time
	Location() *time.Location
}

type realClock struct {
	loc *time.Location
}

func New(timezone string) (Clock, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", timezone, err)
	}
	return &realClock{loc: loc}, nil
}

func (c *realClock) Now() time.Time {
	return time.Now().In(c.loc)
}

func (c *realClock) Today() time.Time {
	return DateOnly(c.Now())
}

func (c *realClock) Location() *time.Location {
	return c.loc
}

// Fixed is a clock frozen at a single instant, for tests.
type Fixed struct {
	Instant time.Time
}

func NewFixed(instant time.Time) *Fixed {
	return &Fixed{Instant: instant}
}

func (c *Fixed) Now() time.Time {
	return c.Instant
}

func (c *Fixed) Today() time.Time {
	return DateOnly(c.Instant)
}

func (c *Fixed) Location() *time.Location {
	return c.Instant.Location()
}

// DateOnly strips the time of day, keeping the calendar date in UTC.
// Comparing DateOnly values compares calendar days regardless of the
// zone the inputs carried.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DaysBetween returns the whole-day difference to - from. Negative when
// to precedes from.
func DaysBetween(from, to time.Time) int {
	return int(DateOnly(to).Sub(DateOnly(from)).Hours() / 24)
}

// EnumerateDays returns every calendar day from from through to,
// inclusive. Empty when to precedes from.
func EnumerateDays(from, to time.Time) []time.Time {
	start := DateOnly(from)
	end := DateOnly(to)
	if end.Before(start) {
		return nil
	}

	days := make([]time.Time, 0, DaysBetween(start, end)+1)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// MinDay returns the earlier of two calendar days.
func MinDay(a, b time.Time) time.Time {
	if DateOnly(b).Before(DateOnly(a)) {
		return DateOnly(b)
	}
	return DateOnly(a)
}
