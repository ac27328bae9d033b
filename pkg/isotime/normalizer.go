package isotime

import "time"

// Normalizer validates and normalizes textual date, time, offset, and
// duration expressions into canonical basic ISO-8601 forms, and converts
// those forms into instants through its Calendar engine.
//
// A Normalizer holds no mutable state and is safe for concurrent use.
type Normalizer struct {
	cal Calendar
	now func() time.Time
}

// Option configures a Normalizer during construction.
type Option func(*Normalizer)

// WithCalendar replaces the default StdCalendar engine. Nil calendars are
// ignored.
func WithCalendar(cal Calendar) Option {
	return func(n *Normalizer) {
		if cal != nil {
			n.cal = cal
		}
	}
}

// WithClock replaces the wall clock used for the year upper-bound check.
// Nil clocks are ignored.
func WithClock(now func() time.Time) Option {
	return func(n *Normalizer) {
		if now != nil {
			n.now = now
		}
	}
}

// New creates a Normalizer backed by StdCalendar and the system clock
// unless overridden by options.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{
		cal: StdCalendar{},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}
