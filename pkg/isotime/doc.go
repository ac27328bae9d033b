// Package isotime validates and normalizes textual ISO-8601 date, time,
// timezone-offset, and duration expressions into their canonical "basic"
// form, and converts that form into concrete instants.
//
// The package accepts extended and partial-precision inputs —
// "2014-11-01", "2014-11", "05:35", "+05:00", "1Y5M4D3H" — and collapses
// them into fixed-width separator-free canonical values ("20141101",
// "053500", "+050000") so downstream code only ever sees one
// representation. Every field present in the input is range-checked;
// omitted fields receive documented defaults (month and day "01",
// minute and second "00", missing offset "Z").
//
// # Architecture
//
// Validation happens in two layers. A registry of named character-class
// rules (see ValidateFormat) rejects inputs containing foreign characters
// before any slicing happens; fixed-width component checks then enforce
// semantic ranges on the digit fields. The registry is built once at
// package init and never mutated, so everything here is safe for
// concurrent use without locking.
//
// Normalization entry points hang off a Normalizer, constructed with
// functional options:
//
//   - WithClock injects the wall clock used by the dynamic year
//     upper-bound check (years must be > 2000 and <= next year).
//   - WithCalendar injects the Calendar engine that performs the actual
//     calendar-correct parsing and arithmetic; StdCalendar, backed by the
//     standard library, is the default.
//
// # Usage
//
//	n := isotime.New()
//
//	canonical, err := n.AssembleTimestamp("2014-11-01T05:30:00+05")
//	// "20141101T053000+050000"
//
//	instant, err := n.ParseTimestamp("2014-11-01T05:30:00+05")
//
//	later, err := n.AddDuration("1Y2M", instant)
//
// # Error Handling
//
// Every rejected input yields a *ParseError wrapping one of the package's
// sentinel kinds (ErrInvalidFormat, ErrInvalidComponent, ErrInvalidLength,
// ErrDuplicateUnit, ErrUnorderedUnit, ErrUnknownRule), so callers can
// branch with errors.Is while the message echoes the offending value.
// All errors are terminal: a failure rejects the whole input, with no
// partial results.
//
// # Known Relaxations
//
// Day-of-month validation is structural only (1..31 for every month);
// month-aware day counting is deliberately left to the Calendar engine.
// Duration magnitudes are single-digit per unit by grammar.
package isotime
