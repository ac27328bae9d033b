package isotime

import (
	"strings"
	"time"
)

// Unit identifies a single duration unit letter.
type Unit byte

const (
	Years  Unit = 'Y'
	Months Unit = 'M'
	Days   Unit = 'D'
	Hours  Unit = 'H'
)

// Units may be omitted but must appear in this order, each at most once.
const unitOrder = "YMDH"

// Duration holds the decomposed magnitudes of a duration expression,
// keyed by unit. Units absent from the input are absent from the map.
type Duration map[Unit]int

// ParseDuration decomposes a duration expression of consecutive
// digit-and-unit-letter pairs ("1Y5M4D3H", case-insensitive) into a
// Duration. Units must appear in Y, M, D, H order; any subset is allowed
// but repeats are not. Magnitudes are single digits: the grammar pairs
// exactly one digit with each unit letter, so "10Y" is rejected.
func (n *Normalizer) ParseDuration(value string) (Duration, error) {
	upper := strings.ToUpper(value)
	if _, err := ValidateFormat(RuleDuration, upper); err != nil {
		return nil, err
	}
	if len(upper)%2 != 0 {
		return nil, newParseError(ErrInvalidLength, value, "duration %q must be digit and unit letter pairs, e.g. %q", value, "1Y5M4D3H")
	}

	d := make(Duration, len(upper)/2)
	prev := -1
	for i := 0; i < len(upper); i += 2 {
		digit, letter := upper[i], upper[i+1]
		pos := strings.IndexByte(unitOrder, letter)
		if digit < '0' || digit > '9' || pos < 0 {
			return nil, newParseError(ErrInvalidFormat, value, "duration %q must pair a digit with a unit letter, e.g. %q", value, "1Y5M4D3H")
		}
		if pos < prev {
			return nil, newParseError(ErrUnorderedUnit, value, "duration units in %q must appear in Y, M, D, H order", value)
		}
		prev = pos
		if _, dup := d[Unit(letter)]; dup {
			return nil, newParseError(ErrDuplicateUnit, value, "duration %q repeats unit %q", value, string(letter))
		}
		d[Unit(letter)] = int(digit - '0')
	}
	return d, nil
}

// AddDuration parses the duration expression and applies each magnitude
// to the instant through the calendar engine. The additions commute, so
// application order does not affect the result; a zero-magnitude duration
// such as "0H" is a no-op.
func (n *Normalizer) AddDuration(value string, instant time.Time) (time.Time, error) {
	d, err := n.ParseDuration(value)
	if err != nil {
		return time.Time{}, err
	}

	out := instant
	if v, ok := d[Years]; ok {
		out = n.cal.AddYears(out, v)
	}
	if v, ok := d[Months]; ok {
		out = n.cal.AddMonths(out, v)
	}
	if v, ok := d[Days]; ok {
		out = n.cal.AddDays(out, v)
	}
	if v, ok := d[Hours]; ok {
		out = n.cal.AddHours(out, v)
	}
	return out, nil
}
