package isotime

import "strconv"

// Years at or before minYear are rejected; the upper bound is next year
// relative to the Normalizer's clock.
const minYear = 2000

// checkYear validates a 4-digit year field. The upper bound is dynamic:
// it is evaluated against the clock injected via WithClock, which is the
// one deliberate non-determinism in the package.
func (n *Normalizer) checkYear(raw string) error {
	year, err := strconv.Atoi(raw)
	if err != nil {
		return newParseError(ErrInvalidComponent, raw, "year %q is not numeric", raw)
	}
	maxYear := n.cal.Year(n.now()) + 1
	if year <= minYear || year > maxYear {
		return newParseError(ErrInvalidComponent, raw, "year %q must be after %d and no later than %d", raw, minYear, maxYear)
	}
	return nil
}

func checkMonth(raw string) error {
	month, err := strconv.Atoi(raw)
	if err != nil || month < 1 || month > 12 {
		return newParseError(ErrInvalidComponent, raw, "month %q must be between 01 and 12", raw)
	}
	return nil
}

// checkDay is structural only: day 31 passes for every month, February
// included. Month-aware day counting is the calendar engine's concern.
func checkDay(raw string) error {
	day, err := strconv.Atoi(raw)
	if err != nil || day < 1 || day > 31 {
		return newParseError(ErrInvalidComponent, raw, "day %q must be between 01 and 31", raw)
	}
	return nil
}

func checkHour(raw string) error {
	hour, err := strconv.Atoi(raw)
	if err != nil || hour < 0 || hour > 23 {
		return newParseError(ErrInvalidComponent, raw, "hour %q must be between 00 and 23", raw)
	}
	return nil
}

// checkSexagesimal validates a minute or second field; both share the
// same 0..59 range.
func checkSexagesimal(field, raw string) error {
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 || v > 59 {
		return newParseError(ErrInvalidComponent, raw, "%s %q must be between 00 and 59", field, raw)
	}
	return nil
}
