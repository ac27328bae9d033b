package isotime

import (
	"strings"
	"time"
)

// AssembleTimestamp normalizes a combined date-time expression into the
// canonical basic form "<YYYYMMDD>T<HHMMSS><offset>". Input is
// case-insensitive ('t' and 'z' are accepted) and must contain a "T"
// separator; use NormalizeDate or ParseDate for date-only values.
//
//	"2014-11-01T05:30:00+05" -> "20141101T053000+050000"
//	"20141101t0530z"         -> "20141101T053000Z"
func (n *Normalizer) AssembleTimestamp(value string) (string, error) {
	upper := strings.ToUpper(value)
	datePart, timeWithOffset, found := strings.Cut(upper, "T")
	if !found {
		return "", newParseError(ErrInvalidFormat, value, "timestamp %q must separate date and time with %q, e.g. %q", value, "T", "20141101T053000Z")
	}

	date, err := n.NormalizeDate(datePart)
	if err != nil {
		return "", err
	}

	timePart, offsetToken := ExtractOffset(timeWithOffset)
	tod, err := n.NormalizeTime(timePart)
	if err != nil {
		return "", err
	}
	offset, err := n.NormalizeOffset(offsetToken)
	if err != nil {
		return "", err
	}

	return date + "T" + tod + offset, nil
}

// ParseTimestamp assembles the canonical timestamp and hands it to the
// calendar engine, returning the resulting instant.
func (n *Normalizer) ParseTimestamp(value string) (time.Time, error) {
	canonical, err := n.AssembleTimestamp(value)
	if err != nil {
		return time.Time{}, err
	}
	return n.cal.ParseBasicDateTime(canonical)
}

// ParseDate normalizes a date-only expression and hands it to the calendar
// engine, returning the instant at midnight UTC.
func (n *Normalizer) ParseDate(value string) (time.Time, error) {
	canonical, err := n.NormalizeDate(value)
	if err != nil {
		return time.Time{}, err
	}
	return n.cal.ParseBasicDate(canonical)
}
