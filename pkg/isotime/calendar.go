package isotime

import "time"

// Fixed layouts for the canonical "basic" forms handed to a Calendar.
const (
	// BasicTimestampLayout parses "20141101T053000+050000" or "20141101T053000Z".
	BasicTimestampLayout = "20060102T150405Z070000"

	// BasicDateLayout parses "20141101".
	BasicDateLayout = "20060102"
)

// Calendar is the engine that turns canonical strings into instants and
// performs calendar-correct arithmetic (leap years, month lengths, offset
// application). The normalization pipeline only ever hands it range-checked
// canonical values.
type Calendar interface {
	// ParseBasicDateTime parses a canonical basic timestamp
	// ("YYYYMMDDTHHMMSSZ" or "YYYYMMDDTHHMMSS±HHMMSS") into an instant.
	ParseBasicDateTime(value string) (time.Time, error)

	// ParseBasicDate parses a canonical basic date ("YYYYMMDD") into an
	// instant at midnight UTC.
	ParseBasicDate(value string) (time.Time, error)

	// Year reports the calendar year of an instant.
	Year(t time.Time) int

	AddYears(t time.Time, n int) time.Time
	AddMonths(t time.Time, n int) time.Time
	AddDays(t time.Time, n int) time.Time
	AddHours(t time.Time, n int) time.Time
}

// StdCalendar implements Calendar on the standard library's proleptic
// Gregorian calendar. It is the default engine for a Normalizer.
type StdCalendar struct{}

func (StdCalendar) ParseBasicDateTime(value string) (time.Time, error) {
	t, err := time.Parse(BasicTimestampLayout, value)
	if err != nil {
		return time.Time{}, newParseError(ErrUnparsableInstant, value, "timestamp %q is not a basic ISO-8601 timestamp: %v", value, err)
	}
	return t, nil
}

func (StdCalendar) ParseBasicDate(value string) (time.Time, error) {
	t, err := time.Parse(BasicDateLayout, value)
	if err != nil {
		return time.Time{}, newParseError(ErrUnparsableInstant, value, "date %q is not a basic ISO-8601 date: %v", value, err)
	}
	return t, nil
}

func (StdCalendar) Year(t time.Time) int {
	return t.Year()
}

func (StdCalendar) AddYears(t time.Time, n int) time.Time {
	return t.AddDate(n, 0, 0)
}

func (StdCalendar) AddMonths(t time.Time, n int) time.Time {
	return t.AddDate(0, n, 0)
}

func (StdCalendar) AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

func (StdCalendar) AddHours(t time.Time, n int) time.Time {
	return t.Add(time.Duration(n) * time.Hour)
}
