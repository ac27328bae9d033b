package isotime

import (
	"errors"
	"fmt"
)

// Error kinds raised by the normalization pipeline. Every failure returned
// by this package wraps exactly one of these sentinels, so callers can
// branch with errors.Is while still receiving a message that echoes the
// offending input.
var (
	// ErrInvalidFormat is returned when a value fails its character-class rule.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrInvalidComponent is returned when a numeric field is out of its semantic range.
	ErrInvalidComponent = errors.New("invalid component")

	// ErrInvalidLength is returned when a value has the wrong digit count after separator stripping.
	ErrInvalidLength = errors.New("invalid length")

	// ErrDuplicateUnit is returned when a duration repeats a unit letter.
	ErrDuplicateUnit = errors.New("duplicate duration unit")

	// ErrUnorderedUnit is returned when duration units do not appear in Y, M, D, H order.
	ErrUnorderedUnit = errors.New("duration unit out of order")

	// ErrUnknownRule indicates a programming error: a format rule name that is not registered.
	ErrUnknownRule = errors.New("unknown format rule")

	// ErrUnparsableInstant is returned by a Calendar when a canonical value
	// does not parse. It should not occur for values produced by this package.
	ErrUnparsableInstant = errors.New("unparsable instant")
)

// ParseError describes a single rejected input. Kind is one of the sentinel
// errors above and is exposed through Unwrap, so both errors.Is (against the
// sentinel) and errors.As (against *ParseError) work on any error returned
// by this package.
type ParseError struct {
	Kind    error
	Value   string
	Message string
}

func (e *ParseError) Error() string {
	return e.Message
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}

func newParseError(kind error, value, format string, args ...any) *ParseError {
	return &ParseError{
		Kind:    kind,
		Value:   value,
		Message: fmt.Sprintf(format, args...),
	}
}
