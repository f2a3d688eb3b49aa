package ternary

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	// ErrEmptyInput is returned when an empty string is parsed.
	ErrEmptyInput = errors.New("empty input")

	// ErrInvalidDigit is returned when a textual representation contains a symbol other than '-', '0' or '+'.
	ErrInvalidDigit = errors.New("invalid digit")

	// ErrInvalidTrit is returned when a Trit holds a value outside of {-1, 0, 1}.
	ErrInvalidTrit = errors.New("invalid trit")

	// ErrOverflow is returned when a Number does not fit into the requested native integer type.
	ErrOverflow = errors.New("integer overflow")
)

// InvalidDigitError reports the offending character of a failed Parse call together with its position in the input.
type InvalidDigitError struct {
	// Character is the symbol that could not be interpreted as a trit.
	Character rune

	// Position is the zero-based index of the Character within the parsed text.
	Position int
}

// Error returns a human-readable description of the error.
func (e *InvalidDigitError) Error() string {
	return fmt.Sprintf("%s %q at position %d", ErrInvalidDigit, e.Character, e.Position)
}

// Unwrap makes the error match ErrInvalidDigit.
func (e *InvalidDigitError) Unwrap() error {
	return ErrInvalidDigit
}
