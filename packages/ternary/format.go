package ternary

import (
	"strconv"
	"strings"
)

// Text returns the symbols of the Number, starting with the most significant trit. Zero is rendered as "0".
func (n Number) Text() string {
	if len(n.trits) == 0 {
		return string(Zero.Rune())
	}

	var builder strings.Builder
	builder.Grow(len(n.trits))
	for position := len(n.trits) - 1; position >= 0; position-- {
		builder.WriteRune(n.trits[position].Rune())
	}

	return builder.String()
}

// Decimal returns the value of the Number in base 10. Numbers that do not fit into an int64 are rendered exactly as
// well.
func (n Number) Decimal() string {
	if value, err := n.Int64(); err == nil {
		return strconv.FormatInt(value, 10)
	}

	return n.BigInt().String()
}

// String returns a human-readable version of the Number in the form "<symbols> (<decimal>)".
func (n Number) String() string {
	return Format(n)
}

// Format renders the Number in the form "<symbols> (<decimal>)", e.g. "+-0 (6)".
func Format(n Number) string {
	return n.Text() + " (" + n.Decimal() + ")"
}

// MarshalText implements the encoding.TextMarshaler interface.
func (n Number) MarshalText() (text []byte, err error) {
	return []byte(n.Text()), nil
}
