package ternary

import (
	"strconv"

	"github.com/cockroachdb/errors"
)

// region Trit /////////////////////////////////////////////////////////////////////////////////////////////////////////

// Trit is a single balanced ternary digit with the value -1, 0 or +1.
type Trit int8

const (
	// Negative is the trit with the value -1.
	Negative Trit = -1

	// Zero is the trit with the value 0.
	Zero Trit = 0

	// Positive is the trit with the value +1.
	Positive Trit = 1
)

// TritFromRune returns the Trit that is encoded by the given symbol ('-', '0' or '+').
func TritFromRune(symbol rune) (trit Trit, err error) {
	switch symbol {
	case '-':
		return Negative, nil
	case '0':
		return Zero, nil
	case '+':
		return Positive, nil
	default:
		return Zero, errors.Errorf("%q is not a trit symbol: %w", symbol, ErrInvalidDigit)
	}
}

// Valid returns true if the Trit holds one of the three legal values.
func (t Trit) Valid() bool {
	return t >= Negative && t <= Positive
}

// Negate returns the additive inverse of the Trit.
func (t Trit) Negate() Trit {
	switch t {
	case Negative:
		return Positive
	case Positive:
		return Negative
	default:
		return Zero
	}
}

// Add returns the sum of two trits expressed as a result trit and a carry trit.
func (t Trit) Add(other Trit) (sum, carry Trit) {
	return AddWithCarry(t, other, Zero)
}

// Rune returns the symbol that is used to encode the Trit in its textual representation.
func (t Trit) Rune() rune {
	switch t {
	case Negative:
		return '-'
	case Positive:
		return '+'
	default:
		return '0'
	}
}

// String returns a human-readable version of the Trit.
func (t Trit) String() string {
	if !t.Valid() {
		return "Trit(" + strconv.Itoa(int(t)) + ")"
	}

	return string(t.Rune())
}

// AddWithCarry adds the trits a, b and carryIn. The total lies in [-3, 3] and is returned as sum + 3 * carryOut, with
// both sum and carryOut being trits again.
func AddWithCarry(a, b, carryIn Trit) (sum, carryOut Trit) {
	switch total := a + b + carryIn; {
	case total > Positive:
		return total - 3, Positive
	case total < Negative:
		return total + 3, Negative
	default:
		return total, Zero
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
