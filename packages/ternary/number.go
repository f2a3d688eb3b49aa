package ternary

import (
	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/generics/lo"
)

// region Number ///////////////////////////////////////////////////////////////////////////////////////////////////////

// Number is an integer of arbitrary length in balanced ternary notation. A Number is immutable: every operation that
// derives a new value returns a new Number, so it can be shared freely between goroutines.
//
// The zero value of a Number represents zero.
type Number struct {
	// trits contains the digits of the canonical form (least significant first). Zero is stored as an empty slice.
	trits []Trit
}

// FromTrits creates a Number from the given trits, starting with the least significant one.
func FromTrits(trits ...Trit) (number Number, err error) {
	for position, trit := range trits {
		if !trit.Valid() {
			return Number{}, errors.Errorf("trit at position %d has value %d: %w", position, int8(trit), ErrInvalidTrit)
		}
	}

	return newNumber(append(make([]Trit, 0, len(trits)), trits...)), nil
}

// newNumber wraps the given trits without copying them. The caller hands over the ownership of the slice.
func newNumber(trits []Trit) Number {
	return Number{trits: trimLeadingZeros(trits)}
}

// trimLeadingZeros removes the most significant Zero trits.
func trimLeadingZeros(trits []Trit) []Trit {
	length := len(trits)
	for length > 0 && trits[length-1] == Zero {
		length--
	}

	if length == 0 {
		return nil
	}

	return trits[:length]
}

// Len returns the amount of trits of the canonical form. Zero consists of a single trit.
func (n Number) Len() int {
	if len(n.trits) == 0 {
		return 1
	}

	return len(n.trits)
}

// Trit returns the trit at the given position (0 being the least significant one). Positions beyond the length of the
// Number read as Zero.
func (n Number) Trit(position int) Trit {
	if position < 0 {
		panic("negative trit position")
	}

	if position >= len(n.trits) {
		return Zero
	}

	return n.trits[position]
}

// Trits returns a copy of the trits of the canonical form, starting with the least significant one.
func (n Number) Trits() []Trit {
	if len(n.trits) == 0 {
		return []Trit{Zero}
	}

	return append(make([]Trit, 0, len(n.trits)), n.trits...)
}

// IsZero returns true if the Number represents zero.
func (n Number) IsZero() bool {
	return len(n.trits) == 0
}

// Sign returns -1, 0 or +1 depending on whether the Number is negative, zero or positive.
func (n Number) Sign() int {
	return int(n.leadingTrit())
}

// leadingTrit returns the most significant trit, which carries the sign of the Number.
func (n Number) leadingTrit() Trit {
	if len(n.trits) == 0 {
		return Zero
	}

	return n.trits[len(n.trits)-1]
}

// Negate returns the additive inverse of the Number.
func (n Number) Negate() Number {
	return newNumber(lo.Map(n.trits, Trit.Negate))
}

// Inc returns the Number increased by one.
func (n Number) Inc() Number {
	return n.addTrit(Positive)
}

// Dec returns the Number decreased by one.
func (n Number) Dec() Number {
	return n.addTrit(Negative)
}

// addTrit adds a single trit to the least significant position and propagates the carry until it is absorbed.
func (n Number) addTrit(trit Trit) Number {
	result := make([]Trit, len(n.trits), len(n.trits)+1)
	copy(result, n.trits)

	for position, carry := 0, trit; carry != Zero; position++ {
		if position == len(result) {
			result = append(result, carry)
			break
		}

		result[position], carry = result[position].Add(carry)
	}

	return newNumber(result)
}

// Equal returns true if both Numbers have the same canonical form.
func (n Number) Equal(other Number) bool {
	if len(n.trits) != len(other.trits) {
		return false
	}

	for position, trit := range n.trits {
		if other.trits[position] != trit {
			return false
		}
	}

	return true
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
