package ternary

import (
	"math"
	"math/big"

	"github.com/cockroachdb/errors"
)

var bigThree = big.NewInt(3)

// FromInt64 creates the Number with the given value.
func FromInt64(value int64) Number {
	trits := make([]Trit, 0, 41)
	for value != 0 {
		// value = 3 * quotient + remainder with remainder in (-3, 3), so the quotient can never overflow
		quotient, remainder := value/3, value%3
		switch remainder {
		case 2:
			trits, value = append(trits, Negative), quotient+1
		case 1:
			trits, value = append(trits, Positive), quotient
		case -1:
			trits, value = append(trits, Negative), quotient
		case -2:
			trits, value = append(trits, Positive), quotient-1
		default:
			trits, value = append(trits, Zero), quotient
		}
	}

	return newNumber(trits)
}

// Int64 returns the value of the Number as an int64. It returns an error matching ErrOverflow if the Number does not
// fit.
func (n Number) Int64() (value int64, err error) {
	for position := len(n.trits) - 1; position >= 0; position-- {
		var ok bool
		if value, ok = multiplyAdd(value, n.trits[position]); !ok {
			return 0, errors.Errorf("%s does not fit into an int64: %w", n.Text(), ErrOverflow)
		}
	}

	return value, nil
}

// BigInt returns the exact value of the Number.
func (n Number) BigInt() *big.Int {
	value := new(big.Int)
	for position := len(n.trits) - 1; position >= 0; position-- {
		value.Mul(value, bigThree)
		value.Add(value, big.NewInt(int64(n.trits[position])))
	}

	return value
}

// multiplyAdd computes 3 * accumulator + trit and reports whether the result fits into an int64.
func multiplyAdd(accumulator int64, trit Trit) (result int64, ok bool) {
	lowerBound := int64(math.MinInt64 / 3)
	if trit == Positive {
		// 3 * (MinInt64/3 - 1) + 1 == MinInt64
		lowerBound--
	}

	if accumulator > math.MaxInt64/3 || accumulator < lowerBound {
		return 0, false
	}

	// the product wraps around only for the lowered bound, where adding the trit lands exactly on MinInt64
	return accumulator*3 + int64(trit), true
}
