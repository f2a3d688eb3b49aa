package ternary

// region Ordering /////////////////////////////////////////////////////////////////////////////////////////////////////

// Ordering is the result of comparing two Numbers.
type Ordering int8

const (
	// Less indicates that the first Number is smaller than the second one.
	Less Ordering = -1

	// Equal indicates that both Numbers have the same value.
	Equal Ordering = 0

	// Greater indicates that the first Number is larger than the second one.
	Greater Ordering = 1
)

// String returns a human-readable version of the Ordering.
func (o Ordering) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	default:
		return "Ordering(invalid)"
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Compare //////////////////////////////////////////////////////////////////////////////////////////////////////

// Compare returns the Ordering of a relative to b.
func Compare(a, b Number) Ordering {
	signA, signB := a.leadingTrit(), b.leadingTrit()
	if signA != signB {
		return orderingOf(signA - signB)
	}

	// canonical forms of the same sign: the longer one has the larger magnitude
	if len(a.trits) != len(b.trits) {
		if len(a.trits) > len(b.trits) {
			return orderingOf(signA)
		}

		return orderingOf(signA.Negate())
	}

	for position := len(a.trits) - 1; position >= 0; position-- {
		if a.trits[position] != b.trits[position] {
			return orderingOf(a.trits[position] - b.trits[position])
		}
	}

	return Equal
}

// Cmp compares the Number to the other Number and returns -1, 0 or +1 (see Compare).
func (n Number) Cmp(other Number) int {
	return int(Compare(n, other))
}

// orderingOf maps the sign of the given difference to an Ordering.
func orderingOf(difference Trit) Ordering {
	switch {
	case difference > 0:
		return Greater
	case difference < 0:
		return Less
	default:
		return Equal
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
