package ternary

// Add returns the sum of a and b.
func Add(a, b Number) Number {
	length := len(a.trits)
	if len(b.trits) > length {
		length = len(b.trits)
	}

	result := make([]Trit, length, length+1)
	carry := Zero
	for position := range result {
		result[position], carry = AddWithCarry(a.Trit(position), b.Trit(position), carry)
	}

	if carry != Zero {
		result = append(result, carry)
	}

	return newNumber(result)
}

// Subtract returns the difference of a and b. Negating a balanced ternary number flips every trit without any borrow,
// so the subtraction is an addition of the negated subtrahend.
func Subtract(a, b Number) Number {
	return Add(a, b.Negate())
}

// Sum returns the sum of all given Numbers (zero if none are given).
func Sum(numbers ...Number) (sum Number) {
	for _, number := range numbers {
		sum = Add(sum, number)
	}

	return sum
}

// Add returns the sum of the Number and the other Number.
func (n Number) Add(other Number) Number {
	return Add(n, other)
}

// Sub returns the difference of the Number and the other Number.
func (n Number) Sub(other Number) Number {
	return Subtract(n, other)
}
