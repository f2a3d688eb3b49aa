package ternary

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allTrits = []Trit{Negative, Zero, Positive}

func TestTrit_Negate(t *testing.T) {
	assert.Equal(t, Negative, Positive.Negate())
	assert.Equal(t, Positive, Negative.Negate())
	assert.Equal(t, Zero, Zero.Negate())

	for _, trit := range allTrits {
		assert.Equal(t, trit, trit.Negate().Negate())
	}
}

func TestTrit_Add(t *testing.T) {
	sum, carry := Positive.Add(Negative)
	assert.Equal(t, Zero, sum)
	assert.Equal(t, Zero, carry)

	sum, carry = Positive.Add(Positive)
	assert.Equal(t, Negative, sum)
	assert.Equal(t, Positive, carry)

	sum, carry = Negative.Add(Negative)
	assert.Equal(t, Positive, sum)
	assert.Equal(t, Negative, carry)
}

func TestAddWithCarry(t *testing.T) {
	for _, a := range allTrits {
		for _, b := range allTrits {
			for _, carryIn := range allTrits {
				sum, carryOut := AddWithCarry(a, b, carryIn)

				assert.True(t, sum.Valid(), "sum of %s %s %s", a, b, carryIn)
				assert.True(t, carryOut.Valid(), "carry of %s %s %s", a, b, carryIn)
				assert.Equal(t, int(a)+int(b)+int(carryIn), 3*int(carryOut)+int(sum), "%s + %s + %s", a, b, carryIn)

				// the digit rule is symmetric in its operands
				swappedSum, swappedCarry := AddWithCarry(b, a, carryIn)
				assert.Equal(t, sum, swappedSum)
				assert.Equal(t, carryOut, swappedCarry)
			}
		}
	}

	sum, carry := AddWithCarry(Positive, Positive, Positive)
	assert.Equal(t, Zero, sum)
	assert.Equal(t, Positive, carry)

	sum, carry = AddWithCarry(Negative, Negative, Negative)
	assert.Equal(t, Zero, sum)
	assert.Equal(t, Negative, carry)

	sum, carry = AddWithCarry(Positive, Negative, Negative)
	assert.Equal(t, Negative, sum)
	assert.Equal(t, Zero, carry)
}

func TestTritFromRune(t *testing.T) {
	for _, trit := range allTrits {
		parsed, err := TritFromRune(trit.Rune())
		require.NoError(t, err)
		assert.Equal(t, trit, parsed)
	}

	_, err := TritFromRune('1')
	assert.True(t, errors.Is(err, ErrInvalidDigit))
}

func TestTrit_String(t *testing.T) {
	assert.Equal(t, "-", Negative.String())
	assert.Equal(t, "0", Zero.String())
	assert.Equal(t, "+", Positive.String())
	assert.Equal(t, "Trit(2)", Trit(2).String())
	assert.False(t, Trit(-2).Valid())
}
