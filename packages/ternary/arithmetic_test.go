package ternary

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const propertyIterations = 1000

// randomNumber returns a Number whose value stays far enough from the int64 limits to be added up a few times.
func randomNumber(random *rand.Rand) Number {
	return FromInt64(random.Int63n(1<<50) - 1<<49)
}

func TestAdd(t *testing.T) {
	// the carry propagates into a new most significant trit: 1 + 1 = 3 - 1
	assert.Equal(t, "+-", Add(MustParse("+"), MustParse("+")).Text())
	assert.Equal(t, "-+", Add(MustParse("-"), MustParse("-")).Text())
	assert.Equal(t, "+0-", Add(MustParse("++"), MustParse("++")).Text())
	assert.Equal(t, "0", Add(MustParse("+-0-"), MustParse("-+0+")).Text())
	assert.Equal(t, "++", Add(MustParse("+--"), MustParse("-")).Text())

	// different lengths are zero extended
	assert.Equal(t, FromInt64(1007), Add(FromInt64(1000), FromInt64(7)))
	assert.Equal(t, FromInt64(-993), Add(FromInt64(7), FromInt64(-1000)))
}

func TestAdd_DoesNotModifyOperands(t *testing.T) {
	a, b := MustParse("+++"), MustParse("+")
	Add(a, b)
	Subtract(a, b)

	assert.Equal(t, "+++", a.Text())
	assert.Equal(t, "+", b.Text())
}

func TestSubtract(t *testing.T) {
	assert.Equal(t, "-", Subtract(MustParse("0"), MustParse("+")).Text())
	assert.Equal(t, "0", Subtract(MustParse("+-0"), MustParse("+-0")).Text())
	assert.Equal(t, FromInt64(-31), Subtract(FromInt64(-17), FromInt64(14)))
	assert.Equal(t, FromInt64(3), MustParse("+-").Sub(MustParse("-")))
}

func TestSum(t *testing.T) {
	assert.True(t, Sum().IsZero())
	assert.Equal(t, FromInt64(6), Sum(FromInt64(1), FromInt64(2), FromInt64(3)))
	assert.Equal(t, FromInt64(-10), Sum(FromInt64(-1), FromInt64(-2), FromInt64(-3), FromInt64(-4)))
}

func TestAdd_MatchesIntegerArithmetic(t *testing.T) {
	random := rand.New(rand.NewSource(1337))

	for i := 0; i < propertyIterations; i++ {
		a, b := randomNumber(random), randomNumber(random)
		valueA, valueB := mustInt64(t, a), mustInt64(t, b)

		assert.Equal(t, valueA+valueB, mustInt64(t, Add(a, b)))
		assert.Equal(t, valueA-valueB, mustInt64(t, Subtract(a, b)))
	}
}

func TestAdd_Properties(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	var zero Number

	for i := 0; i < propertyIterations; i++ {
		a, b, c := randomNumber(random), randomNumber(random), randomNumber(random)

		// additive identity
		assert.Equal(t, a, Add(a, zero))
		assert.Equal(t, a, Add(a, FromInt64(0)))

		// commutativity and associativity
		assert.Equal(t, Add(a, b), Add(b, a))
		assert.Equal(t, Add(Add(a, b), c), Add(a, Add(b, c)))

		// subtraction is the inverse of the addition
		assert.Equal(t, a, Subtract(Add(a, b), b))
		assert.True(t, Subtract(a, a).IsZero())
	}
}

func TestAdd_Canonical(t *testing.T) {
	random := rand.New(rand.NewSource(7))

	for i := 0; i < propertyIterations; i++ {
		a, b := randomNumber(random), randomNumber(random)

		for _, result := range []Number{Add(a, b), Subtract(a, b), a.Inc(), a.Dec(), a.Negate()} {
			if result.IsZero() {
				continue
			}

			require.NotEqual(t, Zero, result.Trit(result.Len()-1), result.Text())
		}
	}
}

func TestAdd_BeyondInt64(t *testing.T) {
	maxInt64 := FromInt64(9223372036854775807)
	sum := Add(maxInt64, maxInt64)

	assert.Equal(t, "18446744073709551614", sum.Decimal())
	assert.Equal(t, maxInt64, Subtract(sum, maxInt64))
}

func mustInt64(t *testing.T, number Number) int64 {
	t.Helper()

	value, err := number.Int64()
	require.NoError(t, err)

	return value
}
