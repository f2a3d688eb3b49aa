package ternary

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	number0 := MustParse("0")
	number17 := MustParse("+-0-")
	numberMinus17 := MustParse("-+0+")

	assert.Equal(t, Equal, Compare(number17, number17))
	assert.Equal(t, Less, Compare(number0, number17))
	assert.Equal(t, Less, Compare(numberMinus17, number0))
	assert.Equal(t, Less, Compare(numberMinus17, number17))
	assert.Equal(t, Greater, Compare(number17, numberMinus17))
	assert.Equal(t, Greater, Compare(number0, numberMinus17))
	assert.Equal(t, Greater, Compare(number17, number0))

	// 3 < 4
	assert.Equal(t, Less, Compare(MustParse("+0"), MustParse("++")))
}

func TestCompare_Lengths(t *testing.T) {
	// a longer positive number is larger, even if its lower trits are negative: 5 > 4
	assert.Equal(t, Greater, Compare(MustParse("+--"), MustParse("++")))

	// a longer negative number is smaller: -5 < -4
	assert.Equal(t, Less, Compare(MustParse("-++"), MustParse("--")))
	assert.Equal(t, Greater, Compare(MustParse("--"), MustParse("-++")))

	// leading zeros do not count
	assert.Equal(t, Equal, Compare(MustParse("000+"), MustParse("+")))
}

func TestCompare_MatchesIntegerOrdering(t *testing.T) {
	random := rand.New(rand.NewSource(2022))

	for i := 0; i < propertyIterations; i++ {
		a := FromInt64(random.Int63n(2000) - 1000)
		b := FromInt64(random.Int63n(2000) - 1000)
		valueA, valueB := mustInt64(t, a), mustInt64(t, b)

		expected := Equal
		if valueA < valueB {
			expected = Less
		} else if valueA > valueB {
			expected = Greater
		}

		assert.Equal(t, expected, Compare(a, b), "%d <=> %d", valueA, valueB)
		assert.Equal(t, int(expected), a.Cmp(b))
		assert.Equal(t, expected == Equal, a.Equal(b))
	}
}

func TestCompare_Extremes(t *testing.T) {
	minInt64, maxInt64 := FromInt64(-9223372036854775808), FromInt64(9223372036854775807)

	assert.Equal(t, Less, Compare(minInt64, maxInt64))
	assert.Equal(t, Greater, Compare(maxInt64.Inc(), maxInt64))
	assert.Equal(t, Less, Compare(minInt64.Dec(), minInt64))
}

func TestOrdering_String(t *testing.T) {
	assert.Equal(t, "Less", Less.String())
	assert.Equal(t, "Equal", Equal.String())
	assert.Equal(t, "Greater", Greater.String())
}
