package ternary

import (
	"unicode/utf8"
)

// Parse creates a Number from its textual representation. The text consists of the symbols '-', '0' and '+' and starts
// with the most significant trit. Leading zeros are dropped.
func Parse(text string) (number Number, err error) {
	if len(text) == 0 {
		return Number{}, ErrEmptyInput
	}

	trits := make([]Trit, utf8.RuneCountInString(text))
	position := 0
	for _, symbol := range text {
		trit, symbolErr := TritFromRune(symbol)
		if symbolErr != nil {
			return Number{}, &InvalidDigitError{Character: symbol, Position: position}
		}

		trits[len(trits)-1-position] = trit
		position++
	}

	return newNumber(trits), nil
}

// MustParse works like Parse but panics if the text is not a valid Number.
func MustParse(text string) Number {
	number, err := Parse(text)
	if err != nil {
		panic(err)
	}

	return number
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (n *Number) UnmarshalText(text []byte) error {
	number, err := Parse(string(text))
	if err != nil {
		return err
	}
	*n = number

	return nil
}
