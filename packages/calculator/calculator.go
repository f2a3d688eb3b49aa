// Package calculator evaluates simple arithmetic expressions over balanced ternary numbers.
//
// An expression is a whitespace separated list of tokens that alternates between operands and operators, e.g.
// "+-0 + ++ - #7". Operands are either written in balanced ternary notation or as decimal integers prefixed with '#'.
// The operators '+' and '-' are applied from left to right. Since '+' and '-' are valid operands as well, the position
// of a token decides how it is interpreted.
package calculator

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/iotaledger/balancedternary/packages/ternary"
)

const decimalPrefix = "#"

var (
	// ErrEmptyExpression is returned when an expression contains no tokens.
	ErrEmptyExpression = errors.New("empty expression")

	// ErrUnexpectedToken is returned when a token appears at a position where it is not allowed.
	ErrUnexpectedToken = errors.New("unexpected token")

	// ErrInvalidOperand is returned when a decimal operand can not be converted.
	ErrInvalidOperand = errors.New("invalid operand")
)

// Evaluate computes the value of the given expression.
func Evaluate(expression string) (result ternary.Number, err error) {
	return evaluateTokens(strings.Fields(expression), 0)
}

// evaluateTokens evaluates the given tokens. The offset is added to token positions in error messages.
func evaluateTokens(tokens []string, offset int) (result ternary.Number, err error) {
	if len(tokens) == 0 {
		return ternary.Number{}, ErrEmptyExpression
	}

	if len(tokens)%2 == 0 {
		return ternary.Number{}, errors.Errorf("expression ends with operator %q at token %d: %w", tokens[len(tokens)-1], offset+len(tokens)-1, ErrUnexpectedToken)
	}

	if result, err = parseOperand(tokens[0], offset); err != nil {
		return ternary.Number{}, err
	}

	for position := 1; position < len(tokens); position += 2 {
		operand, operandErr := parseOperand(tokens[position+1], offset+position+1)
		if operandErr != nil {
			return ternary.Number{}, operandErr
		}

		switch operator := tokens[position]; operator {
		case "+":
			result = result.Add(operand)
		case "-":
			result = result.Sub(operand)
		default:
			return ternary.Number{}, errors.Errorf("operator %q at token %d: %w", operator, offset+position, ErrUnexpectedToken)
		}
	}

	return result, nil
}

// parseOperand converts a single operand token into a Number.
func parseOperand(token string, position int) (operand ternary.Number, err error) {
	if !strings.HasPrefix(token, decimalPrefix) {
		if operand, err = ternary.Parse(token); err != nil {
			return ternary.Number{}, errors.Wrapf(err, "operand %q at token %d", token, position)
		}

		return operand, nil
	}

	value, err := strconv.ParseInt(strings.TrimPrefix(token, decimalPrefix), 10, 64)
	if err != nil {
		return ternary.Number{}, errors.Errorf("decimal operand %q at token %d (%v): %w", token, position, err, ErrInvalidOperand)
	}

	return ternary.FromInt64(value), nil
}
