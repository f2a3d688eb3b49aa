package calculator

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/iotaledger/balancedternary/packages/ternary"
)

// holdsByOperator maps the supported comparison operators to the Orderings that satisfy them.
var holdsByOperator = map[string]func(ordering ternary.Ordering) bool{
	"<":  func(ordering ternary.Ordering) bool { return ordering == ternary.Less },
	"<=": func(ordering ternary.Ordering) bool { return ordering != ternary.Greater },
	"=":  func(ordering ternary.Ordering) bool { return ordering == ternary.Equal },
	"!=": func(ordering ternary.Ordering) bool { return ordering != ternary.Equal },
	">=": func(ordering ternary.Ordering) bool { return ordering != ternary.Less },
	">":  func(ordering ternary.Ordering) bool { return ordering == ternary.Greater },
}

// Comparison is the outcome of comparing two expressions.
type Comparison struct {
	Left     ternary.Number
	Right    ternary.Number
	Operator string
	Ordering ternary.Ordering
	Holds    bool
}

// Compare evaluates an expression of the form "<expression> <operator> <expression>", where the operator is one of
// "<", "<=", "=", "!=", ">=" and ">".
func Compare(expression string) (comparison *Comparison, err error) {
	tokens := strings.Fields(expression)
	if len(tokens) == 0 {
		return nil, ErrEmptyExpression
	}

	operatorPosition := -1
	for position, token := range tokens {
		if _, isComparison := holdsByOperator[token]; !isComparison {
			continue
		}

		if operatorPosition != -1 {
			return nil, errors.Errorf("second comparison operator %q at token %d: %w", token, position, ErrUnexpectedToken)
		}
		operatorPosition = position
	}

	if operatorPosition == -1 {
		return nil, errors.Errorf("missing comparison operator: %w", ErrUnexpectedToken)
	}

	comparison = &Comparison{Operator: tokens[operatorPosition]}
	if comparison.Left, err = evaluateTokens(tokens[:operatorPosition], 0); err != nil {
		return nil, errors.Wrap(err, "failed to evaluate left side")
	}
	if comparison.Right, err = evaluateTokens(tokens[operatorPosition+1:], operatorPosition+1); err != nil {
		return nil, errors.Wrap(err, "failed to evaluate right side")
	}

	comparison.Ordering = ternary.Compare(comparison.Left, comparison.Right)
	comparison.Holds = holdsByOperator[comparison.Operator](comparison.Ordering)

	return comparison, nil
}
