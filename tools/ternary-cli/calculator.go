package main

import (
	"fmt"

	"github.com/iotaledger/balancedternary/client"
	"github.com/iotaledger/balancedternary/packages/calculator"
	"github.com/iotaledger/balancedternary/packages/jsonmodels"
	"github.com/iotaledger/balancedternary/packages/ternary"
)

// Calculator executes the commands of the CLI and returns their results in display format.
type Calculator interface {
	Parse(trits string) (string, error)
	Convert(value int64) (string, error)
	Evaluate(expression string) (string, error)
	Compare(expression string) (string, error)
}

// region LocalCalculator //////////////////////////////////////////////////////////////////////////////////////////////

// LocalCalculator computes the results in process.
type LocalCalculator struct{}

// Parse parses the given symbols.
func (LocalCalculator) Parse(trits string) (string, error) {
	number, err := ternary.Parse(trits)
	if err != nil {
		return "", err
	}

	return ternary.Format(number), nil
}

// Convert converts the given integer.
func (LocalCalculator) Convert(value int64) (string, error) {
	return ternary.Format(ternary.FromInt64(value)), nil
}

// Evaluate evaluates the given arithmetic expression.
func (LocalCalculator) Evaluate(expression string) (string, error) {
	result, err := calculator.Evaluate(expression)
	if err != nil {
		return "", err
	}

	return ternary.Format(result), nil
}

// Compare evaluates the given comparison.
func (LocalCalculator) Compare(expression string) (string, error) {
	comparison, err := calculator.Compare(expression)
	if err != nil {
		return "", err
	}

	return formatComparison(comparison.Holds, comparison.Ordering.String()), nil
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region RemoteCalculator /////////////////////////////////////////////////////////////////////////////////////////////

// RemoteCalculator sends the commands to the web API of a node.
type RemoteCalculator struct {
	api *client.API
}

// NewRemoteCalculator returns a RemoteCalculator that uses the given API.
func NewRemoteCalculator(api *client.API) *RemoteCalculator {
	return &RemoteCalculator{api: api}
}

// Parse parses the given symbols.
func (r *RemoteCalculator) Parse(trits string) (string, error) {
	return formatNumber(r.api.Parse(trits))
}

// Convert converts the given integer.
func (r *RemoteCalculator) Convert(value int64) (string, error) {
	return formatNumber(r.api.Convert(value))
}

// Evaluate evaluates the given arithmetic expression.
func (r *RemoteCalculator) Evaluate(expression string) (string, error) {
	return formatNumber(r.api.Evaluate(expression))
}

// Compare evaluates the given comparison.
func (r *RemoteCalculator) Compare(expression string) (string, error) {
	response, err := r.api.CompareExpression(expression)
	if err != nil {
		return "", err
	}

	return formatComparison(response.Holds, response.Ordering), nil
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

func formatNumber(response *jsonmodels.NumberResponse, err error) (string, error) {
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s (%s)", response.Trits, response.Decimal), nil
}

func formatComparison(holds bool, ordering string) string {
	return fmt.Sprintf("%t (%s)", holds, ordering)
}
