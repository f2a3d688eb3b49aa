package jsonmodels

import (
	"github.com/iotaledger/balancedternary/packages/ternary"
)

// region NumberResponse ///////////////////////////////////////////////////////////////////////////////////////////////

// NumberResponse is the JSON representation of a balanced ternary number returned by the web API.
type NumberResponse struct {
	Trits   string `json:"trits"`
	Decimal string `json:"decimal"`
	Length  int    `json:"length"`
	Sign    int8   `json:"sign"`
}

// NewNumberResponse returns the NumberResponse of the given Number.
func NewNumberResponse(number ternary.Number) NumberResponse {
	return NumberResponse{
		Trits:   number.Text(),
		Decimal: number.Decimal(),
		Length:  number.Len(),
		Sign:    int8(number.Sign()),
	}
}

// Number parses the trits of the response.
func (n NumberResponse) Number() (ternary.Number, error) {
	return ternary.Parse(n.Trits)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region BinaryOperationRequest ///////////////////////////////////////////////////////////////////////////////////////

// BinaryOperationRequest holds the two operands of an addition or subtraction.
type BinaryOperationRequest struct {
	A string `json:"a"`
	B string `json:"b"`
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Compare //////////////////////////////////////////////////////////////////////////////////////////////////////

// CompareRequest either holds two operands or a comparison expression like "+- < ++".
type CompareRequest struct {
	A          string `json:"a,omitempty"`
	B          string `json:"b,omitempty"`
	Expression string `json:"expression,omitempty"`
}

// CompareResponse is the HTTP response of a comparison.
type CompareResponse struct {
	Ordering string `json:"ordering"`
	Result   int8   `json:"result"`
	Operator string `json:"operator,omitempty"`
	Holds    bool   `json:"holds"`
}

// NewCompareResponse returns the CompareResponse of the given Ordering.
func NewCompareResponse(ordering ternary.Ordering) CompareResponse {
	return CompareResponse{
		Ordering: ordering.String(),
		Result:   int8(ordering),
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// EvaluateRequest holds an arithmetic expression like "+-0 + #7".
type EvaluateRequest struct {
	Expression string `json:"expression"`
}

// region ErrorResponse ////////////////////////////////////////////////////////////////////////////////////////////////

// ErrorResponse is the response that is returned when an error occurred in any of the endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewErrorResponse returns an ErrorResponse from the given error.
func NewErrorResponse(err error) ErrorResponse {
	return ErrorResponse{
		Error: err.Error(),
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
