package ternary

import (
	"net/http"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/labstack/echo"

	"github.com/iotaledger/balancedternary/packages/calculator"
	"github.com/iotaledger/balancedternary/packages/jsonmodels"
	balancedternary "github.com/iotaledger/balancedternary/packages/ternary"
)

var (
	// ErrInvalidRequest is returned when the request body can not be decoded.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInputTooLong is returned when a number or expression exceeds the configured maximum length.
	ErrInputTooLong = errors.New("input too long")

	// ErrInvalidInteger is returned when a decimal integer can not be converted.
	ErrInvalidInteger = errors.New("invalid integer")
)

// badRequestErrors contains the errors that are caused by the input of the client.
var badRequestErrors = []error{
	ErrInvalidRequest,
	ErrInputTooLong,
	ErrInvalidInteger,
	balancedternary.ErrEmptyInput,
	balancedternary.ErrInvalidDigit,
	balancedternary.ErrOverflow,
	calculator.ErrEmptyExpression,
	calculator.ErrUnexpectedToken,
	calculator.ErrInvalidOperand,
}

// RegisterRoutes registers the ternary endpoints on the given server. Inputs that are longer than maxInputLength are
// rejected, a maxInputLength <= 0 disables the check.
func RegisterRoutes(server *echo.Echo, maxInputLength int) {
	e := &endpoints{maxInputLength: maxInputLength}

	server.GET("/ternary/parse/:trits", e.handle(OperationParse, e.parse))
	server.GET("/ternary/convert/:integer", e.handle(OperationConvert, e.convert))
	server.POST("/ternary/add", e.handle(OperationAdd, e.add))
	server.POST("/ternary/subtract", e.handle(OperationSubtract, e.subtract))
	server.POST("/ternary/compare", e.handle(OperationCompare, e.compare))
	server.POST("/ternary/evaluate", e.handle(OperationEvaluate, e.evaluate))
}

type endpoints struct {
	maxInputLength int
}

// handle turns an operation into an echo.HandlerFunc that writes the result or the error and triggers the Events.
func (e *endpoints) handle(operation Operation, execute func(c echo.Context) (interface{}, error)) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		response, err := execute(c)
		if err != nil {
			statusCode := statusCode(err)
			if statusCode == http.StatusInternalServerError && log != nil {
				log.Errorf("%s failed: %s", operation, err)
			}
			Events.OperationFailed.Trigger(&OperationFailedEvent{Operation: operation, StatusCode: statusCode, Error: err})

			return c.JSON(statusCode, jsonmodels.NewErrorResponse(err))
		}

		Events.OperationExecuted.Trigger(&OperationExecutedEvent{Operation: operation, Duration: time.Since(start)})

		return c.JSON(http.StatusOK, response)
	}
}

func (e *endpoints) parse(c echo.Context) (interface{}, error) {
	number, err := e.parseNumber("trits", c.Param("trits"))
	if err != nil {
		return nil, err
	}

	return jsonmodels.NewNumberResponse(number), nil
}

func (e *endpoints) convert(c echo.Context) (interface{}, error) {
	integer := c.Param("integer")
	if err := e.checkLength("integer", integer); err != nil {
		return nil, err
	}

	value, err := strconv.ParseInt(integer, 10, 64)
	if err != nil {
		return nil, errors.Errorf("failed to convert %q (%v): %w", integer, err, ErrInvalidInteger)
	}

	return jsonmodels.NewNumberResponse(balancedternary.FromInt64(value)), nil
}

func (e *endpoints) add(c echo.Context) (interface{}, error) {
	a, b, err := e.parseOperands(c)
	if err != nil {
		return nil, err
	}

	return jsonmodels.NewNumberResponse(balancedternary.Add(a, b)), nil
}

func (e *endpoints) subtract(c echo.Context) (interface{}, error) {
	a, b, err := e.parseOperands(c)
	if err != nil {
		return nil, err
	}

	return jsonmodels.NewNumberResponse(balancedternary.Subtract(a, b)), nil
}

func (e *endpoints) compare(c echo.Context) (interface{}, error) {
	var request jsonmodels.CompareRequest
	if err := c.Bind(&request); err != nil {
		return nil, errors.Errorf("failed to decode request (%v): %w", err, ErrInvalidRequest)
	}

	if request.Expression != "" {
		if err := e.checkLength("expression", request.Expression); err != nil {
			return nil, err
		}

		comparison, err := calculator.Compare(request.Expression)
		if err != nil {
			return nil, err
		}

		response := jsonmodels.NewCompareResponse(comparison.Ordering)
		response.Operator = comparison.Operator
		response.Holds = comparison.Holds

		return response, nil
	}

	a, err := e.parseNumber("a", request.A)
	if err != nil {
		return nil, err
	}
	b, err := e.parseNumber("b", request.B)
	if err != nil {
		return nil, err
	}

	return jsonmodels.NewCompareResponse(balancedternary.Compare(a, b)), nil
}

func (e *endpoints) evaluate(c echo.Context) (interface{}, error) {
	var request jsonmodels.EvaluateRequest
	if err := c.Bind(&request); err != nil {
		return nil, errors.Errorf("failed to decode request (%v): %w", err, ErrInvalidRequest)
	}

	if err := e.checkLength("expression", request.Expression); err != nil {
		return nil, err
	}

	result, err := calculator.Evaluate(request.Expression)
	if err != nil {
		return nil, err
	}

	return jsonmodels.NewNumberResponse(result), nil
}

// parseOperands decodes a BinaryOperationRequest and parses both of its operands.
func (e *endpoints) parseOperands(c echo.Context) (a, b balancedternary.Number, err error) {
	var request jsonmodels.BinaryOperationRequest
	if err = c.Bind(&request); err != nil {
		return a, b, errors.Errorf("failed to decode request (%v): %w", err, ErrInvalidRequest)
	}

	if a, err = e.parseNumber("a", request.A); err != nil {
		return a, b, err
	}
	if b, err = e.parseNumber("b", request.B); err != nil {
		return a, b, err
	}

	return a, b, nil
}

func (e *endpoints) parseNumber(name, text string) (number balancedternary.Number, err error) {
	if err = e.checkLength(name, text); err != nil {
		return number, err
	}

	if number, err = balancedternary.Parse(text); err != nil {
		return number, errors.Wrapf(err, "failed to parse %s", name)
	}

	return number, nil
}

func (e *endpoints) checkLength(name, text string) error {
	if e.maxInputLength > 0 && len(text) > e.maxInputLength {
		return errors.Errorf("%s has %d characters, at most %d are allowed: %w", name, len(text), e.maxInputLength, ErrInputTooLong)
	}

	return nil
}

// statusCode returns the HTTP status code that corresponds to the given error.
func statusCode(err error) int {
	for _, badRequestError := range badRequestErrors {
		if errors.Is(err, badRequestError) {
			return http.StatusBadRequest
		}
	}

	return http.StatusInternalServerError
}
