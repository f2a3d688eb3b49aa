package client

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/iotaledger/balancedternary/packages/jsonmodels"
)

const (
	routeParse    = "ternary/parse/"
	routeConvert  = "ternary/convert/"
	routeAdd      = "ternary/add"
	routeSubtract = "ternary/subtract"
	routeCompare  = "ternary/compare"
	routeEvaluate = "ternary/evaluate"
	routeHealthz  = "healthz"
	routeInfo     = "info"
)

// Parse parses the given balanced ternary symbols.
func (api *API) Parse(trits string) (*jsonmodels.NumberResponse, error) {
	res := &jsonmodels.NumberResponse{}
	if err := api.do(http.MethodGet, routeParse+url.PathEscape(trits), nil, res); err != nil {
		return nil, err
	}

	return res, nil
}

// Convert converts the given integer to balanced ternary.
func (api *API) Convert(value int64) (*jsonmodels.NumberResponse, error) {
	res := &jsonmodels.NumberResponse{}
	if err := api.do(http.MethodGet, routeConvert+strconv.FormatInt(value, 10), nil, res); err != nil {
		return nil, err
	}

	return res, nil
}

// Add returns the sum of a and b.
func (api *API) Add(a, b string) (*jsonmodels.NumberResponse, error) {
	res := &jsonmodels.NumberResponse{}
	if err := api.do(http.MethodPost, routeAdd, &jsonmodels.BinaryOperationRequest{A: a, B: b}, res); err != nil {
		return nil, err
	}

	return res, nil
}

// Subtract returns the difference of a and b.
func (api *API) Subtract(a, b string) (*jsonmodels.NumberResponse, error) {
	res := &jsonmodels.NumberResponse{}
	if err := api.do(http.MethodPost, routeSubtract, &jsonmodels.BinaryOperationRequest{A: a, B: b}, res); err != nil {
		return nil, err
	}

	return res, nil
}

// Compare returns the ordering of a relative to b.
func (api *API) Compare(a, b string) (*jsonmodels.CompareResponse, error) {
	return api.compare(&jsonmodels.CompareRequest{A: a, B: b})
}

// CompareExpression evaluates a comparison expression like "+- < ++".
func (api *API) CompareExpression(expression string) (*jsonmodels.CompareResponse, error) {
	return api.compare(&jsonmodels.CompareRequest{Expression: expression})
}

func (api *API) compare(request *jsonmodels.CompareRequest) (*jsonmodels.CompareResponse, error) {
	res := &jsonmodels.CompareResponse{}
	if err := api.do(http.MethodPost, routeCompare, request, res); err != nil {
		return nil, err
	}

	return res, nil
}

// Evaluate evaluates the given arithmetic expression.
func (api *API) Evaluate(expression string) (*jsonmodels.NumberResponse, error) {
	res := &jsonmodels.NumberResponse{}
	if err := api.do(http.MethodPost, routeEvaluate, &jsonmodels.EvaluateRequest{Expression: expression}, res); err != nil {
		return nil, err
	}

	return res, nil
}

// HealthCheck checks whether the node is running and healthy.
func (api *API) HealthCheck() error {
	return api.do(http.MethodGet, routeHealthz, nil, nil)
}

// Info gets the info of the node.
func (api *API) Info() (*jsonmodels.InfoResponse, error) {
	res := &jsonmodels.InfoResponse{}
	if err := api.do(http.MethodGet, routeInfo, nil, res); err != nil {
		return nil, err
	}

	return res, nil
}
