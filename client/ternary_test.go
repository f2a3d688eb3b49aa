package client

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/labstack/echo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iotaledger/balancedternary/packages/jsonmodels"
	"github.com/iotaledger/balancedternary/plugins/webapi"
	"github.com/iotaledger/balancedternary/plugins/webapi/ternary"
)

func newTestNode(t *testing.T, parameters *webapi.ParametersDefinition, healthy bool) *httptest.Server {
	server := webapi.NewServer(parameters)
	ternary.RegisterRoutes(server, 0)
	server.GET("/healthz", func(c echo.Context) error {
		if !healthy {
			return c.NoContent(http.StatusServiceUnavailable)
		}
		return c.NoContent(http.StatusOK)
	})

	node := httptest.NewServer(server)
	t.Cleanup(node.Close)

	return node
}

func TestAPI(t *testing.T) {
	api := NewAPI(newTestNode(t, &webapi.ParametersDefinition{}, true).URL)

	number, err := api.Parse("+-0--")
	require.NoError(t, err)
	assert.Equal(t, &jsonmodels.NumberResponse{Trits: "+-0--", Decimal: "50", Length: 5, Sign: 1}, number)

	number, err = api.Convert(-9223372036854775808)
	require.NoError(t, err)
	assert.Equal(t, "-9223372036854775808", number.Decimal)

	number, err = api.Add("++", "++")
	require.NoError(t, err)
	assert.Equal(t, "+0-", number.Trits)

	number, err = api.Subtract("+", "+-")
	require.NoError(t, err)
	assert.Equal(t, "-", number.Trits)

	number, err = api.Evaluate("#40 - +")
	require.NoError(t, err)
	assert.Equal(t, "39", number.Decimal)

	comparison, err := api.Compare("-", "0")
	require.NoError(t, err)
	assert.Equal(t, &jsonmodels.CompareResponse{Ordering: "Less", Result: -1}, comparison)

	comparison, err = api.CompareExpression("+- >= ++")
	require.NoError(t, err)
	assert.False(t, comparison.Holds)
	assert.Equal(t, ">=", comparison.Operator)

	require.NoError(t, api.HealthCheck())
}

func TestAPI_Errors(t *testing.T) {
	api := NewAPI(newTestNode(t, &webapi.ParametersDefinition{}, false).URL)

	_, err := api.Parse("+x")
	assert.True(t, errors.Is(err, ErrBadRequest))
	assert.Contains(t, err.Error(), "invalid digit 'x' at position 1")

	_, err = api.Evaluate("+ +")
	assert.True(t, errors.Is(err, ErrBadRequest))

	assert.True(t, errors.Is(api.HealthCheck(), ErrServiceUnavailable))
}

func TestAPI_BasicAuth(t *testing.T) {
	parameters := &webapi.ParametersDefinition{}
	parameters.BasicAuth.Enabled = true
	parameters.BasicAuth.Username = "user"
	parameters.BasicAuth.Password = "secret"
	node := newTestNode(t, parameters, true)

	_, err := NewAPI(node.URL).Parse("+")
	assert.True(t, errors.Is(err, ErrUnauthorized))

	number, err := NewAPI(node.URL, WithBasicAuth("user", "secret")).Parse("+")
	require.NoError(t, err)
	assert.Equal(t, "1", number.Decimal)
}
