package info

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iotaledger/balancedternary/packages/jsonmodels"
	"github.com/iotaledger/balancedternary/plugins/banner"
	"github.com/iotaledger/balancedternary/plugins/webapi/ternary"
)

func TestGetInfo(t *testing.T) {
	server := echo.New()
	server.GET("/info", getInfo)

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/info", nil))
	require.Equal(t, http.StatusOK, recorder.Code)

	var response jsonmodels.InfoResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))

	assert.Equal(t, banner.AppName, response.AppName)
	assert.Equal(t, banner.AppVersion, response.Version)
	assert.GreaterOrEqual(t, response.Uptime, int64(0))
	assert.Len(t, response.Operations, len(ternary.Operations))
	assert.Contains(t, response.Operations, string(ternary.OperationEvaluate))
}
