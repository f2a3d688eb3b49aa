package webapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/iotaledger/hive.go/node"
	"github.com/labstack/echo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/dig"
)

func TestPlugin_ProvidesServer(t *testing.T) {
	container := dig.New()
	Plugin.Events.Init.Trigger(&node.InitEvent{Container: container})

	require.NoError(t, container.Invoke(func(provided *echo.Echo) {
		provided.GET("/ping", func(c echo.Context) error {
			return echo.NewHTTPError(http.StatusTeapot, "short and stout")
		})

		recorder := httptest.NewRecorder()
		provided.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.Equal(t, http.StatusTeapot, recorder.Code)
		assert.JSONEq(t, `{"error":"short and stout"}`, recorder.Body.String())
	}))
}
