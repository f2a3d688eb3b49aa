package prometheus

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	newEngine(newRegistry()).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `ternary_operations_executed_total{operation="subtract"} 0`)
	assert.Contains(t, recorder.Body.String(), `ternary_operations_failed_total{operation="evaluate"} 0`)
	assert.Contains(t, recorder.Body.String(), "ternary_operations_per_second 0")
}

func TestNewRegistry_Repeatable(t *testing.T) {
	gin.SetMode(gin.TestMode)

	for i := 0; i < 2; i++ {
		recorder := httptest.NewRecorder()
		require.NotPanics(t, func() {
			newEngine(newRegistry()).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		})
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, 1, strings.Count(recorder.Body.String(), "# TYPE ternary_operations_per_second gauge"))
	}
}
