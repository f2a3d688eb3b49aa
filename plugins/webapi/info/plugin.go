package info

import (
	"net/http"
	"time"

	"github.com/iotaledger/hive.go/node"
	"github.com/labstack/echo"
	"go.uber.org/dig"

	"github.com/iotaledger/balancedternary/packages/jsonmodels"
	"github.com/iotaledger/balancedternary/plugins/banner"
	"github.com/iotaledger/balancedternary/plugins/metrics"
	"github.com/iotaledger/balancedternary/plugins/webapi/ternary"
)

// PluginName is the name of the web API info endpoint plugin.
const PluginName = "WebAPIInfoEndpoint"

type dependencies struct {
	dig.In

	Server *echo.Echo
}

var (
	// Plugin is the plugin instance of the web API info endpoint plugin.
	Plugin *node.Plugin
	deps   = new(dependencies)

	startedAt = time.Now()
)

func init() {
	Plugin = node.NewPlugin(PluginName, deps, node.Enabled, configure)
}

func configure(_ *node.Plugin) {
	deps.Server.GET("/info", getInfo)
}

// getInfo returns the info of the node
// e.g.,
// {
// 	"appName": "Trinode",
// 	"version": "v0.1.0",
// 	"startedAt": 1665990000,
// 	"uptime": 93000,
// 	"operationsPerSecond": 2,
// 	"operations": {
// 		"add": {"executed": 12, "failed": 1, "averageDuration": 15400},
// 		...
// 	}
// }
func getInfo(c echo.Context) error {
	operations := make(map[string]jsonmodels.OperationInfo, len(ternary.Operations))
	for _, operation := range ternary.Operations {
		counter := metrics.Operation(operation)

		operations[string(operation)] = jsonmodels.OperationInfo{
			Executed:        counter.Executed(),
			Failed:          counter.Failed(),
			AverageDuration: counter.AverageDuration().Nanoseconds(),
		}
	}

	return c.JSON(http.StatusOK, jsonmodels.InfoResponse{
		AppName:             banner.AppName,
		Version:             banner.AppVersion,
		StartedAt:           startedAt.Unix(),
		Uptime:              time.Since(startedAt).Milliseconds(),
		OperationsPerSecond: metrics.OperationsPerSecond(),
		Operations:          operations,
	})
}
