package ternary

import (
	"github.com/iotaledger/hive.go/logger"
	"github.com/iotaledger/hive.go/node"
	"github.com/labstack/echo"
	"go.uber.org/dig"

	"github.com/iotaledger/balancedternary/plugins/webapi"
)

// PluginName is the name of the web API ternary endpoint plugin.
const PluginName = "WebAPITernaryEndpoint"

type dependencies struct {
	dig.In

	Server *echo.Echo
}

var (
	// Plugin is the plugin instance of the web API ternary endpoint plugin.
	Plugin *node.Plugin
	deps   = new(dependencies)
	log    *logger.Logger
)

func init() {
	Plugin = node.NewPlugin(PluginName, deps, node.Enabled, configure)
}

func configure(plugin *node.Plugin) {
	log = logger.NewLogger(plugin.Name)

	RegisterRoutes(deps.Server, webapi.Parameters.MaxInputLength)
}
