package plugins

import (
	"github.com/iotaledger/hive.go/node"

	"github.com/iotaledger/balancedternary/plugins/webapi"
	"github.com/iotaledger/balancedternary/plugins/webapi/healthz"
	"github.com/iotaledger/balancedternary/plugins/webapi/info"
	"github.com/iotaledger/balancedternary/plugins/webapi/ternary"
)

// WebAPI contains the webapi endpoint plugins of a node.
var WebAPI = node.Plugins(
	webapi.Plugin,
	healthz.Plugin,
	info.Plugin,
	ternary.Plugin,
)
