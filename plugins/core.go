package plugins

import (
	"github.com/iotaledger/hive.go/node"

	"github.com/iotaledger/balancedternary/plugins/banner"
	"github.com/iotaledger/balancedternary/plugins/cli"
	"github.com/iotaledger/balancedternary/plugins/config"
	"github.com/iotaledger/balancedternary/plugins/gracefulshutdown"
	"github.com/iotaledger/balancedternary/plugins/logger"
	"github.com/iotaledger/balancedternary/plugins/metrics"
	"github.com/iotaledger/balancedternary/plugins/prometheus"
)

// Core contains the core plugins of a node.
var Core = node.Plugins(
	banner.Plugin,
	config.Plugin,
	logger.Plugin,
	cli.Plugin,
	gracefulshutdown.Plugin,
	metrics.Plugin,
	prometheus.Plugin,
)
