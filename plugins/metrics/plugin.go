package metrics

import (
	"context"
	"fmt"
	"strings"

	"github.com/iotaledger/hive.go/daemon"
	"github.com/iotaledger/hive.go/generics/event"
	"github.com/iotaledger/hive.go/logger"
	"github.com/iotaledger/hive.go/node"
	"github.com/iotaledger/hive.go/timeutil"

	"github.com/iotaledger/balancedternary/packages/shutdown"
	"github.com/iotaledger/balancedternary/plugins/webapi/ternary"
)

// PluginName is the name of the metrics plugin.
const PluginName = "Metrics"

var (
	// Plugin is the plugin instance of the metrics plugin.
	Plugin *node.Plugin
	log    *logger.Logger
)

func init() {
	Plugin = node.NewPlugin(PluginName, nil, node.Enabled, configure, run)
}

func configure(plugin *node.Plugin) {
	log = logger.NewLogger(plugin.Name)

	attachEvents()
}

var (
	onOperationExecutedClosure = event.NewClosure(onOperationExecuted)
	onOperationFailedClosure   = event.NewClosure(onOperationFailed)
)

// attachEvents hooks the counters into the ternary endpoints, so they are updated before the response is written.
func attachEvents() {
	ternary.Events.OperationExecuted.Hook(onOperationExecutedClosure)
	ternary.Events.OperationFailed.Hook(onOperationFailedClosure)
}

func detachEvents() {
	ternary.Events.OperationExecuted.Detach(onOperationExecutedClosure)
	ternary.Events.OperationFailed.Detach(onOperationFailedClosure)
}

func run(plugin *node.Plugin) {
	if err := daemon.BackgroundWorker("Metrics Updater", func(ctx context.Context) {
		// Do not block until the Ticker is shutdown because we might want to start multiple Tickers and we can
		// safely ignore the last execution when shutting down.
		timeutil.NewTicker(measureOperationsPerSecond, OPSMeasurementInterval, ctx)

		if Parameters.LogInterval > 0 {
			timeutil.NewTicker(logSummary, Parameters.LogInterval, ctx)
		}

		// Wait before terminating so we get correct log messages from the daemon regarding the shutdown order.
		<-ctx.Done()
	}, shutdown.PriorityMetrics); err != nil {
		plugin.Panicf("Failed to start as daemon: %s", err)
	}
}

func logSummary() {
	summary := make([]string, 0, len(ternary.Operations))
	for _, operation := range ternary.Operations {
		counter := Operation(operation)
		summary = append(summary, fmt.Sprintf("%s=%d/%d", operation, counter.Executed(), counter.Failed()))
	}

	log.Infof("Executed/failed operations: %s", strings.Join(summary, " "))
}
