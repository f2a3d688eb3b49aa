package gracefulshutdown

import (
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/iotaledger/hive.go/daemon"
	"github.com/iotaledger/hive.go/logger"
	"github.com/iotaledger/hive.go/node"
)

// PluginName is the name of the graceful shutdown plugin.
const PluginName = "GracefulShutdown"

var (
	// Plugin is the plugin instance of the graceful shutdown plugin.
	Plugin *node.Plugin
	log    *logger.Logger

	gracefulStop chan os.Signal
)

func init() {
	Plugin = node.NewPlugin(PluginName, nil, node.Enabled, configure)
}

func configure(plugin *node.Plugin) {
	log = logger.NewLogger(plugin.Name)

	gracefulStop = make(chan os.Signal, 1)
	signal.Notify(gracefulStop, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		<-gracefulStop

		log.Warnf("Received shutdown request - waiting (max %s) to finish processing ...", Parameters.WaitToKillTime)

		go killAfterTimeout(time.Now())

		daemon.Shutdown()
	}()
}

// killAfterTimeout reports the still running background workers every second and exits the process once
// WaitToKillTime has passed.
func killAfterTimeout(start time.Time) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for x := range ticker.C {
		elapsed := x.Sub(start)
		if elapsed > Parameters.WaitToKillTime {
			log.Error("Background processes did not terminate in time! Forcing shutdown ...")
			os.Exit(1)
		}

		processList := ""
		if runningBackgroundWorkers := daemon.GetRunningBackgroundWorkers(); len(runningBackgroundWorkers) >= 1 {
			processList = "(" + strings.Join(runningBackgroundWorkers, ", ") + ") "
		}
		log.Warnf("Received shutdown request - waiting (max %s) to finish processing %s...", (Parameters.WaitToKillTime - elapsed).Truncate(time.Second), processList)
	}
}
