package cli

import (
	"fmt"
	"os"

	"github.com/iotaledger/hive.go/generics/event"
	"github.com/iotaledger/hive.go/node"
	flag "github.com/spf13/pflag"

	"github.com/iotaledger/balancedternary/plugins/banner"
)

// PluginName is the name of the CLI plugin.
const PluginName = "CLI"

var (
	// Plugin is the plugin instance of the CLI plugin.
	Plugin *node.Plugin

	version = flag.BoolP("version", "v", false, "Prints the node version")
)

func init() {
	Plugin = node.NewPlugin(PluginName, nil, node.Enabled)

	flag.Usage = printUsage

	Plugin.Events.Init.Hook(event.NewClosure(onInit))
}

func onInit(_ *node.InitEvent) {
	if *version {
		fmt.Println(banner.AppName + " " + banner.AppVersion)
		os.Exit(0)
	}
}
