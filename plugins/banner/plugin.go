package banner

import (
	"fmt"

	"github.com/iotaledger/hive.go/node"
)

// PluginName is the name of the banner plugin.
const PluginName = "Banner"

var (
	// Plugin is the plugin instance of the banner plugin.
	Plugin *node.Plugin

	// AppVersion version number
	AppVersion = "v0.1.0"
)

const (
	// AppName app code name
	AppName = "Trinode"
)

func init() {
	Plugin = node.NewPlugin(PluginName, nil, node.Enabled, configure)
}

func configure(plugin *node.Plugin) {
	fmt.Printf(`
  _____ ____  ___ _   _  ___  ____  _____
 |_   _|  _ \|_ _| \ | |/ _ \|  _ \| ____|
   | | | |_) || ||  \| | | | | | | |  _|
   | | |  _ < | || |\  | |_| | |_| | |___
   |_| |_| \_\___|_| \_|\___/|____/|_____|
                             %s
`, AppVersion)
	fmt.Println()

	plugin.LogInfof("%s version %s ...", AppName, AppVersion)
	plugin.LogInfo("Loading plugins ...")
}
