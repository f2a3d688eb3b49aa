package config

import (
	"fmt"
	"os"

	"github.com/iotaledger/hive.go/configuration"
	"github.com/iotaledger/hive.go/generics/event"
	"github.com/iotaledger/hive.go/node"
	flag "github.com/spf13/pflag"
)

// PluginName is the name of the config plugin.
const PluginName = "Config"

var (
	// Plugin is the plugin instance of the config plugin.
	Plugin *node.Plugin

	// flags
	configFilePath      = flag.StringP("config", "c", "config.json", "file path of the config file")
	skipConfigAvailable = flag.Bool("skip-config", false, "skip config file availability check")
	printConfig         = flag.Bool("print-config", false, "print the loaded config on startup")

	_config *configuration.Configuration
)

func init() {
	Plugin = node.NewPlugin(PluginName, nil, node.Enabled)

	Plugin.Events.Init.Hook(event.NewClosure(func(event *node.InitEvent) {
		_config = configuration.New()

		if err := fetch(*printConfig); err != nil {
			if !*skipConfigAvailable {
				// the global logger is not initialized at this stage
				fmt.Println(err.Error())
				fmt.Println("no config file present, terminating. please use the provided config.default.json to create a config.json.")
				// the daemon is not running yet, so we just exit
				os.Exit(1)
			}
			panic(err)
		}

		if err := event.Container.Provide(func() *configuration.Configuration {
			return _config
		}); err != nil {
			Plugin.Panic(err)
		}
	}))
}

// fetch loads the config file given by --config, overlays the environment and the command line flags and updates all
// bound parameter structs.
func fetch(printConfig bool, ignoreSettingsAtPrint ...[]string) error {
	flag.Parse()

	if err := _config.LoadFile(*configFilePath); err != nil {
		if !os.IsNotExist(err) || !*skipConfigAvailable {
			return fmt.Errorf("loading config file failed: %w", err)
		}
	}

	if err := _config.LoadEnvironmentVars(""); err != nil {
		return fmt.Errorf("loading environment variables failed: %w", err)
	}

	if err := _config.LoadFlagSet(flag.CommandLine); err != nil {
		return fmt.Errorf("loading flags failed: %w", err)
	}

	configuration.UpdateBoundParameters(_config)

	if printConfig {
		_config.Print(ignoreSettingsAtPrint...)
	}

	for _, pluginName := range Parameters.DisablePlugins {
		node.DisabledPlugins[node.GetPluginIdentifier(pluginName)] = true
	}
	for _, pluginName := range Parameters.EnablePlugins {
		node.EnabledPlugins[node.GetPluginIdentifier(pluginName)] = true
	}

	return nil
}
