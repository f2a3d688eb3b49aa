package logger

import (
	"github.com/iotaledger/hive.go/configuration"
)

// ParametersDefinition contains the definition of the parameters used by the global logger.
type ParametersDefinition struct {
	Level             string   `default:"info" usage:"the minimum enabled logging level"`
	DisableCaller     bool     `default:"true" usage:"stops annotating logs with the calling function's file name and line number"`
	DisableStacktrace bool     `default:"false" usage:"disables automatic stacktrace capturing"`
	Encoding          string   `default:"console" usage:"the logger's encoding (options: \"json\", \"console\")"`
	OutputPaths       []string `default:"stdout,trinode.log" usage:"a list of URLs, file paths or stdout/stderr to write logging output to"`
	DisableEvents     bool     `default:"true" usage:"prevents log messages from being raised as events"`
}

// Parameters contains the configuration parameters of the logger plugin.
var Parameters = &ParametersDefinition{}

func init() {
	configuration.BindParameters(Parameters, "logger")
}
