package metrics

import (
	"time"

	"github.com/iotaledger/hive.go/configuration"
)

const (
	// OPSMeasurementInterval should always be 1 second.
	OPSMeasurementInterval = 1 * time.Second
)

// ParametersDefinition contains the definition of configuration parameters used by the metrics plugin.
type ParametersDefinition struct {
	// LogInterval defines how often a summary of the operation counters is logged. Zero disables the summary.
	LogInterval time.Duration `default:"1m" usage:"the interval in which a summary of the executed operations is logged"`
}

// Parameters contains the configuration parameters of the metrics plugin.
var Parameters = &ParametersDefinition{}

func init() {
	configuration.BindParameters(Parameters, "metrics")
}
