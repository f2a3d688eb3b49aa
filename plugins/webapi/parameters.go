package webapi

import (
	"github.com/iotaledger/hive.go/configuration"
)

// ParametersDefinition contains the definition of configuration parameters used by the web API plugin.
type ParametersDefinition struct {
	// BindAddress defines the config flag of the web API binding address.
	BindAddress string `default:"127.0.0.1:8080" usage:"the bind address for the web API"`

	// MaxInputLength defines the maximum number of characters accepted for a single number or expression.
	MaxInputLength int `default:"4096" usage:"the maximum length of numbers and expressions accepted by the web API"`

	BasicAuth struct {
		// Enabled defines the config flag of the web API basic auth enabler.
		Enabled bool `default:"false" usage:"whether to enable HTTP basic auth"`

		// Username defines the config flag of the web API basic auth username.
		Username string `default:"trinode" usage:"HTTP basic auth username"`

		// Password defines the config flag of the web API basic auth password.
		Password string `default:"trinode" usage:"HTTP basic auth password"`
	} `name:"basic_auth"`
}

// Parameters contains the configuration parameters of the web API plugin.
var Parameters = &ParametersDefinition{}

func init() {
	configuration.BindParameters(Parameters, "webAPI")
}
