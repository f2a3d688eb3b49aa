package cli

import (
	"fmt"
	"os"
	"path/filepath"

	flag "github.com/spf13/pflag"

	"github.com/iotaledger/balancedternary/plugins/banner"
)

func printUsage() {
	_, err := fmt.Fprintf(
		os.Stderr,
		"\n"+
			"%s %s\n\n"+
			"  A node that performs balanced ternary arithmetic over a web API.\n\n"+
			"Usage:\n\n"+
			"  %s [OPTIONS]\n\n"+
			"Options:\n",
		banner.AppName,
		banner.AppVersion,
		filepath.Base(os.Args[0]),
	)
	if err != nil {
		panic(err)
	}

	flag.PrintDefaults()
}
