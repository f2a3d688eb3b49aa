// ternary-cli converts, evaluates and compares balanced ternary numbers either locally or by sending the requests to
// the web API of a running node.
package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	flag "github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "error: %s\n", err)
		}
		os.Exit(1)
	}
}
