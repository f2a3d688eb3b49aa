package main

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	flag "github.com/spf13/pflag"

	"github.com/iotaledger/balancedternary/client"
)

// ErrNothingToDo is returned when neither a flag nor a positional argument was given.
var ErrNothingToDo = errors.New("nothing to do")

// run parses the command line arguments and writes the results to stdout, one line per result. Usage and flag errors
// go to stderr.
func run(arguments []string, stdout, stderr io.Writer) error {
	flags := flag.NewFlagSet("ternary-cli", flag.ContinueOnError)
	flags.SetOutput(stderr)
	numbers := flags.StringArrayP("parse", "p", nil, "parses a balanced ternary number, use --parse=-+0 for numbers starting with '-'")
	expression := flags.StringP("eval", "e", "", "evaluates an expression like \"+-0 + ++ - #7\"")
	comparison := flags.String("compare", "", "evaluates a comparison like \"+- < ++\"")
	conversions := flags.Int64Slice("convert", nil, "converts decimal integers to balanced ternary")
	nodeURL := flags.String("node", "", "the web API of a node that executes the requests, e.g. http://127.0.0.1:8080")
	username := flags.String("user", "", "the basic auth username of the node")
	password := flags.String("password", "", "the basic auth password of the node")

	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: ternary-cli [OPTIONS] [--] [NUMBER ...]\n\nNumbers starting with '-' have to follow \"--\" or be passed with --parse.\n\nOptions:\n")
		flags.PrintDefaults()
	}

	if err := flags.Parse(arguments); err != nil {
		return err
	}

	if *expression == "" && *comparison == "" && len(*conversions) == 0 && len(*numbers) == 0 && flags.NArg() == 0 {
		flags.Usage()
		return ErrNothingToDo
	}

	var calculator Calculator = LocalCalculator{}
	if *nodeURL != "" {
		var setters []client.Option
		if *username != "" {
			setters = append(setters, client.WithBasicAuth(*username, *password))
		}
		calculator = NewRemoteCalculator(client.NewAPI(*nodeURL, setters...))
	}

	results := make([]string, 0)
	appendResult := func(result string, err error) error {
		if err != nil {
			return err
		}
		results = append(results, result)

		return nil
	}

	for _, trits := range append(*numbers, flags.Args()...) {
		if err := appendResult(calculator.Parse(trits)); err != nil {
			return errors.Wrapf(err, "failed to parse %q", trits)
		}
	}
	for _, value := range *conversions {
		if err := appendResult(calculator.Convert(value)); err != nil {
			return errors.Wrapf(err, "failed to convert %d", value)
		}
	}
	if *expression != "" {
		if err := appendResult(calculator.Evaluate(*expression)); err != nil {
			return errors.Wrap(err, "failed to evaluate expression")
		}
	}
	if *comparison != "" {
		if err := appendResult(calculator.Compare(*comparison)); err != nil {
			return errors.Wrap(err, "failed to evaluate comparison")
		}
	}

	for _, result := range results {
		if _, err := fmt.Fprintln(stdout, result); err != nil {
			return err
		}
	}

	return nil
}
