package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// errUsage marks bad invocations; they exit with ExitUsage.
var errUsage = errors.New("usage error")

// cliFlags holds every flag of the itinerary-pdf command.
type cliFlags struct {
	output     string
	server     string
	noCompress bool
	verbose    bool
}

// parseFlags parses args (without the program name) and returns the flags and
// the single input path.
func parseFlags(args []string, stderr io.Writer) (*cliFlags, string, error) {
	fs := flag.NewFlagSet("itinerary-pdf", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &cliFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output PDF path (default <destination>_Itinerary.pdf)")
	fs.StringVar(&f.server, "server", "", "render through the API at this base URL instead of locally")
	fs.BoolVar(&f.noCompress, "no-compress", false, "write uncompressed content streams")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log progress to stderr")

	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: itinerary-pdf [flags] <itinerary.json|itinerary.yaml>")
		fmt.Fprintln(stderr)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, "", fmt.Errorf("%w: %w", errUsage, err)
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return nil, "", fmt.Errorf("%w: expected exactly one input file, got %d", errUsage, fs.NArg())
	}
	if f.server != "" && f.noCompress {
		return nil, "", fmt.Errorf("%w: --no-compress applies to local rendering only", errUsage)
	}
	return f, fs.Arg(0), nil
}
