// Command itinerary-pdf renders an itinerary file to PDF, either locally or
// through a running itinerary PDF API.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/vigovia/itinerary-pdf/internal/client"
	"github.com/vigovia/itinerary-pdf/internal/render"
	"github.com/vigovia/itinerary-pdf/internal/service"
)

// Exit codes.
const (
	ExitSuccess = 0
	ExitFailure = 1 // input, validation, render, or API failure
	ExitUsage   = 2 // invalid flags or arguments
)

func main() {
	// Error ignored: maxprocs.Set only fails on an invalid GOMAXPROCS value,
	// in which case the runtime default stands.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command and returns its exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags, input, err := parseFlags(args, stderr)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(stderr, err)
		}
		return exitCodeFor(err)
	}

	level := slog.LevelWarn
	if flags.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if err := generate(ctx, flags, input, stdin, stdout, logger); err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

func generate(ctx context.Context, flags *cliFlags, input string, stdin io.Reader, stdout io.Writer, logger *slog.Logger) error {
	start := time.Now()

	doc, err := readItinerary(input, stdin)
	if err != nil {
		return err
	}
	if err := doc.Validate(); err != nil {
		return err
	}

	var pdf []byte
	if flags.server != "" {
		c := client.New(flags.server, client.WithLogger(logger))
		logger.Debug("rendering remotely", "base_url", c.BaseURL())
		if pdf, err = c.GeneratePDF(ctx, doc); err != nil {
			return err
		}
	} else {
		opts := render.DefaultOptions()
		opts.Compress = !flags.noCompress
		svc := service.NewItineraryService(render.NewRenderer(opts, logger), logger)
		out, err := svc.Generate(ctx, doc)
		if err != nil {
			return err
		}
		pdf = out.Content
	}

	path := flags.output
	if path == "" {
		// The destination is user data; keep the default inside the working directory.
		path = filepath.Base(doc.Filename())
	}
	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	logger.Debug("done",
		"reference", doc.Reference().String(),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	fmt.Fprintf(stdout, "%s (%d bytes)\n", path, len(pdf))
	return nil
}

// exitCodeFor maps an error to an exit code. Callers must wrap with %w.
func exitCodeFor(err error) int {
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
		return ExitSuccess
	case errors.Is(err, errUsage):
		return ExitUsage
	default:
		return ExitFailure
	}
}
