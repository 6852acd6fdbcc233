// Package main provides the CLI entrypoint for oes-harmonize.
//
// oes-harmonize converts Occupational Employment Statistics releases from
// their year-specific layouts to one canonical schema:
//   - dialects lists (or exports) the registered source layouts
//   - detect ranks the dialects against a file header
//   - inspect profiles a raw file before a dialect is written for it
//   - harmonize converts one or more files and concatenates them
//   - serve exposes the same operations over HTTP
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

type command struct {
	name    string
	summary string
	run     func(ctx context.Context, args []string, stdout io.Writer) error
}

var commands = []command{
	{"dialects", "list registered dialects, or export them as YAML", runDialects},
	{"detect", "rank dialects against the header of a file", runDetect},
	{"inspect", "profile the columns of a raw file", runInspect},
	{"harmonize", "convert files to the canonical schema", runHarmonize},
	{"serve", "serve the HTTP API", runServe},
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			slog.Error("oes-harmonize failed", slog.Any("error", err))
		}

		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 || args[0] == "-h" || args[0] == "--help" || args[0] == "help" {
		usage(stderr)

		if len(args) == 0 {
			return flag.ErrHelp
		}

		return nil
	}

	for _, c := range commands {
		if c.name == args[0] {
			return c.run(ctx, args[1:], stdout)
		}
	}

	usage(stderr)

	return fmt.Errorf("unknown command %q", args[0])
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: oes-harmonize <command> [flags] [files]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "commands:")

	for _, c := range commands {
		fmt.Fprintf(w, "  %-10s %s\n", c.name, c.summary)
	}
}

// setupLogger installs the default slog logger at the requested level.
func setupLogger(level string) error {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})))

	return nil
}
