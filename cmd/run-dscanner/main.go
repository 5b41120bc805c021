// Package main implements the run-dscanner CI step.
//
// It runs dscanner style checks against a D project with include search
// paths assembled from the project tree, the system D includes and the
// LDC installation, and exits 0 on a clean check and 1 otherwise.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dlang-ci/dci-tools/internal/config"
	"github.com/dlang-ci/dci-tools/internal/lint"
	"github.com/spf13/pflag"
)

func main() {
	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Exit(lint.RunCheck(context.Background(), opts, nil))
}

// parseArgs resolves the command line and environment into check
// options. Both positional arguments are required; the binary may be
// overridden by flag or environment, the flag winning.
func parseArgs(args []string) (lint.Options, error) {
	flags := pflag.NewFlagSet("run-dscanner", pflag.ContinueOnError)
	binary := flags.String("dscanner", "", "dscanner binary to use (overrides DCI_LINTER_BINARY)")
	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: run-dscanner [options] <source-root> <dscanner-config>\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return lint.Options{}, fmt.Errorf("parse arguments: %w", err)
	}

	if flags.NArg() < 2 {
		return lint.Options{}, errors.New("need at least source-root and dscanner configuration as parameters")
	}

	cfg, err := config.Load()
	if err != nil {
		return lint.Options{}, fmt.Errorf("load configuration: %w", err)
	}

	opts := lint.Options{
		SourceRoot: flags.Arg(0),
		ConfigPath: flags.Arg(1),
		Binary:     cfg.Linter.Binary,
		BuildDir:   cfg.Build.Dir,
	}
	if *binary != "" {
		opts.Binary = *binary
	}
	return opts, nil
}
