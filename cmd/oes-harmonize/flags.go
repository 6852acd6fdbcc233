package main

import (
	"flag"
	"fmt"

	"oes-harmonize/internal/dialectfile"
	"oes-harmonize/internal/oes"
	"oes-harmonize/internal/registry"
	"oes-harmonize/internal/tabular"
)

// commonFlags are shared by every subcommand.
type commonFlags struct {
	dialectDir string
	logLevel   string
}

func (c *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&c.dialectDir, "dialects", "", "directory of YAML dialect files registered after the built-ins")
	fs.StringVar(&c.logLevel, "log-level", "info", "log level: debug, info, warn or error")
}

// setup installs the logger and builds the registry.
func (c *commonFlags) setup() (*registry.Registry, error) {
	if err := setupLogger(c.logLevel); err != nil {
		return nil, err
	}

	reg, err := oes.NewRegistry()
	if err != nil {
		return nil, err
	}

	if c.dialectDir != "" {
		if err := dialectfile.RegisterDir(reg, c.dialectDir); err != nil {
			return nil, fmt.Errorf("loading dialects from %s: %w", c.dialectDir, err)
		}
	}

	return reg, nil
}

// readFlags configure tabular input.
type readFlags struct {
	sheet        string
	delimiter    string
	keepCase     bool
	blankAsEmpty bool
}

func (r *readFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&r.sheet, "sheet", "", "XLSX worksheet; default picks the OES data sheet")
	fs.StringVar(&r.delimiter, "delimiter", "", "CSV field delimiter")
	fs.BoolVar(&r.keepCase, "keep-case", false, "do not uppercase header names")
	fs.BoolVar(&r.blankAsEmpty, "blank-as-empty", false, "keep blank cells as empty strings instead of null")
}

func (r *readFlags) options() (tabular.ReadOptions, error) {
	opts := tabular.DefaultReadOptions()
	opts.Sheet = r.sheet
	opts.UpperHeaders = !r.keepCase
	opts.BlankAsNull = !r.blankAsEmpty

	if r.delimiter != "" {
		runes := []rune(r.delimiter)
		if len(runes) != 1 {
			return opts, fmt.Errorf("delimiter must be one character, got %q", r.delimiter)
		}

		opts.Delimiter = runes[0]
	}

	return opts, nil
}
