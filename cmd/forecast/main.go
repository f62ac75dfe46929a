// Package main provides the CLI entrypoint for forecast.
//
// forecast applies a YAML cast plan to records read from a YAML or JSON file
// and prints the cast result:
//
//	forecast -plan plan.yaml -in records.yaml [-format yaml|json|dump] [-v]
//
// A top-level sequence in the input is cast record by record.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"forecaster/forecast"
	"forecaster/internal/mapping"
	"forecaster/options"
)

// exitError carries a message and the process exit code.
type exitError struct {
	Code    int
	Message string
}

func (e *exitError) Error() string {
	return e.Message
}

func main() {
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}

		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type cliConfig struct {
	planPath    string
	inPath      string
	format      string
	verbose     bool
	textualBool bool
}

// run encapsulates the main application logic for easier testing.
func run(outW io.Writer, args []string) error {
	cfg, shouldExit, err := parseArgs(outW, args)
	if err != nil || shouldExit {
		return err
	}

	log := zap.NewNop()
	if cfg.verbose {
		if dev, err := zap.NewDevelopment(); err == nil {
			log = dev
		}
	}

	defer func() { _ = log.Sync() }()

	pf, err := mapping.LoadFile(cfg.planPath)
	if err != nil {
		return err
	}

	diags := mapping.Validate(pf, nil)
	for _, w := range diags.Warnings {
		log.Warn(w.String())
	}

	if diags.HasErrors() {
		return &exitError{Code: 2, Message: fmt.Sprintf("invalid plan %s: %v", cfg.planPath, diags.Err())}
	}

	target, err := mapping.Target(pf)
	if err != nil {
		return err
	}

	input, err := loadInput(cfg.inPath)
	if err != nil {
		return err
	}

	castCfg := forecast.DefaultConfig()
	castCfg.Logger = log

	if cfg.textualBool {
		castCfg.Coercion |= options.CoercionTextualBool
	}

	var result any

	if records, ok := input.([]any); ok {
		result, err = forecast.Map(records, func(c *forecast.Caster) {
			mapping.Apply(pf, c)
		}, target, castCfg)
	} else {
		result, err = mapping.Apply(pf, forecast.New(input, castCfg)).Get(target)
	}

	if err != nil {
		return err
	}

	log.Debug("cast complete", zap.String("plan", cfg.planPath), zap.String("input", cfg.inPath))

	return write(outW, cfg.format, result)
}

func parseArgs(outW io.Writer, args []string) (cliConfig, bool, error) {
	var cfg cliConfig

	fs := flag.NewFlagSet("forecast", flag.ContinueOnError)
	fs.SetOutput(outW)
	fs.StringVar(&cfg.planPath, "plan", "", "path to the YAML cast plan")
	fs.StringVar(&cfg.inPath, "in", "", "path to the YAML or JSON records")
	fs.StringVar(&cfg.format, "format", "yaml", "output format: yaml, json or dump")
	fs.BoolVar(&cfg.verbose, "v", false, "enable debug logging")
	fs.BoolVar(&cfg.textualBool, "textual-bool", false, "parse true/false/yes/no text when casting to bool")
	fs.Usage = func() {
		fmt.Fprintln(outW, "Usage: forecast -plan plan.yaml -in records.yaml [flags]")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return cfg, true, nil
		}

		return cfg, false, err
	}

	if cfg.planPath == "" || cfg.inPath == "" {
		fs.Usage()
		return cfg, false, &exitError{Code: 2, Message: "both -plan and -in are required"}
	}

	switch cfg.format {
	case "yaml", "json", "dump":
	default:
		return cfg, false, &exitError{Code: 2, Message: fmt.Sprintf("unknown format %q", cfg.format)}
	}

	return cfg, false, nil
}

// loadInput decodes a YAML or JSON document. JSON is read by the YAML decoder.
func loadInput(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input %s: %w", path, err)
	}

	var input any
	if err := yaml.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("failed to parse input %s: %w", path, err)
	}

	return input, nil
}

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

func write(w io.Writer, format string, result any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(result)
	case "dump":
		dumpConfig.Fdump(w, result)
		return nil
	default:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(result); err != nil {
			return err
		}

		return enc.Close()
	}
}
