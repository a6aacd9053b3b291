// Package cmd provides the implementation for the gleapsecs applets.
package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/karasz/gleapsecs/leapsecs"
)

const (
	defaultList   = "leap-seconds.list"
	defaultHeader = "tai_leapsecs_dat.h"
)

// genConfig carries the input and output paths of a generator run.
type genConfig struct {
	input  string
	output string
}

// parsePathArgs parses the optional positional arguments shared by the
// generator applets: an input path and an output path, both defaulted.
func parsePathArgs(args []string, defaultOutput string) (genConfig, error) {
	cfg := genConfig{input: defaultList, output: defaultOutput}
	switch len(args) {
	case 0:
	case 1:
		cfg.input = args[0]
	case 2:
		cfg.input = args[0]
		cfg.output = args[1]
	default:
		return cfg, errors.New("unknown number of arguments. Please use 0, 1 or 2")
	}
	return cfg, nil
}

// generateHeader parses and renders everything before the output file
// is created, so a failed run never leaves a truncated header behind.
func generateHeader(cfg genConfig) (int, error) {
	recs, err := leapsecs.ParseFile(cfg.input)
	if err != nil {
		return 0, err
	}

	var buf bytes.Buffer
	if err := leapsecs.WriteHeader(&buf, recs); err != nil {
		return 0, err
	}

	if err := os.WriteFile(cfg.output, buf.Bytes(), 0o644); err != nil {
		return 0, err
	}
	return len(recs), nil
}

// GLeapGenRun generates the static C leap-second table from a
// leap-seconds.list file.
func GLeapGenRun(args []string) int {
	cfg, err := parsePathArgs(args, defaultHeader)
	if err != nil {
		_, _ = fmt.Println(err)
		return 111
	}

	n, err := generateHeader(cfg)
	if err != nil {
		_, _ = fmt.Println(err)
		return 111
	}

	_, _ = fmt.Printf("Generated %s with %d leap seconds\n", cfg.output, n)
	return 0
}
