package cmd

import (
	"fmt"
	"os"

	"github.com/karasz/gleapsecs/leapsecs"
)

const defaultDat = "leapsecs.dat"

// generateDat writes the packed binary table read by leapsecs_read
// consumers: one big-endian TAI64 label per leap second.
func generateDat(cfg genConfig) (int, error) {
	recs, err := leapsecs.ParseFile(cfg.input)
	if err != nil {
		return 0, err
	}
	if len(recs) > leapsecs.Max {
		return 0, fmt.Errorf("%d leap seconds exceed the table capacity of %d", len(recs), leapsecs.Max)
	}

	tbl := leapsecs.NewTable(recs)
	if err := os.WriteFile(cfg.output, tbl.Pack(), 0o644); err != nil {
		return 0, err
	}
	return len(recs), nil
}

// GLeapDatRun generates the raw packed leap-second table from a
// leap-seconds.list file.
func GLeapDatRun(args []string) int {
	cfg, err := parsePathArgs(args, defaultDat)
	if err != nil {
		_, _ = fmt.Println(err)
		return 111
	}

	n, err := generateDat(cfg)
	if err != nil {
		_, _ = fmt.Println(err)
		return 111
	}

	_, _ = fmt.Printf("Generated %s with %d leap seconds\n", cfg.output, n)
	return 0
}
