// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/seqan/lara2/score"
)

var (
	errNoInput    = errors.New("lara-edges: input file is required (-i)")
	errBadMargin  = errors.New("lara-edges: -margin must be >= 0")
	errVerbosity  = errors.New("lara-edges: -v must be 0, 1 or 2")
	errExtraInput = errors.New("lara-edges: unexpected positional arguments")
)

// config collects every command line setting.
type config struct {
	input     string
	margin    int64
	match     int64
	mismatch  int64
	gapOpen   int64
	gapExtend int64
	scale     float64
	workers   int
	asJSON    bool
	withPairs bool
	progress  bool
	verbosity int
}

// parseFlags reads args (without the program name) into a validated config.
// Usage text and flag errors go to out.
func parseFlags(args []string, out io.Writer) (config, error) {
	var c config
	fs := flag.NewFlagSet("lara-edges", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() {
		fmt.Fprintln(out, "Usage: lara-edges -i <file.fasta> [options]")
		fmt.Fprintln(out, "Computes the suboptimal alignment edge set of every sequence pair.")
		fs.PrintDefaults()
	}

	fs.StringVar(&c.input, "i", "", "input FASTA file with at least two sequences")
	fs.Int64Var(&c.margin, "margin", 0, "suboptimality margin below the optimal score")
	fs.Int64Var(&c.match, "match", int64(score.DefaultMatch), "substitution score of equal symbols")
	fs.Int64Var(&c.mismatch, "mismatch", int64(score.DefaultMismatch), "substitution score of different symbols")
	fs.Int64Var(&c.gapOpen, "gap-open", int64(score.DefaultGapOpen), "score of the first column of a gap")
	fs.Int64Var(&c.gapExtend, "gap-extend", int64(score.DefaultGapExtend), "score of each further gap column")
	fs.Float64Var(&c.scale, "scale", 1, "fixed-point factor of the scores, divides the identity estimate")
	fs.IntVar(&c.workers, "j", 0, "number of worker goroutines (0 = all CPUs)")
	fs.BoolVar(&c.asJSON, "json", false, "write one JSON object per pair")
	fs.BoolVar(&c.withPairs, "pairs", false, "also write the edge coordinates")
	fs.BoolVar(&c.progress, "progress", false, "show a progress bar on stderr")
	fs.IntVar(&c.verbosity, "v", 0, "verbosity: 0 warnings, 1 info, 2 debug")

	if err := fs.Parse(args); err != nil {
		return c, err
	}
	switch {
	case fs.NArg() > 0:
		return c, fmt.Errorf("%v: %w", fs.Args(), errExtraInput)
	case c.input == "":
		return c, errNoInput
	case c.margin < 0:
		return c, errBadMargin
	case c.verbosity < 0 || c.verbosity > 2:
		return c, errVerbosity
	}

	return c, nil
}

// scoreConfig builds the validated scoring configuration.
func (c config) scoreConfig() (*score.Config, error) {
	return score.NewSimple(score.Value(c.match), score.Value(c.mismatch),
		score.Value(c.gapOpen), score.Value(c.gapExtend), c.scale)
}
