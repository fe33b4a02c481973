// SPDX-License-Identifier: MIT

// Command lara-edges computes the suboptimal alignment edge set and the
// identity estimate of every sequence pair in a FASTA file.
//
// Usage:
//
//	lara-edges -i seqs.fasta [-margin 10] [-match 2 -mismatch -1 -gap-open -4 -gap-extend -1]
//	           [-scale 1] [-j 8] [-json] [-pairs] [-progress] [-v 1]
//
// Pairs are processed in the order (0,1), (0,2), …, (1,2), … and written to
// stdout one per line. Logs and the optional progress bar go to stderr.
package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"github.com/seqan/lara2/edgefilter"
	"github.com/seqan/lara2/rna"
	"github.com/seqan/lara2/score"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command and returns the process exit status.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	c, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		setupLogging(stderr, 0)
		log.Error(err)

		return 1
	}
	setupLogging(stderr, c.verbosity)

	cfg, err := c.scoreConfig()
	if err != nil {
		log.Errorf("scoring: %v", err)

		return 1
	}

	recs, err := readFastaFile(c.input)
	if err != nil {
		log.Errorf("reading input: %v", err)

		return 1
	}
	log.Infof("read %d sequences from %s", len(recs), c.input)

	seqs := make([]rna.Sequence, len(recs))
	for i, r := range recs {
		seqs[i] = r.seq
		log.Debugf("sequence %d %s length %d", i, r.name, r.seq.Len())
	}

	opts := []edgefilter.Option{edgefilter.WithWorkers(c.workers)}
	var progress *mpb.Progress
	var bar *mpb.Bar
	if c.progress && len(seqs) > 1 {
		progress, bar = newProgressBar(stderr, edgefilter.PairCount(len(seqs)))
		opts = append(opts, edgefilter.WithProgress(func(edgefilter.Result) { bar.Increment() }))
	}

	start := time.Now()
	results, err := edgefilter.AllPairs(ctx, seqs, cfg, score.Value(c.margin), opts...)
	if progress != nil {
		if err != nil {
			bar.Abort(false)
		}
		progress.Wait()
	}
	if err != nil {
		log.Errorf("computing edges: %v", err)

		return 1
	}
	log.Infof("computed %d pairs in %s", len(results), time.Since(start).Round(time.Millisecond))

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			log.Errorf("pair %d/%d: %v", r.IdxA, r.IdxB, r.Err)
		}
	}

	if err := writeReport(stdout, recs, results, c.asJSON, c.withPairs); err != nil {
		log.Errorf("writing report: %v", err)

		return 1
	}
	if failed > 0 {
		return 1
	}

	return 0
}

// newProgressBar renders a pair counter with ETA on w.
func newProgressBar(w io.Writer, total int) (*mpb.Progress, *mpb.Bar) {
	p := mpb.New(mpb.WithWidth(40), mpb.WithOutput(w))
	bar := p.AddBar(int64(total),
		mpb.PrependDecorators(
			decor.Name("aligned pairs: ", decor.WC{W: len("aligned pairs: "), C: decor.DindentRight}),
			decor.CountersNoUnit("%d / %d", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.Name("ETA: ", decor.WC{W: len("ETA: ")}),
			decor.AverageETA(decor.ET_STYLE_GO),
			decor.OnComplete(decor.Name(""), ". done"),
		),
	)

	return p, bar
}
