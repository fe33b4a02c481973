// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"

	"github.com/seqan/lara2/rna"
)

// record is one named input sequence.
type record struct {
	name string
	seq  rna.Sequence
}

// readFasta parses every FASTA record of r into the Rna5 alphabet.
func readFasta(r io.Reader) ([]record, error) {
	var out []record
	sc := seqio.NewScanner(fasta.NewReader(r, linear.NewSeq("", nil, alphabet.RNA)))
	for sc.Next() {
		s, ok := sc.Seq().(*linear.Seq)
		if !ok {
			return nil, fmt.Errorf("record %d: unexpected sequence type %T", len(out), sc.Seq())
		}
		seq, err := rna.FromLetters(s.Seq)
		if err != nil {
			return nil, fmt.Errorf("record %d (%s): %w", len(out), s.Name(), err)
		}
		out = append(out, record{name: s.Name(), seq: seq})
	}
	if err := sc.Error(); err != nil {
		return nil, err
	}

	return out, nil
}

// readFastaFile opens path and reads it with readFasta.
func readFastaFile(path string) ([]record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	recs, err := readFasta(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return recs, nil
}
