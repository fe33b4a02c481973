// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/seqan/lara2/edgefilter"
)

// pairReport is the JSON form of one result line.
type pairReport struct {
	IdxA     int      `json:"idx_a"`
	IdxB     int      `json:"idx_b"`
	NameA    string   `json:"name_a"`
	NameB    string   `json:"name_b"`
	LenA     int      `json:"len_a"`
	LenB     int      `json:"len_b"`
	Optimal  int64    `json:"optimal"`
	Edges    int      `json:"edges"`
	Identity float64  `json:"identity"`
	Pairs    [][2]int `json:"pairs,omitempty"`
	Error    string   `json:"error,omitempty"`
}

func newPairReport(recs []record, r edgefilter.Result, withPairs bool) pairReport {
	rep := pairReport{
		IdxA:  r.IdxA,
		IdxB:  r.IdxB,
		NameA: recs[r.IdxA].name,
		NameB: recs[r.IdxB].name,
		LenA:  recs[r.IdxA].seq.Len(),
		LenB:  recs[r.IdxB].seq.Len(),
	}
	if r.Err != nil {
		rep.Error = r.Err.Error()

		return rep
	}
	rep.Optimal = int64(r.Optimal)
	rep.Edges = r.Edges.Count()
	rep.Identity = r.Identity
	if withPairs {
		for _, p := range r.Edges.Pairs() {
			rep.Pairs = append(rep.Pairs, [2]int{p.A, p.B})
		}
	}

	return rep
}

// writeReport writes one line per result, as JSON objects or tab-separated text.
// The text form starts with a '#' header; with pairs enabled each result line
// is followed by a "pairs" line of a:b coordinates.
func writeReport(w io.Writer, recs []record, results []edgefilter.Result, asJSON, withPairs bool) error {
	bw := bufio.NewWriter(w)
	if asJSON {
		enc := json.NewEncoder(bw)
		for _, r := range results {
			if err := enc.Encode(newPairReport(recs, r, withPairs)); err != nil {
				return err
			}
		}

		return bw.Flush()
	}

	fmt.Fprintln(bw, "#idx_a\tidx_b\tname_a\tname_b\tlen_a\tlen_b\toptimal\tedges\tidentity")
	for _, r := range results {
		rep := newPairReport(recs, r, withPairs)
		if rep.Error != "" {
			fmt.Fprintf(bw, "%d\t%d\t%s\t%s\t%d\t%d\terror\t%s\n",
				rep.IdxA, rep.IdxB, rep.NameA, rep.NameB, rep.LenA, rep.LenB, rep.Error)

			continue
		}
		fmt.Fprintf(bw, "%d\t%d\t%s\t%s\t%d\t%d\t%d\t%d\t%.6f\n",
			rep.IdxA, rep.IdxB, rep.NameA, rep.NameB, rep.LenA, rep.LenB, rep.Optimal, rep.Edges, rep.Identity)
		if withPairs {
			fmt.Fprint(bw, "pairs")
			for _, p := range rep.Pairs {
				fmt.Fprintf(bw, " %d:%d", p[0], p[1])
			}
			fmt.Fprintln(bw)
		}
	}

	return bw.Flush()
}
