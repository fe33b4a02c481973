package main

import (
	"io"
	"testing"

	"github.com/seqan/lara2/rna"
	"github.com/seqan/lara2/score"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseFlags_Defaults checks default values and the derived scoring.
func TestParseFlags_Defaults(t *testing.T) {
	c, err := parseFlags([]string{"-i", "x.fa"}, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, "x.fa", c.input)
	assert.Equal(t, int64(0), c.margin)
	assert.Equal(t, 1.0, c.scale)
	assert.False(t, c.asJSON)

	cfg, err := c.scoreConfig()
	require.NoError(t, err)
	assert.Equal(t, score.DefaultMatch, cfg.Sub(rna.A, rna.A))
	assert.Equal(t, score.DefaultMismatch, cfg.Sub(rna.A, rna.G))
	assert.Equal(t, score.DefaultGapOpen, cfg.GapOpen)
	assert.Equal(t, score.DefaultGapExtend, cfg.GapExtend)
}

// TestParseFlags_Overrides checks every scoring flag is honoured.
func TestParseFlags_Overrides(t *testing.T) {
	c, err := parseFlags([]string{
		"-i", "x.fa", "-margin", "7", "-match", "3", "-mismatch", "-2",
		"-gap-open", "-6", "-gap-extend", "-2", "-scale", "100", "-j", "4",
		"-json", "-pairs", "-v", "2",
	}, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, int64(7), c.margin)
	assert.Equal(t, 4, c.workers)
	assert.True(t, c.asJSON)
	assert.True(t, c.withPairs)
	assert.Equal(t, 2, c.verbosity)

	cfg, err := c.scoreConfig()
	require.NoError(t, err)
	assert.Equal(t, score.Value(3), cfg.Sub(rna.C, rna.C))
	assert.Equal(t, score.Value(-2), cfg.Sub(rna.C, rna.U))
	assert.Equal(t, score.Value(-6), cfg.GapOpen)
	assert.Equal(t, score.Value(-2), cfg.GapExtend)
	assert.Equal(t, 100.0, cfg.Scale)
}

// TestParseFlags_Errors checks validation of the command line.
func TestParseFlags_Errors(t *testing.T) {
	_, err := parseFlags(nil, io.Discard)
	assert.ErrorIs(t, err, errNoInput)

	_, err = parseFlags([]string{"-i", "x.fa", "-margin", "-1"}, io.Discard)
	assert.ErrorIs(t, err, errBadMargin)

	_, err = parseFlags([]string{"-i", "x.fa", "-v", "3"}, io.Discard)
	assert.ErrorIs(t, err, errVerbosity)

	_, err = parseFlags([]string{"-i", "x.fa", "extra"}, io.Discard)
	assert.ErrorIs(t, err, errExtraInput)

	_, err = parseFlags([]string{"-nope"}, io.Discard)
	assert.Error(t, err)

	c, err := parseFlags([]string{"-i", "x.fa", "-scale", "0"}, io.Discard)
	require.NoError(t, err)
	_, err = c.scoreConfig()
	assert.ErrorIs(t, err, score.ErrBadScale)
}
