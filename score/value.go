// SPDX-License-Identifier: MIT

package score

import (
	"math"
	"strconv"
)

// Value is an additive, totally ordered alignment score.
type Value int64

const (
	// NegInf marks unreachable DP states. It is strictly below any real score.
	NegInf Value = math.MinInt64 / 4

	// MaxMagnitude bounds the absolute value of every configuration entry.
	MaxMagnitude Value = 1 << 30

	// MaxLength bounds the length of each aligned sequence.
	MaxLength = 1 << 24
)

// Add returns x+y, saturating at NegInf when either operand is NegInf (or below).
func Add(x, y Value) Value {
	if x <= NegInf || y <= NegInf {
		return NegInf
	}

	return x + y
}

// Sub returns x-y for y >= 0, saturating at NegInf when the difference would
// fall to or below the sentinel. A margin larger than any real score therefore
// yields the NegInf threshold instead of wrapping around.
func Sub(x, y Value) Value {
	if x <= NegInf || y >= x-NegInf {
		return NegInf
	}

	return x - y
}

// Max3 returns the largest of three values.
func Max3(a, b, c Value) Value {
	if a < b {
		a = b
	}
	if a < c {
		return c
	}

	return a
}

// IsNegInf reports whether v is the sentinel (or saturated below it).
func (v Value) IsNegInf() bool { return v <= NegInf }

// String renders NegInf as "-inf" and every other value in decimal.
func (v Value) String() string {
	if v.IsNegInf() {
		return "-inf"
	}

	return strconv.FormatInt(int64(v), 10)
}
