// SPDX-License-Identifier: MIT

package rna

import "errors"

// ErrInvalidSymbol indicates an input byte that is not a nucleotide or IUPAC code.
var ErrInvalidSymbol = errors.New("rna: invalid nucleotide symbol")
