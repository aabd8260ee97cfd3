// SPDX-License-Identifier: MIT

// Package lfsr: memoized jump-ahead over the raw recurrence.
//
// Per width, the matrices step^(2^j) for j = 0..63 are built once, lazily,
// and never mutated afterwards; Advance then resolves any step count as a
// product of vector-matrix applications selected by the bits of n. The
// tables are process-wide read-only state guarded by sync.Once, so
// concurrent Advance calls need no locking after initialization.
package lfsr

import "sync"

// squareTable holds step^(2^j) for one width, j indexed 0..MaxWidth-1.
type squareTable [MaxWidth]Matrix

// jumpTables memoizes one squareTable per width, built on first use.
var jumpTables [MaxWidth + 1]struct {
	once    sync.Once
	squares *squareTable
}

// squaresFor returns the memoized squared-step matrices for f's width.
func squaresFor(f Feedback) *squareTable {
	slot := &jumpTables[f.width]
	slot.once.Do(func() {
		var t squareTable
		t[0] = Companion(f)
		for j := 1; j < MaxWidth; j++ {
			t[j] = t[j-1].Mul(t[j-1])
		}
		slot.squares = &t
	})

	return slot.squares
}

// Advance returns the state reached after n clocks of the raw recurrence
// starting from s: step^n(s). It never touches the zero splice (state 0
// stays 0 under the raw recurrence) and is exact for any n, including
// counts far beyond the 2^width − 1 period.
//
// Complexity: O(width · popcount(n)) word operations after the one-time
// O(width³) table build for this width.
func (f Feedback) Advance(s uint64, n uint64) uint64 {
	x := s & f.mask
	if n == 0 || x == 0 {
		return x
	}

	squares := squaresFor(f)
	for j := 0; n != 0; j, n = j+1, n>>1 {
		if n&1 == 1 {
			x = squares[j].Apply(x)
		}
	}

	return x
}
