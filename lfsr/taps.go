// SPDX-License-Identifier: MIT

// Package lfsr: the process-wide feedback-mask table.
//
// feedbackMasks[w-1] is the tap mask for width w in the right-shift
// Fibonacci realization: bit j of the mask taps register bit j, and the
// mask bit for tap position p (1-indexed from the feedback end, as the
// published tables list them) is 1 << (w - p). Every mask includes bit 0
// (tap position w), i.e. every mask is odd; that is what makes Step
// invertible.
//
// Sources: widths 1..32 from Ward & Molteno, "Table of Linear Feedback
// Shift Registers" (low-weight sets); widths 33..64 from the standard
// maximal-length sets published in Xilinx XAPP052. The table is read-only
// configuration data: initialized here, never mutated.
package lfsr

import (
	"fmt"
	"math/bits"
)

// Width bounds supported by the mask table.
const (
	// MinWidth is the smallest supported register width.
	MinWidth = 1
	// MaxWidth is the largest supported register width.
	MaxWidth = 64
)

// feedbackMasks holds one maximal-length tap mask per width, indexed by
// width-1. The width-1 entry is degenerate (a single state) but keeps the
// indexing uniform.
var feedbackMasks = [MaxWidth]uint64{
	// widths 1..8
	0x1, 0x3, 0x3, 0x3, 0x5, 0x3, 0x3, 0x1d,
	// widths 9..16
	0x11, 0x9, 0x5, 0x53, 0x1b, 0x2b, 0x3, 0x2d,
	// widths 17..24
	0x9, 0x81, 0x27, 0x9, 0x5, 0x3, 0x21, 0x1b,
	// widths 25..32
	0x9, 0x47, 0x27, 0x9, 0x5, 0x53, 0x9, 0xc5,
	// widths 33..40
	0x2001, 0x300000081, 0x5, 0x801, 0x1f00000001, 0x2300000001, 0x11, 0x280005,
	// widths 41..48
	0x9, 0xc00003, 0x63, 0xc000003, 0x1b, 0x300003, 0x21, 0x18000003,
	// widths 49..56
	0x201, 0xc000003, 0x18003, 0x9, 0x18003, 0x3000000003, 0x1000001, 0x600003,
	// widths 57..64
	0x81, 0x80001, 0x600003, 0x3, 0x18003, 0x300000000000003, 0x3, 0x1b,
}

// Taps returns the feedback mask for the given register width.
// Fails with ErrWidthOutOfRange for widths outside [MinWidth, MaxWidth].
func Taps(width uint) (uint64, error) {
	if width < MinWidth || width > MaxWidth {
		return 0, fmt.Errorf("%w: %d", ErrWidthOutOfRange, width)
	}

	return feedbackMasks[width-1], nil
}

// WidthFor returns the smallest register width whose state space covers a
// domain of n values: ceil(log2(max(n,1))), clamped to MinWidth. The result
// never exceeds MaxWidth since n is a uint64.
func WidthFor(n uint64) uint {
	if n <= 2 {
		return MinWidth
	}

	return uint(bits.Len64(n - 1))
}
