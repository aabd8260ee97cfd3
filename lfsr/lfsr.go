// SPDX-License-Identifier: MIT

// Package lfsr: register stepping.
// This file defines:
//   - Feedback (a width paired with its tap mask),
//   - Step / Unstep (the raw linear recurrence and its inverse),
//   - StepFull (the zero-splice full 2^width cycle),
//   - StepsBetween (position-of-state, validation helper).
package lfsr

import (
	"fmt"
	"math/bits"
)

// spliceState is the fixed non-zero state whose successor is remapped to 0
// in the full cycle; 0 inherits its former successor. One splice per
// (width, taps) pair, chosen once for the whole package.
const spliceState = 1

// Feedback is an LFSR realization: a register width and its maximal-length
// tap mask. The zero value is not usable; construct via New.
type Feedback struct {
	width uint
	taps  uint64
	mask  uint64
}

// New returns the Feedback for the given width, with the tap mask drawn
// from the process-wide table. Fails with ErrWidthOutOfRange for widths
// outside [MinWidth, MaxWidth].
func New(width uint) (Feedback, error) {
	taps, err := Taps(width)
	if err != nil {
		return Feedback{}, err
	}

	return Feedback{width: width, taps: taps, mask: widthMask(width)}, nil
}

// widthMask returns the all-ones mask of the given width without shifting
// past the word size at width 64.
func widthMask(width uint) uint64 {
	return ^uint64(0) >> (64 - width)
}

// Width returns the register width in bits.
func (f Feedback) Width() uint { return f.width }

// Taps returns the feedback mask.
func (f Feedback) Taps() uint64 { return f.taps }

// Mask returns the all-ones state mask (2^width − 1).
func (f Feedback) Mask() uint64 { return f.mask }

// Step advances the raw recurrence one clock:
//
//	next = (parity(s & taps) << (width-1)) | (s >> 1)
//
// The map is linear over GF(2); state 0 is its fixed point (see StepFull
// for the spliced cycle that includes 0). Inputs are masked to the width,
// so Step is total over uint64.
//
// Complexity: O(1).
func (f Feedback) Step(s uint64) uint64 {
	s &= f.mask

	return (uint64(parity(s&f.taps)) << (f.width - 1)) | (s >> 1)
}

// Unstep inverts Step. Every tap mask is odd, so the dropped low bit is
// recoverable from the feedback parity:
//
//	low = topBit(s) XOR parity((s << 1) & taps)
//
// Complexity: O(1).
func (f Feedback) Unstep(s uint64) uint64 {
	s &= f.mask
	prev := (s << 1) & f.mask
	top := (s >> (f.width - 1)) & 1
	low := top ^ uint64(parity(prev&f.taps))

	return prev | low
}

// StepFull advances the spliced full cycle: the successor of spliceState is
// 0, the successor of 0 is what spliceState's successor used to be, and
// every other state follows the raw recurrence. With a maximal-length mask
// the result is a single cycle over all 2^width states, giving every state
// a well-defined steps-since-seed position.
//
// Complexity: O(1); the splice costs two constant comparisons.
func (f Feedback) StepFull(s uint64) uint64 {
	s &= f.mask
	switch s {
	case spliceState:
		return 0
	case 0:
		return f.Step(spliceState)
	default:
		return f.Step(s)
	}
}

// UnstepFull inverts StepFull.
func (f Feedback) UnstepFull(s uint64) uint64 {
	s &= f.mask
	switch s {
	case 0:
		return spliceState
	case f.Step(spliceState):
		return 0
	default:
		return f.Unstep(s)
	}
}

// StepsBetween reports how many StepFull clocks lead from state `from` to
// state `to`, walking at most limit steps. Fails with ErrUnreachableState
// once the limit is exhausted. This is the position-of-state inverse: it
// exists for validation and tests, not for hot paths.
//
// Complexity: O(steps walked).
func (f Feedback) StepsBetween(from, to uint64, limit uint64) (uint64, error) {
	from &= f.mask
	to &= f.mask

	s := from
	for steps := uint64(0); ; steps++ {
		if s == to {
			return steps, nil
		}
		if steps >= limit {
			return 0, fmt.Errorf("%w: from %#x to %#x within %d steps", ErrUnreachableState, from, to, limit)
		}
		s = f.StepFull(s)
	}
}

// parity returns the XOR of all bits of x.
func parity(x uint64) uint {
	return uint(bits.OnesCount64(x) & 1)
}
