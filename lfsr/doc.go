// Package lfsr implements maximal-length linear-feedback shift registers
// over widths 1..64, with O(log n) jump-ahead built on the recurrence's
// linear-algebra structure over GF(2).
//
// 🚀 What is an LFSR?
//
//	A register whose next state is a fixed XOR of its current bits:
//
//	  next = (parity(state & taps) << (width-1)) | (state >> 1)
//
//	With a primitive feedback mask the non-zero states form one cycle of
//	period 2^width − 1: a cheap, invertible, jump-able pseudo-random
//	sequence. This package supplies:
//	  • per-width feedback masks (a process-wide immutable table)
//	  • single stepping, inverse stepping, and a zero-splice full cycle
//	  • GF(2) matrix jump-ahead: the state after n steps in O(log n)
//	  • seeded affine powers, the building block of shuffle.Shuffler
//
// ✨ Key properties:
//   - Step is linear over GF(2): step^n equals the n-th power of the
//     one-step matrix, computable by repeated squaring.
//   - Every feedback mask is odd, so Step is invertible (Unstep).
//   - StepFull splices state 0 into the cycle (successor of 1 becomes 0,
//     successor of 0 becomes the old successor of 1), giving all 2^width
//     states a well-defined successor and steps-since-seed position.
//
// ⚙️ Usage:
//
//	f, _ := lfsr.New(16)
//
//	s := uint64(1)
//	s = f.Step(s)                  // one clock
//	far := f.Advance(1, 1_000_000) // one million clocks, O(log n)
//
// Performance:
//
//   - Step/Unstep/StepFull: O(1).
//   - Advance: O(width · popcount(n)) word operations after a one-time
//     O(width³) table build per width.
//   - AffinePower: O(width² · log n) word operations, no tables needed.
//
// Feedback masks: widths 1..32 follow Ward & Molteno's low-weight table;
// widths 33..64 use the standard maximal-length sets (XAPP052). Either a
// polynomial or its reciprocal appears; both are primitive, so every width
// delivers the full 2^width − 1 period.
package lfsr
