// SPDX-License-Identifier: MIT

// Package lfsr: GF(2) linear algebra for jump-ahead.
//
// The one-step map is linear over the two-element field, so the map after
// n steps is the n-th power of its matrix, computable by repeated squaring
// in O(log n) multiplications. Rows are packed as uint64 bit masks: a
// k×k multiply costs O(k²) word operations, a matrix-vector apply O(k).
//
// Determinism & Policy:
//   - Matrix and Affine are immutable value types; methods return copies.
//   - Width mismatches are programmer errors and panic (constant message).
package lfsr

import "math/bits"

// Internal panic message (no magic strings).
const panicWidthMismatch = "lfsr: matrix width mismatch"

// Matrix is a k×k matrix over GF(2), k ≤ 64. Row i is the mask of input
// bits XORed into output bit i: apply(x) bit i = parity(rows[i] & x).
type Matrix struct {
	width uint
	rows  [MaxWidth]uint64
}

// Identity returns I_k.
func Identity(width uint) Matrix {
	var m Matrix
	m.width = width
	for i := uint(0); i < width; i++ {
		m.rows[i] = 1 << i
	}

	return m
}

// Companion returns the one-step matrix of f: output bit i < width-1 reads
// input bit i+1 (the right shift); the top output bit reads parity of the
// tapped input bits.
func Companion(f Feedback) Matrix {
	var m Matrix
	m.width = f.width
	for i := uint(0); i+1 < f.width; i++ {
		m.rows[i] = 1 << (i + 1)
	}
	m.rows[f.width-1] = f.taps

	return m
}

// Width returns the matrix dimension.
func (m Matrix) Width() uint { return m.width }

// Apply multiplies m by the column vector x: bit i of the result is the
// parity of rows[i] & x.
//
// Complexity: O(width) word operations.
func (m Matrix) Apply(x uint64) uint64 {
	var out uint64
	for i := uint(0); i < m.width; i++ {
		out |= uint64(bits.OnesCount64(m.rows[i]&x)&1) << i
	}

	return out
}

// Mul returns m·n (apply n first, then m). Row i of the product is the XOR
// of n's rows selected by the set bits of m's row i.
//
// Complexity: O(width²) word operations in the worst case.
func (m Matrix) Mul(n Matrix) Matrix {
	if m.width != n.width {
		panic(panicWidthMismatch)
	}

	var out Matrix
	out.width = m.width
	for i := uint(0); i < m.width; i++ {
		var row uint64
		for rest := m.rows[i]; rest != 0; rest &= rest - 1 {
			row ^= n.rows[bits.TrailingZeros64(rest)]
		}
		out.rows[i] = row
	}

	return out
}

// Pow returns m^n by repeated squaring; m^0 is the identity.
//
// Complexity: O(width² · log n) word operations.
func (m Matrix) Pow(n uint64) Matrix {
	result := Identity(m.width)
	base := m
	for ; n > 0; n >>= 1 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
	}

	return result
}

// Affine is the map x ↦ M·x XOR C over GF(2)^width. Iterating an affine
// map stays affine, which is what lets a seeded recurrence
// F(x) = Step(x) XOR c jump n steps in O(log n): F^n = (M, c)^n.
type Affine struct {
	M Matrix
	C uint64
}

// Apply evaluates the affine map at x.
func (f Affine) Apply(x uint64) uint64 {
	return f.M.Apply(x) ^ f.C
}

// Then returns the composition "g after f": x ↦ g(f(x)).
func (f Affine) Then(g Affine) Affine {
	return Affine{M: g.M.Mul(f.M), C: g.M.Apply(f.C) ^ g.C}
}

// AffinePower returns the n-step map of the seeded recurrence
// F(x) = Step(x) XOR c, i.e. the pair (A, b) with F^n(x) = A·x XOR b.
// Powers of one map commute, so plain square-and-multiply applies.
//
// Complexity: O(width² · log n) word operations; no lookup tables.
func (f Feedback) AffinePower(c uint64, n uint64) Affine {
	result := Affine{M: Identity(f.width), C: 0}
	base := Affine{M: Companion(f), C: c & f.mask}
	for ; n > 0; n >>= 1 {
		if n&1 == 1 {
			result = result.Then(base)
		}
		base = base.Then(base)
	}

	return result
}
