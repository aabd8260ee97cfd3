// SPDX-License-Identifier: MIT

// Package indexing: the 2-ary Cartesian product combinator.
package indexing

import (
	"fmt"
	"math/bits"
)

// Pair is the element type of a 2-ary cross: one value from each operand.
type Pair[A, B any] struct {
	First  A
	Second B
}

// crossDomain composes two Indexing instances into their Cartesian product.
type crossDomain[A, B any] struct {
	a     Indexing[A]
	b     Indexing[B]
	size  uint64
	order DigitOrder
}

// Cross returns the Indexing over the Cartesian product of a and b, with
// Len() = a.Len() * b.Len().
//
// Position decomposition (LittleEndianDigits, the default):
//
//	p = aPos + a.Len()*bPos
//	aPos = p mod a.Len()      // first operand varies fastest
//	bPos = p div a.Len()
//
// With BigEndianDigits the mirror decomposition applies and the second
// operand varies fastest. The convention is fixed at construction and is
// the combinator's defining invariant.
//
// Errors:
//   - ErrNilIndexing: a or b is nil.
//   - ErrDomainOverflow: a.Len()*b.Len() does not fit in uint64 (checked
//     at construction, never deferred to query time).
//
// Complexity: O(1) construction, O(1) + operand cost per At.
func Cross[A, B any](a Indexing[A], b Indexing[B], opts ...Option) (Indexing[Pair[A, B]], error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("%w: Cross operand", ErrNilIndexing)
	}

	size, ok := mulChecked(a.Len(), b.Len())
	if !ok {
		return nil, fmt.Errorf("%w: %d * %d", ErrDomainOverflow, a.Len(), b.Len())
	}

	return crossDomain[A, B]{a: a, b: b, size: size, order: gatherOptions(opts...).digitOrder}, nil
}

// Len returns a.Len() * b.Len().
func (c crossDomain[A, B]) Len() uint64 { return c.size }

// At decodes pos into one digit per operand and delegates.
//
// Steps:
//  1. Bounds check against the product size.
//  2. Split pos into (aPos, bPos) per the configured digit order.
//     pos < size implies both operand sizes are non-zero, so the divisions
//     are safe.
//  3. Resolve both operand elements; any operand failure propagates as-is.
func (c crossDomain[A, B]) At(pos uint64) (Pair[A, B], error) {
	var zero Pair[A, B]
	if pos >= c.size {
		return zero, fmt.Errorf("%w: position %d, size %d", ErrOutOfRange, pos, c.size)
	}

	// 2) Mixed-radix split: one modulus per operand.
	var aPos, bPos uint64
	if c.order == LittleEndianDigits {
		aPos, bPos = pos%c.a.Len(), pos/c.a.Len()
	} else {
		bPos, aPos = pos%c.b.Len(), pos/c.b.Len()
	}

	// 3) Delegate to the operands.
	first, err := c.a.At(aPos)
	if err != nil {
		return zero, err
	}
	second, err := c.b.At(bPos)
	if err != nil {
		return zero, err
	}

	return Pair[A, B]{First: first, Second: second}, nil
}

// mulChecked multiplies two cardinalities, reporting overflow instead of
// wrapping. The zero-operand case is exact (0, true).
func mulChecked(x, y uint64) (uint64, bool) {
	hi, lo := bits.Mul64(x, y)

	return lo, hi == 0
}

// addChecked sums two cardinalities, reporting overflow instead of wrapping.
func addChecked(x, y uint64) (uint64, bool) {
	sum, carry := bits.Add64(x, y, 0)

	return sum, carry == 0
}
