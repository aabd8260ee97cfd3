// SPDX-License-Identifier: MIT

// Package indexing: the Indexing capability and its primitive domains.
// This file defines:
//   - Indexing[E] (the capability: exact cardinality + positional access),
//   - Range (half-open integer interval),
//   - FromSlice (explicit element list),
//   - Single (one-element domain).
package indexing

import "fmt"

// Indexing maps every position in [0, Len()) to exactly one element of a
// finite domain. Implementations must be immutable and referentially
// transparent: At(p) always yields the same element for the same p, with no
// side effects. The shuffle layer depends on this to preserve its bijection
// guarantee.
//
// Len reports the exact cardinality of the domain; Len() == 0 denotes an
// empty domain, on which every At fails with ErrOutOfRange.
type Indexing[E any] interface {
	// Len returns the exact number of elements in the domain.
	Len() uint64

	// At returns the element at position pos.
	// Fails with ErrOutOfRange when pos >= Len().
	At(pos uint64) (E, error)
}

// ---------- Range ----------

// intervalDomain is the half-open interval [start, end) over uint64.
type intervalDomain struct {
	start uint64
	end   uint64
}

// Range returns the Indexing over the half-open interval [start, end):
// position p maps to start+p. Fails with ErrInvalidInterval when end < start.
// Range(x, x) is a valid empty domain.
//
// Complexity: O(1) construction, O(1) per At.
func Range(start, end uint64) (Indexing[uint64], error) {
	if end < start {
		return nil, fmt.Errorf("%w: [%d, %d)", ErrInvalidInterval, start, end)
	}

	return intervalDomain{start: start, end: end}, nil
}

// Len returns end-start.
func (r intervalDomain) Len() uint64 { return r.end - r.start }

// At returns start+pos for pos < Len().
func (r intervalDomain) At(pos uint64) (uint64, error) {
	if pos >= r.Len() {
		return 0, fmt.Errorf("%w: position %d, size %d", ErrOutOfRange, pos, r.Len())
	}

	return r.start + pos, nil
}

// ---------- FromSlice ----------

// sliceDomain wraps an explicit element list.
type sliceDomain[E any] struct {
	items []E
}

// FromSlice returns the Indexing over the given elements, in slice order.
// The slice is copied, so later mutation of the argument cannot break
// referential transparency. A nil or empty slice yields an empty domain.
//
// Complexity: O(n) construction (copy), O(1) per At.
func FromSlice[E any](items []E) Indexing[E] {
	own := make([]E, len(items))
	copy(own, items)

	return sliceDomain[E]{items: own}
}

// Len returns the number of wrapped elements.
func (s sliceDomain[E]) Len() uint64 { return uint64(len(s.items)) }

// At returns the pos-th wrapped element.
func (s sliceDomain[E]) At(pos uint64) (E, error) {
	if pos >= s.Len() {
		var zero E

		return zero, fmt.Errorf("%w: position %d, size %d", ErrOutOfRange, pos, s.Len())
	}

	return s.items[pos], nil
}

// ---------- Single ----------

// singleDomain holds exactly one element.
type singleDomain[E any] struct {
	item E
}

// Single returns the one-element Indexing containing only v.
// Useful as a fixed dimension inside a Cross or Product.
//
// Complexity: O(1).
func Single[E any](v E) Indexing[E] {
	return singleDomain[E]{item: v}
}

// Len returns 1.
func (s singleDomain[E]) Len() uint64 { return 1 }

// At returns the element for pos == 0.
func (s singleDomain[E]) At(pos uint64) (E, error) {
	if pos != 0 {
		var zero E

		return zero, fmt.Errorf("%w: position %d, size 1", ErrOutOfRange, pos)
	}

	return s.item, nil
}
