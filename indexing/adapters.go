// SPDX-License-Identifier: MIT

// Package indexing: adapters over an existing Indexing.
// This file defines:
//   - Map: element transform, same positions
//   - Truncate: length-limiting prefix
//   - Concat: ordered disjoint union of same-typed domains
package indexing

import "fmt"

// ---------- Map ----------

// mappedDomain applies f to every element of src.
type mappedDomain[E, R any] struct {
	src Indexing[E]
	f   func(E) R
}

// Map returns an Indexing with the same positions as src and elements
// transformed by f. f must be pure: Map preserves referential transparency
// only if f does.
//
// Errors: ErrNilIndexing, ErrNilTransform.
// Complexity: O(1) construction; At adds one f call to the source cost.
func Map[E, R any](src Indexing[E], f func(E) R) (Indexing[R], error) {
	if src == nil {
		return nil, fmt.Errorf("%w: Map source", ErrNilIndexing)
	}
	if f == nil {
		return nil, fmt.Errorf("%w: Map", ErrNilTransform)
	}

	return mappedDomain[E, R]{src: src, f: f}, nil
}

// Len forwards to the source.
func (m mappedDomain[E, R]) Len() uint64 { return m.src.Len() }

// At resolves the source element, then transforms it.
func (m mappedDomain[E, R]) At(pos uint64) (R, error) {
	v, err := m.src.At(pos)
	if err != nil {
		var zero R

		return zero, err
	}

	return m.f(v), nil
}

// ---------- Truncate ----------

// truncatedDomain is the prefix [0, limit) of src.
type truncatedDomain[E any] struct {
	src   Indexing[E]
	limit uint64
}

// Truncate returns the prefix of src limited to at most n elements.
// If n >= src.Len() the source is returned unchanged.
//
// Errors: ErrNilIndexing.
// Complexity: O(1).
func Truncate[E any](src Indexing[E], n uint64) (Indexing[E], error) {
	if src == nil {
		return nil, fmt.Errorf("%w: Truncate source", ErrNilIndexing)
	}
	if n >= src.Len() {
		return src, nil
	}

	return truncatedDomain[E]{src: src, limit: n}, nil
}

// Len returns the truncated length.
func (t truncatedDomain[E]) Len() uint64 { return t.limit }

// At enforces the truncated bound, then forwards.
func (t truncatedDomain[E]) At(pos uint64) (E, error) {
	if pos >= t.limit {
		var zero E

		return zero, fmt.Errorf("%w: position %d, size %d", ErrOutOfRange, pos, t.limit)
	}

	return t.src.At(pos)
}

// ---------- Concat ----------

// concatDomain is the ordered disjoint union of parts.
type concatDomain[E any] struct {
	parts []Indexing[E]
	size  uint64
}

// Concat returns the Indexing enumerating every part in order: positions
// [0, parts[0].Len()) map into the first part, the next block into the
// second, and so on. Mirrors io.MultiReader for domains.
//
// Errors:
//   - ErrNilIndexing: some part is nil.
//   - ErrDomainOverflow: the summed length exceeds uint64.
//
// Complexity: O(n) construction, O(n) + part cost per At, n = len(parts).
func Concat[E any](parts ...Indexing[E]) (Indexing[E], error) {
	own := make([]Indexing[E], len(parts))
	total := uint64(0)
	for i, part := range parts {
		if part == nil {
			return nil, fmt.Errorf("%w: Concat part %d", ErrNilIndexing, i)
		}
		own[i] = part

		next, ok := addChecked(total, part.Len())
		if !ok {
			return nil, fmt.Errorf("%w: sum through part %d", ErrDomainOverflow, i)
		}
		total = next
	}

	return concatDomain[E]{parts: own, size: total}, nil
}

// Len returns the summed length of all parts.
func (c concatDomain[E]) Len() uint64 { return c.size }

// At routes pos to the part owning that block of positions.
func (c concatDomain[E]) At(pos uint64) (E, error) {
	if pos >= c.size {
		var zero E

		return zero, fmt.Errorf("%w: position %d, size %d", ErrOutOfRange, pos, c.size)
	}

	rest := pos
	for _, part := range c.parts {
		if rest < part.Len() {
			return part.At(rest)
		}
		rest -= part.Len()
	}

	// Unreachable: the bounds check above guarantees some part owns pos.
	var zero E

	return zero, fmt.Errorf("%w: position %d, size %d", ErrOutOfRange, pos, c.size)
}
