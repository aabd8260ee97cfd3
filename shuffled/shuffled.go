// SPDX-License-Identifier: MIT

// Package shuffled: pairing of a domain with a permutation strategy.
package shuffled

import (
	"fmt"

	"github.com/katalvlaran/shufdex/indexing"
	"github.com/katalvlaran/shufdex/shuffle"
)

// View exposes a wrapped domain in the traversal order of a permutation
// strategy. It implements indexing.Indexing[E], so everything that
// consumes a domain consumes a shuffled one too.
type View[E any] struct {
	ix       indexing.Indexing[E]
	strategy shuffle.Strategy
}

var _ indexing.Indexing[int] = (*View[int])(nil)

// New pairs a domain with an already-built strategy.
//
// Errors: indexing.ErrNilIndexing, ErrNilStrategy, and ErrDomainMismatch
// when ix.Len() != strategy.DomainSize().
func New[E any](ix indexing.Indexing[E], strategy shuffle.Strategy) (*View[E], error) {
	if ix == nil {
		return nil, indexing.ErrNilIndexing
	}
	if strategy == nil {
		return nil, ErrNilStrategy
	}
	if ix.Len() != strategy.DomainSize() {
		return nil, fmt.Errorf("shuffled: indexing holds %d elements but strategy covers %d: %w",
			ix.Len(), strategy.DomainSize(), ErrDomainMismatch)
	}

	return &View[E]{ix: ix, strategy: strategy}, nil
}

// Shuffle wraps a domain with the default feedback-register strategy
// sized to it. The seed fully determines the traversal order.
//
// Errors: indexing.ErrNilIndexing; shuffle.ErrEmptyDomain when the
// domain is empty; shuffle.ErrInvalidSeed when seed == 0.
func Shuffle[E any](ix indexing.Indexing[E], seed uint64, opts ...shuffle.Option) (*View[E], error) {
	if ix == nil {
		return nil, indexing.ErrNilIndexing
	}

	strategy, err := shuffle.New(ix.Len(), seed, opts...)
	if err != nil {
		return nil, err
	}

	return New(ix, strategy)
}

// Len reports the domain size, unchanged by shuffling.
func (v *View[E]) Len() uint64 { return v.ix.Len() }

// At returns the element at the permuted position.
//
// Errors: indexing.ErrOutOfRange when pos >= Len(); shuffle.ErrUnreachable
// if the strategy's cycle walk trips its cap; plus whatever the wrapped
// domain's At can fail with.
func (v *View[E]) At(pos uint64) (E, error) {
	var zero E
	// Range-check first so the facade fails like any other domain; the
	// strategy then never sees an out-of-range position.
	if pos >= v.ix.Len() {
		return zero, indexing.ErrOutOfRange
	}

	permuted, err := v.strategy.Permute(pos)
	if err != nil {
		return zero, err
	}

	return v.ix.At(permuted)
}
