// SPDX-License-Identifier: MIT

// Package combin: the k-multiset domain via stars and bars.
package combin

import (
	"fmt"

	"github.com/katalvlaran/shufdex/indexing"
)

// multisetDomain enumerates size-k multisets over [0, n) through the
// stars-and-bars bijection onto k-subsets of [0, n+k−1).
type multisetDomain struct {
	n     uint64
	inner subsetDomain
}

// KSubmultisets returns the domain of size-k draws from [0, n) with
// repetition, each At yielding a fresh non-decreasing []uint64.
// Len() = C(n+k−1, k); n = 0 with k > 0 is a legal empty domain and
// k = 0 holds the single empty draw.
//
// Errors: indexing.ErrDomainOverflow when the count exceeds uint64, or
// when n+k−1 itself wraps.
func KSubmultisets(n, k uint64) (indexing.Indexing[[]uint64], error) {
	// Expanded ground set for the bar encoding. k = 0 short-circuits so
	// n = 0 never wraps the subtraction.
	var expanded uint64
	if k > 0 {
		if n > ^uint64(0)-(k-1) {
			return nil, fmt.Errorf("combin: n+k-1 exceeds uint64: %w", indexing.ErrDomainOverflow)
		}
		expanded = n + k - 1
	}

	size, err := Binomial(expanded, k)
	if err != nil {
		return nil, err
	}

	return multisetDomain{n: n, inner: subsetDomain{n: expanded, k: k, size: size}}, nil
}

// Len reports C(n+k−1, k).
func (d multisetDomain) Len() uint64 { return d.inner.size }

// At decodes the pos-th multiset: decode the bar subset, then strip the
// positional offsets, m[i] = c[i] − i. Strictly ascending bars become a
// non-decreasing draw over [0, n).
//
// Errors: indexing.ErrOutOfRange.
func (d multisetDomain) At(pos uint64) ([]uint64, error) {
	draw, err := d.inner.At(pos)
	if err != nil {
		return nil, err
	}

	for i := range draw {
		draw[i] -= uint64(i)
	}

	return draw, nil
}
