// SPDX-License-Identifier: MIT

// Package combin: the k-subset domain and its rank inverse.
package combin

import (
	"math/bits"

	"github.com/katalvlaran/shufdex/indexing"
)

// subsetDomain enumerates the k-element subsets of [0, n) in
// colexicographic order.
type subsetDomain struct {
	n    uint64
	k    uint64
	size uint64
}

// KSubsets returns the domain of k-element subsets of [0, n); each At
// yields a fresh strictly ascending []uint64. Len() = C(n, k); k > n is
// a legal empty domain and k = 0 holds the single empty subset.
//
// Errors: indexing.ErrDomainOverflow when C(n, k) exceeds uint64.
func KSubsets(n, k uint64) (indexing.Indexing[[]uint64], error) {
	size, err := Binomial(n, k)
	if err != nil {
		return nil, err
	}

	return subsetDomain{n: n, k: k, size: size}, nil
}

// Len reports C(n, k).
func (d subsetDomain) Len() uint64 { return d.size }

// At decodes pos through the combinatorial number system: every
// pos < C(n, k) has a unique writing pos = Σ_{j=1..k} C(c_j, j) with
// c_k > … > c_1, and the c_j are exactly the subset's elements.
//
// Steps:
//  1. Range-check pos.
//  2. For j = k down to 1, take the largest digit c_j with
//     C(c_j, j) ≤ remainder (binary search over cached binomials), then
//     subtract its weight; previous digits cap the search window, which
//     keeps the decomposition strictly decreasing.
//
// Complexity: O(k · log n).
// Errors: indexing.ErrOutOfRange.
func (d subsetDomain) At(pos uint64) ([]uint64, error) {
	if pos >= d.size {
		return nil, indexing.ErrOutOfRange
	}

	out := make([]uint64, d.k)
	rest := pos
	bound := d.n
	for j := d.k; j >= 1; j-- {
		c, err := largestDigit(j, rest, bound)
		if err != nil {
			return nil, err
		}
		weight, err := Binomial(c, j)
		if err != nil {
			return nil, err
		}

		rest -= weight
		out[j-1] = c
		bound = c
	}

	return out, nil
}

// largestDigit finds the largest c in [j−1, bound) with C(c, j) ≤ rest.
// The window is never empty: the low end always weighs C(j−1, j) = 0.
func largestDigit(j, rest, bound uint64) (uint64, error) {
	lo, hi := j-1, bound-1
	for lo < hi {
		mid := lo + (hi-lo+1)/2
		weight, err := Binomial(mid, j)
		if err != nil {
			return 0, err
		}

		if weight <= rest {
			lo = mid
		} else {
			hi = mid - 1
		}
	}

	return lo, nil
}

// Rank is the inverse of At: the colex position of a strictly ascending
// subset, independent of any particular n.
//
// Errors: ErrInvalidSubset when elements are not strictly ascending;
// indexing.ErrDomainOverflow when the rank leaves uint64, which only
// arbitrary hand-built subsets can cause.
func Rank(subset []uint64) (uint64, error) {
	var pos uint64
	for i, c := range subset {
		if i > 0 && subset[i-1] >= c {
			return 0, ErrInvalidSubset
		}

		weight, err := Binomial(c, uint64(i)+1)
		if err != nil {
			return 0, err
		}

		sum, carry := bits.Add64(pos, weight, 0)
		if carry != 0 {
			return 0, overflowErr(c, uint64(i)+1)
		}
		pos = sum
	}

	return pos, nil
}
