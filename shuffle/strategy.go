// SPDX-License-Identifier: MIT

package shuffle

// Strategy is the pluggable permutation seam. A Strategy value is an
// immutable, seed-deterministic bijection over [0, DomainSize()); any
// implementation honoring the contract below is substitutable wherever
// a permuted traversal order is consumed.
//
// Contract:
//  1. Bijection: over pos ∈ [0, N), Permute(pos) yields every value in
//     [0, N) exactly once.
//  2. Determinism: Permute is pure; identical construction parameters
//     reproduce the identical mapping.
//  3. Range: Permute(pos) with pos >= N fails with ErrOutOfRange; it
//     never returns a value >= N.
type Strategy interface {
	// DomainSize reports N, the size of the permuted range [0, N).
	DomainSize() uint64

	// Permute maps a position to its image under the bijection.
	Permute(pos uint64) (uint64, error)
}

var (
	_ Strategy = (*Shuffler)(nil)
	_ Strategy = (*Congruential)(nil)
)
