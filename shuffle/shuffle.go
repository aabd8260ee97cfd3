// SPDX-License-Identifier: MIT

// Package shuffle: the feedback-register strategy.
package shuffle

import (
	"github.com/katalvlaran/shufdex/lfsr"
)

// Shuffler permutes [0, N) with a maximal-length feedback register over
// the smallest width k satisfying 2^k ≥ N.
//
// Construction folds the whole seeded traversal into one affine map
// G = F^d over GF(2)^k, where F(x) = Step(x) XOR c and both the offset c
// and the fold exponent d derive from the seed. A query starts at its own
// position and follows G until the image lands inside the domain:
//
//	Permute(i) = G^m(i),  m = min{ j ≥ 1 : G^j(i) < N }
//
// G is a bijection on [0, 2^k), so the first in-domain state on a walk is
// reached from exactly one starting position: distinct inputs never
// collide, and every value in [0, N) terminates exactly one walk. The
// width rule keeps at least half of all register states in-domain, so the
// expected walk length is under two applications.
type Shuffler struct {
	domain  uint64
	seed    uint64
	width   uint
	maxWalk int
	jump    lfsr.Affine
}

// New constructs the feedback-register strategy over [0, domainSize).
//
// Steps:
//  1. Validate the domain (ErrEmptyDomain) and the seed (ErrInvalidSeed).
//  2. Size the register: k = WidthFor(domainSize), taps from the table.
//  3. Derive the affine offset c (forced non-zero, so state 0 joins a
//     proper cycle) and the fold exponent d ∈ [1, 2^k−2] from the mixed
//     seed; d stays clear of period multiples, so G is never the
//     identity.
//  4. Fold: G = (companion, c)^d via AffinePower.
//
// Complexity: O(k² · log d) word operations, k ≤ 64.
// Errors: ErrEmptyDomain, ErrInvalidSeed.
func New(domainSize, seed uint64, opts ...Option) (*Shuffler, error) {
	// 1) Reject meaningless configurations up front.
	if domainSize == 0 {
		return nil, ErrEmptyDomain
	}
	if seed == 0 {
		return nil, ErrInvalidSeed
	}
	options := gatherOptions(opts...)

	// 2) Smallest register covering the domain. WidthFor never leaves
	// [1, 64] for a uint64 domain, so New cannot fail here.
	width := lfsr.WidthFor(domainSize)
	feedback, err := lfsr.New(width)
	if err != nil {
		return nil, err
	}

	// 3) Seed-derived parameters.
	mixed := mixSeed(seed)
	offset := mixed & feedback.Mask()
	if offset == 0 {
		offset = 1
	}
	exponent := uint64(1)
	if width > lfsr.MinWidth {
		exponent = 1 + mixSeed(mixed)%(feedback.Mask()-1)
	}

	// 4) Fold the seeded traversal into a single affine map.
	return &Shuffler{
		domain:  domainSize,
		seed:    seed,
		width:   width,
		maxWalk: options.maxWalk,
		jump:    feedback.AffinePower(offset, exponent),
	}, nil
}

// DomainSize reports N, the size of the permuted range [0, N).
func (s *Shuffler) DomainSize() uint64 { return s.domain }

// Seed reports the construction seed. Persisting it is all a caller needs
// to replay the same traversal order later.
func (s *Shuffler) Seed() uint64 { return s.seed }

// Width reports the register width k backing this permutation.
func (s *Shuffler) Width() uint { return s.width }

// Permute maps pos to its image under the seeded bijection.
//
// Complexity: expected < 2 affine applications per call; never more than
// the configured walk cap.
// Errors: ErrOutOfRange if pos >= DomainSize(); ErrUnreachable if the
// walk cap is exhausted before an in-domain image appears.
func (s *Shuffler) Permute(pos uint64) (uint64, error) {
	if pos >= s.domain {
		return 0, ErrOutOfRange
	}

	out := pos
	for hop := 0; hop < s.maxWalk; hop++ {
		out = s.jump.Apply(out)
		if out < s.domain {
			return out, nil
		}
	}

	return 0, ErrUnreachable
}
