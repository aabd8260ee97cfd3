// SPDX-License-Identifier: MIT

// Package shuffle: the linear congruential strategy.
package shuffle

import (
	"github.com/katalvlaran/shufdex/lfsr"
)

// mmixMultiplier is Knuth's MMIX constant. Truncated to any width k ≥ 2
// it stays ≡ 1 (mod 4), which together with an odd increment gives the
// recurrence full period 2^k (Hull–Dobell).
const mmixMultiplier = 6364136223846793005

// Congruential permutes [0, N) with a full-period linear congruential
// step x ↦ a·x + c (mod 2^k), with k minimal such that 2^k ≥ N.
// Construction folds the seeded traversal into a single step
// (A, C) = (a, c)^d; queries run the same cycle walk as the
// feedback-register strategy, applying the folded step until the image
// lands inside [0, N).
type Congruential struct {
	domain     uint64
	seed       uint64
	mask       uint64
	maxWalk    int
	multiplier uint64
	increment  uint64
}

// NewCongruential constructs the congruential strategy over
// [0, domainSize). Walk cap and error contract match New.
func NewCongruential(domainSize, seed uint64, opts ...Option) (*Congruential, error) {
	if domainSize == 0 {
		return nil, ErrEmptyDomain
	}
	if seed == 0 {
		return nil, ErrInvalidSeed
	}
	options := gatherOptions(opts...)

	// Modulus 2^k, kept as its mask. Reusing the register width rule
	// keeps both strategies on the same covering power of two.
	width := lfsr.WidthFor(domainSize)
	mask := ^uint64(0) >> (64 - width)

	// Odd increment per Hull–Dobell; fold exponent d ∈ [1, 2^k−1] is
	// never a period multiple, so the folded step is never the identity.
	mixed := mixSeed(seed)
	increment := (mixed | 1) & mask
	exponent := 1 + mixSeed(mixed)%mask

	multiplier, offset := lcgPower(mmixMultiplier&mask, increment, exponent, mask)

	return &Congruential{
		domain:     domainSize,
		seed:       seed,
		mask:       mask,
		maxWalk:    options.maxWalk,
		multiplier: multiplier,
		increment:  offset,
	}, nil
}

// lcgPower returns (a, c)^n under step composition modulo mask+1:
// (a2, c2)∘(a1, c1) = (a2·a1, a2·c1 + c2). Powers of one step commute,
// so plain square-and-multiply applies.
func lcgPower(a, c, n, mask uint64) (uint64, uint64) {
	resA, resC := uint64(1), uint64(0)
	baseA, baseC := a, c
	for ; n > 0; n >>= 1 {
		if n&1 == 1 {
			resA, resC = (baseA*resA)&mask, (baseA*resC+baseC)&mask
		}
		baseA, baseC = (baseA*baseA)&mask, (baseA*baseC+baseC)&mask
	}

	return resA, resC
}

// DomainSize reports N, the size of the permuted range [0, N).
func (c *Congruential) DomainSize() uint64 { return c.domain }

// Seed reports the construction seed.
func (c *Congruential) Seed() uint64 { return c.seed }

// Permute maps pos to its image under the seeded bijection. Contract,
// walk behavior, and errors match Shuffler.Permute.
func (c *Congruential) Permute(pos uint64) (uint64, error) {
	if pos >= c.domain {
		return 0, ErrOutOfRange
	}

	out := pos
	for hop := 0; hop < c.maxWalk; hop++ {
		out = (c.multiplier*out + c.increment) & c.mask
		if out < c.domain {
			return out, nil
		}
	}

	return 0, ErrUnreachable
}
