// Package shuffle builds deterministic pseudo-random bijections over an
// arbitrary integer range [0, N) and evaluates them point-wise, with no
// stored permutation table and no visited-set.
//
// 🚀 What Is shuffle?
//
// Given a domain size N and a seed, a strategy answers one question:
// "where does position i land under this run's permutation?" Every
// position in [0, N) is hit exactly once across i ∈ [0, N), the answer
// for a fixed (N, seed, i) never changes, and nothing about the domain
// is materialized. That makes shuffling a 10^18-element space exactly as
// cheap as shuffling a deck of 52.
//
// Two interchangeable strategies implement the Strategy seam:
//
//   - Shuffler (New): a maximal-length feedback register over the
//     smallest width k with 2^k ≥ N. The seed is folded into an affine
//     jump over GF(2)^k at construction; each query applies the folded
//     map and cycle-walks until the image lands inside [0, N).
//   - Congruential (NewCongruential): a full-period linear congruential
//     step modulo 2^k with the same fold-then-walk shape, for callers
//     who prefer the arithmetic flavor of mixing.
//
// ✨ Key Properties
//
//   - Bijection: {Permute(i) : i ∈ [0,N)} = [0,N), no collisions, no gaps.
//   - Determinism: same (N, seed) ⇒ same permutation, across processes.
//   - Laziness: O(1) memory; cost per query is independent of N's size
//     beyond the register width.
//   - Safety: the cycle walk carries a hard retry cap (DefaultMaxWalk);
//     exhausting it surfaces ErrUnreachable instead of spinning.
//
// ⚙️ Usage
//
//	s, err := shuffle.New(6, 42)
//	if err != nil { ... }
//	for i := uint64(0); i < s.DomainSize(); i++ {
//		p, err := s.Permute(i)
//		if err != nil { ... }
//		fmt.Println(p) // each value in [0, 6) exactly once
//	}
//
// The seed is the only artifact worth persisting: replaying it replays
// the exact traversal order.
//
// Performance
//
//	Construction:  O(k² · log N) word operations to fold the jump (k ≤ 64)
//	Permute:       expected < 2 affine applications; worst case bounded
//	               by the configured walk cap
//	Memory:        one folded map per strategy value, ~0.5 KiB
//
// Concurrency: strategies are immutable after construction; Permute is
// safe for concurrent use without locking.
package shuffle
