// Package shuffled is the user-facing facade of the module: it pairs an
// indexing.Indexing domain with a shuffle.Strategy permutation so the
// domain's elements come back in seeded pseudo-random order, every
// element exactly once, with nothing materialized.
//
// 🚀 What Is shuffled?
//
// A View[E] is itself an Indexing[E]: Len() delegates to the wrapped
// domain and At(i) returns the element at the permuted position. Because
// the permutation is a bijection over [0, Len()), walking i from 0 to
// Len()−1 enumerates the whole domain in shuffled order — a lazy
// Fisher–Yates over spaces that would never fit in memory.
//
// ✨ Key Properties
//
//   - Exactly-once: the shuffled walk hits every element once, no
//     visited-set, no omissions.
//   - Reproducible: the seed fully determines the order; persist the
//     seed to replay a run.
//   - Composable: a View is an Indexing, so it nests under Map,
//     Truncate, Cross, or another Shuffle, and the traversal helpers
//     (Each, EachParallel) work on it unchanged.
//
// ⚙️ Usage
//
//	ranks, _ := indexing.Range(0, 13)
//	suits, _ := indexing.Range(0, 4)
//	deck, _ := indexing.Cross(ranks, suits) // 52 cards, never materialized
//
//	view, err := shuffled.Shuffle(deck, 42)
//	if err != nil { ... }
//	for i := uint64(0); i < view.Len(); i++ {
//		card, err := view.At(i) // each card exactly once, order by seed 42
//		...
//	}
//
// Performance: At adds one Permute (expected under two affine
// applications) on top of the wrapped domain's own At cost. Views are
// immutable and safe for concurrent readers.
package shuffled
