// Package combin adds counted combinatorial domains on top of the
// indexing layer: k-element subsets and k-element multisets of [0, n),
// addressable by position without enumeration, plus the binomial
// arithmetic they are built on.
//
// 🚀 What Is combin?
//
// A poker hand is one of C(52, 5) = 2 598 960 subsets. KSubsets(52, 5)
// exposes them as an Indexing domain: Len() is that count and At(pos)
// decodes the pos-th hand directly via the combinatorial number system
// (colexicographic order), in O(k · log n) per query. KSubmultisets does
// the same for draws with repetition through the stars-and-bars
// bijection. Both results are ordinary domains, so they cross, map,
// truncate, and (the point of this module) shuffle.
//
// ✨ Key Features
//
//   - Binomial: exact C(n, k) in uint64 range with typed overflow
//     reporting and an LRU-cached fast path for the decoder's repeated
//     lookups.
//   - KSubsets: position ↔ subset bijection in colex order; Rank is the
//     inverse of At.
//   - KSubmultisets: multiset domains of size C(n+k−1, k) by reduction
//     to KSubsets.
//
// ⚙️ Usage
//
//	hands, err := combin.KSubsets(52, 5)
//	if err != nil { ... }
//	view, err := shuffled.Shuffle(hands, 42)
//	if err != nil { ... }
//	first, _ := view.At(0) // some 5-card hand; all C(52,5) come out once
//
// Performance: At runs one binary search over cached binomials per
// element; Rank is a k-term sum. Nothing is materialized at any size.
package combin
