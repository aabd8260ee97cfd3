// Package shufdex turns huge combinatorial spaces — products, grids,
// card decks, k-subsets — into addressable, shuffleable domains: every
// element reachable by position, every traversal order seeded and
// reproducible, and nothing ever materialized.
//
// 🚀 What is shufdex?
//
//	A small, composable library built from four layers:
//		• Indexing: treat a space as a mixed-radix number — Range, FromSlice,
//		  Single, Cross, Product, plus Map/Truncate/Concat adapters
//		• LFSR engine: maximal-length feedback registers for widths 1..64
//		  with jump-ahead over GF(2) companion matrices
//		• Shuffle: seeded bijections over [0, N) by folding the seed into
//		  one affine map and cycle-walking per query
//		• Shuffled: the facade — any domain, any strategy, permuted order
//
// ✨ Why choose shufdex?
//
//   - Exactly-once – bijections by construction, no visited-set, no dedupe
//   - Reproducible – a uint64 seed is the whole state worth persisting
//   - Lazy – a 10^18-element product costs the same as a deck of 52
//   - Composable – every layer consumes and returns the same Indexing
//     capability, so domains nest freely
//
// Under the hood, everything is organized under five subpackages:
//
//	indexing/ — positional domains: Range, FromSlice, Single, Cross, Product,
//	            Map/Truncate/Concat, Each/Collect/EachParallel
//	lfsr/     — tap tables, Step/Unstep, zero-splice full cycle, companion
//	            matrices, affine folding, O(log n) Advance
//	shuffle/  — the Strategy seam: feedback-register and congruential
//	            bijections with a capped cycle walk
//	shuffled/ — View[E]: an Indexing paired with a Strategy
//	combin/   — counted domains: Binomial, KSubsets, KSubmultisets
//
// Quick example:
//
//	ranks, _ := indexing.Range(0, 13)
//	suits, _ := indexing.Range(0, 4)
//	deck, _ := indexing.Cross(ranks, suits) // 52 cards, zero bytes of deck
//	view, _ := shuffled.Shuffle(deck, 42)   // seeded order, each card once
//
//	go get github.com/katalvlaran/shufdex
package shufdex
