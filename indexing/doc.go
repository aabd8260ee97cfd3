// Package indexing treats a finite combinatorial domain as a mixed-radix
// number system: every element owns an exact integer position in [0, Len()),
// and every position decodes to its element without enumerating predecessors.
//
// 🚀 What is an Indexing?
//
//	A bijection between [0, Len()) and the elements of a finite domain.
//	It is the capability everything else in this module composes over:
//	  • Range, FromSlice, Single — primitive domains
//	  • Cross, Product          — Cartesian products via mixed-radix digits
//	  • Concat, Map, Truncate   — ordered union, element transform, prefix
//	  • shuffled.Shuffle        — the same domain in pseudo-random order
//
// ✨ Key properties:
//   - At(pos) is pure and side-effect free; identical positions always
//     yield identical elements (the shuffle layer relies on this).
//   - Cardinalities are exact uint64 values; products and sums are checked,
//     never silently wrapped (ErrDomainOverflow).
//   - Cross/Product decompose a position in one mixed-radix pass; the digit
//     order is configurable (WithDigitOrder), little-endian by default:
//     the first operand is the fastest-varying digit.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/shufdex/indexing"
//
//	suits, _ := indexing.Range(0, 4)   // {0,1,2,3}
//	ranks, _ := indexing.Range(0, 13)  // {0,...,12}
//	deck, _ := indexing.Cross(suits, ranks)
//
//	deck.Len()                         // 52
//	deck.At(5)                         // Pair{First:1, Second:1}, since 5 = 1 + 4*1
//
// Performance:
//
//   - Len:  O(1) for every type in this package.
//   - At:   O(1) for primitives; O(members) for Product/Concat.
//
// See shuffled for pseudo-random-order enumeration of any Indexing.
package indexing
