// SPDX-License-Identifier: MIT

package shuffle

// mixSeed is the SplitMix64 finalizer. Both strategies derive their
// internal parameters from chained applications of it, so near-identical
// seeds still produce unrelated permutations.
func mixSeed(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	x = (x ^ (x >> 30)) * 0xBF58476D1CE4E5B9
	x = (x ^ (x >> 27)) * 0x94D049BB133111EB

	return x ^ (x >> 31)
}
