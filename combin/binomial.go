// SPDX-License-Identifier: MIT

// Package combin: exact binomial coefficients in uint64 range.
package combin

import (
	"fmt"
	"math"
	"math/big"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/katalvlaran/shufdex/indexing"
)

// binomialCacheSize bounds the memoized coefficient count. The subset
// decoder's binary searches re-ask a small working set of (n, k) pairs.
const binomialCacheSize = 4096

type binomialKey struct {
	n uint64
	k uint64
}

var (
	binomialOnce  sync.Once
	binomialCache *lru.Cache[binomialKey, uint64]
)

func cacheHandle() *lru.Cache[binomialKey, uint64] {
	binomialOnce.Do(func() {
		// New fails only for a non-positive size; the constant is positive.
		binomialCache, _ = lru.New[binomialKey, uint64](binomialCacheSize)
	})

	return binomialCache
}

// Binomial returns C(n, k) exactly.
//
// The symmetric reduction k → min(k, n−k) is applied first, trivial
// cases short-circuit, and non-trivial coefficients go through an LRU
// cache backed by one exact big-integer product per miss.
//
// Errors: indexing.ErrDomainOverflow when the coefficient does not fit
// uint64. C(n, k) = 0 for k > n and C(n, 0) = 1 are exact, not errors.
func Binomial(n, k uint64) (uint64, error) {
	// 1) Exact cheap cases before touching the cache.
	if k > n {
		return 0, nil
	}
	if k > n-k {
		k = n - k
	}
	switch k {
	case 0:
		return 1, nil
	case 1:
		return n, nil
	}

	// 2) Cached fast path.
	key := binomialKey{n: n, k: k}
	cache := cacheHandle()
	if v, ok := cache.Get(key); ok {
		return v, nil
	}

	// 3) k ≥ 2 with n beyond int64 always overflows uint64, since
	// C(n, 2) = n(n−1)/2 alone exceeds 2^64 there.
	if n > math.MaxInt64 {
		return 0, overflowErr(n, k)
	}

	// 4) Exact product, then the width check.
	var z big.Int
	z.Binomial(int64(n), int64(k))
	if z.BitLen() > 64 {
		return 0, overflowErr(n, k)
	}

	v := z.Uint64()
	cache.Add(key, v)

	return v, nil
}

func overflowErr(n, k uint64) error {
	return fmt.Errorf("combin: C(%d, %d) exceeds uint64: %w", n, k, indexing.ErrDomainOverflow)
}
