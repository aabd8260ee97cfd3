// SPDX-License-Identifier: MIT

// Package indexing: traversal helpers over any Indexing.
// Every At(i) is independent and lock-free, so a domain is trivially
// partitionable; EachParallel exploits exactly that.
package indexing

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// DefaultParallelWorkers selects the worker count when EachParallel is
// called with workers <= 0: one per available CPU.
func DefaultParallelWorkers() int { return runtime.GOMAXPROCS(0) }

// Each visits every position of ix in ascending order, calling
// fn(pos, element) until the domain is exhausted or fn returns an error,
// which stops the walk and is returned as-is.
//
// Errors: ErrNilIndexing, ErrNilVisitor, plus anything ix.At or fn return.
// Complexity: O(Len()) At calls.
func Each[E any](ix Indexing[E], fn func(pos uint64, v E) error) error {
	if ix == nil {
		return fmt.Errorf("%w: Each", ErrNilIndexing)
	}
	if fn == nil {
		return fmt.Errorf("%w: Each", ErrNilVisitor)
	}

	n := ix.Len()
	for pos := uint64(0); pos < n; pos++ {
		v, err := ix.At(pos)
		if err != nil {
			return err
		}
		if err = fn(pos, v); err != nil {
			return err
		}
	}

	return nil
}

// Collect materializes the whole domain into a slice, in position order.
// Intended for small domains and tests; the full space is allocated.
//
// Errors: ErrNilIndexing; ErrDomainOverflow when Len() exceeds the host's
// addressable slice length; plus anything ix.At returns.
func Collect[E any](ix Indexing[E]) ([]E, error) {
	if ix == nil {
		return nil, fmt.Errorf("%w: Collect", ErrNilIndexing)
	}

	n := ix.Len()
	if n > uint64(math.MaxInt) {
		return nil, fmt.Errorf("%w: %d elements cannot be materialized", ErrDomainOverflow, n)
	}

	out := make([]E, 0, n)
	err := Each(ix, func(_ uint64, v E) error {
		out = append(out, v)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// EachParallel visits every position of ix exactly once using a bounded
// worker pool. Positions are handed out through a single atomic counter, so
// no two workers ever see the same position; visit order across workers is
// unspecified. fn may be called concurrently and must be safe for that.
//
// The first error (from ix.At, fn, or ctx) cancels the remaining work and
// is returned. workers <= 0 selects DefaultParallelWorkers(); a nil ctx is
// treated as context.Background().
//
// Complexity: O(Len()) At calls split across workers.
func EachParallel[E any](ctx context.Context, ix Indexing[E], workers int, fn func(pos uint64, v E) error) error {
	if ix == nil {
		return fmt.Errorf("%w: EachParallel", ErrNilIndexing)
	}
	if fn == nil {
		return fmt.Errorf("%w: EachParallel", ErrNilVisitor)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if workers <= 0 {
		workers = DefaultParallelWorkers()
	}

	n := ix.Len()
	g, gctx := errgroup.WithContext(ctx)

	// Shared position source: Add returns the next unclaimed position+1.
	var next atomic.Uint64
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for {
				pos := next.Add(1) - 1
				if pos >= n {
					return nil
				}

				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}

				v, err := ix.At(pos)
				if err != nil {
					return err
				}
				if err = fn(pos, v); err != nil {
					return err
				}
			}
		})
	}

	return g.Wait()
}
