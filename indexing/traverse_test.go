package indexing_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/katalvlaran/shufdex/indexing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// errVisitorStop is a caller-side sentinel used to break out of a walk.
var errVisitorStop = errors.New("visitor: stop")

// TestEach_VisitsAllInOrder verifies ascending, exactly-once visiting.
func TestEach_VisitsAllInOrder(t *testing.T) {
	r, err := indexing.Range(100, 105)
	require.NoError(t, err)

	var positions []uint64
	var values []uint64
	err = indexing.Each(r, func(pos uint64, v uint64) error {
		positions = append(positions, pos)
		values = append(values, v)

		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []uint64{0, 1, 2, 3, 4}, positions)
	assert.Equal(t, []uint64{100, 101, 102, 103, 104}, values)
}

// TestEach_StopsOnVisitorError verifies the first visitor error aborts the
// walk and surfaces unchanged.
func TestEach_StopsOnVisitorError(t *testing.T) {
	r, err := indexing.Range(0, 10)
	require.NoError(t, err)

	calls := 0
	err = indexing.Each(r, func(pos uint64, _ uint64) error {
		calls++
		if pos == 2 {
			return errVisitorStop
		}

		return nil
	})

	assert.ErrorIs(t, err, errVisitorStop, "visitor error must surface as-is")
	assert.Equal(t, 3, calls, "walk stops right after the failing visit")
}

// TestEach_NilGuards verifies both argument guards.
func TestEach_NilGuards(t *testing.T) {
	r, err := indexing.Range(0, 3)
	require.NoError(t, err)

	err = indexing.Each[uint64](nil, func(uint64, uint64) error { return nil })
	assert.ErrorIs(t, err, indexing.ErrNilIndexing)

	err = indexing.Each(r, nil)
	assert.ErrorIs(t, err, indexing.ErrNilVisitor)
}

// TestCollect_MatchesSequentialAt verifies Collect equals a manual walk.
func TestCollect_MatchesSequentialAt(t *testing.T) {
	ix := indexing.FromSlice([]string{"x", "y", "z"})

	got, err := indexing.Collect(ix)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y", "z"}, got)
}

// TestEachParallel_CoversAllPositions verifies the worker pool visits every
// position exactly once, regardless of interleaving.
func TestEachParallel_CoversAllPositions(t *testing.T) {
	r, err := indexing.Range(0, 1000)
	require.NoError(t, err)

	var mu sync.Mutex
	seen := make(map[uint64]int, 1000)
	err = indexing.EachParallel(context.Background(), r, 8, func(pos uint64, v uint64) error {
		mu.Lock()
		defer mu.Unlock()
		seen[v]++

		return nil
	})
	require.NoError(t, err)

	require.Len(t, seen, 1000, "every element visited")
	for v, count := range seen {
		require.Equal(t, 1, count, "element %d visited exactly once", v)
	}
}

// TestEachParallel_PropagatesFirstError verifies a failing visitor cancels
// the group and its error is returned.
func TestEachParallel_PropagatesFirstError(t *testing.T) {
	r, err := indexing.Range(0, 500)
	require.NoError(t, err)

	err = indexing.EachParallel(context.Background(), r, 4, func(pos uint64, _ uint64) error {
		if pos == 123 {
			return errVisitorStop
		}

		return nil
	})
	assert.ErrorIs(t, err, errVisitorStop)
}

// TestEachParallel_CanceledContext verifies a pre-canceled context aborts
// the walk before any full pass.
func TestEachParallel_CanceledContext(t *testing.T) {
	r, err := indexing.Range(0, 100000)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = indexing.EachParallel(ctx, r, 2, func(uint64, uint64) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}

// TestEachParallel_DefaultWorkers verifies workers <= 0 still completes.
func TestEachParallel_DefaultWorkers(t *testing.T) {
	r, err := indexing.Range(0, 64)
	require.NoError(t, err)

	var mu sync.Mutex
	count := 0
	err = indexing.EachParallel(context.Background(), r, 0, func(uint64, uint64) error {
		mu.Lock()
		defer mu.Unlock()
		count++

		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 64, count)
}
