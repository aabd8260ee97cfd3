package lfsr_test

import (
	"testing"

	"github.com/katalvlaran/shufdex/lfsr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIdentity_IsNoOp verifies the identity matrix fixes every state.
func TestIdentity_IsNoOp(t *testing.T) {
	for _, width := range []uint{1, 3, 16, 64} {
		f, err := lfsr.New(width)
		require.NoError(t, err)

		id := lfsr.Identity(width)
		for _, x := range []uint64{0, 1, f.Mask(), 0xDEADBEEF & f.Mask()} {
			assert.Equal(t, x, id.Apply(x), "width %d", width)
		}
	}
}

// TestCompanion_MatchesStep verifies the companion matrix is the linear
// form of the raw recurrence.
func TestCompanion_MatchesStep(t *testing.T) {
	for _, width := range []uint{1, 3, 8, 16, 33, 64} {
		f, err := lfsr.New(width)
		require.NoError(t, err)

		m := lfsr.Companion(f)
		for _, s := range []uint64{0, 1, 2, f.Mask(), 0x5A5A5A5A5A5A5A5A & f.Mask()} {
			assert.Equal(t, f.Step(s), m.Apply(s), "width %d state %#x", width, s)
		}
	}
}

// TestMatrix_Pow_MatchesSequentialSteps cross-checks square-and-multiply
// against plain iteration.
func TestMatrix_Pow_MatchesSequentialSteps(t *testing.T) {
	for _, width := range []uint{3, 8, 16} {
		f, err := lfsr.New(width)
		require.NoError(t, err)
		m := lfsr.Companion(f)

		for _, n := range []uint64{0, 1, 2, 7, 100, 12345} {
			for _, start := range []uint64{1, 0x2D & f.Mask()} {
				want := start
				for i := uint64(0); i < n; i++ {
					want = f.Step(want)
				}
				assert.Equal(t, want, m.Pow(n).Apply(start),
					"width %d n %d start %#x", width, n, start)
			}
		}
	}
}

// TestMatrix_Pow_FullPeriodIsIdentity verifies M^(2^width − 1) = I for every
// supported width. This is the table's primitivity certificate: a maximal
// cycle is exactly a recurrence whose order equals the non-zero state count.
func TestMatrix_Pow_FullPeriodIsIdentity(t *testing.T) {
	for width := uint(lfsr.MinWidth); width <= lfsr.MaxWidth; width++ {
		f, err := lfsr.New(width)
		require.NoError(t, err)

		got := lfsr.Companion(f).Pow(f.Mask())
		assert.Equal(t, lfsr.Identity(width), got, "width %d", width)
	}
}

// TestMatrix_Mul_WidthMismatchPanics verifies mixed-width composition is a
// programmer error, not a silent truncation.
func TestMatrix_Mul_WidthMismatchPanics(t *testing.T) {
	assert.Panics(t, func() {
		_ = lfsr.Identity(3).Mul(lfsr.Identity(4))
	})
}

// TestAffine_Then_ComposesInOrder verifies f.Then(g) means "g after f".
func TestAffine_Then_ComposesInOrder(t *testing.T) {
	f, err := lfsr.New(8)
	require.NoError(t, err)

	a := lfsr.Affine{M: lfsr.Companion(f), C: 0x1B}
	b := lfsr.Affine{M: lfsr.Companion(f).Pow(3), C: 0xA5}
	composed := a.Then(b)

	for _, x := range []uint64{0, 1, 0x7F, f.Mask()} {
		assert.Equal(t, b.Apply(a.Apply(x)), composed.Apply(x), "state %#x", x)
	}
}

// TestAffinePower_MatchesSequentialSteps verifies the folded n-step map of
// F(x) = Step(x) XOR c against n literal applications.
func TestAffinePower_MatchesSequentialSteps(t *testing.T) {
	for _, width := range []uint{3, 8, 16} {
		f, err := lfsr.New(width)
		require.NoError(t, err)
		c := 0x2D & f.Mask()

		for _, n := range []uint64{0, 1, 2, 5, 100, 4095} {
			jump := f.AffinePower(c, n)
			for _, start := range []uint64{0, 1, f.Mask()} {
				want := start
				for i := uint64(0); i < n; i++ {
					want = f.Step(want) ^ c
				}
				assert.Equal(t, want, jump.Apply(start),
					"width %d n %d start %#x", width, n, start)
			}
		}
	}
}

// TestAdvance_MatchesSequentialSteps verifies the memoized jump against
// plain iteration across widths and distances.
func TestAdvance_MatchesSequentialSteps(t *testing.T) {
	for _, width := range []uint{3, 8, 16, 33, 64} {
		f, err := lfsr.New(width)
		require.NoError(t, err)

		for _, n := range []uint64{0, 1, 2, 3, 63, 64, 65, 1000, 10000} {
			for _, start := range []uint64{1, 0xC3C3C3C3C3C3C3C3 & f.Mask()} {
				want := start
				for i := uint64(0); i < n; i++ {
					want = f.Step(want)
				}
				assert.Equal(t, want, f.Advance(start, n),
					"width %d n %d start %#x", width, n, start)
			}
		}
	}
}

// TestAdvance_FullPeriodReturnsStart jumps a whole period at once on every
// width, including the 2^64 − 1 cycle no walk could ever cover.
func TestAdvance_FullPeriodReturnsStart(t *testing.T) {
	for width := uint(lfsr.MinWidth); width <= lfsr.MaxWidth; width++ {
		f, err := lfsr.New(width)
		require.NoError(t, err)

		start := 0x9E3779B97F4A7C15 & f.Mask()
		if start == 0 {
			start = 1
		}
		assert.Equal(t, start, f.Advance(start, f.Mask()), "width %d", width)
	}
}

// TestAdvance_ZeroInputs verifies the fixed point and the empty jump.
func TestAdvance_ZeroInputs(t *testing.T) {
	f, err := lfsr.New(16)
	require.NoError(t, err)

	assert.Zero(t, f.Advance(0, 1<<40), "0 is a fixed point of the raw recurrence")
	assert.Equal(t, uint64(0xBEEF), f.Advance(0xBEEF, 0), "n = 0 must be a no-op")
}

// TestAdvance_ReducesModuloPeriod verifies distances far beyond the period.
// For width 8 the period is 255 and 2^40 ≡ 1 (mod 255), so a jump of
// 2^40 + 7 must land where a jump of 8 does.
func TestAdvance_ReducesModuloPeriod(t *testing.T) {
	f, err := lfsr.New(8)
	require.NoError(t, err)

	assert.Equal(t, f.Advance(1, 8), f.Advance(1, (1<<40)+7))
}
