package lfsr_test

import (
	"testing"

	"github.com/katalvlaran/shufdex/lfsr"
)

var benchSink uint64

// BenchmarkStep measures one raw transition on the widest register.
func BenchmarkStep(b *testing.B) {
	f, _ := lfsr.New(64)
	s := uint64(1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s = f.Step(s)
	}
	benchSink = s
}

// BenchmarkStepFull measures one spliced transition on the widest register.
func BenchmarkStepFull(b *testing.B) {
	f, _ := lfsr.New(64)
	s := uint64(1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s = f.StepFull(s)
	}
	benchSink = s
}

// BenchmarkAdvance measures a far jump; the squares table is memoized, so
// steady-state cost is the per-bit matrix applications only.
func BenchmarkAdvance(b *testing.B) {
	f, _ := lfsr.New(64)
	f.Advance(1, 1) // warm the table outside the timed region

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSink = f.Advance(uint64(i)|1, (1<<62)+12345)
	}
}

// BenchmarkAffinePower measures folding a far seeded jump into one map.
func BenchmarkAffinePower(b *testing.B) {
	f, _ := lfsr.New(64)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		jump := f.AffinePower(0x9E3779B97F4A7C15, (1<<62)+12345)
		benchSink = jump.Apply(1)
	}
}
