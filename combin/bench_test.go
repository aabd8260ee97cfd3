package combin_test

import (
	"testing"

	"github.com/katalvlaran/shufdex/combin"
)

var benchSink uint64

// BenchmarkBinomial measures the cached coefficient path.
func BenchmarkBinomial(b *testing.B) {
	if _, err := combin.Binomial(52, 5); err != nil { // warm the cache
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v, err := combin.Binomial(52, 5)
		if err != nil {
			b.Fatal(err)
		}
		benchSink = v
	}
}

// BenchmarkKSubsets_At measures one hand decode out of C(52, 5).
func BenchmarkKSubsets_At(b *testing.B) {
	hands, err := combin.KSubsets(52, 5)
	if err != nil {
		b.Fatal(err)
	}
	size := hands.Len()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		hand, err := hands.At(uint64(i) % size)
		if err != nil {
			b.Fatal(err)
		}
		benchSink = hand[0]
	}
}
