package shuffled_test

import (
	"fmt"

	"github.com/katalvlaran/shufdex/indexing"
	"github.com/katalvlaran/shufdex/shuffled"
)

// ExampleShuffle deals a 52-card deck in seeded pseudo-random order. The
// deck is a 13×4 product that is never materialized; every card still
// comes out exactly once.
func ExampleShuffle() {
	ranks, _ := indexing.Range(0, 13)
	suits, _ := indexing.Range(0, 4)
	deck, _ := indexing.Cross(ranks, suits)

	view, err := shuffled.Shuffle(deck, 42)
	if err != nil {
		fmt.Println("shuffle:", err)
		return
	}

	unique := make(map[indexing.Pair[uint64, uint64]]struct{})
	for i := uint64(0); i < view.Len(); i++ {
		card, err := view.At(i)
		if err != nil {
			fmt.Println("deal:", err)
			return
		}
		unique[card] = struct{}{}
	}
	fmt.Println(view.Len(), "cards dealt,", len(unique), "distinct")

	// Output:
	// 52 cards dealt, 52 distinct
}
