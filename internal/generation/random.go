package generation

import (
	"golang.org/x/exp/rand"
)

// Random is the source of every random choice made during generation.
type Random interface {
	// Intn returns a uniformly distributed integer in [0, n). It panics if n <= 0.
	Intn(n int) int
}

// NewRandom returns a seeded Random that is safe for concurrent use.
func NewRandom(seed uint64) Random {
	src := &rand.LockedSource{}
	src.Seed(seed)
	return rand.New(src)
}

// sample returns k distinct indices drawn uniformly without replacement from
// [0, n), in draw order. It returns nil if k > n.
func sample(rng Random, n, k int) []int {
	if k > n || k < 0 {
		return nil
	}

	pool := make([]int, n)
	for i := range pool {
		pool[i] = i
	}

	// partial Fisher-Yates
	for i := 0; i < k; i++ {
		j := i + rng.Intn(n-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}
