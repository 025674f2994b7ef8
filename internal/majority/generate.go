package majority

import (
	"math/rand"
	"sync"
	"time"
)

// MajorityValue is the sentinel written into the guaranteed-majority
// positions by Generate.
const MajorityValue = 1

// Generator produces synthetic test sequences. The random source is
// injected so benchmarks stay reproducible under a fixed seed. The mutex
// makes Shuffle safe when independent sweeps share a generator across
// worker goroutines.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewGenerator returns a generator seeded deterministically.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// NewRandomGenerator returns a generator seeded from the clock.
func NewRandomGenerator() *Generator {
	return NewGenerator(time.Now().UnixNano())
}

// Generate builds a sequence of the given size. With wantMajority and
// size > 1, the first floor(size/2)+1 positions hold MajorityValue and the
// remainder hold mutually distinct values from a disjoint range. Otherwise
// position i holds i mod (floor(size/2)+1), so no value exceeds the majority
// threshold. Note the size==1 case always takes the second branch when
// wantMajority is false, yet the engine still reports a single element as a
// majority; that mismatch is deliberate and covered by tests.
func (g *Generator) Generate(size int, wantMajority bool) []int {
	if size <= 0 {
		return []int{}
	}

	values := make([]int, size)

	if wantMajority && size > 1 {
		majorityCount := size/2 + 1
		for i := 0; i < majorityCount; i++ {
			values[i] = MajorityValue
		}
		for i := majorityCount; i < size; i++ {
			values[i] = i - majorityCount + 2
		}
		return values
	}

	for i := 0; i < size; i++ {
		values[i] = i % (size/2 + 1)
	}
	return values
}

// Shuffle permutes values in place with Fisher-Yates. It is a no-op for
// sequences of length <= 1 and preserves the multiset of elements.
func (g *Generator) Shuffle(values []int) {
	if len(values) <= 1 {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	for i := len(values) - 1; i > 0; i-- {
		j := g.rng.Intn(i + 1)
		values[i], values[j] = values[j], values[i]
	}
}
