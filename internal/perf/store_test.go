package perf

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSample(size int, elapsedMs float64) Sample {
	return Sample{
		Algorithm:     "BoyerMooreMajorityVote",
		InputSize:     size,
		ElapsedNanos:  msToNanos(elapsedMs),
		Comparisons:   int64(size),
		ArrayAccesses: int64(2 * size),
		Allocations:   1,
		HasMajority:   true,
		CreatedAt:     time.Now(),
	}
}

func TestStore_RecordAndQuery(t *testing.T) {
	store := NewStore()
	assert.Equal(t, 0, store.Len())

	key := Key{Algorithm: "BoyerMooreMajorityVote", InputSize: 100, WantMajority: true}
	store.Record(key, testSample(100, 1.0))
	store.Record(key, testSample(100, 2.0))
	store.Record(Key{Algorithm: "BoyerMooreMajorityVote", InputSize: 200, WantMajority: false}, testSample(200, 3.0))
	store.Record(Key{Algorithm: "Other", InputSize: 100, WantMajority: true}, Sample{Algorithm: "Other", InputSize: 100})

	assert.Equal(t, 4, store.Len())
	assert.Len(t, store.Query("BoyerMooreMajorityVote"), 3)
	assert.Len(t, store.Query("Other"), 1)
	assert.Empty(t, store.Query("Missing"))
}

func TestStore_Summarize(t *testing.T) {
	store := NewStore()
	key := Key{Algorithm: "BoyerMooreMajorityVote", InputSize: 100, WantMajority: true}
	store.Record(key, testSample(100, 1.0))
	store.Record(key, testSample(100, 3.0))

	summary, ok := store.Summarize("BoyerMooreMajorityVote", 100)
	require.True(t, ok)
	assert.Equal(t, 2, summary.RunCount)
	assert.InDelta(t, 2.0, summary.AvgTimeMs, 1e-9)

	_, ok = store.Summarize("BoyerMooreMajorityVote", 999)
	assert.False(t, ok)
	_, ok = store.Summarize("Missing", 100)
	assert.False(t, ok)
}

func TestStore_Clear(t *testing.T) {
	store := NewStore()
	store.Record(Key{Algorithm: "A", InputSize: 1, WantMajority: true}, testSample(1, 1.0))
	require.Equal(t, 1, store.Len())

	store.Clear()
	assert.Equal(t, 0, store.Len())
	assert.Empty(t, store.Query("A"))
}

func TestStore_SnapshotIsACopy(t *testing.T) {
	store := NewStore()
	key := Key{Algorithm: "A", InputSize: 1, WantMajority: true}
	store.Record(key, testSample(1, 1.0))

	snapshot := store.Snapshot()
	snapshot[key][0].InputSize = 999

	samples := store.Query("A")
	require.Len(t, samples, 1)
	assert.Equal(t, 1, samples[0].InputSize)
}

func TestStore_ConcurrentAppends(t *testing.T) {
	store := NewStore()

	const goroutines = 8
	const perGoroutine = 200

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			// half the writers share a key, the rest get their own
			key := Key{Algorithm: "BoyerMooreMajorityVote", InputSize: 100 * (g % 2), WantMajority: g%2 == 0}
			for i := 0; i < perGoroutine; i++ {
				store.Record(key, testSample(100, 1.0))
			}
		}(g)
	}
	wg.Wait()

	assert.Equal(t, goroutines*perGoroutine, store.Len())
}
