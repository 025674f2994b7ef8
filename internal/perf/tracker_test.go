package perf

import (
	"testing"

	"majbench/internal/majority"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTracker() *Tracker {
	return NewTracker(NewStore(), majority.NewGenerator(42), nil)
}

func TestRunTrials(t *testing.T) {
	tracker := newTestTracker()

	samples := tracker.RunTrials(100, true, 5)
	require.Len(t, samples, 5)

	for _, s := range samples {
		assert.Equal(t, majority.AlgorithmName, s.Algorithm)
		assert.Equal(t, 100, s.InputSize)
		assert.True(t, s.HasMajority)
		assert.Positive(t, s.Comparisons)
		assert.Positive(t, s.ArrayAccesses)
		assert.Equal(t, int64(1), s.Allocations)
		assert.False(t, s.CreatedAt.IsZero())
	}

	// side effect: samples recorded under the configuration key
	assert.Equal(t, 5, tracker.Store().Len())
	summary, ok := tracker.Store().Summarize(majority.AlgorithmName, 100)
	require.True(t, ok)
	assert.Equal(t, 5, summary.RunCount)
}

func TestRunTrials_NoMajority(t *testing.T) {
	tracker := newTestTracker()

	samples := tracker.RunTrials(100, false, 3)
	require.Len(t, samples, 3)
	for _, s := range samples {
		assert.False(t, s.HasMajority)
	}
}

func TestRunMatrix_OrderAndSummaries(t *testing.T) {
	tracker := newTestTracker()
	sizes := []int{300, 100, 200}

	results := tracker.RunMatrix(sizes, true, 4)
	require.Len(t, results, 3)

	// requested order preserved, not sorted
	assert.Equal(t, 300, results[0].Size)
	assert.Equal(t, 100, results[1].Size)
	assert.Equal(t, 200, results[2].Size)

	for _, ss := range results {
		assert.Equal(t, 4, ss.Summary.RunCount)
		assert.Equal(t, ss.Size, ss.Summary.InputSize)
	}
}

func TestRunMatrixParallel(t *testing.T) {
	tracker := newTestTracker()
	sizes := []int{100, 200, 300, 400}

	results := tracker.RunMatrixParallel(sizes, true, 3)
	require.Len(t, results, 4)

	for i, ss := range results {
		assert.Equal(t, sizes[i], ss.Size)
		assert.Equal(t, 3, ss.Summary.RunCount)
	}

	assert.Equal(t, len(sizes)*3, tracker.Store().Len())
}

func TestCompareMajorityVsNone(t *testing.T) {
	tracker := newTestTracker()
	sizes := []int{100, 200}

	comparison := tracker.CompareMajorityVsNone(sizes, 3)

	require.Len(t, comparison.WithMajority, 2)
	require.Len(t, comparison.WithoutMajority, 2)

	// both sweeps land in the store under distinct keys
	assert.Equal(t, 12, tracker.Store().Len())

	for _, ss := range comparison.WithMajority {
		assert.Equal(t, 3, ss.Summary.RunCount)
	}
}

func TestRunTrials_SharedStoreAcrossConfigs(t *testing.T) {
	store := NewStore()
	a := NewTracker(store, majority.NewGenerator(1), nil)
	b := NewTracker(store, majority.NewGenerator(2), nil)

	done := make(chan struct{})
	go func() {
		a.RunTrials(100, true, 10)
		close(done)
	}()
	b.RunTrials(200, false, 10)
	<-done

	assert.Equal(t, 20, store.Len())
}
