package perf

import (
	"log/slog"
	"sync"
	"time"

	"majbench/internal/majority"
	"majbench/internal/telemetry"
)

// SizeSummary pairs one input size with its summary, preserving the sweep
// order a matrix run was requested in.
type SizeSummary struct {
	Size    int
	Summary Summary
}

// Comparison holds the two halves of a majority-vs-none sweep.
type Comparison struct {
	WithMajority    []SizeSummary
	WithoutMajority []SizeSummary
}

// Tracker runs repeated trials of the engine against generated input and
// records the resulting samples in a Store.
type Tracker struct {
	store   *Store
	gen     *majority.Generator
	metrics *telemetry.Metrics
}

// NewTracker returns a tracker writing to store. metrics may be nil.
func NewTracker(store *Store, gen *majority.Generator, metrics *telemetry.Metrics) *Tracker {
	return &Tracker{store: store, gen: gen, metrics: metrics}
}

// Store exposes the backing result store.
func (t *Tracker) Store() *Store {
	return t.store
}

// RunTrials executes runs trials at one size. Each trial generates a fresh
// sequence, shuffles it, and feeds it to the engine. Errored trials are
// dropped silently, never retried; callers comparing len(result) against
// runs can detect them. Successful samples are appended to the store under
// the (algorithm, size, wantMajority) key.
func (t *Tracker) RunTrials(size int, wantMajority bool, runs int) []Sample {
	key := Key{Algorithm: majority.AlgorithmName, InputSize: size, WantMajority: wantMajority}
	samples := make([]Sample, 0, runs)

	for i := 0; i < runs; i++ {
		values := t.gen.Generate(size, wantMajority)
		t.gen.Shuffle(values)

		result := majority.FindMajority(values)
		if result.HasError() {
			slog.Warn("trial dropped", "size", size, "run", i, "error", result.Err)
			t.metrics.ObserveTrial(wantMajority, "error", result.Metrics.Elapsed())
			continue
		}

		sample := Sample{
			Algorithm:     majority.AlgorithmName,
			InputSize:     size,
			ElapsedNanos:  result.Metrics.Elapsed().Nanoseconds(),
			Comparisons:   result.Metrics.Comparisons,
			ArrayAccesses: result.Metrics.ArrayAccesses,
			Allocations:   result.Metrics.Allocations,
			HasMajority:   result.HasMajority,
			CreatedAt:     time.Now(),
		}

		t.store.Record(key, sample)
		samples = append(samples, sample)
		t.metrics.ObserveTrial(wantMajority, "ok", result.Metrics.Elapsed())
	}

	t.metrics.ObserveBatch(t.store.Len())
	return samples
}

// RunMatrix applies RunTrials to each size in order and wraps each size's
// samples in a summary. Sizes where every trial errored are omitted.
func (t *Tracker) RunMatrix(sizes []int, wantMajority bool, runs int) []SizeSummary {
	out := make([]SizeSummary, 0, len(sizes))
	for _, size := range sizes {
		samples := t.RunTrials(size, wantMajority, runs)
		summary, err := Summarize(majority.AlgorithmName, size, samples)
		if err != nil {
			slog.Warn("no successful trials for size", "size", size)
			continue
		}
		out = append(out, SizeSummary{Size: size, Summary: summary})
	}
	return out
}

// RunMatrixParallel is RunMatrix with one worker goroutine per size. The
// store's per-key locking makes the concurrent appends safe; the returned
// slice still follows the requested size order.
func (t *Tracker) RunMatrixParallel(sizes []int, wantMajority bool, runs int) []SizeSummary {
	results := make([]*SizeSummary, len(sizes))

	var wg sync.WaitGroup
	for i, size := range sizes {
		wg.Add(1)
		go func(i, size int) {
			defer wg.Done()
			samples := t.RunTrials(size, wantMajority, runs)
			summary, err := Summarize(majority.AlgorithmName, size, samples)
			if err != nil {
				return
			}
			results[i] = &SizeSummary{Size: size, Summary: summary}
		}(i, size)
	}
	wg.Wait()

	out := make([]SizeSummary, 0, len(sizes))
	for _, r := range results {
		if r != nil {
			out = append(out, *r)
		}
	}
	return out
}

// CompareMajorityVsNone runs the same size sweep twice, first with a
// guaranteed majority element and then without one.
func (t *Tracker) CompareMajorityVsNone(sizes []int, runs int) Comparison {
	return Comparison{
		WithMajority:    t.RunMatrix(sizes, true, runs),
		WithoutMajority: t.RunMatrix(sizes, false, runs),
	}
}
