// Package perf aggregates instrumented algorithm runs into summary
// statistics and keeps them in a concurrent in-memory store for later
// export.
package perf

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrNoSamples is returned when a summary is requested over zero samples.
var ErrNoSamples = errors.New("no samples to summarize")

// Sample is the immutable outcome of one trial.
type Sample struct {
	Algorithm     string    `json:"algorithm"`
	InputSize     int       `json:"input_size"`
	ElapsedNanos  int64     `json:"elapsed_nanos"`
	Comparisons   int64     `json:"comparisons"`
	ArrayAccesses int64     `json:"array_accesses"`
	Allocations   int64     `json:"allocations"`
	HasMajority   bool      `json:"has_majority"`
	CreatedAt     time.Time `json:"created_at"`
}

// ElapsedMillis returns the trial duration in fractional milliseconds.
func (s Sample) ElapsedMillis() float64 {
	return float64(s.ElapsedNanos) / 1e6
}

func (s Sample) String() string {
	return fmt.Sprintf("PerformanceResult{size=%d, time=%.3f ms, comparisons=%d, accesses=%d, allocations=%d, hasMajority=%t, algorithm='%s'}",
		s.InputSize, s.ElapsedMillis(), s.Comparisons, s.ArrayAccesses, s.Allocations, s.HasMajority, s.Algorithm)
}

// Summary is a read-only aggregate over samples sharing an algorithm and
// input size. It is recomputed from its backing samples, never mutated.
type Summary struct {
	Algorithm      string
	InputSize      int
	RunCount       int
	AvgTimeMs      float64
	MinTimeMs      float64
	MaxTimeMs      float64
	StdDevTimeMs   float64
	AvgComparisons float64
	AvgAccesses    float64
	AvgAllocations float64
}

// Summarize computes the summary statistics for a batch of samples. The
// batch must be non-empty.
func Summarize(algorithm string, inputSize int, samples []Sample) (Summary, error) {
	if len(samples) == 0 {
		return Summary{}, ErrNoSamples
	}

	s := Summary{
		Algorithm: algorithm,
		InputSize: inputSize,
		RunCount:  len(samples),
		MinTimeMs: math.Inf(1),
		MaxTimeMs: math.Inf(-1),
	}

	var sumTime, sumComparisons, sumAccesses, sumAllocations float64
	for _, sample := range samples {
		ms := sample.ElapsedMillis()
		sumTime += ms
		s.MinTimeMs = math.Min(s.MinTimeMs, ms)
		s.MaxTimeMs = math.Max(s.MaxTimeMs, ms)
		sumComparisons += float64(sample.Comparisons)
		sumAccesses += float64(sample.ArrayAccesses)
		sumAllocations += float64(sample.Allocations)
	}

	n := float64(len(samples))
	s.AvgTimeMs = sumTime / n
	s.AvgComparisons = sumComparisons / n
	s.AvgAccesses = sumAccesses / n
	s.AvgAllocations = sumAllocations / n

	var sumSquares float64
	for _, sample := range samples {
		d := sample.ElapsedMillis() - s.AvgTimeMs
		sumSquares += d * d
	}
	s.StdDevTimeMs = math.Sqrt(sumSquares / n)

	return s, nil
}

func (s Summary) String() string {
	return fmt.Sprintf("%s: size=%d, runs=%d, avgTime=%.3f±%.3f ms, min=%.3f ms, max=%.3f ms, avgComparisons=%.1f, avgAccesses=%.1f, avgAllocations=%.1f",
		s.Algorithm, s.InputSize, s.RunCount, s.AvgTimeMs, s.StdDevTimeMs,
		s.MinTimeMs, s.MaxTimeMs, s.AvgComparisons, s.AvgAccesses, s.AvgAllocations)
}
