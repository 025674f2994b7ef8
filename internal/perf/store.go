package perf

import "sync"

// Key identifies one benchmark configuration. WantMajority is the
// configuration flag the trials ran under, not the per-trial outcome.
type Key struct {
	Algorithm    string
	InputSize    int
	WantMajority bool
}

// Store holds recorded samples keyed by benchmark configuration. Appends are
// atomic per key, so concurrently running configurations never lose samples.
// The store is in-memory only; it is created empty, grows through Record,
// and is discarded at process exit.
type Store struct {
	mu      sync.RWMutex
	samples map[Key][]Sample
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{samples: make(map[Key][]Sample)}
}

// Record appends one sample under the given configuration key.
func (s *Store) Record(key Key, sample Sample) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.samples[key] = append(s.samples[key], sample)
}

// Query returns all samples, across every key, recorded for the named
// algorithm. The result is a copy; mutating it does not affect the store.
func (s *Store) Query(algorithm string) []Sample {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Sample
	for key, samples := range s.samples {
		if key.Algorithm == algorithm {
			out = append(out, samples...)
		}
	}
	return out
}

// Summarize aggregates all stored samples for an algorithm at one input
// size. The second return value is false when no samples match.
func (s *Store) Summarize(algorithm string, inputSize int) (Summary, bool) {
	var matched []Sample
	for _, sample := range s.Query(algorithm) {
		if sample.InputSize == inputSize {
			matched = append(matched, sample)
		}
	}

	summary, err := Summarize(algorithm, inputSize, matched)
	if err != nil {
		return Summary{}, false
	}
	return summary, true
}

// Len returns the total number of stored samples.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, samples := range s.samples {
		n += len(samples)
	}
	return n
}

// Snapshot returns a copy of the full key-to-samples mapping, used by the
// exporters so serialization runs without holding the lock.
func (s *Store) Snapshot() map[Key][]Sample {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[Key][]Sample, len(s.samples))
	for key, samples := range s.samples {
		copied := make([]Sample, len(samples))
		copy(copied, samples)
		out[key] = copied
	}
	return out
}

// Clear empties the store.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.samples = make(map[Key][]Sample)
}
