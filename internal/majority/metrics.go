package majority

import (
	"fmt"
	"time"
)

// Metrics tracks the instrumentation counters for a single algorithm
// invocation. It is owned exclusively by that invocation and must not be
// shared across goroutines. Counters start at zero and only increase until
// Reset.
type Metrics struct {
	Comparisons   int64
	ArrayAccesses int64
	Allocations   int64

	startTime time.Time
	endTime   time.Time
}

// NewMetrics returns a zeroed counter set.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// StartTimer records the start of the measured section.
func (m *Metrics) StartTimer() {
	m.startTime = time.Now()
}

// StopTimer records the end of the measured section. time.Time carries a
// monotonic reading, so Elapsed is immune to wall-clock adjustments.
func (m *Metrics) StopTimer() {
	m.endTime = time.Now()
}

// Elapsed returns the measured duration, zero if the timer never ran.
func (m *Metrics) Elapsed() time.Duration {
	if m.startTime.IsZero() || m.endTime.IsZero() {
		return 0
	}
	return m.endTime.Sub(m.startTime)
}

// ElapsedMillis returns the measured duration in fractional milliseconds.
func (m *Metrics) ElapsedMillis() float64 {
	return float64(m.Elapsed().Nanoseconds()) / 1e6
}

// Reset zeroes all counters and timestamps.
func (m *Metrics) Reset() {
	*m = Metrics{}
}

func (m *Metrics) String() string {
	return fmt.Sprintf("Metrics{comparisons=%d, arrayAccesses=%d, memoryAllocations=%d, executionTime=%.3f ms}",
		m.Comparisons, m.ArrayAccesses, m.Allocations, m.ElapsedMillis())
}
