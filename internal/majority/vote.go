// Package majority implements the Boyer-Moore majority vote algorithm with
// per-invocation instrumentation: every equality comparison and element
// access is charged to a Metrics counter, and elapsed time is measured on
// all exit paths.
package majority

import (
	"fmt"
	"strconv"
	"strings"
)

// AlgorithmName identifies this implementation in samples and exports.
const AlgorithmName = "BoyerMooreMajorityVote"

// VoteResult is the outcome of one FindMajority invocation. Exactly one of
// (Candidate+HasMajority) or Err is meaningful; when Err is set, HasMajority
// is false and Candidate is undefined. Candidate carries a value only for
// non-empty input, and callers must not rely on it unless HasMajority is
// true.
type VoteResult struct {
	Candidate   int
	HasMajority bool
	Metrics     *Metrics
	Err         error
}

// HasError reports whether the invocation failed.
func (r VoteResult) HasError() bool {
	return r.Err != nil
}

func (r VoteResult) String() string {
	if r.HasError() {
		return fmt.Sprintf("Result{error='%s', %s}", r.Err, r.Metrics)
	}
	return fmt.Sprintf("Result{majorityElement=%d, hasMajority=%t, %s}",
		r.Candidate, r.HasMajority, r.Metrics)
}

// FindMajority finds an element occurring strictly more than len(values)/2
// times, if one exists. A nil slice is the "absent input" case and yields
// ErrNilInput. The returned Metrics is always non-nil and its timer has run,
// including on error paths. FindMajority never panics; internal faults are
// converted into a FaultError on the result.
func FindMajority(values []int) (result VoteResult) {
	m := NewMetrics()
	m.StartTimer()
	m.Allocations++ // the metrics/result object itself

	defer func() {
		if r := recover(); r != nil {
			m.StopTimer()
			result = VoteResult{Metrics: m, Err: &FaultError{Msg: fmt.Sprint(r)}}
		}
	}()

	if values == nil {
		m.StopTimer()
		return VoteResult{Metrics: m, Err: ErrNilInput}
	}

	m.ArrayAccesses++ // nil check touched the slice header

	if len(values) == 0 {
		m.StopTimer()
		return VoteResult{Metrics: m}
	}

	m.ArrayAccesses++ // length check

	if len(values) == 1 {
		m.ArrayAccesses++
		m.StopTimer()
		return VoteResult{Candidate: values[0], HasMajority: true, Metrics: m}
	}

	candidate := findCandidate(values, m)
	hasMajority := verifyCandidate(values, candidate, m)

	m.StopTimer()
	return VoteResult{Candidate: candidate, HasMajority: hasMajority, Metrics: m}
}

// findCandidate is the first pass: a single scan maintaining a tentative
// candidate and a counter. Taking over an abandoned candidate is a fresh
// assignment, not an equality test, so no comparison is charged for it.
func findCandidate(values []int, m *Metrics) int {
	var candidate int
	count := 0

	for i := 0; i < len(values); i++ {
		m.ArrayAccesses++

		if count == 0 {
			candidate = values[i]
			count = 1
			continue
		}

		m.Comparisons++
		if candidate == values[i] {
			count++
		} else {
			count--
		}
	}

	return candidate
}

// verifyCandidate is the second pass: count occurrences of the candidate,
// stopping as soon as the majority threshold floor(n/2)+1 is reached.
func verifyCandidate(values []int, candidate int, m *Metrics) bool {
	count := 0
	threshold := len(values)/2 + 1

	for i := 0; i < len(values); i++ {
		m.ArrayAccesses++
		m.Comparisons++

		if candidate == values[i] {
			count++
			if count >= threshold {
				return true
			}
		}
	}

	return count > len(values)/2
}

// Validate checks a sequence without running the algorithm. It distinguishes
// absent input from empty input; FindMajority itself treats empty input as a
// valid no-majority case.
func Validate(values []int) error {
	if values == nil {
		return ErrNilInput
	}
	if len(values) == 0 {
		return ErrEmptyInput
	}
	return nil
}

// ParseSequence parses a comma-separated list of integers, as entered in the
// interactive shell. A blank token is reported as a null element at its
// index so user input failures carry a position.
func ParseSequence(input string) ([]int, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, ErrEmptyInput
	}

	tokens := strings.Split(input, ",")
	values := make([]int, 0, len(tokens))
	for i, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			return nil, &NullElementError{Index: i}
		}
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("invalid element at index %d: %q is not an integer", i, tok)
		}
		values = append(values, v)
	}

	return values, nil
}
