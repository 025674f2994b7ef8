package majority

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindMajority_NilInput(t *testing.T) {
	result := FindMajority(nil)

	assert.True(t, result.HasError())
	assert.ErrorIs(t, result.Err, ErrNilInput)
	assert.False(t, result.HasMajority)
	require.NotNil(t, result.Metrics)
	assert.GreaterOrEqual(t, result.Metrics.Elapsed().Nanoseconds(), int64(0))
}

func TestFindMajority_EmptyInput(t *testing.T) {
	result := FindMajority([]int{})

	assert.False(t, result.HasError())
	assert.False(t, result.HasMajority)
	require.NotNil(t, result.Metrics)
	assert.GreaterOrEqual(t, result.Metrics.ArrayAccesses, int64(1))
}

func TestFindMajority_SingleElement(t *testing.T) {
	result := FindMajority([]int{42})

	assert.False(t, result.HasError())
	assert.True(t, result.HasMajority)
	assert.Equal(t, 42, result.Candidate)
	assert.Equal(t, int64(0), result.Metrics.Comparisons)
}

func TestFindMajority_Scenarios(t *testing.T) {
	tests := []struct {
		name          string
		values        []int
		wantMajority  bool
		wantCandidate int
	}{
		{"simple majority", []int{1, 1, 2}, true, 1},
		{"interleaved majority", []int{1, 1, 2, 1, 3, 1, 4}, true, 1},
		{"majority with duplicates", []int{2, 2, 1, 1, 1, 2, 2}, true, 2},
		{"all distinct", []int{1, 2, 3, 4, 5}, false, 0},
		{"negative majority", []int{-1, -1, -1, 2, 3}, true, -1},
		{"even split", []int{1, 1, 2, 2}, false, 0},
		{"two same", []int{1, 1}, true, 1},
		{"two different", []int{1, 2}, false, 0},
		{"exactly half is not a majority", []int{1, 1, 1, 2, 2, 2}, false, 0},
		{"majority at the end", []int{3, 4, 5, 9, 9, 9, 9}, true, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FindMajority(tt.values)

			require.False(t, result.HasError())
			assert.Equal(t, tt.wantMajority, result.HasMajority)
			if tt.wantMajority {
				assert.Equal(t, tt.wantCandidate, result.Candidate)
			}
		})
	}
}

func TestFindMajority_MetricsCharging(t *testing.T) {
	// values[0] visited once in pass one; every count==0 takeover is an
	// assignment, not a comparison.
	result := FindMajority([]int{7, 7, 7})

	require.False(t, result.HasError())
	assert.True(t, result.HasMajority)
	// pass one: 3 accesses, 2 comparisons; verification exits at the
	// threshold of 2 after 2 elements: 2 accesses, 2 comparisons.
	assert.Equal(t, int64(4), result.Metrics.Comparisons)
	assert.Equal(t, int64(7), result.Metrics.ArrayAccesses) // 2 header checks + 3 + 2
	assert.Equal(t, int64(1), result.Metrics.Allocations)
}

func TestFindMajority_ScalingBounds(t *testing.T) {
	gen := NewGenerator(7)

	for _, n := range []int{101, 1000, 5000} {
		values := gen.Generate(n, true)
		gen.Shuffle(values)

		result := FindMajority(values)
		require.False(t, result.HasError())
		assert.True(t, result.HasMajority)

		accesses := result.Metrics.ArrayAccesses
		comparisons := result.Metrics.Comparisons
		assert.GreaterOrEqual(t, accesses, int64(n), "size %d", n)
		assert.LessOrEqual(t, accesses, int64(3*n), "size %d", n)
		assert.GreaterOrEqual(t, comparisons, int64(n/2), "size %d", n)
		assert.LessOrEqual(t, comparisons, int64(2*n), "size %d", n)
	}
}

func TestFindMajority_TimerAlwaysRuns(t *testing.T) {
	for _, values := range [][]int{nil, {}, {1}, {1, 2, 3}} {
		result := FindMajority(values)
		require.NotNil(t, result.Metrics)
		assert.GreaterOrEqual(t, result.Metrics.Elapsed().Nanoseconds(), int64(0))
	}
}

func TestValidate(t *testing.T) {
	assert.ErrorIs(t, Validate(nil), ErrNilInput)
	assert.ErrorIs(t, Validate([]int{}), ErrEmptyInput)
	assert.NoError(t, Validate([]int{1, 2, 3}))
}

func TestParseSequence(t *testing.T) {
	values, err := ParseSequence("1, 2,3 ,-4")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, -4}, values)

	_, err = ParseSequence("")
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = ParseSequence("1,,3")
	var nullErr *NullElementError
	require.True(t, errors.As(err, &nullErr))
	assert.Equal(t, 1, nullErr.Index)

	_, err = ParseSequence("1,two,3")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "index 1")
}

func TestMetricsReset(t *testing.T) {
	m := NewMetrics()
	m.StartTimer()
	m.Comparisons = 5
	m.ArrayAccesses = 7
	m.Allocations = 1
	m.StopTimer()

	assert.Greater(t, m.Elapsed().Nanoseconds(), int64(-1))

	m.Reset()
	assert.Equal(t, int64(0), m.Comparisons)
	assert.Equal(t, int64(0), m.ArrayAccesses)
	assert.Equal(t, int64(0), m.Allocations)
	assert.Equal(t, int64(0), m.Elapsed().Nanoseconds())
}

func TestVoteResultString(t *testing.T) {
	result := FindMajority([]int{5, 5, 1})
	assert.Contains(t, result.String(), "majorityElement=5")
	assert.Contains(t, result.String(), "hasMajority=true")

	errResult := FindMajority(nil)
	assert.Contains(t, errResult.String(), "error=")
}
