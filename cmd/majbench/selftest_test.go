package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSelftest_AllChecksPass(t *testing.T) {
	setupTest(t)

	var buf bytes.Buffer
	err := runSelftest(newTestCmd(&buf), nil)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "=== Basic Scenario Checks ===")
	assert.Contains(t, out, "All 8 checks passed.")
	assert.NotContains(t, out, "FAIL")
	assert.Equal(t, 8, strings.Count(out, "PASS"))
}

func TestExpectMajority(t *testing.T) {
	assert.NoError(t, expectMajority([]int{3, 3, 3, 1, 2}, 3))
	assert.Error(t, expectMajority([]int{3, 3, 3, 1, 2}, 1))
	assert.Error(t, expectMajority([]int{1, 2, 3}, 1))
	assert.Error(t, expectMajority(nil, 0))
}

func TestExpectNoMajority(t *testing.T) {
	assert.NoError(t, expectNoMajority([]int{1, 2, 3, 4}))
	assert.Error(t, expectNoMajority([]int{5, 5, 5}))
}
