package main

import (
	"bytes"
	"os"
	"testing"
	"time"

	"majbench/internal/majority"
	"majbench/internal/perf"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedStore records a couple of fixed samples so export and display commands
// have something to serialize.
func seedStore(t *testing.T) {
	t.Helper()
	key := perf.Key{Algorithm: majority.AlgorithmName, InputSize: 100, WantMajority: true}
	for i := 0; i < 3; i++ {
		store.Record(key, perf.Sample{
			Algorithm:     majority.AlgorithmName,
			InputSize:     100,
			ElapsedNanos:  int64(i+1) * 1_000_000,
			Comparisons:   150,
			ArrayAccesses: 202,
			Allocations:   1,
			HasMajority:   true,
			CreatedAt:     time.UnixMilli(1700000000000),
		})
	}
}

func resetExportFlags(t *testing.T) {
	t.Helper()
	exportCSVPath = ""
	exportReportPath = ""
	t.Cleanup(func() {
		exportCSVPath = ""
		exportReportPath = ""
		writeFileFunc = os.WriteFile
	})
}

func TestRunExport_EmptyStore(t *testing.T) {
	setupTest(t)
	resetExportFlags(t)

	var buf bytes.Buffer
	err := runExport(newTestCmd(&buf), nil)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No results stored.")
}

func TestRunExport_Stdout(t *testing.T) {
	setupTest(t)
	resetExportFlags(t)
	seedStore(t)

	var buf bytes.Buffer
	err := runExport(newTestCmd(&buf), nil)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "CSV Data:")
	assert.Contains(t, out, "Algorithm,InputSize,ExecutionTimeMs,Comparisons,ArrayAccesses,MemoryAllocations,HasMajority,Timestamp")
	assert.Contains(t, out, "Report Data:")
	assert.Contains(t, out, "=== Performance Analysis Report ===")
}

func TestRunExport_ToFiles(t *testing.T) {
	setupTest(t)
	resetExportFlags(t)
	seedStore(t)

	written := map[string][]byte{}
	writeFileFunc = func(name string, data []byte, perm os.FileMode) error {
		written[name] = data
		return nil
	}

	exportCSVPath = "results.csv"
	exportReportPath = "results.txt"

	var buf bytes.Buffer
	err := runExport(newTestCmd(&buf), nil)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "CSV results exported to results.csv")
	assert.Contains(t, buf.String(), "Report exported to results.txt")
	assert.Contains(t, string(written["results.csv"]), "BoyerMooreMajorityVote,100")
	assert.Contains(t, string(written["results.txt"]), "=== Performance Analysis Report ===")
}

func TestRunExport_WriteFailure(t *testing.T) {
	setupTest(t)
	resetExportFlags(t)
	seedStore(t)

	writeFileFunc = func(name string, data []byte, perm os.FileMode) error {
		return os.ErrPermission
	}
	exportCSVPath = "denied.csv"

	var buf bytes.Buffer
	err := runExport(newTestCmd(&buf), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write CSV export")
}
