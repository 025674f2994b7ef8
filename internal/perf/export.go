package perf

import (
	"encoding/csv"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// csvHeader is the exact column order of the CSV export.
var csvHeader = []string{
	"Algorithm", "InputSize", "ExecutionTimeMs", "Comparisons",
	"ArrayAccesses", "MemoryAllocations", "HasMajority", "Timestamp",
}

// sortedKeys returns the store keys in a stable order so repeated exports of
// an unchanged store are byte-identical.
func sortedKeys(snapshot map[Key][]Sample) []Key {
	keys := make([]Key, 0, len(snapshot))
	for key := range snapshot {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Algorithm != keys[j].Algorithm {
			return keys[i].Algorithm < keys[j].Algorithm
		}
		if keys[i].InputSize != keys[j].InputSize {
			return keys[i].InputSize < keys[j].InputSize
		}
		return !keys[i].WantMajority && keys[j].WantMajority
	})
	return keys
}

// ExportCSV serializes every stored sample, one row each, time with six
// decimal digits and the timestamp in Unix milliseconds.
func ExportCSV(store *Store) string {
	snapshot := store.Snapshot()

	var sb strings.Builder
	w := csv.NewWriter(&sb)
	w.Write(csvHeader)

	for _, key := range sortedKeys(snapshot) {
		for _, s := range snapshot[key] {
			w.Write([]string{
				s.Algorithm,
				strconv.Itoa(s.InputSize),
				fmt.Sprintf("%.6f", s.ElapsedMillis()),
				strconv.FormatInt(s.Comparisons, 10),
				strconv.FormatInt(s.ArrayAccesses, 10),
				strconv.FormatInt(s.Allocations, 10),
				strconv.FormatBool(s.HasMajority),
				strconv.FormatInt(s.CreatedAt.UnixMilli(), 10),
			})
		}
	}

	w.Flush()
	return sb.String()
}

// reportGroups collects samples by algorithm, with the per-algorithm sizes
// in ascending order.
func reportGroups(store *Store) (algorithms []string, bySize map[string]map[int][]Sample) {
	snapshot := store.Snapshot()

	bySize = make(map[string]map[int][]Sample)
	for key, samples := range snapshot {
		sizes, ok := bySize[key.Algorithm]
		if !ok {
			sizes = make(map[int][]Sample)
			bySize[key.Algorithm] = sizes
		}
		for _, s := range samples {
			sizes[s.InputSize] = append(sizes[s.InputSize], s)
		}
	}

	for algorithm := range bySize {
		algorithms = append(algorithms, algorithm)
	}
	sort.Strings(algorithms)
	return algorithms, bySize
}

// ExportReport renders a grouped plain-text report: one section per
// algorithm, one summary line per input size, sizes ascending.
func ExportReport(store *Store) string {
	var sb strings.Builder
	sb.WriteString("=== Performance Analysis Report ===\n\n")

	algorithms, bySize := reportGroups(store)
	for _, algorithm := range algorithms {
		sizes := bySize[algorithm]

		total := 0
		sizeList := make([]int, 0, len(sizes))
		for size, samples := range sizes {
			sizeList = append(sizeList, size)
			total += len(samples)
		}
		sort.Ints(sizeList)

		sb.WriteString(fmt.Sprintf("Algorithm: %s\n", algorithm))
		sb.WriteString(fmt.Sprintf("Total runs: %d\n", total))

		for _, size := range sizeList {
			summary, err := Summarize(algorithm, size, sizes[size])
			if err != nil {
				continue
			}
			sb.WriteString(fmt.Sprintf("  Input size %d: %s\n", size, summary))
		}

		sb.WriteString("\n")
	}

	return sb.String()
}

// ExportMarkdown renders the same report as a markdown document, suitable
// for terminal rendering.
func ExportMarkdown(store *Store) string {
	var sb strings.Builder
	sb.WriteString("# Performance Analysis Report\n\n")

	algorithms, bySize := reportGroups(store)
	for _, algorithm := range algorithms {
		sizes := bySize[algorithm]

		sizeList := make([]int, 0, len(sizes))
		for size := range sizes {
			sizeList = append(sizeList, size)
		}
		sort.Ints(sizeList)

		sb.WriteString(fmt.Sprintf("## %s\n\n", algorithm))
		sb.WriteString("| Size | Runs | Avg (ms) | StdDev (ms) | Min (ms) | Max (ms) | Comparisons | Accesses | Allocations |\n")
		sb.WriteString("|---:|---:|---:|---:|---:|---:|---:|---:|---:|\n")

		for _, size := range sizeList {
			s, err := Summarize(algorithm, size, sizes[size])
			if err != nil {
				continue
			}
			sb.WriteString(fmt.Sprintf("| %d | %d | %.3f | %.3f | %.3f | %.3f | %.1f | %.1f | %.1f |\n",
				s.InputSize, s.RunCount, s.AvgTimeMs, s.StdDevTimeMs,
				s.MinTimeMs, s.MaxTimeMs, s.AvgComparisons, s.AvgAccesses, s.AvgAllocations))
		}

		sb.WriteString("\n")
	}

	return sb.String()
}
