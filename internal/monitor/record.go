package monitor

import "strings"

// RawProcess is what a Source reports for one live process.
type RawProcess struct {
	Name        string
	CPUPercent  float64
	MemoryBytes uint64
}

// ProcessRecord is one row of the process table.
type ProcessRecord struct {
	PID         int32
	Name        string
	CPUPercent  float64 // may exceed 100 on multi-core machines
	MemoryBytes uint64  // resident set size
}

// BuildSnapshot turns a Source enumeration into a fresh record list, one
// record per process. The result is never nil and is not sorted.
func BuildSnapshot(raw map[int32]RawProcess) []ProcessRecord {
	records := make([]ProcessRecord, 0, len(raw))
	for pid, p := range raw {
		records = append(records, ProcessRecord{
			PID:         pid,
			Name:        strings.ToValidUTF8(p.Name, "\uFFFD"),
			CPUPercent:  p.CPUPercent,
			MemoryBytes: p.MemoryBytes,
		})
	}
	return records
}
