package monitor

import (
	"cmp"
	"slices"
	"strings"
)

// SortKey selects the column the process table is ordered by.
type SortKey int

const (
	SortByPID SortKey = iota
	SortByName
	SortByCPU
	SortByMemory
)

// DefaultSortKey is the ordering a new session starts with.
const DefaultSortKey = SortByMemory

// String returns the column label for the key.
func (k SortKey) String() string {
	switch k {
	case SortByPID:
		return "PID"
	case SortByName:
		return "Name"
	case SortByCPU:
		return "CPU"
	case SortByMemory:
		return "Memory"
	default:
		return "unknown"
	}
}

// Next returns the key that follows k in the toggle cycle
// CPU -> Memory -> PID -> Name -> CPU.
func (k SortKey) Next() SortKey {
	switch k {
	case SortByCPU:
		return SortByMemory
	case SortByMemory:
		return SortByPID
	case SortByPID:
		return SortByName
	default:
		return SortByCPU
	}
}

// Compare orders a before b (negative), after b (positive) or level (zero)
// under key alone. PID, CPU and memory sort descending; names ascending.
func (k SortKey) Compare(a, b ProcessRecord) int {
	switch k {
	case SortByPID:
		return cmp.Compare(b.PID, a.PID)
	case SortByName:
		return strings.Compare(a.Name, b.Name)
	case SortByCPU:
		return cmp.Compare(b.CPUPercent, a.CPUPercent)
	case SortByMemory:
		return cmp.Compare(b.MemoryBytes, a.MemoryBytes)
	default:
		return 0
	}
}

// SortRecords orders records in place by key. Ties fall back to ascending PID
// so that equal rows do not jump around between refreshes.
func SortRecords(records []ProcessRecord, key SortKey) {
	slices.SortStableFunc(records, func(a, b ProcessRecord) int {
		if c := key.Compare(a, b); c != 0 {
			return c
		}
		return cmp.Compare(a.PID, b.PID)
	})
}
