package monitor

import (
	"errors"
	"testing"
)

func TestSelection_Next(t *testing.T) {
	tests := []struct {
		name string
		from Selection
		n    int
		want int
	}{
		{"no selection picks first row", Selection{}, 5, 0},
		{"no selection on empty list picks row 0", Selection{}, 0, 0},
		{"moves down", SelectIndex(1), 5, 2},
		{"wraps from last row", SelectIndex(4), 5, 0},
		{"wraps from past the end", SelectIndex(9), 5, 0},
		{"empty list stays at 0", SelectIndex(0), 0, 0},
		{"single row stays put", SelectIndex(0), 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.from.Next(tt.n).Index()
			if !ok {
				t.Fatal("Next() left no selection")
			}
			if got != tt.want {
				t.Errorf("Next(%d) = %d, want %d", tt.n, got, tt.want)
			}
		})
	}
}

func TestSelection_Previous(t *testing.T) {
	tests := []struct {
		name string
		from Selection
		n    int
		want int
	}{
		{"no selection picks first row", Selection{}, 5, 0},
		{"no selection on empty list picks row 0", Selection{}, 0, 0},
		{"moves up", SelectIndex(3), 5, 2},
		{"wraps from first row", SelectIndex(0), 5, 4},
		{"empty list stays at 0", SelectIndex(0), 0, 0},
		{"past the end steps back one", SelectIndex(9), 5, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.from.Previous(tt.n).Index()
			if !ok {
				t.Fatal("Previous() left no selection")
			}
			if got != tt.want {
				t.Errorf("Previous(%d) = %d, want %d", tt.n, got, tt.want)
			}
		})
	}
}

func TestSelection_NextPreviousAreInverse(t *testing.T) {
	for n := 2; n <= 6; n++ {
		for start := range n {
			s := SelectIndex(start)

			there, _ := s.Next(n).Previous(n).Index()
			if there != start {
				t.Errorf("n=%d: Next then Previous from %d = %d", n, start, there)
			}

			back, _ := s.Previous(n).Next(n).Index()
			if back != start {
				t.Errorf("n=%d: Previous then Next from %d = %d", n, start, back)
			}
		}
	}
}

func TestSelection_Scenario(t *testing.T) {
	records := BuildSnapshot(twoProcesses())
	SortRecords(records, SortByCPU)

	s := SelectIndex(0)
	if rec, _ := s.Resolve(records); rec.PID != 2 {
		t.Fatalf("row 0 = pid %d, want 2", rec.PID)
	}

	s = s.Next(len(records))
	if rec, _ := s.Resolve(records); rec.PID != 1 {
		t.Errorf("after Next row = pid %d, want 1", rec.PID)
	}

	s = s.Next(len(records))
	if i, _ := s.Index(); i != 0 {
		t.Errorf("after second Next index = %d, want 0", i)
	}
}

func TestSelection_Clamp(t *testing.T) {
	tests := []struct {
		name      string
		from      Selection
		n         int
		wantIndex int
		wantOK    bool
	}{
		{"in range unchanged", SelectIndex(2), 5, 2, true},
		{"past end moves to last row", SelectIndex(7), 5, 4, true},
		{"empty list clears", SelectIndex(3), 0, 0, false},
		{"no selection stays empty", Selection{}, 5, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i, ok := tt.from.Clamp(tt.n).Index()
			if ok != tt.wantOK || (ok && i != tt.wantIndex) {
				t.Errorf("Clamp(%d) = (%d, %v), want (%d, %v)", tt.n, i, ok, tt.wantIndex, tt.wantOK)
			}
		})
	}
}

func TestSelection_Resolve(t *testing.T) {
	records := []ProcessRecord{{PID: 10}, {PID: 20}}

	if _, err := (Selection{}).Resolve(records); !errors.Is(err, ErrNoSelection) {
		t.Errorf("no selection: err = %v, want ErrNoSelection", err)
	}
	if _, err := SelectIndex(2).Resolve(records); !errors.Is(err, ErrNoSelection) {
		t.Errorf("stale index: err = %v, want ErrNoSelection", err)
	}
	if _, err := SelectIndex(0).Resolve(nil); !errors.Is(err, ErrNoSelection) {
		t.Errorf("empty list: err = %v, want ErrNoSelection", err)
	}

	rec, err := SelectIndex(1).Resolve(records)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if rec.PID != 20 {
		t.Errorf("Resolve() = pid %d, want 20", rec.PID)
	}
}
