// Package procsrc reads the operating system's process table with gopsutil.
package procsrc

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/shirou/gopsutil/v4/process"
	"github.com/sourcegraph/conc/iter"

	"kilomon/internal/monitor"
)

// Source implements monitor.Source on top of gopsutil.
//
// gopsutil caches a process's name inside its handle, so every enumeration
// reads names and memory through fresh handles. Only the CPU baseline is
// carried over: gopsutil computes CPU percentages from the CPU times seen on
// the previous call on the same handle. A baseline is tied to the process's
// create time and dropped when the PID is reused. A process therefore reports
// 0% on the first snapshot it appears in.
type Source struct {
	baselines map[int32]baseline
	logger    *slog.Logger
}

// baseline is the handle whose previous CPU times feed the next percentage.
type baseline struct {
	proc    *process.Process
	created int64 // create time in ms since the epoch
}

// New returns a Source. A nil logger discards output.
func New(logger *slog.Logger) *Source {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Source{
		baselines: make(map[int32]baseline),
		logger:    logger,
	}
}

// carry returns prev when it belongs to the same process as fresh, and a
// new baseline on fresh otherwise.
func carry(prev baseline, fresh *process.Process, created int64, createdErr error) baseline {
	if prev.proc != nil && createdErr == nil && prev.created == created {
		return prev
	}
	return baseline{proc: fresh, created: created}
}

type sample struct {
	pid  int32
	raw  monitor.RawProcess
	base baseline
	ok   bool
}

// Enumerate returns every live process keyed by PID. Processes that exit
// while being sampled are left out.
func (s *Source) Enumerate(ctx context.Context) (map[int32]monitor.RawProcess, error) {
	pids, err := process.PidsWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pids: %w", err)
	}

	prev := s.baselines
	samples := iter.Map(pids, func(pid *int32) sample {
		return sampleProcess(ctx, *pid, prev[*pid])
	})

	out := make(map[int32]monitor.RawProcess, len(samples))
	live := make(map[int32]baseline, len(samples))
	for _, smp := range samples {
		if !smp.ok {
			continue
		}
		out[smp.pid] = smp.raw
		live[smp.pid] = smp.base
	}
	if dropped := len(prev) - len(live); dropped > 0 {
		s.logger.Debug("processes gone since last enumeration", "count", dropped)
	}
	s.baselines = live
	return out, nil
}

func sampleProcess(ctx context.Context, pid int32, prev baseline) sample {
	p, err := process.NewProcessWithContext(ctx, pid)
	if err != nil {
		return sample{}
	}
	name, err := p.NameWithContext(ctx)
	if err != nil {
		return sample{}
	}
	created, createdErr := p.CreateTimeWithContext(ctx)
	base := carry(prev, p, created, createdErr)

	raw := monitor.RawProcess{Name: name}
	if cpu, err := base.proc.PercentWithContext(ctx, 0); err == nil {
		raw.CPUPercent = cpu
	}
	if mem, err := p.MemoryInfoWithContext(ctx); err == nil && mem != nil {
		raw.MemoryBytes = mem.RSS
	}
	return sample{pid: pid, raw: raw, base: base, ok: true}
}

// Terminate sends SIGKILL (TerminateProcess on Windows) to pid. Only
// processes seen by the last enumeration can be terminated.
func (s *Source) Terminate(ctx context.Context, pid int32) error {
	base, ok := s.baselines[pid]
	if !ok {
		return fmt.Errorf("process %d: %w", pid, process.ErrorProcessNotRunning)
	}
	if err := base.proc.KillWithContext(ctx); err != nil {
		return fmt.Errorf("kill process %d: %w", pid, err)
	}
	s.logger.Debug("sent kill signal", "pid", pid)
	return nil
}
