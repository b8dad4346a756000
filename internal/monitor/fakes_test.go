package monitor

import (
	"context"
	"maps"
	"time"
)

type fakeSource struct {
	procs        map[int32]RawProcess
	err          error
	enumerations int
	terminated   []int32
	terminateErr error
}

func (f *fakeSource) Enumerate(ctx context.Context) (map[int32]RawProcess, error) {
	f.enumerations++
	if f.err != nil {
		return nil, f.err
	}
	return maps.Clone(f.procs), nil
}

func (f *fakeSource) Terminate(ctx context.Context, pid int32) error {
	f.terminated = append(f.terminated, pid)
	return f.terminateErr
}

type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

// inputStep is one scripted Poll result. A nil event means the poll times
// out, advancing the clock by the full timeout; otherwise the clock moves by
// wait and the event becomes readable.
type inputStep struct {
	wait  time.Duration
	event *InputEvent
}

func keyStep(wait time.Duration, name string) inputStep {
	ev := Key(name)
	return inputStep{wait: wait, event: &ev}
}

func timeoutStep() inputStep {
	return inputStep{}
}

type scriptedInput struct {
	clock    *fakeClock
	steps    []inputStep
	timeouts []time.Duration
	pending  *InputEvent
	pollErr  error
}

func (s *scriptedInput) Poll(ctx context.Context, timeout time.Duration) (bool, error) {
	s.timeouts = append(s.timeouts, timeout)
	if s.pollErr != nil {
		return false, s.pollErr
	}
	if len(s.steps) == 0 {
		// Out of script: behave like an operator pressing quit.
		ev := Key("q")
		s.clock.Advance(time.Second)
		s.pending = &ev
		return true, nil
	}
	step := s.steps[0]
	s.steps = s.steps[1:]
	if step.event == nil {
		s.clock.Advance(timeout)
		return false, nil
	}
	s.clock.Advance(step.wait)
	s.pending = step.event
	return true, nil
}

func (s *scriptedInput) Read() (InputEvent, error) {
	ev := *s.pending
	s.pending = nil
	return ev, nil
}

type recordingRenderer struct {
	frames []State
}

func (r *recordingRenderer) Render(st State) {
	r.frames = append(r.frames, st)
}

func twoProcesses() map[int32]RawProcess {
	return map[int32]RawProcess{
		1: {Name: "a", CPUPercent: 5, MemoryBytes: 1_000_000},
		2: {Name: "b", CPUPercent: 80, MemoryBytes: 500_000},
	}
}

func pids(records []ProcessRecord) []int32 {
	out := make([]int32, len(records))
	for i, r := range records {
		out[i] = r.PID
	}
	return out
}
