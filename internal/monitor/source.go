package monitor

import (
	"context"
	"time"
)

// Terminator asks the operating system to end a process.
type Terminator interface {
	// Terminate is best-effort: a nil error only means the request was sent.
	Terminate(ctx context.Context, pid int32) error
}

// Source enumerates live processes and can terminate them.
type Source interface {
	Terminator

	// Enumerate returns the current process table keyed by PID.
	Enumerate(ctx context.Context) (map[int32]RawProcess, error)
}

// Input is the terminal's event stream.
type Input interface {
	// Poll waits up to timeout for an event to become readable. It returns
	// false without error on timeout or when ctx is done.
	Poll(ctx context.Context, timeout time.Duration) (bool, error)

	// Read returns the next event. It is only called after Poll reported one.
	Read() (InputEvent, error)
}

// Renderer draws a state. Implementations must not keep or mutate the slices
// inside the state they are given past the call.
type Renderer interface {
	Render(State)
}
