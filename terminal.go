package main

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"kilomon/internal/monitor"
)

// EventBuffer is how many input events may queue up between loop iterations
const EventBuffer = 64

var errTerminalClosed = errors.New("terminal closed")

// Terminal runs the bubbletea program on its own goroutine and exposes it to
// the event loop as monitor.Input and monitor.Renderer. The program owns raw
// mode, the alternate screen and mouse capture.
type Terminal struct {
	program *tea.Program
	events  chan monitor.InputEvent
	pending *monitor.InputEvent
	done    chan struct{}
	err     error
}

// NewTerminal creates a Terminal. Extra options are passed to tea.NewProgram.
func NewTerminal(opts ...tea.ProgramOption) *Terminal {
	events := make(chan monitor.InputEvent, EventBuffer)
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}, opts...)
	return &Terminal{
		program: tea.NewProgram(NewModel(events), opts...),
		events:  events,
		done:    make(chan struct{}),
	}
}

// Start runs the program in the background. onExit is called when the
// program stops, before Done is closed.
func (t *Terminal) Start(onExit func()) {
	go func() {
		_, err := t.program.Run()
		t.err = err
		if onExit != nil {
			onExit()
		}
		close(t.done)
	}()
}

// Poll implements monitor.Input.
func (t *Terminal) Poll(ctx context.Context, timeout time.Duration) (bool, error) {
	if t.pending != nil {
		return true, nil
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case ev := <-t.events:
		t.pending = &ev
		return true, nil
	case <-timer.C:
		return false, nil
	case <-ctx.Done():
		return false, nil
	case <-t.done:
		return false, nil
	}
}

// Read implements monitor.Input.
func (t *Terminal) Read() (monitor.InputEvent, error) {
	if t.pending != nil {
		ev := *t.pending
		t.pending = nil
		return ev, nil
	}
	select {
	case ev := <-t.events:
		return ev, nil
	case <-t.done:
		return monitor.InputEvent{}, errTerminalClosed
	}
}

// Render implements monitor.Renderer. It returns once the program has
// taken the frame, or immediately if the program has exited.
func (t *Terminal) Render(st monitor.State) {
	t.program.Send(frameMsg{state: st})
}

// Close stops the program, restores the terminal and returns the error the
// program exited with, if any.
func (t *Terminal) Close() error {
	t.program.Send(shutdownMsg{})
	<-t.done
	return t.err
}
