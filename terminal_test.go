package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"kilomon/internal/monitor"
)

// newTestTerminal builds a Terminal without a bubbletea program, so only the
// Input half can be exercised.
func newTestTerminal() *Terminal {
	return &Terminal{
		events: make(chan monitor.InputEvent, EventBuffer),
		done:   make(chan struct{}),
	}
}

func TestTerminal_PollTimesOut(t *testing.T) {
	term := newTestTerminal()

	start := time.Now()
	ready, err := term.Poll(context.Background(), 20*time.Millisecond)
	if err != nil {
		t.Fatalf("Poll() error = %v", err)
	}
	if ready {
		t.Error("Poll() = true with no input")
	}
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Errorf("Poll() returned after %v, before the timeout", elapsed)
	}
}

func TestTerminal_PollThenRead(t *testing.T) {
	term := newTestTerminal()
	term.events <- monitor.Key("s")

	ready, err := term.Poll(context.Background(), time.Second)
	if err != nil || !ready {
		t.Fatalf("Poll() = (%v, %v), want (true, nil)", ready, err)
	}

	// a second poll reports the same pending event without consuming more
	term.events <- monitor.Key("q")
	if ready, _ := term.Poll(context.Background(), time.Second); !ready {
		t.Fatal("Poll() lost the pending event")
	}

	ev, err := term.Read()
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if ev != monitor.Key("s") {
		t.Errorf("Read() = %+v, want s", ev)
	}

	ev, err = term.Read()
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if ev != monitor.Key("q") {
		t.Errorf("Read() = %+v, want q", ev)
	}
}

func TestTerminal_PollStopsOnCancel(t *testing.T) {
	term := newTestTerminal()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ready, err := term.Poll(ctx, time.Hour)
	if err != nil || ready {
		t.Errorf("Poll() = (%v, %v), want (false, nil)", ready, err)
	}
}

func TestTerminal_ClosedProgram(t *testing.T) {
	term := newTestTerminal()
	close(term.done)

	ready, err := term.Poll(context.Background(), time.Hour)
	if err != nil || ready {
		t.Errorf("Poll() = (%v, %v), want (false, nil)", ready, err)
	}
	if _, err := term.Read(); !errors.Is(err, errTerminalClosed) {
		t.Errorf("Read() error = %v, want errTerminalClosed", err)
	}
}
