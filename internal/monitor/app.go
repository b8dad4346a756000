package monitor

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"time"
)

// State is everything the renderer needs to draw a frame.
type State struct {
	Records  []ProcessRecord // ordered by SortKey
	Selected Selection
	SortKey  SortKey
	Running  bool
}

// Clone returns a copy of s that shares no memory with it.
func (s State) Clone() State {
	s.Records = slices.Clone(s.Records)
	if s.Records == nil {
		s.Records = []ProcessRecord{}
	}
	return s
}

// App owns the application state and runs the event loop.
type App struct {
	state     State
	source    Source
	router    *Router
	scheduler *Scheduler
	now       func() time.Time
	logger    *slog.Logger
}

// Option configures an App.
type Option func(*App)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(a *App) { a.now = now }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(a *App) { a.logger = logger }
}

// NewApp creates an App and takes the first snapshot so the first frame has
// data.
func NewApp(ctx context.Context, source Source, opts ...Option) *App {
	a := &App{
		state: State{
			Records: []ProcessRecord{},
			SortKey: DefaultSortKey,
			Running: true,
		},
		source: source,
		router: NewRouter(DefaultKeyMap, DebounceWindow),
		now:    time.Now,
		logger: slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.Refresh(ctx)
	a.scheduler = NewScheduler(RefreshInterval, a.now())
	return a
}

// Snapshot returns a copy of the current state for rendering.
func (a *App) Snapshot() State {
	return a.state.Clone()
}

// Running reports whether the loop should keep going.
func (a *App) Running() bool {
	return a.state.Running
}

// Refresh re-enumerates processes and replaces the record list. On an
// enumeration error the previous list is kept and the next tick retries.
func (a *App) Refresh(ctx context.Context) {
	raw, err := a.source.Enumerate(ctx)
	if err != nil {
		a.logger.Warn("process enumeration failed", "error", err)
		return
	}
	records := BuildSnapshot(raw)
	SortRecords(records, a.state.SortKey)
	a.state.Records = records
	a.state.Selected = a.state.Selected.Clamp(len(records))
	a.logger.Debug("refreshed process list", "count", len(records), "sort", a.state.SortKey.String())
}

// ToggleSort advances to the next sort key and re-sorts.
func (a *App) ToggleSort() {
	a.state.SortKey = a.state.SortKey.Next()
	SortRecords(a.state.Records, a.state.SortKey)
}

// SelectNext moves the selection down one row.
func (a *App) SelectNext() {
	a.state.Selected = a.state.Selected.Next(len(a.state.Records))
}

// SelectPrevious moves the selection up one row.
func (a *App) SelectPrevious() {
	a.state.Selected = a.state.Selected.Previous(len(a.state.Records))
}

// KillSelected asks the source to terminate the selected process.
func (a *App) KillSelected(ctx context.Context) {
	pid, sent, err := KillSelected(ctx, a.state, a.source)
	switch {
	case err != nil:
		a.logger.Warn("kill request failed", "pid", pid, "error", err)
	case sent:
		a.logger.Info("kill requested", "pid", pid)
	}
}

// Quit stops the loop after the current iteration.
func (a *App) Quit() {
	a.state.Running = false
}

// Dispatch applies cmd to the state.
func (a *App) Dispatch(ctx context.Context, cmd Command) {
	if !a.state.Running {
		return
	}
	switch cmd {
	case CmdQuit:
		a.Quit()
	case CmdSelectNext:
		a.SelectNext()
	case CmdSelectPrevious:
		a.SelectPrevious()
	case CmdKill:
		a.KillSelected(ctx)
	case CmdToggleSort:
		a.ToggleSort()
	case CmdNone:
	}
}

// HandleEvent routes one raw event and dispatches the resulting command.
func (a *App) HandleEvent(ctx context.Context, ev InputEvent) Command {
	cmd := a.router.Route(ev, a.now())
	a.Dispatch(ctx, cmd)
	return cmd
}

// Step runs one loop iteration: render, wait for input until the next
// refresh is due, handle the event, then refresh if the interval elapsed.
func (a *App) Step(ctx context.Context, in Input, out Renderer) error {
	out.Render(a.Snapshot())

	ready, err := in.Poll(ctx, a.scheduler.Remaining(a.now()))
	if err != nil {
		return fmt.Errorf("poll input: %w", err)
	}
	if ready {
		ev, err := in.Read()
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		a.HandleEvent(ctx, ev)
	}

	if ctx.Err() != nil {
		a.Quit()
	}
	if !a.state.Running {
		return nil
	}

	if now := a.now(); a.scheduler.Due(now) {
		a.Refresh(ctx)
		a.scheduler.Reset(a.now())
	}
	return nil
}

// Run loops until a quit command arrives, ctx is cancelled, or input fails.
func (a *App) Run(ctx context.Context, in Input, out Renderer) error {
	a.logger.Info("monitor started", "interval", RefreshInterval.String())
	for a.state.Running {
		if err := a.Step(ctx, in, out); err != nil {
			return err
		}
	}
	a.logger.Info("monitor stopped")
	return nil
}
