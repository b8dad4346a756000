package monitor

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"golang.org/x/time/rate"
)

// DebounceWindow is the minimum spacing between two accepted input events.
const DebounceWindow = 50 * time.Millisecond

// EventKind tells key presses apart from mouse events.
type EventKind int

const (
	KeyEvent EventKind = iota
	MouseEvent
)

// ScrollDirection is the wheel direction of a mouse event.
type ScrollDirection int

const (
	ScrollNone ScrollDirection = iota
	ScrollUp
	ScrollDown
)

// InputEvent is one raw event read from the terminal.
type InputEvent struct {
	Kind   EventKind
	Key    string // key name as bubbletea prints it, e.g. "q", "down", "ctrl+c"
	Scroll ScrollDirection
}

// Key returns a key press event.
func Key(name string) InputEvent {
	return InputEvent{Kind: KeyEvent, Key: name}
}

// Mouse returns a mouse event scrolling in dir. ScrollNone stands for clicks
// and motion.
func Mouse(dir ScrollDirection) InputEvent {
	return InputEvent{Kind: MouseEvent, Scroll: dir}
}

// String returns the key name so events can be matched with key.Matches.
// Mouse events have no key name.
func (e InputEvent) String() string {
	if e.Kind != KeyEvent {
		return ""
	}
	return e.Key
}

// Command is the action an input event maps to.
type Command int

const (
	CmdNone Command = iota
	CmdQuit
	CmdSelectNext
	CmdSelectPrevious
	CmdKill
	CmdToggleSort
)

func (c Command) String() string {
	switch c {
	case CmdNone:
		return "none"
	case CmdQuit:
		return "quit"
	case CmdSelectNext:
		return "select_next"
	case CmdSelectPrevious:
		return "select_previous"
	case CmdKill:
		return "kill"
	case CmdToggleSort:
		return "toggle_sort"
	default:
		return "unknown"
	}
}

// Router turns raw input events into commands. Events arriving less than the
// debounce window after the last accepted event are dropped; an accepted
// event restarts the window even when it maps to no command.
type Router struct {
	keys    KeyMap
	limiter *rate.Limiter
}

// NewRouter returns a router using keys and the given debounce window.
func NewRouter(keys KeyMap, window time.Duration) *Router {
	return &Router{
		keys:    keys,
		limiter: rate.NewLimiter(rate.Every(window), 1),
	}
}

// Route passes ev through the debounce gate at time now and classifies it.
// Dropped and unbound events yield CmdNone.
func (r *Router) Route(ev InputEvent, now time.Time) Command {
	if !r.limiter.AllowN(now, 1) {
		return CmdNone
	}
	return r.classify(ev)
}

func (r *Router) classify(ev InputEvent) Command {
	switch ev.Kind {
	case MouseEvent:
		switch ev.Scroll {
		case ScrollDown:
			return CmdSelectNext
		case ScrollUp:
			return CmdSelectPrevious
		}
	case KeyEvent:
		switch {
		case key.Matches(ev, r.keys.Quit):
			return CmdQuit
		case key.Matches(ev, r.keys.Down):
			return CmdSelectNext
		case key.Matches(ev, r.keys.Up):
			return CmdSelectPrevious
		case key.Matches(ev, r.keys.Kill):
			return CmdKill
		case key.Matches(ev, r.keys.Sort):
			return CmdToggleSort
		}
	}
	return CmdNone
}
