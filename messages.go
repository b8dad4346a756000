package main

import "kilomon/internal/monitor"

// TUI messages for the Elm architecture

// frameMsg carries the state the event loop wants drawn
type frameMsg struct {
	state monitor.State
}

// shutdownMsg asks the program to leave the alternate screen and exit
type shutdownMsg struct{}
