// Package main implements kilomon, a terminal process monitor.
//
// kilomon provides an interactive terminal interface to:
//   - View every running process with its PID, name, CPU and memory use
//   - Sort the table by CPU, memory, PID or name
//   - Move through the table with the arrow keys or the mouse wheel
//   - Kill the selected process
//
// The table is refreshed once a second.
//
// # Architecture
//
// The state machine lives in internal/monitor and runs a single-threaded
// event loop. This package hosts it in a terminal:
//
//   - main.go: cobra root command, wiring of config, logging, source and loop
//   - terminal.go: Terminal, which runs the Bubbletea program and implements
//     monitor.Input and monitor.Renderer
//   - model.go: Bubbletea model drawing frames and forwarding input
//   - styles.go: Lipgloss styles for terminal rendering
//   - messages.go: TUI message types for the Elm architecture
//   - helpers.go: Utility functions for cell formatting
//
// Processes are read through internal/procsrc (gopsutil). Diagnostics go to
// the JSON log configured by internal/config and internal/logging.
package main
