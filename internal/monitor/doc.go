// Package monitor implements the state machine behind kilomon.
//
// The package owns everything that decides what the process table shows:
//
//   - record.go: ProcessRecord and the snapshot builder
//   - sort.go: SortKey and the sort engine
//   - selection.go: the selected-row navigator
//   - input.go, keys.go: raw input events, commands and the debounced router
//   - scheduler.go: the periodic refresh scheduler
//   - control.go: killing the selected process
//   - app.go: application state, command dispatch and the event loop
//
// Terminal I/O and the operating system are reached only through the
// [Source], [Input] and [Renderer] interfaces, so the whole loop can be driven
// from tests with fakes and an injected clock.
//
// The loop is single threaded. Each iteration renders once, then blocks in
// [Input.Poll] for at most the time left until the next refresh, so input and
// refresh share one wait and neither starves the other.
package monitor
