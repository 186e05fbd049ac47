// Package ui contains the Bubble Tea program behind typelog: a text field
// whose every change is appended to a log and shown in a list below it.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages. Each tea.Msg
//     type is routed through a typed handler registry; anything without a
//     handler goes to the text field.
//   - A change in the text field calls Screen.OnTextChanged, which appends to
//     the log and republishes it on the latest-value channel.
//   - Channel deliveries are queued on the command bus rather than run
//     inline. finishUpdate drains the bus before Update returns, so the
//     notice and the list redraw land in the same frame as the keystroke.
//     Publishes from other goroutines wake the loop with a DrainMsg.
//
// State ownership:
//   - The log lives in internal/state and is only ever appended to.
//   - The list adapter (internal/ui/adapter) holds the log by reference and
//     renders rows from it; it is told to redraw, never handed new data.
//   - Cursor, viewport and type-ahead jump state live in
//     internal/ui/state.List.
//
// Replay:
//   - A backend.Feeder streams lines from a file; each line replaces the
//     text field content exactly as if it had been typed.
package ui
