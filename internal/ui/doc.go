// Package ui contains the Bubble Tea program that drives the incident form.
// The Model type only orchestrates messages; the form itself lives in
// internal/state and is mutated exclusively from Update.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function.
//   - Key presses go through one of two binding tables (keys.go): the Normal
//     table moves focus, selection and fields, and starts submissions; the
//     Editing table edits the active field. While a submission is outstanding
//     every key except ctrl+c is dropped.
//   - A submission runs as a tea.Cmd on the command bus (internal/ui/command)
//     under a deadline and comes back as a submitResultMsg.
//
// Target list:
//   - A backend.Loader fetches pages off the loop. Its events are folded into
//     the form by the data dispatcher; events that arrive while a submission
//     is outstanding are held until the result has been applied.
//
// Rendering:
//   - View reads a state.Snapshot and never mutates the form. The only state
//     it keeps is the list scroll offset.
package ui
