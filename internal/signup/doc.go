// Package signup is the form submission state machine.
//
// Allowed here:
// - field values, submission lifecycle and per-field error state (Form)
// - pure client-side validation over that state
// - submission gating, payload capture and outcome dispatch (Controller)
//
// Not allowed here:
// - rendering or Bubble Tea types; the TUI drives this package through
//   plain method calls so it stays testable without a terminal
// - HTTP details; the network lives behind the Submitter interface
package signup
