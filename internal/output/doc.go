// Package output renders the human-readable run summary.
//
// One line per notification attempt (OK / FAIL / SKIP with the task ID
// and either the task name or the failure reason) followed by a final
// tally. Styling uses lipgloss, which degrades to plain text when
// stdout is not a terminal.
package output
