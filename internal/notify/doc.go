// Package notify drives the per-task notification loop.
//
// Given the already-extracted set of task IDs, it builds the comment
// body once per commit and posts it to each task sequentially. Failures
// are captured per task and never abort the remaining dispatches; the
// caller decides the process exit status from the aggregate.
package notify
