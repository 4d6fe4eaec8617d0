package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/sachajw/pre-commit-hook-asana/internal/asana"
	"github.com/sachajw/pre-commit-hook-asana/internal/gitctx"
	"github.com/sachajw/pre-commit-hook-asana/internal/seen"
)

// Commenter is the slice of the Asana client the dispatcher needs.
type Commenter interface {
	AddComment(ctx context.Context, taskID, text string) error
	GetTaskName(ctx context.Context, taskID string) (string, error)
}

// Result is the outcome of one notification attempt.
type Result struct {
	TaskID string
	// TaskName is the task's display name when it could be fetched.
	TaskName string
	// Skipped is true when the ledger already had this (commit, task)
	// pair and no request was made.
	Skipped bool
	Err     error
}

// OK reports whether a comment was actually delivered.
func (r Result) OK() bool {
	return r.Err == nil && !r.Skipped
}

// Dispatcher posts one comment per task ID.
type Dispatcher struct {
	Client Commenter
	Ledger *seen.Ledger
	// Retry enables one immediate retry on transient failures.
	Retry bool
	// Force bypasses the already-notified ledger.
	Force bool
	// DryRun skips the API calls entirely.
	DryRun bool
}

// Dispatch notifies every task in taskIDs about the commit, in order.
// Individual failures are recorded in the returned results; they never
// stop the loop.
func (d *Dispatcher) Dispatch(ctx context.Context, taskIDs []string, commit gitctx.CommitInfo, linkText string) []Result {
	text := CommentText(commit, linkText)

	results := make([]Result, 0, len(taskIDs))
	for _, taskID := range taskIDs {
		results = append(results, d.dispatchOne(ctx, taskID, commit, text))
	}
	return results
}

func (d *Dispatcher) dispatchOne(ctx context.Context, taskID string, commit gitctx.CommitInfo, text string) Result {
	res := Result{TaskID: taskID}

	if !d.Force && d.Ledger != nil && d.Ledger.Has(commit.Hash, taskID) {
		res.Skipped = true
		return res
	}

	if d.DryRun {
		return res
	}

	// Best effort: a name makes the summary line nicer, but a lookup
	// failure must not count against the dispatch itself.
	if name, err := d.Client.GetTaskName(ctx, taskID); err == nil {
		res.TaskName = name
	}

	err := d.Client.AddComment(ctx, taskID, text)
	if err != nil && d.Retry && asana.IsTransient(err) {
		err = d.Client.AddComment(ctx, taskID, text)
	}
	if err != nil {
		res.Err = err
		return res
	}

	if d.Ledger != nil {
		// The comment went through; a ledger write failure only risks
		// a duplicate next run.
		_ = d.Ledger.Record(commit.Hash, taskID)
	}
	return res
}

// CommentText builds the story body posted to each task.
func CommentText(commit gitctx.CommitInfo, linkText string) string {
	var b strings.Builder
	b.WriteString("Git commit registered:\n\n")
	fmt.Fprintf(&b, "Commit: %s\n", commit.ShortHash())
	fmt.Fprintf(&b, "Author: %s\n", commit.Author)
	fmt.Fprintf(&b, "Message: %s\n", commit.Subject())
	if strings.Contains(linkText, "://") {
		fmt.Fprintf(&b, "Link: %s\n", linkText)
	} else if linkText != "" {
		fmt.Fprintf(&b, "Reference: %s\n", linkText)
	}
	return b.String()
}

// AllFailed reports whether every attempted notification failed. Runs
// where nothing was attempted (no references, or everything skipped)
// are not failures.
func AllFailed(results []Result) bool {
	attempted, failed := 0, 0
	for _, r := range results {
		if r.Skipped {
			continue
		}
		attempted++
		if r.Err != nil {
			failed++
		}
	}
	return attempted > 0 && failed == attempted
}
