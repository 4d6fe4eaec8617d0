package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sachajw/pre-commit-hook-asana/internal/gitctx"
	"github.com/sachajw/pre-commit-hook-asana/internal/notify"
)

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	skipStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// WriteSummary prints one line per notification attempt and a final
// tally.
func WriteSummary(w io.Writer, commit gitctx.CommitInfo, results []notify.Result) error {
	ew := &errWriter{w: w}

	ew.printf("asana-hook — commit %s (%s)\n", commit.ShortHash(), commit.Subject())
	ew.println(strings.Repeat("─", 60))

	var notified, failed, skipped int
	for _, r := range results {
		switch {
		case r.Skipped:
			skipped++
			ew.printf("  %s  %s  %s\n", skipStyle.Render("SKIP"), r.TaskID, dimStyle.Render("already notified"))
		case r.Err != nil:
			failed++
			ew.printf("  %s  %s  %v\n", failStyle.Render("FAIL"), r.TaskID, r.Err)
		default:
			notified++
			detail := "comment added"
			if r.TaskName != "" {
				detail = r.TaskName
			}
			ew.printf("  %s    %s  %s\n", okStyle.Render("OK"), r.TaskID, detail)
		}
	}

	ew.println(strings.Repeat("─", 60))
	ew.println(tally(notified, failed, skipped))
	return ew.err
}

func tally(notified, failed, skipped int) string {
	parts := []string{fmt.Sprintf("%d notified", notified)}
	if failed > 0 {
		parts = append(parts, fmt.Sprintf("%d failed", failed))
	}
	if skipped > 0 {
		parts = append(parts, fmt.Sprintf("%d skipped", skipped))
	}
	return strings.Join(parts, ", ")
}

// errWriter collects the first write error so every print site doesn't
// need its own check.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}
