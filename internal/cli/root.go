package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

// Exit codes. Partial dispatch success still exits 0; only a run where
// every attempted notification failed (or setup never completed) is
// reported as a failure to the hook framework.
const (
	ExitSuccess    = 0
	ExitAllFailed  = 1
	ExitUsageError = 2
	ExitSetupError = 3
)

var rootCmd = &cobra.Command{
	Use:   "asana-hook",
	Short: "Post-commit hook that registers commits on referenced Asana tasks",
	Long: "asana-hook scans the latest commit message for Asana task references\n" +
		"(#<id>, asana:<id>, asana/<id>) and posts a comment with a link back to\n" +
		"the commit on each referenced task.",
	RunE: runNotify,
}

// Run executes the root command and returns an exit code.
func Run() int {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(hookCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(ledgerCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}

	return exitCode
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print asana-hook version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "asana-hook version %s\n", version)
	},
}
