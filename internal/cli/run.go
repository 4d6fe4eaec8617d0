package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/sachajw/pre-commit-hook-asana/internal/asana"
	"github.com/sachajw/pre-commit-hook-asana/internal/config"
	"github.com/sachajw/pre-commit-hook-asana/internal/gitctx"
	"github.com/sachajw/pre-commit-hook-asana/internal/link"
	"github.com/sachajw/pre-commit-hook-asana/internal/notify"
	"github.com/sachajw/pre-commit-hook-asana/internal/output"
	"github.com/sachajw/pre-commit-hook-asana/internal/seen"
	"github.com/sachajw/pre-commit-hook-asana/internal/task"
)

// Shared run flags
var (
	flagRepo           string
	flagDryRun         bool
	flagForce          bool
	flagVerbose        bool
	flagAPIURL         string
	flagTimeoutSeconds int
	flagRemote         string
)

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagRepo, "repo", ".", "Path inside the git repository to operate on")
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Resolve everything but send no API requests")
	cmd.Flags().BoolVar(&flagForce, "force", false, "Notify even if this commit/task pair was already recorded")
	cmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print extra diagnostics")
	cmd.Flags().StringVar(&flagAPIURL, "api-url", "", "Asana API base URL")
	cmd.Flags().IntVar(&flagTimeoutSeconds, "timeout-seconds", 0, "Per-request timeout in seconds")
	cmd.Flags().StringVar(&flagRemote, "remote", "", "Git remote used to build the commit link")
}

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagAPIURL != "" {
		m["apiURL"] = flagAPIURL
	}
	if flagTimeoutSeconds > 0 {
		m["timeoutSeconds"] = fmt.Sprintf("%d", flagTimeoutSeconds)
	}
	if flagRemote != "" {
		m["remoteName"] = flagRemote
	}
	return m
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Scan the latest commit and notify referenced Asana tasks",
	RunE:  runNotify,
}

func runNotify(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(buildOverrides())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		exitCode = ExitSetupError
		return nil
	}

	token, err := config.ResolveToken(flagRepo)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitSetupError
		return nil
	}

	repo, err := gitctx.Open(flagRepo)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitSetupError
		return nil
	}

	commit, err := repo.Head()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading latest commit: %v\n", err)
		exitCode = ExitSetupError
		return nil
	}

	refs := task.Extract(commit.Message)
	if len(refs) == 0 {
		fmt.Fprintln(os.Stdout, "No Asana task references found in commit message.")
		return nil
	}

	linkText := commitLink(repo, cfg.RemoteName, commit)
	if flagVerbose {
		fmt.Fprintf(os.Stderr, "commit %s: %d reference(s), link %q\n", commit.ShortHash(), len(refs), linkText)
	}

	ledger, err := seen.New(cfg.Record.Enabled, cfg.Record.Dir, cfg.Record.TTLSeconds)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: notification ledger unavailable: %v\n", err)
		ledger, _ = seen.New(false, "", 0)
	}

	client := asana.NewClient(token, cfg.APIURL, time.Duration(cfg.TimeoutSeconds)*time.Second)
	dispatcher := &notify.Dispatcher{
		Client: client,
		Ledger: ledger,
		Retry:  cfg.RetryTransient,
		Force:  flagForce,
		DryRun: flagDryRun,
	}

	results := dispatcher.Dispatch(context.Background(), refs, commit, linkText)

	if err := output.WriteSummary(os.Stdout, commit, results); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing summary: %v\n", err)
	}
	if notify.AllFailed(results) {
		exitCode = ExitAllFailed
	}
	return nil
}

// commitLink resolves the remote and builds the link text, degrading to
// a plain hash reference when no usable remote exists.
func commitLink(repo *gitctx.Repo, remoteName string, commit gitctx.CommitInfo) string {
	remoteURL, err := repo.RemoteURL(remoteName)
	if err != nil {
		if flagVerbose && !errors.Is(err, gitctx.ErrNoRemote) {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
		return link.CommitURL(nil, commit.Hash)
	}
	return link.CommitURL(link.Parse(remoteURL), commit.Hash)
}

func init() {
	addRunFlags(rootCmd)
	addRunFlags(runCmd)
}
