package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sachajw/pre-commit-hook-asana/internal/config"
	"github.com/sachajw/pre-commit-hook-asana/internal/seen"
)

var ledgerCmd = &cobra.Command{
	Use:   "ledger",
	Short: "Manage the already-notified ledger",
}

var ledgerClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Forget all recorded commit/task notifications",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(nil)
		if err != nil {
			return err
		}
		l, err := seen.New(true, cfg.Record.Dir, cfg.Record.TTLSeconds)
		if err != nil {
			return fmt.Errorf("opening ledger: %w", err)
		}
		if err := l.Clear(); err != nil {
			return fmt.Errorf("clearing ledger: %w", err)
		}
		fmt.Fprintln(os.Stdout, "Ledger cleared.")
		return nil
	},
}

var ledgerStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show ledger statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(nil)
		if err != nil {
			return err
		}
		l, err := seen.New(cfg.Record.Enabled, cfg.Record.Dir, cfg.Record.TTLSeconds)
		if err != nil {
			return fmt.Errorf("opening ledger: %w", err)
		}
		if !l.Enabled() {
			fmt.Fprintln(os.Stdout, "Ledger is disabled.")
			return nil
		}
		stats, err := l.GetStats()
		if err != nil {
			return fmt.Errorf("reading ledger stats: %w", err)
		}
		data, err := json.MarshalIndent(stats, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, string(data))
		return nil
	},
}

func init() {
	ledgerCmd.AddCommand(ledgerClearCmd)
	ledgerCmd.AddCommand(ledgerStatsCmd)
}
