// Package cli wires together the Cobra command tree for the asana-hook
// binary.
//
// The root command with no arguments runs the notify flow itself, which
// is what .git/hooks/post-commit invokes. Subcommands manage the hook
// file (hook install/uninstall), the settings file (config), and the
// already-notified ledger (ledger), and print the version.
package cli
