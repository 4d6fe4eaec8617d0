// Package seen records which (commit, task) pairs have already been
// commented on.
//
// A post-commit hook can fire more than once for the same commit (a
// manual re-run, or tooling that replays hooks), and Asana happily
// accepts duplicate stories. The ledger stores one small JSON file per
// dispatched pair, keyed by a SHA-256 hash, under the user cache
// directory. Entries expire after a TTL so the directory doesn't grow
// forever.
package seen
