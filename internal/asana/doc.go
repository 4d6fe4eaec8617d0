// Package asana provides a minimal Asana REST API client for posting
// commit comments ("stories") to tasks.
//
// The client is constructed with an explicit personal access token; it
// never reads the environment itself. Failures are classified into
// typed errors (AuthError, NotFoundError, TransientError, APIError) so
// the dispatch loop can report each task's outcome and decide whether a
// retry is worthwhile.
package asana
