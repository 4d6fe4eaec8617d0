// Package gitctx reads commit metadata from the local git repository.
//
// The post-commit hook receives no arguments, so everything is resolved
// from repository state: the HEAD commit's hash, author, and message,
// plus the configured remote URL used to build a commit link. Reads go
// through go-git, so no git subprocess is needed.
package gitctx
