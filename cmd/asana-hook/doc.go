// Asana-hook registers git commits on the Asana tasks they reference.
//
// Installed as a post-commit hook, it reads the latest commit from the
// repository, extracts task references from the commit message
// (#<id>, asana:<id>, asana/<id>), and posts a comment with a link back
// to the commit on each referenced task.
//
// Usage:
//
//	asana-hook                 # notify tasks for the latest commit
//	asana-hook hook install    # install into .git/hooks/post-commit
//	asana-hook config init     # write a default config file
//	asana-hook ledger stats    # inspect the already-notified ledger
//
// The API token comes from the ASANA_API_TOKEN environment variable or
// the asana.token git config key.
package main
