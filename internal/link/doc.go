// Package link derives a browsable commit URL from a git remote URL.
//
// SSH-style and HTTPS-style remote URLs are normalized to an https base
// and matched against a small allow-list of hosting providers. Commits
// on unrecognized providers (or repositories with no remote at all) get
// a plain-text "commit <hash>" reference instead of a hyperlink.
package link
