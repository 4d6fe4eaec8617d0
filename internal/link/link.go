package link

import (
	"regexp"
	"strings"
)

// Provider identifies a recognized git hosting service.
type Provider int

const (
	ProviderUnknown Provider = iota
	ProviderGitHub
	ProviderGitLab
)

// String returns the provider name for display.
func (p Provider) String() string {
	switch p {
	case ProviderGitHub:
		return "github"
	case ProviderGitLab:
		return "gitlab"
	default:
		return "unknown"
	}
}

// Remote holds the normalized web form of a git remote URL.
type Remote struct {
	Provider Provider
	// WebURL is the https base of the repository without a trailing
	// slash or .git suffix, e.g. "https://github.com/owner/repo".
	WebURL string
}

var (
	httpsRemoteRe = regexp.MustCompile(`^(?:https?|git)://([^/]+)/(.+)$`)
	sshRemoteRe   = regexp.MustCompile(`^(?:ssh://)?[^@]+@([^:/]+)[:/](.+)$`)
)

// Parse normalizes a remote URL and detects its hosting provider.
// Returns nil for URLs that match neither the https nor the ssh form.
func Parse(remoteURL string) *Remote {
	remoteURL = strings.TrimSpace(remoteURL)
	remoteURL = strings.TrimSuffix(remoteURL, ".git")
	remoteURL = strings.TrimSuffix(remoteURL, "/")

	var host, path string
	if m := httpsRemoteRe.FindStringSubmatch(remoteURL); len(m) == 3 {
		host, path = m[1], m[2]
	} else if m := sshRemoteRe.FindStringSubmatch(remoteURL); len(m) == 3 {
		host, path = m[1], m[2]
	} else {
		return nil
	}

	// Strip credentials and port from the host before matching.
	if at := strings.LastIndex(host, "@"); at != -1 {
		host = host[at+1:]
	}
	if colon := strings.Index(host, ":"); colon != -1 {
		host = host[:colon]
	}

	return &Remote{
		Provider: detectProvider(host),
		WebURL:   "https://" + host + "/" + path,
	}
}

func detectProvider(host string) Provider {
	switch strings.ToLower(host) {
	case "github.com", "www.github.com":
		return ProviderGitHub
	case "gitlab.com", "www.gitlab.com":
		return ProviderGitLab
	default:
		return ProviderUnknown
	}
}

// CommitURL builds the link text for a commit. Recognized providers get
// a clickable URL; everything else falls back to the bare hash so the
// comment stays informative.
func CommitURL(remote *Remote, hash string) string {
	if remote == nil || remote.Provider == ProviderUnknown {
		return "commit " + hash
	}
	return remote.WebURL + "/commit/" + hash
}
