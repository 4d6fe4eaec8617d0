package gitctx

import (
	"errors"
	"fmt"
	"strings"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// CommitInfo contains the metadata of a single commit.
type CommitInfo struct {
	// Hash is the full commit SHA.
	Hash string
	// Author is the commit author's name.
	Author string
	// Message is the raw commit message, possibly multi-line.
	Message string
}

// ShortHash returns the abbreviated commit hash for display.
func (c CommitInfo) ShortHash() string {
	if len(c.Hash) > 8 {
		return c.Hash[:8]
	}
	return c.Hash
}

// Subject returns the first line of the commit message.
func (c CommitInfo) Subject() string {
	subject, _, _ := strings.Cut(c.Message, "\n")
	return strings.TrimSpace(subject)
}

// ErrNoRemote indicates the repository has no remote configured under
// the requested name.
var ErrNoRemote = errors.New("no remote configured")

// ErrNoCommits indicates the repository exists but has no commits yet.
var ErrNoCommits = errors.New("repository has no commits")

// Repo wraps an opened git repository.
type Repo struct {
	repo *git.Repository
}

// Open opens the repository containing path, walking up parent
// directories the way git itself does.
func Open(path string) (*Repo, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("not a git repository: %w", err)
	}
	return &Repo{repo: repo}, nil
}

// Head returns the metadata of the most recent commit on the current
// branch. Returns ErrNoCommits for a freshly initialized repository.
func (r *Repo) Head() (CommitInfo, error) {
	ref, err := r.repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return CommitInfo{}, ErrNoCommits
		}
		return CommitInfo{}, fmt.Errorf("resolving HEAD: %w", err)
	}

	commit, err := r.repo.CommitObject(ref.Hash())
	if err != nil {
		return CommitInfo{}, fmt.Errorf("reading HEAD commit %s: %w", ref.Hash(), err)
	}

	return CommitInfo{
		Hash:    commit.Hash.String(),
		Author:  commit.Author.Name,
		Message: strings.TrimSpace(commit.Message),
	}, nil
}

// RemoteURL returns the first URL of the named remote, or ErrNoRemote
// if the remote does not exist.
func (r *Repo) RemoteURL(name string) (string, error) {
	remote, err := r.repo.Remote(name)
	if err != nil {
		if errors.Is(err, git.ErrRemoteNotFound) {
			return "", ErrNoRemote
		}
		return "", fmt.Errorf("reading remote %q: %w", name, err)
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", ErrNoRemote
	}
	return urls[0], nil
}

// ConfigValue looks up a key in the repository's git config, e.g.
// section "asana", key "token". Returns "" when unset.
func (r *Repo) ConfigValue(section, key string) (string, error) {
	cfg, err := r.repo.Config()
	if err != nil {
		return "", fmt.Errorf("reading repository config: %w", err)
	}
	return strings.TrimSpace(cfg.Raw.Section(section).Option(key)), nil
}
