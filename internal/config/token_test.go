package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// clearTokenEnv isolates the test from any real credentials.
func clearTokenEnv(t *testing.T) {
	t.Helper()
	t.Setenv(TokenEnvVar, "")
	os.Unsetenv(TokenEnvVar)
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
}

func initEmptyRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("PlainInit: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "f.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Worktree: %v", err)
	}
	if _, err := wt.Add("f.txt"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	_, err = wt.Commit("initial", &git.CommitOptions{
		Author: &object.Signature{Name: "t", Email: "t@example.com", When: time.Now()},
	})
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	return dir
}

func TestResolveToken_Env(t *testing.T) {
	clearTokenEnv(t)
	t.Setenv(TokenEnvVar, "env-token")

	token, err := ResolveToken(t.TempDir())
	if err != nil {
		t.Fatalf("ResolveToken: %v", err)
	}
	if token != "env-token" {
		t.Errorf("token = %q", token)
	}
}

func TestResolveToken_RepoConfig(t *testing.T) {
	clearTokenEnv(t)
	dir := initEmptyRepo(t)

	repo, err := git.PlainOpen(dir)
	if err != nil {
		t.Fatalf("PlainOpen: %v", err)
	}
	cfg, err := repo.Config()
	if err != nil {
		t.Fatalf("Config: %v", err)
	}
	cfg.Raw.Section("asana").SetOption("token", "repo-token")
	if err := repo.SetConfig(cfg); err != nil {
		t.Fatalf("SetConfig: %v", err)
	}

	token, err := ResolveToken(dir)
	if err != nil {
		t.Fatalf("ResolveToken: %v", err)
	}
	if token != "repo-token" {
		t.Errorf("token = %q", token)
	}
}

func TestResolveToken_EnvWinsOverRepoConfig(t *testing.T) {
	clearTokenEnv(t)
	dir := initEmptyRepo(t)

	repo, err := git.PlainOpen(dir)
	if err != nil {
		t.Fatalf("PlainOpen: %v", err)
	}
	cfg, err := repo.Config()
	if err != nil {
		t.Fatalf("Config: %v", err)
	}
	cfg.Raw.Section("asana").SetOption("token", "repo-token")
	if err := repo.SetConfig(cfg); err != nil {
		t.Fatalf("SetConfig: %v", err)
	}

	t.Setenv(TokenEnvVar, "env-token")
	token, err := ResolveToken(dir)
	if err != nil {
		t.Fatalf("ResolveToken: %v", err)
	}
	if token != "env-token" {
		t.Errorf("token = %q, env should win", token)
	}
}

func TestResolveToken_GlobalConfig(t *testing.T) {
	clearTokenEnv(t)

	home := os.Getenv("HOME")
	gitconfig := "[asana]\n\ttoken = global-token\n"
	if err := os.WriteFile(filepath.Join(home, ".gitconfig"), []byte(gitconfig), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	token, err := ResolveToken(t.TempDir())
	if err != nil {
		t.Fatalf("ResolveToken: %v", err)
	}
	if token != "global-token" {
		t.Errorf("token = %q", token)
	}
}

func TestResolveToken_Missing(t *testing.T) {
	clearTokenEnv(t)

	_, err := ResolveToken(t.TempDir())
	if !errors.Is(err, ErrMissingCredential) {
		t.Errorf("err = %v, want ErrMissingCredential", err)
	}
}
