package config

import (
	"errors"
	"os"
	"strings"

	gitconfig "github.com/go-git/go-git/v5/config"

	"github.com/sachajw/pre-commit-hook-asana/internal/gitctx"
)

// TokenEnvVar is checked before any git config lookup.
const TokenEnvVar = "ASANA_API_TOKEN"

// Git config key holding the token: [asana] token = ...
const (
	tokenConfigSection = "asana"
	tokenConfigKey     = "token"
)

// ErrMissingCredential indicates no Asana token was found in the
// environment or in git config.
var ErrMissingCredential = errors.New(
	"Asana API token not found: set the " + TokenEnvVar + " environment variable " +
		"or run 'git config --global asana.token YOUR_TOKEN'")

// ResolveToken finds the Asana API token. Lookup order: the
// ASANA_API_TOKEN environment variable, the asana.token key in the
// repository's git config, then the same key in global git config.
// repoPath may point anywhere inside the repository; a missing or
// unreadable repository only skips the repository-scope lookup.
func ResolveToken(repoPath string) (string, error) {
	if token := strings.TrimSpace(os.Getenv(TokenEnvVar)); token != "" {
		return token, nil
	}

	if repo, err := gitctx.Open(repoPath); err == nil {
		if token, err := repo.ConfigValue(tokenConfigSection, tokenConfigKey); err == nil && token != "" {
			return token, nil
		}
	}

	if cfg, err := gitconfig.LoadConfig(gitconfig.GlobalScope); err == nil {
		token := strings.TrimSpace(cfg.Raw.Section(tokenConfigSection).Option(tokenConfigKey))
		if token != "" {
			return token, nil
		}
	}

	return "", ErrMissingCredential
}
