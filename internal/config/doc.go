// Package config loads asana-hook settings and resolves the API
// credential.
//
// Settings merge precedence (highest to lowest):
//  1. CLI flags
//  2. Environment variables (ASANA_API_URL, ASANA_HOOK_TIMEOUT_SECONDS, ...)
//  3. Config file ($XDG_CONFIG_HOME/asana-hook/config.toml)
//  4. Built-in defaults
//
// The API token is deliberately not part of the settings file. It is
// resolved by [ResolveToken]: first the ASANA_API_TOKEN environment
// variable, then the asana.token git-config key (repository scope, then
// global scope).
package config
