package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the asana-hook settings file.
type Config struct {
	// APIURL is the Asana API base URL.
	APIURL string `toml:"api_url"`
	// TimeoutSeconds bounds each API request.
	TimeoutSeconds int `toml:"timeout_seconds"`
	// RemoteName is the git remote used to build commit links.
	RemoteName string `toml:"remote_name"`
	// RetryTransient enables one immediate retry on transient failures.
	RetryTransient bool `toml:"retry_transient"`

	Record RecordConfig `toml:"record"`
}

// RecordConfig controls the already-notified ledger.
type RecordConfig struct {
	Enabled    bool   `toml:"enabled"`
	Dir        string `toml:"dir,omitempty"`
	TTLSeconds int    `toml:"ttl_seconds"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		APIURL:         "https://app.asana.com/api/1.0",
		TimeoutSeconds: 15,
		RemoteName:     "origin",
		RetryTransient: true,
		Record: RecordConfig{
			Enabled:    true,
			TTLSeconds: 30 * 24 * 3600,
		},
	}
}

// ConfigDir returns the platform-appropriate config directory.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "asana-hook"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "asana-hook"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "asana-hook"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "asana-hook"), nil
	default:
		return filepath.Join(home, ".config", "asana-hook"), nil
	}
}

// ConfigPath returns the full path to the settings file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// LoadFile loads the settings file over the defaults. Keys absent from
// the file keep their default values; a missing file yields defaults.
func LoadFile() (Config, error) {
	cfg := Default()
	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Save writes the config to the settings file.
func Save(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load builds the effective config by merging: defaults <- file <- env
// <- overrides. The overrides map comes from CLI flags.
func Load(overrides map[string]string) (Config, error) {
	cfg, err := LoadFile()
	if err != nil {
		return Config{}, err
	}
	mergeEnv(&cfg)
	mergeOverrides(&cfg, overrides)

	return cfg, nil
}

func mergeEnv(cfg *Config) {
	if v := os.Getenv("ASANA_API_URL"); v != "" {
		cfg.APIURL = v
	}
	if v := os.Getenv("ASANA_HOOK_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutSeconds = n
		}
	}
	if v := os.Getenv("ASANA_HOOK_REMOTE"); v != "" {
		cfg.RemoteName = v
	}
}

func mergeOverrides(cfg *Config, overrides map[string]string) {
	if overrides == nil {
		return
	}
	if v, ok := overrides["apiURL"]; ok && v != "" {
		cfg.APIURL = v
	}
	if v, ok := overrides["timeoutSeconds"]; ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutSeconds = n
		}
	}
	if v, ok := overrides["remoteName"]; ok && v != "" {
		cfg.RemoteName = v
	}
}

// SetField sets a single config field by key name. Returns error if key
// is unknown.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "api_url":
		cfg.APIURL = value
	case "timeout_seconds":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("timeout_seconds must be an integer: %w", err)
		}
		cfg.TimeoutSeconds = n
	case "remote_name":
		cfg.RemoteName = value
	case "retry_transient":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("retry_transient must be a boolean: %w", err)
		}
		cfg.RetryTransient = b
	case "record.enabled":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("record.enabled must be a boolean: %w", err)
		}
		cfg.Record.Enabled = b
	case "record.dir":
		cfg.Record.Dir = value
	case "record.ttl_seconds":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("record.ttl_seconds must be an integer: %w", err)
		}
		cfg.Record.TTLSeconds = n
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}
