package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.APIURL != "https://app.asana.com/api/1.0" {
		t.Errorf("APIURL = %q", cfg.APIURL)
	}
	if cfg.TimeoutSeconds <= 0 {
		t.Errorf("TimeoutSeconds = %d, want positive", cfg.TimeoutSeconds)
	}
	if cfg.RemoteName != "origin" {
		t.Errorf("RemoteName = %q", cfg.RemoteName)
	}
	if !cfg.Record.Enabled {
		t.Error("Record.Enabled should default to true")
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "asana-hook", "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	content := "api_url = \"https://asana.example.com/api\"\ntimeout_seconds = 30\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIURL != "https://asana.example.com/api" {
		t.Errorf("APIURL = %q", cfg.APIURL)
	}
	if cfg.TimeoutSeconds != 30 {
		t.Errorf("TimeoutSeconds = %d", cfg.TimeoutSeconds)
	}
	// Untouched fields keep defaults
	if cfg.RemoteName != "origin" {
		t.Errorf("RemoteName = %q", cfg.RemoteName)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "asana-hook", "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(path, []byte("api_url = \"https://from-file\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	t.Setenv("ASANA_API_URL", "https://from-env")
	t.Setenv("ASANA_HOOK_TIMEOUT_SECONDS", "7")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIURL != "https://from-env" {
		t.Errorf("APIURL = %q, want env value", cfg.APIURL)
	}
	if cfg.TimeoutSeconds != 7 {
		t.Errorf("TimeoutSeconds = %d", cfg.TimeoutSeconds)
	}
}

func TestLoad_OverridesWin(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("ASANA_API_URL", "https://from-env")

	cfg, err := Load(map[string]string{"apiURL": "https://from-flag", "timeoutSeconds": "3"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIURL != "https://from-flag" {
		t.Errorf("APIURL = %q, want flag value", cfg.APIURL)
	}
	if cfg.TimeoutSeconds != 3 {
		t.Errorf("TimeoutSeconds = %d", cfg.TimeoutSeconds)
	}
}

func TestLoad_MissingFileIsFine(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIURL != Default().APIURL {
		t.Errorf("APIURL = %q, want default", cfg.APIURL)
	}
}

func TestSaveAndLoadFile_RoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := Default()
	cfg.TimeoutSeconds = 42
	cfg.Record.TTLSeconds = 60
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := LoadFile()
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if loaded.TimeoutSeconds != 42 {
		t.Errorf("TimeoutSeconds = %d", loaded.TimeoutSeconds)
	}
	if loaded.Record.TTLSeconds != 60 {
		t.Errorf("Record.TTLSeconds = %d", loaded.Record.TTLSeconds)
	}
}

func TestSetField(t *testing.T) {
	cfg := Default()

	if err := SetField(&cfg, "remote_name", "upstream"); err != nil {
		t.Fatalf("SetField: %v", err)
	}
	if cfg.RemoteName != "upstream" {
		t.Errorf("RemoteName = %q", cfg.RemoteName)
	}

	if err := SetField(&cfg, "retry_transient", "false"); err != nil {
		t.Fatalf("SetField: %v", err)
	}
	if cfg.RetryTransient {
		t.Error("RetryTransient should be false")
	}

	if err := SetField(&cfg, "record.ttl_seconds", "120"); err != nil {
		t.Fatalf("SetField: %v", err)
	}
	if cfg.Record.TTLSeconds != 120 {
		t.Errorf("Record.TTLSeconds = %d", cfg.Record.TTLSeconds)
	}

	if err := SetField(&cfg, "timeout_seconds", "abc"); err == nil {
		t.Error("SetField should reject non-integer timeout")
	}
	if err := SetField(&cfg, "no_such_key", "x"); err == nil {
		t.Error("SetField should reject unknown keys")
	}
}
