package seen

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"
)

// Entry records one dispatched notification.
type Entry struct {
	CommitHash string    `json:"commitHash"`
	TaskID     string    `json:"taskId"`
	NotifiedAt time.Time `json:"notifiedAt"`
	TTL        int       `json:"ttl"`
}

// Ledger is a file-backed record of already-notified (commit, task)
// pairs. A disabled Ledger reports every pair as unseen and records
// nothing.
type Ledger struct {
	dir        string
	ttlSeconds int
	enabled    bool
}

// New creates a Ledger. If dir is empty, the default cache directory is
// used.
func New(enabled bool, dir string, ttlSeconds int) (*Ledger, error) {
	if !enabled {
		return &Ledger{enabled: false}, nil
	}
	if dir == "" {
		d, err := defaultLedgerDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating ledger directory: %w", err)
	}
	return &Ledger{
		dir:        dir,
		ttlSeconds: ttlSeconds,
		enabled:    true,
	}, nil
}

// Has reports whether the (commit, task) pair was already notified and
// the record has not expired.
func (l *Ledger) Has(commitHash, taskID string) bool {
	if !l.enabled {
		return false
	}
	data, err := os.ReadFile(l.entryPath(commitHash, taskID))
	if err != nil {
		return false
	}
	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return false
	}
	if l.ttlSeconds > 0 && time.Since(entry.NotifiedAt) > time.Duration(l.ttlSeconds)*time.Second {
		os.Remove(l.entryPath(commitHash, taskID))
		return false
	}
	return true
}

// Record stores a dispatched (commit, task) pair.
func (l *Ledger) Record(commitHash, taskID string) error {
	if !l.enabled {
		return nil
	}
	entry := Entry{
		CommitHash: commitHash,
		TaskID:     taskID,
		NotifiedAt: time.Now(),
		TTL:        l.ttlSeconds,
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshaling ledger entry: %w", err)
	}
	return os.WriteFile(l.entryPath(commitHash, taskID), data, 0o644)
}

// Clear removes all ledger entries.
func (l *Ledger) Clear() error {
	if !l.enabled || l.dir == "" {
		return nil
	}
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading ledger directory: %w", err)
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".json" {
			os.Remove(filepath.Join(l.dir, e.Name()))
		}
	}
	return nil
}

// Stats describes the ledger contents.
type Stats struct {
	Dir        string `json:"dir"`
	Entries    int    `json:"entries"`
	TotalBytes int64  `json:"totalBytes"`
	Expired    int    `json:"expired"`
}

// GetStats returns information about the ledger.
func (l *Ledger) GetStats() (Stats, error) {
	stats := Stats{Dir: l.dir}
	if !l.enabled || l.dir == "" {
		return stats, nil
	}
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return stats, nil
		}
		return stats, fmt.Errorf("reading ledger directory: %w", err)
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) != ".json" {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		stats.Entries++
		stats.TotalBytes += info.Size()

		data, err := os.ReadFile(filepath.Join(l.dir, e.Name()))
		if err != nil {
			continue
		}
		var entry Entry
		if err := json.Unmarshal(data, &entry); err != nil {
			continue
		}
		if l.ttlSeconds > 0 && time.Since(entry.NotifiedAt) > time.Duration(l.ttlSeconds)*time.Second {
			stats.Expired++
		}
	}
	return stats, nil
}

// Dir returns the ledger directory path.
func (l *Ledger) Dir() string {
	return l.dir
}

// Enabled returns whether the ledger is active.
func (l *Ledger) Enabled() bool {
	return l.enabled
}

func (l *Ledger) entryPath(commitHash, taskID string) string {
	h := sha256.Sum256([]byte(commitHash + ":" + taskID))
	return filepath.Join(l.dir, fmt.Sprintf("%x.json", h))
}

func defaultLedgerDir() (string, error) {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "asana-hook"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Caches", "asana-hook"), nil
	case "windows":
		if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
			return filepath.Join(localAppData, "asana-hook", "cache"), nil
		}
		return filepath.Join(home, "AppData", "Local", "asana-hook", "cache"), nil
	default:
		return filepath.Join(home, ".cache", "asana-hook"), nil
	}
}
