package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"syscall"
	"time"
)

// ErrPrefsCorrupted indicates the preference file exists but contains invalid data.
var ErrPrefsCorrupted = errors.New("preference file corrupted")

// PrefsStoreVersion is the current schema version of the preference file.
const PrefsStoreVersion = 1

// Preference keys for persisted page sizes.
const (
	KeyBlocklistPageSize = "blocklist_page_size"
	KeyAllowlistPageSize = "allowlist_page_size"
)

type prefsData struct {
	Version int            `json:"version"`
	Values  map[string]int `json:"values"`
}

// PrefsStore keeps small integer UI preferences in a JSON file.
type PrefsStore struct {
	mu       sync.RWMutex
	filePath string
	values   map[string]int
}

// NewPrefsStore creates a store backed by filePath. An empty path means
// prefs.json in the configuration directory. Call Load to read existing values.
func NewPrefsStore(filePath string) (*PrefsStore, error) {
	if filePath == "" {
		p, err := GetPrefsPath()
		if err != nil {
			return nil, fmt.Errorf("determining preference path: %w", err)
		}
		filePath = p
	}
	return &PrefsStore{filePath: filePath, values: make(map[string]int)}, nil
}

// OpenPrefsStore creates a store and loads it. A corrupted file is reported but
// the returned store is still usable and starts empty.
func OpenPrefsStore(filePath string) (*PrefsStore, error) {
	s, err := NewPrefsStore(filePath)
	if err != nil {
		return nil, err
	}
	return s, s.Load()
}

// FilePath returns the backing file path.
func (s *PrefsStore) FilePath() string {
	return s.filePath
}

func (s *PrefsStore) lockFilePath() string {
	return s.filePath + ".lock"
}

// acquireFileLock takes a cross-process advisory lockfile and returns its release.
func (s *PrefsStore) acquireFileLock() (func(), error) {
	lockPath := s.lockFilePath()

	if err := os.MkdirAll(filepath.Dir(lockPath), 0o750); err != nil {
		return nil, fmt.Errorf("creating lock directory: %w", err)
	}

	const maxRetries = 10
	const retryDelay = 50 * time.Millisecond
	const staleLockAge = 30 * time.Second

	for range maxRetries {
		f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
		if err == nil {
			_, _ = fmt.Fprintf(f, "%d", os.Getpid())
			_ = f.Close()
			return func() { _ = os.Remove(lockPath) }, nil
		}

		if removeStaleLock(lockPath, staleLockAge) {
			continue
		}
		time.Sleep(retryDelay)
	}

	return nil, fmt.Errorf("could not acquire lock on %s after retries", lockPath)
}

// removeStaleLock removes a lock older than staleLockAge whose owner is gone.
// It reports whether the caller should retry.
func removeStaleLock(lockPath string, staleLockAge time.Duration) bool {
	info, statErr := os.Stat(lockPath)
	if statErr != nil || time.Since(info.ModTime()) <= staleLockAge {
		return false
	}
	if isLockHeldByLiveProcess(lockPath) {
		return false
	}
	_ = os.Remove(lockPath)
	return true
}

func isLockHeldByLiveProcess(lockPath string) bool {
	pidData, readErr := os.ReadFile(lockPath)
	if readErr != nil || len(pidData) == 0 {
		return false
	}
	var pid int
	if _, scanErr := fmt.Sscanf(string(pidData), "%d", &pid); scanErr != nil || pid <= 0 {
		return false
	}
	proc, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	// Signal 0 tests process existence without sending anything.
	return proc.Signal(syscall.Signal(0)) == nil
}

// Load reads the preference file. A missing file leaves the store empty.
func (s *PrefsStore) Load() error {
	unlock, lockErr := s.acquireFileLock()
	if lockErr != nil {
		return fmt.Errorf("acquiring file lock: %w", lockErr)
	}
	defer unlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.values = make(map[string]int)

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading preference file: %w", err)
	}

	var stored prefsData
	if unmarshalErr := json.Unmarshal(data, &stored); unmarshalErr != nil {
		return fmt.Errorf("%w: %w", ErrPrefsCorrupted, unmarshalErr)
	}
	if stored.Version != PrefsStoreVersion {
		return fmt.Errorf("%w: unsupported version %d (expected %d)",
			ErrPrefsCorrupted, stored.Version, PrefsStoreVersion)
	}
	for k, v := range stored.Values {
		s.values[k] = v
	}
	return nil
}

// Save writes the preferences atomically.
func (s *PrefsStore) Save() error {
	unlock, lockErr := s.acquireFileLock()
	if lockErr != nil {
		return fmt.Errorf("acquiring file lock: %w", lockErr)
	}
	defer unlock()

	s.mu.RLock()
	data, err := json.MarshalIndent(prefsData{Version: PrefsStoreVersion, Values: s.values}, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("marshaling preferences: %w", err)
	}

	if mkdirErr := os.MkdirAll(filepath.Dir(s.filePath), 0o750); mkdirErr != nil {
		return fmt.Errorf("creating preference directory: %w", mkdirErr)
	}
	return writeFileAtomic(s.filePath, data)
}

// PageSize returns the stored page size for key, or fallback when none is stored.
func (s *PrefsStore) PageSize(key string, fallback int) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if v, ok := s.values[key]; ok && v > 0 {
		return v
	}
	return fallback
}

// SetPageSize stores a page size for key and saves the file.
func (s *PrefsStore) SetPageSize(key string, size int) error {
	if size <= 0 {
		return fmt.Errorf("%w: page size must be positive, got %d", ErrInvalidConfig, size)
	}

	s.mu.Lock()
	s.values[key] = size
	s.mu.Unlock()

	return s.Save()
}
