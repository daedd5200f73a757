package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"webpreview/log"
)

const StateFileName = "state.json"

// PreviewState persists what the preview panel needs to be revived.
type PreviewState interface {
	// GetPreviewURL returns the last URL shown in the panel
	GetPreviewURL() string
	// SetPreviewURL records the URL shown in the panel
	SetPreviewURL(url string) error
}

// State represents the application state that persists between sessions
type State struct {
	// PreviewURL is the URL the content frame last reported.
	PreviewURL string `json:"previewUrl"`

	// lastModTime tracks when we last read the state file (not serialized)
	lastModTime time.Time `json:"-"`
}

// DefaultState returns the default state
func DefaultState() *State {
	return &State{}
}

func statePath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}
	return filepath.Join(configDir, StateFileName), nil
}

// LoadState loads the state from disk. If it cannot be done, we return the default state.
// This function acquires a shared lock to allow concurrent reads.
func LoadState() *State {
	path, err := statePath()
	if err != nil {
		log.ErrorLog.Print(err)
		return DefaultState()
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultState()
	}

	lock := NewFileLock(path)
	if err := lock.RLock(); err != nil {
		log.WarningLog.Printf("failed to acquire read lock: %v", err)
		// Continue without lock - better to have stale data than fail
	} else {
		defer lock.Unlock()
	}

	var modTime time.Time
	if info, err := os.Stat(path); err == nil {
		modTime = info.ModTime()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.WarningLog.Printf("failed to get state file: %v", err)
		return DefaultState()
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		log.ErrorLog.Printf("failed to parse state file: %v", err)
		return DefaultState()
	}

	state.lastModTime = modTime
	return &state
}

// SaveState saves the state to disk.
// This function acquires an exclusive lock to prevent concurrent writes.
func SaveState(state *State) error {
	path, err := statePath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	lock := NewFileLock(path)
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("failed to acquire write lock: %w", err)
	}
	defer lock.Unlock()

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}

	if info, err := os.Stat(path); err == nil {
		state.lastModTime = info.ModTime()
	}

	return nil
}

// GetPreviewURL returns the last URL shown in the panel
func (s *State) GetPreviewURL() string {
	return s.PreviewURL
}

// SetPreviewURL records the URL and writes the state file. Unchanged URLs
// are not rewritten.
func (s *State) SetPreviewURL(url string) error {
	if s.PreviewURL == url && !s.lastModTime.IsZero() {
		return nil
	}
	s.PreviewURL = url
	return SaveState(s)
}

// GetLastModTime returns the modification time when this state was last read from disk.
func (s *State) GetLastModTime() time.Time {
	return s.lastModTime
}

// NeedsRefresh checks if the state file has been modified since the given time.
func NeedsRefresh(since time.Time) bool {
	path, err := statePath()
	if err != nil {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.ModTime().After(since)
}

// RefreshFromDisk reloads the state if another process wrote it.
// Returns true if the state was refreshed, false if no refresh was needed.
func (s *State) RefreshFromDisk() (bool, error) {
	if !NeedsRefresh(s.lastModTime) {
		return false, nil
	}

	path, err := statePath()
	if err != nil {
		return false, err
	}

	lock := NewFileLock(path)
	if err := lock.RLock(); err != nil {
		return false, fmt.Errorf("failed to acquire read lock: %w", err)
	}
	defer lock.Unlock()

	info, err := os.Stat(path)
	if err != nil {
		return false, fmt.Errorf("failed to stat state file: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("failed to read state file: %w", err)
	}

	var newState State
	if err := json.Unmarshal(data, &newState); err != nil {
		return false, fmt.Errorf("failed to parse state file: %w", err)
	}

	s.PreviewURL = newState.PreviewURL
	s.lastModTime = info.ModTime()
	return true, nil
}
