package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const lockFileName = "state.lock"

// ErrLockHeld is returned when a FileLock is acquired twice without Unlock.
var ErrLockHeld = errors.New("state lock already held")

// FileLock serializes access to the preview state between webpreview
// processes. The lock lives in its own file next to state.json so that
// rewriting the state never drops it.
type FileLock struct {
	path string
	file *os.File
}

// NewFileLock returns the lock for the state file at statePath.
func NewFileLock(statePath string) *FileLock {
	return &FileLock{path: filepath.Join(filepath.Dir(statePath), lockFileName)}
}

// GetStateLock returns a FileLock guarding the preview state file.
func GetStateLock() (*FileLock, error) {
	path, err := statePath()
	if err != nil {
		return nil, err
	}
	return NewFileLock(path), nil
}

// Lock takes the lock exclusively, for writing state.json. It blocks.
func (l *FileLock) Lock() error {
	return l.acquire(true)
}

// RLock takes the lock shared, for reading state.json. It blocks while a
// writer holds it.
func (l *FileLock) RLock() error {
	return l.acquire(false)
}

// Unlock releases the lock. Unlocking a lock that is not held is a no-op.
func (l *FileLock) Unlock() error {
	if l.file == nil {
		return nil
	}
	f := l.file
	l.file = nil
	if err := unlockFile(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (l *FileLock) acquire(exclusive bool) error {
	if l.file != nil {
		return ErrLockHeld
	}
	mode := os.O_RDONLY
	if exclusive {
		mode = os.O_RDWR
	}
	f, err := os.OpenFile(l.path, os.O_CREATE|mode, 0644)
	if err != nil {
		return fmt.Errorf("failed to open state lock: %w", err)
	}
	if err := lockFile(f, exclusive); err != nil {
		f.Close()
		return err
	}
	l.file = f
	return nil
}
