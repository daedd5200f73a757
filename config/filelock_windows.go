//go:build windows

package config

import (
	"fmt"
	"os"

	"golang.org/x/sys/windows"
)

// The first byte of the lock file is the locked region; no one writes to it.
const lockedBytes = 1

func lockFile(f *os.File, exclusive bool) error {
	var flags uint32
	kind := "shared"
	if exclusive {
		flags, kind = windows.LOCKFILE_EXCLUSIVE_LOCK, "exclusive"
	}
	err := windows.LockFileEx(windows.Handle(f.Fd()), flags, 0, lockedBytes, 0, new(windows.Overlapped))
	if err != nil {
		return fmt.Errorf("failed to take %s state lock: %w", kind, err)
	}
	return nil
}

func unlockFile(f *os.File) error {
	err := windows.UnlockFileEx(windows.Handle(f.Fd()), 0, lockedBytes, 0, new(windows.Overlapped))
	if err != nil {
		return fmt.Errorf("failed to release state lock: %w", err)
	}
	return nil
}
