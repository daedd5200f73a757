//go:build !windows

package config

import (
	"fmt"
	"os"
	"syscall"
)

func lockFile(f *os.File, exclusive bool) error {
	how, kind := syscall.LOCK_SH, "shared"
	if exclusive {
		how, kind = syscall.LOCK_EX, "exclusive"
	}
	if err := syscall.Flock(int(f.Fd()), how); err != nil {
		return fmt.Errorf("failed to take %s state lock: %w", kind, err)
	}
	return nil
}

func unlockFile(f *os.File) error {
	if err := syscall.Flock(int(f.Fd()), syscall.LOCK_UN); err != nil {
		return fmt.Errorf("failed to release state lock: %w", err)
	}
	return nil
}
