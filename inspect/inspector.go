// Package inspect writes machine-readable snapshots of the UI state so that
// scripts and end-to-end tests can follow the panel without screen scraping.
package inspect

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// InspectEnv turns snapshot writing on when set to "1".
const InspectEnv = "WP_INSPECT"

// Introspectable is implemented by UI components that can report their state.
type Introspectable interface {
	InspectNode() *Node
}

var (
	enabled     bool
	enabledOnce sync.Once
	inspectFile string
)

// IsEnabled returns true if inspection mode is active.
func IsEnabled() bool {
	enabledOnce.Do(func() {
		enabled = os.Getenv(InspectEnv) == "1"
		if enabled {
			inspectFile = filepath.Join(os.TempDir(), "webpreview-inspect.json")
		}
	})
	return enabled
}

// GetInspectFile returns the path snapshots are written to, or "" when
// inspection is off.
func GetInspectFile() string {
	if !IsEnabled() {
		return ""
	}
	return inspectFile
}

// WriteSnapshot writes snapshot to the inspection file when inspection is on.
func WriteSnapshot(snapshot *Snapshot) error {
	if !IsEnabled() {
		return nil
	}
	return WriteSnapshotToPath(snapshot, inspectFile)
}

// WriteSnapshotToPath writes snapshot to path regardless of the environment.
func WriteSnapshotToPath(snapshot *Snapshot, path string) error {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}
