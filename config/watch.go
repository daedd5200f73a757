package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"webpreview/log"
)

// ReloadDelay is the quiet period after the last write before settings are
// reloaded. Editors often save in several writes.
const ReloadDelay = 250 * time.Millisecond

// Watcher reports changes to the global config file and the workspace file.
type Watcher struct {
	configDir    string
	workspaceDir string
	delay        time.Duration
}

// NewWatcher watches ~/.webpreview/config.json and the workspace file in
// workspaceDir. An empty workspaceDir watches only the global file.
func NewWatcher(workspaceDir string) (*Watcher, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		configDir:    configDir,
		workspaceDir: workspaceDir,
		delay:        ReloadDelay,
	}, nil
}

// Relevant reports whether a change to path should trigger a reload.
func (w *Watcher) Relevant(path string) bool {
	clean := filepath.Clean(path)
	if clean == filepath.Join(w.configDir, ConfigFileName) {
		return true
	}
	return w.workspaceDir != "" && clean == filepath.Join(w.workspaceDir, WorkspaceFileName)
}

// Run blocks until ctx is done, calling onChange with the freshly resolved
// settings once a burst of writes has been quiet for the reload delay.
// onChange runs on the Run goroutine.
func (w *Watcher) Run(ctx context.Context, onChange func(Settings)) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create config watcher: %w", err)
	}
	defer fw.Close()

	// reload is nil while no reload is pending.
	var reload <-chan time.Time
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	// Directories are watched rather than files so that editors which
	// replace the file on save keep being observed.
	dirs := []string{w.configDir}
	if w.workspaceDir != "" && w.workspaceDir != w.configDir {
		dirs = append(dirs, w.workspaceDir)
	}
	for _, dir := range dirs {
		if err := fw.Add(dir); err != nil {
			log.WarningLog.Printf("config watcher: cannot watch %s: %v", dir, err)
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !w.Relevant(ev.Name) || ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.delay)
			} else {
				timer.Reset(w.delay)
			}
			reload = timer.C
		case <-reload:
			reload = nil
			onChange(w.Load())
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			log.WarningLog.Printf("config watcher: %v", err)
		}
	}
}

// Load resolves the current settings from disk.
func (w *Watcher) Load() Settings {
	ws, err := LoadWorkspace(w.workspaceDir)
	if err != nil {
		log.ErrorLog.Printf("%v", err)
	}
	return Resolve(LoadConfig(), ws)
}
