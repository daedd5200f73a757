package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// WorkspaceFileName is the per-project settings file, looked up in the
// working directory.
const WorkspaceFileName = ".webpreview.yaml"

// Workspace holds per-project overrides. Unset fields fall back to the global
// configuration.
type Workspace struct {
	URL         string            `yaml:"url,omitempty"`
	MediaScreen map[string]string `yaml:"media_screen,omitempty"`
}

// LoadWorkspace reads the workspace file in dir. A missing file is not an
// error and yields nil.
func LoadWorkspace(dir string) (*Workspace, error) {
	if dir == "" {
		return nil, nil
	}
	path := filepath.Join(dir, WorkspaceFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read workspace settings: %w", err)
	}

	var ws Workspace
	if err := yaml.Unmarshal(data, &ws); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &ws, nil
}

// Settings is the effective configuration the preview panel reads.
type Settings struct {
	URL         string
	MediaScreen map[string]string
	RelayAddr   string
}

// Resolve layers the built-in defaults, the global config and the workspace
// overrides. Without MediaScreenOverride the preset mappings are merged, most
// specific last; with it the most specific mapping that exists is used alone.
func Resolve(global *Config, ws *Workspace) Settings {
	if global == nil {
		global = DefaultConfig()
	}

	s := Settings{URL: DefaultURL, RelayAddr: global.RelayAddr}
	if global.URL != "" {
		s.URL = global.URL
	}
	if ws != nil && ws.URL != "" {
		s.URL = ws.URL
	}

	var workspaceScreens map[string]string
	if ws != nil {
		workspaceScreens = ws.MediaScreen
	}

	if global.MediaScreenOverride {
		switch {
		case workspaceScreens != nil:
			s.MediaScreen = copyScreens(workspaceScreens)
		case global.MediaScreen != nil:
			s.MediaScreen = copyScreens(global.MediaScreen)
		default:
			s.MediaScreen = copyScreens(DefaultMediaScreens)
		}
		return s
	}

	s.MediaScreen = copyScreens(DefaultMediaScreens)
	for name, value := range global.MediaScreen {
		s.MediaScreen[name] = value
	}
	for name, value := range workspaceScreens {
		s.MediaScreen[name] = value
	}
	return s
}

func copyScreens(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for name, value := range in {
		out[name] = value
	}
	return out
}
