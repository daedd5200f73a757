package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWorkspaceMissing(t *testing.T) {
	ws, err := LoadWorkspace(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, ws)

	ws, err = LoadWorkspace("")
	require.NoError(t, err)
	assert.Nil(t, ws)
}

func TestLoadWorkspaceParsesYAML(t *testing.T) {
	dir := t.TempDir()
	content := `url: http://localhost:5173
media_screen:
  Phone: 375x812
  Wide: "2560"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, WorkspaceFileName), []byte(content), 0644))

	ws, err := LoadWorkspace(dir)
	require.NoError(t, err)
	require.NotNil(t, ws)
	assert.Equal(t, "http://localhost:5173", ws.URL)
	assert.Equal(t, map[string]string{"Phone": "375x812", "Wide": "2560"}, ws.MediaScreen)
}

func TestLoadWorkspaceInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, WorkspaceFileName), []byte("url: [unterminated"), 0644))

	_, err := LoadWorkspace(dir)
	assert.Error(t, err)
}
