package session

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webpreview/relay"
	"webpreview/ui/layout"
)

type memoryState struct {
	url   string
	saves int
	err   error
}

func (m *memoryState) GetPreviewURL() string { return m.url }

func (m *memoryState) SetPreviewURL(url string) error {
	if m.err != nil {
		return m.err
	}
	m.url = url
	m.saves++
	return nil
}

func newTestFrame(t *testing.T) (*Frame, *memoryState) {
	t.Helper()
	state := &memoryState{}
	storage, err := NewStorage(state)
	require.NoError(t, err)
	return NewFrame(storage), state
}

func TestFrameNavigatesAndPersists(t *testing.T) {
	f, state := newTestFrame(t)

	require.NoError(t, f.Post(relay.NavigateTo("http://localhost:3000")))
	assert.Equal(t, "http://localhost:3000", f.URL())
	assert.Equal(t, relay.State{PreviewURL: "http://localhost:3000"}, f.State())
	assert.Equal(t, "http://localhost:3000", state.url)

	require.NoError(t, f.Post(relay.NavigateTo("http://localhost:3000/about")))
	require.NoError(t, f.Post(relay.Message{Preview: &relay.Payload{Back: true}}))
	assert.Equal(t, "http://localhost:3000", f.URL())
	assert.Equal(t, "http://localhost:3000", state.url)

	require.NoError(t, f.Post(relay.Message{Preview: &relay.Payload{Forward: true}}))
	assert.Equal(t, "http://localhost:3000/about", f.URL())
	assert.Equal(t, 4, state.saves)
}

func TestFrameIgnoresEmptyMessages(t *testing.T) {
	f, state := newTestFrame(t)
	require.NoError(t, f.Post(relay.Message{}))
	require.NoError(t, f.Post(relay.NavigateTo("")))
	assert.Equal(t, "", f.URL())
	assert.Equal(t, 0, state.saves)
}

func TestFrameRefresh(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"absolute url is normalized", "HTTP://localhost:3000", "http://localhost:3000"},
		{"unparseable url kept raw", "http://[::1:3000", "http://[::1:3000"},
		{"relative url kept raw", "not a url", "not a url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, _ := newTestFrame(t)
			require.NoError(t, f.Post(relay.NavigateTo(tt.url)))
			require.NoError(t, f.Post(relay.Message{Preview: &relay.Payload{Refresh: true}}))
			assert.Equal(t, tt.want, f.URL())
			assert.Equal(t, 1, f.Reloads())
		})
	}
}

func TestFrameRefreshWithoutPage(t *testing.T) {
	f, _ := newTestFrame(t)
	require.NoError(t, f.Post(relay.Message{Preview: &relay.Payload{Refresh: true}}))
	assert.Equal(t, 0, f.Reloads())
}

func TestFrameResponsiveGate(t *testing.T) {
	f, _ := newTestFrame(t)
	toggle := relay.Message{Preview: &relay.Payload{Responsive: true}}

	f.SetPanelWidth(layout.ResponsiveMinPixels - 1)
	require.NoError(t, f.Post(toggle))
	assert.False(t, f.Responsive(), "too narrow to toggle on")

	f.SetPanelWidth(layout.ResponsiveMinPixels)
	require.NoError(t, f.Post(toggle))
	assert.True(t, f.Responsive())

	// Shrinking hides responsive mode without forgetting it.
	f.SetPanelWidth(320)
	assert.False(t, f.Responsive())
	f.SetPanelWidth(800)
	assert.True(t, f.Responsive())

	require.NoError(t, f.Post(toggle))
	assert.False(t, f.Responsive())
}

func TestFrameMediaScreens(t *testing.T) {
	f, _ := newTestFrame(t)

	err := f.Post(relay.Message{Preview: &relay.Payload{MediaScreen: map[string]string{
		"Phone":  "375x667",
		"Laptop": "1366",
		"Broken": "wide",
	}}})
	assert.Error(t, err)

	presets := f.Presets()
	require.Len(t, presets, 2)
	assert.Equal(t, "Laptop", presets[0].Name)
	assert.Equal(t, "Phone", presets[1].Name)
	assert.Len(t, f.MediaScreens(), 3)
}

func TestFrameReportsStorageErrors(t *testing.T) {
	state := &memoryState{err: errors.New("disk full")}
	storage, err := NewStorage(state)
	require.NoError(t, err)
	f := NewFrame(storage)

	err = f.Post(relay.NavigateTo("http://a"))
	assert.ErrorContains(t, err, "disk full")
	assert.Equal(t, "http://a", f.URL(), "navigation still happens")
}

func TestNewStorageRequiresState(t *testing.T) {
	_, err := NewStorage(nil)
	assert.Error(t, err)
}
