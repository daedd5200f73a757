package app

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webpreview/config"
	"webpreview/relay"
	"webpreview/testing/harness"
	"webpreview/testing/snapshot"
	"webpreview/ui/layout"
)

type memoryState struct {
	url string
}

func (m *memoryState) GetPreviewURL() string { return m.url }

func (m *memoryState) SetPreviewURL(url string) error {
	m.url = url
	return nil
}

type fakeSystem struct {
	opened []string
	copied []string
}

func (f *fakeSystem) open(url string) error {
	f.opened = append(f.opened, url)
	return nil
}

func (f *fakeSystem) copy(text string) error {
	f.copied = append(f.copied, text)
	return nil
}

type fixture struct {
	h     *harness.Harness
	home  *home
	state *memoryState
	sys   *fakeSystem
}

func newFixture(t *testing.T, width, height int, mutate func(*Options)) *fixture {
	t.Helper()
	mem := &memoryState{url: "http://localhost:3000/revived"}
	sys := &fakeSystem{}
	opts := Options{
		Settings: config.Settings{
			URL:         config.DefaultURL,
			MediaScreen: map[string]string{"Tablet": "768x1024"},
		},
		State:    mem,
		OpenURL:  sys.open,
		CopyText: sys.copy,
	}
	if mutate != nil {
		mutate(&opts)
	}

	m, err := newHome(context.Background(), opts)
	require.NoError(t, err)
	return &fixture{
		h:     harness.New(t, m, width, height),
		home:  m,
		state: mem,
		sys:   sys,
	}
}

func TestRevivesLastURL(t *testing.T) {
	f := newFixture(t, 160, 40, nil)

	assert.Equal(t, "http://localhost:3000/revived", f.home.frame.URL())
	snap := snapshot.New(t)
	snap.AssertContains(f.h.View(), "http://localhost:3000/revived")
	snap.AssertContains(f.h.View(), "History")
}

func TestInitialURLWinsOverRevival(t *testing.T) {
	f := newFixture(t, 160, 40, func(o *Options) { o.InitialURL = "http://localhost:5173" })
	assert.Equal(t, "http://localhost:5173", f.home.frame.URL())
	assert.Equal(t, "http://localhost:5173", f.state.url)
}

func TestNavigatePrompt(t *testing.T) {
	f := newFixture(t, 160, 40, nil)

	f.h.SendKey("u")
	require.Equal(t, statePrompt, f.home.state)
	snapshot.New(t).AssertContains(f.h.View(), "Navigate to URL")

	f.h.SendSpecialKey(tea.KeyCtrlU)
	f.h.Type("http://localhost:8080/docs")
	f.h.SendSpecialKey(tea.KeyEnter)

	assert.Equal(t, stateDefault, f.home.state)
	assert.Equal(t, "http://localhost:8080/docs", f.home.frame.URL())
	assert.Equal(t, "http://localhost:8080/docs", f.state.url)

	f.h.SendKey("[")
	assert.Equal(t, "http://localhost:3000/revived", f.home.frame.URL())
	assert.Equal(t, "http://localhost:3000/revived", f.home.panel().CurrentURL())
	f.h.SendKey("y")
	assert.Equal(t, []string{"http://localhost:3000/revived"}, f.sys.copied)
	f.h.SendKey("]")
	assert.Equal(t, "http://localhost:8080/docs", f.home.frame.URL())
}

func TestEmptyURLCancels(t *testing.T) {
	f := newFixture(t, 160, 40, nil)

	f.h.SendKey("u")
	f.h.SendSpecialKey(tea.KeyCtrlU)
	f.h.SendSpecialKey(tea.KeyEnter)

	assert.Equal(t, stateDefault, f.home.state)
	assert.Equal(t, "http://localhost:3000/revived", f.home.frame.URL())
	assert.Empty(t, strings.TrimSpace(snapshot.StripANSI(f.home.errBox.String())), "a cancelled prompt shows nothing")
}

func TestResponsiveModeAndDrag(t *testing.T) {
	f := newFixture(t, 160, 40, nil)

	f.h.SendKey("d")
	require.True(t, f.home.viewport.Responsive())

	view := f.h.View()
	snap := snapshot.New(t)
	snap.AssertContains(view, "Media Screen ▾")
	snap.AssertNotContains(view, "Preset:") // 80 column panel drops the caption
	snap.AssertContains(view, "380 × 519 (100%)")

	// The 48x32 cell device starts at panel column 16; the bottom-right
	// handle sits at panel column 64 on the row below it. The panel starts
	// at terminal column 80, below the one-row address bar.
	f.h.Drag(80+64, 1+33, [2]int{80 + 68, 1 + 33})

	desired := f.home.viewport.Sizer().Desired()
	assert.Equal(t, layout.DesiredSize{Width: 444, Height: 519}, desired)
	assert.True(t, f.home.viewport.PointerEvents())
}

func TestResponsiveFlagAppliesOnFirstLayout(t *testing.T) {
	f := newFixture(t, 160, 40, func(o *Options) { o.Responsive = true })
	assert.True(t, f.home.viewport.Responsive())
	assert.False(t, f.home.pendingResponsive)
}

func TestResponsiveNeedsWidePanel(t *testing.T) {
	f := newFixture(t, 100, 30, nil)

	f.h.SendKey("d")
	assert.False(t, f.home.viewport.Responsive())
	snapshot.New(t).AssertContains(f.home.errBox.String(), "at least 500px")

	// Moving to the first column makes room.
	f.h.SendKey("s")
	assert.Equal(t, 0, f.home.constraints.HistoryWidth)
	f.h.SendKey("d")
	assert.True(t, f.home.viewport.Responsive())
}

func TestSizingKeys(t *testing.T) {
	f := newFixture(t, 160, 40, nil)

	f.h.SendKey("t")
	assert.Equal(t, layout.DesiredSize{Width: 380, Height: 519}, f.home.viewport.Sizer().Desired(),
		"sizing keys are inert outside responsive mode")

	f.h.SendKey("d")
	f.h.SendKey("t")
	assert.Equal(t, layout.DesiredSize{Width: 519, Height: 380}, f.home.viewport.Sizer().Desired())
	f.h.SendKey("0")
	assert.Equal(t, layout.DesiredSize{Width: 380, Height: 519}, f.home.viewport.Sizer().Desired())

	f.h.SendKey("p")
	require.Equal(t, statePicker, f.home.state)
	f.h.SendSpecialKey(tea.KeyDown)
	f.h.SendSpecialKey(tea.KeyEnter)
	assert.Equal(t, stateDefault, f.home.state)
	assert.Equal(t, "Tablet", f.home.viewport.Sizer().Selected())
}

func TestHelpScreen(t *testing.T) {
	f := newFixture(t, 160, 40, nil)

	f.h.SendKey("?")
	require.Equal(t, stateHelp, f.home.state)
	snapshot.New(t).AssertContains(f.h.View(), "zoom in")

	f.h.SendKey("x")
	assert.Equal(t, stateDefault, f.home.state)
}

func TestDevTools(t *testing.T) {
	f := newFixture(t, 160, 40, nil)

	f.h.SendKey("i")
	require.Equal(t, stateDevTools, f.home.state)
	assert.True(t, f.home.panel().DevToolsOpen())
	snapshot.New(t).AssertContains(f.h.View(), "Dev Tools")

	f.h.SendKey("x")
	assert.Equal(t, stateDefault, f.home.state)
	assert.False(t, f.home.panel().DevToolsOpen())
}

func TestSystemCommands(t *testing.T) {
	f := newFixture(t, 160, 40, nil)

	f.h.SendKey("o")
	f.h.SendKey("y")
	assert.Equal(t, []string{"http://localhost:3000/revived"}, f.sys.opened)
	assert.Equal(t, []string{"http://localhost:3000/revived"}, f.sys.copied)
}

func TestRelayMessages(t *testing.T) {
	f := newFixture(t, 160, 40, nil)

	f.h.SendMsg(relayMsg{msg: relay.Info{Command: "info", Text: "compiled successfully"}})
	snapshot.New(t).AssertContains(f.home.errBox.String(), "compiled successfully")

	f.h.SendMsg(relayMsg{msg: relay.State{PreviewURL: "http://localhost:3000/clicked"}})
	assert.Equal(t, "http://localhost:3000/clicked", f.home.panel().CurrentURL())
	assert.Equal(t, "http://localhost:3000/clicked", f.state.url)
}

func TestSettingsReloadResetsURL(t *testing.T) {
	f := newFixture(t, 160, 40, nil)

	f.h.SendMsg(settingsChangedMsg{settings: config.Settings{URL: "http://localhost:4000"}})
	assert.Equal(t, "http://localhost:4000", f.home.frame.URL())
	assert.Equal(t, "http://localhost:4000", f.home.panel().CurrentURL())
}

func TestErrorsShowInStatusLine(t *testing.T) {
	f := newFixture(t, 160, 40, nil)

	cmd := f.h.SendMsg(errors.New("relay server: address in use"))
	require.NotNil(t, cmd)
	snapshot.New(t).AssertContains(f.home.errBox.String(), "address in use")

	f.h.SendMsg(hideErrMsg{})
	assert.Empty(t, strings.TrimSpace(snapshot.StripANSI(f.home.errBox.String())))
}

func TestQuit(t *testing.T) {
	f := newFixture(t, 160, 40, nil)

	cmd := f.h.SendKey("q")
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Nil(t, f.home.panel())
}

func TestLayoutAtCommonSizes(t *testing.T) {
	harness.RunWithCommonSizes(t, func(t *testing.T, size harness.TerminalSize) {
		f := newFixture(t, size.Width, size.Height, nil)
		view := f.h.View()
		assert.LessOrEqual(t, snapshot.Width(view), size.Width)
		assert.LessOrEqual(t, snapshot.Lines(view), size.Height)
	})
}

func TestMinimumSizeWarning(t *testing.T) {
	f := newFixture(t, 40, 10, nil)
	snapshot.New(t).AssertContains(f.h.View(), "Terminal too small")
}
