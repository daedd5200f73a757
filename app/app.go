package app

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"webpreview/config"
	"webpreview/keys"
	"webpreview/log"
	"webpreview/panel"
	"webpreview/relay"
	"webpreview/session"
	"webpreview/ui"
	"webpreview/ui/layout"
	"webpreview/ui/overlay"
)

// Options configure the terminal host.
type Options struct {
	Settings config.Settings
	// InitialURL is shown instead of the revived URL when set.
	InitialURL string
	// Responsive turns responsive design mode on once the panel is sized.
	Responsive bool
	// State persists the preview URL. Defaults to config.LoadState().
	State config.PreviewState

	OpenURL  func(string) error
	CopyText func(string) error
}

type state int

const (
	stateDefault state = iota
	// statePrompt is the state when the user is entering a URL.
	statePrompt
	// statePicker is the state when the preset picker is displayed.
	statePicker
	// stateHelp is the state when the help screen is displayed.
	stateHelp
	// stateDevTools is the state when the render profile is displayed.
	stateDevTools
)

func (s state) String() string {
	switch s {
	case statePrompt:
		return "prompt"
	case statePicker:
		return "picker"
	case stateHelp:
		return "help"
	case stateDevTools:
		return "devtools"
	default:
		return "default"
	}
}

type home struct {
	ctx context.Context

	// -- Storage and Configuration --

	storage   *session.Storage
	panelOpts panel.Options
	registry  *panel.Registry

	// -- Content --

	frame *session.Frame
	hub   *relay.Hub
	// send delivers messages from background services into the program.
	send func(tea.Msg)

	// -- State --

	state             state
	width, height     int
	constraints       layout.Constraints
	degradation       layout.Degradation
	pendingResponsive bool

	// -- UI Components --

	menu     *ui.Menu
	errBox   *ui.ErrBox
	viewport *ui.Viewport
	help     help.Model

	textInputOverlay *overlay.TextInputOverlay
	textOverlay      *overlay.TextOverlay
	presetPicker     *overlay.PresetPickerOverlay
}

func newHome(ctx context.Context, opts Options) (*home, error) {
	prevState := opts.State
	if prevState == nil {
		prevState = config.LoadState()
	}
	storage, err := session.NewStorage(prevState)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	h := &home{
		ctx:               ctx,
		storage:           storage,
		registry:          panel.NewRegistry(),
		frame:             session.NewFrame(storage),
		menu:              ui.NewMenu(),
		errBox:            ui.NewErrBox(),
		help:              help.New(),
		pendingResponsive: opts.Responsive,
		send:              func(tea.Msg) {},
	}
	h.hub = relay.NewHub(func(m any) { h.send(relayMsg{msg: m}) })
	h.viewport = ui.NewViewport(h.frame)
	h.panelOpts = panel.Options{
		Settings: opts.Settings,
		Frames:   relay.Fanout{h.frame, h.hub},
		Storage:  storage,
		OpenURL:  opts.OpenURL,
		CopyText: opts.CopyText,
	}

	oldURL := opts.InitialURL
	if oldURL == "" {
		oldURL = storage.LoadURL()
	}
	if _, err := h.registry.Revive(h.panelOpts, oldURL); err != nil {
		log.ErrorLog.Printf("failed to revive panel: %v", err)
	}
	h.syncMenu()
	return h, nil
}

func (m *home) Init() tea.Cmd {
	return nil
}

// updateHandleWindowSizeEvent sets the sizes of the components and observes
// the new viewport container.
func (m *home) updateHandleWindowSizeEvent(msg tea.WindowSizeMsg) tea.Cmd {
	m.width, m.height = msg.Width, msg.Height
	return m.relayout()
}

func (m *home) relayout() tea.Cmd {
	column := layout.ColumnOne
	if p, err := m.registry.Current(); err == nil {
		column = p.Column()
	}
	m.constraints = layout.ComputeConstraints(m.width, m.height, column)
	m.degradation = layout.ComputeDegradation(m.constraints)
	log.LayoutTrace("layout %dx%d: %s, column %s, container %dx%d",
		m.width, m.height, m.constraints.Mode, column, m.constraints.ContainerWidth, m.constraints.ContainerHeight)

	m.menu.SetSize(m.constraints.MenuWidth, m.constraints.MenuHeight)
	m.menu.SetCompact(m.degradation.SingleLineMenu)
	m.errBox.SetSize(m.constraints.ErrBoxWidth, m.constraints.ErrBoxHeight)
	m.viewport.SetDegradation(m.degradation)
	m.help.Width = m.width

	m.sizeOverlays()

	cmd := m.viewport.Observe(m.constraints.ContainerWidth, m.constraints.ContainerHeight)
	if m.pendingResponsive && m.frame.ResponsiveAllowed() {
		m.pendingResponsive = false
		if err := m.execute(panel.CmdResponsive, ""); err != nil {
			return tea.Batch(cmd, m.handleError(err))
		}
	}
	return cmd
}

func (m *home) sizeOverlays() {
	overlayWidth, overlayHeight := layout.ComputeOverlaySize(m.width, m.height, int(float32(m.width)*0.6), int(float32(m.height)*0.4))
	if m.textInputOverlay != nil {
		m.textInputOverlay.SetSize(overlayWidth, overlayHeight)
	}
	if m.textOverlay != nil {
		m.textOverlay.SetWidth(overlayWidth)
	}
	if m.presetPicker != nil {
		m.presetPicker.SetWidth(overlayWidth)
	}
}

func (m *home) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := m.update(msg)
	m.syncMenu()
	return model, cmd
}

func (m *home) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case hideErrMsg:
		m.errBox.Clear()
	case keyupMsg:
		m.menu.ClearKeydown()
		return m, nil
	case ui.BadgeHideMsg:
		m.viewport.HideBadge(msg)
		return m, nil
	case devToolsTickMsg:
		if m.state != stateDevTools {
			return m, nil
		}
		m.textOverlay.SetContent(devToolsContent())
		return m, devToolsTick()
	case settingsChangedMsg:
		p, err := m.registry.Current()
		if err != nil {
			return m, nil
		}
		if err := p.Reconfigure(msg.settings); err != nil {
			return m, m.handleError(err)
		}
		return m, m.showInfo("settings reloaded")
	case relayMsg:
		return m, m.handleRelay(msg.msg)
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		return m, m.updateHandleWindowSizeEvent(msg)
	case error:
		return m, m.handleError(msg)
	}
	return m, nil
}

// handleRelay applies a message a browser frame sent back.
func (m *home) handleRelay(msg any) tea.Cmd {
	switch msg := msg.(type) {
	case relay.State:
		p, err := m.registry.Current()
		if err != nil {
			return nil
		}
		if err := p.ObserveState(msg); err != nil {
			return m.handleError(err)
		}
	case relay.Info:
		log.InfoLog.Printf("frame %s: %s", msg.Command, msg.Text)
		return m.showInfo(msg.Text)
	}
	return nil
}

func (m *home) handleQuit() (tea.Model, tea.Cmd) {
	m.viewport.Close()
	if p, err := m.registry.Current(); err == nil {
		p.Dispose()
	}
	if err := m.hub.Close(); err != nil {
		log.WarningLog.Printf("failed to close relay: %v", err)
	}
	return m, tea.Quit
}

// syncMenu picks the menu options for the current state.
func (m *home) syncMenu() {
	switch {
	case m.state != stateDefault:
		m.menu.SetState(ui.StatePrompt)
	case m.panel() == nil:
		m.menu.SetState(ui.StateEmpty)
	case m.viewport.Responsive():
		m.menu.SetState(ui.StateResponsive)
	default:
		m.menu.SetState(ui.StateDefault)
	}
}

func (m *home) panel() *panel.Panel {
	p, err := m.registry.Current()
	if err != nil {
		return nil
	}
	return p
}

type keyupMsg struct{}

// keydownCallback clears the menu option highlighting after 500ms.
func (m *home) keydownCallback(name keys.KeyName) tea.Cmd {
	m.menu.Keydown(name)
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
		case <-time.After(500 * time.Millisecond):
		}
		return keyupMsg{}
	}
}

// hideErrMsg implements tea.Msg and clears the error text from the screen.
type hideErrMsg struct{}

// settingsChangedMsg carries settings reloaded by the config watcher.
type settingsChangedMsg struct {
	settings config.Settings
}

// relayMsg carries a State or Info value from a browser frame.
type relayMsg struct {
	msg any
}

type devToolsTickMsg struct{}

const devToolsRefresh = time.Second

func devToolsTick() tea.Cmd {
	return tea.Tick(devToolsRefresh, func(time.Time) tea.Msg { return devToolsTickMsg{} })
}

// statusDuration is how long errors and notices stay in the error box.
const statusDuration = 3 * time.Second

// handleError logs err, shows it in the error box and returns a command that
// clears it after statusDuration.
func (m *home) handleError(err error) tea.Cmd {
	log.ErrorLog.Printf("%v", err)
	m.errBox.SetError(err)
	return m.clearStatusLater()
}

// showInfo shows a notice in the error box.
func (m *home) showInfo(text string) tea.Cmd {
	m.errBox.SetInfo(text)
	return m.clearStatusLater()
}

func (m *home) clearStatusLater() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
		case <-time.After(statusDuration):
		}
		return hideErrMsg{}
	}
}

func (m *home) View() string {
	start := time.Now()
	defer func() { log.GetProfiler().RecordFrame(time.Since(start)) }()

	if m.width == 0 || m.height == 0 {
		return ""
	}
	if m.constraints.ShowMinWarning {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			ui.StatusStyles.Warning.Render(fmt.Sprintf("Terminal too small (min %dx%d)", layout.MinWidth, layout.MinHeight)))
	}

	mainView := lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderContent(),
		m.menu.String(),
		m.errBox.String(),
	)
	m.writeSnapshot()

	switch m.state {
	case statePrompt:
		return overlay.PlaceOverlay(0, 0, m.textInputOverlay.Render(), mainView, true, true)
	case statePicker:
		return overlay.PlaceOverlay(0, 0, m.presetPicker.Render(), mainView, true, true)
	case stateHelp, stateDevTools:
		return overlay.PlaceOverlay(0, 0, m.textOverlay.Render(), mainView, true, true)
	}
	return mainView
}

// renderContent draws the history pane (column two) next to the panel: the
// address bar above the viewport.
func (m *home) renderContent() string {
	done := log.GetProfiler().StartRender("content")
	defer done()

	c := m.constraints
	history := m.frame.History()
	p := m.panel()

	var panelView string
	if p == nil {
		panelView = lipgloss.Place(c.PanelWidth, c.AddressHeight+c.ContainerHeight, lipgloss.Center, lipgloss.Center,
			ui.TextStyles.Muted.Render("No preview open"))
	} else {
		address := ui.RenderAddressBar(c.PanelWidth, ui.AddressState{
			URL:               m.frame.URL(),
			CanBack:           history.CanBack(),
			CanForward:        history.CanForward(),
			Responsive:        m.frame.Responsive() || m.pendingResponsive,
			ResponsiveAllowed: m.frame.ResponsiveAllowed(),
			Clients:           m.hub.Clients(),
		})
		panelView = lipgloss.JoinVertical(lipgloss.Left, address, m.viewport.Render())
	}

	if c.HistoryWidth == 0 {
		return panelView
	}
	height := c.AddressHeight + c.ContainerHeight
	var side string
	if m.degradation.HideHistory {
		side = lipgloss.NewStyle().Width(c.HistoryWidth).Height(height).Render("")
	} else {
		entries, current := history.Entries()
		side = ui.RenderHistory(c.HistoryWidth, height, entries, current)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, side, panelView)
}
