package app

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"webpreview/keys"
	"webpreview/log"
	"webpreview/panel"
	"webpreview/ui"
	"webpreview/ui/overlay"
)

// keyCommands maps keys to the panel commands they run.
var keyCommands = map[keys.KeyName]panel.Command{
	keys.KeyBack:          panel.CmdBack,
	keys.KeyForward:       panel.CmdForward,
	keys.KeyRefresh:       panel.CmdRefresh,
	keys.KeyResponsive:    panel.CmdResponsive,
	keys.KeyScreenView:    panel.CmdScreenView,
	keys.KeyDevTools:      panel.CmdDevTools,
	keys.KeyOpenInBrowser: panel.CmdOpenInBrowser,
	keys.KeyCopyURL:       panel.CmdCopyURL,
}

// handleMenuHighlighting returns a command to highlight the pressed key in the menu.
func (m *home) handleMenuHighlighting(msg tea.KeyMsg) tea.Cmd {
	if m.state != stateDefault {
		return nil
	}
	name, ok := keys.GlobalKeyStringsMap[msg.String()]
	if !ok {
		return nil
	}
	return m.keydownCallback(name)
}

func (m *home) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	log.InputTrace("key %q in state %s", msg.String(), m.state)

	switch m.state {
	case statePrompt:
		if !m.textInputOverlay.HandleKeyPress(msg) {
			return m, nil
		}
		submitted := m.textInputOverlay.IsSubmitted()
		url := m.textInputOverlay.GetValue()
		m.textInputOverlay = nil
		m.state = stateDefault
		if !submitted {
			return m, nil
		}
		// An empty URL cancels like Esc does.
		if err := m.execute(panel.CmdURL, url); err != nil {
			return m, m.handleError(err)
		}
		return m, nil
	case statePicker:
		if !m.presetPicker.HandleKeyPress(msg) {
			return m, nil
		}
		if selected := m.presetPicker.Selected; selected != nil {
			m.viewport.ApplyPreset(*selected)
		}
		m.presetPicker = nil
		m.state = stateDefault
		return m, nil
	case stateHelp:
		m.textOverlay.HandleKeyPress(msg)
		m.textOverlay = nil
		m.state = stateDefault
		return m, nil
	case stateDevTools:
		m.textOverlay.HandleKeyPress(msg)
		return m, nil
	}

	highlightCmd := m.handleMenuHighlighting(msg)

	name, ok := keys.GlobalKeyStringsMap[msg.String()]
	if !ok {
		return m, nil
	}

	switch name {
	case keys.KeyQuit:
		return m.handleQuit()
	case keys.KeyHelp:
		m.showHelpScreen()
		return m, highlightCmd
	case keys.KeyURL:
		if m.panel() == nil {
			return m, m.handleError(panel.ErrNoPanel)
		}
		m.openURLPrompt()
		return m, highlightCmd
	case keys.KeyPreset:
		if !m.viewport.Responsive() {
			return m, nil
		}
		m.openPresetPicker()
		return m, highlightCmd
	case keys.KeyRotate, keys.KeyZoomIn, keys.KeyZoomOut, keys.KeyResetSize:
		if !m.viewport.Responsive() {
			return m, nil
		}
		switch name {
		case keys.KeyRotate:
			m.viewport.Rotate()
		case keys.KeyZoomIn:
			m.viewport.ZoomIn()
		case keys.KeyZoomOut:
			m.viewport.ZoomOut()
		case keys.KeyResetSize:
			m.viewport.Reset()
		}
		return m, highlightCmd
	}

	cmd, ok := keyCommands[name]
	if !ok {
		return m, nil
	}
	return m, tea.Batch(highlightCmd, m.runCommand(cmd))
}

// runCommand executes a panel command and refreshes whatever it affects.
func (m *home) runCommand(cmd panel.Command) tea.Cmd {
	if err := m.execute(cmd, ""); err != nil {
		return m.handleError(err)
	}

	switch cmd {
	case panel.CmdResponsive:
		if !m.frame.ResponsiveAllowed() {
			return m.showInfo("responsive view needs a panel at least 500px wide")
		}
	case panel.CmdScreenView:
		return m.relayout()
	case panel.CmdDevTools:
		if p := m.panel(); p != nil && p.DevToolsOpen() {
			m.openDevTools()
			return devToolsTick()
		}
	case panel.CmdCopyURL:
		return m.showInfo("url copied")
	}
	return nil
}

func (m *home) execute(cmd panel.Command, arg string) error {
	return m.registry.Execute(cmd, arg, m.panelOpts)
}

func (m *home) openURLPrompt() {
	m.state = statePrompt
	m.textInputOverlay = overlay.NewTextInputOverlay("Navigate to URL", m.panel().CurrentURL())
	m.textInputOverlay.SetPlaceholder("http://localhost:3000")
	m.sizeOverlays()
}

func (m *home) openPresetPicker() {
	m.state = statePicker
	m.presetPicker = overlay.NewPresetPickerOverlay(m.viewport.Choices(), m.viewport.Sizer().Selected())
	m.sizeOverlays()
}

func (m *home) showHelpScreen() {
	m.state = stateHelp
	m.textOverlay = overlay.NewTextOverlay(helpContent(m.help))
	m.sizeOverlays()
}

func (m *home) openDevTools() {
	m.state = stateDevTools
	m.textOverlay = overlay.NewTextOverlay(devToolsContent())
	m.textOverlay.OnDismiss = func() {
		if p := m.panel(); p != nil && p.DevToolsOpen() {
			p.OpenDevTools()
		}
		m.textOverlay = nil
		m.state = stateDefault
	}
	m.sizeOverlays()
}

// handleMouse routes mouse input. The viewport gets coordinates relative to
// its own origin; a release is delivered wherever the pointer is.
func (m *home) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action == tea.MouseActionRelease {
		m.viewport.MouseRelease()
		return nil
	}
	if m.state != stateDefault || m.panel() == nil {
		return nil
	}
	c := m.constraints
	col, row := msg.X-c.HistoryWidth, msg.Y-c.AddressHeight

	switch msg.Action {
	case tea.MouseActionMotion:
		m.viewport.MouseMotion(col, row)
		return nil
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
	default:
		return nil
	}

	if row < 0 && col >= 0 {
		return m.handleAddressClick(col)
	}

	hit := m.viewport.MousePress(col, row)
	switch {
	case hit.Toolbar == ui.ToolbarPreset:
		m.openPresetPicker()
	case hit.InFrame && m.viewport.PointerEvents():
		log.InputTrace("click at (%d,%d) forwarded to frame", col, row)
	}
	return nil
}

// handleAddressClick handles the navigation arrows and the URL field.
func (m *home) handleAddressClick(col int) tea.Cmd {
	var err error
	switch col {
	case 0:
		err = m.execute(panel.CmdBack, "")
	case 2:
		err = m.execute(panel.CmdForward, "")
	case 4:
		err = m.execute(panel.CmdRefresh, "")
	case 1, 3:
	default:
		m.openURLPrompt()
	}
	if err != nil && !errors.Is(err, panel.ErrNoPanel) {
		return m.handleError(err)
	}
	return nil
}
