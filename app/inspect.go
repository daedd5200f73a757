package app

import (
	"webpreview/inspect"
	"webpreview/log"
	"webpreview/ui/responsive"
)

// snapshot describes the current UI for the inspector.
func (m *home) snapshot() *inspect.Snapshot {
	s := inspect.NewSnapshot().
		WithTerminal(m.width, m.height).
		WithLayout(m.constraints, m.degradation)
	s.ColorProfile = inspect.ProfileName(inspect.DetectProfile())

	s.AppState = inspect.AppStateInfo{
		State:   m.state.String(),
		Clients: m.hub.Clients(),
	}
	if m.state != stateDefault {
		s.AppState.OverlayType = m.state.String()
	}
	if p := m.panel(); p != nil {
		s.AppState.PanelOpen = true
		s.AppState.URL = p.CurrentURL()
		s.AppState.DevTools = p.DevToolsOpen()
	}

	v := m.viewport
	info := inspect.ViewportInfo{
		Responsive:    v.Responsive(),
		Container:     v.Container(),
		Constrained:   v.Constrained(),
		ResizeState:   v.Resizer().State().String(),
		Cursor:        v.Cursor(),
		PointerEvents: v.PointerEvents(),
	}
	if sizer := v.Sizer(); sizer != nil {
		info.Desired = sizer.Desired()
		info.Preset = sizer.Selected()
		info.Orientation = sizer.Orientation().String()
		info.ZoomFactor = sizer.ZoomState().Factor
	}
	s.WithViewport(info)

	c := m.constraints
	root := inspect.NewNode("Home").WithBounds(0, 0, m.width, m.height)
	if c.HistoryWidth > 0 {
		history := inspect.NewNode("History").WithBounds(0, 0, c.HistoryWidth, c.AddressHeight+c.ContainerHeight)
		if m.degradation.HideHistory {
			history.Hidden()
		}
		root.AddChild(history)
	}
	root.AddChild(inspect.NewNode("AddressBar").WithBounds(c.HistoryWidth, 0, c.PanelWidth, c.AddressHeight))
	root.AddChild(inspect.NewNode("Viewport").
		WithBounds(c.HistoryWidth, c.AddressHeight, c.ContainerWidth, c.ContainerHeight).
		WithState("badge_visible", v.Container().Visible).
		WithState("resizing", v.Resizer().State() == responsive.Dragging))
	root.AddChild(inspect.NewNode("Menu").WithBounds(0, c.TerminalHeight-c.MenuHeight-c.ErrBoxHeight, c.MenuWidth, c.MenuHeight))
	return s.WithComponents(root)
}

func (m *home) writeSnapshot() {
	if !inspect.IsEnabled() {
		return
	}
	if err := inspect.WriteSnapshot(m.snapshot()); err != nil {
		log.WarningLog.Printf("inspect: %v", err)
	}
}
