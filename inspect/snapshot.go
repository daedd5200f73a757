package inspect

import (
	"fmt"
	"strings"
	"time"

	"webpreview/ui/layout"
)

// Snapshot is the UI state at a point in time.
type Snapshot struct {
	Timestamp    time.Time        `json:"timestamp"`
	Version      string           `json:"version"`
	Terminal     TerminalInfo     `json:"terminal"`
	ColorProfile string           `json:"color_profile"`
	AppState     AppStateInfo     `json:"app_state"`
	Layout       LayoutInfo       `json:"layout"`
	Viewport     ViewportInfo     `json:"viewport"`
	Breakpoints  []BreakpointInfo `json:"breakpoints"`
	Components   *Node            `json:"components,omitempty"`
}

type TerminalInfo struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// AppStateInfo is the host program state.
type AppStateInfo struct {
	State        string `json:"state"`
	OverlayType  string `json:"overlay_type,omitempty"`
	PanelOpen    bool   `json:"panel_open"`
	URL          string `json:"url,omitempty"`
	Clients      int    `json:"clients"`
	DevTools     bool   `json:"dev_tools"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// LayoutInfo is the host layout in cells.
type LayoutInfo struct {
	Mode            string          `json:"mode"`
	Column          string          `json:"column"`
	PanelWidth      int             `json:"panel_width"`
	HistoryWidth    int             `json:"history_width"`
	ContainerWidth  int             `json:"container_width"`
	ContainerHeight int             `json:"container_height"`
	MenuHeight      int             `json:"menu_height"`
	Degradation     DegradationInfo `json:"degradation"`
}

type DegradationInfo struct {
	HidePresetLabel bool `json:"hide_preset_label"`
	HideZoomSlider  bool `json:"hide_zoom_slider"`
	ShortReadout    bool `json:"short_readout"`
	SingleLineMenu  bool `json:"single_line_menu"`
	HideHistory     bool `json:"hide_history"`
	ShowMinWarning  bool `json:"show_min_warning"`
}

// ViewportInfo is the responsive viewport geometry, in pixels.
type ViewportInfo struct {
	Responsive    bool                   `json:"responsive"`
	Container     layout.ContainerSize   `json:"container"`
	Desired       layout.DesiredSize     `json:"desired"`
	Constrained   layout.ConstrainedSize `json:"constrained"`
	BoxWidth      int                    `json:"box_width"`
	BoxHeight     int                    `json:"box_height"`
	Preset        string                 `json:"preset,omitempty"`
	Orientation   string                 `json:"orientation,omitempty"`
	ZoomFactor    float64                `json:"zoom_factor"`
	ResizeState   string                 `json:"resize_state"`
	Cursor        string                 `json:"cursor,omitempty"`
	PointerEvents bool                   `json:"pointer_events"`
}

// BreakpointInfo is one layout threshold and whether it is crossed.
type BreakpointInfo struct {
	Name      string `json:"name"`
	Threshold int    `json:"threshold"`
	Active    bool   `json:"active"`
	Dimension string `json:"dimension"`
}

func NewSnapshot() *Snapshot {
	return &Snapshot{
		Timestamp: time.Now(),
		Version:   "1.0.0",
	}
}

func (s *Snapshot) WithTerminal(width, height int) *Snapshot {
	s.Terminal = TerminalInfo{Width: width, Height: height}
	return s
}

// WithLayout records the host layout and the breakpoints it crosses.
func (s *Snapshot) WithLayout(c layout.Constraints, d layout.Degradation) *Snapshot {
	s.Layout = LayoutInfo{
		Mode:            c.Mode.String(),
		Column:          c.Column.String(),
		PanelWidth:      c.PanelWidth,
		HistoryWidth:    c.HistoryWidth,
		ContainerWidth:  c.ContainerWidth,
		ContainerHeight: c.ContainerHeight,
		MenuHeight:      c.MenuHeight,
		Degradation: DegradationInfo{
			HidePresetLabel: d.HidePresetLabel,
			HideZoomSlider:  d.HideZoomSlider,
			ShortReadout:    d.ShortReadout,
			SingleLineMenu:  d.SingleLineMenu,
			HideHistory:     d.HideHistory,
			ShowMinWarning:  d.ShowMinWarning,
		},
	}

	s.Breakpoints = []BreakpointInfo{
		{Name: "hide_preset_label", Threshold: layout.PresetLabelHideWidth, Active: d.HidePresetLabel, Dimension: "width"},
		{Name: "hide_zoom_slider", Threshold: layout.ZoomSliderHideWidth, Active: d.HideZoomSlider, Dimension: "width"},
		{Name: "short_readout", Threshold: layout.ShortReadoutWidth, Active: d.ShortReadout, Dimension: "width"},
		{Name: "single_line_menu", Threshold: layout.SingleLineMenuHeight, Active: d.SingleLineMenu, Dimension: "height"},
		{Name: "hide_history", Threshold: layout.HistoryMinWidth * 2, Active: d.HideHistory, Dimension: "width"},
	}
	return s
}

// WithViewport records the viewport geometry; the rendered box is derived
// from the constrained size.
func (s *Snapshot) WithViewport(v ViewportInfo) *Snapshot {
	frame := v.Constrained.Frame()
	v.BoxWidth, v.BoxHeight = frame.BoxWidth, frame.BoxHeight
	s.Viewport = v
	return s
}

func (s *Snapshot) WithComponents(root *Node) *Snapshot {
	s.Components = root
	return s
}

// ToText returns a human-readable rendering of the snapshot.
func (s *Snapshot) ToText() string {
	var b strings.Builder

	b.WriteString("=== UI Snapshot ===\n")
	b.WriteString(fmt.Sprintf("Time: %s\n", s.Timestamp.Format(time.RFC3339)))
	b.WriteString(fmt.Sprintf("Terminal: %dx%d (%s)\n", s.Terminal.Width, s.Terminal.Height, s.ColorProfile))
	b.WriteString(fmt.Sprintf("State: %s\n", s.AppState.State))
	if s.AppState.URL != "" {
		b.WriteString(fmt.Sprintf("URL: %s\n", s.AppState.URL))
	}

	b.WriteString("\n--- Layout ---\n")
	b.WriteString(fmt.Sprintf("Mode: %s, column %s\n", s.Layout.Mode, s.Layout.Column))
	b.WriteString(fmt.Sprintf("Container: %dx%d\n", s.Layout.ContainerWidth, s.Layout.ContainerHeight))

	if s.Viewport.Responsive {
		v := s.Viewport
		b.WriteString("\n--- Viewport ---\n")
		b.WriteString(fmt.Sprintf("Preset: %s (%s)\n", v.Preset, v.Orientation))
		b.WriteString(fmt.Sprintf("Desired: %.0fx%.0f\n", v.Desired.Width, v.Desired.Height))
		b.WriteString(fmt.Sprintf("Constrained: %dx%d @ %d%%\n", v.Constrained.Width, v.Constrained.Height, v.Constrained.Percent()))
		b.WriteString(fmt.Sprintf("Resize: %s\n", v.ResizeState))
	}

	b.WriteString("\n--- Active Breakpoints ---\n")
	for _, bp := range s.Breakpoints {
		status := "[ ]"
		if bp.Active {
			status = "[X]"
		}
		b.WriteString(fmt.Sprintf("  %s %s (threshold: %d %s)\n", status, bp.Name, bp.Threshold, bp.Dimension))
	}

	if s.Components != nil {
		b.WriteString("\n--- Components ---\n")
		writeNodeText(&b, s.Components, 0)
	}
	return b.String()
}

func writeNodeText(b *strings.Builder, node *Node, indent int) {
	b.WriteString(strings.Repeat("  ", indent))
	b.WriteString(node.Type)
	if node.ID != "" {
		b.WriteString(fmt.Sprintf(" [%s]", node.ID))
	}
	b.WriteString(fmt.Sprintf(" (%dx%d)", node.Bounds.Width, node.Bounds.Height))
	if !node.Visible {
		b.WriteString(" hidden")
	}
	b.WriteString("\n")
	for _, child := range node.Children {
		writeNodeText(b, child, indent+1)
	}
}
