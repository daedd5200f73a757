package layout

// Degradation holds flags indicating which panel features should be hidden or simplified.
// Features are listed in order of degradation priority (first to hide).
type Degradation struct {
	// Toolbar degradation
	HidePresetLabel bool // Show the preset dropdown without its caption (width < 90)
	HideZoomSlider  bool // Drop the zoom slider, keep the readout (width < 70)
	ShortReadout    bool // Drop the zoom percentage from the readout (width < 64)

	// Host chrome
	SingleLineMenu bool // Compact menu to one line (height < 24)
	HideHistory    bool // Column two without a history pane (width < 2*HistoryMinWidth)

	// Critical degradation
	ShowMinWarning bool
}

// Threshold constants for degradation
const (
	PresetLabelHideWidth = 90
	ZoomSliderHideWidth  = 70
	ShortReadoutWidth    = 64
	SingleLineMenuHeight = 24
)

// ComputeDegradation calculates which panel features should be degraded. Toolbar
// thresholds are checked against the panel width, not the terminal width.
func ComputeDegradation(c Constraints) Degradation {
	return Degradation{
		HidePresetLabel: c.PanelWidth < PresetLabelHideWidth,
		HideZoomSlider:  c.PanelWidth < ZoomSliderHideWidth,
		ShortReadout:    c.PanelWidth < ShortReadoutWidth,

		SingleLineMenu: c.TerminalHeight < SingleLineMenuHeight,
		HideHistory:    c.Column == ColumnTwo && c.TerminalWidth < HistoryMinWidth*2,

		ShowMinWarning: c.ShowMinWarning,
	}
}

// IsCompactToolbar returns true if the toolbar should use compact rendering.
func (d Degradation) IsCompactToolbar() bool {
	return d.HidePresetLabel || d.HideZoomSlider
}
