package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"

	"webpreview/ui/layout"
	"webpreview/ui/responsive"
)

// ToolbarAction is the control under a toolbar column.
type ToolbarAction int

const (
	ToolbarNone ToolbarAction = iota
	ToolbarPreset
	ToolbarRotate
	ToolbarZoomOut
	ToolbarZoomTrack
	ToolbarZoomIn
)

const (
	sliderMinWidth = 8
	sliderMaxWidth = 24
	toolbarGap     = "  "
)

var (
	toolbarStyle = lipgloss.NewStyle().Foreground(TextSecondary)
	presetStyle  = lipgloss.NewStyle().Foreground(TextPrimary).Bold(true)
	knobStyle    = lipgloss.NewStyle().Foreground(Primary)
	trackStyle   = lipgloss.NewStyle().Foreground(TextMuted)
	readoutStyle = lipgloss.NewStyle().Foreground(TextPrimary)
	zoomedStyle  = lipgloss.NewStyle().Foreground(StatusWarning)
	captionStyle = lipgloss.NewStyle().Foreground(TextMuted)
)

// ToolbarState is what the sizing toolbar displays.
type ToolbarState struct {
	Preset      string
	Orientation responsive.Orientation
	ZoomFactor  float64
	Size        layout.ConstrainedSize
}

type toolbarRegion struct {
	action     ToolbarAction
	start, end int
}

// Toolbar is the sizing toolbar above the responsive viewport: preset
// selector, rotate control, zoom slider and the size readout.
type Toolbar struct {
	regions     []toolbarRegion
	sliderStart int
	sliderWidth int
}

func NewToolbar() *Toolbar {
	return &Toolbar{}
}

// Readout formats the size readout, "W × H (Z%)" or "W × H" when short.
func Readout(size layout.ConstrainedSize, short bool) string {
	if short {
		return fmt.Sprintf("%d × %d", size.Width, size.Height)
	}
	return fmt.Sprintf("%d × %d (%d%%)", size.Width, size.Height, size.Percent())
}

func sliderWidthFor(width int) int {
	return min(max(width/4, sliderMinWidth), sliderMaxWidth)
}

// Render draws the toolbar into width columns and records the hit regions.
func (t *Toolbar) Render(width int, st ToolbarState, d layout.Degradation) string {
	t.regions = t.regions[:0]
	t.sliderWidth = 0

	var b strings.Builder
	col := 0
	add := func(action ToolbarAction, plain string, style lipgloss.Style) {
		w := runewidth.StringWidth(plain)
		if action != ToolbarNone {
			t.regions = append(t.regions, toolbarRegion{action: action, start: col, end: col + w})
		}
		b.WriteString(style.Render(plain))
		col += w
	}

	if !d.HidePresetLabel {
		add(ToolbarNone, "Preset: ", captionStyle)
	}
	add(ToolbarPreset, st.Preset+" ▾", presetStyle)
	add(ToolbarNone, toolbarGap, toolbarStyle)
	add(ToolbarRotate, "↻ "+st.Orientation.String(), toolbarStyle)

	if !d.HideZoomSlider {
		add(ToolbarNone, toolbarGap, toolbarStyle)
		add(ToolbarZoomOut, "−", toolbarStyle)
		t.sliderWidth = sliderWidthFor(width)
		t.sliderStart = col
		knob := knobPosition(st.ZoomFactor, t.sliderWidth)
		for i := 0; i < t.sliderWidth; i++ {
			if i == knob {
				add(ToolbarZoomTrack, "●", knobStyle)
			} else {
				add(ToolbarZoomTrack, "─", trackStyle)
			}
		}
		add(ToolbarZoomIn, "+", toolbarStyle)
	}

	add(ToolbarNone, toolbarGap, toolbarStyle)
	style := readoutStyle
	if st.Size.Zoom < 1 {
		style = zoomedStyle
	}
	add(ToolbarNone, Readout(st.Size, d.ShortReadout), style)

	line := truncate.String(b.String(), uint(max(0, width)))
	if pad := width - min(col, width); pad > 0 {
		line += strings.Repeat(" ", pad)
	}
	return line
}

func knobPosition(factor float64, width int) int {
	if width <= 1 {
		return 0
	}
	f := (factor - responsive.MinZoom) / (responsive.MaxZoom - responsive.MinZoom)
	f = math.Max(0, math.Min(1, f))
	return int(math.Round(f * float64(width-1)))
}

// HitTest returns the control at column col of the last render.
func (t *Toolbar) HitTest(col int) ToolbarAction {
	for _, r := range t.regions {
		if col >= r.start && col < r.end {
			return r.action
		}
	}
	return ToolbarNone
}

// FactorAt maps a column on the zoom track to a zoom factor. Columns outside
// the track clamp to its ends. ok is false when no slider is shown.
func (t *Toolbar) FactorAt(col int) (factor float64, ok bool) {
	if t.sliderWidth == 0 {
		return 0, false
	}
	if t.sliderWidth == 1 {
		return 1, true
	}
	pos := min(max(col-t.sliderStart, 0), t.sliderWidth-1)
	f := float64(pos) / float64(t.sliderWidth-1)
	return responsive.SnapZoom(responsive.MinZoom + f*(responsive.MaxZoom-responsive.MinZoom)), true
}
