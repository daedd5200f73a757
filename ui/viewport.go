package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"

	"webpreview/log"
	"webpreview/session"
	"webpreview/ui/layout"
	"webpreview/ui/responsive"
)

// BadgeDelay is how long the size badge stays up after the last resize.
const BadgeDelay = 1000 * time.Millisecond

// keyboardZoomStep is the slider movement of one zoom key press.
const keyboardZoomStep = 5 * responsive.ZoomStep

// BadgeHideMsg hides the size badge unless a newer resize was observed.
type BadgeHideMsg struct {
	Seq int
}

// Hit describes what sits under a viewport cell.
type Hit struct {
	Handle  responsive.Handle
	Toolbar ToolbarAction
	InFrame bool
}

// Viewport is the container the content frame is drawn in. In responsive
// mode it wraps the frame with the sizing toolbar and the resize handles and
// scales the simulated device into the space that is left.
type Viewport struct {
	metrics layout.CellMetrics
	cols    int
	rows    int

	container  layout.ContainerSize
	observed   bool
	badgeSeq   int
	badgeDelay time.Duration
	closed     bool

	frame   *session.Frame
	sizer   *responsive.Sizer
	resizer *responsive.Resizer
	toolbar *Toolbar

	pointerEvents bool
	zooming       bool
	focused       bool
	degradation   layout.Degradation

	// placement of the last responsive render, in cells
	boxLeft, boxWidth, boxHeight int
}

// NewViewport creates a viewport showing frame.
func NewViewport(frame *session.Frame) *Viewport {
	v := &Viewport{
		metrics:       layout.DefaultCellMetrics,
		badgeDelay:    BadgeDelay,
		frame:         frame,
		toolbar:       NewToolbar(),
		pointerEvents: true,
	}
	v.resizer = responsive.NewResizer(responsive.Hooks{
		Attach: func(responsive.Session) { v.pointerEvents = false },
		Detach: func(responsive.Session) { v.pointerEvents = true },
	})
	return v
}

// Observe records a new container size in cells. The badge is shown for
// every observation but the first one, and hidden again by the returned
// command once no resize happened for BadgeDelay.
func (v *Viewport) Observe(cols, rows int) tea.Cmd {
	width, height := v.metrics.ToPixels(max(0, cols), max(0, rows))
	first := !v.observed
	v.observed = true
	v.cols, v.rows = cols, rows
	v.container = layout.ContainerSize{
		Width:   width,
		Height:  height,
		Visible: !first && width > 0 && height > 0,
	}
	v.frame.SetPanelWidth(width)
	if v.sizer == nil {
		v.sizer = responsive.NewSizer(responsive.DefaultPreset(v.container).Resolve(v.container))
	}
	log.LayoutTrace("viewport observed %dx%d cells (%dx%d px) visible=%v", cols, rows, width, height, v.container.Visible)

	v.badgeSeq++
	if v.closed {
		return nil
	}
	seq := v.badgeSeq
	return tea.Tick(v.badgeDelay, func(time.Time) tea.Msg {
		return BadgeHideMsg{Seq: seq}
	})
}

// HideBadge handles a badge timer. Stale timers are ignored.
func (v *Viewport) HideBadge(msg BadgeHideMsg) {
	if v.closed || msg.Seq != v.badgeSeq {
		return
	}
	v.container.Visible = false
}

// Close stops the badge timer and any drag in progress.
func (v *Viewport) Close() {
	v.closed = true
	v.badgeSeq++
	v.resizer.Close()
	v.zooming = false
}

// Container returns the observed container size in pixels.
func (v *Viewport) Container() layout.ContainerSize {
	return v.container
}

// Constrained returns the simulated viewport that fits the container.
func (v *Viewport) Constrained() layout.ConstrainedSize {
	if v.sizer == nil {
		return layout.ConstrainedSize{Zoom: 1}
	}
	return layout.Constrain(v.container, v.sizer.Desired())
}

// Sizer returns the device sizer. It is nil until the first observation.
func (v *Viewport) Sizer() *responsive.Sizer {
	return v.sizer
}

func (v *Viewport) Resizer() *responsive.Resizer {
	return v.resizer
}

// Responsive reports whether the sizing chrome is shown.
func (v *Viewport) Responsive() bool {
	return v.frame.Responsive()
}

// PointerEvents reports whether mouse input reaches the frame. It is off
// while a resize drag runs.
func (v *Viewport) PointerEvents() bool {
	return v.pointerEvents
}

// Cursor is the cursor hint of the active drag.
func (v *Viewport) Cursor() string {
	return v.resizer.Cursor()
}

func (v *Viewport) SetDegradation(d layout.Degradation) {
	v.degradation = d
}

func (v *Viewport) SetFocused(focused bool) {
	v.focused = focused
}

// Choices returns the presets offered in the picker, built-in one first.
func (v *Viewport) Choices() []responsive.Preset {
	if v.sizer == nil {
		return nil
	}
	v.sizer.SetPresets(v.frame.Presets())
	return v.sizer.Choices(v.container)
}

// ApplyPreset sets the device size from p.
func (v *Viewport) ApplyPreset(p responsive.Preset) {
	if v.sizer == nil {
		return
	}
	v.sizer.ApplyPreset(p, v.container)
}

// Rotate swaps the device width and height.
func (v *Viewport) Rotate() {
	if v.sizer != nil {
		v.sizer.Rotate()
	}
}

// ZoomIn moves the zoom slider one keyboard step up.
func (v *Viewport) ZoomIn() {
	v.zoomBy(keyboardZoomStep)
}

// ZoomOut moves the zoom slider one keyboard step down.
func (v *Viewport) ZoomOut() {
	v.zoomBy(-keyboardZoomStep)
}

func (v *Viewport) zoomBy(delta float64) {
	if v.sizer == nil {
		return
	}
	v.sizer.Zoom(v.sizer.ZoomState().Factor + delta)
}

// Reset returns to the built-in device size.
func (v *Viewport) Reset() {
	if v.sizer != nil {
		v.sizer.Reset(v.container)
	}
}

// HitTest returns what is under the cell at col, row, relative to the
// viewport origin, as of the last render.
func (v *Viewport) HitTest(col, row int) Hit {
	if col < 0 || row < 0 || col >= v.cols || row >= v.rows {
		return Hit{}
	}
	if !v.Responsive() {
		return Hit{InFrame: true}
	}
	if row < layout.ToolbarRows {
		return Hit{Toolbar: v.toolbar.HitTest(col)}
	}

	left := v.boxLeft
	boxStart := left + layout.HandleCells
	right := boxStart + v.boxWidth
	end := right + layout.HandleCells
	bottom := layout.ToolbarRows + v.boxHeight

	switch {
	case row < bottom:
		switch {
		case col >= left && col < boxStart:
			return Hit{Handle: responsive.HandleLeft}
		case col >= boxStart && col < right:
			return Hit{InFrame: true}
		case col >= right && col < end:
			return Hit{Handle: responsive.HandleRight}
		}
	case row == bottom:
		switch {
		case col >= left && col < boxStart:
			return Hit{Handle: responsive.HandleBottomLeft}
		case col >= boxStart && col < right:
			return Hit{Handle: responsive.HandleBottom}
		case col >= right && col < end:
			return Hit{Handle: responsive.HandleBottomRight}
		}
	}
	return Hit{}
}

// MousePress handles a button press at col, row. Handles start a resize
// drag, toolbar controls act directly; the hit is returned so the caller can
// open the preset picker or forward the click to the frame.
func (v *Viewport) MousePress(col, row int) Hit {
	hit := v.HitTest(col, row)
	if v.sizer == nil {
		return hit
	}
	v.focused = hit.InFrame && v.pointerEvents

	if hit.Handle != responsive.HandleNone {
		ev := responsive.MouseAt(v.metrics.PointX(col), v.metrics.PointY(row))
		v.resizer.Press(hit.Handle, ev, v.Constrained())
		return hit
	}

	switch hit.Toolbar {
	case ToolbarRotate:
		v.sizer.Rotate()
	case ToolbarZoomIn:
		v.ZoomIn()
	case ToolbarZoomOut:
		v.ZoomOut()
	case ToolbarZoomTrack:
		if factor, ok := v.toolbar.FactorAt(col); ok {
			v.zooming = true
			v.sizer.BeginZoom()
			v.sizer.Zoom(factor)
		}
	}
	return hit
}

// MouseMotion continues a resize or slider drag.
func (v *Viewport) MouseMotion(col, row int) {
	if v.sizer == nil {
		return
	}
	if v.zooming {
		if factor, ok := v.toolbar.FactorAt(col); ok {
			v.sizer.Zoom(factor)
		}
		return
	}
	ev := responsive.MouseAt(v.metrics.PointX(col), v.metrics.PointY(row))
	if next, ok := v.resizer.Move(ev, v.sizer.Desired()); ok {
		v.sizer.Drag(next)
	}
}

// MouseRelease ends any drag. It is delivered wherever the pointer is.
func (v *Viewport) MouseRelease() {
	v.resizer.Release()
	if v.zooming {
		v.zooming = false
		v.sizer.EndZoom()
	}
}

// Render draws the viewport into its observed cell area.
func (v *Viewport) Render() string {
	if v.cols <= 0 || v.rows <= 0 {
		return ""
	}
	if v.Responsive() {
		return v.renderResponsive()
	}
	return v.renderNormal()
}

func (v *Viewport) renderNormal() string {
	view := v.renderFrame(v.cols, v.rows)
	if v.container.Visible {
		view = placeBadge(view, v.container)
	}
	return view
}

func (v *Viewport) renderResponsive() string {
	minCols := 2*layout.HandleCells + 1
	minRows := layout.ToolbarRows + layout.BottomHandleRows + 1
	if v.cols < minCols || v.rows < minRows || v.sizer == nil {
		return lipgloss.Place(v.cols, v.rows, lipgloss.Center, lipgloss.Center,
			TextStyles.Muted.Render("too small"))
	}

	size := v.Constrained()
	frame := size.Frame()
	boxWidth, boxHeight := v.metrics.ToCells(frame.BoxWidth, frame.BoxHeight)
	boxWidth = min(max(boxWidth, 1), v.cols-2*layout.HandleCells)
	boxHeight = min(max(boxHeight, 1), v.rows-layout.ToolbarRows-layout.BottomHandleRows)

	// Centered by hand so hit testing matches what is drawn.
	outer := boxWidth + 2*layout.HandleCells
	v.boxLeft = (v.cols - outer) / 2
	v.boxWidth, v.boxHeight = boxWidth, boxHeight
	padLeft := strings.Repeat(" ", v.boxLeft)
	padRight := strings.Repeat(" ", v.cols-outer-v.boxLeft)

	lines := make([]string, 0, v.rows)
	lines = append(lines, v.toolbar.Render(v.cols, ToolbarState{
		Preset:      v.sizer.Selected(),
		Orientation: v.sizer.Orientation(),
		ZoomFactor:  v.sizer.ZoomState().Factor,
		Size:        size,
	}, v.degradation))

	box := strings.Split(v.renderFrame(boxWidth, boxHeight), "\n")
	grip := boxHeight / 2
	for i := 0; i < boxHeight; i++ {
		line := ""
		if i < len(box) {
			line = box[i]
		}
		lines = append(lines, padLeft+
			v.handle(responsive.HandleLeft, i == grip, "⋮")+
			line+
			v.handle(responsive.HandleRight, i == grip, "⋮")+
			padRight)
	}

	lines = append(lines, padLeft+
		v.handle(responsive.HandleBottomLeft, true, "◣")+
		v.bottomHandle(boxWidth)+
		v.handle(responsive.HandleBottomRight, true, "◢")+
		padRight)

	blank := strings.Repeat(" ", v.cols)
	for len(lines) < v.rows {
		lines = append(lines, blank)
	}
	return strings.Join(lines, "\n")
}

// handle renders one HandleCells-wide handle cell, with the grip mark when
// grip is set.
func (v *Viewport) handle(h responsive.Handle, grip bool, mark string) string {
	text := strings.Repeat(" ", layout.HandleCells)
	if grip {
		text = runewidth.FillRight(mark, layout.HandleCells)
		if h == responsive.HandleLeft || h == responsive.HandleBottomRight {
			text = runewidth.FillLeft(mark, layout.HandleCells)
		}
	}
	return v.handleStyle(h).Render(text)
}

func (v *Viewport) bottomHandle(width int) string {
	mark := "⋯"
	left := (width - runewidth.StringWidth(mark)) / 2
	if left < 0 {
		return v.handleStyle(responsive.HandleBottom).Render(strings.Repeat(" ", width))
	}
	text := strings.Repeat(" ", left) + mark
	text = runewidth.FillRight(text, width)
	return v.handleStyle(responsive.HandleBottom).Render(text)
}

func (v *Viewport) handleStyle(h responsive.Handle) lipgloss.Style {
	if s, ok := v.resizer.Session(); ok && s.Handle == h {
		return HandleStyles.Active
	}
	return HandleStyles.Idle
}

// renderFrame draws the content frame as a width x height cell box.
func (v *Viewport) renderFrame(width, height int) string {
	if width < 3 || height < 3 {
		fill := strings.Repeat("▒", width)
		rows := make([]string, height)
		for i := range rows {
			rows[i] = fill
		}
		return lipgloss.NewStyle().Foreground(Border).Render(strings.Join(rows, "\n"))
	}

	innerWidth, innerHeight := width-2, height-2
	return FrameStyle(v.focused).
		Width(innerWidth).
		Height(innerHeight).
		MaxHeight(height).
		Render(lipgloss.Place(innerWidth, innerHeight, lipgloss.Center, lipgloss.Center,
			v.frameContent(innerWidth)))
}

func (v *Viewport) frameContent(width int) string {
	url := v.frame.URL()
	if url == "" {
		return TextStyles.Muted.Render(truncate.String("No page loaded", uint(width)))
	}
	lines := []string{TextStyles.Primary.Render(truncate.StringWithTail(url, uint(width), "…"))}
	if v.Responsive() {
		size := v.Constrained()
		lines = append(lines, TextStyles.Muted.Render(truncate.String(Readout(size, false), uint(width))))
	}
	if !v.pointerEvents {
		lines = append(lines, TextStyles.Muted.Render(truncate.String("resizing", uint(width))))
	}
	return strings.Join(lines, "\n")
}
