package responsive

import (
	"math"

	"webpreview/log"
	"webpreview/ui/layout"
)

// Zoom slider domain.
const (
	MinZoom  = 0.2
	MaxZoom  = 1.8
	ZoomStep = 0.02
)

// Orientation is the device orientation shown by the rotate control.
type Orientation int

const (
	Portrait Orientation = iota
	Landscape
)

// String returns the orientation name.
func (o Orientation) String() string {
	if o == Landscape {
		return "landscape"
	}
	return "portrait"
}

func orientationOf(d layout.DesiredSize) Orientation {
	if d.Landscape() {
		return Landscape
	}
	return Portrait
}

// ZoomState is the zoom slider. BaselineWidth is the desired width captured
// when the current gesture started.
type ZoomState struct {
	Factor        float64
	BaselineWidth float64
	Active        bool
}

// Sizer owns the desired device size and every control that mutates it:
// presets, zoom, rotation and drag results. Orientation is recomputed after
// each mutation so it always matches the dimensions.
type Sizer struct {
	desired     layout.DesiredSize
	orientation Orientation
	zoom        ZoomState
	presets     []Preset
	selected    string
}

// NewSizer creates a sizer starting at desired.
func NewSizer(desired layout.DesiredSize) *Sizer {
	s := &Sizer{zoom: ZoomState{Factor: 1}, selected: DefaultPresetName}
	s.set(desired)
	return s
}

// Desired returns the current desired size.
func (s *Sizer) Desired() layout.DesiredSize {
	return s.desired
}

// Orientation returns the current orientation.
func (s *Sizer) Orientation() Orientation {
	return s.orientation
}

// ZoomState returns the zoom slider state.
func (s *Sizer) ZoomState() ZoomState {
	return s.zoom
}

// Selected returns the name of the last applied preset.
func (s *Sizer) Selected() string {
	return s.selected
}

// Presets returns the configured presets, without the built-in one.
func (s *Sizer) Presets() []Preset {
	return s.presets
}

// SetPresets replaces the configured presets.
func (s *Sizer) SetPresets(presets []Preset) {
	s.presets = presets
}

// Choices returns the presets offered for selection in container, built-in
// preset first.
func (s *Sizer) Choices(container layout.ContainerSize) []Preset {
	choices := make([]Preset, 0, len(s.presets)+1)
	choices = append(choices, DefaultPreset(container))
	return append(choices, s.presets...)
}

// ApplyPreset sets the desired size from p.
func (s *Sizer) ApplyPreset(p Preset, container layout.ContainerSize) {
	s.EndZoom()
	s.selected = p.Name
	s.set(p.Resolve(container))
	log.LayoutTrace("preset %s (%s) -> %.0fx%.0f", p.Name, p.Value(), s.desired.Width, s.desired.Height)
}

// BeginZoom starts a zoom gesture, capturing the current width as baseline.
func (s *Sizer) BeginZoom() {
	s.zoom.BaselineWidth = s.desired.Width
	s.zoom.Active = true
}

// Zoom sets the slider to factor and scales the baseline width by it. The
// height is left alone. Without an active gesture one is started first.
func (s *Sizer) Zoom(factor float64) {
	if !s.zoom.Active {
		s.BeginZoom()
	}
	s.zoom.Factor = SnapZoom(factor)
	s.set(layout.DesiredSize{
		Width:  s.zoom.BaselineWidth * s.zoom.Factor,
		Height: s.desired.Height,
	})
}

// EndZoom ends the zoom gesture. The slider keeps its position.
func (s *Sizer) EndZoom() {
	s.zoom.Active = false
}

// Rotate swaps width and height.
func (s *Sizer) Rotate() {
	s.EndZoom()
	s.set(s.desired.Rotated())
}

// Drag applies a size produced by a resize handle.
func (s *Sizer) Drag(d layout.DesiredSize) {
	s.EndZoom()
	s.set(d)
}

// Reset returns to the built-in preset for container.
func (s *Sizer) Reset(container layout.ContainerSize) {
	s.zoom = ZoomState{Factor: 1}
	s.ApplyPreset(DefaultPreset(container), container)
}

func (s *Sizer) set(d layout.DesiredSize) {
	s.desired = d
	s.orientation = orientationOf(d)
}

// SnapZoom clamps factor to the slider domain and snaps it to ZoomStep.
func SnapZoom(factor float64) float64 {
	if math.IsNaN(factor) {
		return 1
	}
	factor = math.Max(MinZoom, math.Min(MaxZoom, factor))
	perUnit := math.Round(1 / ZoomStep)
	return math.Round(factor*perUnit) / perUnit
}
