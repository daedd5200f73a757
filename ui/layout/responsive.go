package layout

import "math"

// Responsive viewport constants, in logical pixels.
const (
	// MinViewport is the floor for either axis of the simulated viewport.
	MinViewport = 50

	// SideHandleWidth is the width of one of the left/right resize handles.
	SideHandleWidth = 17

	// BottomHandleHeight is the height of the bottom handle strip.
	BottomHandleHeight = 17

	// SizingToolbarHeight is the height of the preset/rotate/zoom toolbar.
	SizingToolbarHeight = 24

	// CollapsedZoom is the axis zoom used when the container has no room left
	// on that axis.
	CollapsedZoom = 0.01
)

// Chrome is the space reserved around the simulated viewport for controls.
type Chrome struct {
	Horizontal int
	Vertical   int
}

// DefaultChrome reserves both side handles horizontally and the toolbar plus
// the bottom handle strip vertically.
var DefaultChrome = Chrome{
	Horizontal: 2 * SideHandleWidth,
	Vertical:   BottomHandleHeight + SizingToolbarHeight,
}

// ContainerSize is the observed size of the rendering container.
type ContainerSize struct {
	Width   int
	Height  int
	Visible bool
}

// DesiredSize is the simulated device size the user asked for.
type DesiredSize struct {
	Width  float64
	Height float64
}

// Landscape reports whether the desired size is wider than it is tall.
func (d DesiredSize) Landscape() bool {
	return d.Width > d.Height
}

// Rotated returns the size with width and height swapped.
func (d DesiredSize) Rotated() DesiredSize {
	return DesiredSize{Width: d.Height, Height: d.Width}
}

// ConstrainedSize is the viewport that actually fits. Width and Height are the
// unscaled dimensions the page sees; Zoom is the uniform visual scale.
type ConstrainedSize struct {
	Width  int
	Height int
	Zoom   float64
}

// Available returns the room left for the viewport inside container. Negative
// space is reported as zero.
func (c Chrome) Available(container ContainerSize) (width, height int) {
	return max(0, container.Width-c.Horizontal), max(0, container.Height-c.Vertical)
}

// Constrain fits desired into container using DefaultChrome.
func Constrain(container ContainerSize, desired DesiredSize) ConstrainedSize {
	return DefaultChrome.Constrain(container, desired)
}

// Constrain fits desired into the space container leaves after chrome. Each
// axis gets its own zoom; the tighter one scales both axes.
func (c Chrome) Constrain(container ContainerSize, desired DesiredSize) ConstrainedSize {
	availWidth, availHeight := c.Available(container)
	width, widthZoom := constrainAxis(desired.Width, availWidth)
	height, heightZoom := constrainAxis(desired.Height, availHeight)
	return ConstrainedSize{
		Width:  width,
		Height: height,
		Zoom:   math.Min(widthZoom, heightZoom),
	}
}

// constrainAxis computes the axis zoom first, then clamps the desired size
// against the zoom-adjusted available space. The floor is applied last so it
// holds even when the available space is below it.
func constrainAxis(desired float64, available int) (int, float64) {
	zoom := 1.0
	if desired > 0 && desired > float64(available) {
		if available > 0 {
			zoom = float64(available) / desired
		} else {
			zoom = CollapsedZoom
		}
	}

	size := round(desired * (1 / zoom))
	limit := round(float64(available) * (1 / zoom))
	return max(MinViewport, min(size, limit)), zoom
}

// Frame describes how the simulated viewport is drawn: the page is laid out
// at Width x Height, scaled by Zoom into a BoxWidth x BoxHeight box and
// shifted left by OffsetX to stay centered.
type Frame struct {
	Width     int
	Height    int
	Zoom      float64
	BoxWidth  int
	BoxHeight int
	OffsetX   float64
}

// Frame returns the render placement for the constrained size.
func (s ConstrainedSize) Frame() Frame {
	f := Frame{
		Width:     s.Width,
		Height:    s.Height,
		Zoom:      s.Zoom,
		BoxWidth:  round(float64(s.Width) * s.Zoom),
		BoxHeight: round(float64(s.Height) * s.Zoom),
	}
	if f.BoxWidth < f.Width {
		f.OffsetX = float64(f.Width-f.BoxWidth) / 2
	}
	return f
}

// Percent returns the zoom as a whole percentage.
func (s ConstrainedSize) Percent() int {
	return round(s.Zoom * 100)
}

func round(v float64) int {
	return int(math.Round(v))
}
