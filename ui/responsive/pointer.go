// Package responsive holds the interactive side of responsive design mode:
// drag-resize handles, device presets, zoom and rotation.
package responsive

// PointerKind distinguishes mouse pointers from touch pointers.
type PointerKind int

const (
	Mouse PointerKind = iota
	Touch
)

// Point is a pointer position in logical pixels.
type Point struct {
	X int
	Y int
}

// PointerEvent is a mouse or touch event. Touch events carry one point per
// finger on the target.
type PointerEvent struct {
	Kind    PointerKind
	X       int
	Y       int
	Touches []Point
}

// MouseAt builds a mouse event at x, y.
func MouseAt(x, y int) PointerEvent {
	return PointerEvent{Kind: Mouse, X: x, Y: y}
}

// TouchAt builds a touch event from the given finger positions.
func TouchAt(points ...Point) PointerEvent {
	return PointerEvent{Kind: Touch, Touches: points}
}

// Position returns the pointer position. Touch events with anything other
// than exactly one finger have no position.
func (e PointerEvent) Position() (Point, bool) {
	if e.Kind == Touch {
		if len(e.Touches) != 1 {
			return Point{}, false
		}
		return e.Touches[0], true
	}
	return Point{X: e.X, Y: e.Y}, true
}
