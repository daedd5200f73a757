package responsive

import (
	"webpreview/log"
	"webpreview/ui/layout"
)

// Handle identifies one of the five resize handles around the viewport.
type Handle int

const (
	HandleNone Handle = iota
	HandleLeft
	HandleRight
	HandleBottom
	HandleBottomLeft
	HandleBottomRight
)

// String returns the handle name.
func (h Handle) String() string {
	switch h {
	case HandleLeft:
		return "left"
	case HandleRight:
		return "right"
	case HandleBottom:
		return "bottom"
	case HandleBottomLeft:
		return "bottom-left"
	case HandleBottomRight:
		return "bottom-right"
	default:
		return "none"
	}
}

// Cursor returns the cursor hint shown while dragging the handle.
func (h Handle) Cursor() string {
	switch h {
	case HandleLeft, HandleRight:
		return "ew-resize"
	case HandleBottom:
		return "ns-resize"
	case HandleBottomLeft:
		return "nesw-resize"
	case HandleBottomRight:
		return "nwse-resize"
	default:
		return ""
	}
}

func (h Handle) resizesWidth() bool {
	return h == HandleLeft || h == HandleRight || h == HandleBottomLeft || h == HandleBottomRight
}

func (h Handle) resizesHeight() bool {
	return h == HandleBottom || h == HandleBottomLeft || h == HandleBottomRight
}

// State is the resize controller state.
type State int

const (
	Idle State = iota
	Dragging
)

// String returns the state name.
func (s State) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// Session is an in-progress drag. Only the fields for the axes the handle
// resizes are populated.
type Session struct {
	Handle      Handle
	StartWidth  int
	StartHeight int
	StartX      int
	StartY      int
}

// Apply returns the desired size for the pointer at p. Axes the handle does
// not resize keep their value from current.
//
// The viewport grows about its own center, so the corner handles double the
// horizontal delta to keep the edge under the pointer. The plain side handles
// do not.
func (s Session) Apply(p Point, current layout.DesiredSize) layout.DesiredSize {
	dx := float64(p.X - s.StartX)
	dy := float64(p.Y - s.StartY)
	next := current

	switch s.Handle {
	case HandleLeft:
		next.Width = float64(s.StartWidth) - dx
	case HandleRight:
		next.Width = float64(s.StartWidth) + dx
	case HandleBottom:
		next.Height = float64(s.StartHeight) + dy
	case HandleBottomLeft:
		next.Width = float64(s.StartWidth) - 2*dx
		next.Height = float64(s.StartHeight) + dy
	case HandleBottomRight:
		next.Width = float64(s.StartWidth) + 2*dx
		next.Height = float64(s.StartHeight) + dy
	}
	return next
}

// Hooks observe the drag lifecycle. Attach runs when Dragging is entered and
// Detach when it is left, including through Close.
type Hooks struct {
	Attach func(Session)
	Detach func(Session)
}

// Resizer is the Idle/Dragging state machine behind the resize handles.
type Resizer struct {
	state     State
	session   Session
	hooks     Hooks
	listening bool
}

// NewResizer creates an idle resizer.
func NewResizer(hooks Hooks) *Resizer {
	return &Resizer{hooks: hooks}
}

// State returns the current state.
func (r *Resizer) State() State {
	return r.state
}

// Active reports whether a drag is in progress.
func (r *Resizer) Active() bool {
	return r.state == Dragging
}

// Session returns the active session, if any.
func (r *Resizer) Session() (Session, bool) {
	return r.session, r.state == Dragging
}

// Listening reports whether the window-level move and release hooks are
// attached. It is true exactly while Dragging.
func (r *Resizer) Listening() bool {
	return r.listening
}

// Cursor returns the cursor hint for the active drag, or "" when idle.
func (r *Resizer) Cursor() string {
	if r.state != Dragging {
		return ""
	}
	return r.session.Handle.Cursor()
}

// Press starts a drag on handle from the current constrained size. It returns
// false, leaving the resizer unchanged, when the event has no single position
// or a drag is already running.
func (r *Resizer) Press(handle Handle, ev PointerEvent, current layout.ConstrainedSize) bool {
	if handle == HandleNone || r.state == Dragging {
		return false
	}
	pos, ok := ev.Position()
	if !ok {
		log.InputTrace("ignoring press on %s handle: no single pointer", handle)
		return false
	}

	s := Session{Handle: handle}
	if handle.resizesWidth() {
		s.StartWidth = current.Width
		s.StartX = pos.X
	}
	if handle.resizesHeight() {
		s.StartHeight = current.Height
		s.StartY = pos.Y
	}
	r.enter(s)
	return true
}

// Move returns the desired size for the pointer position while dragging. ok
// is false when idle or when the event has no single position.
func (r *Resizer) Move(ev PointerEvent, current layout.DesiredSize) (next layout.DesiredSize, ok bool) {
	if r.state != Dragging {
		return current, false
	}
	pos, ok := ev.Position()
	if !ok {
		return current, false
	}
	return r.session.Apply(pos, current), true
}

// Release ends the drag. Releasing while idle is a no-op.
func (r *Resizer) Release() {
	r.exit()
}

// Close tears down any drag in progress.
func (r *Resizer) Close() {
	r.exit()
}

func (r *Resizer) enter(s Session) {
	r.state = Dragging
	r.session = s
	log.InputTrace("resize start: handle=%s w=%d h=%d at (%d,%d)", s.Handle, s.StartWidth, s.StartHeight, s.StartX, s.StartY)
	if r.hooks.Attach != nil {
		r.hooks.Attach(s)
	}
	r.listening = true
}

func (r *Resizer) exit() {
	if r.state != Dragging {
		return
	}
	s := r.session
	r.state = Idle
	r.session = Session{}
	log.InputTrace("resize end: handle=%s", s.Handle)
	r.listening = false
	if r.hooks.Detach != nil {
		r.hooks.Detach(s)
	}
}
