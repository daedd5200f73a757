package inspect

// Node is one component in the inspection tree.
type Node struct {
	Type     string         `json:"type"`
	ID       string         `json:"id,omitempty"`
	Bounds   Bounds         `json:"bounds"`
	Visible  bool           `json:"visible"`
	State    map[string]any `json:"state,omitempty"`
	Styles   *StyleInfo     `json:"styles,omitempty"`
	Children []*Node        `json:"children,omitempty"`
	Content  string         `json:"content,omitempty"`
}

// Bounds is a component's cell rectangle relative to the terminal origin.
type Bounds struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Contains reports whether the cell at x, y lies inside b.
func (b Bounds) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.Width && y >= b.Y && y < b.Y+b.Height
}

// StyleInfo is the part of a lipgloss style worth reporting.
type StyleInfo struct {
	Foreground  string `json:"foreground,omitempty"`
	Background  string `json:"background,omitempty"`
	Bold        bool   `json:"bold,omitempty"`
	Underline   bool   `json:"underline,omitempty"`
	Border      bool   `json:"border,omitempty"`
	BorderColor string `json:"border_color,omitempty"`
	// Rendered is how the foreground degrades on the detected terminal.
	Rendered string `json:"rendered,omitempty"`
}

// NewNode creates a visible node of the given type.
func NewNode(nodeType string) *Node {
	return &Node{Type: nodeType, Visible: true, State: make(map[string]any)}
}

func (n *Node) WithID(id string) *Node {
	n.ID = id
	return n
}

func (n *Node) WithBounds(x, y, width, height int) *Node {
	n.Bounds = Bounds{X: x, Y: y, Width: width, Height: height}
	return n
}

func (n *Node) WithState(key string, value any) *Node {
	if n.State == nil {
		n.State = make(map[string]any)
	}
	n.State[key] = value
	return n
}

func (n *Node) WithStyles(styles *StyleInfo) *Node {
	n.Styles = styles
	return n
}

func (n *Node) WithContent(content string) *Node {
	n.Content = content
	return n
}

// Hidden marks the node as not rendered.
func (n *Node) Hidden() *Node {
	n.Visible = false
	return n
}

// AddChild appends child and returns the parent for chaining.
func (n *Node) AddChild(child *Node) *Node {
	n.Children = append(n.Children, child)
	return n
}

// Find returns the first node of type t in the tree, depth first.
func (n *Node) Find(t string) *Node {
	if n == nil {
		return nil
	}
	if n.Type == t {
		return n
	}
	for _, c := range n.Children {
		if found := c.Find(t); found != nil {
			return found
		}
	}
	return nil
}

// At returns the deepest visible node covering the cell at x, y.
func (n *Node) At(x, y int) *Node {
	if n == nil || !n.Visible || !n.Bounds.Contains(x, y) {
		return nil
	}
	for _, c := range n.Children {
		if hit := c.At(x, y); hit != nil {
			return hit
		}
	}
	return n
}
