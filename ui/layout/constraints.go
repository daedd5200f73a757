package layout

// Column is the editor column the preview panel is docked in.
type Column int

const (
	// ColumnOne gives the panel the whole terminal width.
	ColumnOne Column = iota + 1
	// ColumnTwo docks the panel in the right half, next to the history pane.
	ColumnTwo
)

// String returns the string representation of the column.
func (c Column) String() string {
	switch c {
	case ColumnOne:
		return "one"
	case ColumnTwo:
		return "two"
	default:
		return "unknown"
	}
}

// Toggle returns the other column.
func (c Column) Toggle() Column {
	if c == ColumnTwo {
		return ColumnOne
	}
	return ColumnTwo
}

// Constraints holds the computed layout constraints for the host panel.
type Constraints struct {
	// Terminal dimensions
	TerminalWidth  int
	TerminalHeight int

	// Computed mode
	Mode   LayoutMode
	Column Column

	// Panel dimensions (computed, in cells)
	HistoryWidth    int
	PanelWidth      int
	AddressHeight   int
	ContainerWidth  int
	ContainerHeight int
	MenuWidth       int
	MenuHeight      int
	ErrBoxWidth     int
	ErrBoxHeight    int

	ShowMinWarning bool // Terminal is below minimum size
}

// ComputeConstraints calculates layout constraints for the given terminal
// dimensions and panel column.
func ComputeConstraints(width, height int, column Column) Constraints {
	c := Constraints{
		TerminalWidth:  width,
		TerminalHeight: height,
		Column:         column,
	}

	c.Mode = DetermineMode(width, height)
	if width < MinWidth || height < MinHeight {
		c.ShowMinWarning = true
	}

	c.ErrBoxHeight = ErrBoxHeight
	c.ErrBoxWidth = width
	c.MenuHeight = computeMenuHeight(c.Mode)
	c.MenuWidth = width
	c.AddressHeight = AddressBarHeight

	c.PanelWidth = width
	if column == ColumnTwo {
		c.HistoryWidth = computeHistoryWidth(width)
		c.PanelWidth = width - c.HistoryWidth
	}

	c.ContainerWidth = max(0, c.PanelWidth)
	c.ContainerHeight = max(0, height-c.AddressHeight-c.MenuHeight-c.ErrBoxHeight)

	return c
}

// computeHistoryWidth gives the history pane half the terminal, never less
// than HistoryMinWidth unless the terminal itself is that narrow.
func computeHistoryWidth(totalWidth int) int {
	if totalWidth < HistoryMinWidth*2 {
		return totalWidth / 2
	}
	return max(HistoryMinWidth, totalWidth/2)
}

// computeMenuHeight calculates the menu height based on mode.
func computeMenuHeight(mode LayoutMode) int {
	switch mode {
	case LayoutFull, LayoutStandard:
		return MenuStandardHeight
	default:
		return MenuMinHeight
	}
}

// ComputeOverlaySize calculates constrained overlay dimensions.
func ComputeOverlaySize(termWidth, termHeight int, preferredWidth, preferredHeight int) (int, int) {
	maxW := termWidth - OverlayMargin*2
	maxH := termHeight - OverlayMargin*2

	w := clamp(preferredWidth, OverlayMinWidth, min(maxW, OverlayMaxWidth))
	h := clamp(preferredHeight, OverlayMinHeight, min(maxH, OverlayMaxHeight))

	return w, h
}

// Helper functions

// clamp bounds value to [minVal, maxVal]. When the range is inverted the
// lower bound wins.
func clamp(value, minVal, maxVal int) int {
	if value > maxVal {
		value = maxVal
	}
	if value < minVal {
		value = minVal
	}
	return value
}
