package layout

// Width breakpoints
const (
	// MinWidth is the smallest terminal width the panel renders without a warning.
	MinWidth = 60

	// CompactWidth triggers compact toolbar rendering.
	CompactWidth = 90

	// StandardWidth is the threshold for the standard layout.
	StandardWidth = 120

	// FullWidth is the threshold for the full layout with the history pane.
	FullWidth = 150
)

// Height breakpoints
const (
	// MinHeight is the smallest terminal height the panel renders without a warning.
	MinHeight = 16

	// CompactHeight triggers compact mode features.
	CompactHeight = 24

	// StandardHeight is the threshold for the standard layout.
	StandardHeight = 36

	// FullHeight is the threshold for the full layout.
	FullHeight = 48
)

// Host chrome, in terminal rows/columns
const (
	// AddressBarHeight is the address bar above the container.
	AddressBarHeight = 1

	// ErrBoxHeight is the fixed error box height.
	ErrBoxHeight = 1

	// MenuMinHeight is the minimum menu height (1 line + border).
	MenuMinHeight = 2

	// MenuStandardHeight is the standard menu height.
	MenuStandardHeight = 3

	// HistoryMinWidth is the narrowest history pane shown next to a column-two panel.
	HistoryMinWidth = 24

	// HandleCells is the width of one side resize handle.
	HandleCells = 2

	// ToolbarRows is the sizing toolbar height.
	ToolbarRows = 1

	// BottomHandleRows is the height of the bottom handle strip.
	BottomHandleRows = 1
)

// Overlay constraints
const (
	// OverlayMaxWidth is the maximum overlay width.
	OverlayMaxWidth = 80

	// OverlayMaxHeight is the maximum overlay height.
	OverlayMaxHeight = 25

	// OverlayMinWidth is the minimum overlay width.
	OverlayMinWidth = 30

	// OverlayMinHeight is the minimum overlay height.
	OverlayMinHeight = 6

	// OverlayMargin is the minimum margin from terminal edges.
	OverlayMargin = 2
)

// ResponsiveMinPixels mirrors the `min-width: 500px` media query that gates
// responsive design mode.
const ResponsiveMinPixels = 500
