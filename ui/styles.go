package ui

import "github.com/charmbracelet/lipgloss"

// Semantic Color Palette
// Designed for accessibility (colorblind-safe) with both color and shape differentiation.

// Status colors - each status has a distinct color and associated icon
var (
	// StatusSuccess indicates a live connection
	// Color: Green, Icon: "●"
	StatusSuccess = lipgloss.AdaptiveColor{Light: "#22C55E", Dark: "#22C55E"}

	// StatusWarning indicates needs attention
	// Color: Amber, Icon: "!"
	StatusWarning = lipgloss.AdaptiveColor{Light: "#F59E0B", Dark: "#F59E0B"}

	// StatusError indicates errors/failures
	// Color: Red, Icon: "x"
	StatusError = lipgloss.AdaptiveColor{Light: "#EF4444", Dark: "#EF4444"}

	// StatusIdle indicates an inactive element
	// Color: Gray, Icon: "○"
	StatusIdle = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
)

// UI chrome colors - structural elements
var (
	// Primary is the accent/focus color
	Primary = lipgloss.AdaptiveColor{Light: "#7D56F4", Dark: "#7D56F4"}

	// Border is the default border color
	Border = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#3C3C3C"}

	// BorderFocus is the border color for focused elements
	BorderFocus = lipgloss.AdaptiveColor{Light: "#7D56F4", Dark: "#7D56F4"}

	// TextPrimary is the main text color
	TextPrimary = lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#dddddd"}

	// TextSecondary is for secondary text (descriptions, labels)
	TextSecondary = lipgloss.AdaptiveColor{Light: "#4B5563", Dark: "#9CA3AF"}

	// TextMuted is for hints and subtle text
	TextMuted = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}

	// BackgroundSubtle is for cards, overlays, etc.
	BackgroundSubtle = lipgloss.AdaptiveColor{Light: "#F3F4F6", Dark: "#2a2a2a"}

	// BackgroundSelected is for selected items
	BackgroundSelected = lipgloss.AdaptiveColor{Light: "#dde4f0", Dark: "#3C3C4C"}

	// HandleBackground fills the resize handle strips
	HandleBackground = lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#1F2937"}

	// HandleForeground draws the grip marks on the handles
	HandleForeground = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#4B5563"}
)

// Status icons for accessibility (shape + color)
const (
	IconSuccess = "●"
	IconWarning = "!"
	IconError   = "×"
	IconIdle    = "○"
)

// Pre-built styles for common UI elements

// StatusStyles contains pre-built styles for each status type
var StatusStyles = struct {
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Idle    lipgloss.Style
}{
	Success: lipgloss.NewStyle().Foreground(StatusSuccess),
	Warning: lipgloss.NewStyle().Foreground(StatusWarning),
	Error:   lipgloss.NewStyle().Foreground(StatusError),
	Idle:    lipgloss.NewStyle().Foreground(StatusIdle),
}

// TextStyles contains pre-built styles for text elements
var TextStyles = struct {
	Primary   lipgloss.Style
	Secondary lipgloss.Style
	Muted     lipgloss.Style
}{
	Primary:   lipgloss.NewStyle().Foreground(TextPrimary),
	Secondary: lipgloss.NewStyle().Foreground(TextSecondary),
	Muted:     lipgloss.NewStyle().Foreground(TextMuted),
}

// HandleStyles contains the resize handle styles
var HandleStyles = struct {
	Idle   lipgloss.Style
	Active lipgloss.Style
}{
	Idle: lipgloss.NewStyle().
		Foreground(HandleForeground).
		Background(HandleBackground),
	Active: lipgloss.NewStyle().
		Foreground(Primary).
		Background(HandleBackground),
}

// BadgeStyle creates a styled badge with the given color
func BadgeStyle(color lipgloss.TerminalColor) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(color).
		Padding(0, 1)
}

// StatusBadge returns a formatted status badge string
func StatusBadge(status string, color lipgloss.TerminalColor) string {
	return BadgeStyle(color).Render(status)
}

// FrameStyle creates the border style of the content frame
func FrameStyle(focused bool) lipgloss.Style {
	color := Border
	if focused {
		color = BorderFocus
	}
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(color)
}
