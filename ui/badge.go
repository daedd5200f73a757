package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"webpreview/ui/layout"
	"webpreview/ui/overlay"
)

// badgeMargin keeps the badge off the frame border.
const badgeMargin = 2

// SizeBadge formats the container size shown while the panel is resized.
func SizeBadge(container layout.ContainerSize) string {
	return fmt.Sprintf("%d  ×  %d", container.Width, container.Height)
}

// placeBadge draws the size badge in the top-right corner of view.
func placeBadge(view string, container layout.ContainerSize) string {
	badge := StatusBadge(SizeBadge(container), Primary)
	x := lipgloss.Width(view) - lipgloss.Width(badge) - badgeMargin
	if x < 0 {
		return view
	}
	return overlay.PlaceOverlay(x, 1, badge, view, false, false)
}
