package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

var (
	historyTitleStyle   = lipgloss.NewStyle().Foreground(TextSecondary).Bold(true)
	historyEntryStyle   = lipgloss.NewStyle().Foreground(TextSecondary)
	historyCurrentStyle = lipgloss.NewStyle().Foreground(TextPrimary).Background(BackgroundSelected)
)

// RenderHistory draws the navigation history pane shown next to a panel in
// the second column. The newest entries win when the pane is too short.
func RenderHistory(width, height int, entries []string, current int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	innerWidth := max(0, width-2)
	innerHeight := max(0, height-2)

	lines := []string{historyTitleStyle.Render(truncate.String("History", uint(innerWidth)))}
	start := 0
	if room := innerHeight - 1; room > 0 && len(entries) > room {
		start = len(entries) - room
	}
	if innerHeight > 1 {
		if len(entries) == 0 {
			lines = append(lines, TextStyles.Muted.Render(truncate.String("no pages yet", uint(innerWidth))))
		}
		for i := start; i < len(entries); i++ {
			marker := "  "
			style := historyEntryStyle
			if i == current {
				marker = "› "
				style = historyCurrentStyle
			}
			text := truncate.StringWithTail(marker+entries[i], uint(innerWidth), "…")
			lines = append(lines, style.Render(text))
		}
	}

	return FrameStyle(false).
		Width(innerWidth).
		Height(innerHeight).
		MaxHeight(height).
		Render(strings.Join(lines, "\n"))
}
