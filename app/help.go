package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"webpreview/keys"
	"webpreview/log"
)

var helpTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))

func helpContent(h help.Model) string {
	var b strings.Builder
	b.WriteString(helpTitleStyle.Render("Web Preview"))
	b.WriteString("\n\n")
	b.WriteString("Preview a local web page and check it at device sizes.\n")
	b.WriteString("Drag the handles around the device to resize it.\n\n")
	h.ShowAll = true
	b.WriteString(h.FullHelpView(keys.HelpMap{}.FullHelp()))
	b.WriteString("\n\nPress any key to close.")
	return b.String()
}

func devToolsContent() string {
	stats := strings.TrimSpace(log.GetProfiler().GetStats())
	if stats == "" {
		stats = "Collecting render timings..."
	}
	return helpTitleStyle.Render("Dev Tools") + "\n\n" + stats + "\n\nPress any key to close."
}
