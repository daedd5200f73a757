package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
)

var (
	navEnabledStyle  = lipgloss.NewStyle().Foreground(TextPrimary)
	navDisabledStyle = lipgloss.NewStyle().Foreground(TextMuted)
	urlStyle         = lipgloss.NewStyle().Foreground(TextPrimary).Background(BackgroundSubtle)
	modeOnStyle      = lipgloss.NewStyle().Foreground(Primary).Bold(true)
)

// AddressState is what the address bar shows.
type AddressState struct {
	URL        string
	CanBack    bool
	CanForward bool
	Responsive bool
	// ResponsiveAllowed is false while the panel is too narrow for responsive mode.
	ResponsiveAllowed bool
	// Clients counts connected browser frames.
	Clients int
}

// RenderAddressBar draws the one-row address bar: navigation arrows, the URL
// field and the mode indicators.
func RenderAddressBar(width int, st AddressState) string {
	if width <= 0 {
		return ""
	}

	nav := func(enabled bool, glyph string) string {
		if enabled {
			return navEnabledStyle.Render(glyph)
		}
		return navDisabledStyle.Render(glyph)
	}
	left := nav(st.CanBack, "◀") + " " + nav(st.CanForward, "▶") + " " + navEnabledStyle.Render("⟳") + " "

	var indicators []string
	switch {
	case st.Responsive && st.ResponsiveAllowed:
		indicators = append(indicators, modeOnStyle.Render("▣ responsive"))
	case st.Responsive:
		indicators = append(indicators, navDisabledStyle.Render("▣ too narrow"))
	}
	if st.Clients > 0 {
		indicators = append(indicators, StatusStyles.Success.Render(fmt.Sprintf("%s %d", IconSuccess, st.Clients)))
	}
	right := ""
	if len(indicators) > 0 {
		right = " " + strings.Join(indicators, " ")
	}

	fieldWidth := width - lipgloss.Width(left) - lipgloss.Width(right)
	if fieldWidth < 8 {
		// Not enough room for the chrome; show the URL alone.
		return urlField(st.URL, width)
	}
	return left + urlField(st.URL, fieldWidth) + right
}

func urlField(url string, width int) string {
	text := url
	if text == "" {
		text = "about:blank"
	}
	text = " " + truncate.StringWithTail(text, uint(max(0, width-2)), "…")
	return urlStyle.Render(runewidth.FillRight(text, width))
}
