package inspect

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ProfileName names a termenv color profile.
func ProfileName(p termenv.Profile) string {
	switch p {
	case termenv.TrueColor:
		return "truecolor"
	case termenv.ANSI256:
		return "ansi256"
	case termenv.ANSI:
		return "ansi"
	default:
		return "ascii"
	}
}

// DetectProfile returns the color profile of the terminal on stdout.
func DetectProfile() termenv.Profile {
	return termenv.NewOutput(os.Stdout).EnvColorProfile()
}

// ExtractStyleInfo reports style, with its foreground converted for profile.
func ExtractStyleInfo(style lipgloss.Style, profile termenv.Profile) *StyleInfo {
	info := &StyleInfo{
		Foreground: colorToString(style.GetForeground()),
		Background: colorToString(style.GetBackground()),
		Bold:       style.GetBold(),
		Underline:  style.GetUnderline(),
		Border:     style.GetBorderTop() || style.GetBorderRight() || style.GetBorderBottom() || style.GetBorderLeft(),
	}
	if info.Border {
		info.BorderColor = colorToString(style.GetBorderTopForeground())
	}
	if hex := hexOf(style.GetForeground()); hex != "" {
		switch c := profile.Color(hex).(type) {
		case nil, termenv.NoColor:
		default:
			info.Rendered = fmt.Sprint(c)
		}
	}
	return info
}

// hexOf returns the dark variant of adaptive colors; the inspector has no
// background to probe.
func hexOf(c lipgloss.TerminalColor) string {
	switch v := c.(type) {
	case lipgloss.Color:
		return string(v)
	case lipgloss.AdaptiveColor:
		return v.Dark
	default:
		return ""
	}
}

func colorToString(c lipgloss.TerminalColor) string {
	if c == nil {
		return ""
	}
	switch v := c.(type) {
	case lipgloss.NoColor:
		return ""
	case lipgloss.Color:
		return string(v)
	case lipgloss.AdaptiveColor:
		return fmt.Sprintf("adaptive(light=%s, dark=%s)", v.Light, v.Dark)
	case lipgloss.CompleteColor:
		return fmt.Sprintf("complete(true=%s, ansi=%s, ansi256=%s)", v.TrueColor, v.ANSI, v.ANSI256)
	default:
		return fmt.Sprintf("%v", c)
	}
}
