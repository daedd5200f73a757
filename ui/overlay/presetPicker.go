package overlay

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"webpreview/ui/responsive"
)

// PresetPickerOverlay selects a device preset. Typing filters the list.
type PresetPickerOverlay struct {
	Dismissed bool
	Selected  *responsive.Preset

	all     []responsive.Preset
	options []responsive.Preset
	query   string
	current string
	cursor  int
	width   int
}

// NewPresetPickerOverlay lists presets in the order given, with the cursor on
// the preset named current.
func NewPresetPickerOverlay(presets []responsive.Preset, current string) *PresetPickerOverlay {
	p := &PresetPickerOverlay{
		all:     presets,
		current: current,
		width:   50,
	}
	p.filter()
	for i, opt := range p.options {
		if opt.Name == current {
			p.cursor = i
		}
	}
	return p
}

// HandleKeyPress processes a key press and returns true when the overlay
// should close.
func (p *PresetPickerOverlay) HandleKeyPress(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyUp, tea.KeyCtrlP:
		p.moveCursor(-1)
	case tea.KeyDown, tea.KeyCtrlN:
		p.moveCursor(1)
	case tea.KeyEnter:
		if len(p.options) == 0 {
			return false
		}
		selected := p.options[p.cursor]
		p.Selected = &selected
		p.Dismissed = true
		return true
	case tea.KeyEsc, tea.KeyCtrlC:
		p.Dismissed = true
		return true
	case tea.KeyBackspace:
		if p.query != "" {
			r := []rune(p.query)
			p.query = string(r[:len(r)-1])
			p.filter()
		}
	case tea.KeySpace:
		p.query += " "
		p.filter()
	case tea.KeyRunes:
		p.query += string(msg.Runes)
		p.filter()
	}
	return false
}

func (p *PresetPickerOverlay) filter() {
	p.options = responsive.FilterPresets(p.all, strings.TrimSpace(p.query))
	p.cursor = 0
}

// moveCursor moves the cursor, wrapping around at both ends.
func (p *PresetPickerOverlay) moveCursor(delta int) {
	if len(p.options) == 0 {
		return
	}
	p.cursor = (p.cursor + delta + len(p.options)) % len(p.options)
}

// Query returns the filter text.
func (p *PresetPickerOverlay) Query() string {
	return p.query
}

// Options returns the presets matching the filter.
func (p *PresetPickerOverlay) Options() []responsive.Preset {
	return p.options
}

func (p *PresetPickerOverlay) SetWidth(width int) {
	p.width = width
}

// Render renders the picker.
func (p *PresetPickerOverlay) Render(opts ...WhitespaceOption) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF"))

	selectedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#7aa2f7")).
		Bold(true)

	normalStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#AAAAAA"))

	valueStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666666"))

	var content strings.Builder
	content.WriteString(titleStyle.Render("Device Preset"))
	content.WriteString("\n")
	content.WriteString(valueStyle.Render("filter: "))
	content.WriteString(p.query)
	content.WriteString("\n\n")

	if len(p.options) == 0 {
		content.WriteString(normalStyle.Render("  no matching presets"))
		content.WriteString("\n")
	}
	for i, opt := range p.options {
		prefix, style := "  ", normalStyle
		if i == p.cursor {
			prefix, style = "> ", selectedStyle
		}
		marker := ""
		if opt.Name == p.current {
			marker = " •"
		}
		content.WriteString(prefix)
		content.WriteString(style.Render(opt.Name + marker))
		content.WriteString(valueStyle.Render(fmt.Sprintf("  %s", opt.Value())))
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(valueStyle.Render("[Enter] Apply  [Esc] Cancel  [↑/↓] Navigate"))

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#7aa2f7")).
		Padding(1, 2).
		Width(p.width)

	return borderStyle.Render(content.String())
}
