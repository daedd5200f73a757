package overlay

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TextOverlay shows read-only text, such as help or the render profile, and
// closes on any key.
type TextOverlay struct {
	Dismissed bool
	// OnDismiss runs once when the overlay closes.
	OnDismiss func()

	content string
	width   int
}

func NewTextOverlay(content string) *TextOverlay {
	return &TextOverlay{content: content, width: 60}
}

// SetContent replaces the text, keeping the overlay open.
func (t *TextOverlay) SetContent(content string) {
	t.content = content
}

func (t *TextOverlay) SetWidth(width int) {
	t.width = width
}

// HandleKeyPress dismisses the overlay and returns true.
func (t *TextOverlay) HandleKeyPress(msg tea.KeyMsg) bool {
	if t.Dismissed {
		return true
	}
	t.Dismissed = true
	if t.OnDismiss != nil {
		t.OnDismiss()
	}
	return true
}

func (t *TextOverlay) Render(opts ...WhitespaceOption) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(1, 2).
		Width(t.width)
	return style.Render(t.content)
}
