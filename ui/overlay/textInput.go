package overlay

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TextInputOverlay is a single-line prompt, used to ask for the URL to load.
type TextInputOverlay struct {
	Title     string
	Submitted bool
	Canceled  bool

	input         textinput.Model
	width, height int
}

// NewTextInputOverlay creates a prompt pre-filled with initialValue and the
// cursor at its end.
func NewTextInputOverlay(title, initialValue string) *TextInputOverlay {
	ti := textinput.New()
	ti.Prompt = "› "
	ti.CharLimit = 2048
	ti.SetValue(initialValue)
	ti.CursorEnd()
	ti.Focus()

	return &TextInputOverlay{
		Title: title,
		input: ti,
		width: 60,
	}
}

// SetPlaceholder sets the hint shown while the prompt is empty.
func (t *TextInputOverlay) SetPlaceholder(s string) {
	t.input.Placeholder = s
}

func (t *TextInputOverlay) SetSize(width, height int) {
	t.width = width
	t.height = height
	t.input.Width = max(10, width-8)
}

// HandleKeyPress processes a key press and returns true when the overlay
// should close.
func (t *TextInputOverlay) HandleKeyPress(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyEnter:
		t.Submitted = true
		return true
	case tea.KeyEsc, tea.KeyCtrlC:
		t.Canceled = true
		return true
	}
	t.input, _ = t.input.Update(msg)
	return false
}

// GetValue returns the trimmed input.
func (t *TextInputOverlay) GetValue() string {
	return strings.TrimSpace(t.input.Value())
}

func (t *TextInputOverlay) IsSubmitted() bool {
	return t.Submitted
}

// Render renders the prompt box.
func (t *TextInputOverlay) Render(opts ...WhitespaceOption) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("62")).
		MarginBottom(1)

	hintStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		MarginTop(1)

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(1, 2).
		Width(t.width)

	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(t.Title),
		t.input.View(),
		hintStyle.Render("[Enter] Go  [Esc] Cancel"),
	)
	return boxStyle.Render(content)
}
