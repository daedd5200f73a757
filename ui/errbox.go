package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

var errStyle = lipgloss.NewStyle().Foreground(StatusError)

var infoStyle = lipgloss.NewStyle().Foreground(TextSecondary)

// ErrBox is the one-line status area under the menu. It shows errors and
// informational notices from the frame.
type ErrBox struct {
	height, width int
	err           error
	info          string
}

func NewErrBox() *ErrBox {
	return &ErrBox{}
}

func (e *ErrBox) SetError(err error) {
	e.err = err
	e.info = ""
}

// SetInfo shows a notice. An error takes its place when set later.
func (e *ErrBox) SetInfo(text string) {
	e.info = text
	e.err = nil
}

func (e *ErrBox) Clear() {
	e.err = nil
	e.info = ""
}

func (e *ErrBox) SetSize(width, height int) {
	e.width = width
	e.height = height
}

func (e *ErrBox) String() string {
	var text string
	style := infoStyle
	switch {
	case e.err != nil:
		text = e.err.Error()
		style = errStyle
	case e.info != "":
		text = e.info
	}

	// Errors may carry newlines; the box is a single row.
	text = strings.Join(strings.Fields(text), " ")
	if e.width > 0 {
		text = truncate.StringWithTail(text, uint(e.width), "...")
	}
	return lipgloss.Place(e.width, e.height, lipgloss.Center, lipgloss.Top, style.Render(text))
}
