package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"webpreview/keys"
)

var keyStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#655F5F",
	Dark:  "#7F7A7A",
})

var descStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#7A7474",
	Dark:  "#9C9494",
})

var sepStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#DDDADA",
	Dark:  "#3C3C3C",
})

var actionGroupStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("99"))

var separator = " • "
var verticalSeparator = " │ "

var menuStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("205"))

// MenuState represents different states the menu can be in
type MenuState int

const (
	StateDefault MenuState = iota
	// StateEmpty is shown while no panel is open.
	StateEmpty
	// StateResponsive adds the device sizing keys.
	StateResponsive
	// StatePrompt is shown while an overlay takes the keyboard.
	StatePrompt
)

type Menu struct {
	height, width int
	state         MenuState
	compact       bool

	// keyDown is the key which is pressed. The default is -1.
	keyDown keys.KeyName
}

var (
	navigationGroup = []keys.KeyName{keys.KeyURL, keys.KeyBack, keys.KeyForward, keys.KeyRefresh}
	viewGroup       = []keys.KeyName{keys.KeyResponsive, keys.KeyScreenView, keys.KeyDevTools}
	sizingGroup     = []keys.KeyName{keys.KeyPreset, keys.KeyRotate, keys.KeyZoomIn, keys.KeyZoomOut, keys.KeyResetSize}
	systemGroup     = []keys.KeyName{keys.KeyOpenInBrowser, keys.KeyCopyURL, keys.KeyHelp, keys.KeyQuit}
	emptyGroup      = []keys.KeyName{keys.KeyHelp, keys.KeyQuit}
	promptGroup     = []keys.KeyName{keys.KeySubmit, keys.KeyCancel}
	compactGroup    = []keys.KeyName{keys.KeyURL, keys.KeyRefresh, keys.KeyResponsive, keys.KeyHelp, keys.KeyQuit}
)

func NewMenu() *Menu {
	return &Menu{
		state:   StateEmpty,
		keyDown: -1,
	}
}

func (m *Menu) Keydown(name keys.KeyName) {
	m.keyDown = name
}

func (m *Menu) ClearKeydown() {
	m.keyDown = -1
}

// SetState updates the menu state and options accordingly
func (m *Menu) SetState(state MenuState) {
	m.state = state
}

func (m *Menu) State() MenuState {
	return m.state
}

// SetCompact limits the menu to the most used keys.
func (m *Menu) SetCompact(compact bool) {
	m.compact = compact
}

// SetSize sets the width of the window. The menu will be centered horizontally within this width.
func (m *Menu) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// groups returns the option groups for the current state. The second group is
// the highlighted action group.
func (m *Menu) groups() [][]keys.KeyName {
	switch m.state {
	case StateEmpty:
		return [][]keys.KeyName{emptyGroup}
	case StatePrompt:
		return [][]keys.KeyName{promptGroup}
	}
	if m.compact {
		return [][]keys.KeyName{compactGroup}
	}
	if m.state == StateResponsive {
		return [][]keys.KeyName{navigationGroup, sizingGroup, viewGroup, systemGroup}
	}
	return [][]keys.KeyName{navigationGroup, viewGroup, systemGroup}
}

func (m *Menu) String() string {
	var s strings.Builder

	groups := m.groups()
	for gi, group := range groups {
		for i, k := range group {
			binding := keys.GlobalkeyBindings[k]

			var (
				localActionStyle = actionGroupStyle
				localKeyStyle    = keyStyle
				localDescStyle   = descStyle
			)
			if m.keyDown == k {
				localActionStyle = localActionStyle.Underline(true)
				localKeyStyle = localKeyStyle.Underline(true)
				localDescStyle = localDescStyle.Underline(true)
			}

			if gi == 1 {
				s.WriteString(localActionStyle.Render(binding.Help().Key))
				s.WriteString(" ")
				s.WriteString(localActionStyle.Render(binding.Help().Desc))
			} else {
				s.WriteString(localKeyStyle.Render(binding.Help().Key))
				s.WriteString(" ")
				s.WriteString(localDescStyle.Render(binding.Help().Desc))
			}

			if i != len(group)-1 {
				s.WriteString(sepStyle.Render(separator))
			}
		}
		if gi != len(groups)-1 {
			s.WriteString(sepStyle.Render(verticalSeparator))
		}
	}

	style := menuStyle
	if m.width > 0 {
		style = style.Width(m.width).Align(lipgloss.Center)
	}
	centeredMenuText := style.Render(s.String())
	placed := lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, centeredMenuText)
	if m.height > 0 {
		// A wrapped menu must not push the status line off screen.
		placed = lipgloss.NewStyle().MaxHeight(m.height).Render(placed)
	}
	return placed
}
