package keys

import (
	"github.com/charmbracelet/bubbles/key"
)

type KeyName int

const (
	KeyURL KeyName = iota
	KeyBack
	KeyForward
	KeyRefresh

	KeyResponsive
	KeyScreenView
	KeyDevTools

	KeyPreset
	KeyRotate
	KeyZoomIn
	KeyZoomOut
	KeyResetSize

	KeyOpenInBrowser
	KeyCopyURL
	KeyHelp
	KeyQuit

	KeySubmit
	KeyCancel
)

// GlobalKeyStringsMap is a global, immutable map string to keybinding.
var GlobalKeyStringsMap = map[string]KeyName{
	"u":         KeyURL,
	"ctrl+l":    KeyURL,
	"[":         KeyBack,
	"alt+left":  KeyBack,
	"]":         KeyForward,
	"alt+right": KeyForward,
	"ctrl+r":    KeyRefresh,
	"f5":        KeyRefresh,
	"d":         KeyResponsive,
	"s":         KeyScreenView,
	"f12":       KeyDevTools,
	"i":         KeyDevTools,
	"p":         KeyPreset,
	"t":         KeyRotate,
	"+":         KeyZoomIn,
	"=":         KeyZoomIn,
	"-":         KeyZoomOut,
	"0":         KeyResetSize,
	"o":         KeyOpenInBrowser,
	"y":         KeyCopyURL,
	"?":         KeyHelp,
	"q":         KeyQuit,
	"ctrl+c":    KeyQuit,
	"enter":     KeySubmit,
	"esc":       KeyCancel,
}

// GlobalkeyBindings is a global, immutable map of KeyName to keybinding.
var GlobalkeyBindings = map[KeyName]key.Binding{
	KeyURL: key.NewBinding(
		key.WithKeys("u", "ctrl+l"),
		key.WithHelp("u", "url"),
	),
	KeyBack: key.NewBinding(
		key.WithKeys("[", "alt+left"),
		key.WithHelp("[", "back"),
	),
	KeyForward: key.NewBinding(
		key.WithKeys("]", "alt+right"),
		key.WithHelp("]", "forward"),
	),
	KeyRefresh: key.NewBinding(
		key.WithKeys("ctrl+r", "f5"),
		key.WithHelp("ctrl+r", "refresh"),
	),
	KeyResponsive: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "responsive"),
	),
	KeyScreenView: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "column"),
	),
	KeyDevTools: key.NewBinding(
		key.WithKeys("f12", "i"),
		key.WithHelp("i", "devtools"),
	),
	KeyPreset: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "preset"),
	),
	KeyRotate: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "rotate"),
	),
	KeyZoomIn: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "zoom in"),
	),
	KeyZoomOut: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-", "zoom out"),
	),
	KeyResetSize: key.NewBinding(
		key.WithKeys("0"),
		key.WithHelp("0", "reset size"),
	),
	KeyOpenInBrowser: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open in browser"),
	),
	KeyCopyURL: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy url"),
	),
	KeyHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	KeyQuit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	KeySubmit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "submit"),
	),
	KeyCancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}

// HelpMap groups the bindings for the help screen. It implements help.KeyMap.
type HelpMap struct{}

func bindings(names ...KeyName) []key.Binding {
	out := make([]key.Binding, 0, len(names))
	for _, n := range names {
		out = append(out, GlobalkeyBindings[n])
	}
	return out
}

func (HelpMap) ShortHelp() []key.Binding {
	return bindings(KeyURL, KeyRefresh, KeyResponsive, KeyHelp, KeyQuit)
}

func (HelpMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		bindings(KeyURL, KeyBack, KeyForward, KeyRefresh),
		bindings(KeyResponsive, KeyScreenView, KeyDevTools),
		bindings(KeyPreset, KeyRotate, KeyZoomIn, KeyZoomOut, KeyResetSize),
		bindings(KeyOpenInBrowser, KeyCopyURL, KeyHelp, KeyQuit),
	}
}
