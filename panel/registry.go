package panel

import (
	"fmt"
	"strings"
)

// Registry tracks the one open panel. It is owned by the UI loop and is not
// safe for concurrent use.
type Registry struct {
	current *Panel
}

func NewRegistry() *Registry {
	return &Registry{}
}

// CreateOrShow reveals the open panel, or opens a new one in the second
// column and sends it the configured URL and presets.
func (r *Registry) CreateOrShow(opts Options) (*Panel, error) {
	if r.current != nil {
		r.current.Reveal()
		return r.current, nil
	}
	p := r.adopt(newPanel(opts))
	return p, p.Update()
}

// Revive replaces any open panel with one restored from a previous run,
// showing oldURL instead of the configured URL when it is set.
func (r *Registry) Revive(opts Options, oldURL string) (*Panel, error) {
	if r.current != nil {
		r.current.Dispose()
	}
	p := r.adopt(newPanel(opts))
	p.currentURL = oldURL
	return p, p.Update()
}

func (r *Registry) adopt(p *Panel) *Panel {
	p.onDispose = func(disposed *Panel) {
		if r.current == disposed {
			r.current = nil
		}
	}
	r.current = p
	return p
}

// Current returns the open panel.
func (r *Registry) Current() (*Panel, error) {
	if r.current == nil {
		return nil, ErrNoPanel
	}
	return r.current, nil
}

// Command names a panel command.
type Command string

const (
	CmdOpen          Command = "open"
	CmdURL           Command = "url"
	CmdBack          Command = "back"
	CmdForward       Command = "forward"
	CmdRefresh       Command = "refresh"
	CmdResponsive    Command = "responsiveView"
	CmdScreenView    Command = "screenView"
	CmdDevTools      Command = "openDevTools"
	CmdOpenInBrowser Command = "openInBrowser"
	CmdCopyURL       Command = "copyUrl"
)

// Commands lists every command in menu order.
var Commands = []Command{
	CmdOpen, CmdURL, CmdBack, CmdForward, CmdRefresh, CmdResponsive,
	CmdScreenView, CmdDevTools, CmdOpenInBrowser, CmdCopyURL,
}

// ParseCommand resolves a command name, ignoring case.
func ParseCommand(name string) (Command, error) {
	for _, c := range Commands {
		if strings.EqualFold(string(c), name) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown command %q", name)
}

// Execute runs cmd. CmdOpen creates the panel from opts; every other command
// needs an open panel and fails with ErrNoPanel otherwise. arg is the URL for
// CmdURL.
func (r *Registry) Execute(cmd Command, arg string, opts Options) error {
	if cmd == CmdOpen {
		_, err := r.CreateOrShow(opts)
		return err
	}

	p, err := r.Current()
	if err != nil {
		return err
	}

	switch cmd {
	case CmdURL:
		return p.SendURL(arg)
	case CmdBack:
		return p.Back()
	case CmdForward:
		return p.Forward()
	case CmdRefresh:
		return p.Refresh()
	case CmdResponsive:
		return p.ToggleResponsive()
	case CmdScreenView:
		p.ToggleScreenView()
	case CmdDevTools:
		p.OpenDevTools()
	case CmdOpenInBrowser:
		return p.OpenInBrowser()
	case CmdCopyURL:
		return p.CopyURL()
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}
