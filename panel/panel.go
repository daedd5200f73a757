// Package panel manages the preview panel: a single instance at a time, its
// current URL, and the commands bound to keys and the command line.
package panel

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/pkg/browser"

	"webpreview/config"
	"webpreview/log"
	"webpreview/relay"
	"webpreview/session"
	"webpreview/ui/layout"
)

// ErrNoPanel is returned by commands that need an open panel.
var ErrNoPanel = errors.New("no preview panel is open")

// Options configure a new panel.
type Options struct {
	Settings config.Settings
	// Frames receives every control message. Usually a relay.Fanout of the
	// terminal frame and the websocket hub.
	Frames relay.Poster
	// Storage persists state reported by browser frames. Optional.
	Storage *session.Storage

	// OpenURL and CopyText default to the system browser and clipboard.
	OpenURL  func(url string) error
	CopyText func(text string) error
}

// Panel is the host side of the preview.
type Panel struct {
	settings   config.Settings
	frames     relay.Poster
	storage    *session.Storage
	openURL    func(string) error
	copyText   func(string) error
	currentURL string
	column     layout.Column
	visible    bool
	devTools   bool
	disposed   bool
	onDispose  func(*Panel)
}

func newPanel(opts Options) *Panel {
	p := &Panel{
		settings: opts.Settings,
		frames:   opts.Frames,
		storage:  opts.Storage,
		openURL:  opts.OpenURL,
		copyText: opts.CopyText,
		column:   layout.ColumnTwo,
		visible:  true,
	}
	if p.frames == nil {
		p.frames = relay.Fanout{}
	}
	if p.openURL == nil {
		p.openURL = browser.OpenURL
	}
	if p.copyText == nil {
		p.copyText = clipboard.WriteAll
	}
	return p
}

func (p *Panel) post(m relay.Message) error {
	if p.disposed {
		return ErrNoPanel
	}
	if err := p.frames.Post(m); err != nil {
		return fmt.Errorf("failed to post to frame: %w", err)
	}
	return nil
}

// navigate posts a history move and takes the resulting URL from frames that
// report it at once. Browser frames report theirs later through ObserveState.
func (p *Panel) navigate(m relay.Message) error {
	if err := p.post(m); err != nil {
		return err
	}
	if r, ok := p.frames.(relay.Reporter); ok {
		if s := r.State(); s.PreviewURL != "" {
			p.currentURL = s.PreviewURL
		}
	}
	return nil
}

// Update sends the current URL and the device presets to the frames. When no
// URL is set the configured one is used.
func (p *Panel) Update() error {
	if p.currentURL == "" {
		p.currentURL = p.settings.URL
	}
	u := p.currentURL
	return p.post(relay.Message{Preview: &relay.Payload{URL: &u, MediaScreen: p.settings.MediaScreen}})
}

// Reconfigure applies changed settings. The current URL is reset to the
// configured one.
func (p *Panel) Reconfigure(settings config.Settings) error {
	log.InfoLog.Printf("settings changed, resetting preview to %s", settings.URL)
	p.settings = settings
	p.currentURL = ""
	return p.Update()
}

// CurrentURL returns the URL last sent to the frames.
func (p *Panel) CurrentURL() string {
	return p.currentURL
}

// Settings returns the settings in effect.
func (p *Panel) Settings() config.Settings {
	return p.settings
}

// SendURL navigates the frames to url. An empty url is a cancelled prompt and
// sends nothing.
func (p *Panel) SendURL(url string) error {
	if url == "" {
		return nil
	}
	p.currentURL = url
	return p.post(relay.NavigateTo(url))
}

func (p *Panel) Back() error {
	return p.navigate(relay.Message{Preview: &relay.Payload{Back: true}})
}

func (p *Panel) Forward() error {
	return p.navigate(relay.Message{Preview: &relay.Payload{Forward: true}})
}

func (p *Panel) Refresh() error {
	return p.navigate(relay.Message{Preview: &relay.Payload{Refresh: true}})
}

// ToggleResponsive flips responsive design mode in the frames.
func (p *Panel) ToggleResponsive() error {
	return p.post(relay.Message{Preview: &relay.Payload{Responsive: true}})
}

// ToggleScreenView moves the panel between the first column (full width) and
// the second column.
func (p *Panel) ToggleScreenView() {
	p.column = p.column.Toggle()
	log.LayoutTrace("panel moved to %s", p.column)
}

// Column returns the column the panel occupies.
func (p *Panel) Column() layout.Column {
	return p.column
}

// Reveal shows the panel in its current column.
func (p *Panel) Reveal() {
	p.visible = true
}

// Visible reports whether the panel is shown.
func (p *Panel) Visible() bool {
	return p.visible && !p.disposed
}

// OpenDevTools toggles the render profile overlay.
func (p *Panel) OpenDevTools() {
	p.devTools = !p.devTools
	log.SetProfiling(p.devTools)
}

// DevToolsOpen reports whether the profile overlay is shown.
func (p *Panel) DevToolsOpen() bool {
	return p.devTools
}

// OpenInBrowser opens the current URL in the system browser.
func (p *Panel) OpenInBrowser() error {
	if p.currentURL == "" {
		return errors.New("no url to open")
	}
	if err := p.openURL(p.currentURL); err != nil {
		return fmt.Errorf("failed to open %s: %w", p.currentURL, err)
	}
	return nil
}

// CopyURL copies the current URL to the clipboard.
func (p *Panel) CopyURL() error {
	if err := p.copyText(p.currentURL); err != nil {
		return fmt.Errorf("failed to copy url: %w", err)
	}
	return nil
}

// ObserveState records state reported by a frame. The reported URL becomes
// the current one so that open-in-browser follows in-frame navigation.
func (p *Panel) ObserveState(s relay.State) error {
	if s.PreviewURL == "" || p.disposed {
		return nil
	}
	p.currentURL = s.PreviewURL
	if p.storage == nil {
		return nil
	}
	return p.storage.SaveURL(s.PreviewURL)
}

// Dispose closes the panel and releases it from its registry.
func (p *Panel) Dispose() {
	if p.disposed {
		return
	}
	p.disposed = true
	p.visible = false
	if p.devTools {
		p.devTools = false
		log.SetProfiling(false)
	}
	if p.onDispose != nil {
		p.onDispose(p)
	}
}
