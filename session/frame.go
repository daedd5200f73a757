// Package session holds the content area of the preview panel: the page the
// frame shows, its navigation history and the responsive mode switch.
package session

import (
	"errors"
	"fmt"
	"net/url"

	"webpreview/log"
	"webpreview/relay"
	"webpreview/ui/layout"
	"webpreview/ui/responsive"
)

// Frame is the in-terminal content frame. It implements relay.Poster so the
// panel addresses it exactly like a browser frame.
type Frame struct {
	history    *History
	reloads    int
	responsive bool
	panelWidth int
	screens    map[string]string
	presets    []responsive.Preset
	storage    *Storage
}

// NewFrame creates an empty frame. storage may be nil, in which case the
// state is not persisted.
func NewFrame(storage *Storage) *Frame {
	return &Frame{
		history: NewHistory(),
		storage: storage,
	}
}

// Post applies a control message. Fields are handled in the order url,
// mediaScreen, responsive, refresh, back, forward.
func (f *Frame) Post(m relay.Message) error {
	p := m.Preview
	if p == nil {
		return nil
	}

	before := f.URL()
	var errs []error

	if p.URL != nil && *p.URL != "" {
		f.history.Push(*p.URL)
	}
	if p.MediaScreen != nil {
		if err := f.setScreens(p.MediaScreen); err != nil {
			errs = append(errs, err)
		}
	}
	if p.Responsive {
		f.responsive = f.ResponsiveAllowed() && !f.responsive
	}
	if p.Refresh {
		f.refresh()
	}
	if p.Back {
		f.history.Back()
	}
	if p.Forward {
		f.history.Forward()
	}

	if now := f.URL(); now != before && f.storage != nil {
		if err := f.storage.SaveURL(now); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// refresh reloads the current page. A URL that parses as absolute is
// normalized; anything else is reloaded verbatim.
func (f *Frame) refresh() {
	raw := f.history.Current()
	if raw == "" {
		return
	}
	if u, err := url.Parse(raw); err == nil && u.IsAbs() {
		f.history.Replace(u.String())
	} else {
		log.InfoLog.Printf("refreshing unparsed url %q", raw)
	}
	f.reloads++
}

func (f *Frame) setScreens(screens map[string]string) error {
	presets, err := responsive.ParsePresets(screens)
	f.screens = screens
	f.presets = presets
	if err != nil {
		return fmt.Errorf("media screens: %w", err)
	}
	return nil
}

// URL returns the page the frame shows.
func (f *Frame) URL() string {
	return f.history.Current()
}

// State is the outbound state persisted for revival.
func (f *Frame) State() relay.State {
	return relay.State{PreviewURL: f.URL()}
}

// History returns the navigation history.
func (f *Frame) History() *History {
	return f.history
}

// Reloads counts refreshes since the frame was created.
func (f *Frame) Reloads() int {
	return f.reloads
}

// Presets returns the valid device presets from the last mediaScreen table.
func (f *Frame) Presets() []responsive.Preset {
	return f.presets
}

// MediaScreens returns the last mediaScreen table as received.
func (f *Frame) MediaScreens() map[string]string {
	return f.screens
}

// SetPanelWidth records the panel width in pixels. Responsive mode is only
// offered on panels at least layout.ResponsiveMinPixels wide.
func (f *Frame) SetPanelWidth(px int) {
	f.panelWidth = px
}

// ResponsiveAllowed reports whether the panel is wide enough for responsive mode.
func (f *Frame) ResponsiveAllowed() bool {
	return f.panelWidth >= layout.ResponsiveMinPixels
}

// Responsive reports whether responsive mode is shown. The switch is kept
// while the panel is too narrow but takes effect only once it is wide enough.
func (f *Frame) Responsive() bool {
	return f.responsive && f.ResponsiveAllowed()
}
