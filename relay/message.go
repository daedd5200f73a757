// Package relay carries messages between the preview panel and its content
// frames. Frames may live in the terminal itself or in browser tabs attached
// over a websocket.
package relay

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Message is a control message from the host to a content frame.
type Message struct {
	Preview *Payload `json:"preview,omitempty"`
}

// Payload holds the optional control fields. Boolean fields are one-shot
// commands; they are never replayed.
type Payload struct {
	URL         *string           `json:"url,omitempty"`
	Back        bool              `json:"back,omitempty"`
	Forward     bool              `json:"forward,omitempty"`
	Refresh     bool              `json:"refresh,omitempty"`
	Responsive  bool              `json:"responsive,omitempty"`
	MediaScreen map[string]string `json:"mediaScreen,omitempty"`
}

// NavigateTo builds a message asking the frame to load url.
func NavigateTo(url string) Message {
	return Message{Preview: &Payload{URL: &url}}
}

// State is persisted by the frame so the panel can be revived.
type State struct {
	PreviewURL string `json:"previewUrl"`
}

// Info is an informational notice from the frame shown in the status line.
type Info struct {
	Command string `json:"command"`
	Text    string `json:"text"`
}

var errUnknownMessage = errors.New("unrecognized frame message")

// DecodeInbound parses a frame-to-host message into a State or an Info.
func DecodeInbound(data []byte) (any, error) {
	var raw struct {
		PreviewURL *string `json:"previewUrl"`
		Command    string  `json:"command"`
		Text       string  `json:"text"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode frame message: %w", err)
	}
	switch {
	case raw.PreviewURL != nil:
		return State{PreviewURL: *raw.PreviewURL}, nil
	case raw.Command != "":
		return Info{Command: raw.Command, Text: raw.Text}, nil
	}
	return nil, errUnknownMessage
}

// Poster delivers control messages to a frame.
type Poster interface {
	Post(Message) error
}

// PosterFunc adapts a function to a Poster.
type PosterFunc func(Message) error

func (f PosterFunc) Post(m Message) error { return f(m) }

// Reporter is a frame that can report its state right after a post. The
// terminal frame navigates synchronously; browser frames report later through
// the hub instead.
type Reporter interface {
	State() State
}

// Fanout posts to every frame, collecting their errors.
type Fanout []Poster

// State returns the first non-empty state reported by a member.
func (f Fanout) State() State {
	for _, p := range f {
		r, ok := p.(Reporter)
		if !ok {
			continue
		}
		if s := r.State(); s.PreviewURL != "" {
			return s
		}
	}
	return State{}
}

func (f Fanout) Post(m Message) error {
	var errs []error
	for _, p := range f {
		if p == nil {
			continue
		}
		if err := p.Post(m); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
