package session

import (
	"errors"
	"fmt"

	"webpreview/config"
)

// Storage persists the frame state through the preview state file.
type Storage struct {
	state config.PreviewState
}

// NewStorage creates a new storage instance
func NewStorage(state config.PreviewState) (*Storage, error) {
	if state == nil {
		return nil, errors.New("storage requires a preview state")
	}
	return &Storage{
		state: state,
	}, nil
}

// SaveURL records the URL the frame shows.
func (s *Storage) SaveURL(url string) error {
	if err := s.state.SetPreviewURL(url); err != nil {
		return fmt.Errorf("failed to save preview url: %w", err)
	}
	return nil
}

// LoadURL returns the last saved URL, or "" if none was saved.
func (s *Storage) LoadURL() string {
	return s.state.GetPreviewURL()
}
