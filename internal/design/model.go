package design

import (
	"errors"
	"strings"
)

// Design is a user-saved sneaker customization. The service treats it as an
// opaque document; only the shape is checked before it reaches the store.
type Design struct {
	ID         string         `json:"id,omitempty"`
	UserID     string         `json:"user_id,omitempty"`
	SneakerID  string         `json:"sneaker_id"`
	Name       string         `json:"name"`
	Layers     map[string]any `json:"layers"`
	PreviewURL string         `json:"preview_url,omitempty"`
	IsPublic   bool           `json:"is_public"`
}

var (
	ErrMissingSneakerID = errors.New("sneaker_id required")
	ErrMissingName      = errors.New("name required")
)

// Validate checks required fields and fills defaults in place.
func (d *Design) Validate() error {
	if strings.TrimSpace(d.SneakerID) == "" {
		return ErrMissingSneakerID
	}
	if strings.TrimSpace(d.Name) == "" {
		return ErrMissingName
	}
	if d.Layers == nil {
		d.Layers = map[string]any{}
	}
	return nil
}
