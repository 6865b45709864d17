package model

import (
	"image"

	"github.com/soocke/watermark-desktop/domain/watermark"
)

// SessionModel holds everything the window knows about the open image.
// The zero value means nothing is loaded and is usable.
// No synchronization needed: it is only touched from Tk callbacks.
type SessionModel struct {
	path    string
	source  image.Image
	preview image.Image
	scale   watermark.Scale
	text    string // last previewed text; Save renders this
}

// NewSessionModel returns a session seeded with the initial watermark text.
func NewSessionModel(text string) *SessionModel { return &SessionModel{text: text} }

// Load replaces the current image. The watermark text is kept.
func (m *SessionModel) Load(path string, source, preview image.Image, scale watermark.Scale) {
	if m == nil {
		return
	}
	m.path = path
	m.source = source
	m.preview = preview
	m.scale = scale
}

// Loaded reports whether an image is open.
func (m *SessionModel) Loaded() bool { return m != nil && m.source != nil }

func (m *SessionModel) Path() string {
	if m == nil {
		return ""
	}
	return m.path
}

func (m *SessionModel) Source() image.Image {
	if m == nil {
		return nil
	}
	return m.source
}

func (m *SessionModel) Preview() image.Image {
	if m == nil {
		return nil
	}
	return m.preview
}

func (m *SessionModel) Scale() watermark.Scale {
	if m == nil {
		return watermark.Scale{}
	}
	return m.scale
}

// SetText stores the watermark text. Any string is accepted.
func (m *SessionModel) SetText(s string) {
	if m == nil {
		return
	}
	m.text = s
}

func (m *SessionModel) Text() string {
	if m == nil {
		return ""
	}
	return m.text
}
