package model

import (
	"image"
	"testing"

	"github.com/soocke/watermark-desktop/domain/watermark"
)

func TestSessionModel_Lifecycle(t *testing.T) {
	m := NewSessionModel("Python")
	if m.Loaded() {
		t.Fatal("new session should not report a loaded image")
	}
	if m.Text() != "Python" {
		t.Fatalf("initial text lost: %q", m.Text())
	}

	src := image.NewRGBA(image.Rect(0, 0, 40, 20))
	prev := image.NewRGBA(image.Rect(0, 0, 20, 10))
	m.Load("/tmp/a.png", src, prev, watermark.Scale{Factor: 0.5, Size: image.Pt(20, 10)})
	if !m.Loaded() || m.Path() != "/tmp/a.png" || m.Source() != src || m.Preview() != prev {
		t.Fatalf("load did not store image state")
	}
	if m.Scale().Factor != 0.5 {
		t.Fatalf("scale lost: %v", m.Scale())
	}

	m.SetText("")
	if m.Text() != "" {
		t.Fatalf("text not stored")
	}

	m.Load("/tmp/b.png", src, prev, watermark.Scale{Factor: 1})
	if m.Text() != "" {
		t.Fatal("text should survive loading another image")
	}
}

func TestSessionModel_NilSafe(t *testing.T) {
	var m *SessionModel
	m.Load("x", nil, nil, watermark.Scale{})
	m.SetText("x")
	if m.Loaded() || m.Path() != "" || m.Text() != "" || m.Source() != nil || m.Preview() != nil {
		t.Fatal("nil session should report empty values")
	}
}
