package images

import (
	"bytes"
	"image"
	"image/png"
	"testing"
)

func TestEncodePNG_Decodes(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 7, 3))
	b := EncodePNG(src)
	if len(b) == 0 {
		t.Fatal("empty encoding")
	}
	img, err := png.Decode(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 7 || img.Bounds().Dy() != 3 {
		t.Fatalf("unexpected bounds %v", img.Bounds())
	}
}

func TestEncodePNG_Nil(t *testing.T) {
	if b := EncodePNG(nil); b != nil {
		t.Fatalf("expected nil, got %d bytes", len(b))
	}
}

func TestPlaceholder_MinSize(t *testing.T) {
	if b := Placeholder(0, -4).Bounds(); b.Dx() != 1 || b.Dy() != 1 {
		t.Fatalf("expected 1x1, got %v", b)
	}
}
