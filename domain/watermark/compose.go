package watermark

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Compositor draws a single line of text near the bottom-right corner of an
// image. Face and color are fixed for the lifetime of the compositor.
type Compositor struct {
	face  font.Face
	color color.NRGBA
}

// NewCompositor returns a compositor drawing with face in color c.
func NewCompositor(face font.Face, c color.NRGBA) *Compositor {
	return &Compositor{face: face, color: c}
}

// Render returns a new image: base with text alpha-composited on top.
// The text is right-aligned and sits on its baseline at
// (width-inset, height-inset). Empty text returns an unmodified copy.
func (c *Compositor) Render(base image.Image, text string, inset int) *image.RGBA {
	b := base.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), base, b.Min, draw.Src)
	if text == "" || c == nil || c.face == nil {
		return out
	}

	overlay := image.NewRGBA(out.Bounds())
	d := &font.Drawer{
		Dst:  overlay,
		Src:  image.NewUniform(c.color),
		Face: c.face,
	}
	anchor := fixed.P(b.Dx()-inset, b.Dy()-inset)
	d.Dot = fixed.Point26_6{X: anchor.X - d.MeasureString(text), Y: anchor.Y}
	d.DrawString(text)

	draw.Draw(out, out.Bounds(), overlay, image.Point{}, draw.Over)
	return out
}

// Flatten returns an opaque copy of img. Color channels are kept as stored
// (non-premultiplied) and alpha is forced to fully opaque.
func Flatten(img image.Image) *image.NRGBA {
	out := imaging.Clone(img)
	for i := 3; i < len(out.Pix); i += 4 {
		out.Pix[i] = 0xff
	}
	return out
}
