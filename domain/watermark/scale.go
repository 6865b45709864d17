package watermark

import (
	"errors"
	"image"
	"math"

	"github.com/disintegration/imaging"
)

var (
	// ErrEmptyImage is returned when the source has no pixels.
	ErrEmptyImage = errors.New("image has zero width or height")
	// ErrEmptyBox is returned when the display box has no area.
	ErrEmptyBox = errors.New("display box has zero width or height")
)

// Scale describes how a source image maps onto the preview box.
// Factor is uniform on both axes; Size is the rounded preview size.
type Scale struct {
	Factor float64
	Size   image.Point
}

// Fit computes the uniform factor min(box.X/w, box.Y/h) and the resulting
// integer size. The size never exceeds box on either axis and is at least 1x1.
// Sources smaller than the box are scaled up.
func Fit(w, h int, box image.Point) (Scale, error) {
	if w <= 0 || h <= 0 {
		return Scale{}, ErrEmptyImage
	}
	if box.X <= 0 || box.Y <= 0 {
		return Scale{}, ErrEmptyBox
	}
	factor := float64(box.X) / float64(w)
	if hf := float64(box.Y) / float64(h); hf < factor {
		factor = hf
	}
	size := image.Pt(
		clampDim(int(math.Round(float64(w)*factor)), box.X),
		clampDim(int(math.Round(float64(h)*factor)), box.Y),
	)
	return Scale{Factor: factor, Size: size}, nil
}

func clampDim(v, max int) int {
	if v > max {
		v = max
	}
	if v < 1 {
		v = 1
	}
	return v
}

// Preview resizes src to fit box and returns the resized copy with the
// scale that produced it.
func Preview(src image.Image, box image.Point) (*image.NRGBA, Scale, error) {
	if src == nil {
		return nil, Scale{}, ErrEmptyImage
	}
	b := src.Bounds()
	s, err := Fit(b.Dx(), b.Dy(), box)
	if err != nil {
		return nil, Scale{}, err
	}
	return imaging.Resize(src, s.Size.X, s.Size.Y, imaging.Lanczos), s, nil
}

// FullResolutionInset converts an inset measured on the preview into the
// equivalent inset on the source image.
func FullResolutionInset(previewInset int, s Scale) int {
	if s.Factor <= 0 {
		return previewInset
	}
	return int(float64(previewInset) / s.Factor)
}
