package watermark

import (
	"errors"
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// ErrUnsupportedFormat is returned for files other than JPEG or PNG.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// DefaultJPEGQuality matches the quality used when no config overrides it.
const DefaultJPEGQuality = 95

// Extensions lists the source file extensions the app accepts.
var Extensions = []string{".jpg", ".jpeg", ".png"}

func supported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// Open decodes a JPEG or PNG file.
func Open(path string) (image.Image, error) {
	if !supported(path) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	return img, nil
}

// Save flattens img and writes it to path. The encoder is picked from the
// extension of path.
func Save(img image.Image, path string, quality int) error {
	if !supported(path) {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
	if quality < 1 || quality > 100 {
		quality = DefaultJPEGQuality
	}
	if err := imaging.Save(Flatten(img), path, imaging.JPEGQuality(quality)); err != nil {
		return fmt.Errorf("save image: %w", err)
	}
	return nil
}
