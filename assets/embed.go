package assets

import (
	"fmt"
	"os"

	"golang.org/x/image/font/gofont/goregular"
)

// DefaultFontTTF contains the raw TTF bytes used when no font file is configured.
var DefaultFontTTF = goregular.TTF

// FontTTF returns the bytes of the font at path, or the built-in font when
// path is empty.
func FontTTF(path string) ([]byte, error) {
	if path == "" {
		if len(DefaultFontTTF) == 0 {
			return nil, fmt.Errorf("embedded default font is empty")
		}
		return DefaultFontTTF, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font %s: %w", path, err)
	}
	return b, nil
}
