package watermark

import (
	"errors"
	"path/filepath"
)

// DefaultSuffix is inserted between the stem and the extension of saved files.
const DefaultSuffix = "_wtm"

// ErrNoExtension is returned when the file name carries no usable extension,
// so there is nowhere to insert the suffix.
var ErrNoExtension = errors.New("file name has no extension")

// OutputPath inserts suffix before the extension of the last path element:
// "dir/photo.jpg" becomes "dir/photo_wtm.jpg". Only the last dot of the base
// name counts. Names without an extension, dotfiles such as ".hidden" and
// names ending in a bare dot are rejected with ErrNoExtension.
func OutputPath(src, suffix string) (string, error) {
	base := filepath.Base(src)
	ext := filepath.Ext(base)
	if ext == "" || ext == "." || ext == base {
		return "", ErrNoExtension
	}
	return src[:len(src)-len(ext)] + suffix + ext, nil
}

// DisplayName returns the base name shown to the user after saving.
func DisplayName(path string) string {
	return filepath.Base(path)
}
