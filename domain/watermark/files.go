package watermark

import "image"

// Files reads and writes images on the local filesystem.
// The zero value is ready to use.
type Files struct{}

// Open decodes a JPEG or PNG file from disk.
func (Files) Open(path string) (image.Image, error) { return Open(path) }

// Save flattens img and writes it to path, encoded by its extension.
func (Files) Save(img image.Image, path string, quality int) error {
	return Save(img, path, quality)
}
