package view

import (
	"image"

	"github.com/soocke/watermark-desktop/ui/images"
	"github.com/soocke/watermark-desktop/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// ImagePreview shows the current preview or composite in a single label.
type ImagePreview interface {
	Show(img image.Image)
	Reset()
}

type imagePreview struct {
	label  *LabelWidget
	photo  *Img // last Tk photo; deleted before being replaced
	placeW int
	placeH int
}

// NewImagePreview creates the preview label and grids it across columns of row.
// The placeholder is sized to the preview box so the layout does not jump on first open.
func NewImagePreview(row, columns, w, h int) ImagePreview {
	photo := NewPhoto(Data(images.EncodePNG(images.Placeholder(w, h))))
	label := Label(Image(photo), Borderwidth(0), Background(theme.CurrentPalette().PreviewBg))
	Grid(label, Row(row), Column(0), Columnspan(columns), Sticky("nsew"), Padx("1m"), Pady("1m"))
	return &imagePreview{label: label, photo: photo, placeW: w, placeH: h}
}

// Show replaces the displayed image. img is expected to fit the preview box already.
func (v *imagePreview) Show(img image.Image) {
	if v == nil || v.label == nil || img == nil {
		return
	}
	v.replace(images.EncodePNG(img))
}

func (v *imagePreview) Reset() {
	if v == nil || v.label == nil {
		return
	}
	v.replace(images.EncodePNG(images.Placeholder(v.placeW, v.placeH)))
}

func (v *imagePreview) replace(pngBytes []byte) {
	if v.photo != nil {
		v.photo.Delete()
	}
	v.photo = NewPhoto(Data(pngBytes))
	v.label.Configure(Image(v.photo))
}
