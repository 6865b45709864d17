package presenter

import (
	"errors"
	"fmt"
	"image"
	"log/slog"

	"github.com/soocke/watermark-desktop/domain/watermark"
	"github.com/soocke/watermark-desktop/ui/model"
)

// ErrNoImage is reported when Preview or Save runs before an image is open.
var ErrNoImage = errors.New("no image loaded")

// ImageFiles reads sources and writes results.
type ImageFiles interface {
	Open(path string) (image.Image, error)
	Save(img image.Image, path string, quality int) error
}

// Renderer composites the watermark text onto an image.
type Renderer interface {
	Render(base image.Image, text string, inset int) *image.RGBA
}

// WatermarkView is the UI surface the presenter drives.
type WatermarkView interface {
	ChooseImage() (path string, ok bool)
	WatermarkText() string
	ShowPreview(img image.Image)
	ShowInfo(title, msg string)
	ShowError(title string, err error)
}

// Settings are the fixed parameters of a session.
type Settings struct {
	Box         image.Point // preview area
	Inset       int         // distance of the text anchor from the bottom-right corner of the preview
	Suffix      string
	JPEGQuality int
}

// WatermarkPresenter implements the Open / Preview / Save commands on top of
// the session model.
type WatermarkPresenter struct {
	session  *model.SessionModel
	files    ImageFiles
	render   Renderer
	view     WatermarkView
	settings Settings
	logger   *slog.Logger
}

func NewWatermarkPresenter(session *model.SessionModel, files ImageFiles, render Renderer, view WatermarkView, settings Settings, logger *slog.Logger) *WatermarkPresenter {
	if settings.Suffix == "" {
		settings.Suffix = watermark.DefaultSuffix
	}
	return &WatermarkPresenter{session: session, files: files, render: render, view: view, settings: settings, logger: logger}
}

// Open asks for a file, decodes it and shows its preview. Cancelling the
// dialog leaves the session untouched.
func (p *WatermarkPresenter) Open() {
	if p == nil || p.view == nil || p.files == nil {
		return
	}
	path, ok := p.view.ChooseImage()
	if !ok || path == "" {
		return
	}
	src, err := p.files.Open(path)
	if err != nil {
		p.fail("Could not open image", err)
		return
	}
	preview, scale, err := watermark.Preview(src, p.settings.Box)
	if err != nil {
		p.fail("Could not open image", fmt.Errorf("%s: %w", path, err))
		return
	}
	p.session.Load(path, src, preview, scale)
	p.view.ShowPreview(preview)
	if p.logger != nil {
		b := src.Bounds()
		p.logger.Info("image opened", "path", path, "width", b.Dx(), "height", b.Dy(), "scale", scale.Factor)
	}
}

// Preview composites the entry text onto the preview image and remembers it
// as the text Save will render.
func (p *WatermarkPresenter) Preview() {
	if p == nil || p.view == nil || p.render == nil {
		return
	}
	if !p.requireImage() {
		return
	}
	text := p.view.WatermarkText()
	p.session.SetText(text)
	p.view.ShowPreview(p.render.Render(p.session.Preview(), text, p.settings.Inset))
}

// Save renders the last previewed text (the configured default text when
// Preview never ran) at full resolution and writes it next to the source as
// <stem><suffix><ext>. Edits made after the last preview are ignored.
func (p *WatermarkPresenter) Save() {
	if p == nil || p.view == nil || p.render == nil || p.files == nil {
		return
	}
	if !p.requireImage() {
		return
	}
	out, err := p.save()
	if err != nil {
		p.fail("Could not save image", err)
		return
	}
	if p.logger != nil {
		p.logger.Info("image saved", "path", out)
	}
	p.view.ShowInfo("Watermark successfully added", "Image saved as\n"+watermark.DisplayName(out))
}

func (p *WatermarkPresenter) save() (string, error) {
	out, err := watermark.OutputPath(p.session.Path(), p.settings.Suffix)
	if err != nil {
		return "", fmt.Errorf("%s: %w", p.session.Path(), err)
	}
	inset := watermark.FullResolutionInset(p.settings.Inset, p.session.Scale())
	img := p.render.Render(p.session.Source(), p.session.Text(), inset)
	if err := p.files.Save(img, out, p.settings.JPEGQuality); err != nil {
		return "", err
	}
	return out, nil
}

func (p *WatermarkPresenter) requireImage() bool {
	if p.session.Loaded() {
		return true
	}
	if p.logger != nil {
		p.logger.Warn("command ignored", "error", ErrNoImage)
	}
	p.view.ShowInfo("No image", "Open an image first.")
	return false
}

func (p *WatermarkPresenter) fail(title string, err error) {
	if p.logger != nil {
		p.logger.Error(title, "error", err)
	}
	p.view.ShowError(title, err)
}
