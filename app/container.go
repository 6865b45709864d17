package app

import (
	"fmt"
	"log/slog"

	"github.com/soocke/watermark-desktop/assets"
	"github.com/soocke/watermark-desktop/config"
	"github.com/soocke/watermark-desktop/domain/watermark"
	"github.com/soocke/watermark-desktop/ui/model"
	"github.com/soocke/watermark-desktop/ui/presenter"
	"github.com/soocke/watermark-desktop/ui/view"
)

// AppContainer assembles models, services, presenters and the root view.
type AppContainer struct {
	Config     *config.Config
	Logger     *slog.Logger
	Session    *model.SessionModel
	Compositor *watermark.Compositor
	Files      watermark.Files
	RootView   *view.RootView

	// Presenters
	Presenter  *presenter.WatermarkPresenter
	Dispatcher *presenter.Dispatcher
}

// BuildContainer constructs all components. Side-effects limited to font loading;
// a font that cannot be loaded is returned as an error and is fatal for the app.
func BuildContainer(cfg *config.Config, logger *slog.Logger) (*AppContainer, error) {
	c := &AppContainer{Config: cfg, Logger: logger}

	ttf, err := assets.FontTTF(cfg.FontPath)
	if err != nil {
		return nil, fmt.Errorf("load watermark font: %w", err)
	}
	face, err := watermark.LoadFace(ttf, cfg.FontSize)
	if err != nil {
		return nil, fmt.Errorf("load watermark font: %w", err)
	}
	c.Compositor = watermark.NewCompositor(face, cfg.WatermarkColor())
	c.Session = model.NewSessionModel(cfg.DefaultText)

	// View
	c.RootView = view.NewRootView(cfg, logger)

	c.Presenter = presenter.NewWatermarkPresenter(c.Session, c.Files, c.Compositor, c.RootView, presenter.Settings{
		Box:         cfg.PreviewBox(),
		Inset:       cfg.Inset,
		Suffix:      cfg.Suffix,
		JPEGQuality: cfg.JPEGQuality,
	}, logger)

	c.Dispatcher = presenter.NewDispatcher(logger)
	c.Dispatcher.Handle(presenter.CommandOpen, c.Presenter.Open)
	c.Dispatcher.Handle(presenter.CommandPreview, c.Presenter.Preview)
	c.Dispatcher.Handle(presenter.CommandSave, c.Presenter.Save)
	c.Dispatcher.Handle(presenter.CommandExit, c.RootView.Close)
	return c, nil
}
