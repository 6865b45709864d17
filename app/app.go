package app

import (
	"log/slog"
	"time"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"

	"github.com/soocke/watermark-desktop/config"
	"github.com/soocke/watermark-desktop/debug"
	"github.com/soocke/watermark-desktop/ui/presenter"
	"github.com/soocke/watermark-desktop/ui/theme"
	"github.com/soocke/watermark-desktop/ui/view"
)

const debugInterval = 5 * time.Second

type app struct {
	config    *config.Config
	logger    *slog.Logger
	container *AppContainer
}

// NewApp wires the container. It fails only when the watermark font cannot be loaded.
func NewApp(cfg *config.Config, logger *slog.Logger) (*app, error) {
	c, err := BuildContainer(cfg, logger)
	if err != nil {
		return nil, err
	}
	return &app{config: cfg, logger: logger, container: c}, nil
}

// Start builds the window and blocks in the Tk event loop until the window closes.
func (a *app) Start() {
	theme.InitStyles()

	d := a.container.Dispatcher
	a.container.RootView.Build(view.Handlers{
		Open:    d.Func(presenter.CommandOpen),
		Preview: d.Func(presenter.CommandPreview),
		Save:    d.Func(presenter.CommandSave),
		Exit:    d.Func(presenter.CommandExit),
	})

	if a.config.Debug {
		debug.StartGoroutineLogger(debugInterval, a.logger)
		debug.StartMemLogger(debugInterval, a.logger)
	}

	a.logger.Info("window ready", "width", a.config.WindowWidth, "height", a.config.WindowHeight)
	App.Wait()
	a.logger.Info("window closed")
}
