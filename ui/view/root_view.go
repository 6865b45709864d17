package view

import (
	"fmt"
	"image"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/soocke/watermark-desktop/config"
	"github.com/soocke/watermark-desktop/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

const windowTitle = "Watermarking Desktop App"

// RootView composes the top-level window and implements the presenter's view contract.
type RootView struct {
	cfg    *config.Config
	logger *slog.Logger

	Preview   ImagePreview
	TextInput *TextWidget

	initialDir string
}

// Handlers are invoked on button clicks.
type Handlers struct {
	Open    func()
	Preview func()
	Save    func()
	Exit    func()
}

func NewRootView(cfg *config.Config, logger *slog.Logger) *RootView {
	return &RootView{cfg: cfg, logger: logger, initialDir: "/"}
}

// Build configures the root window and lays out the preview and the control row.
func (rv *RootView) Build(h Handlers) {
	if rv == nil || rv.cfg == nil {
		return
	}
	App.WmTitle(windowTitle)
	origin := rv.cfg.WindowOrigin(screenSize())
	WmGeometry(App, fmt.Sprintf("%dx%d+%d+%d", rv.cfg.WindowWidth, rv.cfg.WindowHeight, origin.X, origin.Y))
	if h.Exit != nil {
		WmProtocol(App, "WM_DELETE_WINDOW", h.Exit)
	}

	pal := theme.CurrentPalette()
	box := rv.cfg.PreviewBox()

	// Row 0: preview spanning all four control columns.
	GridRowConfigure(App, 0, Weight(1))
	for col := 0; col < 4; col++ {
		GridColumnConfigure(App, col, Weight(1))
	}
	rv.Preview = NewImagePreview(0, 4, box.X, box.Y)

	// Row 1: open, text, preview, save.
	button := func(label string, col int, fn func()) {
		b := Button(Txt(label), Command(fn), Width(16), Background(pal.ButtonBg), Foreground(pal.ButtonFg), Activebackground(pal.Accent), Activeforeground(pal.ButtonFg), Highlightthickness(0))
		Grid(b, Row(1), Column(col), Sticky("e"), Padx("1m"), Pady("1m"))
	}
	button("Open image", 0, h.Open)
	rv.TextInput = Text(Height(1), Width(16))
	Grid(rv.TextInput, Row(1), Column(1), Sticky("we"), Padx("1m"), Pady("1m"))
	rv.TextInput.Insert("1.0", rv.cfg.DefaultText)
	button("Preview Watermark", 2, h.Preview)
	button("Save Image", 3, h.Save)
}

// screenSize reports the root window's screen in pixels, 0x0 if Tk cannot tell.
func screenSize() (int, int) {
	w, _ := strconv.Atoi(WinfoScreenWidth(App))
	h, _ := strconv.Atoi(WinfoScreenHeight(App))
	return w, h
}

// ChooseImage opens the native file picker filtered to JPEG and PNG files.
func (rv *RootView) ChooseImage() (string, bool) {
	files := GetOpenFile(
		Title("Select image"),
		Initialdir(rv.initialDir),
		Filetypes([]FileType{
			{TypeName: "jpeg", Extensions: []string{".jpg", ".jpeg"}},
			{TypeName: "png", Extensions: []string{".png"}},
		}),
	)
	if len(files) == 0 || strings.TrimSpace(files[0]) == "" {
		return "", false
	}
	rv.initialDir = filepath.Dir(files[0])
	return files[0], true
}

// WatermarkText returns the first line of the text input, unmodified otherwise.
func (rv *RootView) WatermarkText() string {
	if rv == nil || rv.TextInput == nil {
		return ""
	}
	s := strings.Join(rv.TextInput.Get("1.0", END), "")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return s
}

// ShowPreview proxies to the preview label.
func (rv *RootView) ShowPreview(img image.Image) {
	if rv != nil && rv.Preview != nil {
		rv.Preview.Show(img)
	}
}

// ShowInfo pops up an informational message box.
func (rv *RootView) ShowInfo(title, msg string) {
	MessageBox(Icon("info"), Title(title), Msg(msg))
}

// ShowError pops up an error message box with the error as detail text.
func (rv *RootView) ShowError(title string, err error) {
	detail := ""
	if err != nil {
		detail = err.Error()
	}
	MessageBox(Icon("error"), Title(title), Msg(title), Detail(detail))
}

// Close tears down the root window, ending App.Wait.
func (rv *RootView) Close() {
	Destroy(App)
}
