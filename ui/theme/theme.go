package theme

// Palette and base theme for the watermark window.

import (
	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

const (
	ColorPink   = "#e2979c"
	ColorRed    = "#e7305b"
	ColorGreen  = "#9bdeac" // window background
	ColorYellow = "#f7f5dd" // preview frame
)

// PaletteSnapshot groups the colors the view applies to widgets.
type PaletteSnapshot struct {
	AppBg     string
	PreviewBg string
	ButtonBg  string
	ButtonFg  string
	Accent    string // pressed/hovered buttons
}

// CurrentPalette returns the colors used by the view.
func CurrentPalette() PaletteSnapshot {
	return PaletteSnapshot{
		AppBg:     ColorGreen,
		PreviewBg: ColorYellow,
		ButtonBg:  ColorPink,
		ButtonFg:  "white",
		Accent:    ColorRed,
	}
}

// InitStyles activates the base theme and paints the root window.
func InitStyles() {
	_ = ActivateTheme("azure light") // baseline metrics
	App.Configure(Background(CurrentPalette().AppBg))
}
