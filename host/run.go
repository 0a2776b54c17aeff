// Package host runs a vista Engine inside an Ebitengine window: it turns
// window resizes, mouse gestures and key presses into engine calls and
// draws the content surface, region outlines, tooltips and the open card.
package host

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/vista"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
	// ShowRegions outlines the current scene's regions. Tab toggles it at
	// runtime.
	ShowRegions bool
	// AssetDir resolves the story's relative background path.
	AssetDir string
	// ScreenshotDir receives F12 captures. Defaults to DefaultScreenshotDir.
	ScreenshotDir string
	// Reload, when set, is polled once per frame. It returns a replacement
	// story, an error to log, or (nil, nil) when nothing changed.
	Reload func() (*vista.Story, error)
	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Run opens a resizable window and blocks until it is closed or Q is
// pressed.
func Run(e *vista.Engine, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 1280
	}
	if cfg.Height <= 0 {
		cfg.Height = 720
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(NewGame(e, cfg))
}
