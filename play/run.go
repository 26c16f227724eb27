package play

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/phanxgames/grove"
)

// Run opens a window configured by cfg.Window and runs world until the
// window is closed.
func Run(world *grove.World, cfg grove.Config, log *zap.Logger) error {
	g, err := NewGame(world, cfg, log)
	if err != nil {
		return fmt.Errorf("play: %w", err)
	}

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	if cfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("play: %w", err)
	}
	return nil
}
