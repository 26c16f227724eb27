package play

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/grove"
)

// hudText formats the debug overlay: frame rates, actor position and the
// number of planted trees.
func hudText(fps, tps float64, w *grove.World) string {
	pos := "none"
	if t, ok := w.Actor(); ok {
		pos = fmt.Sprintf("(%.0f, %.0f)", t.Position.X, t.Position.Y)
	}
	return fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nactor: %s\ntrees: %d", fps, tps, pos, w.Planted())
}

func drawHUD(screen *ebiten.Image, w *grove.World) {
	ebitenutil.DebugPrint(screen, hudText(ebiten.ActualFPS(), ebiten.ActualTPS(), w))
}
