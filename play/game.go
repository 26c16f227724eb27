// Package play runs a grove.World inside an Ebitengine window. It supplies
// the world's collaborators: keyboard input, the frame tick, the viewport
// size and sprite drawing.
package play

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/phanxgames/grove"
)

var clearColor = fcolor{R: 0.118, G: 0.118, B: 0.157, A: 1}

// Game implements ebiten.Game for a grove.World.
type Game struct {
	world    *grove.World
	input    grove.InputSource
	render   renderer
	viewport grove.Viewport
	showHUD  bool
}

// NewGame creates a Game driving world with keyboard input bound per cfg.
// Images are loaded from cfg.Assets; missing files fall back to colored
// squares.
func NewGame(world *grove.World, cfg grove.Config, log *zap.Logger) (*Game, error) {
	if log == nil {
		log = zap.NewNop()
	}
	kb, err := NewKeyboard(cfg.Bindings)
	if err != nil {
		return nil, err
	}
	return &Game{
		world:   world,
		input:   kb,
		render:  renderer{images: loadImages(cfg.Assets, log)},
		showHUD: cfg.Window.ShowFPS,
	}, nil
}

// Update polls input and advances the world by one tick.
func (g *Game) Update() error {
	dt := grove.FrameDelta(ebiten.TPS())
	g.world.Update(g.input.Poll(), dt, g.viewport)
	return nil
}

// Draw renders the world and, if enabled, the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(toRGBA(clearColor))
	g.render.draw(screen, g.world, g.viewport)
	if g.showHUD {
		drawHUD(screen, g.world)
	}
}

// Layout records the window size as the world viewport. One screen pixel is
// one world unit.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.viewport = grove.Viewport{Width: float64(outsideWidth), Height: float64(outsideHeight)}
	return outsideWidth, outsideHeight
}

// Viewport returns the size recorded by the last Layout call.
func (g *Game) Viewport() grove.Viewport {
	return g.viewport
}
