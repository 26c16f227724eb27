package play

import (
	"math"
	"strings"
	"testing"

	"github.com/phanxgames/grove"
)

func TestGameLayoutSetsViewport(t *testing.T) {
	g := &Game{}
	w, h := g.Layout(1024, 768)
	if w != 1024 || h != 768 {
		t.Errorf("Layout = %dx%d", w, h)
	}
	if g.Viewport() != (grove.Viewport{Width: 1024, Height: 768}) {
		t.Errorf("Viewport = %+v", g.Viewport())
	}
}

func TestGameUpdateBeforeLayout(t *testing.T) {
	cfg := grove.DefaultConfig()
	cfg.ActorHalfSize = 0
	world := grove.NewWorld(cfg, nil)
	if _, err := world.SpawnActor(grove.Vec2{}); err != nil {
		t.Fatal(err)
	}

	var in grove.ScriptedInput
	in.Hold(grove.Set(grove.ActionRight), 120)
	g := &Game{world: world, input: &in}

	// No Layout yet: the viewport is unavailable and the actor is not clamped.
	for i := 0; i < 120; i++ {
		if err := g.Update(); err != nil {
			t.Fatal(err)
		}
	}
	actor, _ := world.Actor()
	if actor.Position.X <= 400 {
		t.Errorf("x = %v, expected to pass 400 without a viewport", actor.Position.X)
	}

	g.Layout(800, 600)
	if err := g.Update(); err != nil {
		t.Fatal(err)
	}
	actor, _ = world.Actor()
	if actor.Position.X != 400 {
		t.Errorf("x = %v after Layout, want 400", actor.Position.X)
	}
}

func TestSpriteGeoMCentersOnPosition(t *testing.T) {
	vp := grove.Viewport{Width: 800, Height: 600}
	m := spriteGeoM(grove.Transform{Position: grove.Vec2{X: 100, Y: 50}, Scale: 0.5}, 40, 20, vp)

	// Image center maps to the entity position on screen.
	x, y := m.Apply(20, 10)
	if math.Abs(x-500) > 1e-9 || math.Abs(y-250) > 1e-9 {
		t.Errorf("center -> (%v, %v), want (500, 250)", x, y)
	}
	// Scaled half-width: 40 * 0.5 / 2 = 10.
	x, _ = m.Apply(0, 10)
	if math.Abs(x-490) > 1e-9 {
		t.Errorf("left edge x = %v, want 490", x)
	}
}

func TestHUDText(t *testing.T) {
	world := grove.NewWorld(grove.DefaultConfig(), nil)
	if got := hudText(60, 60, world); !strings.Contains(got, "actor: none") {
		t.Errorf("hud without actor = %q", got)
	}

	if _, err := world.SpawnActor(grove.Vec2{X: 12, Y: -3}); err != nil {
		t.Fatal(err)
	}
	got := hudText(59.5, 60, world)
	for _, want := range []string{"FPS: 59.5", "TPS: 60.0", "actor: (12, -3)", "trees: 0"} {
		if !strings.Contains(got, want) {
			t.Errorf("hud %q missing %q", got, want)
		}
	}
}

func TestToRGBA(t *testing.T) {
	c := toRGBA(fcolor{R: 1, G: 0.5, B: 0, A: 0.5})
	if c.R != 128 || c.G != 64 || c.B != 0 || c.A != 128 {
		t.Errorf("toRGBA = %+v, want premultiplied {128 64 0 128}", c)
	}
}
