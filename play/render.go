package play

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/grove"
)

// renderer draws world entities as centered, uniformly scaled sprites.
type renderer struct {
	images map[grove.AssetKind]*ebiten.Image
	op     ebiten.DrawImageOptions
}

// spriteGeoM positions an image of size (w, h) so that its center lands on
// t.Position, scaled by t.Scale.
func spriteGeoM(t grove.Transform, w, h int, vp grove.Viewport) ebiten.GeoM {
	var m ebiten.GeoM
	m.Translate(-float64(w)/2, -float64(h)/2)
	m.Scale(t.Scale, t.Scale)
	sx, sy := vp.WorldToScreen(t.Position)
	m.Translate(sx, sy)
	return m
}

func (r *renderer) draw(target *ebiten.Image, w *grove.World, vp grove.Viewport) {
	w.Each(func(t grove.Transform, s grove.Sprite) {
		img := r.images[s.Asset]
		if img == nil || s.Alpha <= 0 {
			return
		}
		b := img.Bounds()
		r.op.GeoM = spriteGeoM(t, b.Dx(), b.Dy(), vp)

		// Premultiplied alpha.
		r.op.ColorScale.Reset()
		a := float32(s.Alpha)
		r.op.ColorScale.Scale(a, a, a, a)

		target.DrawImage(img, &r.op)
	})
}
