package play

import (
	"image/color"
	_ "image/png"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"go.uber.org/zap"

	"github.com/phanxgames/grove"
)

// fcolor is a straight-alpha color with components in [0, 1].
type fcolor struct {
	R, G, B, A float64
}

// placeholder describes the solid square drawn when an image file is missing.
// Sizes are chosen so that, at the default scales, the actor covers
// 2*actor_half_size and a tree is a little larger.
type placeholder struct {
	size  int
	color fcolor
}

var placeholders = map[grove.AssetKind]placeholder{
	grove.AssetActor: {size: 320, color: fcolor{R: 80.0 / 255.0, G: 180.0 / 255.0, B: 1, A: 1}},
	grove.AssetTree:  {size: 160, color: fcolor{R: 0.2, G: 0.65, B: 0.3, A: 1}},
}

// loadImages loads the actor and tree images, substituting placeholders for
// files that cannot be read.
func loadImages(cfg grove.AssetConfig, log *zap.Logger) map[grove.AssetKind]*ebiten.Image {
	paths := map[grove.AssetKind]string{
		grove.AssetActor: cfg.Actor,
		grove.AssetTree:  cfg.Tree,
	}
	images := make(map[grove.AssetKind]*ebiten.Image, len(paths))
	for kind, rel := range paths {
		path := filepath.Join(cfg.Dir, rel)
		img, _, err := ebitenutil.NewImageFromFile(path)
		if err != nil {
			log.Warn("using placeholder image", zap.Stringer("asset", kind), zap.String("path", path), zap.Error(err))
			img = placeholderImage(placeholders[kind])
		}
		images[kind] = img
	}
	return images
}

func placeholderImage(p placeholder) *ebiten.Image {
	img := ebiten.NewImage(p.size, p.size)
	img.Fill(toRGBA(p.color))
	return img
}

// toRGBA converts c to a premultiplied color.RGBA.
func toRGBA(c fcolor) color.RGBA {
	return color.RGBA{
		R: uint8(c.R*c.A*255 + 0.5),
		G: uint8(c.G*c.A*255 + 0.5),
		B: uint8(c.B*c.A*255 + 0.5),
		A: uint8(c.A*255 + 0.5),
	}
}
