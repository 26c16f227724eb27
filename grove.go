package grove

import "math"

// Vec2 is a 2D vector used for positions, displacements and directions.
// World coordinates are Y-up with the origin at the center of the window.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns v scaled to unit length. The zero vector is returned
// unchanged.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vec2{v.X / l, v.Y / l}
}

// Rect is an axis-aligned rectangle in world space. X and Y name the
// minimum corner (bottom-left, since Y points up).
type Rect struct {
	X, Y, Width, Height float64
}

// Clamp returns p moved to the nearest point inside r.
func (r Rect) Clamp(p Vec2) Vec2 {
	return Vec2{
		X: math.Max(r.X, math.Min(p.X, r.X+r.Width)),
		Y: math.Max(r.Y, math.Min(p.Y, r.Y+r.Height)),
	}
}

// AssetKind names the visual asset an entity is drawn with.
type AssetKind uint8

const (
	AssetActor AssetKind = iota // the player-controlled actor image
	AssetTree                   // a planted tree image
)

// String returns the asset kind's name.
func (k AssetKind) String() string {
	switch k {
	case AssetActor:
		return "actor"
	case AssetTree:
		return "tree"
	default:
		return "unknown"
	}
}
