package grove

// Viewport is the size of the display surface in world units. The world is
// centered on the viewport, so the visible area spans [-Width/2, Width/2]
// horizontally and [-Height/2, Height/2] vertically.
//
// The zero Viewport means the display surface is not known yet.
type Viewport struct {
	Width, Height float64
}

// Available reports whether the viewport has a usable size.
func (v Viewport) Available() bool {
	return v.Width > 0 && v.Height > 0
}

// Bounds returns the rectangle a body with the given half size may occupy
// while staying fully inside the viewport. ok is false when the viewport is
// unavailable.
//
// If the body is larger than the viewport on an axis, that axis collapses
// to its center.
func (v Viewport) Bounds(halfSize float64) (r Rect, ok bool) {
	if !v.Available() {
		return Rect{}, false
	}
	r.X, r.Width = axisBounds(v.Width, halfSize)
	r.Y, r.Height = axisBounds(v.Height, halfSize)
	return r, true
}

func axisBounds(dim, halfSize float64) (lo, extent float64) {
	minV := halfSize - dim/2
	maxV := dim/2 - halfSize
	if minV > maxV {
		return 0, 0
	}
	return minV, maxV - minV
}

// WorldToScreen converts a world-space point to screen pixels (origin at the
// top-left, Y down).
func (v Viewport) WorldToScreen(p Vec2) (sx, sy float64) {
	return p.X + v.Width/2, v.Height/2 - p.Y
}
