package grove

// Unit contributions of the directional actions. Y points up.
var directionVectors = [...]struct {
	action Action
	v      Vec2
}{
	{ActionLeft, Vec2{-1, 0}},
	{ActionRight, Vec2{1, 0}},
	{ActionUp, Vec2{0, 1}},
	{ActionDown, Vec2{0, -1}},
}

// Direction returns the raw sum of the unit vectors for the held directional
// actions. Opposing actions cancel; diagonals have length √2.
func Direction(held ActionSet) Vec2 {
	var d Vec2
	for _, dv := range directionVectors {
		if held.Has(dv.action) {
			d = d.Add(dv.v)
		}
	}
	return d
}

// Locomotion moves the actor from directional input and keeps it inside the
// viewport.
type Locomotion struct {
	// Speed is the movement speed in world units per second.
	Speed float64
	// HalfSize is the actor's half extent, kept clear of the viewport edges.
	HalfSize float64
}

// Displacement returns how far the actor moves this frame. The direction is
// normalized first so diagonal speed equals axis-aligned speed.
func (l Locomotion) Displacement(held ActionSet, dt float64) Vec2 {
	return Direction(held).Normalize().Scale(l.Speed * dt)
}

// Move adds this frame's displacement to t.
func (l Locomotion) Move(t *Transform, held ActionSet, dt float64) {
	t.Position = t.Position.Add(l.Displacement(held, dt))
}

// Confine clamps t into the viewport bounds. It reports false and leaves t
// alone when the viewport is unavailable.
func (l Locomotion) Confine(t *Transform, vp Viewport) bool {
	bounds, ok := vp.Bounds(l.HalfSize)
	if !ok {
		return false
	}
	t.Position = bounds.Clamp(t.Position)
	return true
}
