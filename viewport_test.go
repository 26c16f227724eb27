package grove

import "testing"

func TestViewportAvailable(t *testing.T) {
	tests := []struct {
		vp   Viewport
		want bool
	}{
		{Viewport{}, false},
		{Viewport{Width: 800}, false},
		{Viewport{Width: -1, Height: 600}, false},
		{Viewport{Width: 800, Height: 600}, true},
	}
	for _, tt := range tests {
		if got := tt.vp.Available(); got != tt.want {
			t.Errorf("%+v.Available() = %v, want %v", tt.vp, got, tt.want)
		}
	}
}

func TestViewportBounds(t *testing.T) {
	vp := Viewport{Width: 800, Height: 600}

	r, ok := vp.Bounds(0)
	if !ok {
		t.Fatal("Bounds on available viewport reported !ok")
	}
	if r != (Rect{X: -400, Y: -300, Width: 800, Height: 600}) {
		t.Errorf("Bounds(0) = %+v", r)
	}

	r, _ = vp.Bounds(16)
	if r != (Rect{X: -384, Y: -284, Width: 768, Height: 568}) {
		t.Errorf("Bounds(16) = %+v", r)
	}
}

func TestViewportBoundsUnavailable(t *testing.T) {
	if _, ok := (Viewport{}).Bounds(0); ok {
		t.Error("zero viewport should report !ok")
	}
}

func TestViewportBoundsSmallerThanBody(t *testing.T) {
	// 40 wide with half size 30: the X axis collapses to 0, Y is fine.
	r, ok := Viewport{Width: 40, Height: 600}.Bounds(30)
	if !ok {
		t.Fatal("expected ok")
	}
	if r.X != 0 || r.Width != 0 {
		t.Errorf("collapsed X axis = [%v, %v], want [0, 0]", r.X, r.X+r.Width)
	}
	if r.Y != -270 || r.Height != 540 {
		t.Errorf("Y axis = [%v, %v], want [-270, 270]", r.Y, r.Y+r.Height)
	}
}

func TestViewportWorldToScreen(t *testing.T) {
	vp := Viewport{Width: 800, Height: 600}

	sx, sy := vp.WorldToScreen(Vec2{})
	assertNear(t, "origin sx", sx, 400)
	assertNear(t, "origin sy", sy, 300)

	// Y up in world, Y down on screen.
	sx, sy = vp.WorldToScreen(Vec2{100, 50})
	assertNear(t, "sx", sx, 500)
	assertNear(t, "sy", sy, 250)
}
