package grove

import (
	"strings"
	"testing"
)

func TestLoadScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		json string
		want string
	}{
		{"bad json", `{`, "parse script"},
		{"no steps", `{"steps": []}`, "no steps"},
		{"unknown action", `{"steps": [{"action": "jump"}]}`, `unknown action "jump"`},
		{"unknown key", `{"steps": [{"action": "hold", "keys": ["fly"], "frames": 2}]}`, `unknown action "fly"`},
		{"bad resize", `{"steps": [{"action": "resize", "width": 0, "height": 10}]}`, "resize"},
		{"negative hold", `{"steps": [{"action": "hold", "keys": ["right"], "frames": -5}]}`, "hold for -5 frames"},
		{"negative wait", `{"steps": [{"action": "wait", "frames": -1}]}`, "wait for -1 frames"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScript([]byte(tt.json))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestScriptPoll(t *testing.T) {
	s, err := LoadScript([]byte(`{"steps": [
		{"action": "resize", "width": 640, "height": 480},
		{"action": "hold", "keys": ["right", "up"], "frames": 2},
		{"action": "press", "keys": ["plant"]},
		{"action": "wait", "frames": 1}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	var polled []Input
	for !s.Done() {
		polled = append(polled, s.Poll())
	}
	if s.Viewport() != (Viewport{Width: 640, Height: 480}) {
		t.Errorf("Viewport = %+v", s.Viewport())
	}

	ru := Set(ActionRight, ActionUp)
	want := []Input{
		{Held: ru, JustPressed: ru},
		{Held: ru},
		{Held: Set(ActionPlant), JustPressed: Set(ActionPlant)},
		{},
		{},
	}
	if len(polled) != len(want) {
		t.Fatalf("polled %d frames, want %d: %+v", len(polled), len(want), polled)
	}
	for i := range want {
		if polled[i] != want[i] {
			t.Errorf("frame %d = %+v, want %+v", i, polled[i], want[i])
		}
	}
}

func TestRunScript(t *testing.T) {
	s, err := LoadScript([]byte(`{"steps": [
		{"action": "resize", "width": 800, "height": 600},
		{"action": "hold", "keys": ["right"], "frames": 60},
		{"action": "press", "keys": ["plant"]},
		{"action": "hold", "keys": ["left"], "frames": 30}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	w := NewWorld(testConfig(), nil)
	mustSpawnActor(t, w, Vec2{})
	frames := RunScript(w, s, 60)
	if frames != 60+2+30 {
		t.Errorf("frames = %d, want 92", frames)
	}

	// One second right at 500 u/s, confined to x = 400.
	objs := w.WorldObjects()
	if len(objs) != 1 {
		t.Fatalf("planted %d, want 1", len(objs))
	}
	assertVec(t, "tree", objs[0].Position, Vec2{400, 0})

	// Half a second left from the edge.
	actor, _ := w.Actor()
	if d := actor.Position.X - 150; d > 1e-6 || d < -1e-6 {
		t.Errorf("actor x = %v, want 150", actor.Position.X)
	}
}

func TestRunScriptDefaultTPS(t *testing.T) {
	s, err := LoadScript([]byte(`{"steps": [{"action": "wait", "frames": 3}]}`))
	if err != nil {
		t.Fatal(err)
	}
	w := NewWorld(testConfig(), nil)
	if n := RunScript(w, s, 0); n != 3 {
		t.Errorf("frames = %d, want 3", n)
	}
}

func TestRunScriptTrailingResize(t *testing.T) {
	s, err := LoadScript([]byte(`{"steps": [
		{"action": "wait", "frames": 2},
		{"action": "resize", "width": 320, "height": 240}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	w := NewWorld(testConfig(), nil)
	if n := RunScript(w, s, 60); n != 2 {
		t.Errorf("frames = %d, want 2", n)
	}
	if s.Viewport() != (Viewport{Width: 320, Height: 240}) {
		t.Errorf("Viewport = %+v, trailing resize not applied", s.Viewport())
	}
}

func TestRunScriptLongHold(t *testing.T) {
	const frames = 200_000
	s, err := LoadScript([]byte(`{"steps": [
		{"action": "resize", "width": 800, "height": 600},
		{"action": "hold", "keys": ["up"], "frames": 200000}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	w := NewWorld(testConfig(), nil)
	mustSpawnActor(t, w, Vec2{})
	if n := RunScript(w, s, 60); n != frames {
		t.Errorf("frames = %d, want %d", n, frames)
	}
	actor, _ := w.Actor()
	assertVec(t, "actor", actor.Position, Vec2{0, 300})
}

func TestScriptOmittedFramesLastOneFrame(t *testing.T) {
	s, err := LoadScript([]byte(`{"steps": [
		{"action": "hold", "keys": ["left"]},
		{"action": "wait"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	if n := RunScript(NewWorld(testConfig(), nil), s, 60); n != 2 {
		t.Errorf("frames = %d, want 2", n)
	}
}
