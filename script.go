package grove

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a script.
type scriptStep struct {
	Action string   `json:"action"`
	Keys   []string `json:"keys,omitempty"`
	Frames int      `json:"frames,omitempty"`
	Width  float64  `json:"width,omitempty"`
	Height float64  `json:"height,omitempty"`
}

// scriptFile is the top-level JSON structure for a script.
type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// Script replays a sequence of input steps frame by frame. It implements
// InputSource, and it tracks the viewport the script has set.
//
// Steps:
//
//	{"action": "hold",   "keys": ["right", "up"], "frames": 60}
//	{"action": "press",  "keys": ["plant"]}
//	{"action": "wait",   "frames": 10}
//	{"action": "resize", "width": 800, "height": 600}
//
// "press" holds the keys for one frame and releases them on the next.
// A hold or wait without frames lasts one frame; negative frames are
// rejected.
type Script struct {
	steps    []scriptStep
	cursor   int
	input    ScriptedInput
	viewport Viewport
}

// LoadScript parses a JSON script.
func LoadScript(jsonData []byte) (*Script, error) {
	var f scriptFile
	if err := json.Unmarshal(jsonData, &f); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range f.Steps {
		if err := st.validate(); err != nil {
			return nil, fmt.Errorf("parse script: step %d: %w", i, err)
		}
	}
	return &Script{steps: f.Steps}, nil
}

func (st scriptStep) validate() error {
	switch st.Action {
	case "hold":
		if st.Frames < 0 {
			return fmt.Errorf("hold for %d frames", st.Frames)
		}
		_, err := st.actions()
		return err
	case "press":
		_, err := st.actions()
		return err
	case "wait":
		if st.Frames < 0 {
			return fmt.Errorf("wait for %d frames", st.Frames)
		}
		return nil
	case "resize":
		if st.Width <= 0 || st.Height <= 0 {
			return fmt.Errorf("resize to %vx%v", st.Width, st.Height)
		}
		return nil
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
}

func (st scriptStep) actions() (ActionSet, error) {
	var s ActionSet
	for _, k := range st.Keys {
		a, err := ParseAction(k)
		if err != nil {
			return 0, err
		}
		s |= Set(a)
	}
	return s, nil
}

// Done reports whether every step has been replayed. Trailing resize steps
// are applied without consuming a frame.
func (s *Script) Done() bool {
	s.advance()
	return s.input.Pending() == 0
}

// Viewport returns the viewport set by the last resize step, or the zero
// Viewport if there was none.
func (s *Script) Viewport() Viewport {
	return s.viewport
}

// Poll advances the script by one frame and returns that frame's input.
// Resize steps apply immediately and do not consume a frame.
func (s *Script) Poll() Input {
	s.advance()
	return s.input.Poll()
}

// advance applies steps until a frame is queued or the steps run out.
func (s *Script) advance() {
	for s.input.Pending() == 0 && s.cursor < len(s.steps) {
		st := s.steps[s.cursor]
		s.cursor++

		held, _ := st.actions()
		switch st.Action {
		case "hold":
			s.input.Hold(held, max(st.Frames, 1))
		case "press":
			s.input.Press(held)
		case "wait":
			s.input.Idle(max(st.Frames, 1))
		case "resize":
			s.viewport = Viewport{Width: st.Width, Height: st.Height}
		}
	}
}

// RunScript drives w with s until the script is done, stepping at tps
// frames per second. It returns the number of frames run.
func RunScript(w *World, s *Script, tps int) int {
	dt := FrameDelta(tps)
	frames := 0
	for !s.Done() {
		in := s.Poll()
		w.Update(in, dt, s.Viewport())
		frames++
	}
	return frames
}
