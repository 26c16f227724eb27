package grove

// ScriptedInput is an InputSource fed from a queue of held-action frames.
// Each Poll consumes one frame; an empty queue polls as nothing held.
// Rising edges are derived from the queued frames, so holding an action
// across several frames reports JustPressed only on the first.
type ScriptedInput struct {
	runs    []heldRun
	pending int
	edges   EdgeTracker
}

// heldRun is frames consecutive frames with the same actions held.
type heldRun struct {
	held   ActionSet
	frames int
}

// Hold queues frames frames with the given actions held. A non-positive
// frames queues nothing.
func (s *ScriptedInput) Hold(held ActionSet, frames int) {
	if frames <= 0 {
		return
	}
	if n := len(s.runs); n > 0 && s.runs[n-1].held == held {
		s.runs[n-1].frames += frames
	} else {
		s.runs = append(s.runs, heldRun{held: held, frames: frames})
	}
	s.pending += frames
}

// Press queues a single frame with the given actions held, followed by a
// release frame so that a repeated Press rises again.
func (s *ScriptedInput) Press(held ActionSet) {
	s.Hold(held, 1)
	s.Hold(0, 1)
}

// Idle queues frames frames with nothing held.
func (s *ScriptedInput) Idle(frames int) {
	s.Hold(0, frames)
}

// Pending returns the number of queued frames not yet polled.
func (s *ScriptedInput) Pending() int {
	return s.pending
}

// Poll pops the next queued frame.
func (s *ScriptedInput) Poll() Input {
	var held ActionSet
	if len(s.runs) > 0 {
		r := &s.runs[0]
		held = r.held
		r.frames--
		s.pending--
		if r.frames == 0 {
			s.runs = s.runs[1:]
		}
	}
	return s.edges.Next(held)
}
