package grove

import (
	"fmt"
	"strings"
)

// Action identifies a logical input the world reacts to. Physical keys are
// bound to actions by the host (see play.Keyboard).
type Action uint8

const (
	ActionLeft  Action = iota // move toward -X
	ActionRight               // move toward +X
	ActionUp                  // move toward +Y
	ActionDown                // move toward -Y
	ActionPlant               // plant a tree at the actor's position
	actionCount
)

var actionNames = [actionCount]string{
	ActionLeft:  "left",
	ActionRight: "right",
	ActionUp:    "up",
	ActionDown:  "down",
	ActionPlant: "plant",
}

// String returns the action's config name.
func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return fmt.Sprintf("Action(%d)", uint8(a))
}

// ParseAction returns the action with the given config name.
// Matching is case-insensitive.
func ParseAction(name string) (Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for a, n := range actionNames {
		if n == name {
			return Action(a), nil
		}
	}
	return 0, fmt.Errorf("unknown action %q", name)
}

// Actions returns every action in declaration order.
func Actions() []Action {
	out := make([]Action, actionCount)
	for i := range out {
		out[i] = Action(i)
	}
	return out
}

// ActionSet is a bitmask of actions.
// Values can be combined with bitwise OR (e.g. Set(ActionUp) | Set(ActionRight)).
type ActionSet uint8

// Set returns an ActionSet containing the given actions.
func Set(actions ...Action) ActionSet {
	var s ActionSet
	for _, a := range actions {
		s |= 1 << a
	}
	return s
}

// Has reports whether a is in the set.
func (s ActionSet) Has(a Action) bool {
	return s&(1<<a) != 0
}

// String lists the set's actions, e.g. "up+right".
func (s ActionSet) String() string {
	if s == 0 {
		return "none"
	}
	var parts []string
	for a := Action(0); a < actionCount; a++ {
		if s.Has(a) {
			parts = append(parts, a.String())
		}
	}
	return strings.Join(parts, "+")
}

// Input is the per-frame input snapshot handed to World.Update.
type Input struct {
	// Held holds the actions whose keys are currently down.
	Held ActionSet
	// JustPressed holds the actions that went from up to down this frame.
	JustPressed ActionSet
}

// InputSource produces one Input snapshot per frame.
type InputSource interface {
	Poll() Input
}

// EdgeTracker derives rising edges from successive held sets. Sources that
// only know what is held (scripts, replays) use it to fill JustPressed.
type EdgeTracker struct {
	prev ActionSet
}

// Next records held as the current frame's state and returns the snapshot.
func (e *EdgeTracker) Next(held ActionSet) Input {
	in := Input{Held: held, JustPressed: held &^ e.prev}
	e.prev = held
	return in
}
