package play

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/grove"
)

// keyState reports the state of physical keys. ebitenKeys reads the live
// keyboard; tests substitute their own.
type keyState interface {
	pressed(k ebiten.Key) bool
	justPressed(k ebiten.Key) bool
}

type ebitenKeys struct{}

func (ebitenKeys) pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenKeys) justPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

// Keyboard is a grove.InputSource reading the ebiten keyboard through a set
// of action bindings. An action is held while any of its keys is down, and
// just pressed only on the frame it goes from not held to held.
type Keyboard struct {
	bindings map[grove.Action][]ebiten.Key
	keys     keyState
	prev     grove.ActionSet
}

// NewKeyboard builds a Keyboard from config bindings: action name to ebiten
// key names such as "ArrowLeft", "A" or "Space".
func NewKeyboard(bindings map[string][]string) (*Keyboard, error) {
	parsed, err := parseBindings(bindings)
	if err != nil {
		return nil, err
	}
	return &Keyboard{bindings: parsed, keys: ebitenKeys{}}, nil
}

func parseBindings(bindings map[string][]string) (map[grove.Action][]ebiten.Key, error) {
	out := make(map[grove.Action][]ebiten.Key, len(bindings))
	for name, keyNames := range bindings {
		action, err := grove.ParseAction(name)
		if err != nil {
			return nil, fmt.Errorf("bindings: %w", err)
		}
		for _, kn := range keyNames {
			var k ebiten.Key
			if err := k.UnmarshalText([]byte(kn)); err != nil {
				return nil, fmt.Errorf("bindings: %s: %w", name, err)
			}
			out[action] = append(out[action], k)
		}
	}
	return out, nil
}

// Poll reads the keyboard once for this frame.
func (kb *Keyboard) Poll() grove.Input {
	var held, rising grove.ActionSet
	for action, keys := range kb.bindings {
		for _, k := range keys {
			if kb.keys.pressed(k) {
				held |= grove.Set(action)
			}
			if kb.keys.justPressed(k) {
				rising |= grove.Set(action)
			}
		}
	}
	// A second key for an already held action is not a new press.
	rising &^= kb.prev
	kb.prev = held
	return grove.Input{Held: held, JustPressed: rising & held}
}
