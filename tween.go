package grove

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// Fade animates an entity's Sprite.Alpha. The fade only touches the sprite;
// the entity's Transform is never written.
type Fade struct {
	tween *gween.Tween
	Done  bool
}

// FadeComponent stores an entity's in-flight Fade.
var FadeComponent = donburi.NewComponentType[Fade]()

// NewFadeIn returns a Fade from transparent to opaque over duration seconds.
func NewFadeIn(duration float32) Fade {
	return Fade{tween: gween.New(0, 1, duration, ease.OutQuad)}
}

// Update advances the fade by dt seconds and writes the value into s.
func (f *Fade) Update(s *Sprite, dt float32) {
	if f.Done || f.tween == nil {
		f.Done = true
		return
	}
	val, finished := f.tween.Update(dt)
	s.Alpha = float64(val)
	if finished {
		s.Alpha = 1
		f.Done = true
	}
}

var fadeQuery = donburi.NewQuery(filter.Contains(FadeComponent, SpriteComponent))

// updateFades advances every fade and removes the finished ones.
func updateFades(w donburi.World, dt float32) {
	var finished []*donburi.Entry
	fadeQuery.Each(w, func(e *donburi.Entry) {
		f := FadeComponent.Get(e)
		f.Update(SpriteComponent.Get(e), dt)
		if f.Done {
			finished = append(finished, e)
		}
	})
	for _, e := range finished {
		e.RemoveComponent(FadeComponent)
	}
}
