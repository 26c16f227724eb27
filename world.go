package grove

import (
	"errors"
	"slices"

	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// ErrActorExists is returned by SpawnActor when the world already has an actor.
var ErrActorExists = errors.New("grove: actor already spawned")

// WorldObject is a read-only view of a planted tree.
type WorldObject struct {
	Entity   donburi.Entity
	Position Vec2
	Scale    float64
	// Frame is the world frame the tree was planted on.
	Frame uint64
}

// World owns the entity registry and runs the per-frame steps in order.
// It is single-threaded; call every method from the game loop.
type World struct {
	ecs donburi.World
	log *zap.Logger

	locomotion Locomotion
	spawner    Spawner
	actorScale float64
	plantFade  float32

	actor    donburi.Entity
	hasActor bool
	objects  []planted // creation order

	frame         uint64
	viewportKnown bool
	viewportOK    bool

	handlers      []plantHandler
	nextHandlerID uint32
	drawBuf       []drawable
}

// NewWorld creates an empty world configured from cfg. A nil logger
// discards all output.
func NewWorld(cfg Config, log *zap.Logger) *World {
	if log == nil {
		log = zap.NewNop()
	}
	w := &World{
		ecs:        donburi.NewWorld(),
		log:        log,
		locomotion: cfg.Locomotion(),
		spawner:    cfg.Spawner(),
		actorScale: cfg.ActorScale,
		plantFade:  float32(cfg.PlantFade),
	}
	PlantEvent.Subscribe(w.ecs, w.plant)
	return w
}

// ECS returns the underlying donburi world, e.g. to subscribe to PlantEvent.
func (w *World) ECS() donburi.World {
	return w.ecs
}

// SpawnActor creates the actor at pos. A world holds at most one actor.
func (w *World) SpawnActor(pos Vec2) (donburi.Entity, error) {
	if w.hasActor && w.ecs.Valid(w.actor) {
		return w.actor, ErrActorExists
	}
	e := w.ecs.Create(TransformComponent, SpriteComponent, ActorTag)
	entry := w.ecs.Entry(e)
	TransformComponent.SetValue(entry, Transform{Position: pos, Scale: w.actorScale})
	SpriteComponent.SetValue(entry, Sprite{Asset: AssetActor, Alpha: 1, ZIndex: zActor})
	w.actor = e
	w.hasActor = true
	w.log.Debug("actor spawned", vecField("pos", pos))
	return e, nil
}

// actorTransform resolves the actor handle. It returns nil when there is no
// live actor.
func (w *World) actorTransform() *Transform {
	if !w.hasActor || !w.ecs.Valid(w.actor) {
		return nil
	}
	return TransformComponent.Get(w.ecs.Entry(w.actor))
}

// Actor returns a copy of the actor's transform.
func (w *World) Actor() (Transform, bool) {
	t := w.actorTransform()
	if t == nil {
		return Transform{}, false
	}
	return *t, true
}

// DefaultTPS is the tick rate assumed when none is known.
const DefaultTPS = 60

// FrameDelta returns the seconds per tick at tps ticks per second. A
// non-positive tps, such as ebiten.SyncWithFPS, falls back to DefaultTPS.
func FrameDelta(tps int) float64 {
	if tps <= 0 {
		tps = DefaultTPS
	}
	return 1.0 / float64(tps)
}

// Update advances the world by one frame: move, confine, plant, then process
// plant requests and fades. dt is in seconds.
func (w *World) Update(in Input, dt float64, vp Viewport) {
	w.frame++
	w.noteViewport(vp)

	actor := w.actorTransform()
	if actor != nil {
		w.locomotion.Move(actor, in.Held, dt)
		w.locomotion.Confine(actor, vp)
	}

	if req, ok := w.spawner.Request(in, actor); ok {
		req.Frame = w.frame
		PlantEvent.Publish(w.ecs, req)
	}
	PlantEvent.ProcessEvents(w.ecs)

	updateFades(w.ecs, float32(dt))
}

// noteViewport logs when the viewport becomes available or unavailable.
func (w *World) noteViewport(vp Viewport) {
	ok := vp.Available()
	if w.viewportKnown && ok == w.viewportOK {
		return
	}
	w.viewportKnown = true
	w.viewportOK = ok
	if ok {
		w.log.Debug("viewport available", zap.Float64("width", vp.Width), zap.Float64("height", vp.Height))
	} else {
		w.log.Debug("viewport unavailable, skipping confine")
	}
}

// plant handles a PlantRequest by creating a tree entity.
func (w *World) plant(_ donburi.World, req PlantRequest) {
	e := w.ecs.Create(TransformComponent, SpriteComponent, WorldObjectTag)
	entry := w.ecs.Entry(e)
	TransformComponent.SetValue(entry, Transform{Position: req.Position, Scale: req.Scale})

	sprite := Sprite{Asset: AssetTree, Alpha: 1, ZIndex: zTree}
	if w.plantFade > 0 {
		sprite.Alpha = 0
		entry.AddComponent(FadeComponent)
		FadeComponent.SetValue(entry, NewFadeIn(w.plantFade))
	}
	SpriteComponent.SetValue(entry, sprite)
	w.objects = append(w.objects, planted{entity: e, frame: req.Frame})

	obj := WorldObject{Entity: e, Position: req.Position, Scale: req.Scale, Frame: req.Frame}
	w.log.Debug("tree planted", vecField("pos", req.Position), zap.Int("count", len(w.objects)))
	// Handlers may register or remove callbacks while running.
	for _, h := range slices.Clone(w.handlers) {
		if w.registered(h.id) {
			h.fn(obj)
		}
	}
}

// Frame returns the number of Update calls so far.
func (w *World) Frame() uint64 {
	return w.frame
}

// Planted returns the number of trees planted so far.
func (w *World) Planted() int {
	return len(w.objects)
}

// WorldObjects returns the planted trees in planting order.
func (w *World) WorldObjects() []WorldObject {
	out := make([]WorldObject, 0, len(w.objects))
	for _, p := range w.objects {
		if !w.ecs.Valid(p.entity) {
			continue
		}
		t := TransformComponent.Get(w.ecs.Entry(p.entity))
		out = append(out, WorldObject{Entity: p.entity, Position: t.Position, Scale: t.Scale, Frame: p.frame})
	}
	return out
}

type planted struct {
	entity donburi.Entity
	frame  uint64
}

type drawable struct {
	t Transform
	s Sprite
}

// Each calls fn for every visible entity in paint order: ascending ZIndex,
// ties broken by creation order.
func (w *World) Each(fn func(Transform, Sprite)) {
	w.drawBuf = w.drawBuf[:0]
	add := func(e donburi.Entity) {
		if !w.ecs.Valid(e) {
			return
		}
		entry := w.ecs.Entry(e)
		w.drawBuf = append(w.drawBuf, drawable{
			t: *TransformComponent.Get(entry),
			s: *SpriteComponent.Get(entry),
		})
	}
	for _, p := range w.objects {
		add(p.entity)
	}
	if w.hasActor {
		add(w.actor)
	}
	slices.SortStableFunc(w.drawBuf, func(a, b drawable) int {
		return a.s.ZIndex - b.s.ZIndex
	})
	for _, d := range w.drawBuf {
		fn(d.t, d.s)
	}
}

// --- Plant callbacks ---

type plantHandler struct {
	id uint32
	fn func(WorldObject)
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id uint32
	w  *World
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.w == nil {
		return
	}
	s := h.w.handlers
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = plantHandler{}
			h.w.handlers = s[:len(s)-1]
			return
		}
	}
}

func (w *World) registered(id uint32) bool {
	return slices.ContainsFunc(w.handlers, func(h plantHandler) bool { return h.id == id })
}

// OnPlanted registers a callback fired after each tree is created.
func (w *World) OnPlanted(fn func(WorldObject)) CallbackHandle {
	w.nextHandlerID++
	id := w.nextHandlerID
	w.handlers = append(w.handlers, plantHandler{id: id, fn: fn})
	return CallbackHandle{id: id, w: w}
}
