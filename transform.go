package grove

import (
	"github.com/yohamta/donburi"
)

// Transform is the position and uniform scale of an entity.
type Transform struct {
	Position Vec2
	Scale    float64
}

// Sprite is the visual half of an entity. Rendering reads it; the domain
// model never does.
type Sprite struct {
	Asset AssetKind
	// Alpha is the opacity in [0, 1]. Newly planted trees fade in from 0.
	Alpha float64
	// ZIndex orders drawing; higher values draw on top.
	ZIndex int
}

var (
	// TransformComponent stores an entity's Transform.
	TransformComponent = donburi.NewComponentType[Transform]()
	// SpriteComponent stores an entity's Sprite.
	SpriteComponent = donburi.NewComponentType[Sprite]()
	// ActorTag marks the player-controlled actor.
	ActorTag = donburi.NewTag()
	// WorldObjectTag marks a planted tree.
	WorldObjectTag = donburi.NewTag()
)

const (
	zTree  = 0
	zActor = 10
)
