package archetypes

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/animrule/components"
	cfg "github.com/automoto/animrule/config"
	"github.com/automoto/animrule/tags"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Object,
		components.Physics,
		components.Input,
		components.Sprite,
	)
	Walker = newArchetype(
		tags.Walker,
		components.Object,
		components.Physics,
		components.Patrol,
		components.Sprite,
	)
	FloatingPlatform = newArchetype(
		tags.FloatingPlatform,
		components.Object,
		components.Platform,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
