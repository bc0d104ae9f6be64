package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/animrule/anim"
	"github.com/automoto/animrule/archetypes"
	"github.com/automoto/animrule/components"
	cfg "github.com/automoto/animrule/config"
)

func CreateWalker(ecs *ecs.ECS, space *resolv.Space, stack *anim.Stack, x, y, dir float64) *donburi.Entry {
	walker := archetypes.Walker.Spawn(ecs)

	obj := resolv.NewObject(x, y, float64(cfg.Patrol.FrameWidth), float64(cfg.Patrol.FrameHeight))
	space.Add(obj)
	components.Object.SetValue(walker, components.ObjectData{Object: obj})

	components.Physics.SetValue(walker, components.PhysicsData{
		MaxSpeed: cfg.Patrol.Speed,
		Gravity:  cfg.Player.Gravity,
	})
	components.Patrol.SetValue(walker, components.PatrolData{
		Dir:   dir,
		Speed: cfg.Patrol.Speed,
	})

	sprite := &components.CharacterSprite{Character: "walker"}
	components.Sprite.SetValue(walker, components.SpriteData{CharacterSprite: sprite})

	RegisterClips(stack, sprite, cfg.CharacterClips["walker"], cfg.Patrol.FrameWidth, cfg.Patrol.FrameHeight)

	return walker
}
