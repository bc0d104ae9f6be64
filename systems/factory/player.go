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

func CreatePlayer(ecs *ecs.ECS, space *resolv.Space, stack *anim.Stack, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	obj := resolv.NewObject(x, y, float64(cfg.Player.FrameWidth), float64(cfg.Player.FrameHeight))
	space.Add(obj)
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Physics.SetValue(player, components.PhysicsData{
		Accel:     cfg.Player.Accel,
		MaxSpeed:  cfg.Player.MaxSpeed,
		JumpSpeed: cfg.Player.JumpSpeed,
		Gravity:   cfg.Player.Gravity,
		Friction:  cfg.Player.Friction,
	})

	sprite := &components.CharacterSprite{Character: "player"}
	components.Sprite.SetValue(player, components.SpriteData{CharacterSprite: sprite})

	RegisterClips(stack, sprite, cfg.CharacterClips["player"], cfg.Player.FrameWidth, cfg.Player.FrameHeight)

	return player
}
