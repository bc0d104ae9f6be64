package factory

import (
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/animrule/archetypes"
	"github.com/automoto/animrule/components"
	"github.com/automoto/animrule/tags"
)

// CreateFloatingPlatform spawns a solid platform that drifts up and back
// down on a looping tween. Characters standing on it pick up
// HittingWallDown contact like on any other solid.
func CreateFloatingPlatform(ecs *ecs.ECS, space *resolv.Space, x, y, w, h float64) *donburi.Entry {
	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid)
	space.Add(obj)

	platform := archetypes.FloatingPlatform.Spawn(ecs)
	components.Object.SetValue(platform, components.ObjectData{Object: obj})

	tw := gween.NewSequence()
	tw.Add(
		gween.New(float32(y), float32(y-64), 2, ease.Linear),
		gween.New(float32(y-64), float32(y), 2, ease.Linear),
	)
	components.Platform.SetValue(platform, components.PlatformData{Tween: tw})

	return platform
}
