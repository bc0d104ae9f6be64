package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/animrule/archetypes"
	"github.com/automoto/animrule/assets"
	"github.com/automoto/animrule/components"
	"github.com/automoto/animrule/tags"
)

// CreateLevel turns every solid tile of the level into a wall entity in
// the space.
func CreateLevel(ecs *ecs.ECS, space *resolv.Space, level *assets.Level) {
	for _, tile := range level.Solids {
		obj := resolv.NewObject(tile.X, tile.Y, tile.W, tile.H, tags.ResolvSolid)
		space.Add(obj)

		wall := archetypes.Wall.Spawn(ecs)
		components.Object.SetValue(wall, components.ObjectData{Object: obj})
	}
}
