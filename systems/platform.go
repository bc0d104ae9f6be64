package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/animrule/components"
)

// UpdatePlatforms moves floating platforms along their tween sequences,
// looping forever.
func UpdatePlatforms(ecs *ecs.ECS) {
	components.Platform.Each(ecs.World, func(e *donburi.Entry) {
		platform := components.Platform.Get(e)
		obj := components.Object.Get(e)

		y, _, seqDone := platform.Tween.Update(1.0 / 60.0)
		if seqDone {
			platform.Tween.Reset()
		}
		obj.Y = float64(y)
		obj.Update()
	})
}
