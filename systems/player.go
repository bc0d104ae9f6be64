package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/animrule/components"
	"github.com/automoto/animrule/tags"
)

// UpdatePlayer turns input into acceleration and jumps.
func UpdatePlayer(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		input := components.Input.Get(e)
		physics := components.Physics.Get(e)

		if input.Left {
			physics.SpeedX -= physics.Accel
		}
		if input.Right {
			physics.SpeedX += physics.Accel
		}
		if input.Jump && physics.OnGround {
			physics.SpeedY = physics.JumpSpeed
			physics.OnGround = false
		}
	})
}
