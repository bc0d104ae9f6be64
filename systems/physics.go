package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/animrule/components"
	cfg "github.com/automoto/animrule/config"
)

// UpdatePhysics applies friction, speed clamping and gravity. Patrol
// entities set their speed directly, so friction only applies to
// player-controlled movement.
func UpdatePhysics(ecs *ecs.ECS) {
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)

		if !e.HasComponent(components.Patrol) {
			if physics.SpeedX > physics.Friction {
				physics.SpeedX -= physics.Friction
			} else if physics.SpeedX < -physics.Friction {
				physics.SpeedX += physics.Friction
			} else {
				physics.SpeedX = 0
			}
		}

		if physics.SpeedX > physics.MaxSpeed {
			physics.SpeedX = physics.MaxSpeed
		} else if physics.SpeedX < -physics.MaxSpeed {
			physics.SpeedX = -physics.MaxSpeed
		}

		physics.SpeedY += physics.Gravity
		if physics.SpeedY > cfg.Physics.MaxFallSpeed {
			physics.SpeedY = cfg.Physics.MaxFallSpeed
		}
	})
}
