package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/animrule/components"
)

const patrolPauseTicks = 45

// UpdatePatrol walks NPC walkers back and forth. On wall contact the
// walker stands still for a moment before turning, so its clip set
// cycles through moving and not-moving rules.
func UpdatePatrol(ecs *ecs.ECS) {
	components.Patrol.Each(ecs.World, func(e *donburi.Entry) {
		patrol := components.Patrol.Get(e)
		physics := components.Physics.Get(e)
		sprite := components.Sprite.Get(e)

		if patrol.PauseTicks > 0 {
			patrol.PauseTicks--
			physics.SpeedX = 0
			if patrol.PauseTicks == 0 {
				patrol.Dir = -patrol.Dir
			}
			return
		}

		contact := sprite.Contact
		if (patrol.Dir > 0 && contact.Right) || (patrol.Dir < 0 && contact.Left) {
			patrol.PauseTicks = patrolPauseTicks
			physics.SpeedX = 0
			return
		}
		physics.SpeedX = patrol.Dir * patrol.Speed
	})
}
