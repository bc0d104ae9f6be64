package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/animrule/anim"
	"github.com/automoto/animrule/components"
	cfg "github.com/automoto/animrule/config"
	"github.com/automoto/animrule/tags"
)

// UpdateCollisions moves every physics entity through the resolv space,
// stopping on solid contact, then probes all four sides and publishes
// the wall-contact flags and resulting velocity to the entity's sprite.
// The animation registry reads both on its own update later in the same
// tick.
func UpdateCollisions(ecs *ecs.ECS) {
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)
		sprite := components.Sprite.Get(e)

		// Horizontal sweep.
		if dx := physics.SpeedX; dx != 0 {
			if check := obj.Check(dx, 0, tags.ResolvSolid); check != nil {
				dx = check.ContactWithObject(check.Objects[0]).X()
				physics.SpeedX = 0
			}
			obj.X += dx
			obj.Update()
		}

		// Vertical sweep.
		physics.OnGround = false
		if dy := physics.SpeedY; dy != 0 {
			if check := obj.Check(0, dy, tags.ResolvSolid); check != nil {
				dy = check.ContactWithObject(check.Objects[0]).Y()
				if physics.SpeedY > 0 {
					physics.OnGround = true
				}
				physics.SpeedY = 0
			}
			obj.Y += dy
			obj.Update()
		}

		probe := cfg.Physics.ContactProbe
		sprite.Contact = anim.WallContact{
			Up:    obj.Check(0, -probe, tags.ResolvSolid) != nil,
			Right: obj.Check(probe, 0, tags.ResolvSolid) != nil,
			Down:  obj.Check(0, probe, tags.ResolvSolid) != nil,
			Left:  obj.Check(-probe, 0, tags.ResolvSolid) != nil,
		}
		if sprite.Contact.Down {
			physics.OnGround = true
		}
		sprite.VelX = physics.SpeedX
		sprite.VelY = physics.SpeedY
	})
}
