package systems

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/animrule/anim"
	cfg "github.com/automoto/animrule/config"
)

// NewUpdateAnimations ticks the animation stack. It must run after
// UpdateCollisions so the registry sees this tick's velocity and
// wall-contact flags; state derivation, clip scoring and frame advance
// all happen inside the registry, in registration order.
func NewUpdateAnimations(stack *anim.Stack) func(*ecs.ECS) {
	return func(*ecs.ECS) {
		stack.Update(cfg.Tick)
	}
}
