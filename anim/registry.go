package anim

import (
	"image"
	"time"
)

// Registry owns the controllers of one scene. Controllers update in the
// order their sprites first registered a clip; a controller whose sprite
// is destroyed is skipped and pruned at the end of the tick, never
// mid-tick.
type Registry struct {
	controllers []*Controller
	bySprite    map[Sprite]*Controller
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{bySprite: make(map[Sprite]*Controller)}
}

// Controllers returns the live controllers in registration order.
func (r *Registry) Controllers() []*Controller { return r.controllers }

// Lookup returns the controller for a sprite, or nil if none registered.
func (r *Registry) Lookup(sprite Sprite) *Controller { return r.bySprite[sprite] }

// LoopFrames registers a looping clip for the sprite under the rule,
// lazily creating the sprite's controller. A nil sprite, empty frame
// list or empty rule is a no-op: bad registrations come from authoring
// tools and are absorbed, not raised. Intervals below MinInterval clamp
// to it. Registering a rule the controller already has replaces that
// clip's frames and interval in place.
func (r *Registry) LoopFrames(sprite Sprite, frames []image.Image, interval time.Duration, rule Rule) {
	if sprite == nil || len(frames) == 0 || rule == EmptyRule {
		return
	}
	if interval < MinInterval {
		interval = MinInterval
	}

	c := r.bySprite[sprite]
	if c == nil {
		c = newController(sprite)
		r.bySprite[sprite] = c
		r.controllers = append(r.controllers, c)
	}
	c.register(&Clip{frames: frames, interval: interval, rule: rule})
}

// Update runs one tick over every controller, then prunes the ones whose
// sprites were observed destroyed this tick.
func (r *Registry) Update(dt time.Duration) {
	pruned := false
	for _, c := range r.controllers {
		if c.sprite.Destroyed() {
			pruned = true
			continue
		}
		c.update(dt)
	}
	if !pruned {
		return
	}
	kept := r.controllers[:0]
	for _, c := range r.controllers {
		if c.sprite.Destroyed() {
			delete(r.bySprite, c.sprite)
			continue
		}
		kept = append(kept, c)
	}
	r.controllers = kept
}

// Stack is a caller-owned sequence of registries for nested scenes.
// Whoever drives the tick loop owns the stack and pushes a registry on
// scene entry and pops it on exit; Update and LoopFrames always address
// the top. There is no package-level instance.
type Stack struct {
	registries []*Registry
}

// NewStack creates an empty stack.
func NewStack() *Stack { return &Stack{} }

// Push creates, activates and returns a new empty registry.
func (s *Stack) Push() *Registry {
	r := NewRegistry()
	s.registries = append(s.registries, r)
	return r
}

// Pop discards the top registry. No-op on an empty stack.
func (s *Stack) Pop() {
	if n := len(s.registries); n > 0 {
		s.registries = s.registries[:n-1]
	}
}

// Top returns the active registry, or nil when the stack is empty.
func (s *Stack) Top() *Registry {
	if n := len(s.registries); n > 0 {
		return s.registries[n-1]
	}
	return nil
}

// Update ticks the active registry. No-op when the stack is empty.
func (s *Stack) Update(dt time.Duration) {
	if top := s.Top(); top != nil {
		top.Update(dt)
	}
}

// LoopFrames registers a clip on the active registry. No-op when the
// stack is empty.
func (s *Stack) LoopFrames(sprite Sprite, frames []image.Image, interval time.Duration, rule Rule) {
	if top := s.Top(); top != nil {
		top.LoopFrames(sprite, frames, interval, rule)
	}
}
