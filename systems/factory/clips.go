package factory

import (
	"github.com/automoto/animrule/anim"
	"github.com/automoto/animrule/assets"
	"github.com/automoto/animrule/components"
	cfg "github.com/automoto/animrule/config"
)

// RegisterClips registers a character's clip set on the active registry.
// Also used by the hot-reload path, where it replaces the clips of live
// controllers in place.
func RegisterClips(stack *anim.Stack, sprite *components.CharacterSprite, defs []cfg.ClipDef, frameW, frameH int) {
	for _, def := range defs {
		frames := assets.Frames(sprite.Character, def.Name, def.FrameCount, frameW, frameH)
		stack.LoopFrames(sprite, frames, def.Interval(), def.Rule())
	}
}
