package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/animrule/anim"
	"github.com/automoto/animrule/components"
	cfg "github.com/automoto/animrule/config"
	"github.com/automoto/animrule/fonts"
)

// UpdateDebugToggle flips the rule-debug overlay on F1 and persists the
// choice.
func UpdateDebugToggle(ecs *ecs.ECS) {
	if !inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		return
	}
	cfg.Debug.ShowOverlay = !cfg.Debug.ShowOverlay
	SaveSettings(&SavedSettings{ShowOverlay: cfg.Debug.ShowOverlay})
}

// NewDrawHUD renders the control hints and, when enabled, a per-character
// overlay with the derived predicate bitmask and the name of the winning
// clip. The overlay is the authoring aid for rule sets: watching the
// bitmask while moving shows exactly why a rule wins or loses.
func NewDrawHUD(stack *anim.Stack) func(*ecs.ECS, *ebiten.Image) {
	clipNames := map[string]map[anim.Rule]string{}

	return func(ecsInstance *ecs.ECS, screen *ebiten.Image) {
		drawText(screen, 8, 4, "arrows/WASD move, space jump, F1 rules overlay, esc menu")

		if !cfg.Debug.ShowOverlay {
			return
		}
		registry := stack.Top()
		if registry == nil {
			return
		}

		components.Sprite.Each(ecsInstance.World, func(e *donburi.Entry) {
			sprite := components.Sprite.Get(e)
			obj := components.Object.Get(e)

			controller := registry.Lookup(sprite.CharacterSprite)
			if controller == nil {
				return
			}

			names, ok := clipNames[sprite.Character]
			if !ok {
				names = cfg.ClipNames(sprite.Character)
				clipNames[sprite.Character] = names
			}

			clip := "-"
			if active := controller.Active(); active != nil {
				if name, ok := names[active.Rule()]; ok {
					clip = name
				} else {
					clip = active.Rule().String()
				}
			}
			label := fmt.Sprintf("%s\n%s", clip, controller.State())
			drawText(screen, obj.X, obj.Y-24, label)
		})
	}
}

var hudFace = fonts.Face(8)

func drawText(screen *ebiten.Image, x, y float64, s string) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(cfg.White)
	op.LineSpacing = 10
	text.Draw(screen, s, hudFace, op)
}
