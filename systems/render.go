package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/animrule/components"
	"github.com/automoto/animrule/tags"
)

var drawOp = &ebiten.DrawImageOptions{}

var (
	wallColor     = color.RGBA{R: 70, G: 70, B: 85, A: 255}
	platformColor = color.RGBA{R: 140, G: 110, B: 70, A: 255}
)

// DrawLevel renders the collision geometry as flat rectangles. The demo
// has no tile art; the level is its collision boxes.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Wall.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		vector.DrawFilledRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), wallColor, false)
	})
	tags.FloatingPlatform.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		vector.DrawFilledRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), platformColor, false)
	})
}

// DrawSprites draws each character's current animation frame at its
// collision box. Characters whose controller went idle keep their last
// frame; a character that never matched any rule has no image yet and is
// drawn as an outline so it is still visible.
func DrawSprites(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Sprite.Each(ecs.World, func(e *donburi.Entry) {
		sprite := components.Sprite.Get(e)
		obj := components.Object.Get(e)

		if sprite.Img == nil {
			vector.StrokeRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), 1, color.White, false)
			return
		}
		drawOp.GeoM.Reset()
		drawOp.GeoM.Translate(obj.X, obj.Y)
		screen.DrawImage(sprite.Img, drawOp)
	})
}
