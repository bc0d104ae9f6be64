package components

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"

	"github.com/automoto/animrule/anim"
)

// CharacterSprite is the game-side sprite handed to the animation
// registry. The collision system fills Contact, the physics system
// mirrors VelX/VelY, and the render system draws Img at the entity's
// resolv object position. It outlives any ECS storage moves because the
// component only wraps the pointer.
type CharacterSprite struct {
	Img     *ebiten.Image
	VelX    float64
	VelY    float64
	Contact anim.WallContact
	Dead    bool

	Character string // clip-set key, also picks the HUD label
}

func (s *CharacterSprite) Velocity() (float64, float64)  { return s.VelX, s.VelY }
func (s *CharacterSprite) WallContact() anim.WallContact { return s.Contact }
func (s *CharacterSprite) Destroyed() bool               { return s.Dead }

// SetImage accepts the frame chosen by the animation engine. The demo
// only ever registers *ebiten.Image frames; anything else is ignored so
// a stray frame cannot crash the draw loop.
func (s *CharacterSprite) SetImage(img image.Image) {
	if ei, ok := img.(*ebiten.Image); ok {
		s.Img = ei
	}
}

type SpriteData struct {
	*CharacterSprite
}

var Sprite = donburi.NewComponentType[SpriteData]()
