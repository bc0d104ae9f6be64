package anim

import "image"

// WallContact reports which sides of a sprite are touching solid tiles
// this tick. The four flags are independent.
type WallContact struct {
	Up, Right, Down, Left bool
}

// Sprite is the narrow view of a host-engine character this package
// needs. The host owns the sprite's lifetime; controllers hold it as a
// non-owning reference and are pruned once Destroyed reports true.
//
// Velocity follows screen coordinates: positive vy is downward.
type Sprite interface {
	Velocity() (vx, vy float64)
	WallContact() WallContact
	Destroyed() bool
	SetImage(img image.Image)
}
