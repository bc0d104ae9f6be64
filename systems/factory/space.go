package factory

import (
	"github.com/solarlune/resolv"
)

// CreateSpace builds the collision space for a level of the given pixel
// size. 16px cells match the demo tile size.
func CreateSpace(width, height int) *resolv.Space {
	return resolv.NewSpace(width, height, 16, 16)
}
