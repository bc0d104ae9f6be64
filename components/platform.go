package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// PlatformData drives a floating platform along a looping tween
// sequence of Y positions.
type PlatformData struct {
	Tween *gween.Sequence
}

var Platform = donburi.NewComponentType[PlatformData]()
