package components

import "github.com/yohamta/donburi"

// PatrolData makes an NPC walk until it hits a wall, pause, then turn
// around. The pause exists so the walker exercises NotMoving rules too.
type PatrolData struct {
	Dir        float64 // -1 or 1
	Speed      float64
	PauseTicks int // remaining ticks to stand still at a wall
}

var Patrol = donburi.NewComponentType[PatrolData]()
