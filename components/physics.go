package components

import "github.com/yohamta/donburi"

type PhysicsData struct {
	SpeedX    float64
	SpeedY    float64
	Accel     float64
	MaxSpeed  float64
	JumpSpeed float64
	Gravity   float64
	Friction  float64
	OnGround  bool
}

var Physics = donburi.NewComponentType[PhysicsData]()
