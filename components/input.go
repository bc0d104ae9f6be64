package components

import "github.com/yohamta/donburi"

type InputData struct {
	Left  bool
	Right bool
	Jump  bool
}

var Input = donburi.NewComponentType[InputData]()
