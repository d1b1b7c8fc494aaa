package component

import "github.com/milk9111/furi/motion"

type Player struct {
	Tuning         motion.Tuning
	PointerScale   float64
	InteractRadius float64
}

var PlayerComponent = NewComponent[Player]()
