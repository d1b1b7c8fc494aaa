package component

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/furi/motion"
)

// Session is the activation state of the player. Mode and Speed are fixed by
// the last activation.
type Session struct {
	ID          string
	Active      bool
	Mode        motion.Mode
	Speed       float64
	Activations int
}

var SessionComponent = NewComponent[Session]()

// ActivationRequest asks the activation system to start a session.
type ActivationRequest struct {
	Tutorial bool
}

var ActivationRequestComponent = NewComponent[ActivationRequest]()

// SpawnPoints holds the per-mode starting positions.
type SpawnPoints struct {
	Tutorial mgl64.Vec3
	Normal   mgl64.Vec3
}

func (s SpawnPoints) For(mode motion.Mode) mgl64.Vec3 {
	if mode == motion.ModeTutorial {
		return s.Tutorial
	}
	return s.Normal
}

var SpawnPointsComponent = NewComponent[SpawnPoints]()
