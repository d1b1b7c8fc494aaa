package component

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/furi/motion"
)

type Camera struct {
	TargetName string
	Rig        motion.Rig
}

var CameraComponent = NewComponent[Camera]()

// CameraState is the derived viewpoint, recomputed every frame.
type CameraState struct {
	Position mgl64.Vec3
	LookAt   mgl64.Vec3
	Pitch    float64
}

var CameraStateComponent = NewComponent[CameraState]()
