package component

import "github.com/go-gl/mathgl/mgl64"

// Transform is a world-space pose. Yaw rotates about +Y; the player body has
// no pitch or roll.
type Transform struct {
	Position mgl64.Vec3
	Yaw      float64
}

var TransformComponent = NewComponent[Transform]()
