package component

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// Structure is a static box in the village. Transform holds its footprint
// centre at ground level.
type Structure struct {
	Name  string
	Size  mgl64.Vec3
	Color color.RGBA
}

var StructureComponent = NewComponent[Structure]()

// Marker draws an entity as an upright post of the given height.
type Marker struct {
	Height float64
	Color  color.RGBA
}

var MarkerComponent = NewComponent[Marker]()
