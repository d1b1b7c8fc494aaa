package interact

import (
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
)

// Index is a broadphase over materialized candidates, kept in a chipmunk
// space as static points on the ground (XZ) plane. Ground distance never
// exceeds 3D distance, so Near returns a superset of what Nearest accepts.
type Index struct {
	space *cp.Space
	count int
}

func NewIndex() *Index {
	return &Index{space: cp.NewSpace()}
}

// Rebuild replaces the indexed set.
func (ix *Index) Rebuild(cands []Candidate) {
	space := cp.NewSpace()
	count := 0
	for i := range cands {
		c := cands[i]
		if !c.Materialized {
			continue
		}
		shape := cp.NewCircle(space.StaticBody, 0, ground(c.Position))
		shape.UserData = c
		space.AddShape(shape)
		count++
	}
	ix.space = space
	ix.count = count
}

// Len returns the number of indexed candidates.
func (ix *Index) Len() int {
	if ix == nil {
		return 0
	}
	return ix.count
}

// Near returns indexed candidates within radius of p on the ground plane,
// sorted by Order.
func (ix *Index) Near(p mgl64.Vec3, radius float64) []Candidate {
	if ix == nil || ix.space == nil || ix.count == 0 {
		return nil
	}
	center := ground(p)
	var out []Candidate
	ix.space.BBQuery(cp.NewBBForCircle(center, radius), cp.SHAPE_FILTER_ALL, func(shape *cp.Shape, _ interface{}) {
		c, ok := shape.UserData.(Candidate)
		if !ok || ground(c.Position).Distance(center) > radius {
			return
		}
		out = append(out, c)
	}, nil)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// Resolve runs Nearest over the broadphase result.
func (ix *Index) Resolve(player mgl64.Vec3, threshold float64) (Candidate, bool) {
	return Nearest(player, ix.Near(player, threshold), threshold)
}

func ground(p mgl64.Vec3) cp.Vector {
	return cp.Vector{X: p.X(), Y: p.Z()}
}
