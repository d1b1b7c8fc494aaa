// Package interact finds the entity the player is close enough to talk to.
package interact

import "github.com/go-gl/mathgl/mgl64"

// DefaultThreshold is the talk distance in world units.
const DefaultThreshold = 3.5

// Candidate is the resolver's read-only view of an interactive entity.
type Candidate struct {
	Name         string
	Position     mgl64.Vec3
	Materialized bool
	// Order is the entity's position in the world builder's list. Lower
	// wins ties.
	Order int
}

// Nearest returns the candidate closest to player whose distance is strictly
// below threshold. Unmaterialized candidates are skipped. Equal distances
// go to the lower Order, then to the earlier slice index. ok is false when
// nothing is in range.
func Nearest(player mgl64.Vec3, cands []Candidate, threshold float64) (best Candidate, ok bool) {
	bestDist := threshold
	for _, c := range cands {
		if !c.Materialized {
			continue
		}
		d := c.Position.Sub(player).Len()
		if d >= threshold {
			continue
		}
		if !ok || d < bestDist || (d == bestDist && c.Order < best.Order) {
			best, bestDist, ok = c, d, true
		}
	}
	return best, ok
}
