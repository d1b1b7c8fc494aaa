package motion

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestOrbitTargetSitsBehindBody(t *testing.T) {
	rig := DefaultRig()
	pos := mgl64.Vec3{1, 0, 2}

	target := OrbitTarget(pos, 0, 0, rig)
	assert.InDelta(t, 1, target.X(), eps)
	assert.InDelta(t, 4, target.Y(), eps)
	assert.InDelta(t, 8, target.Z(), eps)

	// The camera stays opposite to the facing direction for any yaw.
	for _, yaw := range []float64{0.4, -2, math.Pi} {
		target = OrbitTarget(pos, yaw, 0, rig)
		forward, _ := Basis(yaw)
		back := target.Sub(pos)
		back[1] = 0
		assert.InDelta(t, 6, back.Len(), eps)
		assert.InDelta(t, -6, back.Dot(forward), eps)
	}
}

func TestSwayAmplitude(t *testing.T) {
	rig := DefaultRig()
	for i := 0; i < 200; i++ {
		s := Sway(float64(i)*0.037, rig)
		assert.LessOrEqual(t, math.Abs(s), 0.02+eps)
	}
	assert.InDelta(t, 0.02, Sway(math.Pi/12, rig), eps)
}

func TestSmoothBlendsByFactor(t *testing.T) {
	prev := mgl64.Vec3{0, 0, 0}
	target := mgl64.Vec3{10, -10, 5}
	got := Smooth(prev, target, 0.1)
	assert.InDelta(t, 1, got.X(), eps)
	assert.InDelta(t, -1, got.Y(), eps)
	assert.InDelta(t, 0.5, got.Z(), eps)
}

func TestBlend(t *testing.T) {
	rig := DefaultRig()
	assert.Equal(t, 0.1, rig.Blend(1.0/60))
	assert.Equal(t, 0.1, rig.Blend(1))

	rig.SmoothingRate = 6
	assert.InDelta(t, 1-math.Exp(-0.1), rig.Blend(1.0/60), eps)
	assert.Zero(t, rig.Blend(0))
}

func TestLookPoint(t *testing.T) {
	assert.Equal(t, mgl64.Vec3{3, 2, -1}, LookPoint(mgl64.Vec3{3, 0, -1}, DefaultRig()))
}
