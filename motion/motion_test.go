package motion

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

const eps = 1e-9

func TestIntentOpposingKeysCancel(t *testing.T) {
	cases := []struct {
		name                       string
		forward, back, left, right bool
		wantX, wantZ               float64
	}{
		{"forward_back", true, true, false, false, 0, 0},
		{"left_right", false, false, true, true, 0, 0},
		{"all", true, true, true, true, 0, 0},
		{"forward_back_right", true, true, false, true, 1, 0},
		{"left_right_back", false, true, true, true, 0, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v := Intent(c.forward, c.back, c.left, c.right)
			assert.Equal(t, c.wantX, v.X())
			assert.Equal(t, c.wantZ, v.Z())
			assert.Zero(t, v.Y())
		})
	}
}

func TestIntentIsUnitOrZero(t *testing.T) {
	for mask := 0; mask < 16; mask++ {
		v := Intent(mask&1 != 0, mask&2 != 0, mask&4 != 0, mask&8 != 0)
		if v.Len() == 0 {
			continue
		}
		assert.InDelta(t, 1, v.Len(), eps, "mask %04b", mask)
	}
	assert.Equal(t, mgl64.Vec3{}, Intent(false, false, false, false))
}

func TestWorldDirectionUnitLength(t *testing.T) {
	for mask := 1; mask < 16; mask++ {
		intent := Intent(mask&1 != 0, mask&2 != 0, mask&4 != 0, mask&8 != 0)
		if intent.Len() == 0 {
			continue
		}
		for _, yaw := range []float64{0, 0.3, -1.2, math.Pi, 7.5} {
			dir := WorldDirection(intent, yaw)
			assert.InDelta(t, 1, dir.Len(), eps, "mask %04b yaw %v", mask, yaw)
			assert.Zero(t, dir.Y())
		}
	}
}

func TestWorldDirectionFollowsYaw(t *testing.T) {
	fwd := Intent(true, false, false, false)

	dir := WorldDirection(fwd, 0)
	assert.InDelta(t, -1, dir.Z(), eps)
	assert.InDelta(t, 0, dir.X(), eps)

	// A quarter turn to the left faces -X.
	dir = WorldDirection(fwd, math.Pi/2)
	assert.InDelta(t, -1, dir.X(), eps)
	assert.InDelta(t, 0, dir.Z(), eps)

	strafe := WorldDirection(Intent(false, false, false, true), 0)
	assert.InDelta(t, 1, strafe.X(), eps)
}

func TestWorldDirectionZeroStaysZero(t *testing.T) {
	assert.Equal(t, mgl64.Vec3{}, WorldDirection(mgl64.Vec3{}, 1.3))
}

func TestDisplacementVanishesAtZeroDelta(t *testing.T) {
	dir := WorldDirection(Intent(true, false, true, false), 0.8)
	assert.Equal(t, mgl64.Vec3{}, Displacement(dir, 5, 0))
	d := Displacement(dir, 5, 0.5)
	assert.InDelta(t, 2.5, d.Len(), eps)
}

func TestSpeedFor(t *testing.T) {
	tuning := DefaultTuning()
	assert.Equal(t, 4.0, SpeedFor(ModeTutorial, tuning))
	assert.Equal(t, 5.0, SpeedFor(ModeNormal, tuning))
	assert.Equal(t, ModeTutorial, ModeFor(true))
	assert.Equal(t, "normal", ModeFor(false).String())
}

func TestRotatePitchStaysClamped(t *testing.T) {
	tuning := DefaultTuning()
	yaw, pitch := 0.0, 0.0
	deltas := []float64{0.3, 5, -0.1, -40, 2.5, 0.01, 1e6, -1e6, 0.2}
	for _, dy := range deltas {
		yaw, pitch = Rotate(yaw, pitch, 0, dy, tuning)
		assert.GreaterOrEqual(t, pitch, -0.4)
		assert.LessOrEqual(t, pitch, 0.4)
	}
	assert.Zero(t, yaw)

	yaw, _ = Rotate(1, 0, 0.5, 0, tuning)
	assert.InDelta(t, 1-0.35, yaw, eps)
}
