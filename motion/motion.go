// Package motion holds the frame math of the player controller: key intent,
// yaw-relative movement, look rotation and the orbiting follow camera. All
// functions are pure; the ecs systems own the state they are applied to.
package motion

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Mode selects the session variant. It fixes walking speed and spawn point.
type Mode int

const (
	ModeNormal Mode = iota
	ModeTutorial
)

func ModeFor(tutorial bool) Mode {
	if tutorial {
		return ModeTutorial
	}
	return ModeNormal
}

func (m Mode) String() string {
	if m == ModeTutorial {
		return "tutorial"
	}
	return "normal"
}

// Tuning holds the player controller constants.
type Tuning struct {
	TutorialSpeed    float64
	NormalSpeed      float64
	YawSensitivity   float64
	PitchSensitivity float64
	PitchLimit       float64
}

func DefaultTuning() Tuning {
	return Tuning{
		TutorialSpeed:    4,
		NormalSpeed:      5,
		YawSensitivity:   0.7,
		PitchSensitivity: 0.5,
		PitchLimit:       0.4,
	}
}

// SpeedFor returns the walking speed in units per second for mode.
func SpeedFor(mode Mode, t Tuning) float64 {
	if mode == ModeTutorial {
		return t.TutorialSpeed
	}
	return t.NormalSpeed
}

// Intent builds the local movement direction from the four key flags. Local
// -Z is forward and +X is right. Opposing keys cancel.
func Intent(forward, back, left, right bool) mgl64.Vec3 {
	var v mgl64.Vec3
	if forward {
		v[2]--
	}
	if back {
		v[2]++
	}
	if left {
		v[0]--
	}
	if right {
		v[0]++
	}
	return normalize(v)
}

// Basis returns the world forward and right vectors of a body turned by yaw
// about +Y.
func Basis(yaw float64) (forward, right mgl64.Vec3) {
	sin, cos := math.Sincos(yaw)
	forward = mgl64.Vec3{-sin, 0, -cos}
	right = mgl64.Vec3{cos, 0, -sin}
	return forward, right
}

// WorldDirection rotates a local intent into world space. The result is unit
// length or zero.
func WorldDirection(intent mgl64.Vec3, yaw float64) mgl64.Vec3 {
	forward, right := Basis(yaw)
	// forward is local -Z, so a -1 intent on Z walks along +forward.
	move := forward.Mul(-intent.Z()).Add(right.Mul(intent.X()))
	return normalize(move)
}

// Displacement is the distance walked this frame.
func Displacement(dir mgl64.Vec3, speed, dt float64) mgl64.Vec3 {
	return dir.Mul(speed * dt)
}

// Rotate applies a pointer delta to yaw and pitch. Pitch is clamped to
// ±PitchLimit so the view never flips.
func Rotate(yaw, pitch, dx, dy float64, t Tuning) (float64, float64) {
	yaw -= dx * t.YawSensitivity
	pitch = mgl64.Clamp(pitch-dy*t.PitchSensitivity, -t.PitchLimit, t.PitchLimit)
	return yaw, pitch
}

func normalize(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l == 0 {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / l)
}
