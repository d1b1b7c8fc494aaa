package motion

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Rig describes the third-person follow camera.
type Rig struct {
	Radius        float64
	Height        float64
	LookHeight    float64
	SwayFrequency float64
	SwayAmplitude float64
	// Smoothness is the fixed per-frame blend toward the orbit target.
	Smoothness float64
	// SmoothingRate, when positive, replaces Smoothness with a time-scaled
	// exponential decay.
	SmoothingRate float64
}

func DefaultRig() Rig {
	return Rig{
		Radius:        6,
		Height:        4,
		LookHeight:    2,
		SwayFrequency: 6,
		SwayAmplitude: 0.02,
		Smoothness:    0.1,
	}
}

// Blend returns the interpolation factor for a frame of length dt.
func (r Rig) Blend(dt float64) float64 {
	if r.SmoothingRate > 0 {
		return 1 - math.Exp(-r.SmoothingRate*dt)
	}
	return r.Smoothness
}

// Sway is the idle camera bob at elapsed seconds.
func Sway(elapsed float64, r Rig) float64 {
	return math.Sin(elapsed*r.SwayFrequency) * r.SwayAmplitude
}

// OrbitTarget is where the camera wants to be: behind the body along its yaw,
// raised by Height plus sway.
func OrbitTarget(pos mgl64.Vec3, yaw, elapsed float64, r Rig) mgl64.Vec3 {
	sin, cos := math.Sincos(yaw)
	return mgl64.Vec3{
		pos.X() + sin*r.Radius,
		pos.Y() + r.Height + Sway(elapsed, r),
		pos.Z() + cos*r.Radius,
	}
}

// Smooth moves prev toward target by factor.
func Smooth(prev, target mgl64.Vec3, factor float64) mgl64.Vec3 {
	return prev.Add(target.Sub(prev).Mul(factor))
}

// LookPoint is the point the camera faces.
func LookPoint(pos mgl64.Vec3, r Rig) mgl64.Vec3 {
	return pos.Add(mgl64.Vec3{0, r.LookHeight, 0})
}
