package entity

import (
	"fmt"

	"github.com/milk9111/furi/ecs"
	"github.com/milk9111/furi/ecs/component"
	"github.com/milk9111/furi/motion"
	"github.com/milk9111/furi/prefabs"
)

func NewCamera(w *ecs.World) (ecs.Entity, error) {
	cameraSpec, err := prefabs.LoadCameraSpec()
	if err != nil {
		return 0, fmt.Errorf("camera: load spec: %w", err)
	}
	return NewCameraFromSpec(w, cameraSpec)
}

func NewCameraFromSpec(w *ecs.World, cameraSpec *prefabs.CameraSpec) (ecs.Entity, error) {
	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add camera tag: %w", err)
	}
	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), CameraSettings(cameraSpec)); err != nil {
		return 0, fmt.Errorf("camera: add camera component: %w", err)
	}
	if err := ecs.Add(w, camera, component.CameraStateComponent.Kind(), &component.CameraState{}); err != nil {
		return 0, fmt.Errorf("camera: add camera state: %w", err)
	}
	return camera, nil
}

// CameraSettings converts a spec into rig settings, filling unset values with
// the defaults. A zero smoothing rate stays zero: it selects the per-frame
// blend.
func CameraSettings(spec *prefabs.CameraSpec) *component.Camera {
	def := motion.DefaultRig()
	if spec == nil {
		return &component.Camera{TargetName: "player", Rig: def}
	}
	target := spec.Target
	if target == "" {
		target = "player"
	}
	return &component.Camera{
		TargetName: target,
		Rig: motion.Rig{
			Radius:        orDefault(spec.Radius, def.Radius),
			Height:        orDefault(spec.Height, def.Height),
			LookHeight:    orDefault(spec.LookHeight, def.LookHeight),
			SwayFrequency: orDefault(spec.SwayFrequency, def.SwayFrequency),
			SwayAmplitude: orDefault(spec.SwayAmplitude, def.SwayAmplitude),
			Smoothness:    orDefault(spec.Smoothness, def.Smoothness),
			SmoothingRate: spec.SmoothingRate,
		},
	}
}
