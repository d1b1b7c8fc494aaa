package system

import (
	"github.com/milk9111/furi/ecs"
	"github.com/milk9111/furi/ecs/component"
	"github.com/milk9111/furi/motion"
)

type CameraSystem struct {
	camEntity    ecs.Entity
	targetEntity ecs.Entity
}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

// Update eases the camera toward its orbit point behind the target and aims
// it at the target's head. Nothing moves while the session is inactive.
func (cs *CameraSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	if !w.IsAlive(cs.camEntity) {
		camEntity, ok := w.First(component.CameraComponent.Kind())
		if !ok {
			return
		}
		cs.camEntity = camEntity
	}
	camComp, ok := ecs.Get(w, cs.camEntity, component.CameraComponent.Kind())
	if !ok {
		return
	}
	state, ok := ecs.Get(w, cs.camEntity, component.CameraStateComponent.Kind())
	if !ok {
		return
	}

	if !w.IsAlive(cs.targetEntity) {
		cs.targetEntity = findEntityByNameOrTag(w, camComp.TargetName)
	}
	if session, ok := ecs.Get(w, cs.targetEntity, component.SessionComponent.Kind()); ok && !session.Active {
		return
	}
	target, ok := ecs.Get(w, cs.targetEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}

	rig := camComp.Rig
	orbit := motion.OrbitTarget(target.Position, target.Yaw, w.Elapsed(), rig)
	state.Position = motion.Smooth(state.Position, orbit, rig.Blend(w.Delta()))
	state.LookAt = motion.LookPoint(target.Position, rig)
}

func findEntityByNameOrTag(w *ecs.World, name string) ecs.Entity {
	switch name {
	case "", "player":
		if e, ok := w.First(component.PlayerTagComponent.Kind()); ok {
			return e
		}
	}
	ents := w.Query(component.InteractiveComponent.Kind())
	for _, e := range ents {
		if it, ok := ecs.Get(w, e, component.InteractiveComponent.Kind()); ok && it.Name == name {
			return e
		}
	}
	return 0
}
