package system

import (
	"github.com/milk9111/furi/ecs"
	"github.com/milk9111/furi/ecs/component"
	"github.com/milk9111/furi/motion"
)

// PlayerControllerSystem applies the frame's input to the player pose and the
// camera pitch. The pointer delta is consumed on every update, so it never
// carries over from an inactive frame.
type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	entities := w.Query(
		component.PlayerTagComponent.Kind(),
		component.InputComponent.Kind(),
		component.SessionComponent.Kind(),
		component.TransformComponent.Kind(),
	)
	for _, e := range entities {
		input, ok := ecs.Get(w, e, component.InputComponent.Kind())
		if !ok {
			continue
		}
		session, _ := ecs.Get(w, e, component.SessionComponent.Kind())
		transform, _ := ecs.Get(w, e, component.TransformComponent.Kind())

		active := session.Active
		for _, cmd := range input.Drain() {
			if input.Apply(cmd, active) {
				if err := ecs.Add(w, e, component.InteractRequestComponent.Kind(), &component.InteractRequest{}); err != nil {
					panic("player controller: add interact request: " + err.Error())
				}
			}
		}
		dx, dy := input.ConsumePointer()
		if !active {
			continue
		}

		tuning := motion.DefaultTuning()
		if player, ok := ecs.Get(w, e, component.PlayerComponent.Kind()); ok {
			tuning = player.Tuning
		}

		dir := motion.WorldDirection(motion.Intent(input.Forward, input.Back, input.Left, input.Right), transform.Yaw)
		transform.Position = transform.Position.Add(motion.Displacement(dir, session.Speed, w.Delta()))

		cam := cameraState(w)
		pitch := 0.0
		if cam != nil {
			pitch = cam.Pitch
		}
		transform.Yaw, pitch = motion.Rotate(transform.Yaw, pitch, dx, dy, tuning)
		if cam != nil {
			cam.Pitch = pitch
		}
	}
}

func cameraState(w *ecs.World) *component.CameraState {
	_, state, ok := ecs.Single(w, component.CameraStateComponent.Kind())
	if !ok {
		return nil
	}
	return state
}
