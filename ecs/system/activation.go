package system

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/milk9111/furi/dialogue"
	"github.com/milk9111/furi/ecs"
	"github.com/milk9111/furi/ecs/component"
	"github.com/milk9111/furi/motion"
)

// RequestActivation asks for a session in the given mode. The request is
// applied by ActivationSystem on the next update.
func RequestActivation(w *ecs.World, tutorial bool) bool {
	player, ok := w.First(component.PlayerTagComponent.Kind())
	if !ok {
		return false
	}
	return ecs.Add(w, player, component.ActivationRequestComponent.Kind(), &component.ActivationRequest{Tutorial: tutorial}) == nil
}

// Deactivate stops the session. Held keys are dropped so nothing is stuck
// when play resumes.
func Deactivate(w *ecs.World) {
	player, session, ok := ecs.Single(w, component.SessionComponent.Kind())
	if !ok || !session.Active {
		return
	}
	session.Active = false
	if input, ok := ecs.Get(w, player, component.InputComponent.Kind()); ok {
		input.Clear()
	}
	w.Events().Push(ecs.Event{Type: ecs.EventDeactivated, Entity: player, Data: session.ID})
	slog.Debug("session deactivated", "session", session.ID)
}

// ActivationSystem starts sessions. Activating always re-spawns at the
// mode's spawn point with a fresh session ID; the look angles are kept.
type ActivationSystem struct {
	greetings map[motion.Mode]dialogue.Line
}

func NewActivationSystem(greetings map[motion.Mode]dialogue.Line) *ActivationSystem {
	s := &ActivationSystem{}
	s.SetGreetings(greetings)
	return s
}

func (s *ActivationSystem) SetGreetings(greetings map[motion.Mode]dialogue.Line) {
	s.greetings = make(map[motion.Mode]dialogue.Line, len(greetings))
	for mode, line := range greetings {
		s.greetings[mode] = line
	}
}

func (s *ActivationSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	for _, e := range w.Query(component.ActivationRequestComponent.Kind(), component.SessionComponent.Kind()) {
		req, ok := ecs.Get(w, e, component.ActivationRequestComponent.Kind())
		if !ok {
			continue
		}
		tutorial := req.Tutorial
		ecs.Remove(w, e, component.ActivationRequestComponent.Kind())
		s.activate(w, e, motion.ModeFor(tutorial))
	}
}

func (s *ActivationSystem) activate(w *ecs.World, e ecs.Entity, mode motion.Mode) {
	session, ok := ecs.Get(w, e, component.SessionComponent.Kind())
	if !ok {
		return
	}

	tuning := motion.DefaultTuning()
	if player, ok := ecs.Get(w, e, component.PlayerComponent.Kind()); ok {
		tuning = player.Tuning
	}

	session.Active = true
	session.Mode = mode
	session.Speed = motion.SpeedFor(mode, tuning)
	session.ID = uuid.NewString()
	session.Activations++

	if transform, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		if spawns, ok := ecs.Get(w, e, component.SpawnPointsComponent.Kind()); ok {
			transform.Position = spawns.For(mode)
		}
	}
	if line, ok := s.greetings[mode]; ok {
		if _, panel, ok := ecs.Single(w, component.DialogueComponent.Kind()); ok {
			panel.Post(line)
		}
	}

	w.Events().Push(ecs.Event{Type: ecs.EventActivated, Entity: e, Data: mode})
	slog.Debug("session activated", "session", session.ID, "mode", mode, "speed", session.Speed)
}
