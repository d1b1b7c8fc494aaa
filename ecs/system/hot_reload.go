package system

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/milk9111/furi/ecs"
	"github.com/milk9111/furi/ecs/component"
	"github.com/milk9111/furi/ecs/entity"
	"github.com/milk9111/furi/motion"
	"github.com/milk9111/furi/prefabs"
	"github.com/milk9111/furi/voice"
)

// ChangeSource reports changed prefab files without blocking.
type ChangeSource interface {
	Changed() []string
}

// ProfileSink receives reloaded voice profiles.
type ProfileSink interface {
	SetProfiles(map[string]voice.Profile)
}

// HotReloadSystem re-reads prefab files reported by the watcher and pushes
// the new values into the running world. A file that fails to load keeps
// the previous values.
type HotReloadSystem struct {
	source      ChangeSource
	activation  *ActivationSystem
	interaction *InteractionSystem
	voices      ProfileSink
}

func NewHotReloadSystem(source ChangeSource, activation *ActivationSystem, interaction *InteractionSystem, voices ProfileSink) *HotReloadSystem {
	return &HotReloadSystem{
		source:      source,
		activation:  activation,
		interaction: interaction,
		voices:      voices,
	}
}

func (s *HotReloadSystem) Update(w *ecs.World) {
	if w == nil || s.source == nil {
		return
	}

	seen := make(map[string]bool)
	for _, path := range s.source.Changed() {
		name := filepath.Base(path)
		if strings.EqualFold(filepath.Ext(name), ".tengo") {
			name = "dialogue.yaml"
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		if s.Reload(w, name) {
			w.Events().Push(ecs.Event{Type: ecs.EventReloaded, Data: name})
		}
	}
}

// Reload applies one prefab file and reports whether anything changed.
func (s *HotReloadSystem) Reload(w *ecs.World, name string) bool {
	var err error
	switch name {
	case "player.yaml":
		err = s.reloadPlayer(w)
	case "camera.yaml":
		err = s.reloadCamera(w)
	case "dialogue.yaml":
		err = s.reloadDialogue()
	case "voices.yaml":
		err = s.reloadVoices()
	case "npc.yaml":
		err = s.reloadNPCs(w)
	default:
		return false
	}
	if err != nil {
		slog.Warn("hot reload failed", "file", name, "error", err)
		return false
	}
	slog.Info("hot reloaded", "file", name)
	return true
}

func (s *HotReloadSystem) reloadPlayer(w *ecs.World) error {
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return err
	}
	e, ok := w.First(component.PlayerTagComponent.Kind())
	if !ok {
		return nil
	}
	settings := entity.PlayerSettings(spec)
	if err := ecs.Add(w, e, component.PlayerComponent.Kind(), settings); err != nil {
		return err
	}
	if session, ok := ecs.Get(w, e, component.SessionComponent.Kind()); ok && session.Active {
		session.Speed = motion.SpeedFor(session.Mode, settings.Tuning)
	}
	return nil
}

func (s *HotReloadSystem) reloadCamera(w *ecs.World) error {
	spec, err := prefabs.LoadCameraSpec()
	if err != nil {
		return err
	}
	e, ok := w.First(component.CameraComponent.Kind())
	if !ok {
		return nil
	}
	return ecs.Add(w, e, component.CameraComponent.Kind(), entity.CameraSettings(spec))
}

func (s *HotReloadSystem) reloadDialogue() error {
	spec, err := prefabs.LoadDialogueSpec()
	if err != nil {
		return err
	}
	selector, err := spec.Selector()
	if s.interaction != nil {
		// On a script error the table still applies.
		s.interaction.SetSelector(selector)
	}
	if s.activation != nil {
		s.activation.SetGreetings(spec.ModeGreetings())
	}
	return err
}

func (s *HotReloadSystem) reloadVoices() error {
	spec, err := prefabs.LoadVoicesSpec()
	if err != nil {
		return err
	}
	if s.voices != nil {
		s.voices.SetProfiles(spec.Profiles)
	}
	return nil
}

func (s *HotReloadSystem) reloadNPCs(w *ecs.World) error {
	spec, err := prefabs.LoadNPCSpec()
	if err != nil {
		return err
	}
	for _, e := range w.Query(component.NPCTagComponent.Kind(), component.MarkerComponent.Kind()) {
		marker, _ := ecs.Get(w, e, component.MarkerComponent.Kind())
		if spec.Marker.Height > 0 {
			marker.Height = spec.Marker.Height
		}
		marker.Color = spec.Marker.Color.RGBAOr(marker.Color)
	}
	return nil
}
