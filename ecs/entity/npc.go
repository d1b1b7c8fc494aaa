package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/furi/ecs"
	"github.com/milk9111/furi/ecs/component"
	"github.com/milk9111/furi/levels"
	"github.com/milk9111/furi/prefabs"
)

// NewNPC places one villager. Its visual is pending until the loader
// materializes it, so the resolver ignores it for the first frames.
func NewNPC(w *ecs.World, spec *prefabs.NPCSpec, data levels.NPC, order int) (ecs.Entity, error) {
	if spec == nil {
		spec = &prefabs.NPCSpec{}
	}
	npc := ecs.CreateEntity(w)
	if err := ecs.Add(w, npc, component.NPCTagComponent.Kind(), &component.NPCTag{}); err != nil {
		return 0, fmt.Errorf("npc %s: add tag: %w", data.Name, err)
	}
	if err := ecs.Add(w, npc, component.InteractiveComponent.Kind(), &component.Interactive{
		Name:    data.Name,
		Label:   data.Label,
		Profile: data.Profile,
		Text:    data.Text,
		Order:   order,
	}); err != nil {
		return 0, fmt.Errorf("npc %s: add interactive: %w", data.Name, err)
	}
	if err := ecs.Add(w, npc, component.TransformComponent.Kind(), &component.Transform{Position: vec(data.Position)}); err != nil {
		return 0, fmt.Errorf("npc %s: add transform: %w", data.Name, err)
	}
	if err := ecs.Add(w, npc, component.MarkerComponent.Kind(), &component.Marker{
		Height: orDefault(spec.Marker.Height, 2.5),
		Color:  spec.Marker.Color.RGBAOr(color.RGBA{R: 0x5b, G: 0x4b, B: 0x3d, A: 0xff}),
	}); err != nil {
		return 0, fmt.Errorf("npc %s: add marker: %w", data.Name, err)
	}

	pending := &component.PendingVisual{FramesLeft: spec.LoadDelayFrames, Fail: data.Model == ""}
	if err := ecs.Add(w, npc, component.PendingVisualComponent.Kind(), pending); err != nil {
		return 0, fmt.Errorf("npc %s: add pending visual: %w", data.Name, err)
	}
	return npc, nil
}
