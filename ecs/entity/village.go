package entity

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/furi/ecs"
	"github.com/milk9111/furi/ecs/component"
	"github.com/milk9111/furi/levels"
	"github.com/milk9111/furi/prefabs"
)

var defaultStructureColor = color.RGBA{R: 0x8a, G: 0x81, B: 0x78, A: 0xff}

// Options adjusts how the village is built.
type Options struct {
	// ForceFallback gives every NPC the fallback visual.
	ForceFallback bool
}

// Village is what BuildVillage created.
type Village struct {
	Player ecs.Entity
	Camera ecs.Entity
	HUD    ecs.Entity
	NPCs   []ecs.Entity
}

// BuildVillage populates w from a level layout and the prefab specs.
func BuildVillage(w *ecs.World, lvl *levels.Level, opts Options) (*Village, error) {
	if w == nil {
		return nil, fmt.Errorf("build village: world is nil")
	}
	if lvl == nil {
		return nil, fmt.Errorf("build village: level is nil")
	}

	v := &Village{}
	var err error
	if v.Player, err = NewPlayer(w, lvl.Spawns); err != nil {
		return nil, err
	}
	if v.Camera, err = NewCamera(w); err != nil {
		return nil, err
	}
	if v.HUD, err = NewHUD(w); err != nil {
		return nil, err
	}

	for _, s := range lvl.Structures {
		if _, err := NewStructure(w, s); err != nil {
			return nil, err
		}
	}

	npcSpec, err := prefabs.LoadNPCSpec()
	if err != nil {
		return nil, fmt.Errorf("build village: load npc spec: %w", err)
	}
	for i, data := range lvl.NPCs {
		if opts.ForceFallback {
			data.Model = ""
		}
		npc, err := NewNPC(w, npcSpec, data, i)
		if err != nil {
			return nil, err
		}
		v.NPCs = append(v.NPCs, npc)
	}
	return v, nil
}

func NewStructure(w *ecs.World, s levels.Structure) (ecs.Entity, error) {
	clr := defaultStructureColor
	if s.Color != "" {
		parsed, err := prefabs.ParseColor(s.Color)
		if err != nil {
			return 0, fmt.Errorf("structure %s: %w", s.Name, err)
		}
		clr = parsed
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Position: vec(s.Position)}); err != nil {
		return 0, fmt.Errorf("structure %s: add transform: %w", s.Name, err)
	}
	if err := ecs.Add(w, e, component.StructureComponent.Kind(), &component.Structure{
		Name:  s.Name,
		Size:  mgl64.Vec3{s.Size[0], s.Size[1], s.Size[2]},
		Color: clr,
	}); err != nil {
		return 0, fmt.Errorf("structure %s: add structure: %w", s.Name, err)
	}
	return e, nil
}

// NewHUD creates the entity holding presenter state.
func NewHUD(w *ecs.World) (ecs.Entity, error) {
	hud := ecs.CreateEntity(w)
	if err := ecs.Add(w, hud, component.HUDTagComponent.Kind(), &component.HUDTag{}); err != nil {
		return 0, fmt.Errorf("hud: add tag: %w", err)
	}
	if err := ecs.Add(w, hud, component.DialogueComponent.Kind(), &component.Dialogue{}); err != nil {
		return 0, fmt.Errorf("hud: add dialogue: %w", err)
	}
	return hud, nil
}
