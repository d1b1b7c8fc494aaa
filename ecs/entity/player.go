package entity

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/furi/ecs"
	"github.com/milk9111/furi/ecs/component"
	"github.com/milk9111/furi/interact"
	"github.com/milk9111/furi/levels"
	"github.com/milk9111/furi/motion"
	"github.com/milk9111/furi/prefabs"
)

const defaultPointerScale = 0.002

// NewPlayer builds the player from player.yaml. The player starts inactive at
// the normal spawn point.
func NewPlayer(w *ecs.World, spawns levels.Spawns) (ecs.Entity, error) {
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return 0, fmt.Errorf("player: load spec: %w", err)
	}
	return NewPlayerFromSpec(w, spec, spawns)
}

func NewPlayerFromSpec(w *ecs.World, spec *prefabs.PlayerSpec, spawns levels.Spawns) (ecs.Entity, error) {
	if spec == nil {
		spec = &prefabs.PlayerSpec{}
	}
	points := component.SpawnPoints{Tutorial: vec(spawns.Tutorial), Normal: vec(spawns.Normal)}

	player := ecs.CreateEntity(w)
	if err := ecs.Add(w, player, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add player tag: %w", err)
	}
	if err := ecs.Add(w, player, component.PlayerComponent.Kind(), PlayerSettings(spec)); err != nil {
		return 0, fmt.Errorf("player: add player: %w", err)
	}
	if err := ecs.Add(w, player, component.TransformComponent.Kind(), &component.Transform{Position: points.Normal}); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}
	if err := ecs.Add(w, player, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}
	if err := ecs.Add(w, player, component.SessionComponent.Kind(), &component.Session{Mode: motion.ModeNormal}); err != nil {
		return 0, fmt.Errorf("player: add session: %w", err)
	}
	if err := ecs.Add(w, player, component.SpawnPointsComponent.Kind(), &points); err != nil {
		return 0, fmt.Errorf("player: add spawn points: %w", err)
	}
	if err := ecs.Add(w, player, component.MarkerComponent.Kind(), &component.Marker{
		Height: orDefault(spec.Marker.Height, 2.6),
		Color:  spec.Marker.Color.RGBAOr(color.RGBA{R: 0x6b, G: 0x5a, B: 0x4a, A: 0xff}),
	}); err != nil {
		return 0, fmt.Errorf("player: add marker: %w", err)
	}
	return player, nil
}

// PlayerSettings converts a spec into controller settings, filling unset
// values with the defaults.
func PlayerSettings(spec *prefabs.PlayerSpec) *component.Player {
	def := motion.DefaultTuning()
	if spec == nil {
		return &component.Player{Tuning: def, PointerScale: defaultPointerScale, InteractRadius: interact.DefaultThreshold}
	}
	return &component.Player{
		Tuning: motion.Tuning{
			TutorialSpeed:    orDefault(spec.TutorialSpeed, def.TutorialSpeed),
			NormalSpeed:      orDefault(spec.NormalSpeed, def.NormalSpeed),
			YawSensitivity:   orDefault(spec.YawSensitivity, def.YawSensitivity),
			PitchSensitivity: orDefault(spec.PitchSensitivity, def.PitchSensitivity),
			PitchLimit:       orDefault(spec.PitchLimit, def.PitchLimit),
		},
		PointerScale:   orDefault(spec.PointerScale, defaultPointerScale),
		InteractRadius: orDefault(spec.InteractRadius, interact.DefaultThreshold),
	}
}

func vec(v levels.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v[0], v[1], v[2]}
}

func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}
