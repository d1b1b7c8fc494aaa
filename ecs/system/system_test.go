package system

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/furi/dialogue"
	"github.com/milk9111/furi/ecs"
	"github.com/milk9111/furi/ecs/component"
	"github.com/milk9111/furi/ecs/entity"
	"github.com/milk9111/furi/levels"
	"github.com/milk9111/furi/motion"
	"github.com/milk9111/furi/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tick = 1.0 / 60

var testSpawns = levels.Spawns{
	Tutorial: levels.Vec3{0, 0, 24},
	Normal:   levels.Vec3{-2, 0, 12},
}

type spoken struct {
	text, profile string
}

type fakeSpeaker struct {
	lines []spoken
}

func (f *fakeSpeaker) Speak(text, profile string) bool {
	f.lines = append(f.lines, spoken{text, profile})
	return true
}

type fixture struct {
	w           *ecs.World
	player      ecs.Entity
	camera      ecs.Entity
	hud         ecs.Entity
	speaker     *fakeSpeaker
	interaction *InteractionSystem
}

// newFixture builds a world without the device-facing input system; tests
// push commands into the player's Input directly.
func newFixture(t *testing.T, selector dialogue.Selector) *fixture {
	t.Helper()

	w := ecs.NewWorld()
	player, err := entity.NewPlayerFromSpec(w, nil, testSpawns)
	require.NoError(t, err)
	camera, err := entity.NewCameraFromSpec(w, nil)
	require.NoError(t, err)
	hud, err := entity.NewHUD(w)
	require.NoError(t, err)

	f := &fixture{
		w:           w,
		player:      player,
		camera:      camera,
		hud:         hud,
		speaker:     &fakeSpeaker{},
		interaction: NewInteractionSystem(selector),
	}
	w.AddSystem(NewActivationSystem(map[motion.Mode]dialogue.Line{
		motion.ModeTutorial: {Speaker: "Trainer", Text: "Practice your footwork.", Profile: "guard"},
		motion.ModeNormal:   {Speaker: "Assistant Aria", Text: "Welcome home.", Profile: "assistant"},
	}))
	w.AddSystem(NewPlayerControllerSystem())
	w.AddSystem(NewCameraSystem())
	w.AddSystem(NewVisualLoaderSystem())
	w.AddSystem(f.interaction)
	w.AddSystem(NewDialogueSystem(f.speaker))
	return f
}

func (f *fixture) addNPC(t *testing.T, name string, pos levels.Vec3, order int) ecs.Entity {
	t.Helper()
	e, err := entity.NewNPC(f.w, &prefabs.NPCSpec{}, levels.NPC{
		Name:     name,
		Label:    "Label " + name,
		Profile:  "villager",
		Text:     "I am " + name + ".",
		Position: pos,
		Model:    "villager01",
	}, order)
	require.NoError(t, err)
	return e
}

func (f *fixture) input(t *testing.T) *component.Input {
	t.Helper()
	in, ok := ecs.Get(f.w, f.player, component.InputComponent.Kind())
	require.True(t, ok)
	return in
}

func (f *fixture) transform(t *testing.T) *component.Transform {
	t.Helper()
	tr, ok := ecs.Get(f.w, f.player, component.TransformComponent.Kind())
	require.True(t, ok)
	return tr
}

func (f *fixture) session(t *testing.T) *component.Session {
	t.Helper()
	s, ok := ecs.Get(f.w, f.player, component.SessionComponent.Kind())
	require.True(t, ok)
	return s
}

func (f *fixture) cameraState(t *testing.T) *component.CameraState {
	t.Helper()
	s, ok := ecs.Get(f.w, f.camera, component.CameraStateComponent.Kind())
	require.True(t, ok)
	return s
}

func (f *fixture) panel(t *testing.T) *component.Dialogue {
	t.Helper()
	d, ok := ecs.Get(f.w, f.hud, component.DialogueComponent.Kind())
	require.True(t, ok)
	return d
}

func (f *fixture) activate(t *testing.T, tutorial bool) {
	t.Helper()
	require.True(t, RequestActivation(f.w, tutorial))
	f.w.Update(tick)
}

func assertVecNear(t *testing.T, want, got mgl64.Vec3) {
	t.Helper()
	for i := 0; i < 3; i++ {
		assert.InDelta(t, want[i], got[i], 1e-9, "component %d of %v", i, got)
	}
}

func TestUpdateBeforeActivationIsNoop(t *testing.T) {
	f := newFixture(t, nil)
	start := f.transform(t).Position

	in := f.input(t)
	in.PushKey(component.ActionForward, true)
	in.PushPointer(0.5, 0.5)
	for i := 0; i < 10; i++ {
		f.w.Update(tick)
	}

	assert.Equal(t, start, f.transform(t).Position)
	assert.Zero(t, f.transform(t).Yaw)
	assert.False(t, f.input(t).Forward, "presses are ignored while inactive")
	assert.Equal(t, component.CameraState{}, *f.cameraState(t))
}

func TestActivationSpawnsPerMode(t *testing.T) {
	f := newFixture(t, nil)

	f.activate(t, true)
	session := f.session(t)
	assert.True(t, session.Active)
	assert.Equal(t, motion.ModeTutorial, session.Mode)
	assert.Equal(t, 4.0, session.Speed)
	assertVecNear(t, mgl64.Vec3{0, 0, 24}, f.transform(t).Position)
	firstID := session.ID
	assert.NotEmpty(t, firstID)

	f.activate(t, false)
	session = f.session(t)
	assert.Equal(t, motion.ModeNormal, session.Mode)
	assert.Equal(t, 5.0, session.Speed)
	assertVecNear(t, mgl64.Vec3{-2, 0, 12}, f.transform(t).Position)
	assert.NotEqual(t, firstID, session.ID)
	assert.Equal(t, 2, session.Activations)
}

func TestActivationPostsGreeting(t *testing.T) {
	f := newFixture(t, nil)
	f.activate(t, true)

	assert.Equal(t, "Trainer", f.panel(t).Current.Speaker)
	require.Len(t, f.speaker.lines, 1)
	assert.Equal(t, "guard", f.speaker.lines[0].profile)
	assert.Len(t, f.w.Events().Peek(ecs.EventActivated), 1)
}

func TestForwardMovesAlongFacing(t *testing.T) {
	f := newFixture(t, nil)
	f.activate(t, false)
	start := f.transform(t).Position

	f.input(t).PushKey(component.ActionForward, true)
	f.w.Update(0.5)

	// Yaw 0 faces -Z; 5 u/s for half a second.
	assertVecNear(t, start.Add(mgl64.Vec3{0, 0, -2.5}), f.transform(t).Position)

	f.input(t).PushKey(component.ActionForward, false)
	f.w.Update(0.5)
	assertVecNear(t, start.Add(mgl64.Vec3{0, 0, -2.5}), f.transform(t).Position)
}

func TestZeroDeltaDoesNotMove(t *testing.T) {
	f := newFixture(t, nil)
	f.activate(t, false)
	start := *f.transform(t)

	in := f.input(t)
	in.PushKey(component.ActionForward, true)
	in.PushKey(component.ActionRight, true)
	in.PushPointer(0.1, 0)
	f.w.Update(0)

	tr := f.transform(t)
	assert.Equal(t, start.Position, tr.Position)
	assert.InDelta(t, start.Yaw-0.1*0.7, tr.Yaw, 1e-12)
}

func TestPointerIsConsumedEveryUpdate(t *testing.T) {
	f := newFixture(t, nil)

	f.input(t).PushPointer(3, -2)
	f.w.Update(tick)
	in := f.input(t)
	assert.Zero(t, in.PointerX)
	assert.Zero(t, in.PointerY)

	f.activate(t, false)
	in.PushPointer(0.01, 0.02)
	in.PushPointer(0.01, 0.02)
	f.w.Update(tick)
	assert.Zero(t, in.PointerX)
	assert.Zero(t, in.PointerY)
	assert.InDelta(t, -0.02*0.7, f.transform(t).Yaw, 1e-12)
}

func TestPitchStaysClamped(t *testing.T) {
	f := newFixture(t, nil)
	f.activate(t, false)

	for _, dy := range []float64{-5, 0.3, 2, -0.1, 10, -10, 0.05} {
		f.input(t).PushPointer(0, dy)
		f.w.Update(tick)
		pitch := f.cameraState(t).Pitch
		assert.LessOrEqual(t, pitch, 0.4)
		assert.GreaterOrEqual(t, pitch, -0.4)
	}
}

func TestReleaseWhileInactiveClearsFlag(t *testing.T) {
	f := newFixture(t, nil)
	f.activate(t, false)
	f.input(t).PushKey(component.ActionLeft, true)
	f.w.Update(tick)
	require.True(t, f.input(t).Left)

	f.session(t).Active = false
	f.input(t).PushKey(component.ActionLeft, false)
	f.w.Update(tick)
	assert.False(t, f.input(t).Left)
}

func TestDeactivateStopsMovement(t *testing.T) {
	f := newFixture(t, nil)
	f.activate(t, false)
	f.input(t).PushKey(component.ActionBack, true)
	f.w.Update(tick)

	Deactivate(f.w)
	f.w.Update(tick)
	assert.Len(t, f.w.Events().Peek(ecs.EventDeactivated), 0, "events from the previous frame are gone")

	pos := f.transform(t).Position
	f.w.Update(tick)
	assert.Equal(t, pos, f.transform(t).Position)
	assert.False(t, f.input(t).Back)
	assert.False(t, f.session(t).Active)
}

func TestCameraFollowsPlayer(t *testing.T) {
	f := newFixture(t, nil)
	f.activate(t, false)

	for i := 0; i < 600; i++ {
		f.w.Update(tick)
	}

	state := f.cameraState(t)
	pos := f.transform(t).Position
	assert.InDelta(t, pos.X(), state.Position.X(), 1e-6)
	assert.InDelta(t, pos.Z()+6, state.Position.Z(), 1e-6)
	assert.InDelta(t, pos.Y()+4, state.Position.Y(), 0.021)
	assertVecNear(t, pos.Add(mgl64.Vec3{0, 2, 0}), state.LookAt)
}

func TestCameraSmoothsByFixedFactor(t *testing.T) {
	f := newFixture(t, nil)
	f.activate(t, false)

	prev := f.cameraState(t).Position
	f.w.Update(tick)

	tr := f.transform(t)
	cam, _ := ecs.Get(f.w, f.camera, component.CameraComponent.Kind())
	target := motion.OrbitTarget(tr.Position, tr.Yaw, f.w.Elapsed(), cam.Rig)
	assertVecNear(t, prev.Add(target.Sub(prev).Mul(0.1)), f.cameraState(t).Position)
}

func TestNPCsNeedToMaterialize(t *testing.T) {
	f := newFixture(t, nil)
	npc, err := entity.NewNPC(f.w, &prefabs.NPCSpec{LoadDelayFrames: 3}, levels.NPC{
		Name: "assistant", Label: "Assistant Aria", Text: "Hello.", Position: levels.Vec3{-2, 0, 11},
	}, 0)
	require.NoError(t, err)
	f.activate(t, false)

	f.input(t).PushKey(component.ActionInteract, true)
	f.w.Update(tick)
	assert.Empty(t, f.panel(t).Hint)

	f.w.Update(tick)
	f.w.Update(tick)
	mat, ok := ecs.Get(f.w, npc, component.MaterializedComponent.Kind())
	require.True(t, ok)
	assert.True(t, mat.Fallback, "a layout without a model gets the fallback visual")
	assert.Equal(t, "Assistant Aria", f.panel(t).Hint)
}

func TestInteractPicksNearest(t *testing.T) {
	f := newFixture(t, dialogue.NewTable(nil))
	f.activate(t, false)
	// Normal spawn is (-2,0,12).
	f.addNPC(t, "first", levels.Vec3{1, 0, 12}, 0)
	f.addNPC(t, "second", levels.Vec3{-2, 0, 10}, 1)
	f.addNPC(t, "third", levels.Vec3{3, 0, 12}, 2)
	f.w.Update(tick)

	f.input(t).PushKey(component.ActionInteract, true)
	f.w.Update(tick)

	events := f.w.Events().Peek(ecs.EventInteraction)
	require.Len(t, events, 1)
	result := events[0].Data.(InteractionResult)
	assert.Equal(t, "second", result.Name)
	assert.Equal(t, "Label second: I am second.", f.panel(t).Current.String())
	assert.Equal(t, 1, f.interaction.Visits("second"))
}

func TestInteractOutOfRange(t *testing.T) {
	f := newFixture(t, nil)
	f.activate(t, false)
	f.addNPC(t, "far", levels.Vec3{-2, 0, 16}, 0)
	f.w.Update(tick)
	before := f.panel(t).Current

	f.input(t).PushKey(component.ActionInteract, true)
	f.w.Update(tick)

	events := f.w.Events().Peek(ecs.EventInteraction)
	require.Len(t, events, 1)
	assert.Empty(t, events[0].Data.(InteractionResult).Name)
	assert.Equal(t, before, f.panel(t).Current)
}

func TestInteractUsesOverrides(t *testing.T) {
	table := dialogue.NewTable(map[string]dialogue.Line{
		"friend": {Speaker: "Jorin", Text: "The library hints that Jala is dangerous."},
	})
	f := newFixture(t, table)
	f.activate(t, false)
	f.addNPC(t, "friend", levels.Vec3{-2, 0, 11}, 0)
	f.w.Update(tick)

	f.input(t).PushKey(component.ActionInteract, true)
	f.w.Update(tick)

	line := f.panel(t).Current
	assert.Equal(t, "Jorin", line.Speaker)
	assert.Equal(t, "villager", line.Profile)
	require.NotEmpty(t, f.speaker.lines)
	assert.Equal(t, line.Text, f.speaker.lines[len(f.speaker.lines)-1].text)
}

func TestInteractWithShippedDialogue(t *testing.T) {
	prev := prefabs.Dir
	prefabs.Dir = t.TempDir()
	t.Cleanup(func() { prefabs.Dir = prev })

	spec, err := prefabs.LoadDialogueSpec()
	require.NoError(t, err)

	tests := []struct {
		name    string
		speaker string
		text    string
	}{
		{"friend", "Jorin", "The library hints that Jala is dangerous. Absolute king. No voice for citizens."},
		{"assistant", "Assistant Aria", "Your house is ready. Seek the library to learn about Jala. MORE COMING SOON."},
		{"guard", "Gate Guard", "No weapons within the walls. Train only in the yard."},
		{"stranger", "Label stranger", "I am stranger."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			selector, err := spec.Selector()
			require.NoError(t, err)
			f := newFixture(t, selector)
			f.activate(t, false)
			f.addNPC(t, tt.name, levels.Vec3{-2, 0, 11}, 0)
			f.w.Update(tick)

			for visit := 1; visit <= 4; visit++ {
				f.input(t).PushKey(component.ActionInteract, true)
				f.w.Update(tick)
				f.input(t).PushKey(component.ActionInteract, false)

				line := f.panel(t).Current
				assert.Equal(t, tt.speaker, line.Speaker, "visit %d", visit)
				assert.Equal(t, tt.text, line.Text, "visit %d", visit)
				assert.Equal(t, "villager", line.Profile, "visit %d", visit)
				assert.Equal(t, visit, f.interaction.Visits(tt.name))
			}
		})
	}
}

func TestInteractSeesReplacedNPC(t *testing.T) {
	f := newFixture(t, nil)
	f.activate(t, false)
	old := f.addNPC(t, "old", levels.Vec3{-2, 0, 11}, 0)
	f.w.Update(tick)
	assert.Equal(t, "Label old", f.panel(t).Hint)

	require.True(t, ecs.DestroyEntity(f.w, old))
	f.addNPC(t, "new", levels.Vec3{-2, 0, 11}, 0)
	f.w.Update(tick)
	assert.Equal(t, "Label new", f.panel(t).Hint)

	f.input(t).PushKey(component.ActionInteract, true)
	f.w.Update(tick)

	events := f.w.Events().Peek(ecs.EventInteraction)
	require.Len(t, events, 1)
	assert.Equal(t, "new", events[0].Data.(InteractionResult).Name)
	assert.Equal(t, "Label new: I am new.", f.panel(t).Current.String())
}

func TestInteractIgnoredWhileInactive(t *testing.T) {
	f := newFixture(t, nil)
	f.addNPC(t, "near", levels.Vec3{-2, 0, 12}, 0)
	f.w.Update(tick)

	f.input(t).PushKey(component.ActionInteract, true)
	f.w.Update(tick)
	assert.Empty(t, f.w.Events().Peek(ecs.EventInteraction))
	assert.False(t, ecs.Has(f.w, f.player, component.InteractRequestComponent.Kind()))
}

type staticSource struct {
	names []string
}

func (s *staticSource) Changed() []string {
	out := s.names
	s.names = nil
	return out
}

func TestHotReloadAppliesTuning(t *testing.T) {
	f := newFixture(t, nil)
	f.activate(t, true)
	f.session(t).Speed = 1

	source := &staticSource{names: []string{"/tmp/prefabs/player.yaml", "/tmp/prefabs/player.yaml", "/tmp/prefabs/unknown.yaml"}}
	f.w.AddSystem(NewHotReloadSystem(source, nil, f.interaction, nil))
	f.w.Update(tick)

	assert.Equal(t, 4.0, f.session(t).Speed)
	reloaded := f.w.Events().Peek(ecs.EventReloaded)
	require.Len(t, reloaded, 1)
	assert.Equal(t, "player.yaml", reloaded[0].Data)
}

func TestProjectLookAtIsCentered(t *testing.T) {
	state := component.CameraState{Position: mgl64.Vec3{0, 4, 6}, LookAt: mgl64.Vec3{0, 2, 0}}
	m := viewProjection(state, 640, 360)

	x, y, ok := project(m, state.LookAt, 640, 360)
	require.True(t, ok)
	assert.InDelta(t, 320, x, 1e-6)
	assert.InDelta(t, 180, y, 1e-6)

	_, _, ok = project(m, mgl64.Vec3{0, 4, 20}, 640, 360)
	assert.False(t, ok, "points behind the camera are rejected")
}

func TestBoxEdges(t *testing.T) {
	edges := boxEdges(mgl64.Vec3{1, 0, 1}, mgl64.Vec3{2, 3, 4})
	require.Len(t, edges, 12)
	for _, e := range edges {
		d := e[1].Sub(e[0])
		nonZero := 0
		for _, c := range d {
			if math.Abs(c) > 0 {
				nonZero++
			}
		}
		assert.Equal(t, 1, nonZero, "edges are axis aligned")
	}
}
