package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/furi/ecs"
	"github.com/milk9111/furi/ecs/component"
)

const (
	stickDeadzone = 0.2
	// stickLookSpeed converts right stick deflection into pixels of pointer
	// travel per tick.
	stickLookSpeed = 8.0
)

type keyBinding struct {
	action component.Action
	keys   []ebiten.Key
}

var keyBindings = []keyBinding{
	{component.ActionForward, []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}},
	{component.ActionBack, []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}},
	{component.ActionLeft, []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}},
	{component.ActionRight, []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}},
	{component.ActionInteract, []ebiten.Key{ebiten.KeyE}},
}

// InputSystem turns device state into commands on the player's Input. It
// only enqueues; the controller decides what the commands mean.
type InputSystem struct {
	lastCursorX, lastCursorY int
	hasCursor                bool
	held                     map[component.Action]bool
	wasActive                bool
}

func NewInputSystem() *InputSystem {
	return &InputSystem{held: make(map[component.Action]bool)}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	_, input, ok := ecs.Single(w, component.InputComponent.Kind())
	if !ok {
		return
	}
	scale := 0.0
	if _, player, ok := ecs.Single(w, component.PlayerComponent.Kind()); ok {
		scale = player.PointerScale
	}
	active := false
	if _, session, ok := ecs.Single(w, component.SessionComponent.Kind()); ok {
		active = session.Active
	}

	var padDown func(component.Action) bool
	dx, dy := i.cursorDelta()
	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		padDown = func(action component.Action) bool { return gamepadHeld(id, action) }
		gx, gy := gamepadLook(id)
		dx += gx
		dy += gy
	}
	i.sample(input, active, ebiten.IsKeyPressed, padDown)
	if dx != 0 || dy != 0 {
		input.PushPointer(dx*scale, dy*scale)
	}
}

// sample emits a press or release when an action's held state changes. An
// action stays held while any of its keys or its gamepad control is down.
// Movement still held when the session turns active is pressed again, since
// presses made before activation were dropped.
func (i *InputSystem) sample(input *component.Input, active bool, keyDown func(ebiten.Key) bool, padDown func(component.Action) bool) {
	if i.held == nil {
		i.held = make(map[component.Action]bool)
	}
	activated := active && !i.wasActive
	i.wasActive = active

	for _, b := range keyBindings {
		down := padDown != nil && padDown(b.action)
		for _, key := range b.keys {
			down = down || keyDown(key)
		}
		switch {
		case down != i.held[b.action]:
			i.held[b.action] = down
			input.PushKey(b.action, down)
		case down && activated && b.action != component.ActionInteract:
			input.PushKey(b.action, true)
		}
	}
}

// cursorDelta reports cursor travel while the cursor is captured. The first
// captured frame only records the position.
func (i *InputSystem) cursorDelta() (float64, float64) {
	if ebiten.CursorMode() != ebiten.CursorModeCaptured {
		i.hasCursor = false
		return 0, 0
	}
	x, y := ebiten.CursorPosition()
	if !i.hasCursor {
		i.lastCursorX, i.lastCursorY = x, y
		i.hasCursor = true
		return 0, 0
	}
	dx, dy := x-i.lastCursorX, y-i.lastCursorY
	i.lastCursorX, i.lastCursorY = x, y
	return float64(dx), float64(dy)
}

func gamepadHeld(id ebiten.GamepadID, action component.Action) bool {
	switch action {
	case component.ActionLeft:
		return ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal) < -stickDeadzone
	case component.ActionRight:
		return ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal) > stickDeadzone
	case component.ActionForward:
		return ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical) < -stickDeadzone
	case component.ActionBack:
		return ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical) > stickDeadzone
	case component.ActionInteract:
		return ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
	}
	return false
}

// gamepadLook turns right stick deflection into pointer travel.
func gamepadLook(id ebiten.GamepadID) (float64, float64) {
	rx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal)
	ry := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical)
	if math.Hypot(rx, ry) <= stickDeadzone {
		return 0, 0
	}
	return rx * stickLookSpeed, ry * stickLookSpeed
}
