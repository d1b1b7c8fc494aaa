package component

// Action is a named key binding the controller understands.
type Action uint8

const (
	ActionNone Action = iota
	ActionForward
	ActionBack
	ActionLeft
	ActionRight
	ActionInteract
)

func (a Action) String() string {
	switch a {
	case ActionForward:
		return "forward"
	case ActionBack:
		return "back"
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionInteract:
		return "interact"
	default:
		return "none"
	}
}

// InputCommand is one key transition recorded between frames.
type InputCommand struct {
	Action Action
	Down   bool
}

// Input accumulates device events between frames. Movement flags persist
// until released; the pointer delta is read once per frame.
type Input struct {
	Forward bool
	Back    bool
	Left    bool
	Right   bool

	PointerX float64
	PointerY float64

	Commands []InputCommand
}

var InputComponent = NewComponent[Input]()

// PushKey queues a key transition.
func (in *Input) PushKey(action Action, down bool) {
	if in == nil || action == ActionNone {
		return
	}
	in.Commands = append(in.Commands, InputCommand{Action: action, Down: down})
}

// PushPointer adds a pointer delta. Magnitudes are not validated.
func (in *Input) PushPointer(dx, dy float64) {
	if in == nil {
		return
	}
	in.PointerX += dx
	in.PointerY += dy
}

// ConsumePointer returns the accumulated delta and resets it.
func (in *Input) ConsumePointer() (dx, dy float64) {
	if in == nil {
		return 0, 0
	}
	dx, dy = in.PointerX, in.PointerY
	in.PointerX, in.PointerY = 0, 0
	return dx, dy
}

// Drain returns queued commands in arrival order and clears the queue.
func (in *Input) Drain() []InputCommand {
	if in == nil || len(in.Commands) == 0 {
		return nil
	}
	out := in.Commands
	in.Commands = nil
	return out
}

// Apply folds one command into the movement flags. Presses are ignored while
// inactive, releases always land. It reports whether cmd is an accepted
// interact press.
func (in *Input) Apply(cmd InputCommand, active bool) bool {
	if in == nil || (cmd.Down && !active) {
		return false
	}
	switch cmd.Action {
	case ActionForward:
		in.Forward = cmd.Down
	case ActionBack:
		in.Back = cmd.Down
	case ActionLeft:
		in.Left = cmd.Down
	case ActionRight:
		in.Right = cmd.Down
	case ActionInteract:
		return cmd.Down
	}
	return false
}

// Clear drops every held flag, queued command and pointer delta.
func (in *Input) Clear() {
	if in == nil {
		return
	}
	*in = Input{}
}
