package core

// Action is a player intent, decoupled from the key or button behind it.
type Action uint8

const (
	ActionNone    Action = iota
	ActionFlap           // Space, W, Up, mouse click
	ActionConfirm        // Enter: start a run, play again
	ActionBack           // B: leave to the menu
	ActionRestart        // R: new run after game over
	ActionQuit           // Q, Ctrl+C
	ActionPause          // P, Esc
	actionCount
)

var actionNames = [actionCount]string{
	ActionNone:    "None",
	ActionFlap:    "Flap",
	ActionConfirm: "Confirm",
	ActionBack:    "Back",
	ActionRestart: "Restart",
	ActionQuit:    "Quit",
	ActionPause:   "Pause",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a >= actionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame is the set of actions pressed since the previous tick.
// The zero value is an empty frame.
type InputFrame struct {
	pressed uint16
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks an action as pressed. ActionNone and unknown actions are ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || a >= actionCount {
		return
	}
	f.pressed |= 1 << a
}

// Has reports whether the action was pressed.
func (f InputFrame) Has(a Action) bool {
	if a >= actionCount {
		return false
	}
	return f.pressed&(1<<a) != 0
}

// Empty reports whether nothing was pressed.
func (f InputFrame) Empty() bool {
	return f.pressed == 0
}

// Clear empties the frame for the next tick.
func (f *InputFrame) Clear() {
	f.pressed = 0
}
