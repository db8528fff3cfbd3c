package core

// Action represents a semantic game command, abstracted from physical key presses.
// This allows the engine to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone        Action = iota
	ActionStart              // Enter - leave the title screen, start the countdown
	ActionBack               // B, Escape - return to the title screen
	ActionPause              // P - pause a running game
	ActionResume             // P, R - resume a paused game
	ActionFire               // Space - fire a projectile
	ActionThrustLeft         // A, Left - rotate counter-clockwise
	ActionThrustRight        // D, Right - rotate clockwise
	ActionThrustUp           // W, Up - forward thrust
	ActionUseShip            // 1 - convert a spare ship into a life
	ActionUseToken           // 2 - spend a token on a bomb
	ActionUsePill            // 3 - swallow a pill for a shield
	ActionRestart            // R - start over after game over
	ActionQuit               // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStart:
		return "Start"
	case ActionBack:
		return "Back"
	case ActionPause:
		return "Pause"
	case ActionResume:
		return "Resume"
	case ActionFire:
		return "Fire"
	case ActionThrustLeft:
		return "ThrustLeft"
	case ActionThrustRight:
		return "ThrustRight"
	case ActionThrustUp:
		return "ThrustUp"
	case ActionUseShip:
		return "UseShip"
	case ActionUseToken:
		return "UseToken"
	case ActionUsePill:
		return "UsePill"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the commands issued during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// Frame is a convenience constructor for an input frame holding the given actions.
func Frame(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}
