package core

// Action represents a semantic simulator action, abstracted from physical
// key presses. The platform layer maps keys to actions; the simulation
// consumes actions without knowing the input source.
type Action int

const (
	ActionNone      Action = iota
	ActionToggleRun        // Space - flip the clock between paused and running
	ActionClear            // C - empty the board, force paused, reset the counter
	ActionRandomize        // G - reseed the board with random cells
	ActionStepOnce         // N - advance one generation while paused
	ActionQuit             // Q, Esc, Ctrl+C - end the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionToggleRun:
		return "ToggleRun"
	case ActionClear:
		return "Clear"
	case ActionRandomize:
		return "Randomize"
	case ActionStepOnce:
		return "StepOnce"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// PointerPress is a pointer (mouse) press at a screen position.
type PointerPress struct {
	X, Y int
}

// InputFrame represents the input collected during one frame tick.
// Key actions are a set; pointer presses keep their arrival order.
type InputFrame struct {
	Actions map[Action]bool
	Pointer []PointerPress
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

// AddPointer records a pointer press for this frame.
func (f *InputFrame) AddPointer(x, y int) {
	f.Pointer = append(f.Pointer, PointerPress{X: x, Y: y})
}

// Clear resets all input for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer = f.Pointer[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Pointer = append(clone.Pointer, f.Pointer...)
	return clone
}
