package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A, H - move cannon left (held)
	ActionRight          // Right arrow, D, L - move cannon right (held)
	ActionFire           // Space, Up, W - launch a projectile
	ActionStop           // Down, S - release both directions
	ActionUp             // Menu navigation up
	ActionDown           // Menu navigation down
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFire:
		return "Fire"
	case ActionStop:
		return "Stop"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for one simulation tick.
// Held actions (Left, Right) are present on every tick they are held;
// edge actions (Fire, Pause, Restart) only on the tick they were pressed.
type InputFrame struct {
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

// DefaultHoldTicks is how long a single direction press stays held when no
// auto-repeat follows it.
const DefaultHoldTicks = 8

// HoldTracker synthesises key-up events for terminals, which report presses
// and auto-repeats but never releases. A direction press holds the action for
// a number of ticks; each repeat re-arms it.
type HoldTracker struct {
	holdTicks int
	remaining map[Action]int
}

// NewHoldTracker creates a tracker that holds a pressed direction for holdTicks ticks.
func NewHoldTracker(holdTicks int) *HoldTracker {
	if holdTicks <= 0 {
		holdTicks = DefaultHoldTicks
	}
	return &HoldTracker{
		holdTicks: holdTicks,
		remaining: make(map[Action]int),
	}
}

// Press records a key press. Left and Right are mutually exclusive: pressing
// one releases the other. Stop releases both.
func (h *HoldTracker) Press(a Action) {
	switch a {
	case ActionLeft:
		h.Release(ActionRight)
		h.remaining[ActionLeft] = h.holdTicks
	case ActionRight:
		h.Release(ActionLeft)
		h.remaining[ActionRight] = h.holdTicks
	case ActionStop:
		h.ReleaseAll()
	}
}

// Release drops a held action immediately.
func (h *HoldTracker) Release(a Action) {
	delete(h.remaining, a)
}

// ReleaseAll drops every held action.
func (h *HoldTracker) ReleaseAll() {
	clear(h.remaining)
}

// Apply writes held actions into the frame and ages them by one tick.
func (h *HoldTracker) Apply(frame *InputFrame) {
	for a, n := range h.remaining {
		frame.Set(a)
		if n <= 1 {
			delete(h.remaining, a)
		} else {
			h.remaining[a] = n - 1
		}
	}
}
