package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone  Action = iota
	ActionUp           // W, Up arrow
	ActionDown         // S, Down arrow
	ActionLeft         // A, Left arrow
	ActionRight        // D, Right arrow
	ActionFire         // Space - shoot, restart after game over
	ActionBack         // Escape - leave the current screen
	ActionPause        // P - toggle pause
	ActionOne          // 1 - first menu choice
	ActionTwo          // 2 - second menu choice
	ActionQuit         // Ctrl+C, window close
)

// EraseRune stands for Backspace in InputFrame.Text, so clearing the typed
// text keeps its place among the characters typed in the same frame.
const EraseRune = '\b'

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFire:
		return "Fire"
	case ActionBack:
		return "Back"
	case ActionPause:
		return "Pause"
	case ActionOne:
		return "One"
	case ActionTwo:
		return "Two"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Opposite returns the action that cancels a directional action, or
// ActionNone for non-directional actions.
func (a Action) Opposite() Action {
	switch a {
	case ActionUp:
		return ActionDown
	case ActionDown:
		return ActionUp
	case ActionLeft:
		return ActionRight
	case ActionRight:
		return ActionLeft
	default:
		return ActionNone
	}
}

// Holdable reports whether the action has continuous (held-key) meaning.
// Fire is not: a shot needs a key press, and auto-repeat supplies the
// presses while the key stays down.
func (a Action) Holdable() bool {
	switch a {
	case ActionUp, ActionDown, ActionLeft, ActionRight:
		return true
	default:
		return false
	}
}

// InputFrame represents the input of a single player during one frame.
type InputFrame struct {
	// Actions marks actions that were pressed during this frame.
	Actions map[Action]bool

	// Held marks actions whose key is considered held down this frame.
	Held map[Action]bool

	// Events lists pressed actions in arrival order. Games that react to each
	// key event separately (Snake steering) read this instead of Actions.
	Events []Action

	// Text holds typed printable characters in arrival order. EraseRune
	// marks a Backspace.
	Text []rune
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Set marks an action as pressed for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
	f.Events = append(f.Events, a)
}

// Has returns true if the given action was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Hold marks an action as held for this frame.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// Holding returns true if the action is held or was pressed this frame.
func (f InputFrame) Holding(a Action) bool {
	return f.Held[a] || f.Actions[a]
}

// Type records a typed character.
func (f *InputFrame) Type(r rune) {
	f.Text = append(f.Text, r)
}

// PlayerID identifies one of the local players sharing the keyboard.
type PlayerID int

const (
	Player1 PlayerID = 1
	Player2 PlayerID = 2
)

// MultiInputFrame contains input from all local players for a single frame.
// The platform fills it from the keyboard according to the game's KeyLayout.
type MultiInputFrame struct {
	ByPlayer map[PlayerID]InputFrame
}

// NewMultiInputFrame creates an empty multi-input frame.
func NewMultiInputFrame() MultiInputFrame {
	return MultiInputFrame{
		ByPlayer: make(map[PlayerID]InputFrame),
	}
}

// Player returns the input frame for a specific player.
// Returns an empty frame if the player has no input.
func (m MultiInputFrame) Player(id PlayerID) InputFrame {
	if frame, ok := m.ByPlayer[id]; ok {
		return frame
	}
	return NewInputFrame()
}

// Update applies fn to the frame of the given player and stores the result.
func (m *MultiInputFrame) Update(id PlayerID, fn func(f *InputFrame)) {
	if m.ByPlayer == nil {
		m.ByPlayer = make(map[PlayerID]InputFrame)
	}
	frame := m.Player(id)
	fn(&frame)
	m.ByPlayer[id] = frame
}

// Player1 returns the input frame for Player 1 (convenience method).
func (m MultiInputFrame) Player1() InputFrame {
	return m.Player(Player1)
}

// Player2 returns the input frame for Player 2 (convenience method).
func (m MultiInputFrame) Player2() InputFrame {
	return m.Player(Player2)
}

// Quit reports whether any player requested to close the window.
func (m MultiInputFrame) Quit() bool {
	for _, f := range m.ByPlayer {
		if f.Has(ActionQuit) {
			return true
		}
	}
	return false
}

// KeyLayout tells the platform how to route keyboard keys for a game.
type KeyLayout int

const (
	// LayoutSolo routes both WASD and arrow keys to Player1.
	LayoutSolo KeyLayout = iota

	// LayoutVersus routes WASD to Player1 and arrow keys to Player2.
	LayoutVersus

	// LayoutText routes printable keys to typed text for Player1.
	LayoutText
)

// HoldTracker emulates held keys on terminals, which only report presses.
// A press keeps its action held for a fixed number of frames; terminal
// auto-repeat refreshes the window while the key stays down.
type HoldTracker struct {
	ticks     int
	remaining map[holdKey]int
}

type holdKey struct {
	player PlayerID
	action Action
}

// NewHoldTracker creates a tracker holding each press for the given frames.
func NewHoldTracker(ticks int) *HoldTracker {
	return &HoldTracker{
		ticks:     max(1, ticks),
		remaining: make(map[holdKey]int),
	}
}

// HoldTicks converts a hold duration into frames at the given tick rate.
func HoldTicks(d time.Duration, tickRate int) int {
	if tickRate <= 0 {
		return 1
	}
	return max(1, int(d*time.Duration(tickRate)/time.Second))
}

// Press refreshes the hold window for an action. Pressing a direction
// releases its opposite immediately.
func (h *HoldTracker) Press(p PlayerID, a Action) {
	if !a.Holdable() {
		return
	}
	if opp := a.Opposite(); opp != ActionNone {
		delete(h.remaining, holdKey{player: p, action: opp})
	}
	h.remaining[holdKey{player: p, action: a}] = h.ticks
}

// Apply marks every currently held action on the frame and ages the holds
// by one frame.
func (h *HoldTracker) Apply(frame *MultiInputFrame) {
	for k, n := range h.remaining {
		frame.Update(k.player, func(f *InputFrame) { f.Hold(k.action) })
		if n <= 1 {
			delete(h.remaining, k)
		} else {
			h.remaining[k] = n - 1
		}
	}
}

// Reset releases every held action.
func (h *HoldTracker) Reset() {
	for k := range h.remaining {
		delete(h.remaining, k)
	}
}
