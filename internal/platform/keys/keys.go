// Package keys translates terminal key names into game input. Both terminal
// backends report keys by the same names ("up", "w", "esc", " ", "ctrl+c"),
// so routing lives here once.
package keys

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/vovakirdan/classic-arcade/internal/core"
)

// HoldWindow is how long a key press counts as held. Terminal auto-repeat
// refreshes it while the key stays down.
const HoldWindow = 250 * time.Millisecond

// Key is the input produced by one key press.
type Key struct {
	Player core.PlayerID
	Action core.Action
	Text   rune // typed character, 0 if none
}

// Map translates a key name for the given layout. Unknown keys map to
// ActionNone with no text.
func Map(layout core.KeyLayout, name string) Key {
	k := Key{Player: core.Player1}

	// Keys shared by every layout.
	switch name {
	case "ctrl+c":
		k.Action = core.ActionQuit
		return k
	case "esc":
		k.Action = core.ActionBack
		return k
	case "backspace":
		if layout == core.LayoutText {
			k.Text = core.EraseRune
		}
		return k
	case " ", "space":
		k.Action = core.ActionFire
		if layout == core.LayoutText {
			k.Text = ' '
		}
		return k
	case "up":
		k.Action = core.ActionUp
	case "down":
		k.Action = core.ActionDown
	case "left":
		k.Action = core.ActionLeft
	case "right":
		k.Action = core.ActionRight
	}

	if k.Action != core.ActionNone {
		if layout == core.LayoutVersus {
			k.Player = core.Player2
		}
		return k
	}

	if layout == core.LayoutText {
		if r, size := utf8.DecodeRuneInString(name); size == len(name) && unicode.IsPrint(r) {
			k.Text = r
		}
		return k
	}

	switch strings.ToLower(name) {
	case "w":
		k.Action = core.ActionUp
	case "s":
		k.Action = core.ActionDown
	case "a":
		k.Action = core.ActionLeft
	case "d":
		k.Action = core.ActionRight
	case "p":
		k.Action = core.ActionPause
	case "1":
		k.Action = core.ActionOne
	case "2":
		k.Action = core.ActionTwo
	}
	return k
}

// Queue collects key presses between frames and hands them to the loop
// driver as one frame. It implements loop.Source.
type Queue struct {
	layout core.KeyLayout
	frame  core.MultiInputFrame
	holds  *core.HoldTracker
}

// NewQueue creates a queue for a game running at tickRate frames per second.
func NewQueue(layout core.KeyLayout, tickRate int) *Queue {
	return &Queue{
		layout: layout,
		frame:  core.NewMultiInputFrame(),
		holds:  core.NewHoldTracker(core.HoldTicks(HoldWindow, tickRate)),
	}
}

// Press records a key press by name.
func (q *Queue) Press(name string) {
	k := Map(q.layout, name)
	if k.Action == core.ActionNone && k.Text == 0 {
		return
	}

	q.frame.Update(k.Player, func(f *core.InputFrame) {
		if k.Action != core.ActionNone {
			f.Set(k.Action)
		}
		if k.Text != 0 {
			f.Type(k.Text)
		}
	})
	if k.Action != core.ActionNone {
		q.holds.Press(k.Player, k.Action)
	}
}

// Poll returns the input collected since the last call, with held keys
// marked, and starts a new frame.
func (q *Queue) Poll() core.MultiInputFrame {
	frame := q.frame
	q.holds.Apply(&frame)
	q.frame = core.NewMultiInputFrame()
	return frame
}

// Reset drops pending input and releases every held key.
func (q *Queue) Reset() {
	q.frame = core.NewMultiInputFrame()
	q.holds.Reset()
}
