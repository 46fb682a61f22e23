// Package term is the tcell backend. Unlike the Bubble Tea backend it is
// driven by loop.Driver.Run directly: it implements both loop.Source and
// loop.Presenter.
package term

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/classic-arcade/internal/core"
	"github.com/vovakirdan/classic-arcade/internal/platform/keys"
)

// eventBuffer is how many terminal events may queue between two frames.
const eventBuffer = 128

// Terminal owns a tcell screen for the lifetime of one game.
type Terminal struct {
	screen tcell.Screen
	buf    *core.Screen
	input  *keys.Queue
	logger *log.Logger

	events chan tcell.Event
	done   chan struct{}
}

// Open initializes the user's terminal.
func Open(layout core.KeyLayout, tickRate int, logger *log.Logger) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("term: %w", err)
	}
	return NewWithScreen(screen, layout, tickRate, logger)
}

// NewWithScreen takes over an uninitialized tcell screen.
// A nil logger discards output.
func NewWithScreen(screen tcell.Screen, layout core.KeyLayout, tickRate int, logger *log.Logger) (*Terminal, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("term: init screen: %w", err)
	}
	screen.HideCursor()
	screen.Clear()

	w, h := screen.Size()
	t := &Terminal{
		screen: screen,
		buf:    core.NewScreen(w, h),
		input:  keys.NewQueue(layout, tickRate),
		logger: logger,
		events: make(chan tcell.Event, eventBuffer),
		done:   make(chan struct{}),
	}
	go t.readEvents()
	return t, nil
}

// readEvents forwards terminal events until the screen is finalized.
// PollEvent blocks, so it cannot run on the loop goroutine.
func (t *Terminal) readEvents() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.done:
			return
		}
	}
}

// Poll drains the pending terminal events into one input frame.
func (t *Terminal) Poll() core.MultiInputFrame {
	for {
		select {
		case ev := <-t.events:
			t.handle(ev)
		default:
			return t.input.Poll()
		}
	}
}

func (t *Terminal) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if name := KeyName(ev); name != "" {
			t.input.Press(name)
		}
	case *tcell.EventResize:
		w, h := ev.Size()
		t.buf.Resize(w, h)
		t.screen.Sync()
		t.logger.Debug("terminal resized", "width", w, "height", h)
	}
}

// Screen returns the frame buffer games draw into.
func (t *Terminal) Screen() *core.Screen {
	return t.buf
}

// Present copies the frame buffer to the terminal.
func (t *Terminal) Present() {
	for y := 0; y < t.buf.Height(); y++ {
		for x := 0; x < t.buf.Width(); x++ {
			cell := t.buf.GetCell(x, y)
			t.screen.SetContent(x, y, cell.Rune, nil, cellStyle(cell.Color))
		}
	}
	t.screen.Show()
}

// Close restores the terminal.
func (t *Terminal) Close() {
	close(t.done)
	t.screen.Fini()
}

func cellStyle(c core.Color) tcell.Style {
	code := c.ANSI()
	if code < 0 {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(tcell.PaletteColor(code))
}

// KeyName returns the key name shared with the Bubble Tea backend, or ""
// for keys no game uses.
func KeyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyEscape:
		return "esc"
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return "backspace"
	case tcell.KeyCtrlC:
		return "ctrl+c"
	case tcell.KeyRune:
		return string(ev.Rune())
	}
	return ""
}
