// Package loop provides the frame driver shared by every game: poll input,
// update, draw, then wait for the next frame.
package loop

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/classic-arcade/internal/core"
)

// Game is the three-callback contract every game implements.
type Game interface {
	// HandleInput applies one frame of input. Returning false stops the loop.
	HandleInput(in core.MultiInputFrame) bool

	// Update advances the simulation by one frame.
	Update()

	// Draw renders the current state into dst. The screen is pre-cleared.
	Draw(dst *core.Screen)
}

// Stater is implemented by games that expose their state machine phase.
type Stater interface {
	State() core.GameState
}

// Source drains pending input events into a frame.
type Source interface {
	Poll() core.MultiInputFrame
}

// Presenter shows a drawn frame.
type Presenter interface {
	Screen() *core.Screen
	Present()
}

// Governor blocks until the next frame is due.
type Governor interface {
	Wait(ctx context.Context) error
}

// Driver runs a Game frame by frame.
type Driver struct {
	game    Game
	logger  *log.Logger
	running bool
	frames  uint64
	phase   core.Phase
}

// NewDriver creates a driver for game. A nil logger discards output.
func NewDriver(game Game, logger *log.Logger) *Driver {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	d := &Driver{game: game, logger: logger, running: true}
	if s, ok := game.(Stater); ok {
		d.phase = s.State().Phase
	}
	return d
}

// Running reports whether the loop has not been stopped.
func (d *Driver) Running() bool {
	return d.running
}

// Frames returns the number of updated frames.
func (d *Driver) Frames() uint64 {
	return d.frames
}

// Step handles one frame of input and, if the loop is still running,
// updates the game. A window-close request stops the loop without
// consulting the game. Returns whether the loop keeps running.
func (d *Driver) Step(in core.MultiInputFrame) bool {
	if !d.running {
		return false
	}
	if in.Quit() {
		d.stop("window closed")
		return false
	}
	if !d.game.HandleInput(in) {
		d.observePhase()
		d.stop("game requested exit")
		return false
	}
	d.game.Update()
	d.frames++
	d.observePhase()
	return true
}

// Draw clears dst and lets the game render into it.
func (d *Driver) Draw(dst *core.Screen) {
	dst.Clear()
	d.game.Draw(dst)
}

// Stop ends the loop from outside.
func (d *Driver) Stop() {
	if d.running {
		d.stop("stopped")
	}
}

// Run drives the game until it asks to stop, the source reports a window
// close, or ctx is cancelled. Cancellation is checked at the top of each
// iteration, so an in-flight frame always completes.
func (d *Driver) Run(ctx context.Context, src Source, out Presenter, gov Governor) error {
	for d.running {
		if err := ctx.Err(); err != nil {
			d.stop("context cancelled")
			return nil
		}
		if !d.Step(src.Poll()) {
			break
		}
		d.Draw(out.Screen())
		out.Present()
		if err := gov.Wait(ctx); err != nil {
			d.stop("context cancelled")
			return nil
		}
	}
	return nil
}

func (d *Driver) stop(reason string) {
	d.running = false
	d.logger.Debug("loop stopped", "reason", reason, "frames", d.frames)
}

func (d *Driver) observePhase() {
	s, ok := d.game.(Stater)
	if !ok {
		return
	}
	st := s.State()
	if st.Phase == d.phase {
		return
	}
	d.logger.Info("phase changed", "from", d.phase, "to", st.Phase, "score", st.Score)
	d.phase = st.Phase
}

// TickerGovernor paces frames with a time.Ticker.
type TickerGovernor struct {
	ticker *time.Ticker
}

// NewTickerGovernor creates a governor ticking fps times per second.
func NewTickerGovernor(fps int) *TickerGovernor {
	return &TickerGovernor{ticker: time.NewTicker(Interval(fps))}
}

// Wait blocks until the next tick or ctx is done.
func (g *TickerGovernor) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-g.ticker.C:
		return nil
	}
}

// Stop releases the ticker.
func (g *TickerGovernor) Stop() {
	g.ticker.Stop()
}

// Interval returns the frame duration for fps, defaulting to 60 FPS.
func Interval(fps int) time.Duration {
	if fps <= 0 {
		fps = 60
	}
	return time.Second / time.Duration(fps)
}
