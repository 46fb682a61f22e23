package launcher

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/classic-arcade/internal/config"
	"github.com/vovakirdan/classic-arcade/internal/core"
	"github.com/vovakirdan/classic-arcade/internal/registry"
)

const countdownID = "launcher-countdown"

// countdown quits by itself after a fixed number of frames.
type countdown struct {
	left    int
	updates int
	resets  []core.RuntimeConfig
}

func (c *countdown) HandleInput(core.MultiInputFrame) bool {
	c.left--
	return c.left > 0
}
func (c *countdown) Update()                      { c.updates++ }
func (c *countdown) Draw(dst *core.Screen)        { dst.DrawTextColored(0, 0, "tick", core.ColorGreen) }
func (c *countdown) ID() string                   { return countdownID }
func (c *countdown) Title() string                { return "Countdown" }
func (c *countdown) Reset(cfg core.RuntimeConfig) { c.resets = append(c.resets, cfg) }
func (c *countdown) State() core.GameState        { return core.GameState{Phase: core.PhasePlaying} }
func (c *countdown) Controls() []core.Control     { return nil }
func (c *countdown) KeyLayout() core.KeyLayout    { return core.LayoutSolo }
func (c *countdown) TickRate() int                { return 500 }

var lastCountdown *countdown

func init() {
	registry.Register(countdownID, func(config.Bundle) registry.Game {
		lastCountdown = &countdown{left: 5}
		return lastCountdown
	})
}

func TestPlayUnknownBackend(t *testing.T) {
	err := Play(context.Background(), countdownID, Options{Backend: "sdl"})
	if err == nil || !strings.Contains(err.Error(), "unknown backend") {
		t.Errorf("err = %v, expected unknown backend", err)
	}
}

func TestPlayUnknownGame(t *testing.T) {
	err := Play(context.Background(), "pacman", Options{Backend: BackendTcell, Bundle: config.MustDefaults()})
	if err == nil || !strings.Contains(err.Error(), "unknown game") {
		t.Errorf("err = %v, expected unknown game", err)
	}
}

func TestPlayTcellRunsUntilGameQuits(t *testing.T) {
	sim := tcell.NewSimulationScreen("")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := Play(ctx, countdownID, Options{
		Bundle:  config.MustDefaults(),
		Runtime: core.RuntimeConfig{Seed: 7},
		Backend: BackendTcell,
		Screen:  sim,
	})
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if ctx.Err() != nil {
		t.Fatal("game did not stop before the deadline")
	}

	g := lastCountdown
	if g.updates != 4 {
		t.Errorf("updates = %d, expected 4", g.updates)
	}
	if len(g.resets) != 1 {
		t.Fatalf("resets = %d, expected 1", len(g.resets))
	}
	rc := g.resets[0]
	if rc.Seed != 7 || rc.TickRate != 500 {
		t.Errorf("runtime = %+v, expected seed 7 at the game's tick rate", rc)
	}
	if rc.ScreenW == 0 || rc.ScreenH == 0 {
		t.Errorf("runtime size = %dx%d, expected the terminal size", rc.ScreenW, rc.ScreenH)
	}
}

func TestPlayTcellStopsOnCancel(t *testing.T) {
	sim := tcell.NewSimulationScreen("")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Play(ctx, countdownID, Options{
		Bundle:  config.MustDefaults(),
		Backend: BackendTcell,
		Screen:  sim,
	})
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if lastCountdown.updates != 0 {
		t.Errorf("updates = %d, expected none after cancellation", lastCountdown.updates)
	}
}
