// Package typing implements Typing Rain: words fall from the top of the
// screen and disappear when typed. Missed words cost a life; the level
// rises with the score and brings longer words that fall faster.
package typing

import (
	"fmt"
	"math/rand"
	"unicode"

	"github.com/vovakirdan/classic-arcade/internal/config"
	"github.com/vovakirdan/classic-arcade/internal/core"
	"github.com/vovakirdan/classic-arcade/internal/registry"
)

// Visual characters for rendering
const (
	BarFullChar  = '█'
	BarEmptyChar = '░'
)

// progressBarWidth is the level progress bar width in window pixels.
const progressBarWidth = 200

// Game implements the Typing Rain game logic.
type Game struct {
	cfg     config.TypingConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand

	stats      Stats
	words      []FallingWord // in spawn order
	spawnTimer int
	input      []rune
	gameOver   bool

	// charW is the window width of one character on the screen drawn last.
	charW float64

	tickCount uint64
}

// New creates a new Typing Rain game instance.
func New(cfg config.TypingConfig) *Game {
	g := &Game{cfg: cfg}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return config.TypingID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Typing Rain"
}

// TickRate returns the native frame rate.
func (g *Game) TickRate() int {
	return g.cfg.Window.FPS
}

// KeyLayout asks for printable keys as typed text.
func (g *Game) KeyLayout() core.KeyLayout {
	return core.LayoutText
}

// Controls returns the key bindings for help screens.
func (g *Game) Controls() []core.Control {
	return []core.Control{
		{Keys: "letters / space", Effect: "type the falling words"},
		{Keys: "Backspace", Effect: "clear input"},
		{Keys: "SPACE", Effect: "play again after game over"},
		{Keys: "ESC", Effect: "quit"},
	}
}

// Reset starts a new session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.charW = g.viewport(runtime.ScreenW, runtime.ScreenH).ColumnWidth()
	g.tickCount = 0
	g.restart()
}

func (g *Game) restart() {
	g.stats = NewStats(g.cfg.Gameplay.Lives)
	g.words = nil
	g.spawnTimer = 0
	g.input = nil
	g.gameOver = false
}

// HandleInput handles quit and restart, then offers typed characters to
// the falling words in the order they were typed. Backspace clears the
// input line at its place in that order.
func (g *Game) HandleInput(in core.MultiInputFrame) bool {
	p1 := in.Player1()

	for _, a := range p1.Events {
		switch {
		case a == core.ActionBack:
			return false
		case g.gameOver && a == core.ActionFire:
			g.restart()
			return true
		}
	}

	if g.gameOver {
		return true
	}
	for _, r := range p1.Text {
		switch {
		case r == core.EraseRune:
			g.input = g.input[:0]
		case unicode.IsLetter(r) || unicode.IsSpace(r):
			g.typeChar(unicode.ToLower(r))
		}
	}
	return true
}

// typeChar offers r to the words in spawn order. The first unfinished
// word expecting r takes it; unmatched characters are dropped.
func (g *Game) typeChar(r rune) {
	g.input = append(g.input, r)

	for i := range g.words {
		w := &g.words[i]
		if w.Completed || !w.TypeChar(r) {
			continue
		}
		if w.Completed {
			g.stats.AddScore(w.Len(), g.cfg.Gameplay.ScorePerChar)
			g.words = append(g.words[:i], g.words[i+1:]...)
			g.input = g.input[:0]

			if g.cfg.Levels.ShouldLevelUp(g.stats.Score, g.stats.Level) {
				g.stats.Level++
			}
		}
		return
	}
}

// Update spawns and moves words. Running out of lives ends the game on
// the following frame.
func (g *Game) Update() {
	if g.gameOver {
		return
	}
	if g.stats.Out() {
		g.gameOver = true
		return
	}
	g.tickCount++

	g.spawnTimer++
	if g.spawnTimer >= g.cfg.Levels.SpawnRate(g.stats.Level) {
		g.spawnWord()
		g.spawnTimer = 0
	}

	h := g.cfg.Window.Height
	kept := g.words[:0]
	for _, w := range g.words {
		w.Update()
		if w.OffScreen(h) {
			// Words landing after the last life is gone are still removed,
			// but lives never drop below zero.
			if !w.Completed && !g.stats.Out() {
				g.stats.MissWord()
			}
			continue
		}
		kept = append(kept, w)
	}
	g.words = kept
}

// spawnWord drops a random word of the current level at a random column,
// keeping the whole word inside the horizontal margins when it fits.
func (g *Game) spawnWord() {
	list := g.cfg.Levels.WordsFor(g.stats.Level)
	if len(list) == 0 {
		return
	}
	text := list[g.rng.Intn(len(list))]

	margin := g.cfg.Gameplay.Margin
	width := int(float64(len([]rune(text))) * g.charW)
	maxX := max(margin, g.cfg.Window.Width-width-margin)
	x := margin + g.rng.Intn(maxX-margin+1)

	g.words = append(g.words, newFallingWord(text, float64(x),
		float64(g.cfg.Gameplay.SpawnY), g.cfg.Levels.FallSpeed(g.stats.Level)))
}

func (g *Game) viewport(screenW, screenH int) core.Viewport {
	return core.NewViewport(g.cfg.Window.Width, g.cfg.Window.Height, screenW, screenH)
}

// Draw renders the falling words and HUD, or the final statistics.
func (g *Game) Draw(dst *core.Screen) {
	v := g.viewport(dst.Width(), dst.Height())
	g.charW = v.ColumnWidth()

	if g.gameOver {
		g.drawGameOver(dst, v)
		return
	}

	for _, w := range g.words {
		x, y := v.X(w.X), v.Y(w.Y)
		typed := w.TypedText()
		dst.DrawTextColored(x, y, typed, core.ColorGreen)
		dst.DrawTextColored(x+len([]rune(typed)), y, w.RemainingText(), core.ColorWhite)
	}

	g.drawHUD(dst, v)
}

func (g *Game) drawHUD(dst *core.Screen, v core.Viewport) {
	s := g.stats
	x := v.X(10)
	dst.DrawTextColored(x, v.Y(10), fmt.Sprintf("Level: %d", s.Level), core.ColorCyan)
	dst.DrawTextColored(x, v.Y(40), fmt.Sprintf("Score: %d", s.Score), core.ColorCyan)
	dst.DrawTextColored(x, v.Y(70), fmt.Sprintf("Lives: %d", s.Lives), core.ColorCyan)
	dst.DrawTextColored(x, v.Y(100), fmt.Sprintf("Accuracy: %.1f%%", s.Accuracy), core.ColorCyan)
	dst.DrawTextColored(x, v.Y(130), fmt.Sprintf("Words: %d", s.WordsTyped), core.ColorCyan)

	levels := g.cfg.Levels
	barX := g.cfg.Window.Width - progressBarWidth - 10
	bar := v.Rect(core.NewRect(barX, 10, progressBarWidth, 10))
	dst.FillRect(bar, BarEmptyChar, core.ColorDarkGray)
	if fill := int(float64(bar.W) * levels.Progress(s.Score, s.Level)); fill > 0 {
		dst.FillRect(core.NewRect(bar.X, bar.Y, fill, bar.H), BarFullChar, core.ColorCyan)
	}

	progress := "MAX LEVEL!"
	if s.Level < levels.MaxLevel {
		progress = fmt.Sprintf("Next Level: %d/%d", s.Score, levels.NextLevelScore(s.Level))
	}
	dst.DrawTextColored(bar.X, bar.Bottom(), progress, core.ColorCyan)

	dst.DrawTextColored(x, dst.Height()-2, "> "+string(g.input), core.ColorGreen)
	dst.DrawTextColored(x, dst.Height()-1, "Type the falling words! ESC: Quit, Backspace: Clear", core.ColorCyan)
}

func (g *Game) drawGameOver(dst *core.Screen, v core.Viewport) {
	s := g.stats
	midY := float64(g.cfg.Window.Height / 2)

	dst.DrawTextCentered(v.Y(midY-100), "GAME OVER", core.ColorRed)
	dst.DrawTextCentered(v.Y(midY-50), fmt.Sprintf("Final Score: %d", s.Score), core.ColorCyan)
	dst.DrawTextCentered(v.Y(midY-20), fmt.Sprintf("Level Reached: %d", s.Level), core.ColorCyan)
	dst.DrawTextCentered(v.Y(midY+10), fmt.Sprintf("Accuracy: %.1f%%", s.Accuracy), core.ColorCyan)
	dst.DrawTextCentered(v.Y(midY+40), fmt.Sprintf("Words Typed: %d", s.WordsTyped), core.ColorCyan)
	dst.DrawTextCentered(v.Y(midY+80), "Press SPACE to play again, ESC to quit", core.ColorCyan)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	phase := core.PhasePlaying
	if g.gameOver {
		phase = core.PhaseGameOver
	}
	return core.GameState{
		Phase:    phase,
		Score:    g.stats.Score,
		GameOver: g.gameOver,
	}
}

// Stats returns the session statistics.
func (g *Game) Stats() Stats {
	return g.stats
}

// Register the game with the registry
func init() {
	registry.Register(config.TypingID, func(cfg config.Bundle) registry.Game {
		return New(cfg.Typing)
	})
}
