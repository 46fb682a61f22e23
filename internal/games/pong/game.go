// Package pong implements classic Pong against the AI or a second player.
// Player 1 controls the left paddle; the right paddle belongs to the AI in
// single-player mode and to Player 2 in two-player mode.
package pong

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/classic-arcade/internal/config"
	"github.com/vovakirdan/classic-arcade/internal/core"
	"github.com/vovakirdan/classic-arcade/internal/registry"
)

// Visual characters for rendering
const (
	PaddleChar = '█'
	BallChar   = '●'
	NetChar    = '│'
)

// Game implements the Pong game logic.
type Game struct {
	cfg     config.PongConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand

	phase     core.Phase
	twoPlayer bool
	paused    bool

	left  Paddle
	right Paddle
	ball  Ball

	leftScore  int
	rightScore int
	winner     string

	tickCount uint64
}

// New creates a new Pong game instance.
func New(cfg config.PongConfig) *Game {
	g := &Game{cfg: cfg}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return config.PongID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Pong"
}

// TickRate returns the native frame rate.
func (g *Game) TickRate() int {
	return g.cfg.Window.FPS
}

// KeyLayout splits the keyboard between the two paddles.
func (g *Game) KeyLayout() core.KeyLayout {
	return core.LayoutVersus
}

// Controls returns the key bindings for help screens.
func (g *Game) Controls() []core.Control {
	return []core.Control{
		{Keys: "1 / 2", Effect: "single player / two players"},
		{Keys: "W/S", Effect: "move left paddle"},
		{Keys: "↑/↓", Effect: "move right paddle (two players)"},
		{Keys: "P", Effect: "pause"},
		{Keys: "ESC", Effect: "menu; quit from menu"},
		{Keys: "SPACE", Effect: "back to menu after game over"},
	}
}

// Reset starts a new session at the mode menu.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.phase = core.PhaseMenu
	g.twoPlayer = false
	g.tickCount = 0
	g.resetRound()
}

// resetRound places fresh paddles and ball and clears the scores.
func (g *Game) resetRound() {
	w, h := g.cfg.Window.Width, g.cfg.Window.Height
	y := h/2 - g.cfg.Paddle.Height/2

	g.left = newPaddle(g.cfg.Paddle.Margin, y, g.cfg)
	g.right = newPaddle(w-g.cfg.Paddle.Margin-g.cfg.Paddle.Width, y, g.cfg)
	g.ball.Serve(g.cfg, g.rng)

	g.leftScore = 0
	g.rightScore = 0
	g.winner = ""
	g.paused = false
}

// start leaves the menu in the chosen mode.
func (g *Game) start(twoPlayer bool) {
	g.twoPlayer = twoPlayer
	g.phase = core.PhasePlaying
	g.resetRound()
}

// HandleInput processes key events in arrival order, then applies held
// paddle movement while playing.
func (g *Game) HandleInput(in core.MultiInputFrame) bool {
	p1 := in.Player1()

	for _, a := range p1.Events {
		switch g.phase {
		case core.PhaseMenu:
			switch a {
			case core.ActionOne:
				g.start(false)
			case core.ActionTwo:
				g.start(true)
			case core.ActionBack:
				return false
			}

		case core.PhaseGameOver:
			switch a {
			case core.ActionFire:
				g.phase = core.PhaseMenu
			case core.ActionBack:
				return false
			}

		case core.PhasePlaying:
			switch a {
			case core.ActionBack:
				g.phase = core.PhaseMenu
			case core.ActionPause:
				g.paused = !g.paused
			}
		}
	}

	if g.phase != core.PhasePlaying || g.paused {
		return true
	}

	if p1.Holding(core.ActionUp) {
		g.left.MoveUp()
	}
	if p1.Holding(core.ActionDown) {
		g.left.MoveDown()
	}

	if g.twoPlayer {
		p2 := in.Player2()
		if p2.Holding(core.ActionUp) {
			g.right.MoveUp()
		}
		if p2.Holding(core.ActionDown) {
			g.right.MoveDown()
		}
	}

	return true
}

// Update advances the rally by one frame.
func (g *Game) Update() {
	if g.phase != core.PhasePlaying || g.paused {
		return
	}
	g.tickCount++

	if !g.twoPlayer {
		g.right.Track(g.ball, g.cfg.Gameplay.AIDeadZone)
	}

	g.ball.Advance(g.cfg.Window.Height)

	// Only bounce off a paddle the ball is moving toward, so a ball that
	// overlaps a paddle for several frames is not reflected back and forth.
	ballRect := g.ball.Rect()
	if ballRect.Intersects(g.left.Rect()) && g.ball.VX < 0 {
		g.ball.BounceOff(g.left, g.cfg.Ball.Deflection, g.cfg.Ball.MinSpeedX)
	}
	if ballRect.Intersects(g.right.Rect()) && g.ball.VX > 0 {
		g.ball.BounceOff(g.right, g.cfg.Ball.Deflection, g.cfg.Ball.MinSpeedX)
	}

	if g.ball.OutLeft() {
		g.rightScore++
		g.ball.Serve(g.cfg, g.rng)
	}
	if g.ball.OutRight(g.cfg.Window.Width) {
		g.leftScore++
		g.ball.Serve(g.cfg, g.rng)
	}

	switch win := g.cfg.Gameplay.WinScore; {
	case g.leftScore >= win:
		g.phase = core.PhaseGameOver
		g.winner = g.sideLabel(true)
	case g.rightScore >= win:
		g.phase = core.PhaseGameOver
		g.winner = g.sideLabel(false)
	}
}

// sideLabel names the owner of a side for the current mode.
func (g *Game) sideLabel(left bool) string {
	switch {
	case left && g.twoPlayer:
		return "Player 1"
	case left:
		return "Player"
	case g.twoPlayer:
		return "Player 2"
	default:
		return "AI"
	}
}

// Draw renders the current phase.
func (g *Game) Draw(dst *core.Screen) {
	v := core.NewViewport(g.cfg.Window.Width, g.cfg.Window.Height, dst.Width(), dst.Height())
	midY := g.cfg.Window.Height / 2

	switch g.phase {
	case core.PhaseMenu:
		dst.DrawTextCentered(v.Y(float64(midY-100)), "PONG", core.ColorYellow)
		dst.DrawTextCentered(v.Y(float64(midY-50)), "Select Number of Players:", core.ColorWhite)
		dst.DrawTextCentered(v.Y(float64(midY)), "Press 1 for Single Player (vs AI)", core.ColorWhite)
		dst.DrawTextCentered(v.Y(float64(midY+30)), "Press 2 for Two Players", core.ColorWhite)
		dst.DrawTextCentered(v.Y(float64(midY+80)), "Press ESC to Quit", core.ColorGray)

	case core.PhasePlaying:
		g.drawNet(dst)
		dst.FillRect(v.Rect(g.left.Rect()), PaddleChar, core.ColorWhite)
		dst.FillRect(v.Rect(g.right.Rect()), PaddleChar, core.ColorWhite)

		cx, cy := g.ball.Rect().Center()
		dst.SetColored(v.X(float64(cx)), v.Y(float64(cy)), BallChar, core.ColorWhite)

		scoreY := v.Y(50)
		w := float64(g.cfg.Window.Width)
		dst.DrawTextCenteredAt(v.X(w/4), scoreY, fmt.Sprint(g.leftScore), core.ColorWhite)
		dst.DrawTextCenteredAt(v.X(3*w/4), scoreY, fmt.Sprint(g.rightScore), core.ColorWhite)

		controls := "W/S: Move Paddle, P: Pause, ESC: Menu"
		if g.twoPlayer {
			controls = "P1: W/S, P2: ↑/↓, P: Pause, ESC: Menu"
		}
		dst.DrawTextCentered(v.Y(float64(g.cfg.Window.Height-30)), controls, core.ColorGray)

		if g.paused {
			dst.DrawTextCentered(v.Y(float64(midY)), "PAUSED", core.ColorYellow)
		}

	case core.PhaseGameOver:
		g.drawNet(dst)
		dst.DrawTextCentered(v.Y(float64(midY-50)), g.winner+" Wins!", core.ColorYellow)
		dst.DrawTextCentered(v.Y(float64(midY)),
			fmt.Sprintf("Final Score: %d - %d", g.leftScore, g.rightScore), core.ColorWhite)
		dst.DrawTextCentered(v.Y(float64(midY+50)), "Press SPACE to return to menu, ESC to quit", core.ColorGray)
	}
}

// drawNet draws the dashed center line.
func (g *Game) drawNet(dst *core.Screen) {
	centerX := dst.Width() / 2
	for y := 0; y < dst.Height(); y += 2 {
		dst.SetColored(centerX, y, NetChar, core.ColorDarkGray)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase:    g.phase,
		Score:    g.leftScore, // Report the left player's score
		GameOver: g.phase == core.PhaseGameOver,
		Paused:   g.paused,
	}
}

// Winner returns the winner label once the match is over.
func (g *Game) Winner() string {
	return g.winner
}

// Register the game with the registry
func init() {
	registry.Register(config.PongID, func(cfg config.Bundle) registry.Game {
		return New(cfg.Pong)
	})
}
