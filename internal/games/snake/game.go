// Package snake implements the classic Snake game on a square grid.
// The snake moves one cell per frame; eating food grows it by one cell.
package snake

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/classic-arcade/internal/config"
	"github.com/vovakirdan/classic-arcade/internal/core"
	"github.com/vovakirdan/classic-arcade/internal/registry"
)

// Visual characters for rendering
const (
	HeadChar = 'O'
	BodyChar = 'o'
	FoodChar = '*'
)

// Game implements the Snake game logic.
type Game struct {
	cfg     config.SnakeConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand

	cols, rows int

	snake *Snake
	food  Food
	score int

	gameOver  bool
	tickCount uint64
}

// New creates a new Snake game instance.
func New(cfg config.SnakeConfig) *Game {
	g := &Game{cfg: cfg}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return config.SnakeID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Snake"
}

// TickRate returns the native frame rate. Snake moves once per frame,
// so this is also its speed.
func (g *Game) TickRate() int {
	return g.cfg.Window.FPS
}

// KeyLayout gives all movement keys to the single player.
func (g *Game) KeyLayout() core.KeyLayout {
	return core.LayoutSolo
}

// Controls returns the key bindings for help screens.
func (g *Game) Controls() []core.Control {
	return []core.Control{
		{Keys: "↑/↓/←/→", Effect: "steer"},
		{Keys: "SPACE", Effect: "play again after game over"},
		{Keys: "ESC", Effect: "quit"},
	}
}

// Reset starts a new session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.tickCount = 0
	g.restart()
}

// restart places a fresh snake and food and clears the score.
// The random source keeps its sequence across restarts.
func (g *Game) restart() {
	g.cols = g.cfg.Columns()
	g.rows = g.cfg.Rows()

	g.snake = NewSnake(Point{X: g.cols / 2, Y: g.rows / 2})
	g.food.Regenerate(g.snake, g.cols, g.rows, g.rng)
	g.score = 0
	g.gameOver = false
}

// HandleInput processes key events in arrival order. Several turns in one
// frame all go through ChangeDirection; the last accepted one wins.
func (g *Game) HandleInput(in core.MultiInputFrame) bool {
	for _, a := range in.Player1().Events {
		if a == core.ActionBack {
			return false
		}

		if g.gameOver {
			if a == core.ActionFire {
				g.restart()
			}
			continue
		}

		switch a {
		case core.ActionUp:
			g.snake.ChangeDirection(DirUp)
		case core.ActionDown:
			g.snake.ChangeDirection(DirDown)
		case core.ActionLeft:
			g.snake.ChangeDirection(DirLeft)
		case core.ActionRight:
			g.snake.ChangeDirection(DirRight)
		}
	}
	return true
}

// Update moves the snake one cell and resolves collisions and food.
func (g *Game) Update() {
	if g.gameOver {
		return
	}
	g.tickCount++

	g.snake.Move()

	// The tail has not been popped yet, so moving into the cell the tail
	// is about to vacate still counts as a collision.
	if g.snake.HitsWall(g.cols, g.rows) || g.snake.HitsSelf() {
		g.gameOver = true
		return
	}

	if g.snake.Head() == g.food.Pos {
		g.score += g.cfg.Gameplay.FoodPoints
		g.food.Regenerate(g.snake, g.cols, g.rows, g.rng)
	} else {
		g.snake.Shrink()
	}
}

// Draw renders the grid, or the game over screen.
func (g *Game) Draw(dst *core.Screen) {
	v := core.NewViewport(g.cols, g.rows, dst.Width(), dst.Height())

	if g.gameOver {
		mid := float64(g.rows) / 2
		dst.DrawTextCentered(v.Y(mid-2.5), "GAME OVER", core.ColorRed)
		dst.DrawTextCentered(v.Y(mid), fmt.Sprintf("Final Score: %d", g.score), core.ColorWhite)
		dst.DrawTextCentered(v.Y(mid+2.5), "Press SPACE to play again, ESC to quit", core.ColorGray)
		return
	}

	if g.food.Pos != NoFood {
		dst.FillRect(v.Rect(core.NewRect(g.food.Pos.X, g.food.Pos.Y, 1, 1)), FoodChar, core.ColorRed)
	}
	g.renderSnake(dst, v)

	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", g.score), core.ColorWhite)
	dst.DrawTextColored(1, dst.Height()-1, "Use arrow keys to move, ESC to quit", core.ColorGray)
}

// renderSnake draws the body first so the head stays visible when
// several cells share a terminal cell.
func (g *Game) renderSnake(dst *core.Screen, v core.Viewport) {
	for i := len(g.snake.Body) - 1; i >= 1; i-- {
		p := g.snake.Body[i]
		dst.FillRect(v.Rect(core.NewRect(p.X, p.Y, 1, 1)), BodyChar, core.ColorDarkGreen)
	}
	h := g.snake.Head()
	dst.FillRect(v.Rect(core.NewRect(h.X, h.Y, 1, 1)), HeadChar, core.ColorGreen)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	phase := core.PhasePlaying
	if g.gameOver {
		phase = core.PhaseGameOver
	}
	return core.GameState{
		Phase:    phase,
		Score:    g.score,
		GameOver: g.gameOver,
	}
}

// Register the game with the registry
func init() {
	registry.Register(config.SnakeID, func(cfg config.Bundle) registry.Game {
		return New(cfg.Snake)
	})
}
