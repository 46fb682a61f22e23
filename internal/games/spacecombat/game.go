// Package spacecombat implements a vertical shooter: enemies fall from the
// top, the player shoots them down and loses health on contact.
package spacecombat

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/vovakirdan/classic-arcade/internal/config"
	"github.com/vovakirdan/classic-arcade/internal/core"
	"github.com/vovakirdan/classic-arcade/internal/registry"
)

// Visual characters for rendering
const (
	PlayerChar    = '▲'
	EnemyChar     = '▼'
	BulletChar    = '|'
	ExplosionChar = '*'
	BarFullChar   = '█'
	BarEmptyChar  = '░'
)

// healthBarWidth is the health bar width in window pixels.
const healthBarWidth = 200

// Game implements the Space Combat game logic.
type Game struct {
	cfg     config.SpaceConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand

	player     Player
	bullets    []Bullet
	enemies    []Enemy
	explosions []Explosion

	score         int
	gameOver      bool
	spawnTimer    int
	shootCooldown int

	tickCount uint64
}

// New creates a new Space Combat game instance.
func New(cfg config.SpaceConfig) *Game {
	g := &Game{cfg: cfg}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return config.SpaceID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Space Combat"
}

// TickRate returns the native frame rate.
func (g *Game) TickRate() int {
	return g.cfg.Window.FPS
}

// KeyLayout gives WASD and the arrows to the single player.
func (g *Game) KeyLayout() core.KeyLayout {
	return core.LayoutSolo
}

// Controls returns the key bindings for help screens.
func (g *Game) Controls() []core.Control {
	return []core.Control{
		{Keys: "WASD / arrows", Effect: "move"},
		{Keys: "SPACE", Effect: "shoot; play again after game over"},
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

// restart clears the field and puts the player back at the bottom center.
func (g *Game) restart() {
	g.player = newPlayer(g.cfg)
	g.bullets = nil
	g.enemies = nil
	g.explosions = nil
	g.score = 0
	g.gameOver = false
	g.spawnTimer = 0
	g.shootCooldown = 0
}

// HandleInput handles quit and restart keys, then held movement and
// shooting while playing.
func (g *Game) HandleInput(in core.MultiInputFrame) bool {
	p1 := in.Player1()

	for _, a := range p1.Events {
		switch {
		case a == core.ActionBack:
			return false
		case a == core.ActionFire && g.gameOver:
			g.restart()
			// The same press must not also fire a shot.
			return true
		}
	}

	if g.gameOver {
		return true
	}

	if p1.Holding(core.ActionLeft) {
		g.player.MoveLeft()
	}
	if p1.Holding(core.ActionRight) {
		g.player.MoveRight()
	}
	if p1.Holding(core.ActionUp) {
		g.player.MoveUp()
	}
	if p1.Holding(core.ActionDown) {
		g.player.MoveDown()
	}
	// Each press fires at most once; auto-repeat keeps a held key firing.
	if p1.Has(core.ActionFire) && g.shootCooldown <= 0 {
		g.bullets = append(g.bullets, g.player.Shoot(g.cfg.Bullet))
		g.shootCooldown = g.cfg.Player.ShootCooldown
	}

	return true
}

// Update advances the battle by one frame.
func (g *Game) Update() {
	if g.gameOver {
		return
	}
	g.tickCount++

	if g.shootCooldown > 0 {
		g.shootCooldown--
	}

	g.spawnTimer++
	if g.spawnTimer >= g.cfg.Enemy.SpawnRate {
		g.enemies = append(g.enemies, SpawnEnemy(g.cfg, g.rng))
		g.spawnTimer = 0
	}

	g.advance()
	g.resolveShots()
	g.resolveRams()
}

// advance moves every entity and drops the ones that are gone.
func (g *Game) advance() {
	h := g.cfg.Window.Height

	for i := range g.bullets {
		g.bullets[i].Update()
	}
	g.bullets = prune(g.bullets, func(b Bullet) bool { return b.OffScreen(h) })

	for i := range g.enemies {
		g.enemies[i].Update()
	}
	g.enemies = prune(g.enemies, func(e Enemy) bool { return e.OffScreen(h) })

	for i := range g.explosions {
		g.explosions[i].Update()
	}
	g.explosions = prune(g.explosions, Explosion.Finished)
}

// resolveShots removes every bullet and enemy involved in a hit. Each pair
// scores and leaves an explosion, so one enemy hit by two bullets in the
// same frame counts twice.
func (g *Game) resolveShots() {
	hits := BulletEnemyHits(g.bullets, g.enemies)
	if len(hits) == 0 {
		return
	}

	deadBullets := make(map[int]bool, len(hits))
	deadEnemies := make(map[int]bool, len(hits))
	for _, hit := range hits {
		deadBullets[hit.Bullet] = true
		deadEnemies[hit.Enemy] = true

		g.explosions = append(g.explosions, newExplosion(g.enemies[hit.Enemy], g.cfg.Explosion))
		g.score += g.cfg.Enemy.Points
	}

	g.bullets = without(g.bullets, deadBullets)
	g.enemies = without(g.enemies, deadEnemies)
}

// resolveRams handles enemies that reached the player, highest index
// first so earlier indices stay valid while removing.
func (g *Game) resolveRams() {
	hits := PlayerEnemyHits(g.player, g.enemies)
	slices.Reverse(hits)

	for _, i := range hits {
		g.explosions = append(g.explosions, newExplosion(g.enemies[i], g.cfg.Explosion))
		g.enemies = slices.Delete(g.enemies, i, i+1)

		if !g.player.TakeDamage(g.cfg.Player.CollisionDamage) {
			g.gameOver = true
			return
		}
	}
}

// Draw renders the battlefield, or the game over screen.
func (g *Game) Draw(dst *core.Screen) {
	v := core.NewViewport(g.cfg.Window.Width, g.cfg.Window.Height, dst.Width(), dst.Height())

	if g.gameOver {
		midY := float64(g.cfg.Window.Height / 2)
		dst.DrawTextCentered(v.Y(midY-50), "GAME OVER", core.ColorOrange)
		dst.DrawTextCentered(v.Y(midY), fmt.Sprintf("Final Score: %d", g.score), core.ColorWhite)
		dst.DrawTextCentered(v.Y(midY+50), "Press SPACE to play again, ESC to quit", core.ColorWhite)
		return
	}

	for _, x := range g.explosions {
		dst.FillRect(v.Rect(x.Rect()), ExplosionChar, core.ColorOrange)
	}
	for _, e := range g.enemies {
		dst.FillRect(v.Rect(e.Rect()), EnemyChar, core.ColorRed)
	}
	for _, b := range g.bullets {
		dst.FillRect(v.Rect(b.Rect()), BulletChar, core.ColorYellow)
	}
	dst.FillRect(v.Rect(g.player.Rect()), PlayerChar, core.ColorGreen)

	g.drawHUD(dst, v)
}

// drawHUD draws the score, health and controls lines and the health bar.
func (g *Game) drawHUD(dst *core.Screen, v core.Viewport) {
	dst.DrawTextColored(v.X(10), v.Y(10), fmt.Sprintf("Score: %d", g.score), core.ColorWhite)
	dst.DrawTextColored(v.X(10), v.Y(40), fmt.Sprintf("Health: %d", g.player.Health), core.ColorWhite)

	frac := g.player.HealthFraction()
	color := core.ColorRed
	switch {
	case frac > 0.5:
		color = core.ColorGreen
	case frac > 0.25:
		color = core.ColorYellow
	}

	bar := v.Rect(core.NewRect(10, 70, healthBarWidth, 10))
	dst.FillRect(bar, BarEmptyChar, core.ColorGray)
	if fill := int(float64(bar.W) * frac); fill > 0 {
		dst.FillRect(core.NewRect(bar.X, bar.Y, fill, bar.H), BarFullChar, color)
	}

	dst.DrawTextColored(v.X(10), dst.Height()-1, "WASD/Arrows: Move, SPACE: Shoot, ESC: Quit", core.ColorGray)
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
	registry.Register(config.SpaceID, func(cfg config.Bundle) registry.Game {
		return New(cfg.Space)
	})
}
