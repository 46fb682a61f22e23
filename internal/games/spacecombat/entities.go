package spacecombat

import (
	"math/rand"

	"github.com/vovakirdan/classic-arcade/internal/config"
	"github.com/vovakirdan/classic-arcade/internal/core"
)

// Player is the ship at the bottom of the screen.
// Its position is always kept inside the window.
type Player struct {
	X, Y      int
	W, H      int
	Speed     int
	Health    int
	MaxHealth int

	windowW, windowH int
}

func newPlayer(cfg config.SpaceConfig) Player {
	return Player{
		X:         cfg.Window.Width/2 - cfg.Player.Width/2,
		Y:         cfg.Window.Height - 50,
		W:         cfg.Player.Width,
		H:         cfg.Player.Height,
		Speed:     cfg.Player.Speed,
		Health:    cfg.Player.Health,
		MaxHealth: cfg.Player.Health,
		windowW:   cfg.Window.Width,
		windowH:   cfg.Window.Height,
	}
}

func (p *Player) MoveLeft()  { p.moveTo(p.X-p.Speed, p.Y) }
func (p *Player) MoveRight() { p.moveTo(p.X+p.Speed, p.Y) }
func (p *Player) MoveUp()    { p.moveTo(p.X, p.Y-p.Speed) }
func (p *Player) MoveDown()  { p.moveTo(p.X, p.Y+p.Speed) }

// moveTo places the ship, keeping it inside the window.
func (p *Player) moveTo(x, y int) {
	p.X = core.Clamp(x, 0, p.windowW-p.W)
	p.Y = core.Clamp(y, 0, p.windowH-p.H)
}

// Rect returns the ship bounds.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// TakeDamage subtracts damage and reports whether the ship survived.
func (p *Player) TakeDamage(damage int) bool {
	p.Health -= damage
	return p.Health > 0
}

// HealthFraction returns the remaining health in [0, 1].
func (p Player) HealthFraction() float64 {
	if p.MaxHealth <= 0 {
		return 0
	}
	return core.ClampF(float64(p.Health)/float64(p.MaxHealth), 0, 1)
}

// Shoot creates a bullet at the ship's top center, moving up.
func (p Player) Shoot(cfg config.SpaceBullet) Bullet {
	return Bullet{
		X:     p.X + p.W/2 - cfg.Width/2,
		Y:     p.Y,
		W:     cfg.Width,
		H:     cfg.Height,
		Speed: -cfg.Speed,
	}
}

// Bullet is a player shot.
type Bullet struct {
	X, Y  int
	W, H  int
	Speed int // pixels per frame, negative moves up
}

// Update moves the bullet one frame.
func (b *Bullet) Update() {
	b.Y += b.Speed
}

// OffScreen reports whether the bullet left the window vertically.
func (b Bullet) OffScreen(windowH int) bool {
	return b.Y < 0 || b.Y > windowH
}

// Rect returns the bullet bounds.
func (b Bullet) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, b.W, b.H)
}

// Enemy is a ship falling from the top of the screen.
type Enemy struct {
	X, Y  int
	W, H  int
	Speed int
}

// SpawnEnemy places a new enemy just above the window at a random column.
func SpawnEnemy(cfg config.SpaceConfig, rng *rand.Rand) Enemy {
	return Enemy{
		X:     rng.Intn(max(1, cfg.Window.Width-cfg.Enemy.Width+1)),
		Y:     -cfg.Enemy.Height,
		W:     cfg.Enemy.Width,
		H:     cfg.Enemy.Height,
		Speed: cfg.Enemy.Speed,
	}
}

// Update moves the enemy one frame.
func (e *Enemy) Update() {
	e.Y += e.Speed
}

// OffScreen reports whether the enemy fell past the bottom.
func (e Enemy) OffScreen(windowH int) bool {
	return e.Y > windowH
}

// Rect returns the enemy bounds.
func (e Enemy) Rect() core.Rect {
	return core.NewRect(e.X, e.Y, e.W, e.H)
}

// Explosion is a growing circle left behind by a destroyed enemy.
type Explosion struct {
	X, Y      int
	Radius    int
	Growth    int
	MaxRadius int
}

// newExplosion creates an explosion centered on the enemy.
func newExplosion(e Enemy, cfg config.SpaceExplosion) Explosion {
	x, y := e.Rect().Center()
	return Explosion{
		X:         x,
		Y:         y,
		Radius:    cfg.Radius,
		Growth:    cfg.Growth,
		MaxRadius: cfg.MaxRadius,
	}
}

// Update grows the explosion one frame.
func (x *Explosion) Update() {
	x.Radius += x.Growth
}

// Finished reports whether the animation is over.
func (x Explosion) Finished() bool {
	return x.Radius >= x.MaxRadius
}

// Rect returns the square bounding the explosion circle.
func (x Explosion) Rect() core.Rect {
	return core.NewRect(x.X-x.Radius, x.Y-x.Radius, 2*x.Radius, 2*x.Radius)
}
