package pong

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/classic-arcade/internal/config"
	"github.com/vovakirdan/classic-arcade/internal/core"
)

// Paddle is a vertical bat moved by a player or the AI.
// Y is always kept within [0, windowH - H].
type Paddle struct {
	X, Y  int
	W, H  int
	Speed int

	windowH int
}

func newPaddle(x, y int, cfg config.PongConfig) Paddle {
	return Paddle{
		X:       x,
		Y:       y,
		W:       cfg.Paddle.Width,
		H:       cfg.Paddle.Height,
		Speed:   cfg.Paddle.Speed,
		windowH: cfg.Window.Height,
	}
}

// MoveUp moves the paddle up by its speed.
func (p *Paddle) MoveUp() {
	p.Y = core.Clamp(p.Y-p.Speed, 0, p.windowH-p.H)
}

// MoveDown moves the paddle down by its speed.
func (p *Paddle) MoveDown() {
	p.Y = core.Clamp(p.Y+p.Speed, 0, p.windowH-p.H)
}

// Rect returns the paddle bounds.
func (p Paddle) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// CenterY returns the paddle's vertical center.
func (p Paddle) CenterY() int {
	return p.Y + p.H/2
}

// Track steers the paddle toward the ball's vertical center, ignoring
// offsets within deadZone.
func (p *Paddle) Track(b Ball, deadZone int) {
	center := float64(p.CenterY())
	target := b.CenterY()
	if math.Abs(center-target) <= float64(deadZone) {
		return
	}
	if center < target {
		p.MoveDown()
	} else if center > target {
		p.MoveUp()
	}
}

// Ball is the square ball. Position and velocity are fractional because
// paddle deflection produces non-integer vertical speeds.
type Ball struct {
	X, Y   float64
	VX, VY float64
	Size   int
}

// Rect returns the ball bounds, truncated to whole pixels.
func (b Ball) Rect() core.Rect {
	return core.RectAt(b.X, b.Y, b.Size, b.Size)
}

// CenterY returns the ball's vertical center.
func (b Ball) CenterY() float64 {
	return b.Y + float64(b.Size/2)
}

// Serve puts the ball at the window center and picks one of the four
// diagonal directions uniformly.
func (b *Ball) Serve(cfg config.PongConfig, rng *rand.Rand) {
	b.Size = cfg.Ball.Size
	b.X = float64(cfg.Window.Width/2 - b.Size/2)
	b.Y = float64(cfg.Window.Height/2 - b.Size/2)

	b.VX = cfg.Ball.SpeedX
	if rng.Intn(2) == 0 {
		b.VX = -b.VX
	}
	b.VY = cfg.Ball.SpeedY
	if rng.Intn(2) == 0 {
		b.VY = -b.VY
	}
}

// Advance moves the ball one frame and reflects it off the top and
// bottom walls.
func (b *Ball) Advance(windowH int) {
	b.X += b.VX
	b.Y += b.VY

	if b.Y <= 0 || b.Y >= float64(windowH-b.Size) {
		b.VY = -b.VY
	}
}

// BounceOff reflects the ball off a paddle. The vertical speed depends on
// where the ball hit: the paddle center sends it straight, the edges send
// it at up to deflection pixels per frame. The horizontal speed keeps its
// magnitude but never drops below minVX.
func (b *Ball) BounceOff(p Paddle, deflection, minVX float64) {
	b.VX = -b.VX

	hit := (b.CenterY() - float64(p.CenterY())) / float64(p.H/2)
	b.VY = hit * deflection

	if math.Abs(b.VX) < minVX {
		b.VX = math.Copysign(minVX, b.VX)
	}
}

// OutLeft reports whether the ball fully left the field on the left.
func (b Ball) OutLeft() bool {
	return b.X < -float64(b.Size)
}

// OutRight reports whether the ball left the field on the right.
func (b Ball) OutRight(windowW int) bool {
	return b.X > float64(windowW)
}
