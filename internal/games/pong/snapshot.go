package pong

import "math"

// Snapshot contains the complete state of a Pong session.
// Uses primitive types only for stable comparison.
type Snapshot struct {
	Tick       uint64
	Phase      int
	TwoPlayer  bool
	Paused     bool
	BallX      int
	BallY      int
	BallVX     int // Velocity scaled by 1000 (for precision)
	BallVY     int // Velocity scaled by 1000
	LeftY      int
	RightY     int
	LeftScore  int
	RightScore int
	Winner     string
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:       g.tickCount,
		Phase:      int(g.phase),
		TwoPlayer:  g.twoPlayer,
		Paused:     g.paused,
		BallX:      int(math.Round(g.ball.X)),
		BallY:      int(math.Round(g.ball.Y)),
		BallVX:     int(math.Round(g.ball.VX * 1000)),
		BallVY:     int(math.Round(g.ball.VY * 1000)),
		LeftY:      g.left.Y,
		RightY:     g.right.Y,
		LeftScore:  g.leftScore,
		RightScore: g.rightScore,
		Winner:     g.winner,
	}
}
