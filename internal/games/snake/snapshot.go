package snake

// Snapshot contains the complete state of a Snake session.
// Uses primitive types only for stable comparison.
type Snapshot struct {
	Tick     uint64
	Score    int
	SnakeLen int
	HeadX    int
	HeadY    int
	Dir      int
	FoodX    int
	FoodY    int
	GameOver bool
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	head := g.snake.Head()
	return Snapshot{
		Tick:     g.tickCount,
		Score:    g.score,
		SnakeLen: len(g.snake.Body),
		HeadX:    head.X,
		HeadY:    head.Y,
		Dir:      int(g.snake.Dir),
		FoodX:    g.food.Pos.X,
		FoodY:    g.food.Pos.Y,
		GameOver: g.gameOver,
	}
}
