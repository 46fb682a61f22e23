package spacecombat

// Snapshot contains the complete state of a Space Combat session.
// Uses primitive types only for stable comparison.
type Snapshot struct {
	Tick       uint64
	Score      int
	Health     int
	PlayerX    int
	PlayerY    int
	Bullets    int
	Enemies    int
	Explosions int
	SpawnTimer int
	Cooldown   int
	GameOver   bool
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:       g.tickCount,
		Score:      g.score,
		Health:     g.player.Health,
		PlayerX:    g.player.X,
		PlayerY:    g.player.Y,
		Bullets:    len(g.bullets),
		Enemies:    len(g.enemies),
		Explosions: len(g.explosions),
		SpawnTimer: g.spawnTimer,
		Cooldown:   g.shootCooldown,
		GameOver:   g.gameOver,
	}
}
