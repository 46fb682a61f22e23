package typing

import "math"

// Snapshot contains the complete state of a Typing Rain session.
// Uses primitive types only for stable comparison.
type Snapshot struct {
	Tick        uint64
	Level       int
	Score       int
	Lives       int
	WordsTyped  int
	WordsMissed int
	Words       int
	FirstWord   string
	FirstY      int // y scaled by 1000
	SpawnTimer  int
	Input       string
	GameOver    bool
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:        g.tickCount,
		Level:       g.stats.Level,
		Score:       g.stats.Score,
		Lives:       g.stats.Lives,
		WordsTyped:  g.stats.WordsTyped,
		WordsMissed: g.stats.WordsMissed,
		Words:       len(g.words),
		SpawnTimer:  g.spawnTimer,
		Input:       string(g.input),
		GameOver:    g.gameOver,
	}
	if len(g.words) > 0 {
		s.FirstWord = g.words[0].Text
		s.FirstY = int(math.Round(g.words[0].Y * 1000))
	}
	return s
}
