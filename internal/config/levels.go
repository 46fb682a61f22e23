package config

// The typing level curve. Every value is a pure function of the level, so
// fall speed and spawn interval never drift from the level they belong to.

// ClampLevel restricts level to [1, MaxLevel].
func (l TypingLevels) ClampLevel(level int) int {
	return max(1, min(level, max(1, l.MaxLevel)))
}

// FallSpeed returns the word fall speed in pixels per frame for a level.
func (l TypingLevels) FallSpeed(level int) float64 {
	return l.BaseFallSpeed + float64(l.ClampLevel(level)-1)*l.FallSpeedStep
}

// SpawnRate returns the frames between word spawns for a level,
// floored at MinSpawnRate.
func (l TypingLevels) SpawnRate(level int) int {
	rate := l.BaseSpawnRate - (l.ClampLevel(level)-1)*l.SpawnRateStep
	return max(l.MinSpawnRate, rate)
}

// ShouldLevelUp reports whether score is enough to leave level.
func (l TypingLevels) ShouldLevelUp(score, level int) bool {
	return score >= level*l.LevelUpScore && level < l.MaxLevel
}

// NextLevelScore returns the score that triggers the next level.
func (l TypingLevels) NextLevelScore(level int) int {
	return level * l.LevelUpScore
}

// Progress returns how far score is towards the next level, in [0, 1].
// The last level always reports 1.
func (l TypingLevels) Progress(score, level int) float64 {
	if level >= l.MaxLevel {
		return 1
	}
	next := l.NextLevelScore(level)
	if next <= 0 {
		return 1
	}
	return min(float64(score)/float64(next), 1)
}

// WordsFor returns the word list for a level. Levels past the last list
// reuse it.
func (l TypingLevels) WordsFor(level int) []string {
	if len(l.Words) == 0 {
		return nil
	}
	i := min(l.ClampLevel(level), len(l.Words)) - 1
	return l.Words[i]
}
