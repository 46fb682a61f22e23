package config

import (
	"math"
	"testing"
)

func TestShouldLevelUp(t *testing.T) {
	l := MustDefaults().Typing.Levels

	tests := []struct {
		score, level int
		want         bool
	}{
		{0, 1, false},
		{29, 1, false},
		{30, 1, true},
		{59, 2, false},
		{60, 2, true},
		{270, 9, true},
		{1000, 10, false}, // capped at max level
	}
	for _, tt := range tests {
		if got := l.ShouldLevelUp(tt.score, tt.level); got != tt.want {
			t.Errorf("ShouldLevelUp(%d, %d) = %v, expected %v", tt.score, tt.level, got, tt.want)
		}
	}
}

func TestFallSpeedAndSpawnRate(t *testing.T) {
	l := MustDefaults().Typing.Levels

	tests := []struct {
		level int
		speed float64
		rate  int
	}{
		{1, 1.0, 120},
		{2, 1.1, 110},
		{5, 1.4, 80},
		{10, 1.9, 30},
		{42, 1.9, 30}, // clamped to max level
	}
	for _, tt := range tests {
		if got := l.FallSpeed(tt.level); math.Abs(got-tt.speed) > 1e-9 {
			t.Errorf("FallSpeed(%d) = %f, expected %f", tt.level, got, tt.speed)
		}
		if got := l.SpawnRate(tt.level); got != tt.rate {
			t.Errorf("SpawnRate(%d) = %d, expected %d", tt.level, got, tt.rate)
		}
		// Pure functions: the same level always yields the same values
		if l.FallSpeed(tt.level) != l.FallSpeed(tt.level) || l.SpawnRate(tt.level) != l.SpawnRate(tt.level) {
			t.Errorf("level %d curve is not deterministic", tt.level)
		}
	}
}

func TestSpawnRateFloor(t *testing.T) {
	l := TypingLevels{MaxLevel: 20, BaseSpawnRate: 120, SpawnRateStep: 10, MinSpawnRate: 30}
	if got := l.SpawnRate(20); got != 30 {
		t.Errorf("SpawnRate(20) = %d, expected floor 30", got)
	}
}

func TestWordsFor(t *testing.T) {
	l := MustDefaults().Typing.Levels

	if got := l.WordsFor(1); len(got) != 9 || got[0] != "a" {
		t.Errorf("WordsFor(1) = %v, expected home row", got)
	}
	if got := l.WordsFor(10); got[5] != "programming" {
		t.Errorf("WordsFor(10) = %v", got)
	}
	if got := l.WordsFor(0); got[0] != "a" {
		t.Errorf("WordsFor(0) should clamp to level 1, got %v", got)
	}
}

func TestProgress(t *testing.T) {
	l := MustDefaults().Typing.Levels

	if got := l.Progress(15, 1); got != 0.5 {
		t.Errorf("Progress(15, 1) = %f, expected 0.5", got)
	}
	if got := l.Progress(100, 1); got != 1 {
		t.Errorf("Progress should cap at 1, got %f", got)
	}
	if got := l.Progress(0, 10); got != 1 {
		t.Errorf("Progress at max level = %f, expected 1", got)
	}
}
