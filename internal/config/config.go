// Package config provides YAML/TOML game configuration loading and the
// typing level curve for the arcade games.
package config

import (
	"errors"
	"fmt"
)

// Window describes the simulated play field and its frame rate.
type Window struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
	FPS    int `yaml:"fps" toml:"fps"`
}

// PongConfig contains all configuration for Pong.
type PongConfig struct {
	Window   Window       `yaml:"window" toml:"window"`
	Paddle   PongPaddle   `yaml:"paddle" toml:"paddle"`
	Ball     PongBall     `yaml:"ball" toml:"ball"`
	Gameplay PongGameplay `yaml:"gameplay" toml:"gameplay"`
}

// PongPaddle defines paddle geometry and speed.
type PongPaddle struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
	Speed  int `yaml:"speed" toml:"speed"`
	Margin int `yaml:"margin" toml:"margin"` // distance from the screen edge
}

// PongBall defines ball size and serve speed.
type PongBall struct {
	Size       int     `yaml:"size" toml:"size"`
	SpeedX     float64 `yaml:"speed_x" toml:"speed_x"`
	SpeedY     float64 `yaml:"speed_y" toml:"speed_y"`
	MinSpeedX  float64 `yaml:"min_speed_x" toml:"min_speed_x"`
	Deflection float64 `yaml:"deflection" toml:"deflection"` // max |vy| after a paddle hit
}

// PongGameplay defines scoring and AI behavior.
type PongGameplay struct {
	WinScore   int `yaml:"win_score" toml:"win_score"`
	AIDeadZone int `yaml:"ai_dead_zone" toml:"ai_dead_zone"`
}

// SnakeConfig contains all configuration for Snake.
type SnakeConfig struct {
	Window   Window        `yaml:"window" toml:"window"`
	Grid     SnakeGrid     `yaml:"grid" toml:"grid"`
	Gameplay SnakeGameplay `yaml:"gameplay" toml:"gameplay"`
}

// SnakeGrid defines the cell size the window is divided into.
type SnakeGrid struct {
	CellSize int `yaml:"cell_size" toml:"cell_size"`
}

// SnakeGameplay defines scoring.
type SnakeGameplay struct {
	FoodPoints int `yaml:"food_points" toml:"food_points"`
}

// Columns returns the grid width in cells.
func (c SnakeConfig) Columns() int {
	return c.Window.Width / c.Grid.CellSize
}

// Rows returns the grid height in cells.
func (c SnakeConfig) Rows() int {
	return c.Window.Height / c.Grid.CellSize
}

// SpaceConfig contains all configuration for Space Combat.
type SpaceConfig struct {
	Window    Window         `yaml:"window" toml:"window"`
	Player    SpacePlayer    `yaml:"player" toml:"player"`
	Bullet    SpaceBullet    `yaml:"bullet" toml:"bullet"`
	Enemy     SpaceEnemy     `yaml:"enemy" toml:"enemy"`
	Explosion SpaceExplosion `yaml:"explosion" toml:"explosion"`
}

// SpacePlayer defines the player ship.
type SpacePlayer struct {
	Width           int `yaml:"width" toml:"width"`
	Height          int `yaml:"height" toml:"height"`
	Speed           int `yaml:"speed" toml:"speed"`
	Health          int `yaml:"health" toml:"health"`
	ShootCooldown   int `yaml:"shoot_cooldown" toml:"shoot_cooldown"` // frames between shots
	CollisionDamage int `yaml:"collision_damage" toml:"collision_damage"`
}

// SpaceBullet defines player bullets.
type SpaceBullet struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
	Speed  int `yaml:"speed" toml:"speed"`
}

// SpaceEnemy defines enemies and their spawn timer.
type SpaceEnemy struct {
	Width     int `yaml:"width" toml:"width"`
	Height    int `yaml:"height" toml:"height"`
	Speed     int `yaml:"speed" toml:"speed"`
	SpawnRate int `yaml:"spawn_rate" toml:"spawn_rate"` // frames between spawns
	Points    int `yaml:"points" toml:"points"`
}

// SpaceExplosion defines the explosion animation.
type SpaceExplosion struct {
	Radius    int `yaml:"radius" toml:"radius"`
	Growth    int `yaml:"growth" toml:"growth"`
	MaxRadius int `yaml:"max_radius" toml:"max_radius"`
}

// TypingConfig contains all configuration for Typing Rain.
type TypingConfig struct {
	Window   Window         `yaml:"window" toml:"window"`
	Gameplay TypingGameplay `yaml:"gameplay" toml:"gameplay"`
	Levels   TypingLevels   `yaml:"levels" toml:"levels"`
}

// TypingGameplay defines lives, scoring and word placement.
type TypingGameplay struct {
	Lives        int `yaml:"lives" toml:"lives"`
	ScorePerChar int `yaml:"score_per_char" toml:"score_per_char"`
	SpawnY       int `yaml:"spawn_y" toml:"spawn_y"`
	Margin       int `yaml:"margin" toml:"margin"` // horizontal spawn margin
}

// TypingLevels defines the level curve. See levels.go.
type TypingLevels struct {
	LevelUpScore  int        `yaml:"level_up_score" toml:"level_up_score"`
	MaxLevel      int        `yaml:"max_level" toml:"max_level"`
	BaseFallSpeed float64    `yaml:"base_fall_speed" toml:"base_fall_speed"`
	FallSpeedStep float64    `yaml:"fall_speed_step" toml:"fall_speed_step"`
	BaseSpawnRate int        `yaml:"base_spawn_rate" toml:"base_spawn_rate"`
	SpawnRateStep int        `yaml:"spawn_rate_step" toml:"spawn_rate_step"`
	MinSpawnRate  int        `yaml:"min_spawn_rate" toml:"min_spawn_rate"`
	Words         [][]string `yaml:"words" toml:"words"` // one list per level, level 1 first
}

// Bundle holds the configuration of every game. It is loaded once at
// startup and handed to the game constructors.
type Bundle struct {
	Pong   PongConfig
	Snake  SnakeConfig
	Space  SpaceConfig
	Typing TypingConfig
}

// Validate checks the bundle for values the games cannot run with.
func (b Bundle) Validate() error {
	var errs []error
	check := func(game string, w Window) {
		if w.Width <= 0 || w.Height <= 0 {
			errs = append(errs, fmt.Errorf("%s: window must be positive, got %dx%d", game, w.Width, w.Height))
		}
		if w.FPS <= 0 {
			errs = append(errs, fmt.Errorf("%s: fps must be positive, got %d", game, w.FPS))
		}
	}
	check("pong", b.Pong.Window)
	check("snake", b.Snake.Window)
	check("spacecombat", b.Space.Window)
	check("typing", b.Typing.Window)

	if b.Pong.Gameplay.WinScore <= 0 {
		errs = append(errs, errors.New("pong: win_score must be positive"))
	}
	if b.Pong.Paddle.Height < 2 {
		errs = append(errs, errors.New("pong: paddle height must be at least 2"))
	}
	if b.Snake.Grid.CellSize <= 0 || b.Snake.Columns() < 2 || b.Snake.Rows() < 2 {
		errs = append(errs, errors.New("snake: grid must be at least 2x2 cells"))
	}
	if b.Space.Enemy.SpawnRate <= 0 || b.Space.Enemy.Width > b.Space.Window.Width {
		errs = append(errs, errors.New("spacecombat: enemy spawn_rate must be positive and enemies must fit the window"))
	}
	if b.Typing.Levels.MaxLevel < 1 || len(b.Typing.Levels.Words) == 0 {
		errs = append(errs, errors.New("typing: max_level and words are required"))
	}
	for i, words := range b.Typing.Levels.Words {
		if len(words) == 0 {
			errs = append(errs, fmt.Errorf("typing: level %d has no words", i+1))
		}
	}
	if b.Typing.Levels.MinSpawnRate <= 0 {
		errs = append(errs, errors.New("typing: min_spawn_rate must be positive"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
