package config

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

//go:embed defaults/spacecombat.yaml
var defaultSpaceYAML []byte

//go:embed defaults/typing.yaml
var defaultTypingYAML []byte

// Game IDs used for config file names.
const (
	PongID   = "pong"
	SnakeID  = "snake"
	SpaceID  = "spacecombat"
	TypingID = "typing"
)

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case PongID:
		return defaultPongYAML
	case SnakeID:
		return defaultSnakeYAML
	case SpaceID:
		return defaultSpaceYAML
	case TypingID:
		return defaultTypingYAML
	default:
		return nil
	}
}

// Defaults returns the bundle decoded from the embedded default files.
func Defaults() (Bundle, error) {
	var b Bundle
	for _, t := range b.targets() {
		if err := yaml.Unmarshal(GetDefaultYAML(t.id), t.dst); err != nil {
			return Bundle{}, fmt.Errorf("config: embedded %s defaults: %w", t.id, err)
		}
	}
	return b, nil
}

// MustDefaults is like Defaults but panics if the embedded files are broken.
// Intended for tests and standalone entry points.
func MustDefaults() Bundle {
	b, err := Defaults()
	if err != nil {
		panic(err)
	}
	return b
}

// target binds a game ID to its section of a Bundle.
type target struct {
	id   string
	dst  any
	load func(path string) error
}

func bind[T any](id string, dst *T) target {
	return target{
		id:  id,
		dst: dst,
		load: func(path string) error {
			// Decode into a copy so a broken file leaves dst untouched.
			scratch := *dst
			if err := DecodeFile(path, &scratch); err != nil {
				return err
			}
			*dst = scratch
			return nil
		},
	}
}

func (b *Bundle) targets() []target {
	return []target{
		bind(PongID, &b.Pong),
		bind(SnakeID, &b.Snake),
		bind(SpaceID, &b.Space),
		bind(TypingID, &b.Typing),
	}
}
