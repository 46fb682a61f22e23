package registry_test

import (
	"testing"

	"github.com/vovakirdan/classic-arcade/internal/config"
	_ "github.com/vovakirdan/classic-arcade/internal/games/pong"
	_ "github.com/vovakirdan/classic-arcade/internal/games/snake"
	_ "github.com/vovakirdan/classic-arcade/internal/games/spacecombat"
	_ "github.com/vovakirdan/classic-arcade/internal/games/typing"
	"github.com/vovakirdan/classic-arcade/internal/registry"
)

func TestListSortedByID(t *testing.T) {
	games := registry.List()

	want := []struct{ id, title string }{
		{config.PongID, "Pong"},
		{config.SnakeID, "Snake"},
		{config.SpaceID, "Space Combat"},
		{config.TypingID, "Typing Rain"},
	}
	if len(games) != len(want) {
		t.Fatalf("List returned %d games, expected %d", len(games), len(want))
	}
	for i, w := range want {
		if games[i].ID != w.id || games[i].Title != w.title {
			t.Errorf("games[%d] = %s/%q, expected %s/%q", i, games[i].ID, games[i].Title, w.id, w.title)
		}
		if len(games[i].Controls) == 0 {
			t.Errorf("%s has no controls listed", w.id)
		}
	}
}

func TestCreate(t *testing.T) {
	bundle := config.MustDefaults()
	for _, info := range registry.List() {
		g, err := registry.Create(info.ID, bundle)
		if err != nil {
			t.Fatalf("Create(%q): %v", info.ID, err)
		}
		if g.ID() != info.ID {
			t.Errorf("Create(%q).ID() = %q", info.ID, g.ID())
		}
		if g.TickRate() <= 0 {
			t.Errorf("%s tick rate = %d, expected positive", info.ID, g.TickRate())
		}
	}
}

func TestCreateReturnsFreshInstances(t *testing.T) {
	bundle := config.MustDefaults()
	a, _ := registry.Create(config.SnakeID, bundle)
	b, _ := registry.Create(config.SnakeID, bundle)
	if a == b {
		t.Error("Create returned the same instance twice")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := registry.Create("pacman", config.MustDefaults()); err == nil {
		t.Error("expected error for unknown game")
	}
	if registry.Exists("pacman") {
		t.Error("Exists(pacman) = true")
	}
	if !registry.Exists(config.TypingID) {
		t.Error("Exists(typing) = false")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	registry.Register(config.PongID, func(config.Bundle) registry.Game { return nil })
}
