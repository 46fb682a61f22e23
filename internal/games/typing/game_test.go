package typing

import (
	"slices"
	"testing"

	"github.com/vovakirdan/classic-arcade/internal/config"
	"github.com/vovakirdan/classic-arcade/internal/core"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New(config.MustDefaults().Typing)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: seed})
	return g
}

func press(actions ...core.Action) core.MultiInputFrame {
	m := core.NewMultiInputFrame()
	m.Update(core.Player1, func(f *core.InputFrame) {
		for _, a := range actions {
			f.Set(a)
		}
	})
	return m
}

// typed builds the frame a terminal produces for the given keys: every
// rune as text, and space also as Fire.
func typed(s string) core.MultiInputFrame {
	m := core.NewMultiInputFrame()
	m.Update(core.Player1, func(f *core.InputFrame) {
		for _, r := range s {
			f.Type(r)
			if r == ' ' {
				f.Set(core.ActionFire)
			}
		}
	})
	return m
}

// place puts words at the top of the field in the given spawn order.
func place(g *Game, words ...string) {
	g.words = nil
	for i, w := range words {
		g.words = append(g.words, newFallingWord(w, float64(100+i*100), 100, 1))
	}
}

func TestTypeChar(t *testing.T) {
	w := newFallingWord("Cat", 0, 0, 1)
	if w.Text != "cat" {
		t.Fatalf("Text = %q, expected lowercase", w.Text)
	}

	steps := []struct {
		r         rune
		ok        bool
		typed     int
		completed bool
	}{
		{'a', false, 0, false},
		{'c', true, 1, false},
		{'c', false, 1, false},
		{'a', true, 2, false},
		{'t', true, 3, true},
		{'t', false, 3, true},
	}

	for i, s := range steps {
		if got := w.TypeChar(s.r); got != s.ok {
			t.Errorf("step %d: TypeChar(%q) = %v, expected %v", i, s.r, got, s.ok)
		}
		if w.Typed != s.typed || w.Completed != s.completed {
			t.Errorf("step %d: typed=%d completed=%v, expected %d %v",
				i, w.Typed, w.Completed, s.typed, s.completed)
		}
	}

	w = newFallingWord("rocket", 0, 0, 1)
	w.TypeChar('r')
	w.TypeChar('o')
	if w.TypedText() != "ro" || w.RemainingText() != "cket" {
		t.Errorf("split = %q|%q, expected ro|cket", w.TypedText(), w.RemainingText())
	}
}

func TestFirstMatchingWordInSpawnOrder(t *testing.T) {
	g := newTestGame(t, 1)
	place(g, "at", "an", "go")

	g.HandleInput(typed("a"))
	if g.words[0].Typed != 1 || g.words[1].Typed != 0 {
		t.Errorf("typed = %d,%d, expected only the older word to advance",
			g.words[0].Typed, g.words[1].Typed)
	}

	// 'n' matches nothing: "at" expects 't', "an" expects 'a'.
	g.HandleInput(typed("n"))
	if g.words[0].Typed != 1 || g.words[1].Typed != 0 {
		t.Error("unmatched character should be dropped")
	}

	// A later word still gets characters the older ones do not expect.
	g.HandleInput(typed("g"))
	if g.words[2].Typed != 1 {
		t.Error("'g' should go to the only word expecting it")
	}
}

func TestCompletingWordScores(t *testing.T) {
	g := newTestGame(t, 1)
	place(g, "cat", "dog")

	g.HandleInput(typed("CAT"))

	s := g.Stats()
	if s.Score != 3 || s.WordsTyped != 1 {
		t.Errorf("score=%d typed=%d, expected 3 and 1", s.Score, s.WordsTyped)
	}
	if len(g.words) != 1 || g.words[0].Text != "dog" {
		t.Errorf("words = %+v, expected only dog left", g.words)
	}
	if len(g.input) != 0 {
		t.Errorf("input = %q, expected cleared on completion", string(g.input))
	}
	if s.Accuracy != 100 {
		t.Errorf("accuracy = %.1f, expected 100", s.Accuracy)
	}
}

func TestLevelUp(t *testing.T) {
	tests := []struct {
		name      string
		score     int
		level     int
		word      string
		wantLevel int
	}{
		{"below threshold", 25, 1, "go", 1},
		{"reaches threshold", 28, 1, "go", 2},
		{"one level per word", 58, 1, "go", 2},
		{"max level", 400, 10, "go", 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, 1)
			g.stats.Score, g.stats.Level = tt.score, tt.level
			place(g, tt.word)

			g.HandleInput(typed(tt.word))

			if g.stats.Level != tt.wantLevel {
				t.Errorf("level = %d, expected %d", g.stats.Level, tt.wantLevel)
			}
		})
	}
}

func TestMissedWordCostsLife(t *testing.T) {
	g := newTestGame(t, 1)
	place(g, "cat", "dog")
	g.words[0].Y = 600
	g.stats.WordsTyped = 1

	g.Update()

	s := g.Stats()
	if s.Lives != 2 || s.WordsMissed != 1 {
		t.Errorf("lives=%d missed=%d, expected 2 and 1", s.Lives, s.WordsMissed)
	}
	if len(g.words) != 1 || g.words[0].Text != "dog" {
		t.Errorf("words = %+v, expected the missed word removed", g.words)
	}
	if s.Accuracy != 50 {
		t.Errorf("accuracy = %.1f, expected 50", s.Accuracy)
	}
}

func TestGameOverOnNextUpdate(t *testing.T) {
	g := newTestGame(t, 1)
	place(g, "cat")
	g.stats.Lives = 1
	g.words[0].Y = 600

	g.Update()
	if g.stats.Lives != 0 || g.gameOver {
		t.Fatalf("lives=%d gameOver=%v, expected 0 and still playing", g.stats.Lives, g.gameOver)
	}

	g.Update()
	if !g.gameOver || g.State().Phase != core.PhaseGameOver {
		t.Fatal("game should end on the update after lives reach 0")
	}

	before := g.Snapshot()
	g.HandleInput(typed("abc"))
	g.Update()
	if g.Snapshot() != before {
		t.Error("nothing should change after game over")
	}
}

func TestLivesNeverNegative(t *testing.T) {
	g := newTestGame(t, 1)
	g.stats.Lives = 1
	g.words = []FallingWord{
		newFallingWord("cat", 100, 600, 1),
		newFallingWord("dog", 300, 599.5, 1.1),
	}

	g.Update()

	s := g.Stats()
	if s.Lives != 0 || s.WordsMissed != 1 {
		t.Errorf("lives=%d missed=%d, expected 0 and 1", s.Lives, s.WordsMissed)
	}
	if len(g.words) != 0 {
		t.Errorf("words = %+v, expected both landed words removed", g.words)
	}

	g.Update()
	if !g.gameOver {
		t.Fatal("game should end after the last life")
	}
	screen := core.NewScreen(80, 24)
	g.Draw(screen)
	if screen.Contains("-1") {
		t.Error("game over screen shows a negative value")
	}
}

func TestSpawnUsesDrawnScreenWidth(t *testing.T) {
	g := newTestGame(t, 5)
	if g.charW != 10 {
		t.Fatalf("charW = %v at 80 columns, expected 10", g.charW)
	}

	// After a resize to one column every word is wider than the window,
	// so it spawns at the left margin.
	g.Draw(core.NewScreen(1, 24))
	if g.charW != 800 {
		t.Fatalf("charW = %v at 1 column, expected 800", g.charW)
	}
	for i := 0; i < 5; i++ {
		g.spawnWord()
	}
	for _, w := range g.words {
		if w.X != 20 {
			t.Errorf("word %q at x=%v, expected the margin 20", w.Text, w.X)
		}
	}
}

func TestSpawnWord(t *testing.T) {
	g := newTestGame(t, 5)

	for i := 0; i < 119; i++ {
		g.Update()
	}
	if len(g.words) != 0 {
		t.Fatalf("words = %d before the spawn timer fired", len(g.words))
	}

	g.Update()
	if len(g.words) != 1 {
		t.Fatalf("words = %d, expected 1", len(g.words))
	}
	w := g.words[0]
	if !slices.Contains(g.cfg.Levels.WordsFor(1), w.Text) {
		t.Errorf("word %q is not from the level 1 list", w.Text)
	}
	if w.Y != -49 || w.Speed != 1 {
		t.Errorf("y=%v speed=%v, expected spawn at -50 then one step at speed 1", w.Y, w.Speed)
	}
	// One-letter words are 10 pixels wide at 80 columns.
	if w.X < 20 || w.X > 770 {
		t.Errorf("x = %v, outside [20,770]", w.X)
	}
}

func TestSpawnRateFollowsLevel(t *testing.T) {
	g := newTestGame(t, 5)
	g.stats.Level = 10

	for i := 0; i < 30; i++ {
		g.Update()
	}
	if len(g.words) != 1 {
		t.Fatalf("words = %d after 30 frames at level 10, expected 1", len(g.words))
	}
	if !slices.Contains(g.cfg.Levels.WordsFor(10), g.words[0].Text) {
		t.Errorf("word %q is not from the level 10 list", g.words[0].Text)
	}
}

func TestInputBuffer(t *testing.T) {
	g := newTestGame(t, 1)
	place(g, "planet")

	g.HandleInput(typed("Pl4"))
	if string(g.input) != "pl" {
		t.Errorf("input = %q, expected only accepted letters lowercased", string(g.input))
	}

	g.HandleInput(typed(string(core.EraseRune)))
	if len(g.input) != 0 {
		t.Errorf("input = %q, expected cleared by backspace", string(g.input))
	}
	if g.words[0].Typed != 2 {
		t.Errorf("typed = %d, clearing input should not reset word progress", g.words[0].Typed)
	}
}

func TestBackspaceKeepsItsPlace(t *testing.T) {
	g := newTestGame(t, 1)
	place(g, "abxy")

	g.HandleInput(typed("ab" + string(core.EraseRune) + "c"))

	if string(g.input) != "c" {
		t.Errorf("input = %q, expected only what was typed after backspace", string(g.input))
	}
	if g.words[0].Typed != 2 {
		t.Errorf("typed = %d, expected 2", g.words[0].Typed)
	}
}

func TestSpaceIsTypedWhilePlaying(t *testing.T) {
	g := newTestGame(t, 1)
	place(g, "a b")

	if !g.HandleInput(typed("a b")) {
		t.Fatal("space while playing should not quit")
	}
	if g.stats.WordsTyped != 1 {
		t.Errorf("words typed = %d, expected the word with a space to complete", g.stats.WordsTyped)
	}
}

func TestQuitAndRestart(t *testing.T) {
	g := newTestGame(t, 1)
	if g.HandleInput(press(core.ActionBack)) {
		t.Error("ESC while playing should quit")
	}

	g.gameOver = true
	g.stats.Score = 42
	g.stats.Level = 3
	g.HandleInput(typed(" "))
	if g.gameOver || g.stats.Score != 0 || g.stats.Level != 1 || g.stats.Lives != 3 {
		t.Errorf("SPACE after game over should restart, got %+v", g.Snapshot())
	}

	g.gameOver = true
	if g.HandleInput(press(core.ActionBack)) {
		t.Error("ESC after game over should quit")
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := newTestGame(t, 77)
		for i := 0; i < 2000; i++ {
			if i%25 == 0 {
				g.HandleInput(typed("asdfjkl"))
			}
			g.Update()
		}
		return g.Snapshot()
	}

	first := run()
	second := run()
	if first != second {
		t.Errorf("same seed diverged:\n  %+v\n  %+v", first, second)
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, 1)
	place(g, "rocket")
	g.words[0].X, g.words[0].Y = 300, 300
	g.words[0].TypeChar('r')
	screen := core.NewScreen(80, 24)

	g.Draw(screen)

	for _, want := range []string{
		"Level: 1", "Score: 0", "Lives: 3", "Accuracy: 100.0%", "Words: 0",
		"Next Level: 0/30", "Type the falling words! ESC: Quit, Backspace: Clear",
	} {
		if !screen.Contains(want) {
			t.Errorf("HUD missing %q", want)
		}
	}
	// (300,300) maps to column 30, row 12.
	if c := screen.GetCell(30, 12); c.Rune != 'r' || c.Color != core.ColorGreen {
		t.Errorf("typed part = %+v, expected green 'r'", c)
	}
	if c := screen.GetCell(31, 12); c.Rune != 'o' || c.Color != core.ColorWhite {
		t.Errorf("remaining part = %+v, expected white 'o'", c)
	}

	g.stats.Level = 10
	screen.Clear()
	g.Draw(screen)
	if !screen.Contains("MAX LEVEL!") {
		t.Error("level 10 should show MAX LEVEL!")
	}

	g.gameOver = true
	g.stats = Stats{Level: 4, Score: 95, WordsTyped: 30, WordsMissed: 3, Accuracy: 90.9090}
	screen.Clear()
	g.Draw(screen)
	for _, want := range []string{
		"GAME OVER", "Final Score: 95", "Level Reached: 4", "Accuracy: 90.9%",
		"Words Typed: 30", "Press SPACE to play again, ESC to quit",
	} {
		if !screen.Contains(want) {
			t.Errorf("game over screen missing %q", want)
		}
	}
}
