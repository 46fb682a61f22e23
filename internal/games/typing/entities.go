package typing

import (
	"strings"
	"unicode/utf8"
)

// FallingWord is a word dropping from the top of the screen. Typed counts
// the leading characters already typed correctly.
type FallingWord struct {
	Text      string
	X, Y      float64
	Speed     float64
	Typed     int
	Completed bool
}

func newFallingWord(text string, x, y, speed float64) FallingWord {
	return FallingWord{
		Text:  strings.ToLower(text),
		X:     x,
		Y:     y,
		Speed: speed,
	}
}

// Update moves the word down one frame.
func (w *FallingWord) Update() {
	w.Y += w.Speed
}

// OffScreen reports whether the word fell past the bottom of the window.
func (w FallingWord) OffScreen(windowH int) bool {
	return w.Y > float64(windowH)
}

// Len returns the word length in characters.
func (w FallingWord) Len() int {
	return utf8.RuneCountInString(w.Text)
}

// TypeChar offers one character to the word. It reports whether r was
// the next expected character; a match advances the typed prefix and may
// complete the word.
func (w *FallingWord) TypeChar(r rune) bool {
	if w.Completed {
		return false
	}
	runes := []rune(w.Text)
	if w.Typed >= len(runes) || runes[w.Typed] != r {
		return false
	}
	w.Typed++
	if w.Typed >= len(runes) {
		w.Completed = true
	}
	return true
}

// TypedText returns the part of the word already typed.
func (w FallingWord) TypedText() string {
	return string([]rune(w.Text)[:w.Typed])
}

// RemainingText returns the part of the word still to type.
func (w FallingWord) RemainingText() string {
	return string([]rune(w.Text)[w.Typed:])
}

// Stats tracks the player's progress through a session.
type Stats struct {
	Level       int
	Score       int
	Lives       int
	WordsTyped  int
	WordsMissed int
	Accuracy    float64 // percent of finished words that were typed
}

// NewStats returns the stats of a fresh session.
func NewStats(lives int) Stats {
	return Stats{
		Level:    1,
		Lives:    lives,
		Accuracy: 100,
	}
}

// AddScore credits a completed word of the given length.
func (s *Stats) AddScore(length, perChar int) {
	s.Score += length * perChar
	s.WordsTyped++
	s.updateAccuracy()
}

// MissWord records a word that reached the bottom untyped.
func (s *Stats) MissWord() {
	s.Lives--
	s.WordsMissed++
	s.updateAccuracy()
}

func (s *Stats) updateAccuracy() {
	if total := s.WordsTyped + s.WordsMissed; total > 0 {
		s.Accuracy = float64(s.WordsTyped) / float64(total) * 100
	}
}

// Out reports whether the player has no lives left.
func (s Stats) Out() bool {
	return s.Lives <= 0
}
