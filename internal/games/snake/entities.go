package snake

import "math/rand"

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Delta returns the grid step for one move in this direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Point represents a grid cell.
type Point struct {
	X, Y int
}

// Add returns p moved one step in direction d.
func (p Point) Add(d Direction) Point {
	dx, dy := d.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Snake is the player. Body is never empty and the head is Body[0].
type Snake struct {
	Body []Point
	Dir  Direction
	Next Direction // buffered direction, applied on the next move
}

// NewSnake creates a one-cell snake heading right.
func NewSnake(start Point) *Snake {
	return &Snake{
		Body: []Point{start},
		Dir:  DirRight,
		Next: DirRight,
	}
}

// Head returns the head cell.
func (s *Snake) Head() Point {
	return s.Body[0]
}

// ChangeDirection buffers d for the next move unless it would reverse
// the snake onto itself.
func (s *Snake) ChangeDirection(d Direction) {
	if d != s.Dir.Opposite() {
		s.Next = d
	}
}

// Move applies the buffered direction and inserts the new head.
// The tail stays until Shrink is called, so the snake grows by default.
func (s *Snake) Move() {
	s.Dir = s.Next
	head := s.Head().Add(s.Dir)
	s.Body = append(s.Body, Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = head
}

// Shrink removes the tail cell, keeping at least the head.
func (s *Snake) Shrink() {
	if len(s.Body) > 1 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

// HitsWall reports whether the head left a cols x rows grid.
func (s *Snake) HitsWall(cols, rows int) bool {
	h := s.Head()
	return h.X < 0 || h.X >= cols || h.Y < 0 || h.Y >= rows
}

// HitsSelf reports whether the head overlaps any other body cell.
func (s *Snake) HitsSelf() bool {
	head := s.Head()
	for _, p := range s.Body[1:] {
		if p == head {
			return true
		}
	}
	return false
}

// Occupies reports whether p is part of the body.
func (s *Snake) Occupies(p Point) bool {
	for _, b := range s.Body {
		if b == p {
			return true
		}
	}
	return false
}

// Food is the pellet the snake eats.
type Food struct {
	Pos Point
}

// NoFood marks a grid without a free cell.
var NoFood = Point{X: -1, Y: -1}

// Regenerate moves the food to a uniformly random cell outside the snake,
// re-rolling until one is found. A completely filled grid gets NoFood.
func (f *Food) Regenerate(s *Snake, cols, rows int, rng *rand.Rand) {
	if len(s.Body) >= cols*rows {
		f.Pos = NoFood
		return
	}
	for {
		p := Point{X: rng.Intn(cols), Y: rng.Intn(rows)}
		if !s.Occupies(p) {
			f.Pos = p
			return
		}
	}
}
