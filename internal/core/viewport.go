package core

import "math"

// Viewport maps world coordinates (the games simulate in window pixels, or
// grid cells for Snake) onto terminal cells. Simulation never depends on it;
// only rendering and text measurement do.
type Viewport struct {
	worldW, worldH   int
	screenW, screenH int
}

// NewViewport creates a viewport that stretches a worldW x worldH world over
// a screenW x screenH cell area.
func NewViewport(worldW, worldH, screenW, screenH int) Viewport {
	return Viewport{
		worldW:  max(1, worldW),
		worldH:  max(1, worldH),
		screenW: max(0, screenW),
		screenH: max(0, screenH),
	}
}

// X converts a world x-coordinate into a screen column.
func (v Viewport) X(wx float64) int {
	return int(math.Floor(wx * float64(v.screenW) / float64(v.worldW)))
}

// Y converts a world y-coordinate into a screen row.
func (v Viewport) Y(wy float64) int {
	return int(math.Floor(wy * float64(v.screenH) / float64(v.worldH)))
}

// Rect converts a world rectangle into the cells it covers.
// A non-empty world rectangle always covers at least one cell.
func (v Viewport) Rect(r Rect) Rect {
	x0 := v.X(float64(r.X))
	y0 := v.Y(float64(r.Y))
	x1 := v.X(float64(r.Right()))
	y1 := v.Y(float64(r.Bottom()))
	return Rect{X: x0, Y: y0, W: max(1, x1-x0), H: max(1, y1-y0)}
}

// ColumnWidth returns how many world units one screen column spans.
// Text is one rune per column, so this is the world width of a character.
func (v Viewport) ColumnWidth() float64 {
	if v.screenW == 0 {
		return float64(v.worldW)
	}
	return float64(v.worldW) / float64(v.screenW)
}
