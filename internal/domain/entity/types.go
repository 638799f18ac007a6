package entity

// EntityID is a unique identifier for an entity.
type EntityID uint32

// Rect is an axis-aligned rectangle in logical pixels.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (px, py) lies inside r, edges included.
func (r Rect) Contains(px, py float64) bool {
	return px >= r.X && px <= r.X+r.W && py >= r.Y && py <= r.Y+r.H
}

// Center returns the rectangle's midpoint.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// WithinRadius reports whether (px, py) is strictly closer than radius to (cx, cy).
func WithinRadius(px, py, cx, cy, radius float64) bool {
	dx := px - cx
	dy := py - cy
	return dx*dx+dy*dy < radius*radius
}

// Cell is a position on a tile grid.
type Cell struct {
	Col, Row int
}

// Grid is a fixed-size tile board.
type Grid struct {
	Cols, Rows int
}

// InBounds reports whether c lies on the grid.
func (g Grid) InBounds(c Cell) bool {
	return c.Col >= 0 && c.Col < g.Cols && c.Row >= 0 && c.Row < g.Rows
}

// Adjacent reports whether a and b share an edge.
func Adjacent(a, b Cell) bool {
	return Manhattan(a, b) == 1
}

// Manhattan returns the grid distance between a and b.
func Manhattan(a, b Cell) int {
	return abs(a.Col-b.Col) + abs(a.Row-b.Row)
}

// Neighbors returns the in-bounds cells orthogonally adjacent to c.
func (g Grid) Neighbors(c Cell) []Cell {
	candidates := [4]Cell{
		{c.Col + 1, c.Row},
		{c.Col - 1, c.Row},
		{c.Col, c.Row + 1},
		{c.Col, c.Row - 1},
	}
	out := make([]Cell, 0, 4)
	for _, n := range candidates {
		if g.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
