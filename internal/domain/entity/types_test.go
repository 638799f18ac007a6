package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 100, H: 50}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"left of", 9.9, 40, false},
		{"below", 50, 70.1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Contains(tt.x, tt.y))
		})
	}
}

func TestRect_Center(t *testing.T) {
	x, y := Rect{X: 0, Y: 10, W: 40, H: 20}.Center()
	assert.Equal(t, 20.0, x)
	assert.Equal(t, 20.0, y)
	assert.True(t, Rect{}.Empty())
}

func TestWithinRadius(t *testing.T) {
	assert.True(t, WithinRadius(3, 4, 0, 0, 5.01))
	assert.False(t, WithinRadius(3, 4, 0, 0, 5))
}

func TestGrid_Neighbors(t *testing.T) {
	g := Grid{Cols: 5, Rows: 6}

	assert.Len(t, g.Neighbors(Cell{0, 0}), 2)
	assert.Len(t, g.Neighbors(Cell{2, 3}), 4)
	assert.Len(t, g.Neighbors(Cell{4, 5}), 2)
	assert.ElementsMatch(t, []Cell{{1, 0}, {0, 1}}, g.Neighbors(Cell{0, 0}))
}

func TestGrid_InBounds(t *testing.T) {
	g := Grid{Cols: 5, Rows: 6}
	assert.True(t, g.InBounds(Cell{4, 5}))
	assert.False(t, g.InBounds(Cell{5, 0}))
	assert.False(t, g.InBounds(Cell{0, -1}))
}

func TestAdjacent(t *testing.T) {
	assert.True(t, Adjacent(Cell{1, 1}, Cell{1, 2}))
	assert.False(t, Adjacent(Cell{1, 1}, Cell{2, 2}))
	assert.False(t, Adjacent(Cell{1, 1}, Cell{1, 1}))
	assert.Equal(t, 3, Manhattan(Cell{0, 0}, Cell{2, 1}))
}
