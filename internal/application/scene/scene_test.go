package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type clickCounter struct {
	Base
	clicks int
}

func (c *clickCounter) OnClick(x, y float64) { c.clicks++ }

func TestBase_SatisfiesScene(t *testing.T) {
	var s Scene = Base{}
	assert.NotPanics(t, func() {
		s.OnEnter()
		assert.NoError(t, s.Update(0.016))
		s.OnClick(1, 2)
		s.OnDragStart(1, 2)
		s.OnDragMove(1, 2)
		s.OnDragEnd(1, 2)
		s.Cleanup()
		s.Cleanup()
	})
}

func TestBase_EmbeddingOverrides(t *testing.T) {
	c := &clickCounter{}
	var s Scene = c

	s.OnClick(0, 0)
	s.OnDragEnd(0, 0)
	s.OnClick(0, 0)

	assert.Equal(t, 2, c.clicks)
}
