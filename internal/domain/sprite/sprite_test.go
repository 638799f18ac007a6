package sprite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAll_Unique(t *testing.T) {
	seen := make(map[ID]bool)
	for _, id := range All {
		assert.False(t, seen[id], "duplicate sprite %q", id)
		seen[id] = true
	}
	assert.Len(t, All, 66)
}

func TestKnown(t *testing.T) {
	assert.True(t, Known(Hikari))
	assert.True(t, Known(CoursePoop))
	assert.False(t, Known(ID("dragon")))
	assert.False(t, Known(ID("")))
}
