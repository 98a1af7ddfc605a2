package setutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUintSet(t *testing.T) {
	s := NewUintSet()
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Sorted())

	s.Add(7)
	s.Add(3)
	s.Add(7)
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Has(3))
	assert.False(t, s.Has(4))
	assert.Equal(t, []uint{3, 7}, s.Sorted())
}

func TestUintSet_AddPtr(t *testing.T) {
	s := NewUintSet()
	id := uint(5)

	s.AddPtr(nil)
	s.AddPtr(&id)
	s.AddPtr(&id)

	assert.Equal(t, []uint{5}, s.Sorted())
}
