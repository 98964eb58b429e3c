package layers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetGetDelete(t *testing.T) {
	s := New(16, 16)
	s.Set(2, 5, 3, "minecraft:stone")

	id, ok := s.Get(2, 5, 3)
	require.True(t, ok)
	assert.Equal(t, "minecraft:stone", id)
	assert.Equal(t, []int{5}, s.Ys())
	assert.Equal(t, 1, s.Count())

	s.Delete(2, 5, 3)
	_, ok = s.Get(2, 5, 3)
	assert.False(t, ok)
	assert.Empty(t, s.Layers, "empty layers are dropped")
}

func TestSetAirRemoves(t *testing.T) {
	s := New(4, 4)
	s.Set(1, 1, 1, "minecraft:dirt")
	s.Set(1, 1, 1, "minecraft:air")
	assert.Equal(t, 0, s.Count())
	assert.Nil(t, s.Layer(1))
}

func TestSetOutsideVerticalRangeIsHeld(t *testing.T) {
	s := New(4, 4)
	s.Set(0, 400, 0, "minecraft:stone")
	id, ok := s.Get(0, 400, 0)
	require.True(t, ok)
	assert.Equal(t, "minecraft:stone", id)
	assert.False(t, InRange(400))
}

func TestClampY(t *testing.T) {
	assert.Equal(t, 0, ClampY(-3))
	assert.Equal(t, 319, ClampY(400))
	assert.Equal(t, 42, ClampY(42))
	assert.True(t, InRange(0))
	assert.True(t, InRange(319))
	assert.False(t, InRange(320))
	assert.False(t, InRange(-1))
}

func TestEachOrder(t *testing.T) {
	s := New(8, 8)
	s.Set(1, 2, 0, "b")
	s.Set(0, 2, 1, "c")
	s.Set(0, 2, 0, "a")
	s.Set(0, 0, 5, "z")

	var got []string
	s.Each(func(x, y, z int, id string) {
		got = append(got, id)
	})
	assert.Equal(t, []string{"z", "a", "b", "c"}, got)
}

func TestCloneIsDeep(t *testing.T) {
	s := New(8, 8)
	s.Set(1, 1, 1, "minecraft:glass")
	c := s.Clone()
	c.Set(2, 1, 2, "minecraft:sand")
	assert.Equal(t, 1, s.Count())
	assert.Equal(t, 2, c.Count())
	assert.Equal(t, map[string]int{"minecraft:glass": 1, "minecraft:sand": 1}, c.Histogram())
}

func TestInBounds(t *testing.T) {
	s := New(3, 2)
	assert.True(t, s.InBounds(2, 1))
	assert.False(t, s.InBounds(3, 1))
	assert.False(t, s.InBounds(0, 2))
	assert.False(t, s.InBounds(-1, 0))
}
