package world

import (
	"testing"

	"github.com/Wayner84/minecraft-schematic-studio/define"
	"github.com/Wayner84/minecraft-schematic-studio/layers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAndGetBlock(t *testing.T) {
	w := New()
	stone := define.BlockDescribe{Name: "minecraft:stone"}
	w.SetBlock(17, 40, -3, stone)

	blk, ok := w.Block(17, 40, -3)
	require.True(t, ok)
	assert.Equal(t, stone, blk)
	_, ok = w.Block(17, 41, -3)
	assert.False(t, ok)

	require.Contains(t, w.Chunks, ChunkPos{1, -1})
	assert.Equal(t, 1, w.Stats().Blocks)
}

func TestSetBlockIgnoresVerticalRange(t *testing.T) {
	w := New()
	w.SetBlock(0, 320, 0, define.BlockDescribe{Name: "minecraft:stone"})
	w.SetBlock(0, -1, 0, define.BlockDescribe{Name: "minecraft:stone"})
	assert.Empty(t, w.Chunks)
	_, ok := w.Block(0, 320, 0)
	assert.False(t, ok)
}

func TestSetAirClears(t *testing.T) {
	w := New()
	w.SetBlock(3, 3, 3, define.BlockDescribe{Name: "minecraft:dirt"})
	w.SetBlock(3, 3, 3, define.BlockDescribe{Name: define.AirBlockName})
	_, ok := w.Block(3, 3, 3)
	assert.False(t, ok)
	assert.Equal(t, 0, w.Stats().Blocks)
}

func TestSectionTurnsDense(t *testing.T) {
	s := NewSection()
	n := 0
	for y := uint8(0); y < 2; y++ {
		for z := uint8(0); z < 16; z++ {
			for x := uint8(0); x < 16; x++ {
				s.Set(x, y, z, uint32(1+n%3))
				n++
			}
		}
	}
	require.True(t, s.Dense())
	assert.Equal(t, 512, s.Count())
	assert.Equal(t, uint32(1+(16*16+5)%3), s.Get(5, 1, 0))

	s.Set(5, 1, 0, airID)
	assert.Equal(t, 511, s.Count())
	visited := 0
	s.Each(func(x, y, z uint8, id uint32) { visited++ })
	assert.Equal(t, 511, visited)
}

func TestSparseSectionEach(t *testing.T) {
	s := NewSection()
	s.Set(1, 2, 3, 7)
	s.Set(15, 15, 15, 9)
	s.Set(1, 2, 3, airID)
	assert.False(t, s.Dense())
	assert.Equal(t, 1, s.Count())
	var got [][4]int
	s.Each(func(x, y, z uint8, id uint32) {
		got = append(got, [4]int{int(x), int(y), int(z), int(id)})
	})
	assert.Equal(t, [][4]int{{15, 15, 15, 9}}, got)
}

func TestFromLayersRoundTrip(t *testing.T) {
	st := layers.New(40, 40)
	st.Set(0, 0, 0, "minecraft:stone")
	st.Set(33, 100, 17, "minecraft:oak_log[axis=y]")
	st.Set(5, 319, 39, "minecraft:glass")
	st.Set(5, 400, 5, "minecraft:glass")

	w := FromLayers(st)
	stats := w.Stats()
	assert.Equal(t, 3, stats.Blocks)
	assert.Equal(t, 3, stats.Chunks)
	assert.Equal(t, 3, stats.Sections)
	assert.Equal(t, 4, stats.PaletteSize)

	blk, ok := w.Block(33, 100, 17)
	require.True(t, ok)
	assert.Equal(t, map[string]string{"axis": "y"}, blk.Properties)

	back := w.ToLayers(40, 40)
	assert.Equal(t, 3, back.Count())
	id, _ := back.Get(33, 100, 17)
	assert.Equal(t, "minecraft:oak_log[axis=y]", id)

	ordered := w.OrderedChunks()
	require.Len(t, ordered, 3)
	assert.Equal(t, ChunkPos{0, 0}, ordered[0].Pos)
	assert.Equal(t, ChunkPos{2, 1}, ordered[2].Pos)
}

func TestBounds(t *testing.T) {
	w := New()
	_, _, ok := w.Bounds()
	assert.False(t, ok)

	w.SetBlock(3, 10, -2, define.BlockDescribe{Name: "minecraft:stone"})
	w.SetBlock(20, 4, 5, define.BlockDescribe{Name: "minecraft:dirt"})
	min, max, ok := w.Bounds()
	require.True(t, ok)
	assert.Equal(t, define.Pos{3, 4, -2}, min)
	assert.Equal(t, define.Pos{20, 10, 5}, max)
	ext := Extent(min, max)
	assert.Equal(t, define.Pos{18, 7, 8}, ext)
	assert.Equal(t, 18*7*8, ext.Volume())
}
