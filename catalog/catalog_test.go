package catalog

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	b := Lookup("minecraft:oak_log[axis=y]")
	assert.Equal(t, "Oak Log", b.Name)
	assert.Equal(t, Wood, b.Category)
	assert.True(t, Known("minecraft:glass"))

	u := Lookup("minecraft:red_sandstone")
	assert.Equal(t, "Red Sandstone", u.Name)
	assert.Equal(t, Misc, u.Category)
	assert.False(t, Known("minecraft:red_sandstone"))
}

func TestLookupDefault(t *testing.T) {
	assert.Equal(t, "Stone", Lookup(DefaultBlockID).Name)
}

func TestNearest(t *testing.T) {
	for _, b := range Blocks {
		if b.ID == "minecraft:air" {
			continue
		}
		assert.Equal(t, b.ID, Nearest(b.Color).ID)
	}
	black, _ := colorful.Hex("#000000")
	assert.Equal(t, "minecraft:black_wool", Nearest(black).ID)
}

func TestByCategory(t *testing.T) {
	wool := ByCategory(Wool)
	assert.Len(t, wool, 4)
	assert.Len(t, ByCategory(Terrain), 3)
}
