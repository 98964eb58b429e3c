package world

// ChunkPos is the chunk column coordinate, block coordinate >> 4.
type ChunkPos [2]int

// Chunk is a 16*16 column split into 16 high sections, created on demand from the bottom up.
type Chunk struct {
	Pos      ChunkPos
	Sections []*Section
}

func NewChunk(pos ChunkPos) *Chunk {
	return &Chunk{Pos: pos, Sections: make([]*Section, 0)}
}

// SetBlockByID takes y relative to the bottom of the world.
func (c *Chunk) SetBlockByID(x, y, z int, id uint32) {
	layerI := y >> 4
	if id == airID && layerI >= len(c.Sections) {
		return
	}
	for len(c.Sections) <= layerI {
		c.Sections = append(c.Sections, NewSection())
	}
	c.Sections[layerI].Set(uint8(x&0xf), uint8(y&0xf), uint8(z&0xf), id)
}

func (c *Chunk) BlockID(x, y, z int) uint32 {
	layerI := y >> 4
	if layerI >= len(c.Sections) {
		return airID
	}
	return c.Sections[layerI].Get(uint8(x&0xf), uint8(y&0xf), uint8(z&0xf))
}

func (c *Chunk) Count() int {
	n := 0
	for _, s := range c.Sections {
		n += s.Count()
	}
	return n
}
