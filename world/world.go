// Package world keeps blocks in 16*16 chunk columns of 16 high sections, the layout a game world uses.
// It is built from the editor's layer model to report how a build maps onto chunks.
package world

import (
	"sort"

	"github.com/Wayner84/minecraft-schematic-studio/define"
	"github.com/Wayner84/minecraft-schematic-studio/layers"
)

type World struct {
	Chunks   map[ChunkPos]*Chunk
	Block2ID map[string]uint32
	ID2Block []define.BlockDescribe
}

func New() *World {
	return &World{
		Chunks:   make(map[ChunkPos]*Chunk),
		Block2ID: map[string]uint32{define.AirBlockName: airID},
		ID2Block: []define.BlockDescribe{{Name: define.AirBlockName}},
	}
}

// BlockID interns blk into the world palette.
func (w *World) BlockID(blk define.BlockDescribe) uint32 {
	if blk.IsAir() {
		return airID
	}
	key := blk.String()
	blkID, hasK := w.Block2ID[key]
	if !hasK {
		blkID = uint32(len(w.ID2Block))
		w.ID2Block = append(w.ID2Block, blk)
		w.Block2ID[key] = blkID
	}
	return blkID
}

// SetBlock places blk; positions outside the vertical range are ignored.
func (w *World) SetBlock(x, y, z int, blk define.BlockDescribe) {
	if y < define.WorldMinY || y > define.WorldMaxY {
		return
	}
	id := w.BlockID(blk)
	pos := ChunkPos{x >> 4, z >> 4}
	c, hasK := w.Chunks[pos]
	if !hasK {
		if id == airID {
			return
		}
		c = NewChunk(pos)
		w.Chunks[pos] = c
	}
	c.SetBlockByID(x, y-define.WorldMinY, z, id)
}

// Block returns the block at a position; false means air.
func (w *World) Block(x, y, z int) (define.BlockDescribe, bool) {
	if y < define.WorldMinY || y > define.WorldMaxY {
		return define.BlockDescribe{}, false
	}
	c, hasK := w.Chunks[ChunkPos{x >> 4, z >> 4}]
	if !hasK {
		return define.BlockDescribe{}, false
	}
	id := c.BlockID(x, y-define.WorldMinY, z)
	if id == airID {
		return define.BlockDescribe{}, false
	}
	return w.ID2Block[id], true
}

// FromLayers copies every in range cell of s into a new world.
func FromLayers(s *layers.State) *World {
	w := New()
	s.Each(func(x, y, z int, id string) {
		w.SetBlock(x, y, z, define.ParseBlockDescribe(id))
	})
	return w
}

// ToLayers copies the world back into a sparse layer map of the given extent.
func (w *World) ToLayers(sizeX, sizeZ int) *layers.State {
	s := layers.New(sizeX, sizeZ)
	for _, c := range w.Chunks {
		for layerI, sec := range c.Sections {
			baseX, baseY, baseZ := c.Pos[0]<<4, layerI<<4+define.WorldMinY, c.Pos[1]<<4
			sec.Each(func(x, y, z uint8, id uint32) {
				s.Set(baseX+int(x), baseY+int(y), baseZ+int(z), w.ID2Block[id].String())
			})
		}
	}
	return s
}

type Stats struct {
	Chunks        int
	Sections      int
	DenseSections int
	Blocks        int
	PaletteSize   int
}

func (w *World) Stats() Stats {
	st := Stats{Chunks: len(w.Chunks), PaletteSize: len(w.ID2Block)}
	for _, c := range w.Chunks {
		for _, sec := range c.Sections {
			if sec.Count() == 0 {
				continue
			}
			st.Sections++
			if sec.Dense() {
				st.DenseSections++
			}
			st.Blocks += sec.Count()
		}
	}
	return st
}

// Bounds returns the smallest box holding every non-air block, both corners inclusive. ok is false for an
// empty world.
func (w *World) Bounds() (min, max define.Pos, ok bool) {
	for _, c := range w.Chunks {
		for layerI, sec := range c.Sections {
			base := define.Pos{c.Pos[0] << 4, layerI<<4 + define.WorldMinY, c.Pos[1] << 4}
			sec.Each(func(x, y, z uint8, id uint32) {
				p := base.Add(define.Pos{int(x), int(y), int(z)})
				if !ok {
					min, max, ok = p, p, true
					return
				}
				for i := range p {
					if p[i] < min[i] {
						min[i] = p[i]
					}
					if p[i] > max[i] {
						max[i] = p[i]
					}
				}
			})
		}
	}
	return min, max, ok
}

// Extent is the size of Bounds.
func Extent(min, max define.Pos) define.Pos {
	return max.Subtract(min).Add(define.Pos{1, 1, 1})
}

// OrderedChunks returns the chunks sorted by x then z.
func (w *World) OrderedChunks() []*Chunk {
	chunks := make([]*Chunk, 0, len(w.Chunks))
	for _, c := range w.Chunks {
		chunks = append(chunks, c)
	}
	sort.Slice(chunks, func(i, j int) bool {
		if chunks[i].Pos[0] != chunks[j].Pos[0] {
			return chunks[i].Pos[0] < chunks[j].Pos[0]
		}
		return chunks[i].Pos[1] < chunks[j].Pos[1]
	})
	return chunks
}
