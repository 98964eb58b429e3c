// Package layers holds the editor's working model: a sparse map from height layer to the blocks placed in
// that layer. Air is never stored; an absent cell is air.
package layers

import (
	"sort"

	"github.com/Wayner84/minecraft-schematic-studio/define"
)

const (
	MinY   = define.WorldMinY
	MaxY   = define.WorldMaxY
	Height = define.WorldHeight
)

// XZ addresses a cell inside one layer.
type XZ struct {
	X, Z int
}

// Layer maps a cell to its block identifier.
type Layer map[XZ]string

// State is the sparse layered voxel model. SizeX and SizeZ bound the addressable extent; layers outside
// [MinY, MaxY] may be held but every codec drops them.
type State struct {
	SizeX  int
	SizeZ  int
	Layers map[int]Layer
}

func New(sizeX, sizeZ int) *State {
	return &State{SizeX: sizeX, SizeZ: sizeZ, Layers: make(map[int]Layer)}
}

// InRange reports whether y is inside the global vertical range.
func InRange(y int) bool {
	return y >= MinY && y <= MaxY
}

func ClampY(y int) int {
	if y < MinY {
		return MinY
	}
	if y > MaxY {
		return MaxY
	}
	return y
}

func (s *State) InBounds(x, z int) bool {
	return x >= 0 && z >= 0 && x < s.SizeX && z < s.SizeZ
}

// Set places id at (x, y, z), creating the layer on demand. Placing air removes the cell.
func (s *State) Set(x, y, z int, id string) {
	if define.IsAirID(id) {
		s.Delete(x, y, z)
		return
	}
	if s.Layers == nil {
		s.Layers = make(map[int]Layer)
	}
	layer, ok := s.Layers[y]
	if !ok {
		layer = make(Layer)
		s.Layers[y] = layer
	}
	layer[XZ{x, z}] = id
}

func (s *State) Get(x, y, z int) (string, bool) {
	id, ok := s.Layers[y][XZ{x, z}]
	return id, ok
}

// Delete removes a cell, dropping the layer once it is empty.
func (s *State) Delete(x, y, z int) {
	layer, ok := s.Layers[y]
	if !ok {
		return
	}
	delete(layer, XZ{x, z})
	if len(layer) == 0 {
		delete(s.Layers, y)
	}
}

// Layer returns the cells of layer y, or nil.
func (s *State) Layer(y int) Layer {
	return s.Layers[y]
}

// Ys returns the populated layer heights in ascending order.
func (s *State) Ys() []int {
	ys := make([]int, 0, len(s.Layers))
	for y, layer := range s.Layers {
		if len(layer) > 0 {
			ys = append(ys, y)
		}
	}
	sort.Ints(ys)
	return ys
}

// Count returns the number of non-air cells over all layers.
func (s *State) Count() int {
	n := 0
	for _, layer := range s.Layers {
		n += len(layer)
	}
	return n
}

// Each visits every cell ordered by y, then z, then x.
func (s *State) Each(fn func(x, y, z int, id string)) {
	for _, y := range s.Ys() {
		layer := s.Layers[y]
		cells := make([]XZ, 0, len(layer))
		for c := range layer {
			cells = append(cells, c)
		}
		sort.Slice(cells, func(i, j int) bool {
			if cells[i].Z != cells[j].Z {
				return cells[i].Z < cells[j].Z
			}
			return cells[i].X < cells[j].X
		})
		for _, c := range cells {
			fn(c.X, y, c.Z, layer[c])
		}
	}
}

// Histogram counts cells per block identifier.
func (s *State) Histogram() map[string]int {
	h := make(map[string]int)
	for _, layer := range s.Layers {
		for _, id := range layer {
			h[id]++
		}
	}
	return h
}

func (s *State) Clone() *State {
	c := New(s.SizeX, s.SizeZ)
	for y, layer := range s.Layers {
		cl := make(Layer, len(layer))
		for k, v := range layer {
			cl[k] = v
		}
		c.Layers[y] = cl
	}
	return c
}
