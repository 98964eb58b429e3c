package litematic

import "github.com/Wayner84/minecraft-schematic-studio/define"

// PaletteBuilder assigns palette indices in first seen order. Index 0 is always air.
type PaletteBuilder struct {
	index   map[string]uint32
	entries []BlockState
}

func NewPaletteBuilder() *PaletteBuilder {
	return &PaletteBuilder{
		index:   map[string]uint32{define.AirBlockName: 0},
		entries: []BlockState{{Name: define.AirBlockName}},
	}
}

// Intern returns the index of id, appending a new entry the first time id is seen. Identifiers may carry
// block state properties in canonical form ("name[k=v]"); they are keyed by the full descriptor.
func (p *PaletteBuilder) Intern(id string) uint32 {
	if define.IsAirID(id) {
		return 0
	}
	if i, ok := p.index[id]; ok {
		return i
	}
	desc := define.ParseBlockDescribe(id)
	key := desc.String()
	if i, ok := p.index[key]; ok {
		p.index[id] = i
		return i
	}
	i := uint32(len(p.entries))
	p.entries = append(p.entries, BlockState{Name: desc.Name, Properties: desc.Properties})
	p.index[key] = i
	p.index[id] = i
	return i
}

func (p *PaletteBuilder) Len() int {
	return len(p.entries)
}

// Palette returns the entries built so far.
func (p *PaletteBuilder) Palette() []BlockState {
	out := make([]BlockState, len(p.entries))
	copy(out, p.entries)
	return out
}

// paletteIDs resolves the identifier of every entry of an imported palette. Entries without a name are
// read as air.
func paletteIDs(palette []BlockState, keepProperties bool) []string {
	ids := make([]string, len(palette))
	for i, entry := range palette {
		name := entry.Name
		if name == "" {
			name = define.AirBlockName
		}
		if keepProperties {
			ids[i] = define.BlockDescribe{Name: name, Properties: entry.Properties}.String()
		} else {
			ids[i] = name
		}
	}
	return ids
}
