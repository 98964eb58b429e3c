package world

import "github.com/brentp/intintmap"

const (
	SectionSize   = 16
	SectionVolume = SectionSize * SectionSize * SectionSize
	// sparse sections flip to a dense array once they hold this many blocks
	ConvertThres = 16 * 16
)

const airID = uint32(0)

// Section stores a 16*16*16 cube of palette ids. It starts sparse and turns dense when it fills up.
type Section struct {
	sparse *intintmap.Map
	dense  *[SectionVolume]uint32
	count  int
}

func NewSection() *Section {
	return &Section{sparse: intintmap.New(64, 0.6)}
}

func offset(x, y, z uint8) int64 {
	return int64(uint16(x) | uint16(y)<<8 | uint16(z)<<4)
}

func (s *Section) Set(x, y, z uint8, id uint32) {
	key := offset(x, y, z)
	prev := s.Get(x, y, z)
	if prev != airID {
		s.count--
	}
	if id != airID {
		s.count++
	}
	if s.dense != nil {
		s.dense[key] = id
		return
	}
	if id == airID {
		s.sparse.Del(key)
		return
	}
	s.sparse.Put(key, int64(id))
	if s.sparse.Size() >= ConvertThres {
		s.dense = &[SectionVolume]uint32{}
		for kv := range s.sparse.Items() {
			s.dense[kv[0]] = uint32(kv[1])
		}
		s.sparse = nil
	}
}

func (s *Section) Get(x, y, z uint8) uint32 {
	key := offset(x, y, z)
	if s.dense != nil {
		return s.dense[key]
	}
	v, ok := s.sparse.Get(key)
	if !ok {
		return airID
	}
	return uint32(v)
}

// Count returns the number of non-air blocks.
func (s *Section) Count() int {
	return s.count
}

func (s *Section) Dense() bool {
	return s.dense != nil
}

// Each visits every non-air block of the section.
func (s *Section) Each(fn func(x, y, z uint8, id uint32)) {
	if s.dense != nil {
		for pos, id := range s.dense {
			if id != airID {
				fn(uint8(pos&0xf), uint8((pos>>8)&0xf), uint8((pos>>4)&0xf), id)
			}
		}
		return
	}
	for kv := range s.sparse.Items() {
		pos := kv[0]
		fn(uint8(pos&0xf), uint8((pos>>8)&0xf), uint8((pos>>4)&0xf), uint32(kv[1]))
	}
}
