// Package bitstore packs palette indices into 64-bit words the way Litematica stores block states: each
// value takes exactly bitsPerBlock bits, low bit first, and values are allowed to span two words.
package bitstore

import "math/bits"

const (
	MinBitsPerBlock = 2
	wordBits        = 64
)

// BitsNeeded returns the number of bits used to address a palette of n entries. It never returns less than
// MinBitsPerBlock, so palettes of 0, 1 and 2 entries all take 2 bits.
func BitsNeeded(n int) int {
	if n <= 2 {
		return MinBitsPerBlock
	}
	// ceil(log2(n)) is the bit length of n-1
	b := bits.Len(uint(n - 1))
	if b < MinBitsPerBlock {
		return MinBitsPerBlock
	}
	return b
}

// WordCount is the number of words needed to hold count values of bitsPerBlock bits.
func WordCount(count, bitsPerBlock int) int {
	return (count*bitsPerBlock + wordBits - 1) / wordBits
}

// Holds reports whether words longs can hold count values of bitsPerBlock bits. It works for any count
// without overflowing, unlike WordCount.
func Holds(words, bitsPerBlock int, count uint64) bool {
	hi, lo := bits.Mul64(count, uint64(bitsPerBlock))
	return hi == 0 && lo <= uint64(words)*wordBits
}

// Volume multiplies extents. ok is false when the product does not fit in 64 bits.
func Volume(extents ...int) (volume uint64, ok bool) {
	volume = 1
	for _, e := range extents {
		if e < 0 {
			return 0, false
		}
		var hi uint64
		hi, volume = bits.Mul64(volume, uint64(e))
		if hi != 0 {
			return 0, false
		}
	}
	return volume, true
}

func mask(bitsPerBlock int) uint64 {
	return uint64(1)<<uint(bitsPerBlock) - 1
}

// Pack writes indices into the minimum number of words. Value i occupies stream bits
// [i*bitsPerBlock, (i+1)*bitsPerBlock), stream bit 0 being the least significant bit of word 0. Values are
// masked to bitsPerBlock bits, so out of range indices are truncated rather than rejected.
func Pack(indices []uint32, bitsPerBlock int) []uint64 {
	words := make([]uint64, WordCount(len(indices), bitsPerBlock))
	m := mask(bitsPerBlock)
	bitIndex := 0
	for _, idx := range indices {
		v := uint64(idx) & m
		w, off := bitIndex/wordBits, bitIndex%wordBits
		words[w] |= v << uint(off)
		if off+bitsPerBlock > wordBits {
			words[w+1] |= v >> uint(wordBits-off)
		}
		bitIndex += bitsPerBlock
	}
	return words
}

// Unpack is the inverse of Pack. count comes from the region volume, not from len(words); the caller must
// make sure words holds at least WordCount(count, bitsPerBlock) entries.
func Unpack(words []uint64, bitsPerBlock, count int) []uint32 {
	out := make([]uint32, count)
	m := mask(bitsPerBlock)
	bitIndex := 0
	for i := range out {
		w, off := bitIndex/wordBits, bitIndex%wordBits
		v := words[w] >> uint(off)
		if off+bitsPerBlock > wordBits {
			v |= words[w+1] << uint(wordBits-off)
		}
		out[i] = uint32(v & m)
		bitIndex += bitsPerBlock
	}
	return out
}

// Get reads the single value at index i without unpacking the whole array.
func Get(words []uint64, bitsPerBlock, i int) uint32 {
	bitIndex := i * bitsPerBlock
	w, off := bitIndex/wordBits, bitIndex%wordBits
	v := words[w] >> uint(off)
	if off+bitsPerBlock > wordBits {
		v |= words[w+1] << uint(wordBits-off)
	}
	return uint32(v & mask(bitsPerBlock))
}

// ToLongs reinterprets words as the signed longs an NBT long array carries.
func ToLongs(words []uint64) []int64 {
	longs := make([]int64, len(words))
	for i, w := range words {
		longs[i] = int64(w)
	}
	return longs
}

// FromLongs is the inverse of ToLongs.
func FromLongs(longs []int64) []uint64 {
	words := make([]uint64, len(longs))
	for i, l := range longs {
		words[i] = uint64(l)
	}
	return words
}
